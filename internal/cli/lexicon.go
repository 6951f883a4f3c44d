package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/toneguard/internal/lexicon"
	"github.com/spf13/cobra"
)

var (
	statsJSON  bool
	exportPath string
)

// lexiconCmd represents the lexicon command
var lexiconCmd = &cobra.Command{
	Use:   "lexicon",
	Short: "Inspect, export and validate lexicons",
	Long: `Inspect the active lexicon (built-in, or the one given with --lexicon),
export it as YAML to start a custom lexicon, or validate a YAML lexicon file.`,
}

var lexiconStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show term counts per category",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lex, err := loadLexicon(cfg)
		if err != nil {
			return err
		}

		stats := lex.Stats()
		out := cmd.OutOrStdout()

		if statsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		}

		for _, cat := range lexicon.CategoryPriority {
			fmt.Fprintf(out, "%-10s %d\n", cat, stats.Counts[cat])
		}
		fmt.Fprintf(out, "%-10s %d\n", "total", stats.Total)
		return nil
	},
}

var lexiconExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the active lexicon as YAML",
	Long: `Export writes the active lexicon as YAML. Edit the result and pass it
back with --lexicon to analyze with a custom lexicon.

Example:
  toneguard lexicon export -o lexicon.yaml
  toneguard analyze --lexicon lexicon.yaml "some text"`,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lex, err := loadLexicon(cfg)
		if err != nil {
			return err
		}

		if exportPath == "" {
			return lex.Export(cmd.OutOrStdout())
		}

		f, err := os.Create(exportPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", exportPath, err)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close %s: %w", exportPath, closeErr)
			}
		}()
		return lex.Export(f)
	},
}

var lexiconCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a YAML lexicon file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lex, err := lexicon.Load(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d terms)\n", args[0], lex.Len())
		return nil
	},
}

var lexiconStopwordsCmd = &cobra.Command{
	Use:   "stopwords",
	Short: "List the words that never match on their own",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lexicon.Stopwords(), " "))
	},
}

func init() {
	rootCmd.AddCommand(lexiconCmd)
	lexiconCmd.AddCommand(lexiconStatsCmd, lexiconExportCmd, lexiconCheckCmd, lexiconStopwordsCmd)

	lexiconStatsCmd.Flags().BoolVar(&statsJSON, "json", false, "print stats as JSON")
	lexiconExportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "output path (default: stdout)")
}
