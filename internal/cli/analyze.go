package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ppiankov/toneguard/internal/logging"
	"github.com/ppiankov/toneguard/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outJSON   string
	outMD     string
	printJSON bool
	quiet     bool
	timeout   time.Duration
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze a single text for hate speech and tone shifts",
	Long: `Analyze scores one text:
- Match words and phrases against the lexicon, phrases first
- Build the emotion timeline in detection order
- Detect positive-to-hate and hate-to-positive tone shifts
- Combine category scores into a banded classification
- Explain which words produced the verdict

The text is read from the argument, or from stdin when no argument is given.

Example:
  toneguard analyze "I love everyone but I hate Muslim people"
  echo "You are stupid but I still love you" | toneguard analyze --print-json
  toneguard analyze --html < page.html --md report.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&printJSON, "print-json", false, "print the JSON report to stdout instead of the summary")
	analyzeCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the classification")
	analyzeCmd.Flags().Bool("no-footer", false, "disable footer in Markdown reports")
	analyzeCmd.Flags().Bool("no-color", false, "disable colored summary output")
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "analysis timeout")

	// Analysis flags
	analyzeCmd.Flags().Bool("html", false, "treat input as HTML and analyze its visible text")
	analyzeCmd.Flags().Bool("anchor-phrases", false, "count each multi-word phrase once per text")
	analyzeCmd.Flags().Int("max-chars", 1000, "truncate input to this many characters (0 = no bound)")
}

// bindAnalysisFlags binds the analysis flags of cmd to viper keys. Flags
// are bound when the command runs, so that commands sharing a flag name
// do not override each other.
func bindAnalysisFlags(cmd *cobra.Command) {
	bindings := map[string]string{
		"analysis.html":           "html",
		"analysis.anchor_phrases": "anchor-phrases",
		"analysis.max_chars":      "max-chars",
	}
	for key, name := range bindings {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = viper.BindPFlag(key, f)
		}
	}
	if f := cmd.Flags().Lookup("no-footer"); f != nil && f.Changed {
		viper.Set("output.include_footer", false)
	}
	if f := cmd.Flags().Lookup("no-color"); f != nil && f.Changed {
		viper.Set("output.color", false)
	}
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	bindAnalysisFlags(cmd)

	text, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	p := pipeline.NewPipeline(cfg, lex)

	result, err := p.Analyze(ctx, text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	if result.Truncated {
		logging.Warn("input truncated", "max_chars", cfg.Analysis.MaxChars)
	}

	if err := p.RenderReport(result.Report, outJSON, outMD, cfg.Output.Verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case quiet:
		fmt.Fprintln(out, result.Report.Classification)
	case printJSON:
		return p.Renderer().WriteJSON(out, result.Report)
	default:
		p.Renderer().RenderSummary(out, result.Report)
	}
	return nil
}

// readInput returns the text argument, or all of stdin when there is none
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("no text given: pass it as an argument or pipe it to stdin")
		}
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
