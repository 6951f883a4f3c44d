package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/ppiankov/toneguard/internal/logging"
	"github.com/ppiankov/toneguard/internal/model"
	"github.com/ppiankov/toneguard/internal/pipeline"
	"github.com/ppiankov/toneguard/internal/worker"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	outputPath   string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze many texts from a file in parallel",
	Long: `Batch analyzes many texts concurrently:
- Read texts from the input file (one per line; blank and # lines skipped)
- Analyze them in parallel with a configurable worker count
- Serve repeated texts from the report cache
- Write one JSON object per text, in input order

Example:
  toneguard batch comments.txt
  toneguard batch comments.txt --workers 8 --output results.jsonl
  toneguard batch comments.txt --rate 50`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output JSON Lines path (default: stdout)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	batchCmd.Flags().Int("workers", 4, "number of concurrent workers")
	batchCmd.Flags().Float64("rate", 0, "maximum texts per second (0 = unlimited)")
	batchCmd.Flags().Bool("html", false, "treat each line as HTML and analyze its visible text")
	batchCmd.Flags().Bool("anchor-phrases", false, "count each multi-word phrase once per text")
	batchCmd.Flags().Int("max-chars", 1000, "truncate each text to this many characters (0 = no bound)")
}

// batchLine is one line of batch output
type batchLine struct {
	Index     int           `json:"index"`
	Line      int           `json:"line"` // 1-based line of the input file
	Text      string        `json:"text"`
	Cached    bool          `json:"cached"`
	Truncated bool          `json:"truncated,omitempty"`
	Report    *model.Report `json:"report,omitempty"`
	Error     string        `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) (err error) {
	file := args[0]

	bindAnalysisFlags(cmd)
	_ = viper.BindPFlag("concurrency.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("rate_limiting.texts_per_second", cmd.Flags().Lookup("rate"))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	log := logging.WithPrefix("batch")
	log.Info("started",
		"file", file,
		"workers", cfg.Concurrency.Workers,
		"rate", cfg.RateLimiting.TextsPerSecond)

	p := pipeline.NewPipeline(cfg, lex)
	processor := worker.NewBatchProcessor(p, cfg.Concurrency.Workers, cfg.RateLimiting.TextsPerSecond, cfg.RateLimiting.BurstSize)

	start := time.Now()
	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	var out io.Writer = cmd.OutOrStdout()
	if outputPath != "" {
		if mkErr := os.MkdirAll(filepath.Dir(outputPath), 0o755); mkErr != nil {
			return fmt.Errorf("create output directory: %w", mkErr)
		}
		f, createErr := os.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("create output file: %w", createErr)
		}
		defer func() {
			if closeErr := f.Close(); closeErr != nil && err == nil {
				err = fmt.Errorf("close output file: %w", closeErr)
			}
		}()
		out = f
	}

	counts, err := writeBatch(out, results)
	if err != nil {
		logging.Error("batch output failed", "error", err)
		return err
	}

	log.Info("complete",
		"total", len(results),
		"cached", counts.cached,
		"failures", counts.failures,
		"hateful", counts.hateful,
		"tone_shifts", counts.shifts,
		"elapsed", time.Since(start).Round(time.Millisecond))

	if counts.failures > 0 {
		return fmt.Errorf("%d of %d texts failed", counts.failures, len(results))
	}
	return nil
}

type batchCounts struct {
	cached   int
	failures int
	hateful  int
	shifts   int
}

// writeBatch writes results as JSON Lines
func writeBatch(w io.Writer, results []*worker.AnalyzeResult) (batchCounts, error) {
	var counts batchCounts
	enc := json.NewEncoder(w)

	for _, r := range results {
		line := batchLine{
			Index:     r.Index,
			Line:      r.Line,
			Text:      r.Text,
			Cached:    r.Cached,
			Truncated: r.Truncated,
			Report:    r.Report,
		}
		if r.Cached {
			counts.cached++
		}
		if r.Error != nil {
			counts.failures++
			line.Error = r.Error.Error()
			logging.Warn("text failed", "index", r.Index, "line", r.Line, "error", r.Error)
		} else {
			if r.Report.Classification.IsHateful() {
				counts.hateful++
			}
			if r.Report.ToneShift != nil {
				counts.shifts++
			}
		}
		if err := enc.Encode(line); err != nil {
			return counts, fmt.Errorf("write result %d: %w", r.Index, err)
		}
	}
	return counts, nil
}
