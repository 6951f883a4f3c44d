package worker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ppiankov/toneguard/internal/logging"
	"github.com/ppiankov/toneguard/internal/model"
	"github.com/ppiankov/toneguard/internal/pipeline"
)

// maxLineBytes bounds a single input line
const maxLineBytes = 1 << 20

// Analyzer defines the interface for analyzing a single text
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*pipeline.AnalyzeResult, error)
}

// InputText is one text of a batch and the input line it came from
type InputText struct {
	Line int // 1-based line number in the input
	Text string
}

// AnalyzeJob represents one text of a batch
type AnalyzeJob struct {
	Index    int
	Line     int
	Text     string
	Analyzer Analyzer
}

// Execute executes the analyze job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	result, err := j.Analyzer.Analyze(ctx, j.Text)
	if err != nil {
		return &AnalyzeResult{Index: j.Index, Line: j.Line, Text: j.Text, Error: err}
	}
	return &AnalyzeResult{
		Index:     j.Index,
		Line:      j.Line,
		Text:      j.Text,
		Report:    result.Report,
		Cached:    result.Cached,
		Truncated: result.Truncated,
	}
}

// AnalyzeResult represents the result of an analyze job
type AnalyzeResult struct {
	Index     int // Position of the text in the batch
	Line      int // Input line number, 0 when texts were not read from lines
	Text      string
	Report    *model.Report
	Cached    bool
	Truncated bool
	Error     error
}

// GetError returns the error from the analyze result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor analyzes many texts concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
	limiter     *Limiter
}

// NewBatchProcessor creates a new batch processor. A non-positive rate
// disables throttling.
func NewBatchProcessor(analyzer Analyzer, concurrency int, textsPerSecond float64, burst int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
		limiter:     NewLimiter(textsPerSecond, burst),
	}
}

// ProcessTexts analyzes texts concurrently. It returns exactly one result
// per text, in input order; a failing text never aborts the batch.
func (b *BatchProcessor) ProcessTexts(ctx context.Context, texts []string) []*AnalyzeResult {
	inputs := make([]InputText, len(texts))
	for i, text := range texts {
		inputs[i] = InputText{Text: text}
	}
	return b.ProcessInputs(ctx, inputs)
}

// ProcessInputs is ProcessTexts for texts that carry their input line.
// Repeated texts are analyzed again; with a caching analyzer they are
// served from the cache once the first occurrence has finished.
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []InputText) []*AnalyzeResult {
	if len(inputs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(ctx, b.concurrency, WithLimiter(b.limiter))
	pool.Start()

	out := make([]*AnalyzeResult, len(inputs))
	for i, in := range inputs {
		job := &AnalyzeJob{Index: i, Line: in.Line, Text: in.Text, Analyzer: b.analyzer}
		if err := pool.Submit(job); err != nil {
			out[i] = &AnalyzeResult{Index: i, Line: in.Line, Text: in.Text, Error: fmt.Errorf("submit: %w", err)}
		}
	}

	for _, r := range pool.Wait() {
		res := r.(*AnalyzeResult)
		out[res.Index] = res
	}

	// Jobs still queued when ctx was canceled never ran
	missing := 0
	for i, r := range out {
		if r != nil {
			continue
		}
		missing++
		err := ctx.Err()
		if err == nil {
			err = ErrPoolClosed
		}
		out[i] = &AnalyzeResult{Index: i, Line: inputs[i].Line, Text: inputs[i].Text, Error: fmt.Errorf("not processed: %w", err)}
	}
	if missing > 0 {
		logging.Warn("batch interrupted", "unprocessed", missing, "total", len(inputs))
	}

	return out
}

// ProcessFile reads texts from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	inputs, err := ReadTextsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read texts: %w", err)
	}

	logging.Debug("batch loaded", "file", filePath, "texts", len(inputs))
	return b.ProcessInputs(ctx, inputs), nil
}

// ReadTextsFromFile reads texts from a file (one per line)
func ReadTextsFromFile(filePath string) ([]InputText, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return ReadTexts(file)
}

// ReadTexts reads one text per line. Blank lines and lines starting with #
// are skipped; repeated texts are kept.
func ReadTexts(r io.Reader) ([]InputText, error) {
	var texts []InputText

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		texts = append(texts, InputText{Line: n, Text: line})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan input: %w", err)
	}

	return texts, nil
}
