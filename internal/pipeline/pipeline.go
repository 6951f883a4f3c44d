package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/ppiankov/toneguard/internal/analyzer"
	"github.com/ppiankov/toneguard/internal/cache"
	"github.com/ppiankov/toneguard/internal/extract"
	"github.com/ppiankov/toneguard/internal/lexicon"
	"github.com/ppiankov/toneguard/internal/logging"
	"github.com/ppiankov/toneguard/internal/model"
)

// Pipeline prepares raw input and runs it through the analyzer
type Pipeline struct {
	analyzer *analyzer.Analyzer
	cache    cache.Cache
	cacheTTL time.Duration
	variant  string // Distinguishes cache entries of differently configured pipelines
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a new pipeline with the given configuration. A nil
// lexicon selects the built-in one.
func NewPipeline(cfg *model.Config, lex *lexicon.Lexicon) *Pipeline {
	var c cache.Cache = cache.Nop{}
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.CleanupInterval)
	}

	return &Pipeline{
		analyzer: analyzer.New(lex, analyzer.WithAnchoredPhrases(cfg.Analysis.AnchorPhrases)),
		cache:    c,
		cacheTTL: cfg.Cache.TTL,
		variant: fmt.Sprintf("lexicon=%s;anchor=%t;html=%t;max=%d",
			cfg.Lexicon.Path, cfg.Analysis.AnchorPhrases, cfg.Analysis.HTML, cfg.Analysis.MaxChars),
		renderer: NewRenderer(cfg.Output.IncludeFooter, cfg.Output.Color),
		config:   cfg,
	}
}

// AnalyzeResult contains the report and how it was produced
type AnalyzeResult struct {
	Report    *model.Report
	Cached    bool // Served from the report cache
	Truncated bool // Input exceeded analysis.max_chars
}

// cacheEntry is what the report cache stores for one input
type cacheEntry struct {
	Report    *model.Report `json:"report"`
	Truncated bool          `json:"truncated"`
}

// Analyze prepares input and returns its report
func (p *Pipeline) Analyze(ctx context.Context, input string) (*AnalyzeResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := cache.CacheKey(p.variant, input)
	if data, ok := p.cache.Get(key); ok {
		var entry cacheEntry
		if err := json.Unmarshal(data, &entry); err == nil && entry.Report != nil {
			logging.Debug("cache hit", "key", key[:24])
			return &AnalyzeResult{Report: entry.Report, Cached: true, Truncated: entry.Truncated}, nil
		}
		_ = p.cache.Delete(key)
	}

	// 1. Strip markup
	text := input
	if p.config.Analysis.HTML {
		visible, err := extract.VisibleText(input)
		if err != nil {
			return nil, fmt.Errorf("extract visible text: %w", err)
		}
		text = visible
	}

	// 2. Bound length
	text, truncated := Truncate(text, p.config.Analysis.MaxChars)
	if truncated {
		logging.Debug("input truncated", "max_chars", p.config.Analysis.MaxChars)
	}

	// 3. Analyze
	report, err := p.analyzer.Analyze(text)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	logging.Debug("analyzed",
		"label", report.Classification,
		"confidence", report.Confidence,
		"matches", len(report.WordAnalysis))

	if data, err := json.Marshal(cacheEntry{Report: report, Truncated: truncated}); err == nil {
		if err := p.cache.Set(key, data, p.cacheTTL); err != nil {
			logging.Warn("cache set failed", "error", err)
		}
	}

	return &AnalyzeResult{Report: report, Truncated: truncated}, nil
}

// RenderReport renders the report to the specified outputs
func (p *Pipeline) RenderReport(report *model.Report, jsonPath string, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(report, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			logging.Info("wrote JSON", "path", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(report, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			logging.Info("wrote Markdown", "path", mdPath)
		}
	}

	return nil
}

// Renderer returns the pipeline's renderer
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// Truncate cuts text to at most maxRunes runes. Invalid UTF-8 and a
// non-positive bound leave text unchanged.
func Truncate(text string, maxRunes int) (string, bool) {
	if maxRunes <= 0 || len(text) <= maxRunes || !utf8.ValidString(text) {
		return text, false
	}
	n := 0
	for i := range text {
		if n == maxRunes {
			return text[:i], true
		}
		n++
	}
	return text, false
}
