package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/toneguard/internal/model"
)

func testConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Color = false
	return cfg
}

func TestPipeline_Analyze(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	result, err := p.Analyze(context.Background(), "I love everyone but I hate Muslim people")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Cached || result.Truncated {
		t.Errorf("expected fresh, untruncated result, got %+v", result)
	}
	if result.Report.ToneShift == nil {
		t.Error("expected a tone shift")
	}

	again, err := p.Analyze(context.Background(), "I love everyone but I hate Muslim people")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Cached {
		t.Error("expected second analysis to be served from cache")
	}

	want, _ := json.Marshal(result.Report)
	got, _ := json.Marshal(again.Report)
	if string(want) != string(got) {
		t.Errorf("cached report differs:\n%s\n%s", want, got)
	}
}

func TestPipeline_CacheDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Cache.Enabled = false
	p := NewPipeline(cfg, nil)

	for range 2 {
		result, err := p.Analyze(context.Background(), "you are stupid")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Cached {
			t.Error("expected no caching when disabled")
		}
	}
}

func TestPipeline_HTML(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.HTML = true
	p := NewPipeline(cfg, nil)

	result, err := p.Analyze(context.Background(), "<p>I <b>love</b> you</p><script>hate()</script>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Report.Classification != model.LabelNotHate {
		t.Errorf("expected NOT_HATE, got %s", result.Report.Classification)
	}
	for _, wa := range result.Report.WordAnalysis {
		if wa.Word == "hate" {
			t.Error("script content must not be analyzed")
		}
	}
}

func TestPipeline_Truncates(t *testing.T) {
	cfg := testConfig()
	cfg.Analysis.MaxChars = 10
	p := NewPipeline(cfg, nil)

	// "hate" starts after the bound
	result, err := p.Analyze(context.Background(), "I love you and I hate you")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Truncated {
		t.Error("expected truncation")
	}
	if result.Report.Text != "I love you" {
		t.Errorf("expected truncated text, got %q", result.Report.Text)
	}
	if result.Report.ToneShift != nil {
		t.Error("expected no shift in truncated text")
	}

	again, err := p.Analyze(context.Background(), "I love you and I hate you")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !again.Cached || !again.Truncated {
		t.Errorf("expected cached result to keep truncation, got cached=%t truncated=%t", again.Cached, again.Truncated)
	}
}

func TestPipeline_InvalidInput(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	_, err := p.Analyze(context.Background(), "")
	if !errors.Is(err, model.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPipeline_CanceledContext(t *testing.T) {
	p := NewPipeline(testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Analyze(ctx, "hello"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		desc      string
		text      string
		max       int
		expected  string
		truncated bool
	}{
		{"Shorter than bound", "hello", 10, "hello", false},
		{"Exactly the bound", "hello", 5, "hello", false},
		{"ASCII cut", "hello world", 5, "hello", true},
		{"Multibyte runes", "привет мир", 6, "привет", true},
		{"No bound", "hello", 0, "hello", false},
		{"Invalid UTF-8 untouched", "ab\xffcdef", 2, "ab\xffcdef", false},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got, truncated := Truncate(tt.text, tt.max)
			if got != tt.expected || truncated != tt.truncated {
				t.Errorf("expected %q/%v, got %q/%v", tt.expected, tt.truncated, got, truncated)
			}
		})
	}
}

func TestRenderer(t *testing.T) {
	p := NewPipeline(testConfig(), nil)
	result, err := p.Analyze(context.Background(), "I love everyone but I hate Muslim people")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	report := result.Report

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "report.json")
	mdPath := filepath.Join(dir, "report.md")

	if err := p.RenderReport(report, jsonPath, mdPath, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		t.Fatalf("read JSON: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	for _, key := range []string{"classification", "confidence", "scores", "tone_shift", "word_analysis", "emotion_timeline", "message", "details"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("expected key %q in JSON report", key)
		}
	}

	md, err := os.ReadFile(mdPath)
	if err != nil {
		t.Fatalf("read Markdown: %v", err)
	}
	for _, want := range []string{"## Verdict", "BORDERLINE", "## Tone Shift", "POSITIVE_TO_HATE", "| 1 | 5 | hate |", "Generated by toneguard"} {
		if !strings.Contains(string(md), want) {
			t.Errorf("expected Markdown to contain %q", want)
		}
	}

	var buf bytes.Buffer
	p.Renderer().RenderSummary(&buf, report)
	summary := buf.String()
	for _, want := range []string{"BORDERLINE", "54.4% confidence", "POSITIVE_TO_HATE", "love, hate"} {
		if !strings.Contains(summary, want) {
			t.Errorf("expected summary to contain %q, got %q", want, summary)
		}
	}
}

func TestRenderer_NoFooter(t *testing.T) {
	r := NewRenderer(false, false)
	md := r.Markdown(&model.Report{Text: "x", Classification: model.LabelNotHate})
	if strings.Contains(md, "Generated by toneguard") {
		t.Error("expected no footer")
	}
	if !strings.Contains(md, "No lexicon matches.") {
		t.Error("expected empty timeline note")
	}
}
