package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/toneguard/internal/model"
	"github.com/ppiankov/toneguard/internal/worker"
	"gopkg.in/yaml.v3"
)

func TestReadInput(t *testing.T) {
	text, err := readInput(strings.NewReader("ignored"), []string{"from argument"})
	if err != nil || text != "from argument" {
		t.Errorf("expected argument text, got %q (%v)", text, err)
	}

	text, err = readInput(strings.NewReader("from stdin\n"), nil)
	if err != nil || text != "from stdin" {
		t.Errorf("expected stdin text without trailing newline, got %q (%v)", text, err)
	}
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := writeDefaultConfig(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.HasPrefix(string(data), "# toneguard configuration") {
		t.Error("expected commented header")
	}

	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("config is not valid YAML: %v", err)
	}
	if cfg.Analysis.MaxChars != 1000 || cfg.Concurrency.Workers != 4 {
		t.Errorf("expected defaults in written config, got %+v", cfg)
	}

	if err := writeDefaultConfig(path); err == nil {
		t.Error("expected an error when the config already exists")
	}
}

func TestWriteBatch(t *testing.T) {
	results := []*worker.AnalyzeResult{
		{Index: 0, Line: 1, Text: "a", Report: &model.Report{Text: "a", Classification: model.LabelHateSpeech, ToneShift: &model.ToneShift{Type: model.ShiftPositiveToHate}}},
		{Index: 1, Line: 3, Text: "b", Error: errors.New("boom")},
		{Index: 2, Line: 4, Text: "a", Cached: true, Report: &model.Report{Text: "a", Classification: model.LabelHateSpeech}},
	}

	var buf bytes.Buffer
	counts, err := writeBatch(&buf, results)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if counts.failures != 1 || counts.hateful != 2 || counts.shifts != 1 || counts.cached != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 JSON lines, got %d", len(lines))
	}

	var second batchLine
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if second.Index != 1 || second.Line != 3 || second.Error != "boom" || second.Report != nil {
		t.Errorf("unexpected failed line: %+v", second)
	}

	var third batchLine
	if err := json.Unmarshal([]byte(lines[2]), &third); err != nil {
		t.Fatalf("invalid JSON line: %v", err)
	}
	if !third.Cached || third.Line != 4 {
		t.Errorf("expected cached line 4, got %+v", third)
	}
}

func TestVersionCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"version"})
	defer rootCmd.SetArgs(nil)

	if err := Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "toneguard ") {
		t.Errorf("unexpected version output %q", buf.String())
	}
}

func TestLexiconStatsCommand(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"lexicon", "stats", "--json"})
	defer rootCmd.SetArgs(nil)

	if err := Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stats struct {
		Counts map[string]int `json:"counts"`
		Total  int            `json:"total"`
	}
	if err := json.Unmarshal(buf.Bytes(), &stats); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	if stats.Total != 209 || stats.Counts["hate"] != 112 {
		t.Errorf("unexpected stats: %+v", stats)
	}
}

func TestAnalyzeCommand_Quiet(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"analyze", "--quiet", "All immigrants are terrorists and should be deported"})
	defer func() {
		rootCmd.SetArgs(nil)
		quiet = false
	}()

	if err := Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(buf.String()) != string(model.LabelHateSpeech) {
		t.Errorf("expected HATE_SPEECH, got %q", buf.String())
	}
}
