package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ppiankov/toneguard/internal/model"
)

// Renderer writes reports as JSON, Markdown or a terminal summary
type Renderer struct {
	includeFooter bool
	styles        styles
}

type styles struct {
	header   lipgloss.Style
	label    map[model.Label]lipgloss.Style
	key      lipgloss.Style
	muted    lipgloss.Style
	shift    lipgloss.Style
	positive lipgloss.Style
}

func colorStyles() styles {
	badge := lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("255"))
	return styles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		label: map[model.Label]lipgloss.Style{
			model.LabelHateSpeech:   badge.Background(lipgloss.Color("196")),
			model.LabelModerateHate: badge.Background(lipgloss.Color("208")),
			model.LabelBorderline:   badge.Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0")),
			model.LabelNotHate:      badge.Background(lipgloss.Color("78")).Foreground(lipgloss.Color("0")),
		},
		key:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		shift:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		positive: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
	}
}

func plainStyles() styles {
	plain := lipgloss.NewStyle()
	return styles{
		header:   plain,
		label:    map[model.Label]lipgloss.Style{},
		key:      plain,
		muted:    plain,
		shift:    plain,
		positive: plain,
	}
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter, color bool) *Renderer {
	s := plainStyles()
	if color {
		s = colorStyles()
	}
	return &Renderer{includeFooter: includeFooter, styles: s}
}

// WriteJSON writes the indented JSON report to w
func (r *Renderer) WriteJSON(w io.Writer, report *model.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

// RenderJSON writes the JSON report to path
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	return writeFile(path, func(w io.Writer) error {
		return r.WriteJSON(w, report)
	})
}

// RenderMarkdown writes the Markdown report to path
func (r *Renderer) RenderMarkdown(report *model.Report, path string) error {
	return writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, r.Markdown(report))
		return err
	})
}

// Markdown renders the report as a Markdown document
func (r *Renderer) Markdown(report *model.Report) string {
	var b strings.Builder

	b.WriteString("# Tone Analysis\n\n")
	fmt.Fprintf(&b, "> %s\n\n", strings.ReplaceAll(report.Text, "\n", "\n> "))

	b.WriteString("## Verdict\n\n")
	fmt.Fprintf(&b, "- **Classification:** %s\n", report.Classification)
	fmt.Fprintf(&b, "- **Confidence:** %.1f%%\n", report.Confidence*100)
	fmt.Fprintf(&b, "- **Hate likelihood:** %.3f\n\n", report.HateLikelihood())
	fmt.Fprintf(&b, "%s\n\n", report.Message)

	b.WriteString("## Scores\n\n")
	b.WriteString("| Score | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| hate | %.3f |\n", report.Scores.Hate)
	if report.Scores.Hate != report.Scores.HateBase {
		fmt.Fprintf(&b, "| hate (before escalation) | %.3f |\n", report.Scores.HateBase)
	}
	fmt.Fprintf(&b, "| moderate | %.3f |\n", report.Scores.Moderate)
	fmt.Fprintf(&b, "| safe | %.3f |\n", report.Scores.Safe)
	fmt.Fprintf(&b, "| **final** | **%.3f** |\n\n", report.Scores.Final)

	if report.ToneShift != nil {
		b.WriteString("## Tone Shift\n\n")
		fmt.Fprintf(&b, "- **Type:** %s\n", report.ToneShift.Type)
		fmt.Fprintf(&b, "- **From:** %s\n", report.ToneShift.StartEmotion)
		fmt.Fprintf(&b, "- **To:** %s (timeline index %d)\n", report.ToneShift.EndEmotion, report.ToneShift.TransitionPoint)
		if report.Details.ToneShift != nil {
			fmt.Fprintf(&b, "\n%s\n", report.Details.ToneShift.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Emotion Timeline\n\n")
	if len(report.WordAnalysis) == 0 {
		b.WriteString("No lexicon matches.\n\n")
	} else {
		b.WriteString("| # | Position | Match | Category | Subcategory | Weight | Emotion |\n")
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for i, wa := range report.WordAnalysis {
			fmt.Fprintf(&b, "| %d | %d | %s | %s | %s | %.2f | %s |\n",
				i, wa.Position, wa.Word, wa.Category, wa.Subcategory, wa.Weight, wa.Emotion)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Signals\n\n")
	for _, s := range report.Signals {
		fmt.Fprintf(&b, "- [%s] %s", s.Severity, s.Description)
		if s.Formula != "" {
			fmt.Fprintf(&b, " (`%s`)", s.Formula)
		}
		b.WriteString("\n")
	}

	if r.includeFooter {
		b.WriteString("\n---\n\n")
		b.WriteString("*Generated by toneguard. Deterministic, lexicon-based scoring; ")
		b.WriteString("a verdict describes the words used, not the intent of the author.*\n")
	}

	return b.String()
}

// RenderSummary prints a short verdict to w
func (r *Renderer) RenderSummary(w io.Writer, report *model.Report) {
	s := r.styles

	labelStyle, ok := s.label[report.Classification]
	if !ok {
		labelStyle = lipgloss.NewStyle()
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s %s %s\n",
		s.header.Render("toneguard"),
		labelStyle.Render(string(report.Classification)),
		s.muted.Render(fmt.Sprintf("%.1f%% confidence", report.Confidence*100)))
	fmt.Fprintln(w)

	fmt.Fprintf(w, "  %s %.3f  %s %.3f  %s %.3f  %s %.3f\n",
		s.key.Render("hate"), report.Scores.Hate,
		s.key.Render("moderate"), report.Scores.Moderate,
		s.key.Render("safe"), report.Scores.Safe,
		s.key.Render("final"), report.Scores.Final)

	if report.ToneShift != nil {
		fmt.Fprintf(w, "  %s %s -> %s\n",
			s.shift.Render(string(report.ToneShift.Type)),
			report.ToneShift.StartEmotion, report.ToneShift.EndEmotion)
	}

	if len(report.WordAnalysis) > 0 {
		words := make([]string, len(report.WordAnalysis))
		for i, wa := range report.WordAnalysis {
			word := wa.Word
			if wa.Category == model.CategorySafe {
				word = s.positive.Render(word)
			}
			words[i] = word
		}
		fmt.Fprintf(w, "  %s %s\n", s.key.Render("matches"), strings.Join(words, ", "))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %s\n", report.Message)
	fmt.Fprintln(w)
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()
	return write(f)
}
