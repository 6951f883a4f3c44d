package explain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ppiankov/toneguard/internal/model"
)

// targetSubcategories are the hate subcategories that name a targeted group
var targetSubcategories = []string{"religion", "race", "ethnicity", "gender", "lgbtq"}

// Fixed one-sentence descriptions of each shift type
const (
	positiveToHateDescription = "Sentence began positive/neutral, transitioned to hateful content, indicating conditional or targeted hostility."
	hateToPositiveDescription = "Sentence began hateful, ended positive, possibly sarcasm or recovery."
)

// DescribeShift returns the fixed description of a shift type
func DescribeShift(t model.ShiftType) string {
	switch t {
	case model.ShiftPositiveToHate:
		return positiveToHateDescription
	case model.ShiftHateToPositive:
		return hateToPositiveDescription
	default:
		return "No tone shift detected."
	}
}

// Message renders the human-readable verdict. Templates are tried in order:
// positive-to-hate shift, hate-to-positive shift, then one per label.
func Message(label model.Label, confidence float64, shift *model.ToneShift, entries []model.WordAnalysis) string {
	pct := confidence * 100

	if shift != nil {
		switch shift.Type {
		case model.ShiftPositiveToHate:
			return fmt.Sprintf("**TONE SHIFT DETECTED**: Text started with a POSITIVE tone but turned HATEFUL "+
				"towards specific groups or objects. Classification: %s (%.1f%% confidence)", label, pct)
		case model.ShiftHateToPositive:
			return fmt.Sprintf("**MIXED EMOTIONS**: Text started with a HATEFUL tone but ended on a POSITIVE note. "+
				"Classification: %s (%.1f%% confidence)", label, pct)
		}
	}

	switch label {
	case model.LabelHateSpeech:
		target := "certain groups"
		if targets := Targets(entries); len(targets) > 0 {
			target = strings.Join(targets, ", ")
		}
		return fmt.Sprintf("**HATE SPEECH DETECTED**: Strong hateful content targeting %s. Confidence: %.1f%%", target, pct)
	case model.LabelModerateHate:
		return fmt.Sprintf("**OFFENSIVE CONTENT**: Text contains offensive language. Confidence: %.1f%%", pct)
	case model.LabelBorderline:
		return fmt.Sprintf("**BORDERLINE**: Mixed or unclear sentiment. Confidence: %.1f%%", pct)
	case model.LabelNotHate:
		return fmt.Sprintf("**SAFE CONTENT**: No hate speech detected. Confidence: %.1f%%", pct)
	default:
		return fmt.Sprintf("Classification: %s. Confidence: %.1f%%", label, pct)
	}
}

// Targets returns the distinct targeted-group subcategories among hate
// entries, in order of first occurrence
func Targets(entries []model.WordAnalysis) []string {
	var targets []string
	for _, e := range entries {
		if e.Category != model.CategoryHate || !slices.Contains(targetSubcategories, e.Subcategory) {
			continue
		}
		if !slices.Contains(targets, e.Subcategory) {
			targets = append(targets, e.Subcategory)
		}
	}
	return targets
}

// Breakdown groups the matched texts by category and describes the shift
func Breakdown(entries []model.WordAnalysis, shift *model.ToneShift) model.Breakdown {
	b := model.Breakdown{
		HateWords:     model.HateWords{Words: []string{}, Subcategories: []string{}},
		ModerateWords: model.CategoryWords{Words: []string{}},
		SafeWords:     model.CategoryWords{Words: []string{}},
	}

	for _, e := range entries {
		switch e.Category {
		case model.CategoryHate:
			b.HateWords.Words = append(b.HateWords.Words, e.Word)
			if !slices.Contains(b.HateWords.Subcategories, e.Subcategory) {
				b.HateWords.Subcategories = append(b.HateWords.Subcategories, e.Subcategory)
			}
		case model.CategoryModerate:
			b.ModerateWords.Words = append(b.ModerateWords.Words, e.Word)
		case model.CategorySafe:
			b.SafeWords.Words = append(b.SafeWords.Words, e.Word)
		}
	}

	b.HateWords.Count = len(b.HateWords.Words)
	b.ModerateWords.Count = len(b.ModerateWords.Words)
	b.SafeWords.Count = len(b.SafeWords.Words)

	if shift != nil {
		b.ToneShift = &model.ShiftDetail{
			Detected:    true,
			Type:        shift.Type,
			Description: DescribeShift(shift.Type),
		}
	}

	return b
}
