// Demo program showing tone shift detection and escalation on sample texts
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ppiankov/toneguard/internal/analyzer"
	"github.com/ppiankov/toneguard/internal/model"
)

func main() {
	fmt.Println("=== Tone Shift Detection Demo ===")
	fmt.Println()

	samples := []string{
		"I love everyone but I hate Muslim people",
		"I support equality and kindness but all immigrants should go back",
		"Shoot them all, I love this country",
		"You are stupid but I still love you",
		"I believe in peace, equality and respect for all people",
	}

	plain := analyzer.New(nil)
	anchored := analyzer.New(nil, analyzer.WithAnchoredPhrases(true))

	for _, text := range samples {
		fmt.Printf("Text: %s\n", text)
		fmt.Println(strings.Repeat("-", 60))

		report, err := plain.Analyze(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
			os.Exit(1)
		}
		printReport(report)

		again, err := anchored.Analyze(text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
			os.Exit(1)
		}
		if again.Scores.Final != report.Scores.Final {
			fmt.Printf("  with anchored phrases: %s (final %.3f)\n", again.Classification, again.Scores.Final)
		}
		fmt.Println()
	}
}

func printReport(r *model.Report) {
	timeline := make([]string, len(r.WordAnalysis))
	for i, wa := range r.WordAnalysis {
		timeline[i] = fmt.Sprintf("%s@%d:%s", wa.Word, wa.Position, wa.Emotion)
	}
	fmt.Printf("  timeline: [%s]\n", strings.Join(timeline, ", "))

	if r.ToneShift != nil {
		fmt.Printf("  shift:    %s at index %d\n", r.ToneShift.Type, r.ToneShift.TransitionPoint)
		if r.Scores.Hate != r.Scores.HateBase {
			fmt.Printf("  escalated hate %.3f -> %.3f\n", r.Scores.HateBase, r.Scores.Hate)
		}
	} else {
		fmt.Println("  shift:    none")
	}
	fmt.Printf("  verdict:  %s (%.1f%%), final %.3f\n", r.Classification, r.Confidence*100, r.Scores.Final)
}
