package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/DoyleJ11/odd-one-out/internal/engine"
)

const swatch = "████████"

// swatchOptions labels each option by position so duplicate colors stay
// distinct in the select list.
func swatchOptions(r engine.Round) ([]string, map[string]engine.Color) {
	labels := make([]string, 0, len(r.Options))
	byLabel := make(map[string]engine.Color, len(r.Options))
	for i, c := range r.Options {
		red, green, blue := c.RGB()
		label := fmt.Sprintf("%d %s", i+1, pterm.NewRGB(red, green, blue).Sprint(swatch))
		labels = append(labels, label)
		byLabel[label] = c
	}
	return labels, byLabel
}

func reactionText(s engine.Session) string {
	if last, ok := s.LastReactionTime(); ok {
		return fmt.Sprintf("%.2f", last)
	}
	return "N/A"
}

func printStats(s engine.Session) {
	pterm.Info.Printfln("Reaction Time: %s seconds   Score: %d", reactionText(s), s.Score)
}

func gameOverText(sum engine.Summary) string {
	avg := "N/A"
	if sum.HasAverage {
		avg = fmt.Sprintf("%.2f", sum.Average)
	}
	text := pterm.Sprintfln("Your final score is: %d", sum.FinalScore)
	text += pterm.Sprintfln("Average Reaction Time: %s seconds", avg)
	if msg := sum.Comparison.Message(); msg != "" {
		text += msg
	}
	return text
}

func printGameOver(s engine.Session) {
	sum, err := engine.Summarize(s)
	if err != nil {
		pterm.Error.Println(err)
		return
	}
	box := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)
	box.WithTitle(pterm.LightRed("|GAME OVER|")).WithTitleTopCenter().Println(gameOverText(sum))
}
