package main

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/ranok/entro/catalog"
)

// Render the per-class member counts of a loaded dictionary
func printCounts(lex *catalog.Lexicon) {
	counts := lex.Counts(nil)

	countsList := []pterm.BulletListItem{
		{
			Level:       0,
			Text:        fmt.Sprintf("Entries in catalog: %d", lex.Len()),
			BulletStyle: pterm.NewStyle(pterm.FgCyan),
		},
		{
			Level:       0,
			Text:        "Members per class:",
			BulletStyle: pterm.NewStyle(pterm.FgCyan),
		},
	}

	for _, token := range catalog.CountTokens() {
		countsList = append(countsList, pterm.BulletListItem{
			Level:       1,
			Text:        fmt.Sprintf("%s (%d)", token, counts[token]),
			BulletStyle: pterm.NewStyle(pterm.FgCyan),
			Bullet:      ">",
		})
	}

	fmt.Println()
	err := pterm.DefaultBulletList.WithItems(countsList).Render()
	_ = err
}
