package cssvar

import (
	"sort"
	"strings"

	"github.com/mazznoer/csscolorparser"
)

// isColorLiteral reports whether a hardcoded value is a color the parser
// understands (named, hex, rgb(), hsl(), hwb() ...)
func isColorLiteral(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	_, err := csscolorparser.Parse(value)
	return err == nil
}

// QuickWin is a hardcoded value repeated across the scanned files.
// Replacing it everywhere with one variable removes Occurrences issues.
type QuickWin struct {
	Value       string   // "#1a73e8"
	Occurrences int      // 12
	Properties  []string // ["background", "color"]
	Suggestion  string   // "$brand" when a variable was declared with this value
	IsColor     bool
}

// maxQuickWins limits the quick wins list
const maxQuickWins = 10

// generateQuickWins ranks the values behind issues by frequency
func generateQuickWins(issues []Issue) []QuickWin {
	byValue := make(map[string]*QuickWin)
	props := make(map[string]map[string]bool)

	for _, issue := range issues {
		win, ok := byValue[issue.Value]
		if !ok {
			win = &QuickWin{Value: issue.Value}
			byValue[issue.Value] = win
			props[issue.Value] = make(map[string]bool)
		}
		win.Occurrences++
		props[issue.Value][issue.Property] = true
		if win.Suggestion == "" && issue.Suggestion != "" {
			win.Suggestion = issue.Suggestion
		}
	}

	wins := make([]QuickWin, 0, len(byValue))
	for value, win := range byValue {
		// A single occurrence is not a consolidation opportunity
		if win.Occurrences < 2 {
			continue
		}
		for p := range props[value] {
			win.Properties = append(win.Properties, p)
		}
		sort.Strings(win.Properties)
		win.IsColor = isColorLiteral(value)
		wins = append(wins, *win)
	}

	sort.Slice(wins, func(i, j int) bool {
		if wins[i].Occurrences != wins[j].Occurrences {
			return wins[i].Occurrences > wins[j].Occurrences
		}
		return wins[i].Value < wins[j].Value
	})

	if len(wins) > maxQuickWins {
		wins = wins[:maxQuickWins]
	}

	return wins
}
