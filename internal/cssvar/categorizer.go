package cssvar

import (
	"sort"
	"strings"
)

// categoryPrefixes maps property families to categories.
// A property belongs to the first family it equals or extends with "-".
var categoryPrefixes = []struct {
	family   string
	category PropertyCategory
}{
	{"color", CategoryVisual},
	{"background", CategoryVisual},
	{"border", CategoryVisual},
	{"outline", CategoryVisual},
	{"box-shadow", CategoryVisual},
	{"opacity", CategoryVisual},
	{"fill", CategoryVisual},
	{"stroke", CategoryVisual},
	{"caret-color", CategoryVisual},
	{"accent-color", CategoryVisual},

	{"margin", CategoryLayout},
	{"padding", CategoryLayout},
	{"gap", CategoryLayout},
	{"row-gap", CategoryLayout},
	{"column-gap", CategoryLayout},
	{"width", CategoryLayout},
	{"height", CategoryLayout},
	{"min", CategoryLayout},
	{"max", CategoryLayout},
	{"inset", CategoryLayout},
	{"top", CategoryLayout},
	{"right", CategoryLayout},
	{"bottom", CategoryLayout},
	{"left", CategoryLayout},
	{"flex", CategoryLayout},
	{"grid", CategoryLayout},
	{"z-index", CategoryLayout},
	{"inline-size", CategoryLayout},
	{"block-size", CategoryLayout},

	{"font", CategoryTypography},
	{"line-height", CategoryTypography},
	{"letter-spacing", CategoryTypography},
	{"word-spacing", CategoryTypography},
	{"text", CategoryTypography},

	{"transition", CategoryEffects},
	{"animation", CategoryEffects},
	{"transform", CategoryEffects},
	{"filter", CategoryEffects},
	{"backdrop-filter", CategoryEffects},
}

// categorizeProperty determines the category of a CSS property
func categorizeProperty(name string) PropertyCategory {
	name = strings.ToLower(name)

	// Vendor-prefixed properties
	if strings.HasPrefix(name, "-webkit-") ||
		strings.HasPrefix(name, "-moz-") ||
		strings.HasPrefix(name, "-ms-") ||
		strings.HasPrefix(name, "-o-") {
		return CategoryInternal
	}

	for _, p := range categoryPrefixes {
		if name == p.family || strings.HasPrefix(name, p.family+"-") {
			return p.category
		}
	}

	return CategoryOther
}

// CategoryCount is the number of issues for one property category
type CategoryCount struct {
	Category PropertyCategory
	Count    int
}

// countByCategory groups issues by the category of their property,
// most frequent first (ties by name for determinism)
func countByCategory(issues []Issue) []CategoryCount {
	counts := make(map[PropertyCategory]int)
	for _, issue := range issues {
		counts[categorizeProperty(issue.Property)]++
	}

	result := make([]CategoryCount, 0, len(counts))
	for cat, n := range counts {
		result = append(result, CategoryCount{Category: cat, Count: n})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count != result[j].Count {
			return result[i].Count > result[j].Count
		}
		return result[i].Category < result[j].Category
	})

	return result
}
