package quiz

import "math"

// Category is a qualitative band for a final score.
type Category struct {
	Name    string
	Min     float64 // inclusive lower bound
	Emoji   string
	Message string
}

const (
	CategoryVeryHappy = "very happy"
	CategoryContent   = "content"
	CategoryLow       = "low"
	CategoryVeryLow   = "very low"
)

// categories is ordered by descending Min. The last band starts at -Inf so
// every score matches exactly one band.
var categories = []Category{
	{
		Name:    CategoryVeryHappy,
		Min:     4.0,
		Emoji:   "🌟",
		Message: "Hey, you're super happy! Keep shining!",
	},
	{
		Name:    CategoryContent,
		Min:     3.0,
		Emoji:   "😊",
		Message: "You're doing okay, but treat yourself to something nice today.",
	},
	{
		Name:    CategoryLow,
		Min:     2.0,
		Emoji:   "😐",
		Message: "Not the happiest day, but tomorrow's a fresh start.",
	},
	{
		Name:    CategoryVeryLow,
		Min:     math.Inf(-1),
		Emoji:   "💙",
		Message: "You seem low today. Maybe talk to a friend or do something you love.",
	},
}

// Categories returns the band table in evaluation order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ResultCategory maps a final score to its band.
func ResultCategory(score float64) Category {
	for _, c := range categories {
		if score >= c.Min {
			return c
		}
	}
	// NaN compares false against every bound.
	return categories[len(categories)-1]
}
