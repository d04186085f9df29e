package review

import (
	"math"
	"sort"

	"github.com/osint-atlas/atlas/internal/model"
)

// Summary is the per-tool rating aggregate shown on a catalog card.
type Summary struct {
	Rating float64
	Count  int
	// Recent holds up to the three most recent user reviews, newest first.
	// Empty for seed summaries.
	Recent []model.Review
}

// seedRatings is the static pre-populated aggregate table used for tools
// that have no user-submitted reviews yet.
var seedRatings = map[int]Summary{
	1:  {Rating: 4.5, Count: 23},
	2:  {Rating: 4.2, Count: 18},
	3:  {Rating: 3.8, Count: 12},
	4:  {Rating: 4.7, Count: 31},
	5:  {Rating: 3.2, Count: 8},
	11: {Rating: 4.9, Count: 156},
	13: {Rating: 4.8, Count: 89},
	23: {Rating: 4.3, Count: 45},
	30: {Rating: 4.6, Count: 78},
	42: {Rating: 4.4, Count: 67},
}

// Summarize aggregates the user-submitted reviews for one tool: mean rating
// rounded to one decimal, review count, and the three most recent reviews.
// Returns nil if the tool has no user reviews.
func Summarize(toolID int, reviews []model.Review) *Summary {
	var matching []model.Review
	for _, r := range reviews {
		if r.ToolID == toolID {
			matching = append(matching, r)
		}
	}
	if len(matching) == 0 {
		return nil
	}

	sum := 0
	for _, r := range matching {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(matching))

	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Time().After(matching[j].Time())
	})
	recent := matching
	if len(recent) > 3 {
		recent = recent[:3]
	}

	return &Summary{
		Rating: math.Round(avg*10) / 10,
		Count:  len(matching),
		Recent: recent,
	}
}

// RatingFor resolves the displayed aggregate for a tool. User-submitted
// reviews take precedence over the seed table; they are never blended. The
// second return is false when neither source has data.
func RatingFor(toolID int, reviews []model.Review) (Summary, bool) {
	if s := Summarize(toolID, reviews); s != nil {
		return *s, true
	}
	if s, ok := seedRatings[toolID]; ok {
		return s, true
	}
	return Summary{}, false
}
