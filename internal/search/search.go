package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/osint-atlas/atlas/internal/model"
)

// Result represents a fuzzy search match.
type Result struct {
	Tool           *model.Tool
	MatchedIndexes []int
	Score          int
}

// toolNames implements fuzzy.Source for a tool slice.
type toolNames []*model.Tool

func (tn toolNames) String(i int) string {
	return tn[i].Name
}

func (tn toolNames) Len() int {
	return len(tn)
}

// FuzzyTools searches the catalog by tool name using fuzzy matching.
// Returns results sorted by match score (best first).
func FuzzyTools(tools []model.Tool, query string) []Result {
	if query == "" {
		return nil
	}

	// Build slice of tool pointers
	candidates := make(toolNames, len(tools))
	for i := range tools {
		candidates[i] = &tools[i]
	}

	matches := fuzzy.FindFrom(query, candidates)

	results := make([]Result, len(matches))
	for i, m := range matches {
		results[i] = Result{
			Tool:           candidates[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
