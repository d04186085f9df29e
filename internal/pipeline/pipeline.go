// Package pipeline derives the rendered tool list from session state and the
// working catalog. Every function is pure: inputs are never mutated and the
// output is recomputed from scratch on each call.
package pipeline

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/osint-atlas/atlas/internal/model"
)

// SortMode selects the ordering of the derived list.
type SortMode int

const (
	SortNameAsc SortMode = iota
	SortNameDesc
	SortCategory
)

// Label returns the display name of the sort mode.
func (m SortMode) Label() string {
	switch m {
	case SortNameAsc:
		return "Name A-Z"
	case SortNameDesc:
		return "Name Z-A"
	case SortCategory:
		return "Category"
	default:
		return "Name A-Z"
	}
}

// Next cycles to the following sort mode.
func (m SortMode) Next() SortMode {
	switch m {
	case SortNameAsc:
		return SortNameDesc
	case SortNameDesc:
		return SortCategory
	default:
		return SortNameAsc
	}
}

// Filters holds the active filter state. The zero value of each field means
// "no constraint"; an empty pricing or status set imposes none.
type Filters struct {
	Query          string
	Category       string
	Pricing        map[model.Pricing]bool
	NoRegistration bool
	Status         map[model.Status]bool
}

// NewFilters returns the default filter state: category "All", nothing else
// active.
func NewFilters() Filters {
	return Filters{
		Category: model.CategoryAll,
		Pricing:  map[model.Pricing]bool{},
		Status:   map[model.Status]bool{},
	}
}

// AdvancedActive reports whether any pricing, registration or status filter
// is set.
func (f Filters) AdvancedActive() bool {
	return anySet(f.Pricing) || f.NoRegistration || anySet(f.Status)
}

// Clear resets the advanced filters, leaving search and category untouched.
func (f *Filters) Clear() {
	f.Pricing = map[model.Pricing]bool{}
	f.NoRegistration = false
	f.Status = map[model.Status]bool{}
}

func anySet[K comparable](set map[K]bool) bool {
	for _, on := range set {
		if on {
			return true
		}
	}
	return false
}

// Matches reports whether a tool satisfies all five predicates: search,
// category, pricing, registration and status.
func (f Filters) Matches(t model.Tool) bool {
	query := strings.ToLower(f.Query)
	matchesSearch := query == "" ||
		strings.Contains(strings.ToLower(t.Name), query) ||
		strings.Contains(strings.ToLower(t.Description), query)

	matchesCategory := f.Category == model.CategoryAll || f.Category == "" ||
		t.Category == f.Category

	matchesPricing := !anySet(f.Pricing) || f.Pricing[t.Pricing]

	matchesRegistration := !f.NoRegistration || !t.Registration

	matchesStatus := !anySet(f.Status) || f.Status[t.Status]

	return matchesSearch && matchesCategory && matchesPricing &&
		matchesRegistration && matchesStatus
}

// Apply filters and sorts the working list. The result is a fresh slice;
// the input is left untouched.
func Apply(tools []model.Tool, f Filters, mode SortMode) []model.Tool {
	result := make([]model.Tool, 0, len(tools))
	for _, t := range tools {
		if f.Matches(t) {
			result = append(result, t)
		}
	}
	Sort(result, mode)
	return result
}

// Sort orders tools in place by the given mode using locale-aware string
// comparison. The sort is stable.
func Sort(tools []model.Tool, mode SortMode) {
	coll := collate.New(language.English)
	var less func(a, b model.Tool) bool
	switch mode {
	case SortNameDesc:
		less = func(a, b model.Tool) bool {
			return coll.CompareString(a.Name, b.Name) > 0
		}
	case SortCategory:
		less = func(a, b model.Tool) bool {
			return coll.CompareString(a.Category, b.Category) < 0
		}
	default:
		less = func(a, b model.Tool) bool {
			return coll.CompareString(a.Name, b.Name) < 0
		}
	}
	sort.SliceStable(tools, func(i, j int) bool {
		return less(tools[i], tools[j])
	})
}

// maxRecent bounds the recently-viewed list.
const maxRecent = 5

// PushRecent prepends id to the recently-viewed list, removing any prior
// occurrence and truncating to the five most recent.
func PushRecent(recent []int, id int) []int {
	result := make([]int, 0, len(recent)+1)
	result = append(result, id)
	for _, existing := range recent {
		if existing != id {
			result = append(result, existing)
		}
	}
	if len(result) > maxRecent {
		result = result[:maxRecent]
	}
	return result
}

// Project maps ids to full Tool records by lookup against the working list.
// Ids with no matching tool (stale after a catalog refresh) are dropped.
func Project(tools []model.Tool, ids []int) []model.Tool {
	result := make([]model.Tool, 0, len(ids))
	for _, id := range ids {
		if t := model.FindTool(tools, id); t != nil {
			result = append(result, *t)
		}
	}
	return result
}
