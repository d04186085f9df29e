package search_test

import (
	"testing"

	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/search"
)

func sampleTools() []model.Tool {
	return []model.Tool{
		{ID: 1, Name: "Shodan"},
		{ID: 2, Name: "SpiderFoot"},
		{ID: 3, Name: "Sherlock"},
		{ID: 4, Name: "Maltego"},
	}
}

func TestFuzzyTools_ExactMatch(t *testing.T) {
	results := search.FuzzyTools(sampleTools(), "shodan")
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	if results[0].Tool.Name != "Shodan" {
		t.Errorf("expected Shodan first, got %s", results[0].Tool.Name)
	}
}

func TestFuzzyTools_SubsequenceMatch(t *testing.T) {
	// "shk" matches S-h-erloc-k but not Maltego.
	results := search.FuzzyTools(sampleTools(), "shk")
	for _, r := range results {
		if r.Tool.Name == "Maltego" {
			t.Errorf("Maltego must not match %q", "shk")
		}
	}
	found := false
	for _, r := range results {
		if r.Tool.Name == "Sherlock" {
			found = true
			if len(r.MatchedIndexes) != 3 {
				t.Errorf("expected 3 matched indexes, got %v", r.MatchedIndexes)
			}
		}
	}
	if !found {
		t.Error("expected Sherlock in results")
	}
}

func TestFuzzyTools_NoMatch(t *testing.T) {
	if results := search.FuzzyTools(sampleTools(), "zzzz"); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}

func TestFuzzyTools_EmptyQuery(t *testing.T) {
	if results := search.FuzzyTools(sampleTools(), ""); results != nil {
		t.Errorf("expected nil for empty query, got %v", results)
	}
}
