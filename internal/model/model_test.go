package model_test

import (
	"testing"
	"time"

	"github.com/osint-atlas/atlas/internal/model"
)

func TestNewReview(t *testing.T) {
	r := model.NewReview(model.NewReviewParams{
		ToolID:    7,
		UserID:    "u1",
		UserEmail: "analyst@example.com",
		Rating:    4,
		Comment:   "Reliable results on every engagement so far.",
	})

	if r.ID == "" {
		t.Error("expected a generated id")
	}
	if r.ToolID != 7 || r.UserID != "u1" || r.Rating != 4 {
		t.Errorf("fields not carried over: %+v", r)
	}
	if r.Helpful != 0 {
		t.Errorf("expected helpful 0, got %d", r.Helpful)
	}
	if _, err := time.Parse(time.RFC3339, r.Date); err != nil {
		t.Errorf("date not RFC3339: %q", r.Date)
	}
	if r.Time().IsZero() {
		t.Error("expected a parseable timestamp")
	}
}

func TestReviewTime_Malformed(t *testing.T) {
	r := model.Review{Date: "yesterday"}
	if !r.Time().IsZero() {
		t.Errorf("expected zero time, got %v", r.Time())
	}
}

func TestNewUser(t *testing.T) {
	a := model.NewUser("analyst@example.com", "analyst")
	b := model.NewUser("analyst@example.com", "analyst")

	if a.ID == "" || b.ID == "" {
		t.Error("expected generated ids")
	}
	if a.ID == b.ID {
		t.Error("expected unique ids")
	}
	if a.Email != "analyst@example.com" || a.Name != "analyst" {
		t.Errorf("fields not carried over: %+v", a)
	}
}

func TestFindTool(t *testing.T) {
	tools := []model.Tool{{ID: 1, Name: "Shodan"}, {ID: 2, Name: "Censys"}}

	if got := model.FindTool(tools, 2); got == nil || got.Name != "Censys" {
		t.Errorf("expected Censys, got %+v", got)
	}
	if got := model.FindTool(tools, 99); got != nil {
		t.Errorf("expected nil for unknown id, got %+v", got)
	}
}

func TestCategories(t *testing.T) {
	if model.Categories[0] != model.CategoryAll {
		t.Errorf("expected %q first, got %q", model.CategoryAll, model.Categories[0])
	}
	seen := map[string]bool{}
	for _, c := range model.Categories {
		if seen[c] {
			t.Errorf("duplicate category %q", c)
		}
		seen[c] = true
	}
}
