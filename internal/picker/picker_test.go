package picker_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/picker"
	"github.com/osint-atlas/atlas/internal/search"
)

func testResults() []search.Result {
	tools := []model.Tool{
		{ID: 1, Name: "Shodan", Category: "Search Engines", URL: "https://shodan.io"},
		{ID: 2, Name: "Sherlock", Category: "Username", URL: "https://github.com/sherlock-project/sherlock"},
		{ID: 3, Name: "SpiderFoot", Category: "Automation", URL: "https://spiderfoot.net"},
	}
	results := make([]search.Result, len(tools))
	for i := range tools {
		results[i] = search.Result{Tool: &tools[i]}
	}
	return results
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPicker_SelectFirst(t *testing.T) {
	p := picker.New(testResults(), "s")

	model2, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = model2.(picker.Picker)

	if p.Cancelled() {
		t.Fatal("unexpected cancellation")
	}
	tool := p.SelectedTool()
	if tool == nil || tool.Name != "Shodan" {
		t.Errorf("expected Shodan, got %+v", tool)
	}
}

func TestPicker_Navigation(t *testing.T) {
	p := picker.New(testResults(), "s")

	for _, msg := range []tea.KeyMsg{keyRune('j'), keyRune('j'), keyRune('j'), keyRune('k')} {
		m, _ := p.Update(msg)
		p = m.(picker.Picker)
	}
	m, _ := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = m.(picker.Picker)

	// Two effective downs (cursor stops at the end), then one up.
	tool := p.SelectedTool()
	if tool == nil || tool.Name != "Sherlock" {
		t.Errorf("expected Sherlock, got %+v", tool)
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, keyRune('q')} {
		p := picker.New(testResults(), "s")
		m, _ := p.Update(msg)
		p = m.(picker.Picker)

		if !p.Cancelled() {
			t.Errorf("expected cancellation on %v", msg)
		}
		if p.SelectedTool() != nil {
			t.Error("cancelled picker must not return a tool")
		}
	}
}

func TestPicker_NoSelectionWithoutEnter(t *testing.T) {
	p := picker.New(testResults(), "s")
	if p.SelectedTool() != nil {
		t.Error("expected nil before any selection")
	}
}
