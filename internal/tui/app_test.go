package tui_test

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"gotest.tools/v3/assert"

	"github.com/osint-atlas/atlas/internal/auth"
	"github.com/osint-atlas/atlas/internal/catalog"
	"github.com/osint-atlas/atlas/internal/review"
	"github.com/osint-atlas/atlas/internal/session"
	"github.com/osint-atlas/atlas/internal/store"
	"github.com/osint-atlas/atlas/internal/tui"
)

// testApp wires an app against the static catalog and a throwaway store,
// then plays the initial fetch so the list is populated.
func testApp(t *testing.T, resolver *catalog.Resolver) (tui.App, *session.State) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "atlas.db"), nil)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	if resolver == nil {
		resolver = catalog.NewResolver(nil, nil, nil)
	}

	sess := session.New(st)
	app := tui.NewApp(tui.AppParams{
		Session:   sess,
		Store:     st,
		Auth:      auth.NewMockProvider(st, 0),
		Submitter: review.NewSubmitter(st, 0),
		Resolver:  resolver,
		Opener:    func(string) error { return nil },
	})

	// Run the startup fetch synchronously and feed the result back.
	model, _ := app.Update(app.Init()())
	return model.(tui.App), sess
}

func press(t *testing.T, app tui.App, keys ...string) tui.App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "space":
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		model, _ := app.Update(msg)
		app = model.(tui.App)
	}
	return app
}

func TestApp_LoadsStaticCatalog(t *testing.T) {
	app, _ := testApp(t, nil)

	assert.Equal(t, len(app.Tools()), 75)
	assert.Equal(t, len(app.Visible()), 75)
	assert.Assert(t, !app.Degraded())

	view := app.View()
	assert.Assert(t, strings.Contains(view, "Showing 75 of 75 tools"))
	assert.Assert(t, !strings.Contains(view, "OFFLINE MODE"))
}

func TestApp_DegradedBanner(t *testing.T) {
	remote := catalog.NewRemoteSource("http://127.0.0.1:1", "key")
	app, _ := testApp(t, catalog.NewResolver(remote, nil, nil))

	assert.Assert(t, app.Degraded())
	// Fallback still renders a full catalog.
	assert.Equal(t, len(app.Visible()), 75)
	assert.Assert(t, strings.Contains(app.View(), "OFFLINE MODE"))
}

func TestApp_SearchFiltersList(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(t, app, "/", "s", "h", "o", "d", "a", "n", "enter")

	if len(app.Visible()) == 0 {
		t.Fatal("expected at least one match for shodan")
	}
	for _, tool := range app.Visible() {
		haystack := strings.ToLower(tool.Name + " " + tool.Description)
		assert.Assert(t, strings.Contains(haystack, "shodan"), "tool %s does not match", tool.Name)
	}
}

func TestApp_SearchEscClearsQuery(t *testing.T) {
	app, sess := testApp(t, nil)

	app = press(t, app, "/", "x", "y", "z", "z", "y", "esc")

	assert.Equal(t, sess.Filters.Query, "")
	assert.Equal(t, len(app.Visible()), 75)
}

func TestApp_CategoryCycling(t *testing.T) {
	app, sess := testApp(t, nil)

	app = press(t, app, "tab")
	assert.Equal(t, sess.Filters.Category, "Username")
	for _, tool := range app.Visible() {
		assert.Equal(t, tool.Category, "Username")
	}

	// Shift+tab steps back to All.
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	app = model.(tui.App)
	assert.Equal(t, sess.Filters.Category, "All")
	assert.Equal(t, len(app.Visible()), 75)
}

func TestApp_FavoriteToggle(t *testing.T) {
	app, sess := testApp(t, nil)
	first := app.Visible()[0]

	app = press(t, app, "f")
	assert.Assert(t, sess.IsFavorite(first.ID))

	app = press(t, app, "f")
	assert.Assert(t, !sess.IsFavorite(first.ID))
}

func TestApp_OpenRecordsRecentView(t *testing.T) {
	app, sess := testApp(t, nil)
	first := app.Visible()[0]

	app = press(t, app, "enter")

	if len(sess.Recent) != 1 || sess.Recent[0] != first.ID {
		t.Errorf("expected recent [%d], got %v", first.ID, sess.Recent)
	}
	assert.Assert(t, strings.Contains(app.View(), "Recently viewed: "+first.Name))
}

func TestApp_CompareSelectionCap(t *testing.T) {
	app, sess := testApp(t, nil)

	app = press(t, app, "c")
	assert.Assert(t, sess.CompareMode)

	// Select four tools; the fourth must be rejected.
	app = press(t, app, "space", "j", "space", "j", "space", "j", "space")

	assert.Equal(t, len(sess.Compare), 3)
	assert.Assert(t, strings.Contains(app.View(), "Comparison is limited to 3 tools"))

	// The comparison view lists the three selected tools.
	app = press(t, app, "v")
	view := app.View()
	assert.Assert(t, strings.Contains(view, "Tool Comparison"))
}

func TestApp_CompareModeOpenSelectsInstead(t *testing.T) {
	app, sess := testApp(t, nil)

	app = press(t, app, "c", "enter")

	// In compare mode, open toggles selection and records no view.
	assert.Equal(t, len(sess.Compare), 1)
	assert.Equal(t, len(sess.Recent), 0)
	_ = app
}

func TestApp_CompareViewTruncatesMultibyteNames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":1,"name":"` + strings.Repeat("ü", 40) + `","category":"Network","status":"online","url":"https://example.com","pricing":"Free","registration":false}]`))
	}))
	defer srv.Close()

	remote := catalog.NewRemoteSource(srv.URL, "key")
	app, _ := testApp(t, catalog.NewResolver(remote, nil, nil))

	app = press(t, app, "c", "space", "v")
	view := app.View()

	assert.Assert(t, utf8.ValidString(view), "truncation split a rune")
	assert.Assert(t, strings.Contains(view, strings.Repeat("ü", 23)+"..."))
}

func TestApp_ReviewRequiresSignIn(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(t, app, "R")
	assert.Assert(t, strings.Contains(app.View(), "You must be signed in to review"))
}

func TestApp_SortCycling(t *testing.T) {
	app, _ := testApp(t, nil)

	first := app.Visible()[0].Name
	app = press(t, app, "s")
	last := app.Visible()[len(app.Visible())-1].Name

	// Name Z-A is the exact reverse of Name A-Z.
	assert.Equal(t, first, last)
	assert.Assert(t, strings.Contains(app.View(), "Name Z-A"))
}

func TestApp_FilterPanel(t *testing.T) {
	app, sess := testApp(t, nil)

	// Toggle "Pricing: Free" and close the panel.
	app = press(t, app, "F", "space", "esc")

	assert.Assert(t, sess.Filters.AdvancedActive())
	for _, tool := range app.Visible() {
		assert.Equal(t, string(tool.Pricing), "Free")
	}

	app = press(t, app, "X")
	assert.Assert(t, !sess.Filters.AdvancedActive())
	assert.Equal(t, len(app.Visible()), 75)
}

func TestApp_HelpOverlay(t *testing.T) {
	app, _ := testApp(t, nil)

	app = press(t, app, "?")
	assert.Assert(t, strings.Contains(app.View(), "Toggle compare mode"))

	app = press(t, app, "?")
	assert.Assert(t, strings.Contains(app.View(), "Showing 75 of 75 tools"))
}
