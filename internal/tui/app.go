package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/osint-atlas/atlas/internal/auth"
	"github.com/osint-atlas/atlas/internal/catalog"
	"github.com/osint-atlas/atlas/internal/export"
	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/pipeline"
	"github.com/osint-atlas/atlas/internal/review"
	"github.com/osint-atlas/atlas/internal/session"
	"github.com/osint-atlas/atlas/internal/store"
)

// catalogMsg carries the committed outcome of one catalog resolution.
type catalogMsg struct {
	result catalog.Result
}

// authDoneMsg carries the outcome of a sign-in/sign-up attempt.
type authDoneMsg struct {
	user *model.User
	err  error
}

// reviewDoneMsg carries the outcome of a review submission.
type reviewDoneMsg struct {
	reviews []model.Review
	err     error
}

// App is the main bubbletea model for the catalog browser.
type App struct {
	sess      *session.State
	st        *store.Store
	authp     auth.Provider
	submitter *review.Submitter
	resolver  *catalog.Resolver
	opener    func(url string) error

	keys   KeyMap
	styles Styles

	// Working catalog and its derivations
	tools   []model.Tool
	visible []model.Tool
	reviews []model.Review

	loading  bool
	degraded bool
	fetchErr error

	mode   mode
	cursor int
	status string

	search     SearchState
	filters    FilterPanelState
	authForm   AuthState
	reviewForm ReviewFormState

	// For gg command
	lastKeyWasG bool

	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Session   *session.State
	Store     *store.Store
	Auth      auth.Provider
	Submitter *review.Submitter
	Resolver  *catalog.Resolver
	// Opener opens a tool URL in the browser. Optional; nil means opens are
	// recorded but not launched.
	Opener func(url string) error
	Keys   *KeyMap
	Styles *Styles
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	app := App{
		sess:       params.Session,
		st:         params.Store,
		authp:      params.Auth,
		submitter:  params.Submitter,
		resolver:   params.Resolver,
		opener:     params.Opener,
		keys:       keys,
		styles:     styles,
		reviews:    params.Store.LoadValidReviews(),
		loading:    true,
		search:     NewSearchState(),
		authForm:   NewAuthState(),
		reviewForm: NewReviewFormState(),
		width:      80,
		height:     24,
	}
	return app
}

// Visible returns the current derived tool list.
func (a App) Visible() []model.Tool {
	return a.visible
}

// Tools returns the working catalog.
func (a App) Tools() []model.Tool {
	return a.tools
}

// Reviews returns the in-memory review collection.
func (a App) Reviews() []model.Review {
	return a.reviews
}

// Degraded reports whether the catalog is running on fallback data.
func (a App) Degraded() bool {
	return a.degraded
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// refresh recomputes the derived list from session state and the working
// catalog, and clamps the cursor.
func (a *App) refresh() {
	a.visible = pipeline.Apply(a.tools, a.sess.Filters, a.sess.Sort)
	if a.cursor >= len(a.visible) {
		a.cursor = len(a.visible) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

// selectedTool returns the tool under the cursor, or nil.
func (a *App) selectedTool() *model.Tool {
	if len(a.visible) == 0 || a.cursor >= len(a.visible) {
		return nil
	}
	return &a.visible[a.cursor]
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return a.fetchCatalog()
}

// fetchCatalog resolves the working tool list off the UI loop. If the
// program has exited by the time the result arrives, bubbletea drops the
// message and no state is written.
func (a App) fetchCatalog() tea.Cmd {
	resolver := a.resolver
	return func() tea.Msg {
		return catalogMsg{result: resolver.Resolve(context.Background())}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case catalogMsg:
		a.loading = false
		a.tools = msg.result.Tools
		a.degraded = msg.result.Degraded
		a.fetchErr = msg.result.Err
		a.refresh()
		return a, nil

	case authDoneMsg:
		a.authForm.Loading = false
		if msg.err != nil {
			a.authForm.Err = msg.err.Error()
			return a, nil
		}
		a.sess.SetUser(msg.user)
		a.authForm.Reset()
		a.mode = modeBrowse
		a.status = fmt.Sprintf("Signed in as %s", msg.user.Name)
		return a, nil

	case reviewDoneMsg:
		a.reviewForm.Loading = false
		if msg.err != nil {
			// Form keeps its values; the message tells the user what to fix.
			a.reviewForm.Err = msg.err.Error()
			return a, nil
		}
		a.reviews = msg.reviews
		a.st.ScheduleSaveReviews(a.reviews)
		a.reviewForm.Reset()
		a.mode = modeBrowse
		a.status = "Review submitted"
		return a, nil

	case tea.KeyMsg:
		switch a.mode {
		case modeSearch:
			return a.updateSearch(msg)
		case modeFilters:
			return a.updateFilters(msg)
		case modeAuth:
			return a.updateAuth(msg)
		case modeReviewForm:
			return a.updateReviewForm(msg)
		case modeCompareView, modeReviews, modeHelp:
			return a.updateOverlay(msg)
		default:
			return a.updateBrowse(msg)
		}
	}

	return a, nil
}

// updateBrowse handles keys in the main list view.
func (a App) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Handle gg sequence
	if key.Matches(msg, a.keys.Top) {
		if a.lastKeyWasG {
			a.cursor = 0
			a.lastKeyWasG = false
			return a, nil
		}
		a.lastKeyWasG = true
		return a, nil
	}
	a.lastKeyWasG = false

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Down):
		if len(a.visible) > 0 && a.cursor < len(a.visible)-1 {
			a.cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}

	case key.Matches(msg, a.keys.Bottom):
		if len(a.visible) > 0 {
			a.cursor = len(a.visible) - 1
		}

	case key.Matches(msg, a.keys.Open):
		if tool := a.selectedTool(); tool != nil {
			if a.sess.CompareMode {
				a.sess.ToggleCompare(tool.ID)
				return a, nil
			}
			a.sess.RecordView(tool.ID)
			if a.opener != nil {
				_ = a.opener(tool.URL)
			}
			a.status = fmt.Sprintf("Opened %s", tool.Name)
		}

	case key.Matches(msg, a.keys.Favorite):
		if tool := a.selectedTool(); tool != nil {
			a.sess.ToggleFavorite(tool.ID)
		}

	case key.Matches(msg, a.keys.Search):
		a.mode = modeSearch
		a.search.Input.SetValue(a.sess.Filters.Query)
		a.search.Input.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.NextCategory):
		a.sess.Filters.Category = cycleCategory(a.sess.Filters.Category, 1)
		a.refresh()

	case key.Matches(msg, a.keys.PrevCategory):
		a.sess.Filters.Category = cycleCategory(a.sess.Filters.Category, -1)
		a.refresh()

	case key.Matches(msg, a.keys.Sort):
		a.sess.Sort = a.sess.Sort.Next()
		a.refresh()

	case key.Matches(msg, a.keys.Filters):
		a.mode = modeFilters
		a.filters.Cursor = 0

	case key.Matches(msg, a.keys.ClearFilters):
		a.sess.Filters.Clear()
		a.refresh()

	case key.Matches(msg, a.keys.Compare):
		a.sess.SetCompareMode(!a.sess.CompareMode)
		if a.sess.CompareMode {
			a.status = "Compare mode: space selects up to 3 tools, v shows the comparison"
		} else {
			a.status = ""
		}

	case key.Matches(msg, a.keys.Select):
		if a.sess.CompareMode {
			if tool := a.selectedTool(); tool != nil {
				if !a.sess.ToggleCompare(tool.ID) {
					a.status = "Comparison is limited to 3 tools"
				}
			}
		}

	case key.Matches(msg, a.keys.ShowCompare):
		if len(a.sess.Compare) > 0 {
			a.mode = modeCompareView
		}

	case key.Matches(msg, a.keys.Reviews):
		if a.selectedTool() != nil {
			a.mode = modeReviews
		}

	case key.Matches(msg, a.keys.AddReview):
		tool := a.selectedTool()
		if tool == nil {
			return a, nil
		}
		if a.sess.User == nil {
			a.status = review.ErrNotSignedIn.Error()
			return a, nil
		}
		a.mode = modeReviewForm
		a.reviewForm.Reset()
		a.reviewForm.ToolID = tool.ID
		a.reviewForm.Comment.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.Account):
		if a.sess.User != nil {
			a.authp.SignOut()
			a.sess.SetUser(nil)
			a.status = "Signed out"
			return a, nil
		}
		a.mode = modeAuth
		a.authForm.Reset()
		a.authForm.Email.Focus()
		return a, textinput.Blink

	case key.Matches(msg, a.keys.YankURL):
		if tool := a.selectedTool(); tool != nil {
			if err := clipboard.WriteAll(tool.URL); err != nil {
				a.status = "Clipboard unavailable"
			} else {
				a.status = fmt.Sprintf("Copied %s", tool.URL)
			}
		}

	case key.Matches(msg, a.keys.Export):
		path, err := export.DefaultPath()
		if err == nil {
			err = export.WriteFile(path, a.visible)
		}
		if err != nil {
			a.status = fmt.Sprintf("Export failed: %v", err)
		} else {
			a.status = fmt.Sprintf("Exported %d tools to %s", len(a.visible), path)
		}

	case key.Matches(msg, a.keys.Retry):
		a.loading = true
		return a, a.fetchCatalog()

	case key.Matches(msg, a.keys.Help):
		a.mode = modeHelp
	}

	return a, nil
}

// updateSearch handles keys while the search input is focused. The derived
// list updates on every keystroke.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		a.search.Input.Blur()
		a.sess.Filters.Query = ""
		a.search.Input.Reset()
		a.mode = modeBrowse
		a.refresh()
		return a, nil
	case tea.KeyEnter:
		a.search.Input.Blur()
		a.mode = modeBrowse
		return a, nil
	}

	var cmd tea.Cmd
	a.search.Input, cmd = a.search.Input.Update(msg)
	a.sess.Filters.Query = a.search.Input.Value()
	a.refresh()
	return a, cmd
}

// updateFilters handles keys in the advanced filter panel.
func (a App) updateFilters(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, a.keys.Filters), key.Matches(msg, a.keys.Quit):
		a.mode = modeBrowse
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if a.filters.Cursor < filterRowCount-1 {
			a.filters.Cursor++
		}

	case key.Matches(msg, a.keys.Up):
		if a.filters.Cursor > 0 {
			a.filters.Cursor--
		}

	case key.Matches(msg, a.keys.Select), msg.Type == tea.KeyEnter:
		f := &a.sess.Filters
		switch a.filters.Cursor {
		case rowPricingFree:
			f.Pricing[model.PricingFree] = !f.Pricing[model.PricingFree]
		case rowPricingFreemium:
			f.Pricing[model.PricingFreemium] = !f.Pricing[model.PricingFreemium]
		case rowPricingPaid:
			f.Pricing[model.PricingPaid] = !f.Pricing[model.PricingPaid]
		case rowNoRegistration:
			f.NoRegistration = !f.NoRegistration
		case rowStatusOnline:
			f.Status[model.StatusOnline] = !f.Status[model.StatusOnline]
		case rowStatusWarning:
			f.Status[model.StatusWarning] = !f.Status[model.StatusWarning]
		case rowStatusOffline:
			f.Status[model.StatusOffline] = !f.Status[model.StatusOffline]
		}
		a.refresh()

	case key.Matches(msg, a.keys.ClearFilters):
		a.sess.Filters.Clear()
		a.refresh()
	}

	return a, nil
}

// updateAuth handles keys in the sign-in/sign-up form.
func (a App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.authForm.Loading {
		return a, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		a.authForm.Reset()
		a.mode = modeBrowse
		return a, nil

	case tea.KeyTab:
		if a.authForm.Tab == tabSignIn {
			a.authForm.Tab = tabSignUp
		} else {
			a.authForm.Tab = tabSignIn
		}
		a.authForm.Err = ""
		return a, nil

	case tea.KeyUp, tea.KeyDown:
		delta := 1
		if msg.Type == tea.KeyUp {
			delta = -1
		}
		count := a.authForm.FieldCount()
		a.authForm.Focus = (a.authForm.Focus + delta + count) % count
		a.focusAuthField()
		return a, textinput.Blink

	case tea.KeyEnter:
		if a.authForm.Focus < a.authForm.FieldCount()-1 {
			a.authForm.Focus++
			a.focusAuthField()
			return a, textinput.Blink
		}
		return a.submitAuth()
	}

	var cmd tea.Cmd
	switch a.authForm.Focus {
	case 0:
		a.authForm.Email, cmd = a.authForm.Email.Update(msg)
	case 1:
		a.authForm.Password, cmd = a.authForm.Password.Update(msg)
	case 2:
		a.authForm.Name, cmd = a.authForm.Name.Update(msg)
	}
	return a, cmd
}

func (a *App) focusAuthField() {
	a.authForm.Email.Blur()
	a.authForm.Password.Blur()
	a.authForm.Name.Blur()
	switch a.authForm.Focus {
	case 0:
		a.authForm.Email.Focus()
	case 1:
		a.authForm.Password.Focus()
	case 2:
		a.authForm.Name.Focus()
	}
}

func (a App) submitAuth() (tea.Model, tea.Cmd) {
	a.authForm.Err = ""
	a.authForm.Loading = true

	provider := a.authp
	tab := a.authForm.Tab
	email := a.authForm.Email.Value()
	password := a.authForm.Password.Value()
	name := a.authForm.Name.Value()

	return a, func() tea.Msg {
		var user *model.User
		var err error
		if tab == tabSignUp {
			user, err = provider.SignUp(context.Background(), email, password, name)
		} else {
			user, err = provider.SignIn(context.Background(), email, password)
		}
		return authDoneMsg{user: user, err: err}
	}
}

// updateReviewForm handles keys in the review submission form.
func (a App) updateReviewForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.reviewForm.Loading {
		return a, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		a.reviewForm.Reset()
		a.mode = modeBrowse
		return a, nil

	case tea.KeyEnter:
		return a.submitReview()
	}

	// Number keys set the star rating; everything else edits the comment.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '5' && !a.reviewForm.Comment.Focused() {
		a.reviewForm.Rating = int(msg.Runes[0] - '0')
		return a, nil
	}
	if msg.Type == tea.KeyCtrlR {
		// Toggle between rating selection and comment editing
		if a.reviewForm.Comment.Focused() {
			a.reviewForm.Comment.Blur()
		} else {
			a.reviewForm.Comment.Focus()
		}
		return a, textinput.Blink
	}

	var cmd tea.Cmd
	a.reviewForm.Comment, cmd = a.reviewForm.Comment.Update(msg)
	return a, cmd
}

func (a App) submitReview() (tea.Model, tea.Cmd) {
	a.reviewForm.Err = ""
	a.reviewForm.Loading = true

	submitter := a.submitter
	params := review.SubmitParams{
		User:     a.sess.User,
		Tool:     model.FindTool(a.tools, a.reviewForm.ToolID),
		Rating:   a.reviewForm.Rating,
		Comment:  a.reviewForm.Comment.Value(),
		Existing: a.reviews,
	}

	return a, func() tea.Msg {
		updated, _, err := submitter.Submit(context.Background(), params)
		return reviewDoneMsg{reviews: updated, err: err}
	}
}

// updateOverlay handles keys in read-only overlays (comparison, reviews,
// help): any dismissal key returns to the list.
func (a App) updateOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc,
		key.Matches(msg, a.keys.Quit),
		key.Matches(msg, a.keys.Help) && a.mode == modeHelp,
		key.Matches(msg, a.keys.ShowCompare) && a.mode == modeCompareView,
		key.Matches(msg, a.keys.Reviews) && a.mode == modeReviews:
		a.mode = modeBrowse
	}
	return a, nil
}

// cycleCategory steps through the fixed category enumeration.
func cycleCategory(current string, delta int) string {
	idx := 0
	for i, c := range model.Categories {
		if c == current {
			idx = i
			break
		}
	}
	n := len(model.Categories)
	return model.Categories[(idx+delta+n)%n]
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
