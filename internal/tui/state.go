package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// mode identifies which surface currently owns key input.
type mode int

const (
	modeBrowse mode = iota
	modeSearch
	modeFilters
	modeCompareView
	modeReviews
	modeReviewForm
	modeAuth
	modeHelp
)

// SearchState holds the live search input.
type SearchState struct {
	Input textinput.Model
}

// NewSearchState creates a SearchState with an initialized input.
func NewSearchState() SearchState {
	input := textinput.New()
	input.Placeholder = "Search tools by name or description..."
	input.CharLimit = 100
	input.Width = 50
	return SearchState{Input: input}
}

// filterRow identifies one toggle line in the advanced filter panel.
type filterRow int

const (
	rowPricingFree filterRow = iota
	rowPricingFreemium
	rowPricingPaid
	rowNoRegistration
	rowStatusOnline
	rowStatusWarning
	rowStatusOffline
	filterRowCount
)

// FilterPanelState holds cursor position inside the advanced filter panel.
type FilterPanelState struct {
	Cursor filterRow
}

// authTab selects between the sign-in and sign-up forms.
type authTab int

const (
	tabSignIn authTab = iota
	tabSignUp
)

// AuthState holds state for the mocked sign-in/sign-up form.
type AuthState struct {
	Tab      authTab
	Email    textinput.Model
	Password textinput.Model
	Name     textinput.Model
	Focus    int // 0=email 1=password 2=name (sign-up only)
	Err      string
	Loading  bool
}

// NewAuthState creates an AuthState with initialized inputs.
func NewAuthState() AuthState {
	email := textinput.New()
	email.Placeholder = "email@example.com"
	email.CharLimit = 100
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 100
	password.Width = 40

	name := textinput.New()
	name.Placeholder = "Display name"
	name.CharLimit = 60
	name.Width = 40

	return AuthState{
		Email:    email,
		Password: password,
		Name:     name,
	}
}

// Reset clears the form for a new session.
func (a *AuthState) Reset() {
	a.Email.Reset()
	a.Password.Reset()
	a.Name.Reset()
	a.Focus = 0
	a.Err = ""
	a.Loading = false
}

// FieldCount returns the number of focusable inputs for the active tab.
func (a *AuthState) FieldCount() int {
	if a.Tab == tabSignUp {
		return 3
	}
	return 2
}

// ReviewFormState holds state for the review submission form. On a
// rejected or failed submission the entered values are retained so the user
// does not need to retype.
type ReviewFormState struct {
	ToolID  int
	Rating  int
	Comment textinput.Model
	Err     string
	Loading bool
}

// NewReviewFormState creates a ReviewFormState with an initialized input.
func NewReviewFormState() ReviewFormState {
	comment := textinput.New()
	comment.Placeholder = "Share your experience with this tool (20-500 characters)..."
	comment.CharLimit = 500
	comment.Width = 60
	return ReviewFormState{Comment: comment}
}

// Reset clears the form after a committed submission.
func (r *ReviewFormState) Reset() {
	r.ToolID = 0
	r.Rating = 0
	r.Comment.Reset()
	r.Err = ""
	r.Loading = false
}
