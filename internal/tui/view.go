package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/osint-atlas/atlas/internal/model"
	"github.com/osint-atlas/atlas/internal/pipeline"
	"github.com/osint-atlas/atlas/internal/review"
)

// listHeight is how many tools are visible at once in the main list.
const listHeight = 10

func (a App) renderView() string {
	switch a.mode {
	case modeCompareView:
		return a.styles.App.Render(a.renderCompare())
	case modeReviews:
		return a.styles.App.Render(a.renderReviews())
	case modeReviewForm:
		return a.styles.App.Render(a.renderReviewForm())
	case modeAuth:
		return a.styles.App.Render(a.renderAuth())
	case modeHelp:
		return a.styles.App.Render(a.renderHelp())
	case modeFilters:
		return a.styles.App.Render(a.renderBrowse() + "\n" + a.renderFilterPanel())
	default:
		return a.styles.App.Render(a.renderBrowse())
	}
}

func (a App) renderBrowse() string {
	var b strings.Builder

	b.WriteString(a.renderHeader())

	if a.loading {
		b.WriteString(a.styles.Empty.Render("Loading catalog..."))
		b.WriteString("\n")
		return b.String()
	}

	if len(a.visible) == 0 {
		b.WriteString(a.styles.Empty.Render("No tools match the current filters."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.renderList())
	}

	if strip := a.renderRecent(); strip != "" {
		b.WriteString("\n")
		b.WriteString(strip)
	}

	if a.status != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Status.Render(a.status))
		b.WriteString("\n")
	}

	b.WriteString(a.renderHints())
	return b.String()
}

func (a App) renderHeader() string {
	var b strings.Builder

	title := a.styles.Title.Render("OSINT Atlas")
	subtitle := a.styles.Subtitle.Render("Intelligence Tool Discovery Platform")
	b.WriteString(title + "  " + subtitle)

	if a.sess.User != nil {
		b.WriteString(a.styles.Meta.Render(fmt.Sprintf("  ·  %s", a.sess.User.Name)))
	}
	b.WriteString("\n")

	if a.degraded {
		msg := "OFFLINE MODE: backend unreachable, showing fallback data (r to retry)"
		b.WriteString(a.styles.Banner.Render(msg))
		b.WriteString("\n")
	}

	count := fmt.Sprintf("Showing %d of %d tools", len(a.visible), len(a.tools))
	b.WriteString(a.styles.Count.Render(count))

	category := a.sess.Filters.Category
	if category == "" {
		category = model.CategoryAll
	}
	b.WriteString(a.styles.Meta.Render("  ·  "))
	b.WriteString(a.styles.CategoryOn.Render(category))
	b.WriteString(a.styles.Meta.Render("  ·  " + a.sess.Sort.Label()))

	if a.sess.Filters.AdvancedActive() {
		b.WriteString(a.styles.Meta.Render("  ·  filters on"))
	}
	if a.sess.CompareMode {
		b.WriteString(a.styles.CategoryOn.Render(fmt.Sprintf("  ·  compare (%d/3)", len(a.sess.Compare))))
	}
	b.WriteString("\n")

	if a.mode == modeSearch {
		b.WriteString("Search: " + a.search.Input.View())
		b.WriteString("\n")
	} else if a.sess.Filters.Query != "" {
		b.WriteString(a.styles.Meta.Render(fmt.Sprintf("Search: %q", a.sess.Filters.Query)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	return b.String()
}

func (a App) renderList() string {
	var b strings.Builder

	// Scroll window around the cursor
	start := 0
	if a.cursor >= listHeight {
		start = a.cursor - listHeight + 1
	}
	end := start + listHeight
	if end > len(a.visible) {
		end = len(a.visible)
	}

	for i := start; i < end; i++ {
		tool := a.visible[i]

		cursor := "  "
		nameStyle := a.styles.Name
		if i == a.cursor {
			cursor = "> "
			nameStyle = a.styles.ItemSelected
		}

		marks := ""
		if a.sess.IsFavorite(tool.ID) {
			marks += a.styles.Favorite.Render("♥ ")
		}
		if a.sess.CompareMode {
			if a.sess.InCompare(tool.ID) {
				marks += "[x] "
			} else {
				marks += "[ ] "
			}
		}

		line := fmt.Sprintf("%s%s%s %s", cursor, marks, a.renderStatusDot(tool.Status), nameStyle.Render(tool.Name))
		if summary, ok := review.RatingFor(tool.ID, a.reviews); ok {
			line += "  " + a.styles.Rating.Render(fmt.Sprintf("★ %.1f (%d)", summary.Rating, summary.Count))
		}
		b.WriteString(line)
		b.WriteString("\n")

		registration := "no signup"
		if tool.Registration {
			registration = "signup required"
		}
		meta := fmt.Sprintf("     %s · %s · %s", tool.Category, tool.Pricing, registration)
		b.WriteString(a.styles.Meta.Render(meta))
		b.WriteString("\n")
	}

	if len(a.visible) > listHeight {
		b.WriteString(a.styles.Meta.Render(fmt.Sprintf("  %d-%d of %d", start+1, end, len(a.visible))))
		b.WriteString("\n")
	}

	return b.String()
}

func (a App) renderStatusDot(s model.Status) string {
	switch s {
	case model.StatusOnline:
		return a.styles.StatusOnline.Render("●")
	case model.StatusOffline:
		return a.styles.StatusOff.Render("●")
	case model.StatusWarning:
		return a.styles.StatusWarn.Render("●")
	default:
		return a.styles.Meta.Render("●")
	}
}

func (a App) renderRecent() string {
	recent := pipeline.Project(a.tools, a.sess.Recent)
	if len(recent) == 0 {
		return ""
	}
	names := make([]string, len(recent))
	for i, t := range recent {
		names[i] = t.Name
	}
	return a.styles.Meta.Render("Recently viewed: " + strings.Join(names, ", "))
}

func (a App) renderHints() string {
	hints := "enter open · f fav · / search · tab category · s sort · F filters · c compare · R review · e export · ? help · q quit"
	return a.styles.Help.Render(hints)
}

func (a App) renderFilterPanel() string {
	f := a.sess.Filters

	rows := []struct {
		row   filterRow
		label string
		on    bool
	}{
		{rowPricingFree, "Pricing: Free", f.Pricing[model.PricingFree]},
		{rowPricingFreemium, "Pricing: Freemium", f.Pricing[model.PricingFreemium]},
		{rowPricingPaid, "Pricing: Paid", f.Pricing[model.PricingPaid]},
		{rowNoRegistration, "No registration required", f.NoRegistration},
		{rowStatusOnline, "Status: online", f.Status[model.StatusOnline]},
		{rowStatusWarning, "Status: warning", f.Status[model.StatusWarning]},
		{rowStatusOffline, "Status: offline", f.Status[model.StatusOffline]},
	}

	var b strings.Builder
	b.WriteString(a.styles.PanelTitle.Render("Filters"))
	b.WriteString("\n")
	for _, r := range rows {
		cursor := "  "
		if r.row == a.filters.Cursor {
			cursor = "> "
		}
		check := "[ ]"
		if r.on {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, r.label))
	}
	b.WriteString(a.styles.Help.Render("space toggle · X clear all · esc close"))

	return a.styles.Panel.Render(b.String())
}

// compareAttributes are the rows of the comparison table.
var compareAttributes = []string{"Category", "Status", "Pricing", "Registration", "Rating", "URL"}

func (a App) renderCompare() string {
	tools := pipeline.Project(a.tools, a.sess.Compare)
	if len(tools) == 0 {
		return a.styles.Empty.Render("No tools selected for comparison.") + "\n" + a.styles.Help.Render("esc close")
	}

	colWidth := 28
	cell := func(s string) string {
		if runes := []rune(s); len(runes) > colWidth-2 {
			s = string(runes[:colWidth-5]) + "..."
		}
		return lipgloss.NewStyle().Width(colWidth).Render(s)
	}

	var b strings.Builder
	b.WriteString(a.styles.PanelTitle.Render("Tool Comparison"))
	b.WriteString("\n\n")

	// Header row with tool names
	b.WriteString(cell(""))
	for _, t := range tools {
		b.WriteString(a.styles.Name.Render(cell(t.Name)))
	}
	b.WriteString("\n")

	for _, attr := range compareAttributes {
		b.WriteString(a.styles.Meta.Render(cell(attr)))
		for _, t := range tools {
			var value string
			switch attr {
			case "Category":
				value = t.Category
			case "Status":
				value = string(t.Status)
			case "Pricing":
				value = string(t.Pricing)
			case "Registration":
				value = "Not required"
				if t.Registration {
					value = "Required"
				}
			case "Rating":
				value = "n/a"
				if summary, ok := review.RatingFor(t.ID, a.reviews); ok {
					value = fmt.Sprintf("%.1f (%d reviews)", summary.Rating, summary.Count)
				}
			case "URL":
				value = t.URL
			}
			b.WriteString(cell(value))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("v/esc close"))
	return b.String()
}

func (a App) renderReviews() string {
	tool := a.selectedTool()
	if tool == nil {
		return a.styles.Empty.Render("No tool selected.")
	}

	var b strings.Builder
	b.WriteString(a.styles.PanelTitle.Render(tool.Name))
	b.WriteString("\n")
	b.WriteString(a.styles.Description.Render(tool.Description))
	b.WriteString("\n\n")

	if summary, ok := review.RatingFor(tool.ID, a.reviews); ok {
		b.WriteString(a.styles.Rating.Render(fmt.Sprintf("★ %.1f · %d reviews", summary.Rating, summary.Count)))
		b.WriteString("\n\n")
		for _, r := range summary.Recent {
			b.WriteString(fmt.Sprintf("%s  %s\n", a.styles.Name.Render(r.UserEmail), a.styles.Meta.Render(r.Time().Format("2006-01-02"))))
			b.WriteString(fmt.Sprintf("%s %s\n\n", a.styles.Rating.Render(strings.Repeat("★", r.Rating)), r.Comment))
		}
	} else {
		b.WriteString(a.styles.Empty.Render("No reviews yet."))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("R write review · i/esc close"))
	return b.String()
}

func (a App) renderReviewForm() string {
	tool := model.FindTool(a.tools, a.reviewForm.ToolID)
	name := "tool"
	if tool != nil {
		name = tool.Name
	}

	var b strings.Builder
	b.WriteString(a.styles.PanelTitle.Render("Review " + name))
	b.WriteString("\n\n")

	stars := strings.Repeat("★", a.reviewForm.Rating) + strings.Repeat("☆", 5-a.reviewForm.Rating)
	label := "Select rating"
	if a.reviewForm.Rating > 0 {
		label = fmt.Sprintf("%d star", a.reviewForm.Rating)
		if a.reviewForm.Rating > 1 {
			label += "s"
		}
	}
	b.WriteString(fmt.Sprintf("Rating:  %s  %s\n\n", a.styles.Rating.Render(stars), a.styles.Meta.Render(label)))

	b.WriteString("Comment: " + a.reviewForm.Comment.View())
	b.WriteString("\n")
	b.WriteString(a.styles.Meta.Render(fmt.Sprintf("%d/500 characters, minimum 20", len([]rune(strings.TrimSpace(a.reviewForm.Comment.Value()))))))
	b.WriteString("\n")

	if a.reviewForm.Err != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.reviewForm.Err))
		b.WriteString("\n")
	}
	if a.reviewForm.Loading {
		b.WriteString("\n")
		b.WriteString(a.styles.Status.Render("Submitting..."))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("ctrl+r switch rating/comment · 1-5 set stars · enter submit · esc cancel"))
	return b.String()
}

func (a App) renderAuth() string {
	var b strings.Builder

	signIn := "Sign In"
	signUp := "Sign Up"
	if a.authForm.Tab == tabSignIn {
		signIn = a.styles.CategoryOn.Render(signIn)
		signUp = a.styles.Meta.Render(signUp)
	} else {
		signIn = a.styles.Meta.Render(signIn)
		signUp = a.styles.CategoryOn.Render(signUp)
	}
	b.WriteString(signIn + "  |  " + signUp)
	b.WriteString("\n\n")

	b.WriteString("Email:    " + a.authForm.Email.View() + "\n")
	b.WriteString("Password: " + a.authForm.Password.View() + "\n")
	if a.authForm.Tab == tabSignUp {
		b.WriteString("Name:     " + a.authForm.Name.View() + "\n")
	}

	if a.authForm.Err != "" {
		b.WriteString("\n")
		b.WriteString(a.styles.Error.Render(a.authForm.Err))
		b.WriteString("\n")
	}
	if a.authForm.Loading {
		b.WriteString("\n")
		b.WriteString(a.styles.Status.Render("Signing in..."))
		b.WriteString("\n")
	}

	b.WriteString(a.styles.Help.Render("tab switch form · up/down move · enter next/submit · esc cancel"))
	return b.String()
}

func (a App) renderHelp() string {
	help := `Navigation:
  j/k         Move down/up
  gg/G        Jump to top/bottom

Catalog:
  enter/l/o   Open tool in browser
  /           Search name and description
  tab/S-tab   Cycle category
  s           Cycle sort (Name A-Z, Name Z-A, Category)
  F           Advanced filters (pricing, registration, status)
  X           Clear advanced filters
  e           Export visible list to CSV
  r           Re-run the catalog fetch

Tools:
  f           Toggle favorite
  Y           Copy tool URL
  i           Show reviews
  R           Write a review (signed in only)

Compare:
  c           Toggle compare mode
  space       Select tool (up to 3)
  v           Show comparison

Account:
  a           Sign in / sign out

Other:
  ?           Close this help
  q           Quit`
	return a.styles.PanelTitle.Render("Help") + "\n\n" + help + "\n"
}
