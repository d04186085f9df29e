package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Count        lipgloss.Style
	Item         lipgloss.Style
	ItemSelected lipgloss.Style
	Name         lipgloss.Style
	Description  lipgloss.Style
	Meta         lipgloss.Style
	Category     lipgloss.Style
	CategoryOn   lipgloss.Style
	StatusOnline lipgloss.Style
	StatusOff    lipgloss.Style
	StatusWarn   lipgloss.Style
	Favorite     lipgloss.Style
	Rating       lipgloss.Style
	Banner       lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	PanelTitle   lipgloss.Style
	Panel        lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}  // panel borders
	danger := lipgloss.AdaptiveColor{Light: "#A04040", Dark: "#C06060"}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Subtitle: lipgloss.NewStyle().
			Foreground(subtle),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		Item: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		ItemSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		Name: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Description: lipgloss.NewStyle().
			Foreground(subtle),

		Meta: lipgloss.NewStyle().
			Foreground(subtle),

		Category: lipgloss.NewStyle().
			Foreground(subtle),

		CategoryOn: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		StatusOnline: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3A7A3A", Dark: "#6AAA6A"}),

		StatusOff: lipgloss.NewStyle().
			Foreground(danger),

		StatusWarn: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#A08030", Dark: "#C0A050"}),

		Favorite: lipgloss.NewStyle().
			Foreground(accent),

		Rating: lipgloss.NewStyle().
			Foreground(subtle),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1A1A1A")).
			Background(lipgloss.AdaptiveColor{Light: "#A08030", Dark: "#C0A050"}).
			Padding(0, 1),

		Status: lipgloss.NewStyle().
			Foreground(accent),

		Error: lipgloss.NewStyle().
			Foreground(danger),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),
	}
}
