package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/spotui/internal/theme"
)

// struct Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title    lipgloss.Style
	ok       lipgloss.Style
	err      lipgloss.Style
	warn     lipgloss.Style
	help     lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
	selected lipgloss.Style
	avatar   lipgloss.Style
	drawer   lipgloss.Style
	tile     lipgloss.Style
}

// NewPalette builds the stylesheet for a resolved theme.
func NewPalette(c theme.Colors) *Palette {
	return &Palette{
		title:    NewBold(c.Text).MarginBottom(1),
		ok:       NewBold(c.Success),
		err:      NewBold(c.Error),
		warn:     NewStyle(c.Primary),
		help:     NewEm(c.TextSecondary),
		text:     NewStyle(c.Text),
		muted:    NewStyle(c.TextSecondary),
		tab:      NewStyle(c.TabIconDefault).Padding(0, 1),
		tabOn:    NewBold(c.TabIconSelected).Padding(0, 1).Underline(true),
		selected: NewBold(c.Text).Background(lipgloss.Color(c.Highlight())),
		avatar:   NewBold(c.Background).Background(lipgloss.Color(c.Primary)).Padding(0, 1),
		drawer:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(c.Border)).Padding(0, 1),
		tile:     lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Bold(true).Padding(0, 1),
	}
}

// Tile renders a colored browse tile.
func (p *Palette) Tile(label, bg string) string {
	return p.tile.Background(lipgloss.Color(bg)).Render(label)
}

func NewStyle(fg string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg))
}

func NewBold(fg string) lipgloss.Style {
	return NewStyle(fg).Bold(true)
}

func NewEm(fg string) lipgloss.Style {
	return NewStyle(fg).Italic(true)
}
