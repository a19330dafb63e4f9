package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/desertthunder/spotui/internal/draft"
)

// createView is the Create screen. Its draft lives only as long as the screen is mounted.
type createView struct {
	engine *draft.Engine
	input  textinput.Model
	cursor int
}

func newCreateView() *createView {
	c := &createView{engine: draft.NewEngine(), input: newInput("Enter song name", 100)}
	c.input.Focus()
	return c
}

func (c *createView) clamp() {
	if n := c.engine.Len(); c.cursor >= n {
		c.cursor = max(n-1, 0)
	}
}

func (m *Model) handleCreateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := m.create
	if c.input.Focused() {
		switch {
		case key.Matches(msg, m.keys.enter):
			m.addSong()
			return m, nil
		case key.Matches(msg, m.keys.back):
			c.input.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.up):
		if c.cursor > 0 {
			c.cursor--
		}
	case key.Matches(msg, m.keys.down):
		if c.cursor < c.engine.Len()-1 {
			c.cursor++
		}
	case key.Matches(msg, m.keys.insert):
		return m, c.input.Focus()
	case key.Matches(msg, m.keys.remove):
		m.removeSong()
	case key.Matches(msg, m.keys.clear):
		m.clearPlaylist()
	}
	return m, nil
}

func (m *Model) addSong() {
	c := m.create
	if strings.TrimSpace(c.input.Value()) == "" {
		m.setFlash("Please enter a song name", false)
		return
	}
	c.engine.Dispatch(draft.AddSong{Name: c.input.Value()})
	c.input.Reset()
	m.flash = ""
}

func (m *Model) removeSong() {
	c := m.create
	if c.engine.Len() == 0 {
		return
	}
	c.engine.Dispatch(draft.RemoveSong{Index: c.cursor})
	c.clamp()
}

func (m *Model) clearPlaylist() {
	c := m.create
	if c.engine.Len() == 0 {
		m.setFlash("Playlist is already empty", false)
		return
	}
	m.ask("Are you sure you want to clear all songs?", func() tea.Cmd {
		c.engine.Dispatch(draft.ClearPlaylist{})
		c.cursor = 0
		m.setFlash("Playlist cleared. Songs moved to history.", true)
		return nil
	})
}

func (m *Model) renderCreate() string {
	c := m.create
	state := c.engine.State()
	width := max(m.width-8, 24)

	var b strings.Builder
	b.WriteString(m.palette.title.Render("Create Playlist"))
	b.WriteString("\n" + m.palette.muted.Render(fmt.Sprintf("%d songs", len(state.Songs))) + "\n\n")
	b.WriteString(c.input.View() + "\n\n")

	if len(state.Songs) == 0 {
		b.WriteString(m.palette.text.Render("Your playlist is empty") + "\n")
		b.WriteString(m.palette.muted.Render("Add songs using the input above") + "\n")
	}
	for i, song := range state.Songs {
		line := fmt.Sprintf("%2d  %s", i+1, runewidth.Truncate(song, width, "…"))
		if !c.input.Focused() && i == c.cursor {
			line = m.palette.selected.Render(line)
		} else {
			line = m.palette.text.Render(line)
		}
		b.WriteString(line + "\n")
	}

	if len(state.History) > 0 {
		b.WriteString("\n" + m.palette.muted.Render(fmt.Sprintf("History (%d)", len(state.History))) + "\n")
		for _, song := range state.History {
			b.WriteString(m.palette.muted.Render("  "+runewidth.Truncate(song, width, "…")) + "\n")
		}
	}

	var keys []key.Binding
	if c.input.Focused() {
		keys = []key.Binding{m.keys.enter, m.keys.back}
	} else {
		keys = []key.Binding{m.keys.up, m.keys.down, m.keys.insert, m.keys.remove, m.keys.clear}
	}
	b.WriteString("\n" + m.help.ShortHelpView(keys))
	return b.String()
}
