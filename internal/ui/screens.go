package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/desertthunder/spotui/internal/catalog"
	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/session"
	"github.com/desertthunder/spotui/internal/theme"
)

const profileLabel = "Profile"

var errProfileUpdate = errors.New("profile update failed")

func (m *Model) loadHome() tea.Cmd {
	username := m.app.DisplayName()
	return func() tea.Msg {
		feed, err := m.app.Catalog.Home(m.ctx, username)
		return homeLoadedMsg(feed, err)
	}
}

func (m *Model) loadBrowse() tea.Cmd {
	if m.browse != nil {
		return nil
	}
	return func() tea.Msg {
		browse, err := m.app.Catalog.BrowseCategories(m.ctx)
		return browseLoadedMsg(browse, err)
	}
}

func (m *Model) runSearch(query string) tea.Cmd {
	return func() tea.Msg {
		results, err := m.app.Catalog.Search(m.ctx, query)
		return searchResultsMsg(query, results, err)
	}
}

func (m *Model) libraryKind() models.LibraryKind {
	if m.filter == 0 {
		return ""
	}
	return models.LibraryKinds[m.filter-1]
}

func (m *Model) loadLibrary() tea.Cmd {
	kind := m.libraryKind()
	return func() tea.Msg {
		items, err := m.app.Catalog.Library(m.ctx, kind)
		return libraryLoadedMsg(kind, items, err)
	}
}

func (m *Model) loadPlaylists() tea.Cmd {
	return func() tea.Msg {
		playlists, err := m.app.Catalog.Playlists(m.ctx)
		return playlistsLoadedMsg(playlists, err)
	}
}

func (m *Model) loadPlaylist(id string) tea.Cmd {
	return func() tea.Msg {
		export, err := m.app.Catalog.Playlist(m.ctx, id)
		return playlistLoadedMsg(export, err)
	}
}

// openPlaylist shows a playlist's tracks on the Playlists screen.
func (m *Model) openPlaylist(id string) tea.Cmd {
	return tea.Batch(m.navigate(models.ScreenPlaylists), m.loadPlaylist(id))
}

func moveCursor(cursor, delta, n int) int {
	if n == 0 {
		return 0
	}
	return min(max(cursor+delta, 0), n-1)
}

// Home

func (m *Model) homeItems() []models.Playlist {
	if m.home == nil {
		return nil
	}
	items := append([]models.Playlist{}, m.home.Shortcuts...)
	for _, s := range m.home.Sections {
		items = append(items, s.Items...)
	}
	return items
}

func (m *Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.homeItems()
	switch {
	case key.Matches(msg, m.keys.up), key.Matches(msg, m.keys.left):
		m.cursor = moveCursor(m.cursor, -1, len(items))
	case key.Matches(msg, m.keys.down), key.Matches(msg, m.keys.right):
		m.cursor = moveCursor(m.cursor, 1, len(items))
	case key.Matches(msg, m.keys.enter):
		if m.cursor < len(items) {
			return m, m.openPlaylist(items[m.cursor].ID)
		}
	}
	return m, nil
}

func greeting(now time.Time) string {
	switch h := now.Hour(); {
	case h < 12:
		return "Good morning"
	case h < 18:
		return "Good afternoon"
	default:
		return "Good evening"
	}
}

func (m *Model) renderHome() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render(greeting(time.Now())))
	if m.home == nil {
		return b.String() + "\n" + m.palette.muted.Render("Loading...")
	}

	idx := 0
	row := func(p models.Playlist) string {
		label := p.Title
		if idx == m.cursor {
			label = m.palette.selected.Render(label)
		} else {
			label = m.palette.text.Render(label)
		}
		idx++
		return label
	}

	b.WriteString("\n")
	for i := 0; i < len(m.home.Shortcuts); i += 2 {
		left := lipgloss.NewStyle().Width(28).Render(row(m.home.Shortcuts[i]))
		right := ""
		if i+1 < len(m.home.Shortcuts) {
			right = row(m.home.Shortcuts[i+1])
		}
		b.WriteString(left + right + "\n")
	}

	for _, s := range m.home.Sections {
		b.WriteString("\n" + m.palette.title.Render(s.Title))
		for _, p := range s.Items {
			b.WriteString("\n  " + row(p))
			if p.Description != "" {
				b.WriteString("  " + m.palette.muted.Render(p.Description))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Search

func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.search.Focused() {
		switch {
		case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.enter):
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if q := strings.TrimSpace(m.search.Value()); m.search.Value() != before {
			if q == "" {
				m.results = nil
				return m, cmd
			}
			return m, tea.Batch(cmd, m.runSearch(q))
		}
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.insert), msg.String() == "/":
		return m, m.search.Focus()
	case key.Matches(msg, m.keys.up):
		m.cursor = moveCursor(m.cursor, -1, len(m.results))
	case key.Matches(msg, m.keys.down):
		m.cursor = moveCursor(m.cursor, 1, len(m.results))
	case key.Matches(msg, m.keys.enter):
		if m.cursor < len(m.results) && m.results[m.cursor].Kind == catalog.ResultPlaylist {
			return m, m.openPlaylist(m.results[m.cursor].ID)
		}
	}
	return m, nil
}

func (m *Model) renderSearch() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("Search"))
	b.WriteString("\n" + m.search.View() + "\n")

	if strings.TrimSpace(m.search.Value()) != "" {
		if len(m.results) == 0 {
			return b.String() + "\n" + m.palette.muted.Render("No results")
		}
		for i, r := range m.results {
			line := fmt.Sprintf("%-9s %s", r.Kind, r.Title)
			if r.Subtitle != "" {
				line += " • " + r.Subtitle
			}
			if !m.search.Focused() && i == m.cursor {
				line = m.palette.selected.Render(line)
			} else {
				line = m.palette.text.Render(line)
			}
			b.WriteString("\n" + line)
		}
		return b.String()
	}

	if m.browse == nil {
		return b.String()
	}
	tiles := func(title string, cats []models.Category) {
		b.WriteString("\n" + m.palette.title.Render(title) + "\n")
		labels := make([]string, len(cats))
		for i, c := range cats {
			labels[i] = m.palette.Tile(c.Title, c.Color) + " "
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, labels...) + "\n")
	}
	tiles("Start browsing", m.browse.Start)

	b.WriteString("\n" + m.palette.title.Render("Discover something new") + "\n")
	for _, p := range m.browse.Discover {
		b.WriteString(m.palette.text.Render("  "+p.Title) + "\n")
	}
	tiles("Browse all", m.browse.BrowseAll)
	return b.String()
}

// Library

func (m *Model) handleLibraryKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.left):
		if m.filter > 0 {
			m.filter--
			m.cursor = 0
			return m, m.loadLibrary()
		}
	case key.Matches(msg, m.keys.right):
		if m.filter < len(models.LibraryKinds) {
			m.filter++
			m.cursor = 0
			return m, m.loadLibrary()
		}
	case key.Matches(msg, m.keys.up):
		m.cursor = moveCursor(m.cursor, -1, len(m.library))
	case key.Matches(msg, m.keys.down):
		m.cursor = moveCursor(m.cursor, 1, len(m.library))
	}
	return m, nil
}

func (m *Model) renderLibrary() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("Your Library") + "\n")

	chips := []string{"All"}
	for _, k := range models.LibraryKinds {
		chips = append(chips, string(k))
	}
	for i, c := range chips {
		if i == m.filter {
			b.WriteString(m.palette.tabOn.Render(c))
		} else {
			b.WriteString(m.palette.tab.Render(c))
		}
	}
	b.WriteString("\n\n" + m.palette.muted.Render("Recents") + "\n")

	if len(m.library) == 0 {
		return b.String() + m.palette.muted.Render("Nothing here yet")
	}
	for i, item := range m.library {
		title := item.Title
		if item.Pinned {
			title = "📌 " + title
		}
		if i == m.cursor {
			title = m.palette.selected.Render(title)
		} else {
			title = m.palette.text.Render(title)
		}
		b.WriteString(title + "  " + m.palette.muted.Render(catalog.Describe(item, "")) + "\n")
	}
	return b.String()
}

// Playlists

func (m *Model) handlePlaylistKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.detail != nil {
		if key.Matches(msg, m.keys.back) && !m.detail.SettingFilter() && !m.detail.IsFiltered() {
			m.detail = nil
			return m, nil
		}
		*m.detail, cmd = m.detail.Update(msg)
		return m, cmd
	}
	if !m.hasPlaylists {
		return m, nil
	}

	if key.Matches(msg, m.keys.enter) && !m.playlists.SettingFilter() {
		if pl, ok := m.playlists.SelectedItem().(playlistItem); ok {
			return m, m.loadPlaylist(pl.playlist.ID)
		}
	}
	m.playlists, cmd = m.playlists.Update(msg)
	return m, cmd
}

func (m *Model) renderPlaylists() string {
	switch {
	case m.detail != nil:
		return fmt.Sprintf("%s\n%s", m.detail.View(), m.help.ShortHelpView([]key.Binding{m.keys.back}))
	case m.hasPlaylists:
		return fmt.Sprintf("%s\n%s", m.playlists.View(), m.help.ShortHelpView([]key.Binding{m.keys.enter}))
	default:
		return m.palette.muted.Render("Loading playlists...")
	}
}

// Profile

// profileEditor holds the name and email fields while editing.
type profileEditor struct {
	inputs []textinput.Model
	focus  int
}

func newProfileEditor(user *models.User) *profileEditor {
	p := &profileEditor{inputs: []textinput.Model{newInput("Name", 64), newInput("Email", 128)}}
	if user != nil {
		p.inputs[0].SetValue(user.Name)
		p.inputs[1].SetValue(user.Email)
	}
	p.inputs[0].Focus()
	return p
}

func (m *Model) handleProfileKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := m.profile
	if p == nil {
		if key.Matches(msg, m.keys.edit) && m.app.User != nil {
			m.profile = newProfileEditor(m.app.User)
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.back):
		m.profile = nil
		return m, nil
	case key.Matches(msg, m.keys.nextTab), key.Matches(msg, m.keys.prevTab):
		p.inputs[p.focus].Blur()
		p.focus = 1 - p.focus
		return m, p.inputs[p.focus].Focus()
	case key.Matches(msg, m.keys.enter):
		patch := session.UserPatch{Name: p.inputs[0].Value(), Email: p.inputs[1].Value()}
		m.profile = nil
		return m, func() tea.Msg {
			if !m.app.Session.UpdateUser(m.ctx, patch) {
				return savedMsg(profileLabel, errProfileUpdate)
			}
			return savedMsg(profileLabel, nil)
		}
	}

	var cmd tea.Cmd
	p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
	return m, cmd
}

func (m *Model) renderProfile() string {
	var b strings.Builder
	b.WriteString(m.palette.title.Render("Profile"))

	user := m.app.User
	if user == nil {
		return b.String() + "\n" + m.palette.muted.Render("No profile stored")
	}
	b.WriteString("\n" + m.palette.avatar.Render(user.Initial()) + "\n\n")

	if p := m.profile; p != nil {
		fmt.Fprintf(&b, "%s\n%s\n%s\n%s\n\n", m.palette.muted.Render("Name"), p.inputs[0].View(),
			m.palette.muted.Render("Email"), p.inputs[1].View())
		b.WriteString(m.help.ShortHelpView([]key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		}))
		return b.String()
	}

	rows := [][2]string{{"Name", user.Name}, {"Email", user.Email}}
	if user.Username != "" {
		rows = append(rows, [2]string{"Username", user.Username})
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s\n%s\n", m.palette.muted.Render(r[0]), m.palette.text.Render(r[1]))
	}
	b.WriteString("\n" + m.help.ShortHelpView([]key.Binding{m.keys.edit}))
	return b.String()
}

// Settings

const (
	settingNotifications = iota
	settingDarkMode
	settingClearNav
	settingLogout
	settingCount
)

func (m *Model) handleSettingsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		m.settings = moveCursor(m.settings, -1, settingCount)
	case key.Matches(msg, m.keys.down):
		m.settings = moveCursor(m.settings, 1, settingCount)
	case key.Matches(msg, m.keys.enter), msg.String() == " ":
		return m, m.activateSetting()
	}
	return m, nil
}

func (m *Model) activateSetting() tea.Cmd {
	switch m.settings {
	case settingNotifications:
		enabled := !m.app.Notifications
		m.app.Notifications = enabled
		return func() tea.Msg {
			return savedMsg("Notifications", m.app.Prefs.SetNotifications(m.ctx, enabled))
		}
	case settingDarkMode:
		mode := theme.Toggle(m.app.Mode)
		m.app.Mode = mode
		m.applyTheme()
		return func() tea.Msg {
			return savedMsg("Theme", m.app.Prefs.SetThemeMode(m.ctx, mode))
		}
	case settingClearNav:
		m.setFlash("Navigation cache cleared", true)
		return func() tea.Msg {
			m.app.Nav.Clear(m.ctx)
			return nil
		}
	case settingLogout:
		m.ask("Are you sure you want to logout?", func() tea.Cmd {
			return func() tea.Msg {
				m.app.Session.Logout(m.ctx)
				return loggedOutMsg()
			}
		})
	}
	return nil
}

func (m *Model) renderSettings() string {
	onOff := func(v bool) string {
		if v {
			return m.palette.ok.Render("[on]")
		}
		return m.palette.muted.Render("[off]")
	}
	rows := [settingCount][2]string{
		{"Notifications  " + onOff(m.app.Notifications), "Enable push notifications"},
		{"Dark Mode  " + onOff(m.app.Mode.IsDark()), "Use dark theme"},
		{"Clear navigation cache", "Forget the last opened menu screen"},
		{"Logout", ""},
	}

	var b strings.Builder
	b.WriteString(m.palette.title.Render("Settings"))
	for i, r := range rows {
		label := r[0]
		if i == m.settings {
			label = m.palette.selected.Render("> ") + label
		} else {
			label = "  " + label
		}
		b.WriteString("\n" + label)
		if r[1] != "" {
			b.WriteString("\n    " + m.palette.muted.Render(r[1]))
		}
	}
	b.WriteString("\n\n" + m.palette.muted.Render("Theme: "+m.app.Mode.String()))
	return b.String()
}
