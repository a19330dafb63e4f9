package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotui/internal/appstate"
	"github.com/desertthunder/spotui/internal/catalog"
	"github.com/desertthunder/spotui/internal/models"
)

// Model represents the TUI application state.
type Model struct {
	ctx     context.Context
	app     *appstate.State
	logger  *log.Logger
	screen  models.Screen
	width   int
	height  int
	palette *Palette
	keys    keyMap
	help    help.Model

	flash   string
	flashOK bool
	confirm *confirmation

	drawerOpen   bool
	drawerCursor int

	auth *authForm

	home    *catalog.HomeFeed
	browse  *catalog.Browse
	search  textinput.Model
	results []catalog.Result
	filter  int
	library []models.LibraryItem

	playlists    list.Model
	hasPlaylists bool
	detail       *list.Model

	create   *createView
	profile  *profileEditor
	settings int
	cursor   int
}

// confirmation is a pending yes/no prompt.
type confirmation struct {
	prompt string
	onYes  func() tea.Cmd
}

// drawerEntries are the side menu rows. The empty screen stands for the tab navigator.
var drawerEntries = append([]models.Screen{""}, models.DrawerScreens...)

// NewModel creates a new TUI model over a loaded application state.
func NewModel(ctx context.Context, app *appstate.State) *Model {
	return &Model{
		ctx:     ctx,
		app:     app,
		logger:  app.Logger.WithPrefix("ui"),
		palette: NewPalette(app.Colors()),
		keys:    newKeyMap(),
		help:    help.New(),
		search:  newInput("What do you want to listen to?", 64),
	}
}

// Screen returns the active screen.
func (m *Model) Screen() models.Screen { return m.screen }

// Init shows the login form, or mounts the main navigator when a session exists.
func (m *Model) Init() tea.Cmd {
	if !m.app.LoggedIn {
		m.screen = models.ScreenLogin
		m.auth = newLoginForm()
		return nil
	}
	return m.mount(m.app.Restore)
}

// mount opens the main navigator on restore when it is a drawer screen, else on Home. It does not
// write the navigation cache.
func (m *Model) mount(restore models.Screen) tea.Cmd {
	m.auth = nil
	target := models.ScreenHome
	if restore.IsDrawer() {
		target = restore
		m.logger.Info("restoring screen", "screen", restore)
	}
	return m.enter(target)
}

// enter switches to s and returns the command that loads its content.
func (m *Model) enter(s models.Screen) tea.Cmd {
	if m.screen == models.ScreenCreate && s != models.ScreenCreate {
		m.create = nil
	}
	if m.screen == models.ScreenProfile && s != models.ScreenProfile {
		m.profile = nil
	}

	m.screen = s
	m.drawerOpen = false
	m.cursor = 0
	m.search.Blur()

	switch s {
	case models.ScreenHome:
		return m.loadHome()
	case models.ScreenSearch:
		m.search.Focus()
		return m.loadBrowse()
	case models.ScreenLibrary:
		return m.loadLibrary()
	case models.ScreenCreate:
		if m.create == nil {
			m.create = newCreateView()
		}
	case models.ScreenPlaylists:
		m.detail = nil
		return m.loadPlaylists()
	case models.ScreenSettings:
		m.settings = 0
	}
	return nil
}

// navigate is a user-initiated transition. Drawer targets are written to the navigation cache.
func (m *Model) navigate(s models.Screen) tea.Cmd {
	cmd := m.enter(s)
	if s.IsDrawer() {
		return tea.Batch(cmd, m.saveNav(s))
	}
	return cmd
}

func (m *Model) saveNav(s models.Screen) tea.Cmd {
	return func() tea.Msg {
		m.app.Nav.Save(m.ctx, s.String())
		return navSavedMsg(s)
	}
}

func (m *Model) restore() tea.Cmd {
	return func() tea.Msg {
		return restoredMsg(m.app.RestoreScreen(m.ctx))
	}
}

func (m *Model) setFlash(msg string, ok bool) {
	m.flash = msg
	m.flashOK = ok
}

func (m *Model) ask(prompt string, onYes func() tea.Cmd) {
	m.confirm = &confirmation{prompt: prompt, onYes: onYes}
}

// applyTheme rebuilds the palette after a preference change.
func (m *Model) applyTheme() {
	m.palette = NewPalette(m.app.Colors())
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.hasPlaylists {
			m.playlists.SetSize(m.listWidth(), m.listHeight())
		}
		if m.detail != nil {
			m.detail.SetSize(m.listWidth(), m.listHeight())
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	case Msg:
		return m.handleMsg(msg)
	}
	return m.updateFocused(msg)
}

func (m *Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.Kind() {
	case MsgNavSaved:
		m.logger.Debug("navigation saved", "screen", msg.data)
	case MsgRestored:
		return m, m.mount(msg.data.(models.Screen))
	case MsgAuthDone:
		return m, m.authFinished(msg.data.(authDone))
	case MsgHomeLoaded:
		res := msg.data.(homeLoaded)
		if res.err != nil {
			m.setFlash("Could not load home", false)
			m.logger.Error("failed to load home", "error", res.err)
			break
		}
		m.home = res.feed
	case MsgBrowseLoaded:
		res := msg.data.(browseLoaded)
		if res.err != nil {
			m.logger.Error("failed to load categories", "error", res.err)
			break
		}
		m.browse = res.browse
	case MsgSearchResults:
		res := msg.data.(searchResults)
		if res.err != nil {
			m.logger.Error("search failed", "query", res.query, "error", res.err)
			break
		}
		if res.query == strings.TrimSpace(m.search.Value()) {
			m.results = res.results
			m.cursor = 0
		}
	case MsgLibraryLoaded:
		res := msg.data.(libraryLoaded)
		if res.err != nil {
			m.logger.Error("failed to load library", "error", res.err)
			break
		}
		if res.kind == m.libraryKind() {
			m.library = res.items
		}
	case MsgPlaylistsLoaded:
		res := msg.data.(playlistsLoaded)
		if res.err != nil {
			m.setFlash("Could not load playlists", false)
			m.logger.Error("failed to load playlists", "error", res.err)
			break
		}
		m.playlists = newPlaylistList(res.playlists, m.listWidth(), m.listHeight())
		m.playlists.KeyMap.Quit.SetEnabled(false)
		m.hasPlaylists = true
	case MsgPlaylistLoaded:
		res := msg.data.(playlistLoaded)
		if res.err != nil {
			m.setFlash(fmt.Sprintf("Could not open playlist: %v", res.err), false)
			break
		}
		detail := newTrackList(res.export, m.listWidth(), m.listHeight())
		detail.KeyMap.Quit.SetEnabled(false)
		m.detail = &detail
	case MsgSaved:
		res := msg.data.(saved)
		if res.err != nil {
			m.setFlash(fmt.Sprintf("Failed to update %s", strings.ToLower(res.what)), false)
			m.logger.Error("save failed", "what", res.what, "error", res.err)
			break
		}
		if res.what == profileLabel {
			m.app.RefreshUser(m.ctx)
		}
		m.setFlash(fmt.Sprintf("%s updated successfully", res.what), true)
	case MsgLoggedOut:
		m.app.LoggedIn = false
		m.home, m.browse, m.results, m.library = nil, nil, nil, nil
		m.hasPlaylists, m.detail, m.create, m.profile = false, nil, nil, nil
		m.drawerOpen = false
		m.switchAuth(false)
	}
	return m, nil
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.confirm != nil {
		return m.handleConfirmKeys(msg)
	}
	if m.screen == models.ScreenLogin || m.screen == models.ScreenSignUp {
		return m.handleAuthKeys(msg)
	}
	if m.drawerOpen {
		return m.handleDrawerKeys(msg)
	}
	if m.typing() {
		return m.handleScreenKeys(msg)
	}

	m.flash = ""
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.nextTab):
		return m, m.navigate(m.tabAt(1))
	case key.Matches(msg, m.keys.prevTab):
		return m, m.navigate(m.tabAt(-1))
	case key.Matches(msg, m.keys.drawer):
		m.drawerOpen = true
		m.drawerCursor = 0
		return m, nil
	}
	if n := msg.String(); len(n) == 1 && n[0] >= '1' && int(n[0]-'1') < len(models.TabScreens) {
		return m, m.navigate(models.TabScreens[n[0]-'1'])
	}
	return m.handleScreenKeys(msg)
}

// typing reports whether keys belong to a focused text field.
func (m *Model) typing() bool {
	switch m.screen {
	case models.ScreenSearch:
		return m.search.Focused()
	case models.ScreenCreate:
		return m.create != nil && m.create.input.Focused()
	case models.ScreenProfile:
		return m.profile != nil
	case models.ScreenPlaylists:
		if m.detail != nil {
			return m.detail.SettingFilter()
		}
		return m.hasPlaylists && m.playlists.SettingFilter()
	}
	return false
}

func (m *Model) handleScreenKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.screen {
	case models.ScreenHome:
		return m.handleHomeKeys(msg)
	case models.ScreenSearch:
		return m.handleSearchKeys(msg)
	case models.ScreenLibrary:
		return m.handleLibraryKeys(msg)
	case models.ScreenCreate:
		return m.handleCreateKeys(msg)
	case models.ScreenPlaylists:
		return m.handlePlaylistKeys(msg)
	case models.ScreenProfile:
		return m.handleProfileKeys(msg)
	case models.ScreenSettings:
		return m.handleSettingsKeys(msg)
	}
	return m, nil
}

// tabAt returns the tab offset by delta from the current one. Drawer screens count as Home.
func (m *Model) tabAt(delta int) models.Screen {
	idx := 0
	for i, s := range models.TabScreens {
		if s == m.screen {
			idx = i
			break
		}
	}
	if !m.screen.IsTab() && delta > 0 {
		return models.TabScreens[0]
	}
	n := len(models.TabScreens)
	return models.TabScreens[((idx+delta)%n+n)%n]
}

func (m *Model) handleDrawerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.up):
		if m.drawerCursor > 0 {
			m.drawerCursor--
		}
	case key.Matches(msg, m.keys.down):
		if m.drawerCursor < len(drawerEntries)-1 {
			m.drawerCursor++
		}
	case key.Matches(msg, m.keys.enter):
		target := drawerEntries[m.drawerCursor]
		if target == "" {
			target = models.ScreenHome
		}
		return m, m.navigate(target)
	case key.Matches(msg, m.keys.back), key.Matches(msg, m.keys.drawer):
		m.drawerOpen = false
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) handleConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.yes):
		c := m.confirm
		m.confirm = nil
		return m, c.onYes()
	case key.Matches(msg, m.keys.no):
		m.confirm = nil
	}
	return m, nil
}

// updateFocused forwards non-key messages to the active input or list.
func (m *Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.auth != nil:
		cmd = m.auth.update(msg)
	case m.screen == models.ScreenSearch:
		m.search, cmd = m.search.Update(msg)
	case m.screen == models.ScreenCreate && m.create != nil:
		m.create.input, cmd = m.create.input.Update(msg)
	case m.screen == models.ScreenPlaylists && m.detail != nil:
		*m.detail, cmd = m.detail.Update(msg)
	case m.screen == models.ScreenPlaylists && m.hasPlaylists:
		m.playlists, cmd = m.playlists.Update(msg)
	}
	return m, cmd
}

func (m *Model) listWidth() int  { return max(m.width-4, 20) }
func (m *Model) listHeight() int { return max(m.height-8, 10) }

// View renders the UI based on the current screen.
func (m *Model) View() string {
	var body string
	switch m.screen {
	case models.ScreenLogin, models.ScreenSignUp:
		body = m.renderAuth()
	default:
		body = m.renderMain()
	}

	if m.confirm != nil {
		body = fmt.Sprintf("%s\n\n%s\n%s", body, m.palette.warn.Render(m.confirm.prompt),
			m.help.ShortHelpView([]key.Binding{m.keys.yes, m.keys.no}))
	}
	if m.flash != "" {
		style := m.palette.err
		if m.flashOK {
			style = m.palette.ok
		}
		body = fmt.Sprintf("%s\n\n%s", body, style.Render(m.flash))
	}
	return body
}

func (m *Model) renderMain() string {
	var content string
	switch m.screen {
	case models.ScreenHome:
		content = m.renderHome()
	case models.ScreenSearch:
		content = m.renderSearch()
	case models.ScreenLibrary:
		content = m.renderLibrary()
	case models.ScreenCreate:
		content = m.renderCreate()
	case models.ScreenPlaylists:
		content = m.renderPlaylists()
	case models.ScreenProfile:
		content = m.renderProfile()
	case models.ScreenSettings:
		content = m.renderSettings()
	}

	if m.drawerOpen {
		content = lipgloss.JoinHorizontal(lipgloss.Top, m.renderDrawer(), "  ", content)
	}
	return fmt.Sprintf("%s\n\n%s\n\n%s", content, m.renderTabs(), m.help.ShortHelpView(m.keys.ShortHelp()))
}

func (m *Model) renderTabs() string {
	tabs := make([]string, len(models.TabScreens))
	for i, s := range models.TabScreens {
		label := fmt.Sprintf("%d %s", i+1, s)
		if s == m.screen {
			tabs[i] = m.palette.tabOn.Render(label)
		} else {
			tabs[i] = m.palette.tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderDrawer() string {
	var b strings.Builder
	name := m.app.DisplayName()
	if name == "" {
		name = "Guest"
	}
	initial := "?"
	if m.app.User != nil {
		initial = m.app.User.Initial()
	}
	fmt.Fprintf(&b, "%s %s\n\n", m.palette.avatar.Render(initial), m.palette.text.Render(name))

	for i, s := range drawerEntries {
		label := s.String()
		if s == "" {
			label = "Main"
		}
		line := "  " + label
		if i == m.drawerCursor {
			line = m.palette.selected.Render("> " + label)
		}
		b.WriteString(line + "\n")
	}
	return m.palette.drawer.Render(strings.TrimRight(b.String(), "\n"))
}
