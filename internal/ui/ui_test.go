package ui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/spotui/internal/appstate"
	"github.com/desertthunder/spotui/internal/catalog"
	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/navcache"
	"github.com/desertthunder/spotui/internal/session"
	tu "github.com/desertthunder/spotui/internal/testing"
	"github.com/desertthunder/spotui/internal/theme"
)

// cmdTimeout bounds commands that never return, like ticks.
const cmdTimeout = 100 * time.Millisecond

func newTestApp(t *testing.T, store kvstore.Store, opts ...navcache.Option) *appstate.State {
	t.Helper()
	if store == nil {
		store = kvstore.NewMemoryStore()
	}
	return appstate.New(store, catalog.NewDemo(), log.New(io.Discard), opts...)
}

func loggedIn(t *testing.T, app *appstate.State) {
	t.Helper()
	require.NoError(t, app.Session.Login(context.Background(), "alice", "secret"))
}

// start loads app and runs the model's init commands.
func start(t *testing.T, app *appstate.State) *Model {
	t.Helper()
	app.Load(context.Background())
	m := NewModel(context.Background(), app)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	run(t, m, m.Init())
	return m
}

// run executes cmd and feeds its messages back into m until nothing is left.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-done:
	case <-time.After(cmdTimeout):
		return
	}

	switch msg := msg.(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			run(t, m, c)
		}
	case tea.QuitMsg:
	default:
		_, next := m.Update(msg)
		run(t, m, next)
	}
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m *Model, keys ...string) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(keyMsg(k))
		run(t, m, cmd)
	}
}

func typeText(t *testing.T, m *Model, text string) {
	t.Helper()
	for _, r := range text {
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		run(t, m, cmd)
	}
}

func TestAuth(t *testing.T) {
	t.Run("StartsOnLogin", func(t *testing.T) {
		m := start(t, newTestApp(t, nil))
		assert.Equal(t, models.ScreenLogin, m.Screen())
		assert.Contains(t, m.View(), "Log in")
	})

	t.Run("LoginRequiresCredentials", func(t *testing.T) {
		m := start(t, newTestApp(t, nil))
		press(t, m, "enter")
		assert.Equal(t, models.ScreenLogin, m.Screen())
		assert.Equal(t, session.ErrMissingCredentials.Error(), m.flash)
	})

	t.Run("LoginOpensHome", func(t *testing.T) {
		app := newTestApp(t, nil)
		m := start(t, app)

		typeText(t, m, "alice")
		press(t, m, "tab")
		typeText(t, m, "secret")
		press(t, m, "enter")

		assert.Equal(t, models.ScreenHome, m.Screen())
		assert.True(t, app.LoggedIn)
		require.NotNil(t, app.User)
		assert.Equal(t, "alice", app.User.Username)
		require.NotNil(t, m.home)
		assert.Equal(t, "Made For alice", m.home.Sections[1].Title)
	})

	t.Run("LoginRestoresDrawerScreen", func(t *testing.T) {
		app := newTestApp(t, nil)
		app.Nav.Save(context.Background(), "Settings")
		m := start(t, app)
		assert.Equal(t, models.ScreenLogin, m.Screen())

		typeText(t, m, "alice")
		press(t, m, "tab")
		typeText(t, m, "secret")
		press(t, m, "enter")

		assert.Equal(t, models.ScreenSettings, m.Screen())
	})

	t.Run("SignUp", func(t *testing.T) {
		app := newTestApp(t, nil)
		m := start(t, app)

		press(t, m, "ctrl+s")
		require.Equal(t, models.ScreenSignUp, m.Screen())

		for i, v := range []string{"a@b.com", "secret1", "Alice", "01", "02", "1990"} {
			if i > 0 {
				press(t, m, "tab")
			}
			typeText(t, m, v)
		}
		press(t, m, "enter")
		assert.Equal(t, session.ErrMissingGender.Error(), m.flash)
		assert.Equal(t, models.ScreenSignUp, m.Screen())

		press(t, m, "tab", "l", "enter")

		assert.Equal(t, models.ScreenHome, m.Screen())
		assert.Equal(t, "Account created successfully!", m.flash)
		require.NotNil(t, app.User)
		assert.Equal(t, "Alice", app.User.Name)
		assert.Equal(t, "a@b.com", app.User.Email)
	})

	t.Run("SignUpShortPassword", func(t *testing.T) {
		m := start(t, newTestApp(t, nil))
		press(t, m, "ctrl+s")
		for i, v := range []string{"a@b.com", "123", "Alice", "01", "02", "1990"} {
			if i > 0 {
				press(t, m, "tab")
			}
			typeText(t, m, v)
		}
		press(t, m, "tab", "h", "enter")
		assert.Equal(t, session.ErrPasswordTooShort.Error(), m.flash)
	})

	t.Run("SwitchBackToLogin", func(t *testing.T) {
		m := start(t, newTestApp(t, nil))
		press(t, m, "ctrl+s", "ctrl+s")
		assert.Equal(t, models.ScreenLogin, m.Screen())
	})
}

func TestNavigationCache(t *testing.T) {
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("MountRestoresFreshDrawerScreen", func(t *testing.T) {
		now := t0
		app := newTestApp(t, nil, navcache.WithClock(func() time.Time { return now }))
		loggedIn(t, app)
		app.Nav.Save(ctx, "Playlists")

		now = t0.Add(time.Hour)
		m := start(t, app)
		assert.Equal(t, models.ScreenPlaylists, m.Screen())
		assert.True(t, m.hasPlaylists)

		entry, err := app.Nav.Peek(ctx)
		require.NoError(t, err)
		assert.Equal(t, t0.UnixMilli(), entry.Timestamp, "mounting must not rewrite the cache")
	})

	t.Run("StaleHintOpensHome", func(t *testing.T) {
		now := t0
		app := newTestApp(t, nil, navcache.WithClock(func() time.Time { return now }))
		loggedIn(t, app)
		app.Nav.Save(ctx, "Profile")

		now = t0.Add(25 * time.Hour)
		m := start(t, app)
		assert.Equal(t, models.ScreenHome, m.Screen())
	})

	t.Run("TabHintOpensHome", func(t *testing.T) {
		app := newTestApp(t, nil)
		loggedIn(t, app)
		app.Nav.Save(ctx, "Library")

		m := start(t, app)
		assert.Equal(t, models.ScreenHome, m.Screen())
	})

	t.Run("DrawerNavigationSaves", func(t *testing.T) {
		app := newTestApp(t, nil)
		loggedIn(t, app)
		m := start(t, app)

		press(t, m, "m", "down", "enter")
		assert.Equal(t, models.ScreenProfile, m.Screen())
		got, ok := app.Nav.Get(ctx)
		require.True(t, ok)
		assert.Equal(t, "Profile", got)

		press(t, m, "m", "down", "down", "down", "enter")
		assert.Equal(t, models.ScreenPlaylists, m.Screen())
		got, _ = app.Nav.Get(ctx)
		assert.Equal(t, "Playlists", got)
	})

	t.Run("TabNavigationDoesNotSave", func(t *testing.T) {
		app := newTestApp(t, nil)
		loggedIn(t, app)
		m := start(t, app)

		press(t, m, "m", "down", "down", "enter")
		require.Equal(t, models.ScreenSettings, m.Screen())

		press(t, m, "3")
		assert.Equal(t, models.ScreenLibrary, m.Screen())
		got, _ := app.Nav.Get(ctx)
		assert.Equal(t, "Settings", got)

		press(t, m, "m", "enter")
		assert.Equal(t, models.ScreenHome, m.Screen())
		got, _ = app.Nav.Get(ctx)
		assert.Equal(t, "Settings", got)
	})

	t.Run("StorageFailureKeepsNavigating", func(t *testing.T) {
		store := tu.NewFailingStore()
		logger, buf := tu.NewBufferLogger()
		app := appstate.New(store, catalog.NewDemo(), logger)
		loggedIn(t, app)
		store.Fail(kvstore.OpSet)

		m := start(t, app)
		press(t, m, "m", "down", "down", "enter")

		assert.Equal(t, models.ScreenSettings, m.Screen())
		assert.Contains(t, buf.String(), "failed to save navigation state")
	})
}

func TestTabs(t *testing.T) {
	app := newTestApp(t, nil)
	loggedIn(t, app)
	m := start(t, app)

	press(t, m, "tab")
	assert.Equal(t, models.ScreenSearch, m.Screen())

	press(t, m, "esc", "tab")
	assert.Equal(t, models.ScreenLibrary, m.Screen())

	press(t, m, "shift+tab", "esc", "shift+tab")
	assert.Equal(t, models.ScreenHome, m.Screen())

	press(t, m, "shift+tab")
	assert.Equal(t, models.ScreenCreate, m.Screen())

	view := m.View()
	for _, s := range models.TabScreens {
		assert.Contains(t, view, s.String())
	}
}

func TestCreate(t *testing.T) {
	app := newTestApp(t, nil)
	loggedIn(t, app)
	m := start(t, app)

	press(t, m, "4")
	require.Equal(t, models.ScreenCreate, m.Screen())
	require.NotNil(t, m.create)

	t.Run("BlankInput", func(t *testing.T) {
		typeText(t, m, "   ")
		press(t, m, "enter")
		assert.Equal(t, "Please enter a song name", m.flash)
		assert.Zero(t, m.create.engine.Len())
	})

	t.Run("AddRemoveClear", func(t *testing.T) {
		m.create.input.Reset()
		typeText(t, m, "One")
		press(t, m, "enter")
		typeText(t, m, "Two")
		press(t, m, "enter")
		typeText(t, m, "Three")
		press(t, m, "enter")

		state := m.create.engine.State()
		assert.Equal(t, []string{"One", "Two", "Three"}, state.Songs)
		assert.Empty(t, m.create.input.Value())

		press(t, m, "esc", "down", "x")
		state = m.create.engine.State()
		assert.Equal(t, []string{"One", "Three"}, state.Songs)
		assert.Equal(t, []string{"Two"}, state.History)

		press(t, m, "c")
		require.NotNil(t, m.confirm)
		press(t, m, "n")
		assert.Nil(t, m.confirm)
		assert.Equal(t, 2, m.create.engine.Len())

		press(t, m, "c", "y")
		state = m.create.engine.State()
		assert.Empty(t, state.Songs)
		assert.Equal(t, []string{"Two", "One", "Three"}, state.History)
		assert.Contains(t, m.View(), "History (3)")

		press(t, m, "c")
		assert.Nil(t, m.confirm)
		assert.Equal(t, "Playlist is already empty", m.flash)
	})

	t.Run("RemoveOnEmptyIsNoop", func(t *testing.T) {
		press(t, m, "x")
		assert.Zero(t, m.create.engine.Len())
		assert.Len(t, m.create.engine.State().History, 3)
	})

	t.Run("DraftDiscardedOnLeave", func(t *testing.T) {
		press(t, m, "i")
		typeText(t, m, "Four")
		press(t, m, "enter", "esc", "1")
		assert.Nil(t, m.create)

		press(t, m, "4")
		require.NotNil(t, m.create)
		assert.True(t, m.create.engine.State().Empty())
	})
}

func TestSettings(t *testing.T) {
	ctx := context.Background()

	open := func(t *testing.T) (*Model, *appstate.State) {
		app := newTestApp(t, nil)
		loggedIn(t, app)
		m := start(t, app)
		press(t, m, "m", "down", "down", "enter")
		require.Equal(t, models.ScreenSettings, m.Screen())
		return m, app
	}

	t.Run("Notifications", func(t *testing.T) {
		m, app := open(t)
		press(t, m, "enter")
		assert.False(t, app.Notifications)
		assert.False(t, app.Prefs.Notifications(ctx))
		assert.Equal(t, "Notifications updated successfully", m.flash)
	})

	t.Run("ThemeToggle", func(t *testing.T) {
		m, app := open(t)
		press(t, m, "down", "enter")
		assert.Equal(t, theme.Light, app.Mode)
		assert.Equal(t, theme.Light, app.Prefs.ThemeMode(ctx))

		press(t, m, "enter")
		assert.Equal(t, theme.Dark, app.Mode)
	})

	t.Run("ClearNavigationCache", func(t *testing.T) {
		m, app := open(t)
		press(t, m, "down", "down", "enter")
		_, ok := app.Nav.Get(ctx)
		assert.False(t, ok)
		assert.Equal(t, "Navigation cache cleared", m.flash)
	})

	t.Run("Logout", func(t *testing.T) {
		m, app := open(t)
		press(t, m, "down", "down", "down", "enter")
		require.NotNil(t, m.confirm)
		assert.Contains(t, m.View(), "Are you sure you want to logout?")

		press(t, m, "y")
		assert.Equal(t, models.ScreenLogin, m.Screen())
		assert.False(t, app.Session.IsLoggedIn(ctx))
		_, ok := app.Session.User(ctx)
		assert.True(t, ok, "profile survives logout")
	})
}

func TestProfile(t *testing.T) {
	app := newTestApp(t, nil)
	loggedIn(t, app)
	m := start(t, app)

	press(t, m, "m", "down", "enter")
	require.Equal(t, models.ScreenProfile, m.Screen())
	assert.Contains(t, m.View(), "alice@example.com")

	press(t, m, "e")
	require.NotNil(t, m.profile)
	assert.Equal(t, "alice", m.profile.inputs[0].Value())

	m.profile.inputs[0].SetValue("Alice Liddell")
	press(t, m, "enter")

	assert.Nil(t, m.profile)
	assert.Equal(t, "Profile updated successfully", m.flash)
	require.NotNil(t, app.User)
	assert.Equal(t, "Alice Liddell", app.User.Name)
	assert.Equal(t, "alice", app.User.Username)

	press(t, m, "e", "esc")
	assert.Nil(t, m.profile)
}

func TestCatalogScreens(t *testing.T) {
	app := newTestApp(t, nil)
	loggedIn(t, app)
	m := start(t, app)

	t.Run("Home", func(t *testing.T) {
		require.NotNil(t, m.home)
		view := m.View()
		assert.Contains(t, view, "It's New Music Friday!")
		assert.Contains(t, view, "Liked Songs")
	})

	t.Run("Search", func(t *testing.T) {
		press(t, m, "2")
		require.Equal(t, models.ScreenSearch, m.Screen())
		require.NotNil(t, m.browse)
		assert.Contains(t, m.View(), "Start browsing")

		typeText(t, m, "weeknd")
		require.NotEmpty(t, m.results)
		assert.Equal(t, catalog.ResultTrack, m.results[0].Kind)
		assert.Equal(t, "The Weeknd", m.results[0].Subtitle)
	})

	t.Run("SearchOpensPlaylist", func(t *testing.T) {
		m.search.Reset()
		typeText(t, m, "Release Radar")
		require.NotEmpty(t, m.results)
		require.Equal(t, catalog.ResultPlaylist, m.results[0].Kind)

		press(t, m, "esc", "enter")
		assert.Equal(t, models.ScreenPlaylists, m.Screen())
		require.NotNil(t, m.detail)
		assert.Len(t, m.detail.Items(), 25)
	})

	t.Run("Library", func(t *testing.T) {
		press(t, m, "3")
		require.Equal(t, models.ScreenLibrary, m.Screen())
		assert.Len(t, m.library, 7)

		press(t, m, "l")
		assert.Len(t, m.library, 5)
		press(t, m, "l")
		assert.Empty(t, m.library)
		assert.Contains(t, m.View(), "Nothing here yet")

		press(t, m, "h", "h")
		assert.Len(t, m.library, 7)
		assert.Contains(t, m.View(), "Playlist • 561 songs")
	})

	t.Run("Playlists", func(t *testing.T) {
		press(t, m, "m", "down", "down", "down", "enter")
		require.True(t, m.hasPlaylists)
		assert.Nil(t, m.detail)
		assert.Len(t, m.playlists.Items(), 5)

		press(t, m, "enter")
		require.NotNil(t, m.detail)
		assert.Len(t, m.detail.Items(), 30)
		assert.True(t, strings.Contains(m.View(), "Discover Weekly"))

		press(t, m, "esc")
		assert.Nil(t, m.detail)
	})
}

func TestQuit(t *testing.T) {
	app := newTestApp(t, nil)
	loggedIn(t, app)
	m := start(t, app)

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
