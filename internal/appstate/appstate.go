// Package appstate holds the services and the values loaded from storage before the first render.
//
// A [State] is built once at startup and handed to the views by pointer. [State.Load] must run
// before the UI starts so the theme and session are known on the first frame.
package appstate

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotui/internal/catalog"
	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/navcache"
	"github.com/desertthunder/spotui/internal/prefs"
	"github.com/desertthunder/spotui/internal/session"
	"github.com/desertthunder/spotui/internal/theme"
)

// State is the application-wide container.
type State struct {
	Store   kvstore.Store
	Nav     *navcache.Cache
	Session *session.Service
	Prefs   *prefs.Service
	Catalog catalog.Catalog
	Logger  *log.Logger

	Mode          theme.Mode
	CustomColors  theme.CustomColors
	Notifications bool
	LoggedIn      bool
	User          *models.User
	// Restore is the drawer screen to reopen, empty when there is no fresh hint.
	Restore models.Screen
}

// New wires the services over store.
func New(store kvstore.Store, cat catalog.Catalog, logger *log.Logger, navOpts ...navcache.Option) *State {
	return &State{
		Store:         store,
		Nav:           navcache.New(store, logger, navOpts...),
		Session:       session.New(store, logger),
		Prefs:         prefs.New(store, logger),
		Catalog:       cat,
		Logger:        logger,
		Mode:          theme.DefaultMode,
		CustomColors:  theme.DefaultCustomColors,
		Notifications: prefs.DefaultNotifications,
	}
}

// Load reads every persisted value. It never fails; unreadable values fall back to defaults.
func (s *State) Load(ctx context.Context) {
	s.Mode = s.Prefs.ThemeMode(ctx)
	s.CustomColors = s.Prefs.CustomColors(ctx)
	s.Notifications = s.Prefs.Notifications(ctx)
	s.LoggedIn = s.Session.IsLoggedIn(ctx)
	s.User, _ = s.Session.User(ctx)
	s.Restore = s.RestoreScreen(ctx)

	s.Logger.Debug("state loaded",
		"mode", s.Mode,
		"logged_in", s.LoggedIn,
		"restore", s.Restore,
	)
}

// RestoreScreen returns the cached drawer screen when it is fresh and still a drawer destination.
func (s *State) RestoreScreen(ctx context.Context) models.Screen {
	name, ok := s.Nav.Get(ctx)
	if !ok {
		return ""
	}

	screen, err := models.ParseScreen(name)
	if err != nil || !screen.IsDrawer() {
		s.Logger.Debug("ignoring navigation hint", "screen", name)
		return ""
	}
	return screen
}

// Colors resolves the active palette.
func (s *State) Colors() theme.Colors {
	return theme.Resolve(s.Mode, s.CustomColors)
}

// DisplayName returns the best name for the current user.
func (s *State) DisplayName() string {
	if s.User == nil {
		return ""
	}
	if s.User.Username != "" {
		return s.User.Username
	}
	return s.User.Name
}

// RefreshUser re-reads the stored profile and login flag.
func (s *State) RefreshUser(ctx context.Context) {
	s.LoggedIn = s.Session.IsLoggedIn(ctx)
	s.User, _ = s.Session.User(ctx)
}

// Close releases the store.
func (s *State) Close() error {
	return s.Store.Close()
}
