// Package prefs persists the settings screen choices: theme mode, custom colors and notifications.
//
// Reads never fail; a missing, invalid or unreadable value yields the default. Writes return the
// storage error so the caller can report it.
package prefs

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/theme"
)

// Storage keys.
const (
	ThemeModeKey     = "theme_mode"
	CustomColorsKey  = "custom_colors"
	NotificationsKey = "notifications_enabled"
)

// DefaultNotifications is used when nothing is stored.
const DefaultNotifications = true

// Service reads and writes preferences.
type Service struct {
	store  kvstore.Store
	logger *log.Logger
}

// New creates a preference service.
func New(store kvstore.Store, logger *log.Logger) *Service {
	return &Service{store: store, logger: logger.WithPrefix("prefs")}
}

func (s *Service) read(ctx context.Context, key string) (string, bool) {
	v, err := s.store.Get(ctx, key)
	if err != nil {
		if !kvstore.IsNotFound(err) {
			s.logger.Error("failed to read preference", "key", key, "error", err)
		}
		return "", false
	}
	return v, true
}

// ThemeMode returns the stored mode, or [theme.DefaultMode].
func (s *Service) ThemeMode(ctx context.Context) theme.Mode {
	v, ok := s.read(ctx, ThemeModeKey)
	if !ok {
		return theme.DefaultMode
	}

	mode, err := theme.ParseMode(v)
	if err != nil {
		s.logger.Warn("ignoring stored theme mode", "value", v)
		return theme.DefaultMode
	}
	return mode
}

// SetThemeMode stores mode.
func (s *Service) SetThemeMode(ctx context.Context, mode theme.Mode) error {
	if _, err := theme.ParseMode(string(mode)); err != nil {
		return err
	}
	return s.store.Set(ctx, ThemeModeKey, string(mode))
}

// ToggleTheme flips light and dark, stores the result and returns it.
func (s *Service) ToggleTheme(ctx context.Context) (theme.Mode, error) {
	next := theme.Toggle(s.ThemeMode(ctx))
	if err := s.SetThemeMode(ctx, next); err != nil {
		return next, err
	}
	return next, nil
}

// CustomColors returns the stored custom palette, or [theme.DefaultCustomColors].
func (s *Service) CustomColors(ctx context.Context) theme.CustomColors {
	v, ok := s.read(ctx, CustomColorsKey)
	if !ok {
		return theme.DefaultCustomColors
	}

	var colors theme.CustomColors
	if err := json.Unmarshal([]byte(v), &colors); err != nil {
		s.logger.Warn("ignoring corrupt custom colors", "error", err)
		return theme.DefaultCustomColors
	}
	if err := colors.Validate(); err != nil {
		s.logger.Warn("ignoring invalid custom colors", "error", err)
		return theme.DefaultCustomColors
	}
	return colors
}

// SetCustomColors validates and stores colors.
func (s *Service) SetCustomColors(ctx context.Context, colors theme.CustomColors) error {
	if err := colors.Validate(); err != nil {
		return err
	}

	data, err := json.Marshal(colors.Normalize())
	if err != nil {
		return err
	}
	return s.store.Set(ctx, CustomColorsKey, string(data))
}

// Notifications reports whether notifications are enabled.
func (s *Service) Notifications(ctx context.Context) bool {
	v, ok := s.read(ctx, NotificationsKey)
	if !ok {
		return DefaultNotifications
	}

	enabled, err := strconv.ParseBool(v)
	if err != nil {
		s.logger.Warn("ignoring stored notifications flag", "value", v)
		return DefaultNotifications
	}
	return enabled
}

// SetNotifications stores enabled as "true" or "false".
func (s *Service) SetNotifications(ctx context.Context, enabled bool) error {
	return s.store.Set(ctx, NotificationsKey, strconv.FormatBool(enabled))
}
