package prefs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/spotui/internal/kvstore"
	"github.com/desertthunder/spotui/internal/shared"
	tu "github.com/desertthunder/spotui/internal/testing"
	"github.com/desertthunder/spotui/internal/theme"
)

func newService(t *testing.T) (*Service, *tu.FailingStore) {
	t.Helper()
	store := tu.NewFailingStore()
	logger, _ := tu.NewBufferLogger()
	return New(store, logger), store
}

func TestThemeMode(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultsToDark", func(t *testing.T) {
		svc, _ := newService(t)
		assert.Equal(t, theme.Dark, svc.ThemeMode(ctx))
	})

	t.Run("RoundTrip", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, svc.SetThemeMode(ctx, theme.Light))
		assert.Equal(t, theme.Light, svc.ThemeMode(ctx))

		raw, _ := store.Get(ctx, ThemeModeKey)
		assert.Equal(t, "light", raw)
	})

	t.Run("LegacyAuto", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, store.Set(ctx, ThemeModeKey, "auto"))
		assert.Equal(t, theme.Auto, svc.ThemeMode(ctx))
	})

	t.Run("UnknownStoredValue", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, store.Set(ctx, ThemeModeKey, "neon"))
		assert.Equal(t, theme.Dark, svc.ThemeMode(ctx))
	})

	t.Run("RejectsUnknownMode", func(t *testing.T) {
		svc, store := newService(t)
		assert.ErrorIs(t, svc.SetThemeMode(ctx, "neon"), shared.ErrInvalidArgument)
		assert.Zero(t, store.Calls(kvstore.OpSet))
	})

	t.Run("ReadFailure", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, svc.SetThemeMode(ctx, theme.Light))
		store.Fail(kvstore.OpGet)
		assert.Equal(t, theme.Dark, svc.ThemeMode(ctx))
	})
}

func TestToggleTheme(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	got, err := svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Light, got, "default dark toggles to light")

	got, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)

	require.NoError(t, svc.SetThemeMode(ctx, theme.Custom))
	got, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, theme.Dark, got)

	store.Fail(kvstore.OpSet)
	_, err = svc.ToggleTheme(ctx)
	assert.ErrorIs(t, err, tu.ErrInjected)
}

func TestCustomColors(t *testing.T) {
	ctx := context.Background()

	t.Run("Default", func(t *testing.T) {
		svc, _ := newService(t)
		assert.Equal(t, theme.DefaultCustomColors, svc.CustomColors(ctx))
	})

	t.Run("StoredAsJSON", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, svc.SetCustomColors(ctx, theme.CustomColors{Primary: "#ff6b9d", Secondary: "#FFFFFF", Accent: "#8b5cf6"}))

		raw, _ := store.Get(ctx, CustomColorsKey)
		assert.JSONEq(t, `{"primary":"#FF6B9D","secondary":"#FFFFFF","accent":"#8B5CF6"}`, raw)
		assert.Equal(t, "#FF6B9D", svc.CustomColors(ctx).Primary)
	})

	t.Run("InvalidRejected", func(t *testing.T) {
		svc, store := newService(t)
		err := svc.SetCustomColors(ctx, theme.CustomColors{Primary: "green", Secondary: "#FFF", Accent: "#FFF"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.Zero(t, store.Keys())
	})

	t.Run("CorruptStoredValue", func(t *testing.T) {
		svc, store := newService(t)
		require.NoError(t, store.Set(ctx, CustomColorsKey, `{"primary":`))
		assert.Equal(t, theme.DefaultCustomColors, svc.CustomColors(ctx))

		require.NoError(t, store.Set(ctx, CustomColorsKey, `{"primary":"red","secondary":"#fff","accent":"#fff"}`))
		assert.Equal(t, theme.DefaultCustomColors, svc.CustomColors(ctx))
	})
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	assert.True(t, svc.Notifications(ctx))

	require.NoError(t, svc.SetNotifications(ctx, false))
	raw, _ := store.Get(ctx, NotificationsKey)
	assert.Equal(t, "false", raw)
	assert.False(t, svc.Notifications(ctx))

	require.NoError(t, store.Set(ctx, NotificationsKey, "maybe"))
	assert.True(t, svc.Notifications(ctx))

	store.Fail(kvstore.OpSet)
	assert.Error(t, svc.SetNotifications(ctx, true))
}
