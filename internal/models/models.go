// package models defines the data model for the spotui client
package models

import (
	"fmt"
	"strings"

	"github.com/desertthunder/spotui/internal/shared"
)

// Screen identifies a navigation destination.
type Screen string

const (
	ScreenLogin     Screen = "Login"
	ScreenSignUp    Screen = "SignUp"
	ScreenHome      Screen = "Home"
	ScreenSearch    Screen = "Search"
	ScreenLibrary   Screen = "Library"
	ScreenCreate    Screen = "Create"
	ScreenProfile   Screen = "Profile"
	ScreenSettings  Screen = "Settings"
	ScreenPlaylists Screen = "Playlists"
)

// TabScreens are the bottom-tab destinations in display order.
var TabScreens = []Screen{ScreenHome, ScreenSearch, ScreenLibrary, ScreenCreate}

// DrawerScreens are the side-menu destinations in display order.
var DrawerScreens = []Screen{ScreenProfile, ScreenSettings, ScreenPlaylists}

var allScreens = []Screen{
	ScreenLogin, ScreenSignUp,
	ScreenHome, ScreenSearch, ScreenLibrary, ScreenCreate,
	ScreenProfile, ScreenSettings, ScreenPlaylists,
}

// ParseScreen matches name case-insensitively against the known screens.
func ParseScreen(name string) (Screen, error) {
	name = strings.TrimSpace(name)
	for _, s := range allScreens {
		if strings.EqualFold(string(s), name) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownScreen, name)
}

// IsDrawer reports whether s lives in the drawer navigator.
func (s Screen) IsDrawer() bool {
	for _, d := range DrawerScreens {
		if s == d {
			return true
		}
	}
	return false
}

// IsTab reports whether s is a bottom tab.
func (s Screen) IsTab() bool {
	for _, d := range TabScreens {
		if s == d {
			return true
		}
	}
	return false
}

// RequiresAuth reports whether s is only reachable after login.
func (s Screen) RequiresAuth() bool {
	return s != ScreenLogin && s != ScreenSignUp
}

func (s Screen) String() string { return string(s) }

// User is the locally stored profile. Passwords are never part of it.
type User struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Username       string `json:"username,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Initial returns the upper-cased first letter of the display name, used for the avatar.
func (u User) Initial() string {
	for _, candidate := range []string{u.Username, u.Name, u.Email} {
		if candidate = strings.TrimSpace(candidate); candidate != "" {
			return strings.ToUpper(string([]rune(candidate)[0]))
		}
	}
	return "?"
}

// Playlist represents playlist metadata from the catalog
type Playlist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	CoverImage  string `json:"coverImage,omitempty"`
	SongCount   int    `json:"songCount,omitempty"`
	Owner       string `json:"owner,omitempty"`
}

// PlaylistExport represents a playlist with all its tracks
type PlaylistExport struct {
	Playlist Playlist `json:"playlist"`
	Tracks   []Track  `json:"tracks"`
}

// Track represents a music track
type Track struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	Duration int    `json:"duration"` // Duration in seconds
}

// Category is a colored browse tile.
type Category struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Color string `json:"color"`
}

// LibraryKind is the filter chip a [LibraryItem] belongs to.
type LibraryKind string

const (
	KindPlaylist LibraryKind = "Playlists"
	KindPodcast  LibraryKind = "Podcasts"
	KindAlbum    LibraryKind = "Albums"
	KindArtist   LibraryKind = "Artists"
)

// LibraryKinds lists the Library filter chips in display order.
var LibraryKinds = []LibraryKind{KindPlaylist, KindPodcast, KindAlbum, KindArtist}

// LibraryItem is a recent entry on the Library screen.
type LibraryItem struct {
	ID       string      `json:"id"`
	Kind     LibraryKind `json:"kind"`
	Title    string      `json:"title"`
	Subtitle string      `json:"subtitle,omitempty"`
	Count    int         `json:"count,omitempty"`
	Pinned   bool        `json:"pinned,omitempty"`
}
