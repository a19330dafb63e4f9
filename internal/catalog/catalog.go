// Package catalog defines the [Catalog] interface the screens read their content from, and the
// built-in demo catalog.
//
// # Catalog Interface
//
// Every screen that lists music (Home, Search, Library, Playlists) goes through a [Catalog], so a
// networked provider can replace the demo data without touching the views.
//
// # Demo Implementation
//
// [Demo] serves a fixed set of playlists, browse categories and library items. Track listings are
// generated deterministically from a small song pool so exports are stable across runs.
//
// # Search
//
// [Demo.Search] ranks every titled entry with case-insensitive fuzzy matching. Lower distances
// sort first; ties keep catalog order.
package catalog

import (
	"context"
	"errors"

	"github.com/desertthunder/spotui/internal/models"
)

// ErrPlaylistNotFound is returned for unknown playlist IDs.
var ErrPlaylistNotFound = errors.New("playlist not found")

// Catalog provides the content shown by the main screens.
type Catalog interface {
	// Home returns the home feed personalized for username.
	Home(ctx context.Context, username string) (*HomeFeed, error)

	// BrowseCategories returns the tiles of the Search screen.
	BrowseCategories(ctx context.Context) (*Browse, error)

	// Library returns the recent library items matching kind. An empty kind returns everything.
	Library(ctx context.Context, kind models.LibraryKind) ([]models.LibraryItem, error)

	// Playlists returns the user's playlists.
	Playlists(ctx context.Context) ([]models.Playlist, error)

	// Playlist returns a playlist with all its tracks.
	Playlist(ctx context.Context, id string) (*models.PlaylistExport, error)

	// Search returns entries whose title fuzzily matches query, best first.
	Search(ctx context.Context, query string) ([]Result, error)

	// Name returns the name of the catalog
	Name() string
}

// HomeFeed is the content of the Home screen.
type HomeFeed struct {
	Shortcuts []models.Playlist
	Sections  []Section
}

// Section is a titled horizontal row of playlists.
type Section struct {
	Title string
	Items []models.Playlist
}

// Browse is the content of the Search screen before a query is typed.
type Browse struct {
	Start     []models.Category
	Discover  []models.Playlist
	BrowseAll []models.Category
}

// ResultKind tags a search [Result].
type ResultKind string

const (
	ResultCategory ResultKind = "category"
	ResultPlaylist ResultKind = "playlist"
	ResultTrack    ResultKind = "track"
	ResultLibrary  ResultKind = "library"
)

// Result is a single search hit.
type Result struct {
	Kind     ResultKind `json:"kind"`
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Distance int        `json:"distance"`
}
