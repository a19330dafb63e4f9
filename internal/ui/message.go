package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/desertthunder/spotui/internal/catalog"
	"github.com/desertthunder/spotui/internal/models"
)

// MsgKind enumerates all message types in the application.
type MsgKind int

// Msg represents all possible messages in the TUI (Elm-style message union).
type Msg struct {
	kind MsgKind
	data any
}

var (
	_ tea.Msg = Msg{}
)

const (
	MsgNavSaved MsgKind = iota
	MsgRestored
	MsgHomeLoaded
	MsgBrowseLoaded
	MsgLibraryLoaded
	MsgPlaylistsLoaded
	MsgPlaylistLoaded
	MsgSearchResults
	MsgAuthDone
	MsgSaved
	MsgLoggedOut
)

// Kind returns the message discriminator.
func (m Msg) Kind() MsgKind { return m.kind }

type homeLoaded struct {
	feed *catalog.HomeFeed
	err  error
}

type browseLoaded struct {
	browse *catalog.Browse
	err    error
}

type libraryLoaded struct {
	kind  models.LibraryKind
	items []models.LibraryItem
	err   error
}

type playlistsLoaded struct {
	playlists []models.Playlist
	err       error
}

type playlistLoaded struct {
	export *models.PlaylistExport
	err    error
}

type searchResults struct {
	query   string
	results []catalog.Result
	err     error
}

type authDone struct {
	signUp bool
	err    error
}

type saved struct {
	what string
	err  error
}

// navSavedMsg is the constructor for [MsgNavSaved]
func navSavedMsg(screen models.Screen) Msg {
	return Msg{kind: MsgNavSaved, data: screen}
}

// restoredMsg is the constructor for [MsgRestored]
func restoredMsg(screen models.Screen) Msg {
	return Msg{kind: MsgRestored, data: screen}
}

// homeLoadedMsg is the constructor for [MsgHomeLoaded]
func homeLoadedMsg(feed *catalog.HomeFeed, err error) Msg {
	return Msg{kind: MsgHomeLoaded, data: homeLoaded{feed, err}}
}

// browseLoadedMsg is the constructor for [MsgBrowseLoaded]
func browseLoadedMsg(browse *catalog.Browse, err error) Msg {
	return Msg{kind: MsgBrowseLoaded, data: browseLoaded{browse, err}}
}

// libraryLoadedMsg is the constructor for [MsgLibraryLoaded]
func libraryLoadedMsg(kind models.LibraryKind, items []models.LibraryItem, err error) Msg {
	return Msg{kind: MsgLibraryLoaded, data: libraryLoaded{kind, items, err}}
}

// playlistsLoadedMsg is the constructor for [MsgPlaylistsLoaded]
func playlistsLoadedMsg(playlists []models.Playlist, err error) Msg {
	return Msg{kind: MsgPlaylistsLoaded, data: playlistsLoaded{playlists, err}}
}

// playlistLoadedMsg is the constructor for [MsgPlaylistLoaded]
func playlistLoadedMsg(export *models.PlaylistExport, err error) Msg {
	return Msg{kind: MsgPlaylistLoaded, data: playlistLoaded{export, err}}
}

// searchResultsMsg is the constructor for [MsgSearchResults]
func searchResultsMsg(query string, results []catalog.Result, err error) Msg {
	return Msg{kind: MsgSearchResults, data: searchResults{query, results, err}}
}

// authDoneMsg is the constructor for [MsgAuthDone]
func authDoneMsg(signUp bool, err error) Msg {
	return Msg{kind: MsgAuthDone, data: authDone{signUp, err}}
}

// savedMsg is the constructor for [MsgSaved]
func savedMsg(what string, err error) Msg {
	return Msg{kind: MsgSaved, data: saved{what, err}}
}

// loggedOutMsg is the constructor for [MsgLoggedOut]
func loggedOutMsg() Msg {
	return Msg{kind: MsgLoggedOut}
}
