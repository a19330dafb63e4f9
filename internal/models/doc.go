// Package models defines the shared domain types of spotui.
//
// The package contains two categories of types:
//
// 1. Navigation: [Screen] enumerates every destination the navigator knows about, and
// [Screen.IsDrawer] marks the ones whose visits are remembered across restarts.
//
// 2. Data Transfer Objects: lightweight structs for demo catalog and session data
//   - [User] : the signed-in profile, persisted as JSON under the "user" key
//   - [Playlist] : playlist metadata shown in Library and the drawer
//   - [PlaylistExport] : a playlist with its complete track listing
//   - [Track] : song metadata
//   - [Category] : a browse tile on the Search screen
//   - [LibraryItem] : a recent entry on the Library screen
package models
