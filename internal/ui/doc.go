// Package ui implements the terminal client using bubbletea's Elm architecture.
//
// The root [Model] hosts two navigators:
//  1. Auth: the Login and SignUp forms, switched with ctrl+s
//  2. Main: the Home, Search, Library and Create tabs, plus a drawer (m) holding Profile, Settings
//     and Playlists
//
// Every user-initiated move to a drawer screen emits a command that writes the navigation cache, so
// the next launch within the cache TTL reopens that screen. Mounting the main navigator from the
// cache does not write it again.
//
// Store and catalog calls run as commands and report back through the Msg union type. The Create
// tab owns a draft engine that lives only while the tab is mounted.
package ui
