// Package draft implements the in-memory playlist draft built on the Create screen.
//
// A draft is a [State] of songs plus the history of songs removed from it. It only changes through
// [Reduce], which applies one of the closed set of actions: [AddSong], [RemoveSong], [ClearPlaylist]
// and [AddToHistory]. Every transition is total. Blank names and out-of-range indices leave the
// state unchanged instead of failing.
package draft

import (
	"slices"
	"strings"
)

// State is a snapshot of the draft.
type State struct {
	Songs   []string `json:"songs"`
	History []string `json:"history"`
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	return State{
		Songs:   slices.Clone(s.Songs),
		History: slices.Clone(s.History),
	}
}

// Empty reports whether the draft holds no songs.
func (s State) Empty() bool { return len(s.Songs) == 0 }

// Action is a draft transition.
type Action interface {
	action()
}

// AddSong appends the trimmed Name. Blank names are ignored.
type AddSong struct{ Name string }

// RemoveSong moves the song at Index to the history. Out-of-range indices are ignored.
type RemoveSong struct{ Index int }

// ClearPlaylist moves every song to the history, in order.
type ClearPlaylist struct{}

// AddToHistory appends Name to the history without touching the songs.
type AddToHistory struct{ Name string }

func (AddSong) action()       {}
func (RemoveSong) action()    {}
func (ClearPlaylist) action() {}
func (AddToHistory) action()  {}

// Reduce applies a to s and returns the next state. s is never modified and the result never
// shares backing arrays with it.
func Reduce(s State, a Action) State {
	next := s.Clone()

	switch a := a.(type) {
	case AddSong:
		name := strings.TrimSpace(a.Name)
		if name == "" {
			return next
		}
		next.Songs = append(next.Songs, name)
	case RemoveSong:
		if a.Index < 0 || a.Index >= len(next.Songs) {
			return next
		}
		removed := next.Songs[a.Index]
		next.Songs = slices.Delete(next.Songs, a.Index, a.Index+1)
		next.History = append(next.History, removed)
	case ClearPlaylist:
		next.History = append(next.History, next.Songs...)
		next.Songs = nil
	case AddToHistory:
		next.History = append(next.History, a.Name)
	}

	return next
}

// Apply folds actions over s.
func Apply(s State, actions ...Action) State {
	for _, a := range actions {
		s = Reduce(s, a)
	}
	return s
}

// Engine owns the draft of a single screen. It is not safe for concurrent use.
type Engine struct {
	state State
}

// NewEngine returns an engine holding an empty draft.
func NewEngine() *Engine {
	return &Engine{}
}

// Dispatch applies a and returns the resulting state.
func (e *Engine) Dispatch(a Action) State {
	e.state = Reduce(e.state, a)
	return e.state.Clone()
}

// State returns a copy of the current draft.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Len returns the number of songs in the draft.
func (e *Engine) Len() int {
	return len(e.state.Songs)
}
