package draft

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/spotui/internal/shared"
)

// ParseScript turns command-line tokens into actions.
//
// Accepted tokens:
//   - add:<name>
//   - remove:<index>
//   - clear
//   - history:<name>
//
// Names may contain colons and spaces; only the first colon separates the verb.
func ParseScript(args []string) ([]Action, error) {
	actions := make([]Action, 0, len(args))

	for i, arg := range args {
		verb, rest, hasArg := strings.Cut(arg, ":")

		switch strings.ToLower(verb) {
		case "add":
			if !hasArg {
				return nil, fmt.Errorf("%w: token %d %q: add needs a name", shared.ErrInvalidArgument, i, arg)
			}
			actions = append(actions, AddSong{Name: rest})
		case "remove", "rm":
			if !hasArg {
				return nil, fmt.Errorf("%w: token %d %q: remove needs an index", shared.ErrInvalidArgument, i, arg)
			}
			idx, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return nil, fmt.Errorf("%w: token %d %q: %v", shared.ErrInvalidArgument, i, arg, err)
			}
			actions = append(actions, RemoveSong{Index: idx})
		case "clear":
			if hasArg {
				return nil, fmt.Errorf("%w: token %d %q: clear takes no argument", shared.ErrInvalidArgument, i, arg)
			}
			actions = append(actions, ClearPlaylist{})
		case "history":
			if !hasArg {
				return nil, fmt.Errorf("%w: token %d %q: history needs a name", shared.ErrInvalidArgument, i, arg)
			}
			actions = append(actions, AddToHistory{Name: rest})
		default:
			return nil, fmt.Errorf("%w: token %d %q: unknown action %q", shared.ErrInvalidArgument, i, arg, verb)
		}
	}

	return actions, nil
}
