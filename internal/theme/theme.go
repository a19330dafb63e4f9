// Package theme defines the color modes and palettes of the app.
package theme

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/desertthunder/spotui/internal/shared"
)

// Mode is the persisted theme choice.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	Custom Mode = "custom"
	// Auto is accepted from older installs and renders as [Dark].
	Auto Mode = "auto"
)

// DefaultMode is used when nothing valid is stored.
const DefaultMode = Dark

// Modes lists the modes a user can pick.
var Modes = []Mode{Light, Dark, Custom}

// ParseMode validates a stored or user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark, Custom, Auto:
		return m, nil
	default:
		return "", fmt.Errorf("%w: theme mode %q", shared.ErrInvalidArgument, s)
	}
}

// IsDark reports whether the mode renders on the dark base palette.
func (m Mode) IsDark() bool { return m != Light }

func (m Mode) String() string { return string(m) }

// Toggle flips between light and dark. Any other mode becomes dark.
func Toggle(m Mode) Mode {
	switch m {
	case Light:
		return Dark
	case Dark:
		return Light
	default:
		return Dark
	}
}

// Colors is a resolved palette of hex colors.
type Colors struct {
	Background      string
	Surface         string
	Text            string
	TextSecondary   string
	Primary         string
	Secondary       string
	Border          string
	Icon            string
	TabIconDefault  string
	TabIconSelected string
	Error           string
	Success         string
	Card            string
	Input           string
}

var (
	LightColors = Colors{
		Background:      "#FFFFFF",
		Surface:         "#F5F5F5",
		Text:            "#11181C",
		TextSecondary:   "#687076",
		Primary:         "#1DB954",
		Secondary:       "#0a7ea4",
		Border:          "#E0E0E0",
		Icon:            "#687076",
		TabIconDefault:  "#687076",
		TabIconSelected: "#0a7ea4",
		Error:           "#E22134",
		Success:         "#1DB954",
		Card:            "#FFFFFF",
		Input:           "#F5F5F5",
	}

	DarkColors = Colors{
		Background:      "#121212",
		Surface:         "#1a1a1a",
		Text:            "#FFFFFF",
		TextSecondary:   "#B3B3B3",
		Primary:         "#1DB954",
		Secondary:       "#FFFFFF",
		Border:          "#333333",
		Icon:            "#B3B3B3",
		TabIconDefault:  "#B3B3B3",
		TabIconSelected: "#FFFFFF",
		Error:           "#E22134",
		Success:         "#1DB954",
		Card:            "#1a1a1a",
		Input:           "#1a1a1a",
	}
)

// Resolve returns the palette for mode. In [Custom] mode the custom colors replace the primary,
// secondary, selected-tab and success colors of the dark palette.
func Resolve(mode Mode, custom CustomColors) Colors {
	if !mode.IsDark() {
		return LightColors
	}

	colors := DarkColors
	if mode == Custom {
		colors.Primary = custom.Primary
		colors.Secondary = custom.Secondary
		colors.TabIconSelected = custom.Accent
		colors.Success = custom.Primary
	}
	return colors
}

// Highlight blends the primary color into the surface for selected rows.
func (c Colors) Highlight() string {
	surface, err := colorful.Hex(c.Surface)
	if err != nil {
		return c.Surface
	}
	primary, err := colorful.Hex(c.Primary)
	if err != nil {
		return c.Surface
	}
	return surface.BlendLab(primary, 0.3).Clamped().Hex()
}

// CustomColors is the user's palette for [Custom] mode.
type CustomColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// DefaultCustomColors is Spotify green on white.
var DefaultCustomColors = CustomColors{
	Primary:   "#1DB954",
	Secondary: "#FFFFFF",
	Accent:    "#1DB954",
}

// Validate checks that every field is a #rgb or #rrggbb color.
func (c CustomColors) Validate() error {
	for name, v := range map[string]string{"primary": c.Primary, "secondary": c.Secondary, "accent": c.Accent} {
		if _, err := colorful.Hex(v); err != nil {
			return fmt.Errorf("%w: %s color %q", shared.ErrInvalidInput, name, v)
		}
	}
	return nil
}

// Normalize returns c with upper-case hex values.
func (c CustomColors) Normalize() CustomColors {
	return CustomColors{
		Primary:   strings.ToUpper(c.Primary),
		Secondary: strings.ToUpper(c.Secondary),
		Accent:    strings.ToUpper(c.Accent),
	}
}

// Preset is a named swatch offered by the color picker.
type Preset struct {
	Name string
	Hex  string
}

// Presets are the quick-pick swatches.
var Presets = []Preset{
	{"Spotify Green", "#1DB954"},
	{"Pink", "#FF6B9D"},
	{"Purple", "#8B5CF6"},
	{"Orange", "#FFA500"},
	{"Cyan", "#00CED1"},
	{"Deep Pink", "#FF1493"},
	{"Lime", "#00FF00"},
	{"Gold", "#FFD700"},
	{"Red Orange", "#FF4500"},
	{"Medium Purple", "#9370DB"},
	{"Deep Sky Blue", "#00BFFF"},
	{"Hot Pink", "#FF69B4"},
}
