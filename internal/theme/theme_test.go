package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/desertthunder/spotui/internal/shared"
)

func TestParseMode(t *testing.T) {
	tt := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{in: "light", want: Light},
		{in: "DARK", want: Dark},
		{in: " custom ", want: Custom},
		{in: "auto", want: Auto},
		{in: "sepia", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMode(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, shared.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToggle(t *testing.T) {
	assert.Equal(t, Dark, Toggle(Light))
	assert.Equal(t, Light, Toggle(Dark))
	assert.Equal(t, Dark, Toggle(Auto))
	assert.Equal(t, Dark, Toggle(Custom))
}

func TestResolve(t *testing.T) {
	custom := CustomColors{Primary: "#FF6B9D", Secondary: "#00CED1", Accent: "#FFD700"}

	t.Run("Light", func(t *testing.T) {
		assert.Equal(t, LightColors, Resolve(Light, custom))
	})

	t.Run("DarkAndAuto", func(t *testing.T) {
		assert.Equal(t, DarkColors, Resolve(Dark, custom))
		assert.Equal(t, DarkColors, Resolve(Auto, custom))
	})

	t.Run("Custom", func(t *testing.T) {
		got := Resolve(Custom, custom)
		assert.Equal(t, "#FF6B9D", got.Primary)
		assert.Equal(t, "#FF6B9D", got.Success)
		assert.Equal(t, "#00CED1", got.Secondary)
		assert.Equal(t, "#FFD700", got.TabIconSelected)
		assert.Equal(t, DarkColors.Background, got.Background)
		assert.Equal(t, "#1DB954", DarkColors.Primary, "resolving must not modify the base palette")
	})
}

func TestHighlight(t *testing.T) {
	h := DarkColors.Highlight()
	c, err := colorful.Hex(h)
	require.NoError(t, err)

	surface, _ := colorful.Hex(DarkColors.Surface)
	primary, _ := colorful.Hex(DarkColors.Primary)
	assert.Greater(t, c.DistanceLab(surface), 0.0)
	assert.Less(t, c.DistanceLab(surface), primary.DistanceLab(surface))

	broken := DarkColors
	broken.Primary = "green"
	assert.Equal(t, broken.Surface, broken.Highlight())
}

func TestCustomColorsValidate(t *testing.T) {
	tt := []struct {
		name    string
		colors  CustomColors
		wantErr bool
	}{
		{name: "defaults", colors: DefaultCustomColors},
		{name: "short hex", colors: CustomColors{"#fff", "#000", "#abc"}},
		{name: "missing hash", colors: CustomColors{"1DB954", "#FFFFFF", "#1DB954"}, wantErr: true},
		{name: "named color", colors: CustomColors{"#1DB954", "white", "#1DB954"}, wantErr: true},
		{name: "empty accent", colors: CustomColors{"#1DB954", "#FFFFFF", ""}, wantErr: true},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.colors.Validate()
			if tc.wantErr {
				assert.ErrorIs(t, err, shared.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPresetsAreValid(t *testing.T) {
	assert.Len(t, Presets, 12)
	for _, p := range Presets {
		_, err := colorful.Hex(p.Hex)
		assert.NoError(t, err, p.Name)
	}
}
