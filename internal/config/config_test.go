package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/funtimes-sparkle/internal/config"
	"github.com/coreman2200/funtimes-sparkle/internal/pixel"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	in := &Config{
		Driver:      "sim",
		Pixels:      50,
		Channels:    3,
		PreviewAddr: ":8080",
		Loop:        true,
		Playlist: []Anim{
			{Effect: "sparkle", Color: "#ff9911", IntervalMs: 100, NumSparkles: 3, HoldS: 20},
			{Effect: "sparkle_pulse", Color: "#1199ff", PeriodS: 5, MaxIntensity: 1},
		},
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

var TestHexParsesToExpectedColor = []struct {
	Hex    string
	Expect pixel.Color
}{
	{"#ff9911", pixel.RGB(255, 153, 17)},
	{"ff9911", pixel.RGB(255, 153, 17)},
	{"#000000", pixel.RGB(0, 0, 0)},
	{"#FFFFFF", pixel.RGB(255, 255, 255)},
}

func TestParseColor(t *testing.T) {
	for _, tt := range TestHexParsesToExpectedColor {
		c, err := Anim{Effect: "sparkle", Color: tt.Hex}.ParseColor()
		require.NoError(t, err, tt.Hex)
		assert.Equal(t, tt.Expect, c, tt.Hex)
	}
}

func TestParseColorRejectsGarbage(t *testing.T) {
	_, err := Anim{Effect: "sparkle"}.ParseColor()
	assert.Error(t, err)
	_, err = Anim{Effect: "sparkle", Color: "#zzz"}.ParseColor()
	assert.Error(t, err)
}

func TestIntervalDefault(t *testing.T) {
	assert.Equal(t, 100*time.Millisecond, Anim{}.Interval())
	assert.Equal(t, 50*time.Millisecond, Anim{IntervalMs: 50}.Interval())
}
