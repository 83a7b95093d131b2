package pixel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/coreman2200/funtimes-sparkle/internal/pixel"
)

var TestDivGivesExpectedShade = []struct {
	In     Color
	Div    uint8
	Expect Color
}{
	{RGB(255, 0, 0), 4, RGB(63, 0, 0)},
	{RGB(255, 0, 0), 10, RGB(25, 0, 0)},
	{RGB(100, 100, 100), 4, RGB(25, 25, 25)},
	{RGB(9, 19, 39), 10, RGB(0, 1, 3)},
	{RGBW(200, 100, 40, 20), 4, RGBW(50, 25, 10, 5)},
	{RGB(7, 7, 7), 0, RGB(7, 7, 7)},
}

func TestColorDiv(t *testing.T) {
	for _, tt := range TestDivGivesExpectedShade {
		assert.Equal(t, tt.Expect, tt.In.Div(tt.Div))
	}
}

var TestScaleGivesExpectedColor = []struct {
	In     Color
	Scale  float64
	Expect Color
}{
	{RGB(100, 100, 100), 1.0, RGB(100, 100, 100)},
	{RGB(100, 100, 100), 0.0, RGB(0, 0, 0)},
	{RGB(100, 100, 100), 0.5, RGB(50, 50, 50)},
	{RGB(255, 1, 99), 0.999, RGB(254, 0, 98)},
	{RGB(200, 200, 200), 2.0, RGB(255, 255, 255)},
	{RGB(10, 10, 10), -1.0, RGB(0, 0, 0)},
}

func TestColorScale(t *testing.T) {
	for _, tt := range TestScaleGivesExpectedColor {
		assert.Equal(t, tt.Expect, tt.In.Scale(tt.Scale))
	}
}

type recordFlusher struct {
	frames [][]byte
	err    error
}

func (f *recordFlusher) Write(rgb []byte) error {
	if f.err != nil {
		return f.err
	}
	frame := make([]byte, len(rgb))
	copy(frame, rgb)
	f.frames = append(f.frames, frame)
	return nil
}

func TestStripValidation(t *testing.T) {
	_, err := NewStrip(0, 3, &recordFlusher{})
	assert.Error(t, err)
	_, err = NewStrip(5, 5, &recordFlusher{})
	assert.Error(t, err)
}

func TestStripShowSerializesRGB(t *testing.T) {
	drv := &recordFlusher{}
	s, err := NewStrip(3, 3, drv)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())
	require.Equal(t, 3, s.Channels())

	s.Set(0, RGB(1, 2, 3))
	s.Set(2, RGB(7, 8, 9))
	require.NoError(t, s.Show())
	require.Len(t, drv.frames, 1)
	assert.Equal(t, []byte{1, 2, 3, 0, 0, 0, 7, 8, 9}, drv.frames[0])
}

func TestStripShowSerializesRGBW(t *testing.T) {
	drv := &recordFlusher{}
	s, err := NewStrip(2, 4, drv)
	require.NoError(t, err)

	s.Fill(RGBW(1, 2, 3, 4))
	require.NoError(t, s.Show())
	assert.Equal(t, []byte{1, 2, 3, 4, 1, 2, 3, 4}, drv.frames[0])
}

func TestStripShowPropagatesDriverError(t *testing.T) {
	drv := &recordFlusher{err: assert.AnError}
	s, err := NewStrip(2, 3, drv)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Show(), assert.AnError)
}
