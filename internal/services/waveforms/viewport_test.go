package waveforms

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_PixelToTime(t *testing.T) {
	v := NewViewport(800, 60, 1)

	assert.InDelta(t, 0.0, v.PixelToTime(0), 1e-9)
	assert.InDelta(t, 30.0, v.PixelToTime(400), 1e-9)
	assert.InDelta(t, 60.0, v.PixelToTime(800), 1e-9)
}

func TestViewport_ZoomNarrowsVisibleSpan(t *testing.T) {
	v := NewViewport(800, 60, 2)

	// At 2x zoom the canvas spans 30 seconds.
	assert.InDelta(t, 30.0, v.PixelToTime(800), 1e-9)
	assert.InDelta(t, 800.0, v.TimeToPixel(30), 1e-9)
}

func TestViewport_InverseMapping(t *testing.T) {
	tests := []struct {
		name string
		v    Viewport
	}{
		{name: "no zoom", v: NewViewport(640, 12.5, 1)},
		{name: "zoomed", v: NewViewport(1024, 300, 4)},
		{name: "fractional zoom falls back to one", v: NewViewport(100, 5, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, px := range []float64{0, 1, 99.5, 50.25, 100} {
				got := tt.v.TimeToPixel(tt.v.PixelToTime(px))
				assert.InDelta(t, px, got, 1e-9)
			}
			for _, sec := range []float64{0, 0.001, 1.5, 4.999} {
				got := tt.v.PixelToTime(tt.v.TimeToPixel(sec))
				assert.InDelta(t, sec, got, 1e-9)
			}
		})
	}
}

func TestViewport_DegenerateWidth(t *testing.T) {
	v := NewViewport(0, 10, 1)
	assert.Zero(t, v.PixelToTime(100))
}
