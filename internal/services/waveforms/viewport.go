package waveforms

// Viewport is the linear mapping between canvas pixels and buffer time
// at the current zoom level. PixelToTime and TimeToPixel are exact
// inverses so a selection boundary drawn at pixel X and the cut derived
// from it reference the same instant.
type Viewport struct {
	WidthPx  float64
	Duration float64
	Zoom     float64
}

// NewViewport builds a viewport; zoom values at or below zero fall back
// to 1 (fully zoomed out).
func NewViewport(widthPx, durationSeconds, zoom float64) Viewport {
	if zoom <= 0 {
		zoom = 1
	}
	return Viewport{WidthPx: widthPx, Duration: durationSeconds, Zoom: zoom}
}

// visibleSeconds is the stretch of buffer time the canvas spans at the
// current zoom.
func (v Viewport) visibleSeconds() float64 {
	return v.Duration / v.Zoom
}

// PixelToTime maps a canvas x coordinate to buffer seconds.
func (v Viewport) PixelToTime(pixelX float64) float64 {
	if v.WidthPx <= 0 {
		return 0
	}
	return pixelX / v.WidthPx * v.visibleSeconds()
}

// TimeToPixel maps buffer seconds to a canvas x coordinate.
func (v Viewport) TimeToPixel(seconds float64) float64 {
	vs := v.visibleSeconds()
	if vs <= 0 {
		return 0
	}
	return seconds / vs * v.WidthPx
}
