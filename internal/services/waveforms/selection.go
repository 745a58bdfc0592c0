package waveforms

import (
	"math"

	"github.com/voxnote/memo-api/pkg/audio"
)

// MinSelectionSeconds is the shortest drag that still produces a cut
// candidate; anything shorter is treated as an accidental click.
const MinSelectionSeconds = 0.1

// Selection tracks one drag gesture over the waveform: idle until a
// pointer-down, updating while dragging, and on release either emits a
// candidate cut region or discards the gesture. It never touches the
// edit log itself.
type Selection struct {
	viewport Viewport
	dragging bool
	startPx  float64
	endPx    float64
}

// NewSelection creates an idle selection over the given viewport.
func NewSelection(viewport Viewport) *Selection {
	return &Selection{viewport: viewport}
}

// Dragging reports whether a drag is in progress.
func (s *Selection) Dragging() bool {
	return s.dragging
}

// Begin starts a drag at the given canvas x coordinate.
func (s *Selection) Begin(pixelX float64) {
	s.dragging = true
	s.startPx = pixelX
	s.endPx = pixelX
}

// Update moves the drag's trailing edge. Ignored when idle.
func (s *Selection) Update(pixelX float64) {
	if s.dragging {
		s.endPx = pixelX
	}
}

// Cancel abandons the gesture without emitting anything.
func (s *Selection) Cancel() {
	s.dragging = false
}

// End finishes the drag. It returns the selected region in buffer time
// when the span covers at least MinSelectionSeconds, or ok=false when
// the gesture was idle or too short. Dragging right-to-left is
// equivalent to left-to-right.
func (s *Selection) End() (region audio.Region, ok bool) {
	if !s.dragging {
		return audio.Region{}, false
	}
	s.dragging = false

	start := s.viewport.PixelToTime(s.startPx)
	end := s.viewport.PixelToTime(s.endPx)
	if start > end {
		start, end = end, start
	}

	if math.Abs(end-start) < MinSelectionSeconds {
		return audio.Region{}, false
	}
	return audio.Region{Start: start, End: end}, true
}
