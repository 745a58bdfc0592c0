package editlog

import (
	"time"

	"github.com/google/uuid"

	"github.com/voxnote/memo-api/pkg/audio"
)

// Edit is a closed set of edit operations. The sealed marker method
// keeps the set closed so Apply can switch over every kind without a
// fallthrough branch.
type Edit interface {
	editKind() string
}

// Cut removes the region [Start, End), expressed in seconds on the
// ORIGINAL buffer's timeline. Offsets are never renormalized after
// other edits are appended, so two cuts can reference the same
// original-timeline instants regardless of append order.
type Cut struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

func (Cut) editKind() string { return "cut" }

// Normalize scales the buffer so its global peak lands at TargetPeak.
// Appending it more than once is equivalent to appending it once; the
// most recently appended target wins.
type Normalize struct {
	TargetPeak float64 `json:"target_peak"`
}

func (Normalize) editKind() string { return "normalize" }

// ReduceNoise applies the noise gate: samples under Threshold are
// damped. Presence semantics match Normalize.
type ReduceNoise struct {
	Threshold float64 `json:"threshold"`
}

func (ReduceNoise) editKind() string { return "reduce_noise" }

// Kind returns the wire tag for an edit.
func Kind(e Edit) string {
	return e.editKind()
}

// Entry is one appended edit with its synthetic id and creation time.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Edit      Edit      `json:"edit"`
}

func newEntry(e Edit) Entry {
	return Entry{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Edit:      e,
	}
}

// validate checks an edit's parameters against the source duration.
func validate(e Edit, duration float64) error {
	switch v := e.(type) {
	case Cut:
		if v.Start < 0 || v.End <= v.Start || v.End > duration {
			return ErrInvalidEdit
		}
	case Normalize:
		if v.TargetPeak <= 0 || v.TargetPeak > 1 {
			return ErrInvalidEdit
		}
	case ReduceNoise:
		if v.Threshold <= 0 || v.Threshold >= 1 {
			return ErrInvalidEdit
		}
	}
	return nil
}

// cutRegion converts a Cut to the half-open region it removes.
func cutRegion(c Cut) audio.Region {
	return audio.Region{Start: c.Start, End: c.End}
}
