package audio

import "math"

// Region is a half-open time range [Start, End) in seconds.
type Region struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Duration returns the region length in seconds.
func (r Region) Duration() float64 {
	return r.End - r.Start
}

// Contains reports whether the instant t falls inside the region.
func (r Region) Contains(t float64) bool {
	return t >= r.Start && t < r.End
}

// DetectNonSilentRegions scans the buffer for contiguous runs where any
// channel's absolute sample value reaches threshold. Runs shorter than
// minDurationSeconds are discarded. Qualifying runs separated by a gap
// are reported separately; nothing is merged. An all-silent buffer
// yields an empty slice.
func DetectNonSilentRegions(b *Buffer, threshold, minDurationSeconds float64) []Region {
	regions := []Region{}
	if b.Len() == 0 || b.SampleRate <= 0 {
		return regions
	}

	rate := float64(b.SampleRate)
	minSamples := int(math.Ceil(minDurationSeconds * rate))

	inRun := false
	runStart := 0
	for i := 0; i < b.Len(); i++ {
		loud := false
		for _, ch := range b.Channels {
			if math.Abs(ch[i]) >= threshold {
				loud = true
				break
			}
		}

		switch {
		case loud && !inRun:
			inRun = true
			runStart = i
		case !loud && inRun:
			inRun = false
			if i-runStart >= minSamples {
				regions = append(regions, Region{
					Start: float64(runStart) / rate,
					End:   float64(i) / rate,
				})
			}
		}
	}

	if inRun && b.Len()-runStart >= minSamples {
		regions = append(regions, Region{
			Start: float64(runStart) / rate,
			End:   float64(b.Len()) / rate,
		})
	}

	return regions
}
