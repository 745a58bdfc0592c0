package editlog

import (
	"math"

	"github.com/voxnote/memo-api/pkg/audio"
)

// Apply materializes a new buffer by composing the given entries
// against the source. Cuts are removed first, on the source's original
// timeline; Normalize and ReduceNoise run on the cut result. Overlapping
// cut regions are tolerated, a sample covered by more than one cut is
// skipped once.
func Apply(source *audio.Buffer, entries []Entry) (*audio.Buffer, error) {
	if source == nil {
		return nil, ErrNilSource
	}

	var cuts []audio.Region
	var normalize *Normalize
	var gate *ReduceNoise

	for _, entry := range entries {
		switch e := entry.Edit.(type) {
		case Cut:
			cuts = append(cuts, cutRegion(e))
		case Normalize:
			n := e
			normalize = &n
		case ReduceNoise:
			g := e
			gate = &g
		}
	}

	result := source
	if len(cuts) > 0 {
		cut, err := applyCuts(source, cuts)
		if err != nil {
			return nil, err
		}
		result = cut
	}

	if normalize != nil {
		result = audio.Normalize(result, normalize.TargetPeak)
	}
	if gate != nil {
		result = audio.AttenuateBelowThreshold(result, gate.Threshold)
	}

	if result == source {
		// Nothing to do; hand back a copy so the caller still owns its
		// result exclusively.
		result = source.Clone()
	}

	return result, nil
}

// ApplyLog runs Apply against a snapshot of the log.
func ApplyLog(l *Log) (*audio.Buffer, error) {
	return Apply(l.Source(), l.Snapshot())
}

// Preview is Apply without any persistence side effects; it exists so
// callers auditioning edits read as doing exactly that.
func Preview(l *Log) (*audio.Buffer, error) {
	return ApplyLog(l)
}

func applyCuts(source *audio.Buffer, cuts []audio.Region) (*audio.Buffer, error) {
	rate := float64(source.SampleRate)

	removedSeconds := 0.0
	for _, r := range cuts {
		removedSeconds += r.Duration()
	}
	removedSamples := int(math.Round(removedSeconds * rate))
	if source.Len()-removedSamples <= 0 {
		return nil, ErrEmptyResult
	}

	out := &audio.Buffer{
		Channels:   make([][]float64, source.NumChannels()),
		SampleRate: source.SampleRate,
	}
	for ch := range out.Channels {
		out.Channels[ch] = make([]float64, 0, source.Len()-removedSamples)
	}

	// Scan the source on its original timeline; a sample inside any cut
	// region is dropped, everything else is copied in order. Channel
	// alignment is preserved because the same positions are dropped
	// from every channel.
	for i := 0; i < source.Len(); i++ {
		t := float64(i) / rate
		skip := false
		for _, r := range cuts {
			if r.Contains(t) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}
		for ch := range source.Channels {
			out.Channels[ch] = append(out.Channels[ch], source.Channels[ch][i])
		}
	}

	if out.Len() == 0 {
		return nil, ErrEmptyResult
	}

	return out, nil
}
