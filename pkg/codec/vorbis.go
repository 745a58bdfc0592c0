package codec

import (
	"bytes"
	"fmt"

	"github.com/jfreymuth/oggvorbis"

	"github.com/voxnote/memo-api/pkg/audio"
)

// VorbisDecoder decodes Ogg Vorbis streams.
type VorbisDecoder struct{}

func (VorbisDecoder) Decode(data []byte) (*audio.Buffer, error) {
	samples, format, err := oggvorbis.ReadAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptAudio, err)
	}

	interleaved := make([]float64, len(samples))
	for i, s := range samples {
		interleaved[i] = float64(s)
	}

	return &audio.Buffer{
		Channels:   deinterleave(interleaved, format.Channels),
		SampleRate: format.SampleRate,
	}, nil
}
