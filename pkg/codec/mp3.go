package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/voxnote/memo-api/pkg/audio"
)

// MP3Decoder decodes MPEG audio. go-mp3 always emits 16-bit
// little-endian stereo PCM regardless of the source channel layout.
type MP3Decoder struct{}

func (MP3Decoder) Decode(data []byte) (*audio.Buffer, error) {
	dec, err := gomp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptAudio, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptAudio, err)
	}

	samples := len(raw) / 2
	interleaved := make([]float64, samples)
	for i := 0; i < samples; i++ {
		v := int16(binary.LittleEndian.Uint16(raw[2*i : 2*i+2]))
		interleaved[i] = float64(v) / 32768.0
	}

	return &audio.Buffer{
		Channels:   deinterleave(interleaved, 2),
		SampleRate: dec.SampleRate(),
	}, nil
}
