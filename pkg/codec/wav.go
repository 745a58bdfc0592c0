package codec

import (
	"bytes"
	"fmt"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/voxnote/memo-api/pkg/audio"
)

// WAVDecoder decodes PCM WAV containers.
type WAVDecoder struct{}

func (WAVDecoder) Decode(data []byte) (*audio.Buffer, error) {
	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, ErrCorruptAudio
	}

	var pcm *goaudio.IntBuffer
	pcm, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptAudio, err)
	}
	if pcm == nil || pcm.Format == nil || len(pcm.Data) == 0 {
		return nil, ErrCorruptAudio
	}

	bitDepth := pcm.SourceBitDepth
	if bitDepth <= 0 {
		bitDepth = int(dec.BitDepth)
	}
	scale := float64(int64(1) << (bitDepth - 1))

	interleaved := make([]float64, len(pcm.Data))
	for i, v := range pcm.Data {
		interleaved[i] = float64(v) / scale
	}

	return &audio.Buffer{
		Channels:   deinterleave(interleaved, pcm.Format.NumChannels),
		SampleRate: pcm.Format.SampleRate,
	}, nil
}
