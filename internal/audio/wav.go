// Package audio writes synthesised speech to disk as WAV files.
package audio

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/google/uuid"
)

// Format describes the PCM stream the speech model returns.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

const wavFormatPCM = 1

// WriteWAV encodes little-endian 16-bit PCM into a WAV file at path. The file
// is written under a temporary name and renamed into place, so readers never
// see a partial file.
func WriteWAV(path string, pcm []byte, f Format) error {
	if f.BitDepth != 16 {
		return fmt.Errorf("unsupported bit depth %d", f.BitDepth)
	}
	if len(pcm)%2 != 0 {
		return fmt.Errorf("pcm length %d is not a whole number of samples", len(pcm))
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	tmp := filepath.Join(dir, "."+uuid.NewString()+".tmp")
	out, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp)

	samples := make([]int, len(pcm)/2)
	for i := range samples {
		samples[i] = int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
	}

	enc := wav.NewEncoder(out, f.SampleRate, f.BitDepth, f.Channels, wavFormatPCM)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: f.Channels, SampleRate: f.SampleRate},
		Data:           samples,
		SourceBitDepth: f.BitDepth,
	}
	if err := enc.Write(buf); err != nil {
		out.Close()
		return fmt.Errorf("failed to encode wav: %w", err)
	}
	if err := enc.Close(); err != nil {
		out.Close()
		return fmt.Errorf("failed to finalise wav: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close wav: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move wav into place: %w", err)
	}
	return nil
}
