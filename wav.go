package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
)

/*
 * Output Writers
 *
 * WAV: mono 16-bit PCM, float samples scaled by 32767 and truncated.
 * Raw: the clipped float waveform as little-endian float32, padded with
 * trailing silence so a decoder can flush its internal filters.
 */

// rawPadSamples is the number of zero samples appended to the raw
// output.
const rawPadSamples = 2048

// WAVHeader represents a canonical 44-byte RIFF/WAVE header
type WAVHeader struct {
	// RIFF chunk
	ChunkID   [4]byte // "RIFF"
	ChunkSize uint32  // File size - 8
	Format    [4]byte // "WAVE"

	// fmt sub-chunk
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16  // 1 (mono)
	SampleRate    uint32  // Sample rate in Hz
	ByteRate      uint32  // SampleRate * NumChannels * BitsPerSample/8
	BlockAlign    uint16  // NumChannels * BitsPerSample/8
	BitsPerSample uint16  // 16

	// data sub-chunk
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // NumSamples * NumChannels * BitsPerSample/8
}

// WriteWAV writes a clipped waveform as a mono 16-bit PCM WAV file.
func WriteWAV(filename string, samples []float64, sampleRate int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create WAV file: %w", err)
	}
	defer file.Close()

	dataSize := uint32(len(samples) * 2)
	header := WAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1, // PCM
		NumChannels:   1,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}

	w := bufio.NewWriter(file)
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}

	pcm := make([]int16, len(samples))
	for i, v := range samples {
		pcm[i] = int16(v * 32767.0) // truncation, matching the reference
	}
	if err := binary.Write(w, binary.LittleEndian, pcm); err != nil {
		return fmt.Errorf("failed to write WAV samples: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush WAV file: %w", err)
	}
	return file.Close()
}

// WriteRaw writes the clipped float waveform as little-endian float32
// with rawPadSamples trailing zeros.
func WriteRaw(filename string, samples []float64) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create raw file: %w", err)
	}
	defer file.Close()

	out := make([]float32, len(samples)+rawPadSamples)
	for i, v := range samples {
		out[i] = float32(v)
	}

	w := bufio.NewWriter(file)
	if err := binary.Write(w, binary.LittleEndian, out); err != nil {
		return fmt.Errorf("failed to write raw samples: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush raw file: %w", err)
	}
	return file.Close()
}
