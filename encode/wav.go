// Package encode serializes a wavetable into a standard audio container.
// The export is a mono, 32-bit IEEE-float, uncompressed RIFF/WAVE file with
// every frame's cycle concatenated in table order.
package encode

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/cwbudde/algo-wavetable/wavetable"
)

// SampleRate is the fixed export rate in Hz.
const SampleRate = 44100

const (
	headerSize      = 44
	numChannels     = 1
	bitsPerSample   = 32
	bytesPerSample  = bitsPerSample / 8
	formatIEEEFloat = 3
)

// WAV serializes frames into a single WAV file and returns its bytes.
// Each sample is written as a little-endian IEEE-754 float32, so a standard
// float-WAV reader recovers the original values exactly up to float32
// precision. Every frame must be wavetable.FrameSize samples long and at
// least one frame is required.
func WAV(frames []wavetable.Frame) ([]byte, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("wav export requires at least one frame")
	}
	for i, f := range frames {
		if len(f) != wavetable.FrameSize {
			return nil, fmt.Errorf("wav export frame %d length must be %d: %d", i, wavetable.FrameSize, len(f))
		}
	}

	dataSize := len(frames) * wavetable.FrameSize * bytesPerSample

	buf := bytes.NewBuffer(make([]byte, 0, headerSize+dataSize))
	buf.WriteString("RIFF")
	_ = binary.Write(buf, binary.LittleEndian, uint32(36+dataSize))
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	_ = binary.Write(buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(buf, binary.LittleEndian, uint16(formatIEEEFloat))
	_ = binary.Write(buf, binary.LittleEndian, uint16(numChannels))
	_ = binary.Write(buf, binary.LittleEndian, uint32(SampleRate))
	_ = binary.Write(buf, binary.LittleEndian, uint32(SampleRate*numChannels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(numChannels*bytesPerSample))
	_ = binary.Write(buf, binary.LittleEndian, uint16(bitsPerSample))

	buf.WriteString("data")
	_ = binary.Write(buf, binary.LittleEndian, uint32(dataSize))

	var sample [bytesPerSample]byte
	for _, f := range frames {
		for _, v := range f {
			binary.LittleEndian.PutUint32(sample[:], math.Float32bits(float32(v)))
			buf.Write(sample[:])
		}
	}
	return buf.Bytes(), nil
}
