// Package wavutil decodes WAV files into the interleaved PCM samples
// the fingerprinting pipeline consumes.
package wavutil

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/wav"
)

// File holds an entire decoded WAV file's PCM samples along with the
// format metadata a Fingerprinter needs to interpret them.
type File struct {
	SampleRate uint32
	Channels   uint32
	Samples    []int16
}

// Decode reads a complete WAV file from r.
func Decode(r io.Reader) (*File, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		return nil, fmt.Errorf("wavutil: reader must support seeking")
	}

	decoder := wav.NewDecoder(rs)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("wavutil: not a valid WAV file")
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavutil: decoding PCM buffer: %w", err)
	}

	samples := make([]int16, len(buf.Data))
	bitDepth := decoder.BitDepth
	switch bitDepth {
	case 8:
		for i, v := range buf.Data {
			samples[i] = int16((v - 128) << 8)
		}
	case 16:
		for i, v := range buf.Data {
			samples[i] = int16(v)
		}
	case 24, 32:
		shift := bitDepth - 16
		for i, v := range buf.Data {
			s := v >> shift
			if s > math.MaxInt16 {
				s = math.MaxInt16
			} else if s < math.MinInt16 {
				s = math.MinInt16
			}
			samples[i] = int16(s)
		}
	default:
		return nil, fmt.Errorf("wavutil: unsupported bit depth %d", bitDepth)
	}

	return &File{
		SampleRate: decoder.SampleRate,
		Channels:   uint32(decoder.NumChans),
		Samples:    samples,
	}, nil
}
