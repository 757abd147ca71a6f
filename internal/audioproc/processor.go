// Package audioproc turns interleaved PCM samples into the mono,
// resampled float64 stream the spectral analysis stage consumes.
package audioproc

import (
	"errors"
	"math"

	"github.com/darksv/go-chromaprint/internal/consts"
)

// ErrNoChannels is returned by Reset when channels is zero.
var ErrNoChannels = errors.New("audioproc: at least one channel is required")

// ErrSampleRateTooLow is returned by Reset when sampleRate is at or
// below consts.MinSampleRate.
var ErrSampleRateTooLow = errors.New("audioproc: sample rate is too low")

// Consumer receives the mono, resampled float64 samples a Processor
// produces.
type Consumer interface {
	Consume(data []float64)
	Reset()
	Flush()
}

// Processor accumulates interleaved PCM samples, mixes them down to
// mono, optionally drops silent spans and resamples the result to a
// fixed target sample rate before forwarding it downstream.
type Processor struct {
	buffer       []int16
	bufferOffset int

	input        []float64
	channels     uint32
	consumer     Consumer
	targetRate   uint32
	resampler    *Resampler

	silenceThreshold uint32
	removeSilence    bool
}

// New creates a Processor that resamples to targetSampleRate before
// forwarding samples to consumer.
func New(targetSampleRate uint32, consumer Consumer) *Processor {
	return &Processor{
		buffer:     make([]int16, consts.MaxBufferSize),
		consumer:   consumer,
		targetRate: targetSampleRate,
	}
}

// SetSilenceRemoval enables dropping frames whose peak amplitude stays
// below threshold (on the int16 scale) before they reach the consumer.
func (p *Processor) SetSilenceRemoval(threshold uint32) {
	p.removeSilence = threshold > 0
	p.silenceThreshold = threshold
}

// Reset prepares the Processor for a new stream at sampleRate with the
// given channel count, constructing a resampler if needed.
func (p *Processor) Reset(sampleRate, channels uint32) error {
	if channels == 0 {
		return ErrNoChannels
	}
	if sampleRate <= consts.MinSampleRate {
		return ErrSampleRateTooLow
	}

	p.channels = channels
	p.bufferOffset = 0
	p.input = p.input[:0]
	p.consumer.Reset()

	p.resampler = nil
	if sampleRate != p.targetRate {
		p.resampler = NewResampler(sampleRate, p.targetRate)
	}

	return nil
}

// Consume mixes down and buffers interleaved PCM samples, flushing full
// internal buffers to the resampler/consumer as needed.
func (p *Processor) Consume(data []int16) {
	if len(data)%int(p.channels) != 0 {
		panic("audioproc: sample count is not a multiple of channel count")
	}

	index := 0
	for index < len(data) {
		index += p.load(data[index:])
		if p.bufferOffset == len(p.buffer) {
			p.resample(false)
		}
	}
}

// Flush drains any buffered samples through the resampler and signals
// end-of-stream to the consumer.
func (p *Processor) Flush() {
	if p.bufferOffset > 0 {
		p.resample(true)
	}
	p.consumer.Flush()
}

func (p *Processor) load(input []int16) int {
	channels := int(p.channels)
	available := len(input) / channels
	space := len(p.buffer) - p.bufferOffset
	consumed := available
	if space < consumed {
		consumed = space
	}
	input = input[:consumed*channels]

	switch channels {
	case 1:
		for _, s := range input {
			p.pushSample(s)
		}
	case 2:
		for i := 0; i+1 < len(input); i += 2 {
			p.pushSample(int16((int32(input[i]) + int32(input[i+1])) / 2))
		}
	default:
		for i := 0; i+channels <= len(input); i += channels {
			var sum int32
			for _, s := range input[i : i+channels] {
				sum += int32(s)
			}
			p.pushSample(int16(sum / int32(channels)))
		}
	}

	return consumed * channels
}

func (p *Processor) pushSample(v int16) {
	p.buffer[p.bufferOffset] = v
	p.bufferOffset++
}

func (p *Processor) resample(flush bool) {
	frame := p.buffer[:p.bufferOffset]
	if p.removeSilence && isSilent(frame, p.silenceThreshold) {
		p.bufferOffset = 0
		return
	}

	for _, s := range frame {
		p.input = append(p.input, float64(s)/float64(math.MaxInt16))
	}
	p.bufferOffset = 0

	if p.resampler != nil {
		out := p.resampler.Process(p.input, flush)
		p.input = p.input[:0]
		if len(out) > 0 {
			p.consumer.Consume(out)
		}
	} else {
		p.consumer.Consume(p.input)
		p.input = p.input[:0]
	}
}

func isSilent(frame []int16, threshold uint32) bool {
	var peak uint32
	for _, s := range frame {
		v := uint32(s)
		if s < 0 {
			v = uint32(-int32(s))
		}
		if v > peak {
			peak = v
		}
	}
	return peak < threshold
}
