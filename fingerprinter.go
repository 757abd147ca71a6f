// Package chromaprint computes and compares Chromaprint/AcoustID-style
// acoustic audio fingerprints from raw PCM samples.
package chromaprint

import (
	"fmt"

	"github.com/darksv/go-chromaprint/internal/audioproc"
	"github.com/darksv/go-chromaprint/internal/chroma"
	"github.com/darksv/go-chromaprint/internal/classify"
	"github.com/darksv/go-chromaprint/internal/consts"
	"github.com/darksv/go-chromaprint/internal/spectrum"
)

// Fingerprinter turns a stream of PCM samples into a fingerprint by
// running it through mixdown/resampling, spectral analysis, chroma
// mapping, temporal filtering, normalization and classification,
// each stage feeding the next.
type Fingerprinter struct {
	processor *audioproc.Processor
	calc      *classify.Calculator
}

// New builds a Fingerprinter wired up for config. Calling Start is
// required before Consume.
func New(config *Configuration) *Fingerprinter {
	calc := classify.NewCalculator(config.classifiers)
	normalizer := chroma.NewNormalizer(consts.ChromaNormalizerEpsilon, calc)
	filter := chroma.NewFilter(config.filterCoefficients, normalizer)
	mapper := chroma.NewMapper(consts.MinFreq, consts.MaxFreq, config.frameSize, consts.DefaultSampleRate, config.interpolate, filter)
	analyzer := spectrum.NewAnalyzer(config.frameSize, config.frameOverlap, mapper)
	processor := audioproc.New(consts.DefaultSampleRate, analyzer)
	if config.removeSilence {
		processor.SetSilenceRemoval(config.silenceThreshold)
	}

	return &Fingerprinter{processor: processor, calc: calc}
}

// Start resets internal state so a new fingerprint can be computed for
// audio at sampleRate with the given channel count.
func (f *Fingerprinter) Start(sampleRate, channels uint32) error {
	if err := f.processor.Reset(sampleRate, channels); err != nil {
		switch err {
		case audioproc.ErrNoChannels:
			return fmt.Errorf("chromaprint: start: %w", ErrNoChannels)
		case audioproc.ErrSampleRateTooLow:
			return fmt.Errorf("chromaprint: start: %w", ErrSampleRateTooLow)
		default:
			return fmt.Errorf("chromaprint: start: %w", err)
		}
	}
	return nil
}

// Consume feeds a chunk of interleaved PCM samples into the pipeline.
// Its length must be a multiple of the channel count passed to Start.
func (f *Fingerprinter) Consume(data []int16) {
	f.processor.Consume(data)
}

// Finish flushes any buffered samples through the pipeline, completing
// the fingerprint.
func (f *Fingerprinter) Finish() {
	f.processor.Flush()
}

// Fingerprint returns the sub-fingerprints computed from the audio
// consumed so far.
func (f *Fingerprinter) Fingerprint() []uint32 {
	return f.calc.Fingerprint()
}
