// Package chroma maps power spectra onto 12-bin pitch-class (chroma)
// feature vectors and provides the temporal filter and normalizer
// stages that refine them before classification.
package chroma

import "math"

const numBands = 12

// FeatureConsumer receives one 12-bin chroma feature vector at a time.
type FeatureConsumer interface {
	Consume(features []float64)
	Reset()
}

// Mapper folds FFT power-spectrum bins into 12 pitch classes, optionally
// splitting each bin's energy between its two nearest pitch classes.
type Mapper struct {
	interpolate bool
	notes       []uint8
	notesFrac   []float64
	minIndex    int
	maxIndex    int
	features    [numBands]float64
	consumer    FeatureConsumer
}

// NewMapper builds a Mapper covering [minFreq, maxFreq) of a frameSize
// point spectrum sampled at sampleRate.
func NewMapper(minFreq, maxFreq uint32, frameSize int, sampleRate uint32, interpolate bool, consumer FeatureConsumer) *Mapper {
	m := &Mapper{
		interpolate: interpolate,
		notes:       make([]uint8, frameSize),
		notesFrac:   make([]float64, frameSize),
		consumer:    consumer,
	}
	m.prepareNotes(minFreq, maxFreq, frameSize, sampleRate)
	return m
}

func (m *Mapper) prepareNotes(minFreq, maxFreq uint32, frameSize int, sampleRate uint32) {
	m.minIndex = freqToIndex(minFreq, frameSize, sampleRate)
	if m.minIndex < 1 {
		m.minIndex = 1
	}
	m.maxIndex = freqToIndex(maxFreq, frameSize, sampleRate)
	if m.maxIndex > frameSize/2 {
		m.maxIndex = frameSize / 2
	}
	for i := m.minIndex; i < m.maxIndex; i++ {
		freq := indexToFreq(i, frameSize, sampleRate)
		octave := freqToOctave(freq)
		note := float64(numBands) * (octave - math.Floor(octave))
		m.notes[i] = uint8(math.Floor(note))
		m.notesFrac[i] = note - math.Floor(note)
	}
}

// Consume maps one power-spectrum frame to a 12-bin chroma vector and
// forwards it downstream.
func (m *Mapper) Consume(frame []float64) {
	for i := range m.features {
		m.features[i] = 0
	}

	hi := m.maxIndex
	if hi > len(frame) {
		hi = len(frame)
	}
	for i := m.minIndex; i < hi; i++ {
		energy := frame[i]
		note := int(m.notes[i])
		if m.interpolate {
			note2 := note
			a := 1.0
			if m.notesFrac[i] < 0.5 {
				note2 = (note + numBands - 1) % numBands
				a = 0.5 + m.notesFrac[i]
			}
			if m.notesFrac[i] > 0.5 {
				note2 = (note + 1) % numBands
				a = 1.5 - m.notesFrac[i]
			}
			m.features[note] += energy * a
			m.features[note2] += energy * (1.0 - a)
		} else {
			m.features[note] += energy
		}
	}

	m.consumer.Consume(m.features[:])
}

// Reset propagates a reset downstream; the note tables themselves are
// static and never need recomputing.
func (m *Mapper) Reset() {
	m.consumer.Reset()
}

func freqToIndex(freq uint32, frameSize int, sampleRate uint32) int {
	return int(math.Round(float64(frameSize) * float64(freq) / float64(sampleRate)))
}

func indexToFreq(i, frameSize int, sampleRate uint32) float64 {
	return float64(i) * float64(sampleRate) / float64(frameSize)
}

func freqToOctave(freq float64) float64 {
	const base = 440.0 / 16.0
	return math.Log2(freq / base)
}
