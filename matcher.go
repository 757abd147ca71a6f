package chromaprint

import (
	"errors"
	"fmt"

	"github.com/darksv/go-chromaprint/internal/match"
)

// Segment is a span where two fingerprints were found to be similar.
type Segment struct {
	offset1    int
	offset2    int
	itemsCount int
	score      float64

	config *Configuration
}

// ItemsCount returns the number of fingerprint items covered by the
// segment.
func (s Segment) ItemsCount() int {
	return s.itemsCount
}

// Score measures the strength of the match; the smaller it is, the
// stronger the similarity. Ranges from 0 up to 32.
func (s Segment) Score() float64 {
	return s.score
}

// Start1 is the timestamp, in seconds, where the segment begins in the
// first fingerprint.
func (s Segment) Start1() float32 {
	return s.config.ItemDurationInSeconds() * float32(s.offset1)
}

// End1 is the timestamp, in seconds, where the segment ends in the
// first fingerprint.
func (s Segment) End1() float32 {
	return s.Start1() + s.Duration()
}

// Start2 is the timestamp, in seconds, where the segment begins in the
// second fingerprint.
func (s Segment) Start2() float32 {
	return s.config.ItemDurationInSeconds() * float32(s.offset2)
}

// End2 is the timestamp, in seconds, where the segment ends in the
// second fingerprint.
func (s Segment) End2() float32 {
	return s.Start2() + s.Duration()
}

// Duration is the length of the segment, in seconds.
func (s Segment) Duration() float32 {
	return s.config.ItemDurationInSeconds() * float32(s.itemsCount)
}

// MatchFingerprints finds similar segments between two fingerprints.
// config is only used to turn item indices into timestamps; it does
// not need to match the configuration either fingerprint was computed
// with.
func MatchFingerprints(fp1, fp2 []uint32, config *Configuration) ([]Segment, error) {
	raw, err := match.Match(fp1, fp2)
	if err != nil {
		var tooLong *match.TooLongError
		if errors.As(err, &tooLong) {
			return nil, &FingerprintTooLongError{Side: tooLong.Side}
		}
		return nil, fmt.Errorf("chromaprint: match: %w", err)
	}

	segments := make([]Segment, len(raw))
	for i, r := range raw {
		segments[i] = Segment{
			offset1:    r.Offset1,
			offset2:    r.Offset2,
			itemsCount: r.ItemsCount,
			score:      r.Score,
			config:     config,
		}
	}
	return segments, nil
}
