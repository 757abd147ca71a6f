package match

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
)

// ErrFingerprintTooLong is returned by Match when either input
// fingerprint is long enough that its item indices would no longer fit
// in the offset/hash encoding used to align the two streams.
var ErrFingerprintTooLong = errors.New("match: fingerprint is too long")

// TooLongError reports which of the two fingerprint arguments (0 or 1)
// exceeded the maximum alignable length.
type TooLongError struct {
	Side int
}

func (e *TooLongError) Error() string {
	return fmt.Sprintf("match: fingerprint #%d is too long", e.Side)
}

func (e *TooLongError) Is(target error) bool {
	return target == ErrFingerprintTooLong
}

const (
	alignBits  = 12
	hashShift  = 32 - alignBits
	hashMask   = uint32(((1 << alignBits) - 1)) << hashShift
	offsetMask = uint32((1 << (32 - alignBits - 1)) - 1)
	sourceMask = uint32(1) << (32 - alignBits - 1)
)

func alignStrip(x uint32) uint32 {
	return x >> (32 - alignBits)
}

// Segment is a span where two fingerprints were found to be similar.
type Segment struct {
	// Offset1 is the index of the first matching item in fp1.
	Offset1 int
	// Offset2 is the index of the first matching item in fp2.
	Offset2 int
	// ItemsCount is the number of consecutive items covered.
	ItemsCount int
	// Score measures the strength of the match; lower is stronger,
	// ranging from 0 up to 32.
	Score float64
}

func (s Segment) tryMerge(other Segment) (Segment, bool) {
	if s.Offset1+s.ItemsCount != other.Offset1 {
		return Segment{}, false
	}
	if s.Offset2+s.ItemsCount != other.Offset2 {
		return Segment{}, false
	}

	duration := s.ItemsCount + other.ItemsCount
	score := (s.Score*float64(s.ItemsCount) + other.Score*float64(other.ItemsCount)) / float64(duration)
	return Segment{
		Offset1:    s.Offset1,
		Offset2:    s.Offset2,
		ItemsCount: duration,
		Score:      score,
	}, true
}

// Match finds similar segments between two fingerprints by aligning
// their 12-bit hash strips, voting in an offset histogram, and scoring
// the best-aligned overlap with a Gaussian-smoothed Hamming-distance
// gradient. Only the single strongest alignment is scored, matching the
// reference matcher's behavior.
func Match(fp1, fp2 []uint32) ([]Segment, error) {
	if len(fp1)+1 >= int(offsetMask) {
		return nil, &TooLongError{Side: 0}
	}
	if len(fp2)+1 >= int(offsetMask) {
		return nil, &TooLongError{Side: 1}
	}

	offsets := make([]uint32, 0, len(fp1)+len(fp2))
	for i, v := range fp1 {
		offsets = append(offsets, (alignStrip(v)<<hashShift)|uint32(i))
	}
	for i, v := range fp2 {
		offsets = append(offsets, (alignStrip(v)<<hashShift)|uint32(i)|sourceMask)
	}
	sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })

	histogram := make([]uint32, len(fp1)+len(fp2))
	for i := 0; i < len(offsets); i++ {
		hash1 := offsets[i] & hashMask
		offset1 := offsets[i] & offsetMask
		source1 := offsets[i] & sourceMask
		if source1 != 0 {
			continue
		}

		for j := i + 1; j < len(offsets); j++ {
			hash2 := offsets[j] & hashMask
			if hash1 != hash2 {
				break
			}

			offset2 := offsets[j] & offsetMask
			source2 := offsets[j] & sourceMask
			if source2 != 0 {
				offsetDiff := int(offset1) + len(fp2) - int(offset2)
				histogram[offsetDiff]++
			}
		}
	}

	type alignment struct {
		count  uint32
		offset int
	}
	var bestAlignments []alignment
	for i, count := range histogram {
		if count <= 1 {
			continue
		}
		isPeakLeft := i == 0 || histogram[i-1] <= count
		isPeakRight := i == len(histogram)-1 || histogram[i+1] <= count
		if isPeakLeft && isPeakRight {
			bestAlignments = append(bestAlignments, alignment{count, i})
		}
	}

	sort.Slice(bestAlignments, func(i, j int) bool {
		a, b := bestAlignments[i], bestAlignments[j]
		if a.count != b.count {
			return a.count > b.count
		}
		return a.offset > b.offset
	})

	var segments []Segment
	for _, best := range bestAlignments {
		offsetDiff := best.offset - len(fp2)
		offset1, offset2 := 0, 0
		if offsetDiff > 0 {
			offset1 = offsetDiff
		} else if offsetDiff < 0 {
			offset2 = -offsetDiff
		}

		size := len(fp1) - offset1
		if rem := len(fp2) - offset2; rem < size {
			size = rem
		}

		bitCounts := make([]float64, size)
		for i := 0; i < size; i++ {
			bitCounts[i] = float64(bits.OnesCount32(fp1[offset1+i] ^ fp2[offset2+i]))
		}
		origBitCounts := append([]float64(nil), bitCounts...)

		smoothed := make([]float64, size)
		GaussianFilter(bitCounts, smoothed, 8.0, 3)

		grad := Gradient(smoothed)
		for i := range grad {
			if grad[i] < 0 {
				grad[i] = -grad[i]
			}
		}

		var gradientPeaks []int
		for i := 0; i < size; i++ {
			gi := grad[i]
			if i > 0 && i < size-1 && gi > 0.15 && gi >= grad[i-1] && gi >= grad[i+1] &&
				(len(gradientPeaks) == 0 || gradientPeaks[len(gradientPeaks)-1]+1 < i) {
				gradientPeaks = append(gradientPeaks, i)
			}
		}
		gradientPeaks = append(gradientPeaks, size)

		const matchThreshold = 10.0
		const maxScoreDifference = 0.7

		begin := 0
		for _, end := range gradientPeaks {
			duration := end - begin
			var sum float64
			for _, c := range origBitCounts[begin:end] {
				sum += c
			}
			score := sum / float64(duration)

			if score < matchThreshold {
				newSegment := Segment{
					Offset1:    offset1 + begin,
					Offset2:    offset2 + begin,
					ItemsCount: duration,
					Score:      score,
				}

				added := false
				if n := len(segments); n > 0 {
					last := segments[n-1]
					diff := last.Score - score
					if diff < 0 {
						diff = -diff
					}
					if diff < maxScoreDifference {
						if merged, ok := last.tryMerge(newSegment); ok {
							segments[n-1] = merged
							added = true
						}
					}
				}

				if !added {
					segments = append(segments, newSegment)
				}
			}
			begin = end
		}
		break
	}

	return segments, nil
}
