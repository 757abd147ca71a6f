package chromaprint

import (
	"github.com/darksv/go-chromaprint/internal/bits"
)

const normalBitsWidth = 3
const maxNormalValue = (1 << normalBitsWidth) - 1 // 7
const exceptionalBitsWidth = 5

// Compress packs a fingerprint's sub-fingerprints into chromaprint's
// wire format: a 4-byte header (algorithm id, 24-bit subfingerprint
// count) followed by a bit-packed stream of XOR-delta bit gaps.
//
// Each sub-fingerprint is XORed against its predecessor (zero for the
// first one); the resulting value's set-bit positions are expressed as
// gaps from the previous set bit (or from zero). A gap under 7 is
// stored as a 3-bit "normal" code; larger gaps store 7 plus the
// overflow as a separate 5-bit "exceptional" code. A normal code of 0
// terminates each sub-fingerprint's gap list.
func (c *Configuration) Compress(fingerprint []uint32) []byte {
	size := len(fingerprint)

	var normalValues, exceptionalValues []uint8

	var lastSubfp uint32
	for _, cur := range fingerprint {
		delta := cur ^ lastSubfp
		lastSubfp = cur

		lastBitIndex := 0
		for bitIndex := 0; bitIndex < 32; bitIndex++ {
			if (delta>>uint(bitIndex))&1 == 0 {
				continue
			}
			pos := bitIndex + 1
			gap := pos - lastBitIndex
			lastBitIndex = pos

			if gap >= maxNormalValue {
				normalValues = append(normalValues, maxNormalValue)
				exceptionalValues = append(exceptionalValues, uint8(gap-maxNormalValue))
			} else {
				normalValues = append(normalValues, uint8(gap))
			}
		}
		normalValues = append(normalValues, 0)
	}

	header := []byte{
		c.id,
		byte((size >> 16) & 0xFF),
		byte((size >> 8) & 0xFF),
		byte(size & 0xFF),
	}

	out := make([]byte, 0, len(header)+len(normalValues)+len(exceptionalValues))
	out = append(out, header...)
	out = append(out, bits.PackIntN(normalValues, normalBitsWidth)...)
	out = append(out, bits.PackIntN(exceptionalValues, exceptionalBitsWidth)...)
	return out
}

// Decompress is the inverse of Compress: it parses the 4-byte header
// and unpacks the bit-gap streams back into sub-fingerprints.
// ErrMalformedFingerprint is returned for truncated or internally
// inconsistent input.
func Decompress(data []byte) ([]uint32, error) {
	if len(data) < 4 {
		return nil, ErrMalformedFingerprint
	}

	size := int(data[1])<<16 | int(data[2])<<8 | int(data[3])
	normalReader := bits.NewReader(data[4:])

	type gap struct {
		value            int
		needsExceptional bool
	}

	subfpGaps := make([][]gap, size)
	exceptionalCount := 0

	for i := 0; i < size; i++ {
		var gaps []gap
		for {
			v, ok := normalReader.ReadN(normalBitsWidth)
			if !ok {
				return nil, ErrMalformedFingerprint
			}
			if v == 0 {
				break
			}
			g := gap{value: int(v)}
			if v == maxNormalValue {
				g.needsExceptional = true
				exceptionalCount++
			}
			gaps = append(gaps, g)
		}
		subfpGaps[i] = gaps
	}

	normalBitLen := normalReader.BitsRead()
	normalByteLen := (normalBitLen + 7) / 8
	if 4+normalByteLen > len(data) {
		return nil, ErrMalformedFingerprint
	}
	exceptionalReader := bits.NewReader(data[4+normalByteLen:])

	fingerprint := make([]uint32, size)
	var lastSubfp uint32
	for i, gaps := range subfpGaps {
		var bitsSet uint32
		lastBitIndex := 0
		for _, g := range gaps {
			value := g.value
			if g.needsExceptional {
				ev, ok := exceptionalReader.ReadN(exceptionalBitsWidth)
				if !ok {
					return nil, ErrMalformedFingerprint
				}
				value += int(ev)
			}
			bitPos := lastBitIndex + value
			lastBitIndex = bitPos
			if bitPos < 1 || bitPos > 32 {
				return nil, ErrMalformedFingerprint
			}
			bitsSet |= 1 << uint(bitPos-1)
		}

		cur := bitsSet ^ lastSubfp
		fingerprint[i] = cur
		lastSubfp = cur
	}

	return fingerprint, nil
}
