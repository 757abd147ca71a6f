package classify

import (
	"testing"

	"github.com/darksv/go-chromaprint/internal/consts"
)

func TestCalculatorEmitsOneSubfingerprintPerFrameAfterWarmup(t *testing.T) {
	calc := NewCalculator(consts.ClassifierTest1)

	maxWidth := 0
	for _, spec := range consts.ClassifierTest1 {
		f := NewFilter(spec.Filter)
		if w := f.Width(); w > maxWidth {
			maxWidth = w
		}
	}

	rows := maxWidth + 10
	for i := 0; i < rows; i++ {
		features := make([]float64, 12)
		for b := range features {
			features[b] = float64((i+b)%5) * 0.1
		}
		calc.Consume(features)
	}

	fp := calc.Fingerprint()
	wantLen := rows - maxWidth + 1
	if len(fp) != wantLen {
		t.Fatalf("got %d sub-fingerprints, want %d", len(fp), wantLen)
	}
}

func TestCalculatorResetClearsFingerprint(t *testing.T) {
	calc := NewCalculator(consts.ClassifierTest1)

	for i := 0; i < 50; i++ {
		features := make([]float64, 12)
		features[i%12] = 1.0
		calc.Consume(features)
	}
	if len(calc.Fingerprint()) == 0 {
		t.Fatal("expected some sub-fingerprints before reset")
	}

	calc.Reset()
	if len(calc.Fingerprint()) != 0 {
		t.Fatalf("got %d sub-fingerprints after reset, want 0", len(calc.Fingerprint()))
	}

	for i := 0; i < 50; i++ {
		features := make([]float64, 12)
		features[i%12] = 1.0
		calc.Consume(features)
	}
	if len(calc.Fingerprint()) == 0 {
		t.Fatal("expected sub-fingerprints again after reset and re-consuming")
	}
}

func TestCalculatorPanicsOnEmptyBank(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an empty classifier bank")
		}
	}()
	NewCalculator(nil)
}
