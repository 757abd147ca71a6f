package chromaprint

import (
	"errors"
	"math"
	"testing"
)

func TestMatchFingerprintsAppliesConfigTimestamps(t *testing.T) {
	config := Test2()
	itemDuration := config.ItemDurationInSeconds()

	fp1 := make([]uint32, 20)
	fp2 := make([]uint32, 20)
	for i := range fp1 {
		fp1[i] = uint32(i * 0x01010101)
		fp2[i] = fp1[i]
	}

	segments, err := MatchFingerprints(fp1, fp2, config)
	if err != nil {
		t.Fatalf("MatchFingerprints: %v", err)
	}

	for _, s := range segments {
		if s.Start1() < 0 || s.Start2() < 0 {
			t.Fatalf("negative start timestamp in segment %+v", s)
		}
		wantDuration := itemDuration * float32(s.ItemsCount())
		if math.Abs(float64(s.Duration()-wantDuration)) > 1e-6 {
			t.Errorf("Duration() = %v, want %v", s.Duration(), wantDuration)
		}
		if math.Abs(float64(s.End1()-(s.Start1()+s.Duration()))) > 1e-6 {
			t.Errorf("End1() does not equal Start1()+Duration()")
		}
	}
}

func TestMatchFingerprintsTooLong(t *testing.T) {
	config := Test2()

	long := make([]uint32, 1<<21)
	short := []uint32{1, 2, 3}

	_, err := MatchFingerprints(long, short, config)
	if err == nil {
		t.Fatal("expected an error for an oversized fingerprint")
	}

	var tooLong *FingerprintTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("got %v, want a *FingerprintTooLongError", err)
	}
	if tooLong.Side != 0 {
		t.Errorf("Side = %d, want 0", tooLong.Side)
	}
	if !errors.Is(err, ErrFingerprintTooLong) {
		t.Errorf("errors.Is(err, ErrFingerprintTooLong) = false, want true")
	}
}
