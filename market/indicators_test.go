package market

import (
	"math"
	"testing"
)

func TestSMA(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5}

	if got := SMA(closes, 5); got != 3 {
		t.Errorf("SMA over all closes: expected 3, got %v", got)
	}
	if got := SMA(closes, 2); got != 4.5 {
		t.Errorf("SMA over last 2: expected 4.5, got %v", got)
	}
	if got := SMA(closes, 6); got != 0 {
		t.Errorf("SMA with short data: expected 0, got %v", got)
	}
	if got := SMA(closes, 0); got != 0 {
		t.Errorf("SMA with zero period: expected 0, got %v", got)
	}
}

func TestVWAP(t *testing.T) {
	closes := []float64{10, 20}
	volumes := []int64{1, 3}

	// (10*1 + 20*3) / 4 = 17.5
	if got := VWAP(closes, volumes, 2); got != 17.5 {
		t.Errorf("expected 17.5, got %v", got)
	}

	// Zero traded volume falls back to the SMA.
	if got := VWAP(closes, []int64{0, 0}, 2); got != 15 {
		t.Errorf("expected SMA fallback 15, got %v", got)
	}
}

func TestRSI(t *testing.T) {
	// Monotonic rise has no losses: RSI saturates near 100.
	rising := []float64{1, 2, 3, 4, 5, 6}
	if got := RSI(rising, 5); got < 98 || got > 100 {
		t.Errorf("expected RSI near 100 for rising prices, got %v", got)
	}

	// Equal gains and losses balance to 50.
	flat := []float64{10, 12, 10, 12, 10}
	if got := RSI(flat, 4); math.Abs(got-50) > 1e-9 {
		t.Errorf("expected RSI 50 for balanced window, got %v", got)
	}

	// Exactly period closes leaves period-1 deltas; the divisor is
	// still period, so balanced moves stay at 50.
	if got := RSI([]float64{10, 12, 10, 12, 10}, 5); math.Abs(got-50) > 1e-9 {
		t.Errorf("expected RSI 50 with exactly period closes, got %v", got)
	}

	if got := RSI([]float64{1, 2}, 5); got != 0 {
		t.Errorf("expected 0 with insufficient data, got %v", got)
	}
}

func TestCompute(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105}
	volumes := []int64{10, 10, 10, 10, 10, 10}

	got, ok := Compute("TCS", closes, volumes, 5)
	if !ok {
		t.Fatal("expected Compute to succeed")
	}
	if got.Symbol != "TCS" || got.Period != 5 {
		t.Errorf("unexpected metadata: %+v", got)
	}
	if got.SMA != 103 {
		t.Errorf("expected SMA 103, got %v", got.SMA)
	}
	if got.VWAP != 103 {
		t.Errorf("expected VWAP 103 with flat volume, got %v", got.VWAP)
	}

	// Exactly period rows is enough.
	boundary, ok := Compute("TCS", closes[:5], volumes[:5], 5)
	if !ok {
		t.Fatal("expected Compute to succeed with exactly period rows")
	}
	if boundary.SMA != 102 {
		t.Errorf("expected SMA 102 at the boundary, got %v", boundary.SMA)
	}

	if _, ok := Compute("TCS", closes[:4], volumes[:4], 5); ok {
		t.Error("expected Compute to fail with insufficient data")
	}
}

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		1.004:   1.0,
		1.006:   1.01,
		100.0:   100.0,
		0.12345: 0.12,
	}
	for in, want := range cases {
		if got := Round2(in); math.Abs(got-want) > 1e-9 {
			t.Errorf("Round2(%v): expected %v, got %v", in, want, got)
		}
	}
}
