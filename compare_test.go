package atarplot

import (
	"math"
	"testing"
)

func TestGroupStats(t *testing.T) {
	mean, median, stddev := groupStats([]float64{1, 2, 3})
	if mean != 2 {
		t.Errorf("mean = %v, want 2", mean)
	}
	if median != 2 {
		t.Errorf("median = %v, want 2", median)
	}
	// Population standard deviation, as in the original aggregates.
	want := math.Sqrt(2.0 / 3.0)
	if math.Abs(stddev-want) > 1e-12 {
		t.Errorf("stddev = %v, want %v", stddev, want)
	}
}

func TestGroupStatsConstant(t *testing.T) {
	mean, median, stddev := groupStats([]float64{3, 3, 3, 3})
	if mean != 3 || median != 3 || stddev != 0 {
		t.Errorf("stats = (%v, %v, %v), want (3, 3, 0)", mean, median, stddev)
	}
}

func TestBinRange(t *testing.T) {
	lo, hi := binRange([]float64{4, 1, 7, 2})
	if lo != 1 || hi != 7 {
		t.Errorf("binRange = (%v, %v), want (1, 7)", lo, hi)
	}

	// A degenerate group still yields a usable range.
	lo, hi = binRange([]float64{5, 5})
	if lo != 5 || hi != 6 {
		t.Errorf("binRange(degenerate) = (%v, %v), want (5, 6)", lo, hi)
	}
}

func TestCompareEmptyGroup(t *testing.T) {
	if err := CompareMaxEnergies(nil, []float64{1}, 10, "unused.png"); err == nil {
		t.Error("empty DIF group did not fail")
	}
	if err := CompareGapTimes([]float64{1}, nil, 10, "unused.png"); err == nil {
		t.Error("empty DAR group did not fail")
	}
}
