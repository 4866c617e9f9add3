package atarplot

import (
	"reflect"
	"testing"
)

func selectorSource() *MemSource {
	row := func(dar bool, edep float64) HitBank {
		return HitBank{
			PixelHits: []int32{hitID(0, 1)},
			PixelTime: []float64{0.1},
			PixelEdep: []float64{edep},
			PixelPDG:  []int32{211},
			PionDAR:   dar,
		}
	}
	return &MemSource{
		ATAR: []HitBank{
			row(true, 1.0),  // 0: DAR
			row(false, 1.0), // 1: DIF
			row(true, 1.0),  // 2: DAR
			row(false, 1.0), // 3: DIF
			row(true, 1.0),  // 4: DAR
			row(true, 0.0),  // 5: DAR flag but nothing deposited
		},
	}
}

func TestSelectEvents(t *testing.T) {
	src := selectorSource()

	tests := []struct {
		filter DecayFilter
		n      int
		want   []int64
	}{
		{DecaysAtRest, 2, []int64{0, 2}},
		{DecaysAtRest, 10, []int64{0, 2, 4}},
		{DecaysInFlight, 10, []int64{1, 3}},
		{AllDecays, 10, []int64{0, 1, 2, 3, 4}},
		{AllDecays, 0, nil},
	}
	for _, tt := range tests {
		got, err := SelectEvents(src, tt.filter, tt.n)
		if err != nil {
			t.Fatalf("SelectEvents(%v, %d) failed: %v", tt.filter, tt.n, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SelectEvents(%v, %d) = %v, want %v", tt.filter, tt.n, got, tt.want)
		}
	}
}

func TestParseDecayFilter(t *testing.T) {
	for s, want := range map[string]DecayFilter{"dif": DecaysInFlight, "dar": DecaysAtRest, "all": AllDecays} {
		got, err := ParseDecayFilter(s)
		if err != nil || got != want {
			t.Errorf("ParseDecayFilter(%q) = (%v, %v), want (%v, nil)", s, got, err, want)
		}
	}
	if _, err := ParseDecayFilter("bogus"); err == nil {
		t.Error("ParseDecayFilter(bogus) did not fail")
	}
}

func TestMemSourceBounds(t *testing.T) {
	src := &MemSource{ATAR: []HitBank{{}}}
	if _, err := src.ATARHits(1); err == nil {
		t.Error("ATARHits(1) on 1-row source did not fail")
	}
	if _, err := src.CaloHits(-1); err == nil {
		t.Error("CaloHits(-1) did not fail")
	}
	// Rows without a calorimeter counterpart read as empty banks.
	bank, err := src.CaloHits(0)
	if err != nil {
		t.Fatalf("CaloHits(0) failed: %v", err)
	}
	if len(bank.Crystal) != 0 {
		t.Errorf("CaloHits(0) = %v, want empty bank", bank)
	}
}
