package atarplot

import "fmt"

// HitBank is one event row of the ATAR tree: parallel per-hit arrays plus
// the simulation's decay classification flag.
type HitBank struct {
	PixelHits []int32
	PixelTime []float64
	PixelEdep []float64
	PixelPDG  []int32
	PionDAR   bool
}

// CaloBank is one event row of the calorimeter tree.
type CaloBank struct {
	Crystal []int32
	Edep    []float64
}

// DataSource provides row-indexed access to the ATAR and calorimeter event
// streams of a simulation output file.
type DataSource interface {
	NumEvents() int64
	ATARHits(i int64) (HitBank, error)
	CaloHits(i int64) (CaloBank, error)
}

// CrystalLookup resolves a calorimeter crystal identifier to its position.
type CrystalLookup interface {
	Coords(id int32) (RThetaPhi, bool)
}

// DecayFilter selects events by decay classification. The numeric values
// follow the simulation convention (0 = in flight, 1 = at rest, 2 = all).
type DecayFilter int

const (
	DecaysInFlight DecayFilter = iota
	DecaysAtRest
	AllDecays
)

func (f DecayFilter) String() string {
	switch f {
	case DecaysInFlight:
		return "dif"
	case DecaysAtRest:
		return "dar"
	default:
		return "all"
	}
}

func ParseDecayFilter(s string) (DecayFilter, error) {
	switch s {
	case "dif":
		return DecaysInFlight, nil
	case "dar":
		return DecaysAtRest, nil
	case "all":
		return AllDecays, nil
	}
	return AllDecays, fmt.Errorf("unknown decay filter %q (want dif, dar, or all)", s)
}

func (f DecayFilter) match(h HitBank) bool {
	var dep float64
	for _, e := range h.PixelEdep {
		dep += e
	}
	if dep <= 0 {
		return false
	}
	switch f {
	case DecaysInFlight:
		return !h.PionDAR
	case DecaysAtRest:
		return h.PionDAR
	}
	return true
}

// SelectEvents returns up to n event indices matching the filter, in row
// order. Events with no energy deposited in the ATAR never match. Finding
// fewer than n matches is not an error.
func SelectEvents(src DataSource, filter DecayFilter, n int) ([]int64, error) {
	var events []int64
	for i := int64(0); i < src.NumEvents() && len(events) < n; i++ {
		hits, err := src.ATARHits(i)
		if err != nil {
			return nil, err
		}
		if filter.match(hits) {
			events = append(events, i)
		}
	}
	return events, nil
}

// MemSource is an in-memory DataSource used in tests and for synthetic
// events. Calo may be shorter than ATAR; missing rows read as empty banks.
type MemSource struct {
	ATAR []HitBank
	Calo []CaloBank
}

func (s *MemSource) NumEvents() int64 { return int64(len(s.ATAR)) }

func (s *MemSource) ATARHits(i int64) (HitBank, error) {
	if i < 0 || i >= int64(len(s.ATAR)) {
		return HitBank{}, fmt.Errorf("event %d out of range [0, %d)", i, len(s.ATAR))
	}
	return s.ATAR[i], nil
}

func (s *MemSource) CaloHits(i int64) (CaloBank, error) {
	if i < 0 || i >= int64(len(s.ATAR)) {
		return CaloBank{}, fmt.Errorf("event %d out of range [0, %d)", i, len(s.ATAR))
	}
	if i >= int64(len(s.Calo)) {
		return CaloBank{}, nil
	}
	return s.Calo[i], nil
}
