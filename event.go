package atarplot

import "gonum.org/v1/gonum/floats"

// GapThreshold is the minimum delta between consecutive hit times, in ns,
// taken to mark the start of a new decay burst.
const GapThreshold = 1.0

// Coord is an optional in-plane strip coordinate. A hit on an x-measuring
// plane carries a valid x Coord and an invalid y Coord, and vice versa, so
// the per-hit series stay index-aligned with the timestamps.
type Coord struct {
	Pixel float64
	Valid bool
}

// RThetaPhi is a calorimeter crystal position in spherical coordinates.
type RThetaPhi struct {
	R, Theta, Phi float64
}

// Event is the reconstructed record of one simulated event. The TData,
// XData, YData, ZData, EData and PixelPDGs series are parallel, one entry
// per raw hit in arrival order. CrystalIDs, CaloEdep and RThetaPhis are
// parallel on the calorimeter side; an RThetaPhis entry is nil when the
// crystal id had no geometry entry.
//
// An Event is populated in a single reconstruction pass and not mutated
// afterwards.
type Event struct {
	TData     []float64
	XData     []Coord
	YData     []Coord
	ZData     []int32
	EData     []float64
	EPerPlane []float64
	MaxE      float64
	GapTimes  []float64
	PixelPDGs []int32

	CrystalIDs []int32
	CaloEdep   []float64
	RThetaPhis []*RThetaPhi
}

func (ev *Event) NumHits() int { return len(ev.TData) }

// HasCaloData reports whether the event carries usable calorimeter records.
// Exactly one record is the simulation's single-volume sentinel and counts
// as no calorimeter data.
func (ev *Event) HasCaloData() bool { return len(ev.CrystalIDs) > 1 }

// Reconstructor builds Event records from raw event banks.
type Reconstructor struct {
	Dec       Decoder
	NumPlanes int
}

func NewReconstructor() Reconstructor {
	return Reconstructor{Dec: DefaultDecoder, NumPlanes: DefaultNumPlanes}
}

// Reconstruct decodes one event's raw banks into an Event record in a
// single pass over the hits.
//
// The previous-timestamp cursor for gap detection starts at 0, not at the
// first hit's own time. An event whose first hit lands after GapThreshold
// therefore records a leading pseudo-gap equal to its absolute start time.
// That matches the upstream convention and is kept deliberately.
//
// A nil lookup leaves every RThetaPhis entry unresolved.
func (r Reconstructor) Reconstruct(hits HitBank, calo CaloBank, lookup CrystalLookup) (*Event, error) {
	n := len(hits.PixelHits)
	if len(hits.PixelTime) != n || len(hits.PixelEdep) != n || len(hits.PixelPDG) != n {
		return nil, &ShapeError{
			Bank: "atar",
			Lens: []int{n, len(hits.PixelTime), len(hits.PixelEdep), len(hits.PixelPDG)},
		}
	}
	if len(calo.Crystal) != len(calo.Edep) {
		return nil, &ShapeError{
			Bank: "calorimeter",
			Lens: []int{len(calo.Crystal), len(calo.Edep)},
		}
	}

	ev := &Event{
		TData:     make([]float64, 0, n),
		XData:     make([]Coord, 0, n),
		YData:     make([]Coord, 0, n),
		ZData:     make([]int32, 0, n),
		EData:     make([]float64, 0, n),
		EPerPlane: make([]float64, r.NumPlanes),
	}

	curTime := 0.0
	for i := 0; i < n; i++ {
		plane, strip, axis := r.Dec.Decode(hits.PixelHits[i])
		if plane < 0 || int(plane) >= r.NumPlanes {
			return nil, &PlaneRangeError{Hit: hits.PixelHits[i], Plane: plane, NumPlanes: r.NumPlanes}
		}

		lastTime := curTime
		curTime = hits.PixelTime[i]
		ev.TData = append(ev.TData, curTime)

		if axis == AxisX {
			ev.XData = append(ev.XData, Coord{Pixel: float64(strip), Valid: true})
			ev.YData = append(ev.YData, Coord{})
		} else {
			ev.YData = append(ev.YData, Coord{Pixel: float64(strip), Valid: true})
			ev.XData = append(ev.XData, Coord{})
		}
		ev.ZData = append(ev.ZData, plane)
		ev.EData = append(ev.EData, hits.PixelEdep[i])
		ev.EPerPlane[plane] += hits.PixelEdep[i]

		if curTime-lastTime > GapThreshold {
			ev.GapTimes = append(ev.GapTimes, curTime-lastTime)
		}
	}

	ev.PixelPDGs = append(ev.PixelPDGs, hits.PixelPDG...)
	if len(ev.EPerPlane) > 0 {
		ev.MaxE = floats.Max(ev.EPerPlane)
	}

	ev.CrystalIDs = append(ev.CrystalIDs, calo.Crystal...)
	ev.CaloEdep = append(ev.CaloEdep, calo.Edep...)
	ev.RThetaPhis = make([]*RThetaPhi, 0, len(calo.Crystal))
	for _, id := range calo.Crystal {
		if lookup != nil {
			if c, ok := lookup.Coords(id); ok {
				ev.RThetaPhis = append(ev.RThetaPhis, &c)
				continue
			}
		}
		ev.RThetaPhis = append(ev.RThetaPhis, nil)
	}

	return ev, nil
}
