package atarplot

import "fmt"

// PlaneRangeError reports a hit identifier whose decoded plane number falls
// outside the detector. Such a hit cannot be accumulated into the per-plane
// energy totals without corrupting them.
type PlaneRangeError struct {
	Hit       int32
	Plane     int32
	NumPlanes int
}

func (e *PlaneRangeError) Error() string {
	return fmt.Sprintf("hit id %d decodes to plane %d, outside [0, %d)", e.Hit, e.Plane, e.NumPlanes)
}

// ShapeError reports parallel per-hit arrays of unequal length in a raw
// event bank.
type ShapeError struct {
	Bank string
	Lens []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s bank arrays disagree in length: %v", e.Bank, e.Lens)
}
