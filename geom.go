package atarplot

// The simulated ATAR is a stack of strip-sensor planes whose integer hit
// identifiers start at a large offset by convention. Strips alternate
// orientation plane by plane: plane 0 measures x, plane 1 measures y, and
// so on.
const (
	DefaultPlaneOffset    = 100_000
	DefaultStripsPerPlane = 100
	DefaultNumPlanes      = 50
)

// Axis is the transverse coordinate a plane's strips measure.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// Decoder holds the hit-identifier encoding convention of a simulation
// configuration.
type Decoder struct {
	Offset         int32
	StripsPerPlane int32
}

// DefaultDecoder matches the supplied simulation data (planes numbered from
// 100000, 100 strips per plane).
var DefaultDecoder = Decoder{Offset: DefaultPlaneOffset, StripsPerPlane: DefaultStripsPerPlane}

// Decode maps an encoded hit identifier to its plane number, strip index
// within the plane, and the axis that plane measures.
//
// Encoded values are 1-indexed per strip, so a value of exactly
// offset+strips must decode to the last strip of the plane below rather
// than strip 0 of the next plane. Subtracting 1 before the floor and the
// modulo reproduces that wraparound; dropping it shifts boundary hits by a
// whole plane.
//
// Decode performs no bounds validation. A malformed identifier yields a
// plane outside [0, NumPlanes); rejecting it is the caller's job.
func (d Decoder) Decode(hit int32) (plane, strip int32, axis Axis) {
	n := hit - 1 - d.Offset
	plane = n / d.StripsPerPlane
	if n < 0 && n%d.StripsPerPlane != 0 {
		plane-- // floor, not truncate, for malformed ids below the offset
	}
	strip = (hit - 1) % d.StripsPerPlane
	if plane%2 == 0 {
		axis = AxisX
	} else {
		axis = AxisY
	}
	return plane, strip, axis
}
