package atarplot

import "testing"

// hitID builds an encoded identifier for strip s of plane p under the
// default convention (1-indexed per strip).
func hitID(p, s int32) int32 {
	return DefaultPlaneOffset + DefaultStripsPerPlane*p + s + 1
}

func TestDecode(t *testing.T) {
	tests := []struct {
		hit   int32
		plane int32
		strip int32
		axis  Axis
	}{
		{hitID(0, 0), 0, 0, AxisX},
		{hitID(0, 35), 0, 35, AxisX},
		{hitID(1, 60), 1, 60, AxisY},
		{hitID(7, 99), 7, 99, AxisY},
		{hitID(49, 0), 49, 0, AxisY},
	}
	for _, tt := range tests {
		plane, strip, axis := DefaultDecoder.Decode(tt.hit)
		if plane != tt.plane || strip != tt.strip || axis != tt.axis {
			t.Errorf("Decode(%d) = (%d, %d, %v), want (%d, %d, %v)",
				tt.hit, plane, strip, axis, tt.plane, tt.strip, tt.axis)
		}
	}
}

// A value of exactly offset+strips is the last strip of plane 0, not strip
// 0 of plane 1. The -1 wraparound correction makes that so.
func TestDecodePlaneBoundary(t *testing.T) {
	plane, strip, axis := DefaultDecoder.Decode(DefaultPlaneOffset + DefaultStripsPerPlane)
	if plane != 0 || strip != 99 || axis != AxisX {
		t.Errorf("Decode(boundary) = (%d, %d, %v), want (0, 99, x)", plane, strip, axis)
	}
}

func TestDecodeAxisAlternation(t *testing.T) {
	for p := int32(0); p < DefaultNumPlanes; p++ {
		_, _, axis := DefaultDecoder.Decode(hitID(p, 10))
		want := AxisX
		if p%2 == 1 {
			want = AxisY
		}
		if axis != want {
			t.Errorf("plane %d: axis = %v, want %v", p, axis, want)
		}
	}
}

func TestDecodeDeterministic(t *testing.T) {
	id := hitID(13, 42)
	p1, s1, a1 := DefaultDecoder.Decode(id)
	p2, s2, a2 := DefaultDecoder.Decode(id)
	if p1 != p2 || s1 != s2 || a1 != a2 {
		t.Errorf("Decode(%d) not deterministic: (%d,%d,%v) vs (%d,%d,%v)", id, p1, s1, a1, p2, s2, a2)
	}
}

func TestDecodeCustomOffset(t *testing.T) {
	dec := Decoder{Offset: 10_000, StripsPerPlane: 100}
	plane, strip, axis := dec.Decode(10_000 + 100*3 + 25 + 1)
	if plane != 3 || strip != 25 || axis != AxisY {
		t.Errorf("Decode = (%d, %d, %v), want (3, 25, y)", plane, strip, axis)
	}
}
