package atarplot

import (
	"strings"
	"testing"
)

func TestReadCrystalTable(t *testing.T) {
	in := `id,r,theta,phi
# central crystals
12,30.0,1.5708,0.0
13,30.0,1.5708,0.1963
`
	table, err := ReadCrystalTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadCrystalTable failed: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}

	c, ok := table.Coords(13)
	if !ok {
		t.Fatal("Coords(13) not found")
	}
	if c.R != 30.0 || c.Theta != 1.5708 || c.Phi != 0.1963 {
		t.Errorf("Coords(13) = %+v", c)
	}

	if _, ok := table.Coords(999); ok {
		t.Error("Coords(999) found, want miss")
	}
}

func TestReadCrystalTableBadRecord(t *testing.T) {
	in := "12,30.0,1.5708,0.0\n13,x,1.5708,0.1\n"
	if _, err := ReadCrystalTable(strings.NewReader(in)); err == nil {
		t.Error("bad coordinate did not fail")
	}
}
