package atarplot

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CrystalTable maps calorimeter crystal identifiers to their positions.
// It implements CrystalLookup; a missing id resolves to (zero, false).
type CrystalTable map[int32]RThetaPhi

func (t CrystalTable) Coords(id int32) (RThetaPhi, bool) {
	c, ok := t[id]
	return c, ok
}

// ReadCrystalTable parses id,r,theta,phi records. Lines starting with '#'
// and an optional header line are skipped.
func ReadCrystalTable(r io.Reader) (CrystalTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 4
	cr.Comment = '#'
	cr.TrimLeadingSpace = true

	table := make(CrystalTable)
	line := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		line++

		id, err := strconv.ParseInt(rec[0], 10, 32)
		if err != nil {
			if line == 1 {
				continue // header
			}
			return nil, fmt.Errorf("record %d: bad crystal id %q", line, rec[0])
		}
		var vals [3]float64
		for i, field := range rec[1:] {
			vals[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("record %d: bad coordinate %q", line, field)
			}
		}
		table[int32(id)] = RThetaPhi{R: vals[0], Theta: vals[1], Phi: vals[2]}
	}
	return table, nil
}

func LoadCrystalTable(name string) (CrystalTable, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open crystal table %q: %w", name, err)
	}
	defer f.Close()

	table, err := ReadCrystalTable(f)
	if err != nil {
		return nil, fmt.Errorf("could not parse crystal table %q: %w", name, err)
	}
	return table, nil
}
