package atarplot

import (
	"fmt"
	"strconv"
)

// IntArrayFlags collects repeated integer flag values, e.g.
// -event 3 -event 17.
type IntArrayFlags struct {
	Array   []int64
	beenSet bool
}

func (f *IntArrayFlags) Set(valueStr string) error {
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return err
	}

	if !f.beenSet {
		f.beenSet = true
		f.Array = nil
	}

	f.Array = append(f.Array, value)
	return nil
}

func (f *IntArrayFlags) String() string {
	return fmt.Sprint(f.Array)
}
