package cell_test

import (
	"fmt"

	"github.com/katalvlaran/atomistic/cell"
)

// ExampleMeasure reports the area of a slab cell.
func ExampleMeasure() {
	c := cell.Cell{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}}
	e := cell.Measure(c, cell.PBC{true, true, false})
	fmt.Println(e.Dim, e.Label, e.Value, cell.Validate(c, cell.PBC{true, true, false}) == nil)
	// Output: 2 surface 1 true
}
