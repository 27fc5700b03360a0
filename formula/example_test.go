package formula_test

import (
	"fmt"

	"github.com/katalvlaran/atomistic/formula"
)

// ExampleFormat groups a perovskite supercell with one defect.
func ExampleFormat() {
	symbols := []string{"Ba", "Ti", "O", "O", "O", "Ba", "Ti", "O", "O", "O", "Ba", "Ti", "Ti", "O", "O", "O"}
	for _, m := range []formula.Mode{formula.Hill, formula.Reduce, formula.Group} {
		s, _ := formula.Format(symbols, m, "")
		fmt.Println(m, s)
	}
	// Output:
	// hill Ba3O9Ti4
	// reduce BaTiO3BaTiO3BaTi2O3
	// group (BaTiO3)2BaTi2O3
}
