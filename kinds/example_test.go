package kinds_test

import (
	"fmt"

	"github.com/katalvlaran/atomistic/kinds"
	"github.com/katalvlaran/atomistic/site"
)

// ExampleResolve groups two equally charged Li sites and a Cu site.
func ExampleResolve() {
	sites := kinds.Sites{
		site.MustNew(site.Properties{Symbol: "Li", Position: [3]float64{0, 0, 0}, Charge: site.Float(1)}),
		site.MustNew(site.Properties{Symbol: "Li", Position: [3]float64{1, 0, 0}, Charge: site.Float(1)}),
		site.MustNew(site.Properties{Symbol: "Cu", Position: [3]float64{2, 0, 0}}),
	}
	a, err := kinds.Resolve(sites, kinds.WithThreshold(site.Charge, 0.1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Kinds, a.Index, a.Count)
	// Output: [Li0 Li0 Cu0] [0 0 1] 2
}

// ExampleWithTags shows caller tags returned unchanged.
func ExampleWithTags() {
	sites := kinds.Sites{
		site.MustNew(site.Properties{Symbol: "Fe", MagneticMoment: site.Float(2)}),
		site.MustNew(site.Properties{Symbol: "Fe", Position: [3]float64{1, 1, 1}, MagneticMoment: site.Float(-2)}),
	}
	a, err := kinds.Resolve(sites, kinds.WithTags([]string{"Fe_up", "Fe_down"}))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(a.Kinds)
	// Output: [Fe_up Fe_down]
}
