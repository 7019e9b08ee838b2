package options_test

import (
	"fmt"

	geom2d "github.com/anvilgeo/geom2d"
	"github.com/anvilgeo/geom2d/options"
)

func ExampleWithEpsilon() {
	p1 := geom2d.NewPoint(1.0, 1.0)
	p2 := geom2d.NewPoint(1.0000001, 1.0000001)
	epsilon := 1e-6

	fmt.Printf(
		"Is point %s equal to point %s without epsilon: %t\n",
		p1, p2, p1.Eq(p2),
	)

	fmt.Printf(
		"Is point %s equal to point %s with an epsilon of %.0e: %t\n",
		p1, p2, epsilon, p1.Eq(p2, options.WithEpsilon(epsilon)),
	)

	// Output:
	// Is point Point[(1, 1)] equal to point Point[(1.0000001, 1.0000001)] without epsilon: false
	// Is point Point[(1, 1)] equal to point Point[(1.0000001, 1.0000001)] with an epsilon of 1e-06: true
}
