// Package tsplib_test — runnable documentation examples.
package tsplib_test

import (
	"fmt"

	"github.com/katalvlaran/tsplib"
)

// ExampleParseString parses a minimal Euclidean instance and reads the
// headline fields plus one computed distance.
func ExampleParseString() {
	const text = `
NAME: tri3
TYPE: TSP
COMMENT: a 3-4-5 triangle
DIMENSION: 3
EDGE_WEIGHT_TYPE: EUC_2D
NODE_COORD_SECTION
1 0 0
2 3 4
3 6 0
EOF
`
	p, err := tsplib.ParseString(text)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Println(p.Name(), p.Kind(), p.Dimension())
	fmt.Printf("weight(1,2)=%.0f\n", p.Weight(1, 2))

	// Output:
	// tri3 TSP 3
	// weight(1,2)=5
}

// ExampleProblem_Weight decodes an explicit upper-triangle matrix and reads
// it back symmetrically. Explicit lookups use 0-based storage indices.
func ExampleProblem_Weight() {
	const text = `
NAME: tri
TYPE: TSP
DIMENSION: 3
EDGE_WEIGHT_TYPE: EXPLICIT
EDGE_WEIGHT_FORMAT: UPPER_ROW
EDGE_WEIGHT_SECTION
12 17
25
EOF
`
	p, err := tsplib.ParseString(text)
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Println(p.Weight(0, 1), p.Weight(1, 0), p.Weight(0, 2), p.Weight(1, 2), p.Weight(1, 1))

	// Output:
	// 12 12 17 25 0
}
