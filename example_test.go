package spade_test

import (
	"fmt"

	"github.com/adamlesinski/spade"
)

// Example demonstrates the derived operation layer on the array
// bindings.
func Example() {
	a := spade.Vec3[int]{1, 2, 3}
	b := spade.Vec3[int]{4, 5, 6}

	fmt.Println(spade.Add[int](a, b))
	fmt.Println(spade.Dot[int](a, b))
	fmt.Println(spade.Length2[int](a))
	// Output:
	// [5 7 9]
	// 32
	// 14
}

// ExampleCross demonstrates the 3D-only cross product.
func ExampleCross() {
	x := spade.Vec3[int]{1, 0, 0}
	y := spade.Vec3[int]{0, 1, 0}

	fmt.Println(spade.Cross[int](x, y))
	// Output: [0 0 1]
}

// ExampleMap demonstrates mapping between vector types of equal
// dimension but different scalar type.
func ExampleMap() {
	v := spade.Vec3[int]{1, 2, 3}

	halved := spade.Map[float64, spade.Vec3[float64]](v, func(x int) float64 {
		return float64(x) / 2
	})

	fmt.Println(halved)
	// Output: [0.5 1 1.5]
}

// ExampleComponentWise demonstrates the general binary combinator all
// arithmetic operations derive from.
func ExampleComponentWise() {
	a := spade.Vec2[int]{3, 10}
	b := spade.Vec2[int]{7, 4}

	fmt.Println(spade.ComponentWise(a, b, func(l, r int) int {
		if l > r {
			return l
		}
		return r
	}))
	// Output: [7 10]
}

// ExampleFold demonstrates a left-to-right reduction over components.
func ExampleFold() {
	v := spade.Vec4[int]{1, 2, 3, 4}

	product := spade.Fold(v, 1, func(acc, s int) int { return acc * s })

	fmt.Println(product)
	// Output: 24
}
