package dtree_test

import (
	"fmt"

	"github.com/veltanor/hybnet/dtree"
	"github.com/veltanor/hybnet/vars"
)

// ExampleNew builds a lookup table over two binary switches and prints its
// canonical rendering: outer level on the lower key id, states ascending.
func ExampleNew() {
	mode := vars.DiscreteKey{Key: 1, Card: 2}
	load := vars.DiscreteKey{Key: 2, Card: 2}

	// Cost per (mode, load): mode-major enumeration.
	tree, err := dtree.New(
		vars.DiscreteKeys{mode, load},
		[]int{2, 4, 4, 8},
		func(a, b int) bool { return a == b },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(tree)
	// Output:
	// (1)
	//   0: (2)
	//     0: 2
	//     1: 4
	//   1: (2)
	//     0: 4
	//     1: 8
}

// ExampleNew_compression shows a key vanishing from the structure when no
// leaf depends on it: the cost table below ignores the load switch.
func ExampleNew_compression() {
	mode := vars.DiscreteKey{Key: 1, Card: 2}
	load := vars.DiscreteKey{Key: 2, Card: 2}

	tree, err := dtree.New(
		vars.DiscreteKeys{mode, load},
		[]int{7, 7, 9, 9},
		func(a, b int) bool { return a == b },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("keys:", len(tree.Keys()))
	fmt.Print(tree)
	// Output:
	// keys: 1
	// (1)
	//   0: 7
	//   1: 9
}

// ExampleTree_Apply combines a base cost depending on one switch with a
// surcharge depending on another: the result branches on both.
func ExampleTree_Apply() {
	mode := vars.DiscreteKey{Key: 1, Card: 2}
	tier := vars.DiscreteKey{Key: 2, Card: 2}
	eq := func(a, b int) bool { return a == b }

	base, _ := dtree.New(vars.DiscreteKeys{mode}, []int{1, 2}, eq)
	surcharge, _ := dtree.New(vars.DiscreteKeys{tier}, []int{10, 20}, eq)

	total, err := base.Apply(surcharge, func(a, b int) int { return a + b })
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(total)
	// Output:
	// (1)
	//   0: (2)
	//     0: 11
	//     1: 21
	//   1: (2)
	//     0: 12
	//     1: 22
}

// ExampleTree_Choose fixes one switch and keeps the function of the rest.
func ExampleTree_Choose() {
	mode := vars.DiscreteKey{Key: 1, Card: 2}
	tier := vars.DiscreteKey{Key: 2, Card: 2}

	tree, _ := dtree.New(
		vars.DiscreteKeys{mode, tier},
		[]int{11, 21, 12, 22},
		func(a, b int) bool { return a == b },
	)

	fixed, err := tree.Choose(mode.Key, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(fixed)
	// Output:
	// (2)
	//   0: 12
	//   1: 22
}

// ExampleMap rewrites every leaf through a function; when leaves coincide
// afterwards the tree collapses.
func ExampleMap() {
	mode := vars.DiscreteKey{Key: 1, Card: 2}
	eq := func(a, b int) bool { return a == b }

	tree, _ := dtree.New(vars.DiscreteKeys{mode}, []int{3, 5}, eq)

	odd, err := dtree.Map(tree, func(v int) int { return v % 2 }, eq)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("constant:", odd.IsLeaf())
	fmt.Print(odd)
	// Output:
	// constant: true
	// 1
}
