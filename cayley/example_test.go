package cayley_test

import (
	"fmt"

	"github.com/katalvlaran/semigroup/cayley"
)

// ExampleGraph_SCCs condenses the right Cayley graph of the monoid generated
// by Transformation([0,0]) and Transformation([1,0]).
func ExampleGraph_SCCs() {
	g, err := cayley.New([][]int{{0, 2}, {0, 3}, {0, 0}, {0, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.SCCs())
	// Output:
	// [[0 2] [1 3]]
}

// ExampleGraph_Walk follows a generator word through the graph: words are
// paths, and equal endpoints mean equal elements.
func ExampleGraph_Walk() {
	g, err := cayley.New([][]int{{0, 2}, {0, 3}, {0, 0}, {0, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Both words lead from node 1 to node 1, so they denote one element.
	a, _ := g.Walk(1, []int{1, 1})
	b, _ := g.Walk(1, []int{1, 1, 1, 1})
	fmt.Println(a, b)
	// Output:
	// 1 1
}

// ExampleGraph_Edges lists the labeled edges of a two-node graph.
func ExampleGraph_Edges() {
	g, err := cayley.New([][]int{{1, 1}, {0, 1}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d -%d-> %d\n", e.From, e.Label, e.To)
	}
	// Output:
	// 0 -0-> 1
	// 0 -1-> 1
	// 1 -0-> 0
	// 1 -1-> 1
}
