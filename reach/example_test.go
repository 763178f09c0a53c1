package reach_test

import (
	"fmt"

	"github.com/katalvlaran/pathlab/core"
	"github.com/katalvlaran/pathlab/reach"
)

// ExampleReachableFrom shows that only A's component is reached.
func ExampleReachableFrom() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("C", "D", 1)

	set, err := reach.ReachableFrom(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(set.Sorted())
	// Output: [A B]
}
