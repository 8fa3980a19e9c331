package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvrank/core"
)

// ExampleGraph demonstrates registration, fail-fast edges and ordered queries.
func ExampleGraph() {
	// 1) Register vertices first; indices follow first-seen order.
	g := core.NewGraph()
	for _, id := range []string{"home", "about", "blog"} {
		g.AddVertex(id)
	}

	// 2) Wire edges; parallel edges are kept.
	_ = g.AddEdge("home", "about")
	_ = g.AddEdge("home", "blog")
	_ = g.AddEdge("home", "blog")

	// 3) Unknown endpoints are rejected.
	err := g.AddEdge("home", "contact")
	fmt.Println("unknown:", errors.Is(err, core.ErrUnknownNode))

	// 4) Inspect.
	deg, _ := g.OutDegree(0)
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("out-degree(home):", deg)
	fmt.Println("dangling:", g.Stats().DanglingCount)

	// Output:
	// unknown: true
	// vertices: [home about blog]
	// out-degree(home): 3
	// dangling: 2
}
