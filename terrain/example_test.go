package terrain_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvsearch/terrain"
)

// ExampleLandscape_Traverse climbs the sample map and then finds the best
// lowland starting point.
func ExampleLandscape_Traverse() {
	land, err := terrain.Parse(strings.NewReader(sample))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	up, _ := land.Traverse()
	down, _ := land.TraverseBackwards()
	fmt.Println("steps from S:", len(up))
	fmt.Println("steps from best start:", len(down))
	// Output:
	// steps from S: 31
	// steps from best start: 29
}
