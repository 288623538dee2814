package cube3d

import "testing"

func TestCubeEdgesTopology(t *testing.T) {
	var degree [len(CubeVertices)]int
	seen := map[[2]int]bool{}
	for _, e := range CubeEdges {
		a, b := e[0], e[1]
		if a == b {
			t.Fatalf("degenerate edge %v", e)
		}
		key := [2]int{min(a, b), max(a, b)}
		if seen[key] {
			t.Fatalf("duplicate edge %v", e)
		}
		seen[key] = true
		degree[a]++
		degree[b]++
		if l := CubeVertices[a].Sub(CubeVertices[b]).Len(); l != 2 {
			t.Fatalf("edge %v has length %g", e, l)
		}
	}
	for i, d := range degree {
		if d != 3 {
			t.Fatalf("vertex %d has degree %d", i, d)
		}
	}
}

func TestCubeRadiusBoundsVertices(t *testing.T) {
	for _, v := range CubeVertices {
		if v.Len() > CubeRadius+1e-12 {
			t.Fatalf("%v outside radius %g", v, CubeRadius)
		}
	}
}
