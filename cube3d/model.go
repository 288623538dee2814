package cube3d

import "math"

// CubeVertices is the model in local space, corners at ±1.
var CubeVertices = [8]Vec3{
	{-1, 1, 1},
	{1, 1, 1},
	{1, 1, -1},
	{-1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{1, -1, -1},
	{-1, -1, -1},
}

// CubeEdges indexes CubeVertices: top ring, bottom ring, then verticals.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// CubeRadius is the largest distance of any vertex from the origin. Any
// rotation keeps |z| at or below it, so a camera distance above CubeRadius
// keeps every projected z positive.
var CubeRadius = math.Sqrt(3)
