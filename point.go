package aggpath

// Point represents a 2D point with float64 coordinates. It is the
// coordinate type every PathElement and Vertex carries through the
// pipeline.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}
