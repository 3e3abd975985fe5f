package aggpath

import "math"

// segmenter subdivides long LINE_TO edges into pieces of length at most
// one pixel, so that a sinusoidal wiggle sampled from it looks smooth
// instead of faceted. It is Sketch's sole upstream when sketching is
// active; every other stage sees unsubdivided lines.
type segmenter struct {
	source VertexSource

	lastX, lastY float64

	pending    []Vertex
	pendingPos int
}

func newSegmenter(source VertexSource) *segmenter {
	return &segmenter{source: source}
}

func (g *segmenter) Rewind(pathID int) {
	g.pending = g.pending[:0]
	g.pendingPos = 0
	g.source.Rewind(pathID)
}

func (g *segmenter) Next() Vertex {
	if g.pendingPos < len(g.pending) {
		v := g.pending[g.pendingPos]
		g.pendingPos++
		return v
	}

	v := g.source.Next()
	switch v.Cmd {
	case CmdMoveTo:
		g.lastX, g.lastY = v.X, v.Y
		return v
	case CmdLineTo:
		dx := v.X - g.lastX
		dy := v.Y - g.lastY
		dist := math.Hypot(dx, dy)
		n := int(math.Ceil(dist))
		if n <= 1 {
			g.lastX, g.lastY = v.X, v.Y
			return v
		}
		g.pending = g.pending[:0]
		for i := 1; i <= n; i++ {
			t := float64(i) / float64(n)
			g.pending = append(g.pending, Vertex{Cmd: CmdLineTo, X: g.lastX + dx*t, Y: g.lastY + dy*t})
		}
		g.lastX, g.lastY = v.X, v.Y
		g.pendingPos = 1
		return g.pending[0]
	default:
		return v
	}
}
