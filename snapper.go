package aggpath

import "math"

// Snapper optionally rounds vertex coordinates to pixel centers or
// corners, which keeps thin rectilinear strokes crisp instead of blurred
// across two rows or columns of pixels.
//
// Whether snapping is active is decided once, at construction, by
// inspecting the upstream path under SnapAuto; the decision is then fixed
// for the life of the Snapper.
type Snapper struct {
	source VertexSource
	snap   bool
	offset float64
}

// NewSnapper constructs a Snapper over source.
//
// Under SnapAuto, source is consumed once to inspect its shape and then
// rewound to path id 0 -- a required side effect the containing pipeline
// depends on to leave the upstream positioned at the start.
func NewSnapper(source VertexSource, mode SnapMode, strokeWidth float64) *Snapper {
	snap := false
	switch mode {
	case SnapForce:
		snap = true
	case SnapOff:
		snap = false
	case SnapAuto:
		snap = autoDetectSnap(source)
	}

	offset := 0.0
	if snap && isOddRounded(strokeWidth) {
		offset = 0.5
	}

	Logger().Debug("snapper constructed", "mode", mode, "snap", snap, "offset", offset)

	return &Snapper{source: source, snap: snap, offset: offset}
}

func isOddRounded(w float64) bool {
	return int(math.Floor(w+0.5))%2 != 0
}

// autoDetectSnap inspects source once, under SNAP_AUTO's rule: snap iff
// the path has at most 1024 vertices, contains no curve commands, and
// every LINE_TO segment is strictly horizontal or strictly vertical. An
// empty path does not snap.
func autoDetectSnap(source VertexSource) bool {
	source.Rewind(0)
	defer source.Rewind(0)

	const maxVertices = 1024
	count := 0
	sawVertex := false
	lastX, lastY := 0.0, 0.0
	haveLast := false

	for {
		v := source.Next()
		if v.Cmd == CmdStop {
			break
		}
		count++
		if count > maxVertices {
			return false
		}
		switch v.Cmd {
		case CmdCurve3, CmdCurve4:
			return false
		case CmdMoveTo:
			lastX, lastY = v.X, v.Y
			haveLast = true
			sawVertex = true
		case CmdLineTo:
			if haveLast {
				dx := math.Abs(v.X - lastX)
				dy := math.Abs(v.Y - lastY)
				if dx >= 1e-4 && dy >= 1e-4 {
					return false
				}
			}
			lastX, lastY = v.X, v.Y
			haveLast = true
			sawVertex = true
		}
	}
	return sawVertex
}

// Rewind repositions the upstream source; the snap decision itself,
// fixed at construction, does not change.
func (s *Snapper) Rewind(pathID int) {
	s.source.Rewind(pathID)
}

// Next returns the next token, with vertex-carrying commands snapped if
// snapping is active.
func (s *Snapper) Next() Vertex {
	v := s.source.Next()
	if !s.snap || !v.Cmd.IsVertex() {
		return v
	}
	v.X = math.Floor(v.X+0.5) + s.offset
	v.Y = math.Floor(v.Y+0.5) + s.offset
	return v
}
