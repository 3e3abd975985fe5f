package aggpath

import "math"

// NanRemover filters vertices with non-finite coordinates out of a vertex
// stream, restructuring subpaths as well as it can so that every stage
// downstream of it may assume finite coordinates.
//
// It runs one of two algorithms, chosen at construction:
//
//   - Fast mode (hasCodes == false): the path is known to contain only
//     straight lines, so a broken run can simply be resumed with a
//     MOVE_TO in place of the next LINE_TO.
//   - Slow mode (hasCodes == true): the path may contain curves or
//     subpath closes, so each primary command and its control points
//     must be treated as one atomic unit: if any vertex in the unit is
//     non-finite, the whole unit is dropped.
type NanRemover struct {
	source     VertexSource
	removeNaNs bool
	hasCodes   bool

	queue vertexQueue

	// validSegment becomes true once a MOVE_TO has been emitted for the
	// current subpath; a CLOSE before that point is meaningless and is
	// dropped rather than emitted.
	validSegment bool

	// lastSegmentOK records whether the most recently consumed unit was
	// entirely finite. CLOSE consults it to decide whether the subpath's
	// synthesized closing LINE_TO can be emitted.
	lastSegmentOK bool

	// wasBroken is set the first time a unit is dropped in this subpath
	// and, faithfully to the reference implementation, is never cleared
	// by a later successful recovery -- only a fresh MOVE_TO resets it.
	// A later CLOSE therefore keeps asking "did this subpath ever break?"
	// rather than "is it broken right now?".
	wasBroken bool

	initX, initY float64
}

// NewNanRemover constructs a NanRemover over source.
//
// hasCodes must be true whenever the path may contain curve segments or
// closed loops; when unsure, pass true, which only costs a slightly
// slower path.
func NewNanRemover(source VertexSource, removeNaNs, hasCodes bool) *NanRemover {
	return &NanRemover{
		source:     source,
		removeNaNs: removeNaNs,
		hasCodes:   hasCodes,
		queue:      newVertexQueue(4),
		initX:      math.NaN(),
		initY:      math.NaN(),
	}
}

// Rewind clears per-path state and repositions the upstream source.
func (n *NanRemover) Rewind(pathID int) {
	n.queue.clear()
	n.validSegment = false
	n.wasBroken = false
	n.source.Rewind(pathID)
}

// Next returns the next finite-coordinate token.
func (n *NanRemover) Next() Vertex {
	if !n.removeNaNs {
		return n.source.Next()
	}
	if n.hasCodes {
		return n.nextSlow()
	}
	return n.nextFast()
}

func isFiniteXY(x, y float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && !math.IsNaN(y) && !math.IsInf(y, 0)
}

func isFiniteVertex(v Vertex) bool {
	return isFiniteXY(v.X, v.Y)
}

// nextFast implements the straight-line-only algorithm: skip non-finite
// vertices, and when a finite one is found after a skip, re-emit it as a
// MOVE_TO so the subpath resumes cleanly.
func (n *NanRemover) nextFast() Vertex {
	v := n.source.Next()
	skipping := false
	for {
		switch {
		case v.Cmd == CmdStop:
			return v
		case v.Cmd == CmdClose:
			if n.validSegment {
				return v
			}
			// No valid MOVE_TO has been emitted yet; closing is
			// meaningless. Drop it and keep scanning.
			v = n.source.Next()
		case isFiniteVertex(v):
			n.validSegment = true
			if skipping {
				v.Cmd = CmdMoveTo
			}
			return v
		default:
			skipping = true
			v = n.source.Next()
		}
	}
}

// nextSlow implements the curve/close-aware algorithm. Whole segment
// units (primary command plus its control points) are read and queued
// atomically; a non-finite vertex anywhere in the unit drops the entire
// unit and clears whatever had been queued for it.
func (n *NanRemover) nextSlow() Vertex {
	if v, ok := n.queue.pop(); ok {
		return v
	}

	needsMoveTo := false
	for {
		cmd := n.source.Next()

		switch {
		case cmd.Cmd == CmdStop:
			return cmd

		case cmd.Cmd == CmdClose:
			if !n.validSegment {
				// Closed before any valid MOVE_TO was ever emitted.
				continue
			}
			if n.wasBroken {
				if n.lastSegmentOK && isFiniteXY(n.initX, n.initY) {
					n.queue.push(Vertex{Cmd: CmdLineTo, X: n.initX, Y: n.initY})
					if v, ok := n.queue.pop(); ok {
						return v
					}
					return Stop
				}
				// No finite endpoint survived the break, so the loop
				// can't be closed; drop it in case there are more
				// subpaths to come.
				continue
			}
			return cmd

		case cmd.Cmd == CmdMoveTo:
			n.initX, n.initY = cmd.X, cmd.Y
			n.validSegment = true
			n.wasBroken = false
			n.lastSegmentOK = true
			return cmd
		}

		if needsMoveTo {
			n.queue.pushXY(CmdMoveTo, cmd.X, cmd.Y)
		}

		extra := cmd.Cmd.ExtraVertices()
		n.lastSegmentOK = isFiniteVertex(cmd)
		n.queue.push(cmd)
		lastX, lastY := cmd.X, cmd.Y
		for i := 0; i < extra; i++ {
			c := n.source.Next()
			n.lastSegmentOK = n.lastSegmentOK && isFiniteVertex(c)
			n.queue.push(Vertex{Cmd: cmd.Cmd, X: c.X, Y: c.Y})
			lastX, lastY = c.X, c.Y
		}

		if n.lastSegmentOK {
			n.validSegment = true
			break
		}

		n.wasBroken = true
		n.queue.clear()
		if isFiniteXY(lastX, lastY) {
			n.queue.pushXY(CmdMoveTo, lastX, lastY)
			needsMoveTo = false
		} else {
			needsMoveTo = true
		}
	}

	if v, ok := n.queue.pop(); ok {
		return v
	}
	return Stop
}
