package aggpath

// Simplifier collapses runs of near-collinear segments into single
// segments, while preserving both extrema of the run along the reference
// vector it is currently building.
//
// It only ever operates on straight lines: the pipeline disables
// simplification automatically whenever the upstream path may contain
// curves, since a reference-vector projection has no useful meaning
// across a Bezier control point.
type Simplifier struct {
	source      VertexSource
	simplify    bool
	thresholdSq float64

	queue vertexQueue

	moveto      bool
	afterMoveto bool
	clipped     bool
	hasInit     bool
	initX       float64
	initY       float64

	lastx, lasty float64

	origdx, origdy, origdNormSq float64

	dnorm2ForwardMax, dnorm2BackwardMax float64
	lastForwardMax, lastBackwardMax     bool

	nextX, nextY                 float64
	nextBackwardX, nextBackwardY float64

	currVecStartX, currVecStartY float64
}

// NewSimplifier constructs a Simplifier over source. threshold is the
// maximum perpendicular distance, in pixels, a point may deviate from the
// reference vector before forcing a flush; it is squared once at
// construction since all comparisons against it are on squared norms.
func NewSimplifier(source VertexSource, simplify bool, threshold float64) *Simplifier {
	return &Simplifier{
		source:      source,
		simplify:    simplify,
		thresholdSq: threshold * threshold,
		queue:       newVertexQueue(9),
		moveto:      true,
	}
}

// Rewind clears the look-ahead queue and repositions the upstream source.
func (s *Simplifier) Rewind(pathID int) {
	s.queue.clear()
	s.moveto = true
	s.source.Rewind(pathID)
}

// Next returns the next token of the simplified stream.
func (s *Simplifier) Next() Vertex {
	if !s.simplify {
		return s.source.Next()
	}
	if v, ok := s.queue.pop(); ok {
		return v
	}

	var cmd Command
	var x, y float64
	for {
		v := s.source.Next()
		cmd, x, y = v.Cmd, v.X, v.Y
		if cmd == CmdStop {
			break
		}

		if s.moveto || cmd == CmdMoveTo {
			if cmd == CmdClose {
				// No subpath has been started yet, so there is no
				// initial point to close back to.
				continue
			}
			if s.origdNormSq != 0 && !s.afterMoveto {
				s.push(x, y)
			}
			s.afterMoveto = true

			if isFiniteXY(x, y) {
				s.hasInit = true
				s.initX, s.initY = x, y
			} else {
				s.hasInit = false
			}

			s.lastx, s.lasty = x, y
			s.moveto = false
			s.origdNormSq = 0
			s.dnorm2BackwardMax = 0
			s.clipped = true
			if s.queue.nonempty() {
				break
			}
			continue
		}
		s.afterMoveto = false

		if cmd == CmdClose {
			if s.hasInit {
				x, y = s.initX, s.initY
			} else {
				continue
			}
		}

		if s.origdNormSq == 0 {
			if s.clipped {
				s.queue.pushXY(CmdMoveTo, s.lastx, s.lasty)
				s.clipped = false
			}
			s.origdx = x - s.lastx
			s.origdy = y - s.lasty
			s.origdNormSq = s.origdx*s.origdx + s.origdy*s.origdy

			s.dnorm2ForwardMax = s.origdNormSq
			s.dnorm2BackwardMax = 0
			s.lastForwardMax = true
			s.lastBackwardMax = false

			s.currVecStartX, s.currVecStartY = s.lastx, s.lasty
			s.nextX, s.lastx = x, x
			s.nextY, s.lasty = y, y
			continue
		}

		totdx := x - s.currVecStartX
		totdy := y - s.currVecStartY
		totdot := s.origdx*totdx + s.origdy*totdy
		paradx := totdot * s.origdx / s.origdNormSq
		parady := totdot * s.origdy / s.origdNormSq
		perpdx := totdx - paradx
		perpdy := totdy - parady
		perpdNormSq := perpdx*perpdx + perpdy*perpdy

		if perpdNormSq < s.thresholdSq {
			paradNormSq := paradx*paradx + parady*parady
			s.lastForwardMax = false
			s.lastBackwardMax = false
			if totdot > 0 {
				if paradNormSq > s.dnorm2ForwardMax {
					s.lastForwardMax = true
					s.dnorm2ForwardMax = paradNormSq
					s.nextX, s.nextY = x, y
				}
			} else {
				if paradNormSq > s.dnorm2BackwardMax {
					s.lastBackwardMax = true
					s.dnorm2BackwardMax = paradNormSq
					s.nextBackwardX, s.nextBackwardY = x, y
				}
			}
			s.lastx, s.lasty = x, y
			continue
		}

		s.push(x, y)
		break
	}

	if cmd == CmdStop && s.moveto {
		// Nothing was consumed since Rewind: an empty path yields only
		// Stop.
		return Stop
	}
	if cmd == CmdStop {
		moveOrLine := func() Command {
			if s.moveto || s.afterMoveto {
				return CmdMoveTo
			}
			return CmdLineTo
		}
		if s.origdNormSq != 0 {
			s.queue.pushXY(moveOrLine(), s.nextX, s.nextY)
			if s.dnorm2BackwardMax > 0 {
				s.queue.pushXY(moveOrLine(), s.nextBackwardX, s.nextBackwardY)
			}
			s.moveto = false
		}
		// A trailing run that never drew a second point already queued
		// its sole point as nextX/nextY above; re-pushing lastx/lasty
		// here would just be a coincident no-op point.
		if !(s.queue.nonempty() && s.queue.last().X == s.lastx && s.queue.last().Y == s.lasty) {
			s.queue.pushXY(moveOrLine(), s.lastx, s.lasty)
		}
		s.moveto = false
		s.queue.push(Stop)
	}

	if v, ok := s.queue.pop(); ok {
		return v
	}
	return Stop
}

// push flushes the run built against the current reference vector,
// emitting its extrema in an order that puts whichever was most recently
// observed last, then resets the reference vector to start at the run's
// last queued point.
func (s *Simplifier) push(x, y float64) {
	needBack := s.dnorm2BackwardMax > 0
	if needBack {
		if s.lastForwardMax {
			s.queue.pushXY(CmdLineTo, s.nextBackwardX, s.nextBackwardY)
			s.queue.pushXY(CmdLineTo, s.nextX, s.nextY)
		} else {
			s.queue.pushXY(CmdLineTo, s.nextX, s.nextY)
			s.queue.pushXY(CmdLineTo, s.nextBackwardX, s.nextBackwardY)
		}
	} else {
		s.queue.pushXY(CmdLineTo, s.nextX, s.nextY)
	}

	if s.clipped {
		s.queue.pushXY(CmdMoveTo, s.lastx, s.lasty)
	} else if !s.lastForwardMax && !s.lastBackwardMax {
		// Would be MOVE_TO if not for the artifacts.
		s.queue.pushXY(CmdLineTo, s.lastx, s.lasty)
	}

	s.origdx = x - s.lastx
	s.origdy = y - s.lasty
	s.origdNormSq = s.origdx*s.origdx + s.origdy*s.origdy

	s.dnorm2ForwardMax = s.origdNormSq
	s.lastForwardMax = true

	last := s.queue.last()
	s.currVecStartX, s.currVecStartY = last.X, last.Y

	s.lastx, s.nextX = x, x
	s.lasty, s.nextY = y, y
	s.dnorm2BackwardMax = 0
	s.lastBackwardMax = false

	s.clipped = false
}
