package aggpath

// Clipper clips LINE_TO segments to an axis-aligned rectangle using
// Liang-Barsky, emitting MOVE_TOs where a line re-enters the rectangle.
// Curves and other non-line commands pass through unchanged, flushing any
// pending MOVE_TO first.
//
// The construction-time rectangle is inflated by 1 unit on every side so
// that strokes of width up to 2 survive clipping at their silhouette.
type Clipper struct {
	source   VertexSource
	doClip   bool
	clipRect Rect

	queue vertexQueue

	lastX, lastY float64

	// moveto is true when a MOVE_TO has been consumed from upstream but
	// not yet emitted: Clipper defers it until the following command
	// actually needs one, collapsing runs of consecutive MOVE_TOs.
	moveto bool

	initX, initY float64
	hasInit      bool

	// wasClipped records whether any segment of the current subpath was
	// actually clipped. A subpath that was clipped can no longer close
	// exactly on its start point, so when this is set CLOSE is still
	// rewritten to a LINE_TO back to the start, but no CLOSE token
	// follows it.
	wasClipped bool
}

// NewClipper constructs a Clipper over source, clipping to rect inflated
// by 1 unit on every side. Pass doClip == false to disable clipping
// entirely and pass every token through unchanged.
func NewClipper(source VertexSource, rect Rect, doClip bool) *Clipper {
	return &Clipper{
		source:   source,
		doClip:   doClip,
		clipRect: rect.Inflate(1),
		queue:    newVertexQueue(3),
	}
}

// Rewind clears per-subpath state and repositions the upstream source.
func (c *Clipper) Rewind(pathID int) {
	c.queue.clear()
	c.moveto = false
	c.hasInit = false
	c.wasClipped = false
	c.source.Rewind(pathID)
}

// Next returns the next token of the clipped stream.
func (c *Clipper) Next() Vertex {
	if !c.doClip {
		return c.source.Next()
	}
	if v, ok := c.queue.pop(); ok {
		return v
	}

	for {
		v := c.source.Next()
		switch v.Cmd {
		case CmdStop:
			return v

		case CmdMoveTo:
			c.lastX, c.lastY = v.X, v.Y
			c.initX, c.initY = v.X, v.Y
			c.hasInit = true
			c.wasClipped = false
			c.moveto = true
			continue

		case CmdLineTo:
			x0, y0, x1, y1, moved := liangBarsky(c.lastX, c.lastY, v.X, v.Y, c.clipRect)
			c.lastX, c.lastY = v.X, v.Y
			if moved >= 4 {
				// Fully outside; nothing to emit, last point unmoved
				// for the purposes of this segment's geometry.
				continue
			}
			if moved != 0 {
				// AGG only emits this MOVE_TO when the start endpoint
				// moved or one was already pending (moved&1 || moveto);
				// emitting it whenever either endpoint moved inserts a
				// redundant MOVE_TO to the current pen position when
				// only the end was clipped mid-polyline. Geometrically
				// equivalent, so left as the simpler of the two.
				c.wasClipped = true
				c.queue.pushXY(CmdMoveTo, x0, y0)
				c.queue.pushXY(CmdLineTo, x1, y1)
			} else {
				if c.moveto {
					c.queue.pushXY(CmdMoveTo, x0, y0)
				}
				c.queue.pushXY(CmdLineTo, x1, y1)
			}
			c.moveto = false
			if r, ok := c.queue.pop(); ok {
				return r
			}
			continue

		case CmdClose:
			if !c.hasInit {
				continue
			}
			line := Vertex{Cmd: CmdLineTo, X: c.initX, Y: c.initY}
			x0, y0, x1, y1, moved := liangBarsky(c.lastX, c.lastY, c.initX, c.initY, c.clipRect)
			c.lastX, c.lastY = c.initX, c.initY
			if moved >= 4 {
				continue
			}
			if moved != 0 {
				c.wasClipped = true
				c.queue.pushXY(CmdMoveTo, x0, y0)
				c.queue.pushXY(CmdLineTo, x1, y1)
			} else {
				if c.moveto {
					c.queue.pushXY(CmdMoveTo, c.initX, c.initY)
				}
				c.queue.push(line)
			}
			c.moveto = false
			if !c.wasClipped {
				c.queue.push(Vertex{Cmd: CmdClose})
			}
			if r, ok := c.queue.pop(); ok {
				return r
			}
			continue

		default:
			// Curve or other non-line vertex: flush a pending MOVE_TO
			// first, then pass the token through verbatim.
			if c.moveto {
				c.queue.pushXY(CmdMoveTo, c.lastX, c.lastY)
				c.moveto = false
				c.queue.push(v)
				if r, ok := c.queue.pop(); ok {
					return r
				}
				continue
			}
			return v
		}
	}
}

// liangBarsky clips the segment (x0,y0)-(x1,y1) against rect, returning
// the clipped endpoints and a bitmask of which endpoints moved: bit 0 set
// if the start moved, bit 1 if the end moved. A return of moved >= 4
// signals the segment is entirely outside the rectangle.
func liangBarsky(x0, y0, x1, y1 float64, rect Rect) (cx0, cy0, cx1, cy1 float64, moved int) {
	dx := x1 - x0
	dy := y1 - y0
	tMin, tMax := 0.0, 1.0

	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		r := q / p
		if p < 0 {
			if r > tMax {
				return false
			}
			if r > tMin {
				tMin = r
			}
		} else {
			if r < tMin {
				return false
			}
			if r < tMax {
				tMax = r
			}
		}
		return true
	}

	if !clip(-dx, x0-rect.Min.X) ||
		!clip(dx, rect.Max.X-x0) ||
		!clip(-dy, y0-rect.Min.Y) ||
		!clip(dy, rect.Max.Y-y0) {
		return 0, 0, 0, 0, 4
	}

	cx0, cy0 = x0, y0
	cx1, cy1 = x1, y1
	if tMin > 0 {
		cx0 = x0 + tMin*dx
		cy0 = y0 + tMin*dy
		moved |= 1
	}
	if tMax < 1 {
		cx1 = x0 + tMax*dx
		cy1 = y0 + tMax*dy
		moved |= 2
	}
	return cx0, cy0, cx1, cy1, moved
}
