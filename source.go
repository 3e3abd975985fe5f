package aggpath

// VertexSource is the contract every pipeline stage, and every producer
// feeding into the pipeline, implements: a pull-based iterator over a
// stream of path commands.
//
// Rewind repositions the source to the start of the subpath identified by
// pathID; a single source may hold several named paths (for example, a
// batch of glyph outlines or hatch patterns rendered through the same
// pipeline instance). Next returns the next token, terminating a path with
// CmdStop. Rewind is idempotent and must be callable at any time.
type VertexSource interface {
	Rewind(pathID int)
	Next() Vertex
}

// FixedSource is an in-memory VertexSource over a fixed token slice. It is
// the simplest possible upstream producer and is primarily useful for
// tests and for short-lived, fully-materialized paths.
//
// Rewind ignores pathID beyond resetting to the start of the slice: a
// FixedSource only ever holds a single path.
type FixedSource struct {
	tokens []Vertex
	pos    int
}

// NewFixedSource returns a VertexSource that replays tokens in order and
// then yields CmdStop forever.
func NewFixedSource(tokens ...Vertex) *FixedSource {
	return &FixedSource{tokens: tokens}
}

// Rewind resets the source to its first token.
func (s *FixedSource) Rewind(pathID int) {
	s.pos = 0
}

// Next returns the next token, or Stop once the slice is exhausted.
func (s *FixedSource) Next() Vertex {
	if s.pos >= len(s.tokens) {
		return Stop
	}
	v := s.tokens[s.pos]
	s.pos++
	return v
}

// PathSource adapts one or more *Path values, built with the fluent
// PathBuilder, into the tokenized VertexSource contract the pipeline
// consumes. Each Path is addressed by its index, matching Rewind's
// path_id parameter, which lets a single pipeline instance be reused
// across a batch of independently-built paths without reconstruction.
type PathSource struct {
	paths  []*Path
	tokens []Vertex
	pos    int
}

// NewPathSource builds a PathSource over the given paths, indexed in the
// order provided.
func NewPathSource(paths ...*Path) *PathSource {
	return &PathSource{paths: paths}
}

// Rewind selects the path identified by pathID and resets to its start.
// An out-of-range pathID rewinds to an empty path (an immediate CmdStop).
func (s *PathSource) Rewind(pathID int) {
	if pathID < 0 || pathID >= len(s.paths) {
		s.tokens = nil
		s.pos = 0
		return
	}
	s.tokens = tokenizePath(s.paths[pathID])
	s.pos = 0
}

// Next returns the next token of the currently selected path.
func (s *PathSource) Next() Vertex {
	if s.pos >= len(s.tokens) {
		return Stop
	}
	v := s.tokens[s.pos]
	s.pos++
	return v
}

// tokenizePath flattens a Path's structured elements into the flat
// (command, x, y) token stream the pipeline stages operate on, expanding
// each curve into its primary token plus the fixed number of control-point
// tokens Command.ExtraVertices expects.
func tokenizePath(p *Path) []Vertex {
	tokens := make([]Vertex, 0, len(p.elements)+4)
	for _, e := range p.elements {
		switch el := e.(type) {
		case MoveTo:
			tokens = append(tokens, Vertex{Cmd: CmdMoveTo, X: el.Point.X, Y: el.Point.Y})
		case LineTo:
			tokens = append(tokens, Vertex{Cmd: CmdLineTo, X: el.Point.X, Y: el.Point.Y})
		case QuadTo:
			tokens = append(tokens,
				Vertex{Cmd: CmdCurve3, X: el.Control.X, Y: el.Control.Y},
				Vertex{Cmd: CmdCurve3, X: el.Point.X, Y: el.Point.Y})
		case CubicTo:
			tokens = append(tokens,
				Vertex{Cmd: CmdCurve4, X: el.Control1.X, Y: el.Control1.Y},
				Vertex{Cmd: CmdCurve4, X: el.Control2.X, Y: el.Control2.Y},
				Vertex{Cmd: CmdCurve4, X: el.Point.X, Y: el.Point.Y})
		case Close:
			tokens = append(tokens, Vertex{Cmd: CmdClose})
		}
	}
	return tokens
}

// HasCodes reports whether the path contains any command that requires
// the slow, curve/close-aware NanRemover algorithm: curves or subpath
// closes. Callers typically pass this straight to NewNanRemover.
func (p *Path) HasCodes() bool {
	for _, e := range p.elements {
		switch e.(type) {
		case QuadTo, CubicTo, Close:
			return true
		}
	}
	return false
}
