package aggpath

// Pipeline composes the five path-processing stages into a single
// VertexSource: NanRemover, Clipper, Snapper, Simplifier, and Sketch, in
// that dependency order. Each stage is always present; PipelineOption
// toggles what it actually does internally, matching how the reference
// stages carry their own enable flags rather than being conditionally
// wired in or out.
type Pipeline struct {
	tail VertexSource
}

// NewPipeline builds a Pipeline reading from source, configured by opts.
//
// Pass WithCodes(true) whenever source may emit curves or subpath
// closes, so NanRemover runs its slower, atomic-unit algorithm; a *Path
// built with BuildPath reports this via its HasCodes method. Simplifier
// is disabled automatically whenever WithCodes(true) is set, since the
// reference-vector projection it relies on has no meaning across a
// curve's control points.
func NewPipeline(source VertexSource, opts ...PipelineOption) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	simplify := o.simplify && !o.hasCodes
	if o.simplify && o.hasCodes {
		Logger().Debug("simplify requested but disabled", "reason", "hasCodes is set")
	}

	nanRemover := NewNanRemover(source, o.removeNaNs, o.hasCodes)
	clipper := NewClipper(nanRemover, o.clipRect, o.clip)
	snapper := NewSnapper(clipper, o.snapMode, o.strokeWidth)
	simplifier := NewSimplifier(snapper, simplify, o.threshold)
	sketch := NewSketch(simplifier, o.sketchScale, o.sketchLength, o.sketchRandomness)
	sketch.SetSeed(o.sketchSeed)

	return &Pipeline{tail: sketch}
}

// Rewind repositions the pipeline, and transitively every stage and the
// original source, to the start of the subpath identified by pathID.
func (p *Pipeline) Rewind(pathID int) {
	p.tail.Rewind(pathID)
}

// Next returns the next fully-processed token.
func (p *Pipeline) Next() Vertex {
	return p.tail.Next()
}
