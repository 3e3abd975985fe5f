package aggpath

// SnapMode selects how Snapper decides whether to round vertex coordinates
// to pixel centers.
type SnapMode int

const (
	// SnapAuto inspects the path and snaps only if it looks purely
	// rectilinear and small enough to be worth it. This is the default.
	SnapAuto SnapMode = iota
	// SnapForce always snaps, regardless of path shape.
	SnapForce
	// SnapOff never snaps.
	SnapOff
)

// PipelineOption configures a Pipeline during construction.
// Use functional options to customize which stages run and how.
//
// Example:
//
//	p := aggpath.NewPipeline(src,
//		aggpath.WithClipRect(0, 0, 800, 600),
//		aggpath.WithSimplify(0.5),
//		aggpath.WithSketch(1, 10, 2),
//	)
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds the configuration surface for a Pipeline: which
// stages are active and their per-stage tunables.
type pipelineOptions struct {
	removeNaNs bool
	hasCodes   bool

	clip     bool
	clipRect Rect

	snapMode    SnapMode
	strokeWidth float64

	simplify  bool
	threshold float64

	sketchScale      float64
	sketchLength     float64
	sketchRandomness float64
	sketchSeed       int
}

// defaultOptions returns the default pipeline options: NaN removal is on
// and Snapper runs in SnapAuto mode with stroke width 1; clipping,
// simplification and sketching are off until explicitly configured.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		removeNaNs:   true,
		snapMode:     SnapAuto,
		strokeWidth:  1,
		sketchLength: 1,
	}
}

// WithCodes tells the pipeline that upstream may emit curve or close
// commands, forcing NanRemover into its slower, atomic-unit algorithm.
// The pipeline does not inspect its source for this: for a *Path, pass
// the value of Path.HasCodes; callers feeding a custom VertexSource
// should set it explicitly when unsure.
func WithCodes(hasCodes bool) PipelineOption {
	return func(o *pipelineOptions) {
		o.hasCodes = hasCodes
	}
}

// WithClipRect activates Clipper against the rectangle [x1,x2]×[y1,y2],
// which is inflated by 1 unit on every side at construction.
func WithClipRect(x1, y1, x2, y2 float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.clip = true
		o.clipRect = NewRect(Pt(x1, y1), Pt(x2, y2))
	}
}

// WithClipSize activates Clipper against a device surface of the given
// size, clipping to (−1, −1, w+1, h+1) so strokes up to width 2 surviving
// at the frame edge are not cut.
func WithClipSize(w, h float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.clip = true
		// Clipper inflates this by 1 unit on every side.
		o.clipRect = Rect{Min: Pt(0, 0), Max: Pt(w, h)}
	}
}

// WithSnap selects Snapper's mode and the stroke width used to decide the
// pixel-center vs. pixel-corner offset (odd rounded width snaps to
// centers, even to corners).
func WithSnap(mode SnapMode, strokeWidth float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.snapMode = mode
		o.strokeWidth = strokeWidth
	}
}

// WithSimplify activates Simplifier with the given perpendicular-distance
// threshold, in pixels.
func WithSimplify(threshold float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.simplify = true
		o.threshold = threshold
	}
}

// WithSketch activates Sketch, perturbing the polyline by
// scale·sin(p·p_scale) as the running phase p advances at a rate derived
// from length and randomness. scale == 0 leaves Sketch disabled.
func WithSketch(scale, length, randomness float64) PipelineOption {
	return func(o *pipelineOptions) {
		o.sketchScale = scale
		o.sketchLength = length
		o.sketchRandomness = randomness
	}
}

// WithSketchSeed sets the seed of Sketch's embedded LCG. The default
// seed is 0, matching the RNG's zero value.
func WithSketchSeed(seed int) PipelineOption {
	return func(o *pipelineOptions) {
		o.sketchSeed = seed
	}
}
