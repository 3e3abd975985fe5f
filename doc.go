// Package aggpath implements a streaming 2D path-processing pipeline: a
// chain of pull-based stages that clean, clip, snap, simplify, and
// optionally sketch a sequence of path drawing commands before they reach
// a rasterizer.
//
// # Overview
//
// The input is a stream of vertices produced by a higher-level figure
// renderer; the output is the same shape, filtered for non-finite
// coordinates, clipped to a device rectangle, optionally snapped to pixel
// centers, simplified by collapsing near-collinear runs, and optionally
// perturbed into a hand-drawn wiggle.
//
// Every stage implements VertexSource: a rewind(pathID) that resets to the
// start of a subpath, and a next() that pulls the following token. No
// stage materializes an entire path in memory; each holds at most a
// handful of look-ahead tokens in an embedded queue.
//
// # Quick start
//
//	path := aggpath.BuildPath().
//		MoveTo(0, 0).
//		LineTo(100, 0).
//		LineTo(100, 100).
//		Close().
//		Build()
//
//	p := aggpath.NewPipeline(aggpath.NewPathSource(path),
//		aggpath.WithClipSize(800, 600),
//		aggpath.WithSimplify(0.2),
//	)
//	p.Rewind(0)
//	for v := p.Next(); v.Cmd != aggpath.CmdStop; v = p.Next() {
//		// feed v to a rasterizer
//	}
//
// # Stages
//
// In dependency order, closest to the data producer first:
//
//   - NanRemover drops or restructures subpaths around non-finite vertices.
//   - Clipper clips LINE_TO segments to an axis-aligned rectangle using
//     Liang-Barsky, deferring MOVE_TOs until they're needed.
//   - Snapper optionally rounds coordinates to pixel centers or corners.
//   - Simplifier collapses runs of near-collinear segments under a
//     perpendicular-distance threshold while preserving run extrema.
//   - Sketch optionally perturbs the polyline along a sinusoidal wiggle
//     using a seeded, non-cryptographic LCG.
//
// # Scope
//
// Deliberately out of scope, treated as external collaborators: the
// rasterizer itself, font/glyph handling, affine transformation (applied
// upstream), curve flattening and stroking (applied downstream), and
// image blitting.
package aggpath
