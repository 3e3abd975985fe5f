// Command pathdemo runs a path through the aggpath pipeline and
// rasterizes the result to a PNG, to exercise the pipeline end to end
// against a real consumer.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/TakuyaAono/bl-matplotlib"
)

func main() {
	var (
		width      = flag.Int("width", 400, "image width")
		height     = flag.Int("height", 300, "image height")
		output     = flag.String("output", "pathdemo.png", "output file")
		threshold  = flag.Float64("simplify", 0.3, "simplification threshold, in pixels")
		sketchScl  = flag.Float64("sketch-scale", 0, "sketch perpendicular wiggle scale, 0 disables")
		sketchLen  = flag.Float64("sketch-length", 10, "sketch wavelength")
		sketchRand = flag.Float64("sketch-randomness", 2, "sketch randomness factor")
	)
	flag.Parse()

	path := aggpath.BuildPath().
		MoveTo(20, 20).
		LineTo(60, 20).
		LineTo(100, 20).
		LineTo(140, 20).
		LineTo(180, 60).
		LineTo(180, 120).
		LineTo(180, 180).
		LineTo(120, 220).
		LineTo(60, 220).
		Close().
		Circle(300, 150, 60).
		Build()

	p := aggpath.NewPipeline(aggpath.NewPathSource(path),
		aggpath.WithCodes(path.HasCodes()),
		aggpath.WithClipSize(float64(*width), float64(*height)),
		aggpath.WithSnap(aggpath.SnapAuto, 1),
		aggpath.WithSimplify(*threshold),
		aggpath.WithSketch(*sketchScl, *sketchLen, *sketchRand),
	)

	z := vector.NewRasterizer(*width, *height)
	if err := feedRasterizer(z, p, 0); err != nil {
		log.Fatalf("rendering path: %v", err)
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	z.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{})

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("creating output: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, dst); err != nil {
		log.Fatalf("encoding png: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, *width, *height)
}

// feedRasterizer pulls path pathID through p and feeds every token to z.
// CURVE3/CURVE4 tokens are buffered until their endpoint arrives, then
// forwarded to the rasterizer's own quadratic/cubic stepping -- the
// pipeline itself never flattens curves.
func feedRasterizer(z *vector.Rasterizer, p *aggpath.Pipeline, pathID int) error {
	p.Rewind(pathID)
	var pendingCtrl []f32.Vec2
	for {
		v := p.Next()
		switch v.Cmd {
		case aggpath.CmdStop:
			return nil
		case aggpath.CmdMoveTo:
			z.MoveTo(float32(v.X), float32(v.Y))
			pendingCtrl = pendingCtrl[:0]
		case aggpath.CmdLineTo:
			z.LineTo(float32(v.X), float32(v.Y))
		case aggpath.CmdCurve3:
			pt := f32.Vec2{float32(v.X), float32(v.Y)}
			if len(pendingCtrl) == 0 {
				pendingCtrl = append(pendingCtrl, pt)
			} else {
				z.QuadTo(pendingCtrl[0][0], pendingCtrl[0][1], pt[0], pt[1])
				pendingCtrl = pendingCtrl[:0]
			}
		case aggpath.CmdCurve4:
			pt := f32.Vec2{float32(v.X), float32(v.Y)}
			if len(pendingCtrl) < 2 {
				pendingCtrl = append(pendingCtrl, pt)
			} else {
				z.CubeTo(pendingCtrl[0][0], pendingCtrl[0][1], pendingCtrl[1][0], pendingCtrl[1][1], pt[0], pt[1])
				pendingCtrl = pendingCtrl[:0]
			}
		case aggpath.CmdClose:
			z.ClosePath()
		}
	}
}
