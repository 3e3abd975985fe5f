package aggpath

import "testing"

func TestSegmenter_ShortSegmentPassesThrough(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(0.5, 0), Stop)
	g := newSegmenter(src)
	g.Rewind(0)

	got := drain(g)
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens for a sub-pixel segment, got %v", got)
	}
}

func TestSegmenter_LongSegmentSubdivided(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(10, 0), Stop)
	g := newSegmenter(src)
	g.Rewind(0)

	got := drain(g)
	// MoveTo + at least 10 LineTo pieces (each <=1px) + Stop.
	if len(got) < 12 {
		t.Fatalf("expected a long edge to be subdivided into >=10 pieces, got %d tokens: %v", len(got), got)
	}
	for i := 1; i < len(got)-1; i++ {
		if got[i].Cmd != CmdLineTo {
			continue
		}
		prev := got[i-1]
		dx := got[i].X - prev.X
		dy := got[i].Y - prev.Y
		if dx*dx+dy*dy > 1.0001 {
			t.Errorf("piece %d has length²=%v, want <=1", i, dx*dx+dy*dy)
		}
	}
	last := got[len(got)-2]
	if last.X != 10 || last.Y != 0 {
		t.Errorf("final piece should land exactly on the endpoint, got %v", last)
	}
}
