package aggpath

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var nan = math.NaN()

func TestNanRemover_FastMode_Identity(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(1, 1), l(2, 2), Stop)
	n := NewNanRemover(src, true, false)
	n.Rewind(0)

	got := drain(n)
	want := []Vertex{m(0, 0), l(1, 1), l(2, 2), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NaN-free path should pass through unchanged (-want +got):\n%s", diff)
	}
}

func TestNanRemover_FastMode_NaNInMiddle(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(1, 1), l(nan, nan), l(2, 2), Stop)
	n := NewNanRemover(src, true, false)
	n.Rewind(0)

	got := drain(n)
	want := []Vertex{m(0, 0), l(1, 1), m(2, 2), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("broken run should resume with MOVE_TO (-want +got):\n%s", diff)
	}
}

func TestNanRemover_FastMode_CloseBeforeValidMoveTo(t *testing.T) {
	src := NewFixedSource(closeV(), m(0, 0), l(1, 0), Stop)
	n := NewNanRemover(src, true, false)
	n.Rewind(0)

	got := drain(n)
	want := []Vertex{m(0, 0), l(1, 0), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("CLOSE before any MOVE_TO should be dropped (-want +got):\n%s", diff)
	}
}

func TestNanRemover_SlowMode_Identity(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(1, 1), l(2, 2), closeV(), Stop)
	n := NewNanRemover(src, true, true)
	n.Rewind(0)

	got := drain(n)
	want := []Vertex{m(0, 0), l(1, 1), l(2, 2), closeV(), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NaN-free, code-bearing path should pass through unchanged (-want +got):\n%s", diff)
	}
}

func TestNanRemover_SlowMode_DropsBrokenCurveUnit(t *testing.T) {
	src := NewFixedSource(m(0, 0), c3(nan, nan), c3(5, 5), l(10, 10), Stop)
	n := NewNanRemover(src, true, true)
	n.Rewind(0)

	got := drain(n)
	// The CURVE3 unit (nan,nan)+(5,5) is dropped atomically as a whole,
	// since one of its two tokens is non-finite. Its last-seen finite
	// vertex, (5,5), becomes the synthetic MOVE_TO resuming the subpath,
	// per the "use the last-seen finite vertex if available" rule.
	want := []Vertex{m(0, 0), m(5, 5), l(10, 10), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("broken curve unit should be dropped atomically (-want +got):\n%s", diff)
	}
}

func TestNanRemover_SlowMode_CloseAfterBreakRewritesToInit(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(nan, nan), l(2, 0), l(2, 2), closeV(), Stop)
	n := NewNanRemover(src, true, true)
	n.Rewind(0)

	got := drain(n)
	for _, v := range got {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) {
			t.Fatalf("output must never carry NaN coordinates, got %v in %v", v, got)
		}
	}
	last := got[len(got)-1]
	if last.Cmd != CmdStop {
		t.Fatalf("stream must terminate with STOP, got %v", got)
	}
	// The break leaves the subpath finite-endpoint-recoverable, so the
	// CLOSE is rewritten to a LINE_TO back to the saved initial point.
	foundClose := false
	for _, v := range got {
		if v.Cmd == CmdClose {
			foundClose = true
		}
	}
	if foundClose {
		t.Errorf("CLOSE after a break with a finite init point must be rewritten to LINE_TO, got %v", got)
	}
}

func TestNanRemover_Disabled_PassesNaNThrough(t *testing.T) {
	src := NewFixedSource(m(0, 0), l(nan, nan), Stop)
	n := NewNanRemover(src, false, false)
	n.Rewind(0)

	got := drain(n)
	if !math.IsNaN(got[1].X) {
		t.Errorf("removeNaNs=false should pass NaN through verbatim, got %v", got)
	}
}
