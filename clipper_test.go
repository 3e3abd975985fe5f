package aggpath

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestClipper_Disabled_PassesThrough(t *testing.T) {
	src := NewFixedSource(m(-5, -5), l(15, 15), Stop)
	c := NewClipper(src, NewRect(Pt(0, 0), Pt(10, 10)), false)
	c.Rewind(0)

	got := drain(c)
	want := []Vertex{m(-5, -5), l(15, 15), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("disabled clipper should pass through unchanged (-want +got):\n%s", diff)
	}
}

func TestClipper_DiagonalThroughRectangle(t *testing.T) {
	src := NewFixedSource(m(-5, -5), l(15, 15), Stop)
	c := NewClipper(src, NewRect(Pt(0, 0), Pt(10, 10)), true)
	c.Rewind(0)

	got := drain(c)
	want := []Vertex{m(-1, -1), l(11, 11), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("diagonal clip against inflated rect (-want +got):\n%s", diff)
	}
}

func TestClipper_FullyOutsideEmitsNothing(t *testing.T) {
	src := NewFixedSource(m(100, 100), l(200, 200), Stop)
	c := NewClipper(src, NewRect(Pt(0, 0), Pt(10, 10)), true)
	c.Rewind(0)

	got := drain(c)
	want := []Vertex{Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fully outside segment should emit nothing (-want +got):\n%s", diff)
	}
}

func TestClipper_IdentityWhenRectContainsBounds(t *testing.T) {
	src := NewFixedSource(m(1, 1), l(2, 2), l(3, 1), Stop)
	c := NewClipper(src, NewRect(Pt(-100, -100), Pt(100, 100)), true)
	c.Rewind(0)

	got := drain(c)
	want := []Vertex{m(1, 1), l(2, 2), l(3, 1), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("a rect strictly containing the path should be the identity (-want +got):\n%s", diff)
	}
}

func TestClipper_ConsecutiveMoveTosCollapse(t *testing.T) {
	src := NewFixedSource(m(1, 1), m(2, 2), l(3, 3), Stop)
	c := NewClipper(src, NewRect(Pt(-100, -100), Pt(100, 100)), true)
	c.Rewind(0)

	got := drain(c)
	want := []Vertex{m(2, 2), l(3, 3), Stop}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("consecutive MOVE_TOs should collapse to the last one (-want +got):\n%s", diff)
	}
}

func TestClipper_ContainmentInvariant(t *testing.T) {
	rect := NewRect(Pt(0, 0), Pt(10, 10))
	src := NewFixedSource(m(-5, 5), l(5, -5), l(20, 20), l(5, 5), Stop)
	c := NewClipper(src, rect, true)
	c.Rewind(0)

	inflated := rect.Inflate(1)
	for _, v := range drain(c) {
		if v.Cmd != CmdLineTo {
			continue
		}
		if !inflated.Contains(Pt(v.X, v.Y)) {
			t.Errorf("LINE_TO endpoint %v escapes inflated clip rect %v", v, inflated)
		}
	}
}
