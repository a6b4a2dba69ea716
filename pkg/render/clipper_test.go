package render

import "testing"

func almostEqual(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

// S3 — Clip-against-near. A triangle straddling w+z=0 clipped against that
// one plane yields a 4-vertex polygon: the two points with d>=0 plus the
// two edge intersections where d=0.
func TestClipAgainstNearPlane(t *testing.T) {
	poly := []VertexAttr{
		{X: 0, Y: 0, Z: -2, W: 1},
		{X: 1, Y: 0, Z: 1, W: 1},
		{X: -1, Y: 0, Z: 1, W: 1},
	}
	got := clipAgainstPlane(poly, func(v VertexAttr) float64 { return v.W + v.Z })

	if len(got) != 4 {
		t.Fatalf("len(got) = %d, want 4", len(got))
	}
	for _, v := range got {
		d := v.W + v.Z
		if d < -1e-9 {
			t.Errorf("vertex %+v violates plane: d=%v", v, d)
		}
	}
}

func TestClipPolygonEmptyOnFullyOutside(t *testing.T) {
	poly := []VertexAttr{
		{X: 10, Y: 0, Z: -5, W: 1},
		{X: 11, Y: 0, Z: -5, W: 1},
		{X: 10, Y: 1, Z: -5, W: 1},
	}
	got := ClipPolygon(poly)
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d vertices", len(got))
	}
}

// Clipper invariant: every vertex in each pass's output satisfies that
// pass's plane constraint.
func TestClipperInvariantAllPlanes(t *testing.T) {
	poly := []VertexAttr{
		{X: 0.5, Y: 0.2, Z: 0.5, W: 1},
		{X: -0.3, Y: 0.8, Z: 0.9, W: 1},
		{X: 0.1, Y: -0.6, Z: -0.2, W: 1},
	}
	for _, p := range clipPlanes {
		poly = clipAgainstPlane(poly, p.distance)
		for _, v := range poly {
			if d := p.distance(v); d < -1e-6 {
				t.Errorf("plane %s: vertex %+v violates constraint d=%v", p.name, v, d)
			}
		}
	}
}

func TestClipperConvexInputStaysConvex(t *testing.T) {
	// A small triangle entirely inside the view volume should survive all
	// six passes unchanged in vertex count (no new intersections needed).
	poly := []VertexAttr{
		{X: 0, Y: 0, Z: 0.1, W: 1},
		{X: 0.1, Y: 0, Z: 0.1, W: 1},
		{X: 0, Y: 0.1, Z: 0.1, W: 1},
	}
	got := ClipPolygon(poly)
	if len(got) != 3 {
		t.Fatalf("len(got) = %d, want 3 for a fully-interior triangle", len(got))
	}
}

func TestVertexAttrLerpEndpoints(t *testing.T) {
	a := VertexAttr{X: 1, Y: 2, Z: 3, W: 1, U: 0.1, V: 0.2}
	b := VertexAttr{X: 5, Y: 6, Z: 7, W: 1, U: 0.9, V: 0.8}

	if got := a.Lerp(b, 1); got != a {
		t.Errorf("Lerp(t=1) = %+v, want a=%+v", got, a)
	}
	if got := a.Lerp(b, 0); got != b {
		t.Errorf("Lerp(t=0) = %+v, want b=%+v", got, b)
	}
	mid := a.Lerp(b, 0.5)
	if !almostEqual(mid.X, 3, 1e-9) || !almostEqual(mid.U, 0.5, 1e-9) {
		t.Errorf("Lerp(0.5) = %+v, want midpoint", mid)
	}
}
