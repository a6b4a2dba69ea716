package render

// VertexAttr is a clip-space vertex carrying the attributes the clipper
// and rasterizer interpolate: position (x,y,z,w) and texture coordinates
// (u,v).
type VertexAttr struct {
	X, Y, Z, W float64
	U, V       float64
}

// Lerp returns the interpolation of a and b by t, with t=1 keeping a and
// t=0 keeping b: a*t + b*(1-t), applied component-wise across all six
// attributes. This mirrors Vec4.Lerp's parametrization so the clipper's
// intersection parameter has one consistent meaning throughout.
func (a VertexAttr) Lerp(b VertexAttr, t float64) VertexAttr {
	u := 1 - t
	return VertexAttr{
		X: a.X*t + b.X*u,
		Y: a.Y*t + b.Y*u,
		Z: a.Z*t + b.Z*u,
		W: a.W*t + b.W*u,
		U: a.U*t + b.U*u,
		V: a.V*t + b.V*u,
	}
}

// clipPlane is one of the six canonical homogeneous half-spaces, named by
// the sign of the distance function it computes.
type clipPlane struct {
	name     string
	distance func(v VertexAttr) float64
}

// clipPlanes lists the six passes in the order the driver applies them:
// w+z≥0, w-z≥0, w+x≥0, w-x≥0, w+y≥0, w-y≥0. Near-z is clipped first since
// it is the common case (points behind the eye) and cheapens everything
// downstream.
var clipPlanes = []clipPlane{
	{"w+z", func(v VertexAttr) float64 { return v.W + v.Z }},
	{"w-z", func(v VertexAttr) float64 { return v.W - v.Z }},
	{"w+x", func(v VertexAttr) float64 { return v.W + v.X }},
	{"w-x", func(v VertexAttr) float64 { return v.W - v.X }},
	{"w+y", func(v VertexAttr) float64 { return v.W + v.Y }},
	{"w-y", func(v VertexAttr) float64 { return v.W - v.Y }},
}

// ClipPolygon runs Sutherland-Hodgman clipping against all six canonical
// planes in sequence, returning a convex polygon fan (possibly empty if
// the input is entirely outside any one plane).
func ClipPolygon(poly []VertexAttr) []VertexAttr {
	for _, p := range clipPlanes {
		poly = clipAgainstPlane(poly, p.distance)
		if len(poly) == 0 {
			return nil
		}
	}
	return poly
}

// clipAgainstPlane runs one Sutherland-Hodgman pass against a single
// half-space, described by its signed-distance function: d>=0 is inside.
func clipAgainstPlane(poly []VertexAttr, distance func(VertexAttr) float64) []VertexAttr {
	if len(poly) == 0 {
		return nil
	}
	out := make([]VertexAttr, 0, len(poly)+1)
	n := len(poly)
	for i := range n {
		current := poly[i]
		next := poly[(i+1)%n]
		dCurrent := distance(current)
		dNext := distance(next)

		if dCurrent >= 0 {
			out = append(out, current)
		}
		if (dCurrent < 0) != (dNext < 0) {
			t := dNext / (dNext - dCurrent)
			out = append(out, current.Lerp(next, t))
		}
	}
	return out
}
