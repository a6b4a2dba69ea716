// Package render provides software rasterization: the image surfaces, the
// homogeneous clipper, and the triangle scan-converter.
package render


// Rasterize scan-converts one screen-space triangle into target using a
// half-space / edge-function test, affine (non-perspective-correct)
// attribute interpolation, and a nearer-wins depth test. v0, v1, v2 must
// already be in screen space: x,y in pixel coordinates, z the post-divide
// depth in [0,1] (smaller = nearer), w = 1, and (u,v) texture coordinates.
// A pixel is inside when its center (x+0.5, y+0.5) lies inside or on all
// three edges.
//
// Back-facing triangles are not culled here; culling, if any, is the
// scene driver's business.
func Rasterize(v0, v1, v2 VertexAttr, tex *Texture, target *RenderTarget) {
	x0, y0 := truncPixel(v0.X), truncPixel(v0.Y)
	x1, y1 := truncPixel(v1.X), truncPixel(v1.Y)
	x2, y2 := truncPixel(v2.X), truncPixel(v2.Y)

	a0, b0, c0 := y1-y2, x2-x1, x1*y2-x2*y1
	a1, b1, c1 := y2-y0, x0-x2, x2*y0-x0*y2
	a2, b2, c2 := y0-y1, x1-x0, x0*y1-x1*y0

	area := (x1-x0)*(y2-y0) - (x0-x2)*(y0-y1)
	if area == 0 {
		return
	}
	// The opposite winding has negative area; negating every edge function
	// and the area lets it pass the same w >= 0 inside test.
	if area < 0 {
		a0, b0, c0 = -a0, -b0, -c0
		a1, b1, c1 = -a1, -b1, -c1
		a2, b2, c2 = -a2, -b2, -c2
		area = -area
	}

	minX, maxX := minMax3(x0, x1, x2)
	minY, maxY := minMax3(y0, y1, y2)
	minX = clampInt(minX, 0, target.Width-1)
	maxX = clampInt(maxX, 0, target.Width-1)
	minY = clampInt(minY, 0, target.Height-1)
	maxY = clampInt(maxY, 0, target.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Edge functions are sampled at pixel centers. Every value is doubled
	// so the half-pixel offset stays in integers; rArea carries the same
	// factor of 2.
	rArea := 1 / float64(2*area)
	dz1, dz2 := (v1.Z-v0.Z)*rArea, (v2.Z-v0.Z)*rArea
	du1, du2 := (v1.U-v0.U)*rArea, (v2.U-v0.U)*rArea
	dv1, dv2 := (v1.V-v0.V)*rArea, (v2.V-v0.V)*rArea

	w0Row := 2*(a0*minX+b0*minY+c0) + a0 + b0
	w1Row := 2*(a1*minX+b1*minY+c1) + a1 + b1
	w2Row := 2*(a2*minX+b2*minY+c2) + a2 + b2

	for y := minY; y <= maxY; y++ {
		w0, w1, w2 := w0Row, w1Row, w2Row
		for x := minX; x <= maxX; x++ {
			if w0 >= 0 && w1 >= 0 && w2 >= 0 {
				z := v0.Z + dz1*float64(w1) + dz2*float64(w2)
				if z < target.DepthAt(x, y) {
					u := v0.U + du1*float64(w1) + du2*float64(w2)
					v := v0.V + dv1*float64(w1) + dv2*float64(w2)
					c := tex.Sample(u, v)
					target.SetPixel(x, y, c.R, c.G, c.B, 255)
					target.SetDepthAt(x, y, z)
				}
			}
			w0 += 2 * a0
			w1 += 2 * a1
			w2 += 2 * a2
		}
		w0Row += 2 * b0
		w1Row += 2 * b1
		w2Row += 2 * b2
	}
}

// truncPixel rounds a screen coordinate to its pixel by truncating x+0.5,
// matching the spec's V0/V1/V2 integer-vertex convention.
func truncPixel(x float64) int {
	return int(x + 0.5)
}

func minMax3(a, b, c int) (min, max int) {
	min, max = a, a
	for _, v := range [2]int{b, c} {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
