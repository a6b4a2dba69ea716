package render

import "testing"

func soloTexture(t *testing.T, r, g, b byte) *Texture {
	t.Helper()
	pixels := make([]byte, 2*2*4)
	for i := range 4 {
		o := i * 4
		pixels[o], pixels[o+1], pixels[o+2], pixels[o+3] = r, g, b, 255
	}
	tex, err := NewTexture(2, 2, pixels)
	if err != nil {
		t.Fatalf("NewTexture: %v", err)
	}
	return tex
}

// S4 — Single-pixel triangle. A screen-space triangle (0,0),(2,0),(0,2) at
// uniform depth 0.5 into a 4x4 target must paint exactly (0,0),(1,0),(0,1).
func TestRasterizeSinglePixelTriangle(t *testing.T) {
	target := NewRenderTarget(4, 4)
	tex := soloTexture(t, 200, 50, 50)

	v0 := VertexAttr{X: 0, Y: 0, Z: 0.5, W: 1}
	v1 := VertexAttr{X: 2, Y: 0, Z: 0.5, W: 1}
	v2 := VertexAttr{X: 0, Y: 2, Z: 0.5, W: 1}

	Rasterize(v0, v1, v2, tex, target)

	wantPainted := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true}
	for y := range 4 {
		for x := range 4 {
			o := target.offset(x, y)
			painted := target.Color[o] != 0 || target.Color[o+1] != 0 || target.Color[o+2] != 0
			if wantPainted[[2]int{x, y}] && !painted {
				t.Errorf("pixel (%d,%d): expected painted, got black", x, y)
			}
			if !wantPainted[[2]int{x, y}] && painted {
				t.Errorf("pixel (%d,%d): expected untouched, got %v", x, y, target.Color[o:o+4])
			}
		}
	}
}

// S5 — Depth occlusion. Two screen-covering triangles at z=0.2 (red) and
// z=0.8 (blue) must resolve to an all-red image regardless of draw order.
func TestRasterizeDepthOcclusion(t *testing.T) {
	red := soloTexture(t, 255, 0, 0)
	blue := soloTexture(t, 0, 0, 255)

	covering := func(z float64) (VertexAttr, VertexAttr, VertexAttr) {
		return VertexAttr{X: -10, Y: -10, Z: z, W: 1},
			VertexAttr{X: 20, Y: -10, Z: z, W: 1},
			VertexAttr{X: -10, Y: 20, Z: z, W: 1}
	}

	run := func(first, second string) *RenderTarget {
		target := NewRenderTarget(4, 4)
		r0, r1, r2 := covering(0.2)
		b0, b1, b2 := covering(0.8)
		draw := map[string]func(){
			"red":  func() { Rasterize(r0, r1, r2, red, target) },
			"blue": func() { Rasterize(b0, b1, b2, blue, target) },
		}
		draw[first]()
		draw[second]()
		return target
	}

	for _, order := range [][2]string{{"blue", "red"}, {"red", "blue"}} {
		target := run(order[0], order[1])
		for y := range target.Height {
			for x := range target.Width {
				o := target.offset(x, y)
				if target.Color[o] != 255 || target.Color[o+2] != 0 {
					t.Errorf("order %v: pixel (%d,%d) = %v, want red", order, x, y, target.Color[o:o+4])
				}
			}
		}
	}
}

func TestRasterizeDegenerateTriangleSkipped(t *testing.T) {
	target := NewRenderTarget(4, 4)
	tex := soloTexture(t, 255, 255, 255)
	v := VertexAttr{X: 1, Y: 1, Z: 0.5, W: 1}
	Rasterize(v, v, v, tex, target)

	for _, d := range target.Depth {
		if d != target.Depth[0] {
			t.Fatalf("depth buffer mutated by degenerate triangle")
		}
	}
}
