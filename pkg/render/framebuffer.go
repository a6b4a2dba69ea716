// Package render implements the image surfaces, clipper, and rasterizer
// that turn clip-space triangles into pixels.
package render

import "math"

// RenderTarget is the color+depth surface the rasterizer draws into. The
// color buffer is a contiguous RGBA8 byte array in row-major,
// top-to-bottom order; pixel (x,y) occupies bytes
// [(y*Width+x)*4, (y*Width+x)*4+4) in R,G,B,A order. The depth buffer is a
// parallel float array holding post-divide z in [0,1], smaller meaning
// nearer.
type RenderTarget struct {
	Width  int
	Height int
	Color  []byte
	Depth  []float64
}

// NewRenderTarget allocates a target of the given dimensions. Depth starts
// cleared to +Inf and color to opaque black, matching what Clear produces.
func NewRenderTarget(width, height int) *RenderTarget {
	rt := &RenderTarget{
		Width:  width,
		Height: height,
		Color:  make([]byte, width*height*4),
		Depth:  make([]float64, width*height),
	}
	rt.Clear()
	return rt
}

// Clear resets color to opaque black and depth to +Inf. Implementations
// reuse the same RenderTarget across frames rather than reallocating.
func (rt *RenderTarget) Clear() {
	for i := 3; i < len(rt.Color); i += 4 {
		rt.Color[i-3] = 0
		rt.Color[i-2] = 0
		rt.Color[i-1] = 0
		rt.Color[i] = 255
	}
	for i := range rt.Depth {
		rt.Depth[i] = math.Inf(1)
	}
}

// offset returns the byte index of pixel (x,y) in Color.
func (rt *RenderTarget) offset(x, y int) int {
	return (y*rt.Width + x) * 4
}

// SetPixel writes an opaque RGBA pixel. No bounds checking: callers
// (the rasterizer) are expected to have already clamped to the surface.
func (rt *RenderTarget) SetPixel(x, y int, r, g, b, a byte) {
	o := rt.offset(x, y)
	rt.Color[o] = r
	rt.Color[o+1] = g
	rt.Color[o+2] = b
	rt.Color[o+3] = a
}

// DepthAt returns the stored depth at (x,y).
func (rt *RenderTarget) DepthAt(x, y int) float64 {
	return rt.Depth[y*rt.Width+x]
}

// SetDepthAt stores a depth value at (x,y).
func (rt *RenderTarget) SetDepthAt(x, y int, z float64) {
	rt.Depth[y*rt.Width+x] = z
}
