package render

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG decoder for LoadTexture
	_ "image/png"  // register PNG decoder for LoadTexture
	"math"
	"math/bits"
	"os"
)

// Color is an RGBA8 sample, e.g. the result of a Texture lookup.
type Color struct {
	R, G, B, A byte
}

// Texture is an RGBA8 image whose dimensions must be powers of two: the
// sampler relies on a bitmask wrap (`& (dim-1)`) instead of a modulo.
type Texture struct {
	Width  int
	Height int
	Pixels []byte // row-major RGBA8, len == Width*Height*4
}

// NewTexture validates dims and wraps pixels (row-major RGBA8, top-to-
// bottom) into a Texture. Non-power-of-two dimensions are a caller
// contract violation per the embedder interface; NewTexture rejects them
// rather than silently producing a sampler that wraps incorrectly.
func NewTexture(width, height int, pixels []byte) (*Texture, error) {
	if width <= 0 || height <= 0 || bits.OnesCount(uint(width)) != 1 || bits.OnesCount(uint(height)) != 1 {
		return nil, fmt.Errorf("texture dimensions must be powers of two, got %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("texture pixel buffer: got %d bytes, want %d", len(pixels), width*height*4)
	}
	return &Texture{Width: width, Height: height, Pixels: pixels}, nil
}

// LoadTexture decodes an image file into a Texture, for use by embedders
// (the CLI driver) that load texture assets from disk; the core pipeline
// never touches the filesystem.
func LoadTexture(path string) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open texture: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode texture: %w", err)
	}
	return TextureFromImage(img)
}

// TextureFromImage converts a decoded stdlib image into a Texture, for
// loaders (the CLI's file loader, the glTF embedded-image loader) that
// obtain an image.Image from a source other than a texture byte buffer.
func TextureFromImage(img image.Image) (*Texture, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, w*h*4)
	for y := range h {
		for x := range w {
			r, g, b, a := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			o := (y*w + x) * 4
			pixels[o] = byte(r >> 8)
			pixels[o+1] = byte(g >> 8)
			pixels[o+2] = byte(b >> 8)
			pixels[o+3] = byte(a >> 8)
		}
	}
	return NewTexture(w, h, pixels)
}

// Sample looks up the nearest texel for (u,v), wrapping via a power-of-two
// bitmask: iu = floor(u*Width) & (Width-1), iv = floor(v*Height) &
// (Height-1). Negative u or v wrap correctly under the same mask.
func (t *Texture) Sample(u, v float64) Color {
	iu := int(math.Floor(u*float64(t.Width))) & (t.Width - 1)
	iv := int(math.Floor(v*float64(t.Height))) & (t.Height - 1)
	o := (iv*t.Width + iu) * 4
	return Color{t.Pixels[o], t.Pixels[o+1], t.Pixels[o+2], t.Pixels[o+3]}
}
