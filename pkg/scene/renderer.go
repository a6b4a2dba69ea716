package scene

import (
	"fmt"

	"github.com/kvraster/raster3d/pkg/mesh"
	"github.com/kvraster/raster3d/pkg/objfile"
	"github.com/kvraster/raster3d/pkg/render"
)

// Renderer is the embedder-facing surface: construct one with a target
// size, feed it a camera and objects (each carrying its own texture),
// then call Render once per frame and read ColorBytes. There is no
// renderer-wide default texture.
type Renderer struct {
	target *render.RenderTarget
	scene  *Scene
}

// NewRenderer constructs a Renderer with the given surface dimensions.
func NewRenderer(width, height int) *Renderer {
	return &Renderer{
		target: render.NewRenderTarget(width, height),
		scene:  NewScene(),
	}
}

// Width returns the surface width in pixels.
func (r *Renderer) Width() int { return r.target.Width }

// Height returns the surface height in pixels.
func (r *Renderer) Height() int { return r.target.Height }

// ColorBytes returns the row-major RGBA8 color buffer, stable for the
// lifetime of the Renderer and overwritten in place by Render.
func (r *Renderer) ColorBytes() []byte { return r.target.Color }

// RenderTarget exposes the underlying surface directly, for presentation
// sinks (such as render.TermSink) that read the depth buffer or pixel
// data in ways the byte-slice ColorBytes accessor doesn't support.
func (r *Renderer) RenderTarget() *render.RenderTarget { return r.target }

// SetCameraPosition moves the camera's eye.
func (r *Renderer) SetCameraPosition(x, y, z float64) {
	r.scene.Camera.SetPosition(x, y, z)
}

// SetCameraTarget moves the point the camera looks at.
func (r *Renderer) SetCameraTarget(x, y, z float64) {
	r.scene.Camera.SetTarget(x, y, z)
}

// SetTexture replaces the texture of the most recently added object, or
// returns an error if w/h are not powers of two. With no object added
// yet there is nothing to replace, and SetTexture returns an error.
func (r *Renderer) SetTexture(pixels []byte, w, h int) error {
	if len(r.scene.Objects) == 0 {
		return fmt.Errorf("set texture: no object to attach it to")
	}
	tex, err := render.NewTexture(w, h, pixels)
	if err != nil {
		return err
	}
	r.scene.Objects[len(r.scene.Objects)-1].Texture = tex
	return nil
}

// AddObject parses objText as OBJ source and attaches it, with a texture
// built from texPixels, to the scene. Ownership of the mesh passes to the
// Renderer.
func (r *Renderer) AddObject(objText string, texPixels []byte, texW, texH int) error {
	obj, err := objfile.Parse(objText)
	if err != nil {
		return fmt.Errorf("add object: %w", err)
	}
	tex, err := render.NewTexture(texW, texH, texPixels)
	if err != nil {
		return fmt.Errorf("add object: %w", err)
	}
	obj.Texture = tex
	r.scene.AddObject(obj)
	return nil
}

// Render draws one frame into the color buffer, overwriting it entirely.
func (r *Renderer) Render() {
	r.target.Clear()
	r.scene.Draw(r.target)
}

// AddPreparedObject attaches an already-built Object, such as one produced
// by the glTF loader, bypassing OBJ text parsing. Supplemental mesh
// formats outside the OBJ contract use this instead of AddObject.
func (r *Renderer) AddPreparedObject(obj *mesh.Object) {
	r.scene.AddObject(obj)
}
