// Package scene holds the camera and object graph and drives the
// transform-clip-rasterize pipeline once per frame.
package scene

import "github.com/kvraster/raster3d/pkg/math3d"

// Camera describes the eye that views the Scene. AspectRatio is
// advisory: Draw overrides it with the render target's actual width/height
// ratio every frame. FieldOfView is in degrees, matching the embedder
// interface's units; the driver converts to radians when building the
// projection matrix.
type Camera struct {
	Position    math3d.Vec3
	Target      math3d.Vec3
	FieldOfView float64
	AspectRatio float64
}

// NewCamera returns a Camera with a reasonable default field of view,
// placed at (0,0,5) and looking down -Z at the origin.
func NewCamera() Camera {
	return Camera{
		Position:    math3d.V3(0, 0, 5),
		Target:      math3d.Zero3(),
		FieldOfView: 60,
		AspectRatio: 1,
	}
}

// SetPosition moves the camera's eye.
func (c *Camera) SetPosition(x, y, z float64) {
	c.Position = math3d.V3(x, y, z)
}

// SetTarget moves the point the camera looks at.
func (c *Camera) SetTarget(x, y, z float64) {
	c.Target = math3d.V3(x, y, z)
}
