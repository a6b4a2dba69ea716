package scene

import "github.com/kvraster/raster3d/pkg/mesh"

// Scene holds every Object to be drawn and the Camera viewing them.
type Scene struct {
	Objects []*mesh.Object
	Camera  Camera
}

// NewScene returns an empty Scene with a default camera.
func NewScene() *Scene {
	return &Scene{Camera: NewCamera()}
}

// AddObject attaches obj to the scene; ownership passes to the Scene.
func (s *Scene) AddObject(obj *mesh.Object) {
	s.Objects = append(s.Objects, obj)
}
