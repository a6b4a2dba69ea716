// Package mesh holds the Object/Face shape shared by every mesh source
// (OBJ text, glTF/GLB binaries) and consumed by the scene driver. It is
// kept separate from pkg/scene so loaders can depend on the mesh shape
// without depending on the scene/camera/renderer machinery that builds on
// top of it.
package mesh

import (
	"github.com/kvraster/raster3d/pkg/math3d"
	"github.com/kvraster/raster3d/pkg/render"
)

// Face is nine signed indices into the owning Object's vertex, normal,
// and UV arrays: (v0,v1,v2, n0,n1,n2, t0,t1,t2). An index of -1 means the
// attribute is absent; readers must tolerate a missing normal or UV.
type Face struct {
	V0, V1, V2    int
	N0, N1, N2    int
	UV0, UV1, UV2 int
}

// Object owns one mesh and its texture. Faces reference the vertex/
// normal/UV arrays by index, not by pointer, so an Object is a flat,
// cycle-free value.
type Object struct {
	Vertices []math3d.Vec4
	Normals  []math3d.Vec4
	UVs      []math3d.Vec2
	Faces    []Face
	Texture  *render.Texture
}

// New returns an empty Object.
func New() *Object {
	return &Object{}
}
