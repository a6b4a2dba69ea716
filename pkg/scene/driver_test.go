package scene

import (
	"testing"

	"github.com/kvraster/raster3d/pkg/math3d"
	"github.com/kvraster/raster3d/pkg/mesh"
	"github.com/kvraster/raster3d/pkg/render"
)

// A face vertex index outside the clip-space vertex range must not panic:
// objfile turns an unparseable "f" token into index -1, and a malformed
// scene is supposed to render as missing geometry, never abort.
func TestDrawSkipsFaceWithOutOfRangeVertexIndex(t *testing.T) {
	obj := mesh.New()
	obj.Vertices = []math3d.Vec4{
		math3d.V4(0, 0, 0, 1),
		math3d.V4(1, 0, 0, 1),
		math3d.V4(0, 1, 0, 1),
	}
	obj.Faces = []mesh.Face{
		{V0: -1, V1: 1, V2: 2, N0: -1, N1: -1, N2: -1, UV0: -1, UV1: -1, UV2: -1},
	}

	s := NewScene()
	s.AddObject(obj)
	s.Camera.Position = math3d.V3(0, 0, 5)
	s.Camera.Target = math3d.Zero3()

	target := render.NewRenderTarget(8, 8)

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("Draw panicked on out-of-range vertex index: %v", r)
		}
	}()
	s.Draw(target)
}
