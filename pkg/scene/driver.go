package scene

import (
	"math"

	"github.com/kvraster/raster3d/pkg/math3d"
	"github.com/kvraster/raster3d/pkg/mesh"
	"github.com/kvraster/raster3d/pkg/render"
)

// clipVertex is one object vertex after MVP transform plus its matcap UV,
// in the shape render.VertexAttr needs for clipping and rasterization.
type clipVertex = render.VertexAttr

// Draw runs one frame of the transform-clip-rasterize pipeline into
// target, per object and per face:
//
//  1. build view, view-rotation, and projection matrices from the camera,
//     overriding the camera's advisory aspect ratio with the target's;
//  2. transform vertices into clip space and normals into view space;
//  3. derive each face's three clip-space attributes, with (u,v) taken
//     from the view-space normal mapped matcap-style, not from the
//     object's declared UVs;
//  4. quick-reject faces that are trivially offscreen, clip the rest
//     against the six canonical planes, fan-triangulate, and rasterize.
func (s *Scene) Draw(target *render.RenderTarget) {
	aspect := float64(target.Width) / float64(target.Height)
	cam := s.Camera
	cam.AspectRatio = aspect

	view := math3d.LookAt(cam.Position, cam.Target)
	viewRot := math3d.LookAtRotation(cam.Position, cam.Target)
	proj := math3d.Projection(cam.FieldOfView*math.Pi/180, aspect, 1, 1000)
	mvp := math3d.Identity().Mul(view).Mul(proj)

	for _, obj := range s.Objects {
		drawObject(obj, mvp, viewRot, target)
	}
}

func drawObject(obj *mesh.Object, mvp, viewRot math3d.Mat4, target *render.RenderTarget) {
	clipSpace := make([]math3d.Vec4, len(obj.Vertices))
	for i, v := range obj.Vertices {
		clipSpace[i] = v.MulMat4(mvp)
	}
	viewNormals := make([]math3d.Vec3, len(obj.Normals))
	for i, n := range obj.Normals {
		viewNormals[i] = viewRot.MulVec3Dir(n.Vec3()).Normalize()
	}

	for _, f := range obj.Faces {
		tri, ok := faceAttrs(obj, f, clipSpace, viewNormals)
		if !ok || quickRejectsAllAxes(tri) {
			continue
		}

		clipped := render.ClipPolygon(tri[:])
		if len(clipped) == 0 {
			continue
		}

		for i := 1; i < len(clipped)-1; i++ {
			v0 := toScreen(clipped[0], target)
			v1 := toScreen(clipped[i], target)
			v2 := toScreen(clipped[i+1], target)
			render.Rasterize(v0, v1, v2, obj.Texture, target)
		}
	}
}

// faceAttrs builds the three clip-space attributes for a face, with (u,v)
// from the matcap mapping of the view-space normal: u = nx/-2 + 0.5,
// v = ny/-2 + 0.5. A face index of -1 (missing normal) falls back to the
// same degenerate-vector basis axis Vector3.Normalize uses. Reports false,
// skipping the face, if any vertex index is out of range — a malformed OBJ
// line can produce one via objfile's zero-defaults-to-(-1) convention.
func faceAttrs(obj *mesh.Object, f mesh.Face, clipSpace []math3d.Vec4, viewNormals []math3d.Vec3) ([3]clipVertex, bool) {
	vIdx := [3]int{f.V0, f.V1, f.V2}
	nIdx := [3]int{f.N0, f.N1, f.N2}

	var tri [3]clipVertex
	for i := range 3 {
		idx := vIdx[i]
		if idx < 0 || idx >= len(clipSpace) {
			return tri, false
		}
		p := clipSpace[idx]
		n := math3d.Vec3{}
		if nidx := nIdx[i]; nidx >= 0 && nidx < len(viewNormals) {
			n = viewNormals[nidx]
		}
		n = n.Normalize()
		tri[i] = clipVertex{
			X: p.X, Y: p.Y, Z: p.Z, W: p.W,
			U: n.X/-2 + 0.5,
			V: n.Y/-2 + 0.5,
		}
	}
	return tri, true
}

// quickRejectsAllAxes reports whether every vertex of tri fails both the x
// and y frustum sign tests at once, in which case the whole face can be
// skipped before the more expensive clip.
func quickRejectsAllAxes(tri [3]clipVertex) bool {
	for _, v := range tri {
		failsX := math.Abs(v.X) > math.Abs(v.W)
		failsY := math.Abs(v.Y) > math.Abs(v.W)
		if !(failsX && failsY) {
			return false
		}
	}
	return true
}

// toScreen performs the homogeneous divide and viewport transform,
// resetting w to 1 and leaving (u,v) untouched — the reference
// implementation does not divide UV by w.
func toScreen(v clipVertex, target *render.RenderTarget) clipVertex {
	invW := 1 / v.W
	return clipVertex{
		X: v.X*invW*(float64(target.Width)/2) + float64(target.Width)/2,
		Y: v.Y*invW*(float64(target.Height)/2) + float64(target.Height)/2,
		Z: v.Z * invW,
		W: 1,
		U: v.U,
		V: v.V,
	}
}
