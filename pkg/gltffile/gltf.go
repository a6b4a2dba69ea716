// Package gltffile loads glTF/GLB assets as a supplemental mesh format
// alongside the OBJ loader in pkg/objfile. It produces the same
// mesh.Object shape the rest of the pipeline consumes, so a caller can
// mix OBJ- and glTF-sourced objects in one Scene.
package gltffile

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"path/filepath"

	"github.com/qmuntal/gltf"

	"github.com/kvraster/raster3d/pkg/math3d"
	"github.com/kvraster/raster3d/pkg/render"
	"github.com/kvraster/raster3d/pkg/mesh"
)

// Load reads a glTF or GLB file at path and returns one Object per
// document, merging all of the document's mesh primitives into a single
// flat vertex/normal/UV/face set. If the document embeds a texture, it is
// decoded and attached; otherwise Texture is nil and the caller must
// supply one before rendering.
func Load(path string) (*mesh.Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	obj, err := build(doc)
	if err != nil {
		return nil, fmt.Errorf("build object from %q: %w", filepath.Base(path), err)
	}

	tex, err := firstEmbeddedTexture(doc)
	if err != nil {
		return nil, fmt.Errorf("decode embedded texture: %w", err)
	}
	obj.Texture = tex

	return obj, nil
}

func build(doc *gltf.Document) (*mesh.Object, error) {
	obj := mesh.New()

	for _, m := range doc.Meshes {
		if err := appendMesh(doc, m, obj); err != nil {
			return nil, fmt.Errorf("mesh %q: %w", m.Name, err)
		}
	}
	return obj, nil
}

// appendMesh flattens every triangle primitive of m into obj's vertex,
// normal, UV, and face arrays. Indices are offset by the arrays' current
// length so multiple primitives and meshes can share one Object.
func appendMesh(doc *gltf.Document, m *gltf.Mesh, obj *mesh.Object) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var normals []math3d.Vec3
		if normIdx, ok := prim.Attributes[gltf.NORMAL]; ok {
			normals, err = readVec3Accessor(doc, normIdx)
			if err != nil {
				return fmt.Errorf("read normals: %w", err)
			}
		}

		var uvs []math3d.Vec2
		if uvIdx, ok := prim.Attributes[gltf.TEXCOORD_0]; ok {
			uvs, err = readVec2Accessor(doc, uvIdx)
			if err != nil {
				return fmt.Errorf("read uvs: %w", err)
			}
		}

		baseV := len(obj.Vertices)
		baseN := len(obj.Normals)
		baseUV := len(obj.UVs)

		for _, p := range positions {
			obj.Vertices = append(obj.Vertices, math3d.V4FromV3(p, 1))
		}
		for _, n := range normals {
			obj.Normals = append(obj.Normals, math3d.V4FromV3(n, 1))
		}
		for _, uv := range uvs {
			// glTF's UV origin is top-left; flip V to the bottom-left
			// origin of OBJ texture coordinates, which pkg/objfile
			// stores unchanged.
			obj.UVs = append(obj.UVs, math3d.V2(uv.X, 1-uv.Y))
		}

		hasN := len(normals) > 0
		hasUV := len(uvs) > 0

		faceIdx := func(i int) (v, n, uv int) {
			v = baseV + i
			n, uv = -1, -1
			if hasN {
				n = baseN + i
			}
			if hasUV {
				uv = baseUV + i
			}
			return
		}

		indices, err := triangleIndices(doc, prim, len(positions))
		if err != nil {
			return err
		}
		for i := 0; i+2 < len(indices); i += 3 {
			// glTF's front faces are CCW. The last two indices are
			// swapped, so stored faces run opposite to the file's order
			// (pkg/objfile keeps OBJ faces in file order). The rasterizer
			// draws both windings, so the swap does not change which
			// faces are drawn.
			v0, n0, uv0 := faceIdx(indices[i])
			v1, n1, uv1 := faceIdx(indices[i+2])
			v2, n2, uv2 := faceIdx(indices[i+1])
			obj.Faces = append(obj.Faces, mesh.Face{
				V0: v0, V1: v1, V2: v2,
				N0: n0, N1: n1, N2: n2,
				UV0: uv0, UV1: uv1, UV2: uv2,
			})
		}
	}
	return nil
}

// triangleIndices returns the primitive's index buffer, or a synthesized
// 0..n-1 sequence when the primitive has no index accessor.
func triangleIndices(doc *gltf.Document, prim *gltf.Primitive, vertexCount int) ([]int, error) {
	if prim.Indices == nil {
		seq := make([]int, vertexCount)
		for i := range seq {
			seq[i] = i
		}
		return seq, nil
	}
	return readIndices(doc, *prim.Indices)
}

func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 {
		return nil, fmt.Errorf("expected VEC3, got %v", accessor.Type)
	}
	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][3]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC3")
	}
	result := make([]math3d.Vec3, len(floats))
	for i, f := range floats {
		result[i] = math3d.V3(float64(f[0]), float64(f[1]), float64(f[2]))
	}
	return result, nil
}

func readVec2Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec2, error) {
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec2 {
		return nil, fmt.Errorf("expected VEC2, got %v", accessor.Type)
	}
	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	floats, ok := data.([][2]float32)
	if !ok {
		return nil, fmt.Errorf("unexpected data type for VEC2")
	}
	result := make([]math3d.Vec2, len(floats))
	for i, f := range floats {
		result[i] = math3d.V2(float64(f[0]), float64(f[1]))
	}
	return result, nil
}

func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	accessor := doc.Accessors[accessorIdx]
	data, err := readAccessorData(doc, accessor)
	if err != nil {
		return nil, err
	}
	switch v := data.(type) {
	case []uint8:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint16:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	case []uint32:
		result := make([]int, len(v))
		for i, x := range v {
			result[i] = int(x)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("unexpected index type: %T", data)
	}
}

func readAccessorData(doc *gltf.Document, accessor *gltf.Accessor) (any, error) {
	if accessor.BufferView == nil {
		return nil, fmt.Errorf("accessor has no buffer view")
	}
	bufferView := doc.BufferViews[*accessor.BufferView]
	buffer := doc.Buffers[bufferView.Buffer]

	bufData := buffer.Data
	if bufData == nil {
		return nil, fmt.Errorf("buffer has no embedded data (external buffers not supported)")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	count := accessor.Count

	switch accessor.Type {
	case gltf.AccessorVec3:
		if stride == 0 {
			stride = 12
		}
		result := make([][3]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 3 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorVec2:
		if stride == 0 {
			stride = 8
		}
		result := make([][2]float32, count)
		for i := range count {
			offset := start + i*stride
			for j := range 2 {
				result[i][j] = readFloat32(bufData[offset+j*4:])
			}
		}
		return result, nil

	case gltf.AccessorScalar:
		if stride == 0 {
			switch accessor.ComponentType {
			case gltf.ComponentUbyte:
				stride = 1
			case gltf.ComponentUshort:
				stride = 2
			case gltf.ComponentUint:
				stride = 4
			}
		}
		switch accessor.ComponentType {
		case gltf.ComponentUbyte:
			result := make([]uint8, count)
			for i := range count {
				result[i] = bufData[start+i*stride]
			}
			return result, nil
		case gltf.ComponentUshort:
			result := make([]uint16, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint16(bufData[offset]) | uint16(bufData[offset+1])<<8
			}
			return result, nil
		case gltf.ComponentUint:
			result := make([]uint32, count)
			for i := range count {
				offset := start + i*stride
				result[i] = uint32(bufData[offset]) |
					uint32(bufData[offset+1])<<8 |
					uint32(bufData[offset+2])<<16 |
					uint32(bufData[offset+3])<<24
			}
			return result, nil
		}
	}

	return nil, fmt.Errorf("unsupported accessor type: %v / %v", accessor.Type, accessor.ComponentType)
}

func readFloat32(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

// firstEmbeddedTexture decodes the first buffer-embedded image in doc, if
// any, into a power-of-two render.Texture. Non-power-of-two embedded
// images are reported as an error per the texture contract.
func firstEmbeddedTexture(doc *gltf.Document) (*render.Texture, error) {
	for _, img := range doc.Images {
		if img.BufferView == nil {
			continue
		}
		bv := doc.BufferViews[*img.BufferView]
		buf := doc.Buffers[bv.Buffer]
		if buf.Data == nil {
			continue
		}
		raw := buf.Data[bv.ByteOffset : bv.ByteOffset+bv.ByteLength]

		decoded, _, err := image.Decode(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("decode image: %w", err)
		}
		return render.TextureFromImage(decoded)
	}
	return nil, nil
}
