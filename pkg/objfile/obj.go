// Package objfile parses the wavefront-OBJ subset consumed by the
// rasterizer: vertices, normals, texture coordinates, and triangle or
// quad faces. It tolerates malformed input per the loader's error policy
// instead of failing the whole parse.
package objfile

import (
	"strconv"
	"strings"

	"github.com/kvraster/raster3d/pkg/math3d"
	"github.com/kvraster/raster3d/pkg/mesh"
)

// Parse reads OBJ text and returns the Object it describes. Malformed
// numeric tokens default to 0; lines with too few fields are skipped;
// unrecognized prefixes are silently ignored. Parse never fails — a
// malformed scene renders as missing geometry, not an error.
func Parse(text string) (*mesh.Object, error) {
	obj := mesh.New()

	for _, line := range strings.Split(text, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		prefix, data := parts[0], parts[1:]
		switch prefix {
		case "v":
			if len(data) < 3 {
				continue
			}
			obj.Vertices = append(obj.Vertices, parseVertex4(data))
		case "vn":
			if len(data) < 3 {
				continue
			}
			obj.Normals = append(obj.Normals, parseVertex4(data))
		case "vt":
			if len(data) < 2 {
				continue
			}
			obj.UVs = append(obj.UVs, parsePoint(data))
		case "f":
			if len(data) != 3 && len(data) != 4 {
				continue
			}
			appendFaces(obj, data)
		default:
			// "#", "o", "g", "s", "mtllib", "usemtl", and anything else:
			// not part of the geometry contract.
		}
	}

	return obj, nil
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func parseVertex4(data []string) math3d.Vec4 {
	return math3d.V4(parseFloat(data[0]), parseFloat(data[1]), parseFloat(data[2]), 1)
}

func parsePoint(data []string) math3d.Vec2 {
	return math3d.V2(parseFloat(data[0]), parseFloat(data[1]))
}

// faceIndex is one slash-separated "v/vt/vn" group from an f line. A
// missing or unparseable component is 0, which after the OBJ-to-zero-based
// subtraction below becomes -1 (absent), matching a genuinely absent index.
type faceIndex struct {
	v, vt, vn int
}

func parseFaceIndex(s string) faceIndex {
	fields := strings.Split(s, "/")
	var fi faceIndex
	if len(fields) > 0 {
		fi.v = parseInt(fields[0])
	}
	if len(fields) > 1 {
		fi.vt = parseInt(fields[1])
	}
	if len(fields) > 2 {
		fi.vn = parseInt(fields[2])
	}
	return fi
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// appendFaces converts one "f" line's 3 or 4 index groups into one or two
// triangles. A quad a,b,c,d splits as (a,b,d) and (b,c,d), the same
// diagonal the reference loader uses.
func appendFaces(obj *mesh.Object, data []string) {
	idx := make([]faceIndex, len(data))
	for i, s := range data {
		idx[i] = parseFaceIndex(s)
	}

	if len(idx) == 4 {
		obj.Faces = append(obj.Faces, faceFrom(idx[0], idx[1], idx[3]))
		obj.Faces = append(obj.Faces, faceFrom(idx[1], idx[2], idx[3]))
		return
	}
	obj.Faces = append(obj.Faces, faceFrom(idx[0], idx[1], idx[2]))
}

func faceFrom(a, b, c faceIndex) mesh.Face {
	return mesh.Face{
		V0: a.v - 1, V1: b.v - 1, V2: c.v - 1,
		N0: a.vn - 1, N1: b.vn - 1, N2: c.vn - 1,
		UV0: a.vt - 1, UV1: b.vt - 1, UV2: c.vt - 1,
	}
}
