package math3d

import "math"

// Mat4 is a 4x4 matrix stored row-major, indexed [row][col]. Vectors are
// row vectors and compose as v' = v · M: applying M1 then M2 to v is
// v * (M1 * M2), the same left-to-right order the transforms are written
// in.
//
// | m00 m01 m02 m03 |
// | m10 m11 m12 m13 |
// | m20 m21 m22 m23 |
// | m30 m31 m32 m33 |
type Mat4 [4][4]float64

// Zero returns the all-zero matrix.
func Zero() Mat4 {
	return Mat4{}
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix that translates by v, to be applied via
// v' = v · M (i.e. M's fourth row carries the offset).
func Translation(v Vec3) Mat4 {
	m := Identity()
	m[3][0], m[3][1], m[3][2] = v.X, v.Y, v.Z
	return m
}

// RotateX returns a matrix rotating angle radians around the X axis.
func RotateX(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateY returns a matrix rotating angle radians around the Y axis.
func RotateY(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

// RotateZ returns a matrix rotating angle radians around the Z axis.
func RotateZ(angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	return Mat4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Projection returns a perspective projection matrix. fov is the vertical
// field of view in radians, aspect is width/height, near and far are the
// (positive) clip distances. View-space points with w=1 land in clip
// space with the visible region |x|≤w, |y|≤w, 0≤z≤w; Y is negated so
// that, under the driver's viewport transform (row = y/w·h/2 + h/2),
// positive view-space Y maps to the top of the image.
func Projection(fov, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fov/2)
	invR := 1.0 / (near - far)
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, -f, 0, 0},
		{0, 0, far / (far - near), 1},
		{0, 0, near * far * invR, 0},
	}
}

// LookAtRotation returns the rotation-only basis that orients view space
// so the eye→target direction maps to -Z and world up broadly maps to
// +Y, built from an Euler decomposition of the forward vector rather than
// the canonical cross-product frame: yaw = atan2(fx,fz), pitch =
// asin(fy/|f|), roll = 0. Because it carries no translation, it can be
// applied to normals to rotate them into view space without moving them.
func LookAtRotation(eye, target Vec3) Mat4 {
	forward := target.Sub(eye)
	focus := forward.Len()

	ax := -math.Atan2(forward.X, forward.Z)
	ay := math.Asin(forward.Y / focus)
	az := 0.0

	sinx, cosx := math.Sin(ax), math.Cos(ax)
	siny, cosy := math.Sin(ay), math.Cos(ay)
	sinz, cosz := math.Sin(az), math.Cos(az)

	m := Identity()
	m[0][0] = sinx*siny*sinz + cosx*cosz
	m[1][0] = cosy * sinz
	m[2][0] = sinx*cosz - cosx*siny*sinz
	m[0][1] = sinx*siny*cosz - cosx*sinz
	m[1][1] = cosy * cosz
	m[2][1] = -cosx*siny*cosz - sinx*sinz
	m[0][2] = -sinx * cosy
	m[1][2] = siny
	m[2][2] = cosx * cosy
	return m
}

// LookAt returns LookAtRotation composed with a translation by -eye,
// applied through the rotated basis (not a separate translation matrix):
// the pivot is folded into the fourth row so a single matrix does both.
func LookAt(eye, target Vec3) Mat4 {
	m := LookAtRotation(eye, target)
	pivot := eye.Negate()

	m[3][0] = m[0][0]*pivot.X + m[1][0]*pivot.Y + m[2][0]*pivot.Z + m[3][0]
	m[3][1] = m[0][1]*pivot.X + m[1][1]*pivot.Y + m[2][1]*pivot.Z + m[3][1]
	m[3][2] = m[0][2]*pivot.X + m[1][2]*pivot.Y + m[2][2]*pivot.Z + m[3][2]
	return m
}

// TranslateXYZ post-composes a translation by (x,y,z) onto m: the result
// applies m first and then the translation, i.e. m · Translation(x,y,z).
func (m Mat4) TranslateXYZ(x, y, z float64) Mat4 {
	return m.Mul(Translation(V3(x, y, z)))
}

// Mul returns the standard matrix product a*b: applying the result to a
// row vector is equivalent to applying a then b, i.e. v*(a*b) = (v*a)*b.
//
//nolint:st1016 // a*b naming convention is clearer for matrix multiplication
func (a Mat4) Mul(b Mat4) Mat4 {
	var res Mat4
	for row := range 4 {
		for col := range 4 {
			var s float64
			for k := range 4 {
				s += a[row][k] * b[k][col]
			}
			res[row][col] = s
		}
	}
	return res
}

// MulVec4 returns the row-vector product v·m.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	return v.MulMat4(m)
}

// MulVec3Dir transforms a direction (w=0, no translation applied) by the
// rotation/scale part of m — used to carry normals into view space via a
// LookAtRotation matrix.
func (m Mat4) MulVec3Dir(v Vec3) Vec3 {
	return Vec3{
		v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0],
		v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1],
		v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2],
	}
}
