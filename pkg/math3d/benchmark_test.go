package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translation(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translation(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkMat4MulVec3Dir(b *testing.B) {
	m := RotateY(0.5)
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = m.MulVec3Dir(v)
	}
}

func BenchmarkVec3Normalize(b *testing.B) {
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = v.Normalize()
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2)
	}
}

func BenchmarkVec3Dot(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Dot(v2)
	}
}

func BenchmarkProjection(b *testing.B) {
	for b.Loop() {
		_ = Projection(1.0472, 1.333, 1, 1000)
	}
}

func BenchmarkLookAt(b *testing.B) {
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)

	for b.Loop() {
		_ = LookAt(eye, target)
	}
}

func BenchmarkViewProjection(b *testing.B) {
	// Simulate building the per-frame MVP matrix like the scene driver does.
	eye := V3(0, 0, 10)
	target := V3(0, 0, 0)
	view := LookAt(eye, target)
	proj := Projection(1.0472, 1.333, 1, 1000)

	for b.Loop() {
		_ = Identity().Mul(view).Mul(proj)
	}
}
