package math3d

import "testing"

func TestVec4Add(t *testing.T) {
	a := V4(10, 20, 30, 40)
	b := V4(1.1, 2.2, 3.3, 4.4)
	got := a.Add(b)
	want := V4(11.1, 22.2, 33.3, 44.4)
	if !approxVec4(got, want, 1e-9) {
		t.Errorf("Add = %+v, want %+v", got, want)
	}
}

func TestVec4Sub(t *testing.T) {
	a := V4(11.1, 22.2, 33.3, 44.4)
	b := V4(1.1, 2.2, 3.3, 4.4)
	got := a.Sub(b)
	want := V4(10, 20, 30, 40)
	if !approxVec4(got, want, 1e-9) {
		t.Errorf("Sub = %+v, want %+v", got, want)
	}
}

func TestVec4Scale(t *testing.T) {
	a := V4(1.1, 2.2, 3.3, 4.4)
	got := a.Scale(10)
	want := V4(11, 22, 33, 44)
	if !approxVec4(got, want, 1e-9) {
		t.Errorf("Scale = %+v, want %+v", got, want)
	}
}

func TestVec4Dot(t *testing.T) {
	a := V4(2, 3, 4, 5)
	b := V4(20, 30, 40, 50)
	got := a.Dot(b)
	want := 40.0 + 90.0 + 160.0 + 250.0
	if got != want {
		t.Errorf("Dot = %v, want %v", got, want)
	}
}

func TestVec4NormalizeUnitLength(t *testing.T) {
	v := V4(1, 2, 3, 4).Normalize()
	if got := v.Len(); got < 0.999999 || got > 1.000001 {
		t.Errorf("Len() = %v, want 1", got)
	}
}

func TestVec4NormalizeZero(t *testing.T) {
	if got := (Vec4{}).Normalize(); got != (Vec4{}) {
		t.Errorf("Normalize(zero) = %+v, want zero", got)
	}
}

func TestVec4CrossForcesWToOne(t *testing.T) {
	a := V4(1, 0, 0, 1)
	b := V4(0, 1, 0, 1)
	got := a.Cross(b)
	want := V4(0, 0, 1, 1)
	if !approxVec4(got, want, 1e-9) {
		t.Errorf("Cross = %+v, want %+v", got, want)
	}
}

// Lerp uses the convention t=1 keeps a, t=0 keeps b.
func TestVec4LerpEndpoints(t *testing.T) {
	a := V4(1, 2, 3, 1)
	b := V4(5, 6, 7, 1)

	if got := a.Lerp(b, 1); !approxVec4(got, a, 1e-9) {
		t.Errorf("Lerp(t=1) = %+v, want a=%+v", got, a)
	}
	if got := a.Lerp(b, 0); !approxVec4(got, b, 1e-9) {
		t.Errorf("Lerp(t=0) = %+v, want b=%+v", got, b)
	}
}

func TestVec4LerpMidpoint(t *testing.T) {
	a := V4(0, 0, 0, 1)
	b := V4(10, 20, 30, 1)
	got := a.Lerp(b, 0.5)
	want := V4(5, 10, 15, 1)
	if !approxVec4(got, want, 1e-9) {
		t.Errorf("Lerp(0.5) = %+v, want %+v", got, want)
	}
}
