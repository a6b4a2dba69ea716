package math3d

import "testing"

func TestVec3NormalizeFallback(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"zero", Zero3(), Vec3{1, 0, 0}},
		{"tiny x largest", V3(1e-9, 0, 0), Vec3{1, 0, 0}},
		{"tiny y largest", V3(0, 1e-9, 0), Vec3{0, 1, 0}},
		{"tiny z largest", V3(0, 0, 1e-9), Vec3{0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			if got != tt.want {
				t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestVec3NormalizeUnitLength(t *testing.T) {
	v := V3(3, 4, 0).Normalize()
	if got := v.Len(); got < 0.999999 || got > 1.000001 {
		t.Errorf("Len() = %v, want 1", got)
	}
}
