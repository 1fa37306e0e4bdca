package math32

import "testing"

func TestAddInPlace(t *testing.T) {
	dst := []float32{1, 2, 3, 4}
	AddInPlace(dst, []float32{10, 20, 30, 40})
	want := []float32{11, 22, 33, 44}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}
}

func TestAddInPlaceEmpty(t *testing.T) {
	AddInPlace(nil, nil) // must not panic
	dst := []float32{}
	AddInPlace(dst, []float32{})
}

func TestScaleInPlace(t *testing.T) {
	a := []float32{1, -2, 0.5, 0}
	ScaleInPlace(a, 4)
	want := []float32{4, -8, 2, 0}
	for i := range want {
		if a[i] != want[i] {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestScaleInPlaceEmpty(t *testing.T) {
	ScaleInPlace(nil, 3)
}
