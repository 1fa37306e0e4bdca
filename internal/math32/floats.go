// Package math32 provides the float32 row kernels shared by the sampler and
// the coalescing strategies.
package math32

// AddInPlace adds src to dst element-wise. The slices must have the same
// length.
func AddInPlace(dst, src []float32) {
	if len(src) == 0 {
		return
	}
	dst = dst[:len(src)]
	for i := range src {
		dst[i] += src[i]
	}
}

// ScaleInPlace multiplies every element of a by scalar.
func ScaleInPlace(a []float32, scalar float32) {
	for i := range a {
		a[i] *= scalar
	}
}
