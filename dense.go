package lazydp

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Dense is a rows x cols float32 matrix stored contiguously in row-major
// order. Components either fill a caller-visible region in place or return a
// freshly allocated matrix; no two parallel workers ever write overlapping
// regions of the same matrix.
type Dense struct {
	Rows int
	Cols int
	Data []float32 // len == Rows*Cols
}

// NewDense allocates a zeroed rows x cols matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{Rows: rows, Cols: cols, Data: make([]float32, rows*cols)}
}

// Row returns row i as a slice aliasing the underlying storage. The slice is
// capped at the row boundary, so appends cannot spill into the next row.
func (d *Dense) Row(i int) []float32 {
	start := i * d.Cols
	end := start + d.Cols
	return d.Data[start:end:end]
}

// At returns the element at row i, column j.
func (d *Dense) At(i, j int) float32 { return d.Data[i*d.Cols+j] }

// Clone returns a deep copy of the matrix.
func (d *Dense) Clone() *Dense {
	out := NewDense(d.Rows, d.Cols)
	copy(out.Data, d.Data)
	return out
}

// Checksum returns an xxHash64 digest of the matrix shape and the raw bits
// of its contents. Two matrices hash equal iff they have the same shape and
// bit-identical entries. Used to verify deterministic replay and reduction
// strategy parity.
func (d *Dense) Checksum() uint64 {
	h := xxhash.New()

	var hdr [16]byte
	binary.LittleEndian.PutUint64(hdr[0:8], uint64(d.Rows))
	binary.LittleEndian.PutUint64(hdr[8:16], uint64(d.Cols))
	_, _ = h.Write(hdr[:])

	buf := make([]byte, 0, 4096)
	for _, v := range d.Data {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		if len(buf) == cap(buf) {
			_, _ = h.Write(buf)
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
