package lazydp

import (
	"fmt"

	lazydperrors "github.com/VIA-Research/LazyDP/errors"
)

// COO is a sparse matrix in coordinate form with logical shape
// (NumEmbeddings, Dim): Indices[i] names the logical row that value row i
// contributes to. Indices need not be sorted or unique until the matrix has
// been coalesced.
//
// Once marked coalesced, the indices are ascending and pairwise distinct,
// and the value row for index k equals the sum of all value rows that mapped
// to k in the pre-coalesced form.
type COO struct {
	NumEmbeddings int // logical row count
	Dim           int // width of every value row
	Indices       []int64
	Values        *Dense

	coalesced bool
}

// NewCOO assembles a sparse matrix after validating its layout. Shape
// disagreements between indices and values, a values width that differs from
// dim, and indices outside [0, numEmbeddings) are all rejected here, before
// the matrix can reach any kernel.
func NewCOO(numEmbeddings, dim int, indices []int64, values *Dense) (*COO, error) {
	m := &COO{
		NumEmbeddings: numEmbeddings,
		Dim:           dim,
		Indices:       indices,
		Values:        values,
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// IsCoalesced reports whether the matrix is marked coalesced.
func (m *COO) IsCoalesced() bool { return m.coalesced }

// NumRows returns the number of stored (possibly duplicate) value rows.
func (m *COO) NumRows() int { return len(m.Indices) }

// validate checks the full layout contract. Called by NewCOO and again by
// Coalesce, since the fields are exported and may have been mutated.
func (m *COO) validate() error {
	if m.Dim < 1 {
		return lazydperrors.ErrInvalidDim
	}
	if m.NumEmbeddings < 0 {
		return fmt.Errorf("%w: negative numEmbeddings %d", lazydperrors.ErrInvalidLayout, m.NumEmbeddings)
	}
	if m.Values == nil {
		return fmt.Errorf("%w: nil values", lazydperrors.ErrInvalidLayout)
	}
	if m.Values.Cols != m.Dim {
		return fmt.Errorf("%w: values width %d, matrix dim %d",
			lazydperrors.ErrShapeMismatch, m.Values.Cols, m.Dim)
	}
	if len(m.Indices) != m.Values.Rows {
		return fmt.Errorf("%w: %d indices, %d value rows",
			lazydperrors.ErrShapeMismatch, len(m.Indices), m.Values.Rows)
	}
	if len(m.Values.Data) != m.Values.Rows*m.Values.Cols {
		return fmt.Errorf("%w: values storage holds %d elements, want %d",
			lazydperrors.ErrInvalidLayout, len(m.Values.Data), m.Values.Rows*m.Values.Cols)
	}
	for _, ix := range m.Indices {
		if ix < 0 || ix >= int64(m.NumEmbeddings) {
			return fmt.Errorf("%w: index %d, numEmbeddings %d",
				lazydperrors.ErrIndexOutOfRange, ix, m.NumEmbeddings)
		}
	}
	return nil
}
