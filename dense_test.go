package lazydp

import "testing"

func TestDenseRowAliasesStorage(t *testing.T) {
	d := NewDense(3, 4)
	row := d.Row(1)
	if len(row) != 4 {
		t.Fatalf("row length %d, want 4", len(row))
	}
	row[2] = 7
	if d.At(1, 2) != 7 {
		t.Fatal("writing through Row did not reach the backing array")
	}
}

func TestDenseRowCapped(t *testing.T) {
	d := NewDense(2, 3)
	row := d.Row(0)
	if cap(row) != 3 {
		t.Fatalf("row capacity %d, want 3", cap(row))
	}
	// Appending must reallocate, not spill into row 1.
	row = append(row, 99)
	_ = row
	if d.At(1, 0) != 0 {
		t.Fatal("append through Row clobbered the next row")
	}
}

func TestDenseClone(t *testing.T) {
	d := NewDense(2, 2)
	d.Data[3] = 5
	c := d.Clone()
	c.Data[0] = 9
	if d.Data[0] != 0 {
		t.Fatal("Clone shares storage with the original")
	}
	if c.At(1, 1) != 5 {
		t.Fatal("Clone dropped contents")
	}
}

func TestDenseChecksum(t *testing.T) {
	rng := newTestRNG(t)

	a := NewDense(8, 16)
	for i := range a.Data {
		a.Data[i] = float32(rng.NormFloat64())
	}
	b := a.Clone()
	if a.Checksum() != b.Checksum() {
		t.Fatal("identical matrices hash differently")
	}

	b.Data[37] += 1
	if a.Checksum() == b.Checksum() {
		t.Fatal("single-entry change not reflected in checksum")
	}

	// Same bits, different shape.
	c := &Dense{Rows: 16, Cols: 8, Data: a.Data}
	if a.Checksum() == c.Checksum() {
		t.Fatal("shape not reflected in checksum")
	}
}

func TestDenseChecksumEmpty(t *testing.T) {
	if NewDense(0, 4).Checksum() == NewDense(4, 0).Checksum() {
		t.Fatal("empty matrices of different shape hash equal")
	}
}
