package gpm

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestInitMatrix_Dims(t *testing.T) {
	m := initMatrix(42, 7, 3)

	rows, cols := m.Dims()
	if rows != 7 || cols != 3 {
		t.Errorf("Dims() = (%d, %d), want (7, 3)", rows, cols)
	}
}

func TestInitMatrix_Deterministic(t *testing.T) {
	a := initMatrix(42, 16, 8)
	b := initMatrix(42, 16, 8)

	if !mat.Equal(a, b) {
		t.Error("same seed and dims should produce identical matrices")
	}
}

func TestInitMatrix_SeedSensitivity(t *testing.T) {
	a := initMatrix(1, 16, 8)
	b := initMatrix(2, 16, 8)

	if mat.Equal(a, b) {
		t.Error("different seeds should produce different matrices")
	}
}

func TestInitMatrix_RowMajorDrawOrder(t *testing.T) {
	// Cells are the scaled draws of the normal source, row by row.
	const rows, cols = 2, 3
	m := initMatrix(9, rows, cols)

	limit := math.Sqrt(2 / float64(rows+cols))
	src := newNormalSource(9)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			want := limit * src.NormFloat64()
			if got := m.At(i, j); got != want {
				t.Errorf("At(%d, %d) = %v, want %v", i, j, got, want)
			}
		}
	}
}

func TestNewWeights_Dims(t *testing.T) {
	w := newWeights(42, 128, 16, 4, 62)

	rows, cols := w.embedding.Dims()
	if rows != 128 || cols != 16 {
		t.Errorf("embedding Dims() = (%d, %d), want (128, 16)", rows, cols)
	}

	rows, cols = w.projection.Dims()
	if rows != 4*16 || cols != 62 {
		t.Errorf("projection Dims() = (%d, %d), want (%d, 62)", rows, cols, 4*16)
	}
}

func TestNewWeights_Decorrelated(t *testing.T) {
	// The projection seed is the squared seed, so the two matrices never
	// start from the same stream (for seeds where s != s*s).
	a := initMatrix(3, 8, 8)
	b := initMatrix(projectionSeed(3), 8, 8)

	if mat.Equal(a, b) {
		t.Error("embedding and projection streams should differ")
	}
}

func TestNewWeights_PureFunctionOfSeed(t *testing.T) {
	a := newWeights(77, 128, 8, 2, 36)
	b := newWeights(77, 128, 8, 2, 36)

	if !mat.Equal(a.embedding, b.embedding) {
		t.Error("embedding should be a pure function of the seed")
	}
	if !mat.Equal(a.projection, b.projection) {
		t.Error("projection should be a pure function of the seed")
	}
}
