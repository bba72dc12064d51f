package gpm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// weights holds the two matrices of the derivation model.
type weights struct {
	embedding  *mat.Dense // inputSize x embeddingWidth
	projection *mat.Dense // contextWidth*embeddingWidth x outputSize
}

// initMatrix generates a rows x cols matrix of seeded pseudo-random values.
//
// Cells are standard normal draws scaled by the Glorot limit
// sqrt(2 / (rows + cols)), filled in row-major order with one draw per cell.
// The result is a pure function of (seed, rows, cols).
func initMatrix(seed uint32, rows, cols int) *mat.Dense {
	limit := math.Sqrt(2 / float64(rows+cols))
	src := newNormalSource(seed)

	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = limit * src.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}

// newWeights generates the embedding and projection matrices for one seed.
// The embedding matrix uses the seed directly and the projection matrix uses
// the squared seed, so the two are decorrelated while both remain pure
// functions of the master key.
func newWeights(seed uint32, inputSize, embeddingWidth, contextWidth, outputSize int) *weights {
	return &weights{
		embedding:  initMatrix(seed, inputSize, embeddingWidth),
		projection: initMatrix(projectionSeed(seed), contextWidth*embeddingWidth, outputSize),
	}
}
