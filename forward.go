package gpm

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// forward runs the fixed numeric transform over a context matrix.
//
// Each context row becomes one probability distribution over the output
// vocabulary: the embedding rows of the context indices are concatenated in
// order, projected through the projection matrix without bias, squashed
// elementwise with tanh and normalized with a per-row softmax.
func forward(w *weights, contexts [][]int) *mat.Dense {
	_, embeddingWidth := w.embedding.Dims()
	_, outputSize := w.projection.Dims()
	contextWidth := len(contexts[0])

	// Embed and flatten: one row per password position.
	inputs := mat.NewDense(len(contexts), contextWidth*embeddingWidth, nil)
	for i, row := range contexts {
		for j, index := range row {
			vector := w.embedding.RawRowView(index)
			for k, v := range vector {
				inputs.Set(i, j*embeddingWidth+k, v)
			}
		}
	}

	// Project without bias, then bound with tanh.
	var logits mat.Dense
	logits.Mul(inputs, w.projection)
	logits.Apply(func(_, _ int, v float64) float64 { return math.Tanh(v) }, &logits)

	// Normalize each row into a probability distribution.
	probs := mat.NewDense(len(contexts), outputSize, nil)
	for i := range contexts {
		softmaxRow(probs, &logits, i)
	}
	return probs
}

// softmaxRow writes the softmax of logits row i into the same row of dst.
// The row maximum is subtracted before exponentiation and the summation runs
// left to right, keeping the arithmetic identical from run to run.
func softmaxRow(dst, logits *mat.Dense, i int) {
	_, cols := logits.Dims()

	max := logits.At(i, 0)
	for j := 1; j < cols; j++ {
		if logits.At(i, j) > max {
			max = logits.At(i, j)
		}
	}

	sum := 0.0
	for j := 0; j < cols; j++ {
		e := math.Exp(logits.At(i, j) - max)
		dst.Set(i, j, e)
		sum += e
	}
	for j := 0; j < cols; j++ {
		dst.Set(i, j, dst.At(i, j)/sum)
	}
}
