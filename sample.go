package gpm

import "gonum.org/v1/gonum/mat"

// argmaxRow returns the column of the highest value in row i.
// Ties resolve to the lowest column.
func argmaxRow(m *mat.Dense, i int) int {
	_, cols := m.Dims()
	best := 0
	for j := 1; j < cols; j++ {
		if m.At(i, j) > m.At(i, best) {
			best = j
		}
	}
	return best
}

// decodePassword reads one character per distribution row, always the most
// probable one, and assembles the final password. The password length equals
// the number of rows.
func decodePassword(probs *mat.Dense, codec *Codec) string {
	rows, _ := probs.Dims()
	password := make([]rune, rows)
	for i := 0; i < rows; i++ {
		password[i] = codec.Decode(argmaxRow(probs, i))
	}
	return string(password)
}
