package gpm

// BuildContexts slices a feed into a length x context index matrix.
//
// Row i holds the next context values of the stream: consecutive rows are
// fresh, non-overlapping chunks that never share or slide over values. One
// row backs one character of the final password.
func BuildContexts(feed *Feed, length, context int) ([][]int, error) {
	if length < 1 {
		return nil, newConfigError(ErrInvalidLength, "", "")
	}
	if context < 1 {
		return nil, newConfigError(ErrInvalidContext, "", "")
	}

	rows := make([][]int, length)
	for i := range rows {
		rows[i] = feed.Take(context)
	}
	return rows, nil
}
