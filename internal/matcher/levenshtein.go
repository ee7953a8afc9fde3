package matcher

// Distance returns the Levenshtein edit distance between a and b: the
// minimum number of single-rune insertions, deletions and substitutions
// needed to turn one into the other. Comparison is rune-wise, so "años" and
// "anos" are one edit apart, not two bytes.
func Distance(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	if len(ar) == 0 {
		return len(br)
	}
	if len(br) == 0 {
		return len(ar)
	}

	// Single-row dynamic program: row holds the previous matrix row, prev
	// carries the diagonal value.
	row := make([]int, len(br)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ar); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(br); j++ {
			tmp := row[j]
			cost := 0
			if ar[i-1] != br[j-1] {
				cost = 1
			}
			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = tmp
		}
	}
	return row[len(br)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
