package wordlist

import "sort"

// Pair is one unordered pair (A = words[I], B = words[J], I < J).
// Index is its position in the enumeration order, starting at 0.
type Pair struct {
	Index int
	I, J  int
	A, B  string
}

// Sorted returns a new slice with words in ascending byte order.
// The input is left untouched; duplicates are kept.
func Sorted(words []string) []string {
	out := make([]string, len(words))
	copy(out, words)
	sort.Strings(out)

	return out
}

// PairCount returns n·(n-1)/2, the number of unordered pairs of n words.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// EachPair calls fn for every (i<j) pair in row order: (0,1), (0,2), ..., (1,2), ...
// It stops at the first error fn returns and passes it through.
func EachPair(words []string, fn func(Pair) error) error {
	idx := 0
	for i := 0; i < len(words); i++ {
		for j := i + 1; j < len(words); j++ {
			if err := fn(Pair{Index: idx, I: i, J: j, A: words[i], B: words[j]}); err != nil {
				return err
			}
			idx++
		}
	}

	return nil
}

// Pairs collects EachPair into a slice.
func Pairs(words []string) []Pair {
	out := make([]Pair, 0, PairCount(len(words)))
	_ = EachPair(words, func(p Pair) error {
		out = append(out, p)

		return nil
	})

	return out
}
