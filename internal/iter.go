package internal

import (
	"iter"
)

// IterSeq2Flatten flattens a lazily produced sequence of dual-return
// sequences into a single in-order iterator sequence.
func IterSeq2Flatten[T1 any, T2 any](seqs iter.Seq[iter.Seq2[T1, T2]]) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for seq := range seqs {
			for val1, val2 := range seq {
				if !yield(val1, val2) {
					return // Stop if the consumer stops
				}
			}
		}
	}
}
