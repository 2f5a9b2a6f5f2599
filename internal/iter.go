package internal

import (
	"iter"
)

// IterSeqFilter filters an iterator, yielding only the values keep accepts.
func IterSeqFilter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for val := range seq {
			if !keep(val) {
				continue
			}
			if !yield(val) {
				return // Stop if the consumer stops
			}
		}
	}
}
