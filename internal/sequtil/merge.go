package sequtil

import "iter"

// Merge takes two sorted iterators and yields every element of both in sorted order. The cmp
// function should return:
//   - negative if a < b
//   - zero if a == b
//   - positive if a > b
//
// Equal elements are both yielded, the one from a first.
func Merge[T any](a, b iter.Seq[T], cmp func(a, b T) int) iter.Seq[T] {
	return func(yield func(T) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()

		aVal, aOk := nextA()
		bVal, bOk := nextB()

		for aOk && bOk {
			if cmp(aVal, bVal) <= 0 {
				if !yield(aVal) {
					return
				}
				aVal, aOk = nextA()
			} else {
				if !yield(bVal) {
					return
				}
				bVal, bOk = nextB()
			}
		}

		// Drain whichever side is left
		for aOk {
			if !yield(aVal) {
				return
			}
			aVal, aOk = nextA()
		}
		for bOk {
			if !yield(bVal) {
				return
			}
			bVal, bOk = nextB()
		}
	}
}

// Coalesce folds runs of consecutive elements that join says belong together. join returns the
// combined element and true, or false to start a new run.
func Coalesce[T any](seq iter.Seq[T], join func(cur, next T) (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		var cur T
		var started bool
		for v := range seq {
			if !started {
				cur, started = v, true
				continue
			}
			if joined, ok := join(cur, v); ok {
				cur = joined
				continue
			}
			if !yield(cur) {
				return
			}
			cur = v
		}
		if started {
			yield(cur)
		}
	}
}
