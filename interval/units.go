package interval

import (
	"iter"
	"slices"
)

// Stepper returns the point one step after p. It must move strictly forward for every point
// it is applied to; iteration stops at the first step that does not.
type Stepper[T any] func(p T) T

// Units returns the points of r starting at its lower bound and advancing by step, honoring the
// inclusivity of both bounds. The sequence is lazy and may be iterated any number of times.
//
// Units fails with an InvalidRangeError when r is unbounded on either side or step does not
// advance the start point. The empty range yields an empty sequence.
func (r Range[T]) Units(step Stepper[T]) (iter.Seq[T], error) {
	if !r.nonEmpty {
		return func(yield func(T) bool) {}, nil
	}
	if !r.IsBounded() {
		return nil, &InvalidRangeError{Msg: "cannot iterate over unbounded range " + r.String()}
	}
	if step == nil {
		return nil, &InvalidRangeError{Msg: "nil step"}
	}
	start := r.lower.Value
	if step(start).Compare(start) <= 0 {
		return nil, &InvalidRangeError{Msg: "step must be positive"}
	}

	return func(yield func(T) bool) {
		p := start
		if !r.lower.IsInclusive() {
			p = step(p)
		}
		for r.Contains(p) {
			if !yield(p) {
				return
			}
			next := step(p)
			if next.Compare(p) <= 0 {
				return
			}
			p = next
		}
	}, nil
}

// Collect returns every point Units would produce.
func (r Range[T]) Collect(step Stepper[T]) ([]T, error) {
	seq, err := r.Units(step)
	if err != nil {
		return nil, err
	}
	return slices.Collect(seq), nil
}
