package interval

import "fmt"

// Encloses reports whether every point of other is also in r. Every range encloses the empty
// range.
func (r Range[T]) Encloses(other Range[T]) bool {
	if !other.nonEmpty {
		return true
	}
	if !r.nonEmpty {
		return false
	}
	return CompareLower(r.lower, other.lower) <= 0 && CompareUpper(r.upper, other.upper) >= 0
}

// Overlaps reports whether r and other share at least one point. The empty range overlaps
// nothing.
func (r Range[T]) Overlaps(other Range[T]) bool {
	return !r.Intersect(other).IsEmpty()
}

// OverlapsAny reports whether r overlaps at least one of others.
func (r Range[T]) OverlapsAny(others ...Range[T]) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}

// Adjacent reports whether r and other do not overlap and nothing lies between them: the end
// of one is the start of the other and exactly one of the two includes that point.
func (r Range[T]) Adjacent(other Range[T]) bool {
	if !r.nonEmpty || !other.nonEmpty {
		return false
	}
	return (touches(r.upper, other.lower) || touches(other.upper, r.lower)) && !r.Overlaps(other)
}

func touches[T Point[T]](upper, lower Bound[T]) bool {
	return upper.IsBounded() && lower.IsBounded() &&
		upper.Value.Compare(lower.Value) == 0 &&
		upper.IsInclusive() != lower.IsInclusive()
}

// Intersect returns the points common to r and other, or the empty range if there are none.
// At equal start (or end) points the result is inclusive only if both operands are.
func (r Range[T]) Intersect(other Range[T]) Range[T] {
	if !r.nonEmpty || !other.nonEmpty {
		return Range[T]{}
	}
	return between(maxLower(r.lower, other.lower), minUpper(r.upper, other.upper))
}

// Span returns the smallest range enclosing both r and other, including anything between
// them. The empty range is ignored.
func (r Range[T]) Span(other Range[T]) Range[T] {
	switch {
	case !r.nonEmpty:
		return other
	case !other.nonEmpty:
		return r
	}
	return Range[T]{
		lower:    minLower(r.lower, other.lower),
		upper:    maxUpper(r.upper, other.upper),
		nonEmpty: true,
	}
}

// Union returns the range covering exactly the points of r and other. The operands must
// overlap or be adjacent, otherwise the union is not a single range and Union fails with a
// DisjointRangesError. At a shared extreme an inclusive bound wins over an exclusive one. The
// empty range is the identity.
func (r Range[T]) Union(other Range[T]) (Range[T], error) {
	if r.nonEmpty && other.nonEmpty && !r.Overlaps(other) && !r.Adjacent(other) {
		return Range[T]{}, &DisjointRangesError{Msg: fmt.Sprintf("%v and %v", r, other)}
	}
	return r.Span(other), nil
}

// Gap returns the range strictly between two disjoint, non-adjacent ranges. The gap excludes
// the facing end points of both operands, except when they share a single excluded point, in
// which case that point is the gap. Gap fails with a NoGapError when the ranges overlap, are
// adjacent or either is empty.
func (r Range[T]) Gap(other Range[T]) (Range[T], error) {
	switch {
	case !r.nonEmpty || !other.nonEmpty:
		return Range[T]{}, &NoGapError{Msg: "empty range"}
	case r.Overlaps(other):
		return Range[T]{}, &NoGapError{Msg: fmt.Sprintf("%v overlaps %v", r, other)}
	case r.Adjacent(other):
		return Range[T]{}, &NoGapError{Msg: fmt.Sprintf("%v is adjacent to %v", r, other)}
	}
	first, second := r, other
	if CompareLower(second.lower, first.lower) < 0 {
		first, second = second, first
	}
	// first lies entirely below second, so both facing bounds are finite.
	lo, hi := first.upper.Value, second.lower.Value
	if lo.Compare(hi) == 0 {
		return Singleton(lo), nil
	}
	return Range[T]{lower: Exclusive(lo), upper: Exclusive(hi), nonEmpty: true}, nil
}

// Subtract removes other from r. The remainder is returned as the part of r below other and
// the part above it; either or both may be empty. Both are non-empty only when other lies
// strictly inside r.
func (r Range[T]) Subtract(other Range[T]) (below, above Range[T]) {
	if !r.nonEmpty {
		return Range[T]{}, Range[T]{}
	}
	if !other.nonEmpty {
		return r, Range[T]{}
	}
	if other.lower.IsBounded() {
		below = r.Intersect(Range[T]{upper: other.lower.flip(), nonEmpty: true})
	}
	if other.upper.IsBounded() {
		above = r.Intersect(Range[T]{lower: other.upper.flip(), nonEmpty: true})
	}
	return below, above
}
