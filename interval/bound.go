package interval

import "cmp"

// Point is an ordered value that ranges are built from. Compare must define a total order and
// return a negative number, zero or a positive number when the receiver sorts before, equal to
// or after other. time.Time and the chrono types satisfy it.
type Point[T any] interface {
	Compare(other T) int
}

// BoundType indicates whether the end point of a range is part of the range. A side without a
// bound extends forever and is neither closed nor open.
type BoundType uint8

const (
	// BoundTypeUnbounded means the range extends without limit on this side.
	BoundTypeUnbounded BoundType = iota
	// BoundTypeClosed means the end point is part of the range (inclusive).
	BoundTypeClosed
	// BoundTypeOpen means the end point is not part of the range (exclusive).
	BoundTypeOpen
)

func (b BoundType) String() string {
	switch b {
	case BoundTypeUnbounded:
		return "unbounded"
	case BoundTypeClosed:
		return "closed"
	case BoundTypeOpen:
		return "open"
	default:
		return "invalid"
	}
}

// Bound is one side of a range. Value is meaningless when Type is BoundTypeUnbounded.
type Bound[T Point[T]] struct {
	Value T
	Type  BoundType
}

func Inclusive[T Point[T]](v T) Bound[T] {
	return Bound[T]{Value: v, Type: BoundTypeClosed}
}

func Exclusive[T Point[T]](v T) Bound[T] {
	return Bound[T]{Value: v, Type: BoundTypeOpen}
}

func NoBound[T Point[T]]() Bound[T] {
	return Bound[T]{}
}

func (b Bound[T]) IsBounded() bool {
	return b.Type != BoundTypeUnbounded
}

func (b Bound[T]) IsInclusive() bool {
	return b.Type == BoundTypeClosed
}

// canonical drops the value of an unbounded side so equal bounds are also == when T is.
func (b Bound[T]) canonical() Bound[T] {
	if b.Type == BoundTypeUnbounded {
		return Bound[T]{}
	}
	return b
}

// flip turns the lower bound at v into the upper bound of everything below it, and vice versa.
func (b Bound[T]) flip() Bound[T] {
	switch b.Type {
	case BoundTypeClosed:
		return Exclusive(b.Value)
	case BoundTypeOpen:
		return Inclusive(b.Value)
	default:
		return b
	}
}

// CompareLower orders lower bounds: unbounded first, then by value, and at equal values a
// closed bound before an open one.
func CompareLower[T Point[T]](a, b Bound[T]) int {
	if a.Type == BoundTypeUnbounded || b.Type == BoundTypeUnbounded {
		return -cmp.Compare(boundedRank(a), boundedRank(b))
	}
	if c := a.Value.Compare(b.Value); c != 0 {
		return c
	}
	return cmp.Compare(a.Type, b.Type)
}

// CompareUpper orders upper bounds: by value, at equal values an open bound before a closed
// one, and unbounded last.
func CompareUpper[T Point[T]](a, b Bound[T]) int {
	if a.Type == BoundTypeUnbounded || b.Type == BoundTypeUnbounded {
		return cmp.Compare(boundedRank(a), boundedRank(b))
	}
	if c := a.Value.Compare(b.Value); c != 0 {
		return c
	}
	return cmp.Compare(b.Type, a.Type)
}

func boundedRank[T Point[T]](b Bound[T]) int {
	if b.Type == BoundTypeUnbounded {
		return 1
	}
	return 0
}

func maxLower[T Point[T]](a, b Bound[T]) Bound[T] {
	if CompareLower(a, b) >= 0 {
		return a
	}
	return b
}

func minLower[T Point[T]](a, b Bound[T]) Bound[T] {
	if CompareLower(a, b) <= 0 {
		return a
	}
	return b
}

func maxUpper[T Point[T]](a, b Bound[T]) Bound[T] {
	if CompareUpper(a, b) >= 0 {
		return a
	}
	return b
}

func minUpper[T Point[T]](a, b Bound[T]) Bound[T] {
	if CompareUpper(a, b) <= 0 {
		return a
	}
	return b
}
