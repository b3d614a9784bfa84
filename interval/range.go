// Package interval implements ranges over ordered point types and the algebra between them.
//
// A Range pairs a lower and an upper Bound, each of which is closed (inclusive), open
// (exclusive) or absent. Ranges are immutable values normalized at construction: a range whose
// bounds meet at a single point without both being inclusive is the canonical empty range, and
// the zero Range is that same empty range.
package interval

import (
	"fmt"
	"strings"
)

type Range[T Point[T]] struct {
	lower Bound[T]
	upper Bound[T]
	// nonEmpty is false only for the canonical empty range, in which case both bounds are zero.
	nonEmpty bool
}

// New returns the range from start to end with the given inclusivity on each side. It fails
// with an InvalidRangeError when start is after end. A range whose start equals its end is the
// single point when both sides are inclusive and the canonical empty range otherwise.
func New[T Point[T]](start, end T, startInclusive, endInclusive bool) (Range[T], error) {
	return FromBounds(boundOf(start, startInclusive), boundOf(end, endInclusive))
}

// FromBounds returns the range between lower and upper, either of which may be unbounded.
func FromBounds[T Point[T]](lower, upper Bound[T]) (Range[T], error) {
	if lower.Type > BoundTypeOpen || upper.Type > BoundTypeOpen {
		return Range[T]{}, &InvalidRangeError{Msg: fmt.Sprintf("unknown bound types %v, %v", lower.Type, upper.Type)}
	}
	if lower.IsBounded() && upper.IsBounded() && lower.Value.Compare(upper.Value) > 0 {
		return Range[T]{}, &InvalidRangeError{Msg: fmt.Sprintf("start %v is after end %v", lower.Value, upper.Value)}
	}
	return between(lower, upper), nil
}

// Closed returns [start, end].
func Closed[T Point[T]](start, end T) (Range[T], error) {
	return New(start, end, true, true)
}

// ClosedOpen returns [start, end).
func ClosedOpen[T Point[T]](start, end T) (Range[T], error) {
	return New(start, end, true, false)
}

// OpenClosed returns (start, end].
func OpenClosed[T Point[T]](start, end T) (Range[T], error) {
	return New(start, end, false, true)
}

// Open returns (start, end).
func Open[T Point[T]](start, end T) (Range[T], error) {
	return New(start, end, false, false)
}

// Must panics if err is non-nil. It is meant for ranges built from constants.
func Must[T Point[T]](r Range[T], err error) Range[T] {
	if err != nil {
		panic(err)
	}
	return r
}

func Empty[T Point[T]]() Range[T] {
	return Range[T]{}
}

// All returns the range containing every point.
func All[T Point[T]]() Range[T] {
	return Range[T]{nonEmpty: true}
}

func Singleton[T Point[T]](p T) Range[T] {
	return Range[T]{lower: Inclusive(p), upper: Inclusive(p), nonEmpty: true}
}

// AtLeast returns [p, +∞).
func AtLeast[T Point[T]](p T) Range[T] {
	return Range[T]{lower: Inclusive(p), nonEmpty: true}
}

// GreaterThan returns (p, +∞).
func GreaterThan[T Point[T]](p T) Range[T] {
	return Range[T]{lower: Exclusive(p), nonEmpty: true}
}

// AtMost returns (-∞, p].
func AtMost[T Point[T]](p T) Range[T] {
	return Range[T]{upper: Inclusive(p), nonEmpty: true}
}

// LessThan returns (-∞, p).
func LessThan[T Point[T]](p T) Range[T] {
	return Range[T]{upper: Exclusive(p), nonEmpty: true}
}

// between builds the range from lower to upper, collapsing to the canonical empty range when
// the bounds cross or meet without both being inclusive.
func between[T Point[T]](lower, upper Bound[T]) Range[T] {
	lower, upper = lower.canonical(), upper.canonical()
	if lower.IsBounded() && upper.IsBounded() {
		c := lower.Value.Compare(upper.Value)
		if c > 0 || (c == 0 && !(lower.IsInclusive() && upper.IsInclusive())) {
			return Range[T]{}
		}
	}
	return Range[T]{lower: lower, upper: upper, nonEmpty: true}
}

func boundOf[T Point[T]](v T, inclusive bool) Bound[T] {
	if inclusive {
		return Inclusive(v)
	}
	return Exclusive(v)
}

func (r Range[T]) IsEmpty() bool {
	return !r.nonEmpty
}

// IsSingleton reports whether r contains exactly one point.
func (r Range[T]) IsSingleton() bool {
	return r.nonEmpty && r.lower.IsBounded() && r.upper.IsBounded() && r.lower.Value.Compare(r.upper.Value) == 0
}

// IsBounded reports whether r has a finite bound on both sides. The empty range is bounded.
func (r Range[T]) IsBounded() bool {
	return !r.nonEmpty || (r.lower.IsBounded() && r.upper.IsBounded())
}

// Lower returns the lower bound of r. The empty range has no bounds.
func (r Range[T]) Lower() Bound[T] {
	return r.lower
}

// Upper returns the upper bound of r. The empty range has no bounds.
func (r Range[T]) Upper() Bound[T] {
	return r.upper
}

// Start returns the lower end point of r and whether there is one.
func (r Range[T]) Start() (T, bool) {
	return r.lower.Value, r.nonEmpty && r.lower.IsBounded()
}

// End returns the upper end point of r and whether there is one.
func (r Range[T]) End() (T, bool) {
	return r.upper.Value, r.nonEmpty && r.upper.IsBounded()
}

func (r Range[T]) StartInclusive() bool {
	return r.lower.IsInclusive()
}

func (r Range[T]) EndInclusive() bool {
	return r.upper.IsInclusive()
}

// Contains reports whether p lies within r. Unbounded sides admit every point and the empty
// range contains nothing.
func (r Range[T]) Contains(p T) bool {
	if !r.nonEmpty {
		return false
	}
	if r.lower.IsBounded() {
		c := p.Compare(r.lower.Value)
		if c < 0 || (c == 0 && !r.lower.IsInclusive()) {
			return false
		}
	}
	if r.upper.IsBounded() {
		c := p.Compare(r.upper.Value)
		if c > 0 || (c == 0 && !r.upper.IsInclusive()) {
			return false
		}
	}
	return true
}

// Compare orders ranges by lower bound and then by upper bound. An unbounded start sorts before
// any bounded start and an unbounded end after any bounded end. At equal start points an
// inclusive start sorts first; at equal end points an exclusive end sorts first. The empty
// range sorts before every other range. Compare returns zero only for equal ranges.
func (r Range[T]) Compare(other Range[T]) int {
	switch {
	case !r.nonEmpty && !other.nonEmpty:
		return 0
	case !r.nonEmpty:
		return -1
	case !other.nonEmpty:
		return 1
	}
	if c := CompareLower(r.lower, other.lower); c != 0 {
		return c
	}
	return CompareUpper(r.upper, other.upper)
}

// Equal reports whether r and other contain the same points. All empty ranges are equal.
func (r Range[T]) Equal(other Range[T]) bool {
	return r.Compare(other) == 0
}

func (r Range[T]) String() string {
	if !r.nonEmpty {
		return "∅"
	}
	var sb strings.Builder
	switch r.lower.Type {
	case BoundTypeClosed:
		fmt.Fprintf(&sb, "[%v", r.lower.Value)
	case BoundTypeOpen:
		fmt.Fprintf(&sb, "(%v", r.lower.Value)
	default:
		sb.WriteString("(-∞")
	}
	sb.WriteString(", ")
	switch r.upper.Type {
	case BoundTypeClosed:
		fmt.Fprintf(&sb, "%v]", r.upper.Value)
	case BoundTypeOpen:
		fmt.Fprintf(&sb, "%v)", r.upper.Value)
	default:
		sb.WriteString("+∞)")
	}
	return sb.String()
}
