// Package rangeset maintains a minimal, sorted collection of disjoint ranges.
package rangeset

import (
	"iter"
	"strings"

	"github.com/garethgeorge/timespan/internal/sequtil"
	"github.com/garethgeorge/timespan/interval"
	"github.com/google/btree"
)

const btreeDegree = 32

type options struct {
	keepAdjacent bool
}

// Option configures a Set.
type Option func(*options)

// KeepAdjacent stops Insert from merging ranges that touch without overlapping, such as
// [1, 5) and [5, 10]. Overlapping ranges are always merged.
func KeepAdjacent() Option {
	return func(o *options) { o.keepAdjacent = true }
}

// Set is a sorted collection of non-overlapping ranges. By default it also merges adjacent
// ranges, so its entries never touch and the collection is always minimal.
//
// Every mutation builds the next sequence on a copy-on-write clone of the tree and swaps it in
// as one step; iterators keep reading the sequence they started on. Set is not thread-safe.
type Set[T interval.Point[T]] struct {
	opts options
	tree *btree.BTreeG[interval.Range[T]]
}

func New[T interval.Point[T]](opts ...Option) *Set[T] {
	s := &Set[T]{}
	for _, opt := range opts {
		opt(&s.opts)
	}
	s.tree = newTree[T]()
	return s
}

// Of returns a Set holding the union of ranges, using the default options.
func Of[T interval.Point[T]](ranges ...interval.Range[T]) *Set[T] {
	s := New[T]()
	for _, r := range ranges {
		s.Insert(r)
	}
	return s
}

func newTree[T interval.Point[T]]() *btree.BTreeG[interval.Range[T]] {
	return btree.NewG(btreeDegree, func(a, b interval.Range[T]) bool { return a.Compare(b) < 0 })
}

// Insert adds the points of r to the set, merging every entry r overlaps (or touches, unless
// KeepAdjacent is set) into a single entry. Inserting the empty range does nothing.
func (s *Set[T]) Insert(r interval.Range[T]) {
	if r.IsEmpty() {
		return
	}

	absorbed := s.touching(r, !s.opts.keepAdjacent)
	merged := r
	for _, e := range absorbed {
		var err error
		merged, err = merged.Union(e)
		if err != nil {
			panic("rangeset: internal error: " + err.Error())
		}
	}

	next := s.tree.Clone()
	for _, e := range absorbed {
		next.Delete(e)
	}
	next.ReplaceOrInsert(merged)
	s.tree = next
}

// Subtract removes the points of r from the set. An entry that r covers is dropped, an entry
// r cuts into is trimmed, and an entry r lies strictly inside of is split in two.
func (s *Set[T]) Subtract(r interval.Range[T]) {
	hit := s.touching(r, false)
	if len(hit) == 0 {
		return
	}

	next := s.tree.Clone()
	for _, e := range hit {
		next.Delete(e)
		below, above := e.Subtract(r)
		if !below.IsEmpty() {
			next.ReplaceOrInsert(below)
		}
		if !above.IsEmpty() {
			next.ReplaceOrInsert(above)
		}
	}
	s.tree = next
}

// Remove deletes the entry equal to r and reports whether there was one. Unlike Subtract it
// never touches entries that merely overlap r.
func (s *Set[T]) Remove(r interval.Range[T]) bool {
	if r.IsEmpty() {
		return false
	}
	next := s.tree.Clone()
	if _, ok := next.Delete(r); !ok {
		return false
	}
	s.tree = next
	return true
}

// Clear removes every entry.
func (s *Set[T]) Clear() {
	s.tree = newTree[T]()
}

// Contains reports whether p lies in one of the entries.
func (s *Set[T]) Contains(p T) bool {
	return s.Encloses(interval.Singleton(p))
}

// Encloses reports whether a single entry holds every point of r.
func (s *Set[T]) Encloses(r interval.Range[T]) bool {
	if r.IsEmpty() {
		return true
	}
	// The only candidate is the last entry whose lower bound does not come after r's. Probing
	// with an upward-unbounded range finds it even when it ends after r does.
	probe := interval.Must(interval.FromBounds(r.Lower(), interval.NoBound[T]()))
	var found bool
	s.tree.DescendLessOrEqual(probe, func(e interval.Range[T]) bool {
		found = e.Encloses(r)
		return false
	})
	return found
}

// Overlaps reports whether any entry shares a point with r.
func (s *Set[T]) Overlaps(r interval.Range[T]) bool {
	return len(s.touching(r, false)) > 0
}

// Overlapping returns the entries that share a point with r, in order.
func (s *Set[T]) Overlapping(r interval.Range[T]) []interval.Range[T] {
	return s.touching(r, false)
}

// touching returns, in order, the entries that overlap r and, if adjacent is set, the entries
// that touch it. Entries are disjoint and sorted, so the matches form one contiguous run around
// r's position in the tree.
func (s *Set[T]) touching(r interval.Range[T], adjacent bool) []interval.Range[T] {
	if r.IsEmpty() {
		return nil
	}
	hit := func(e interval.Range[T]) bool {
		return e.Overlaps(r) || (adjacent && e.Adjacent(r))
	}

	var before []interval.Range[T]
	s.tree.DescendLessOrEqual(r, func(e interval.Range[T]) bool {
		if !hit(e) {
			return false
		}
		before = append(before, e)
		return true
	})

	found := make([]interval.Range[T], 0, len(before)+1)
	for i := len(before) - 1; i >= 0; i-- {
		found = append(found, before[i])
	}
	s.tree.AscendGreaterOrEqual(r, func(e interval.Range[T]) bool {
		if e.Equal(r) {
			// already visited on the way down
			return true
		}
		if !hit(e) {
			return false
		}
		found = append(found, e)
		return true
	})
	return found
}

// TotalSpan returns the smallest range enclosing every entry, or the empty range if the set is
// empty.
func (s *Set[T]) TotalSpan() interval.Range[T] {
	first, ok := s.tree.Min()
	if !ok {
		return interval.Empty[T]()
	}
	last, _ := s.tree.Max()
	return first.Span(last)
}

// Complement returns the points of within that are not in the set.
func (s *Set[T]) Complement(within interval.Range[T]) *Set[T] {
	out := &Set[T]{opts: s.opts, tree: newTree[T]()}
	out.Insert(within)
	for _, e := range s.touching(within, false) {
		out.Subtract(e)
	}
	return out
}

// Union returns a new set holding the points of both s and other. It uses the options of s.
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := &Set[T]{opts: s.opts, tree: newTree[T]()}
	merged := sequtil.Merge(s.All(), other.All(), interval.Range[T].Compare)
	for r := range sequtil.Coalesce(merged, out.join) {
		out.tree.ReplaceOrInsert(r)
	}
	return out
}

// join merges next into cur when Insert would have.
func (s *Set[T]) join(cur, next interval.Range[T]) (interval.Range[T], bool) {
	if cur.Overlaps(next) || (!s.opts.keepAdjacent && cur.Adjacent(next)) {
		return cur.Span(next), true
	}
	return cur, false
}

// Intersect returns a new set holding the points common to s and other. It uses the options
// of s.
func (s *Set[T]) Intersect(other *Set[T]) *Set[T] {
	out := &Set[T]{opts: s.opts, tree: newTree[T]()}
	a, b := s.Ranges(), other.Ranges()
	for i, j := 0, 0; i < len(a) && j < len(b); {
		if x := a[i].Intersect(b[j]); !x.IsEmpty() {
			out.Insert(x)
		}
		// Whichever entry ends first cannot meet anything further along the other side.
		if interval.CompareUpper(a[i].Upper(), b[j].Upper()) <= 0 {
			i++
		} else {
			j++
		}
	}
	return out
}

// Clone returns an independent copy of s with the same options.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{opts: s.opts, tree: s.tree.Clone()}
}

func (s *Set[T]) Len() int {
	return s.tree.Len()
}

func (s *Set[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

// All iterates over the entries in ascending order. The sequence reflects the set as it was
// when iteration began.
func (s *Set[T]) All() iter.Seq[interval.Range[T]] {
	return func(yield func(interval.Range[T]) bool) {
		s.tree.Ascend(func(e interval.Range[T]) bool {
			return yield(e)
		})
	}
}

// Ranges returns the entries in ascending order.
func (s *Set[T]) Ranges() []interval.Range[T] {
	out := make([]interval.Range[T], 0, s.tree.Len())
	s.tree.Ascend(func(e interval.Range[T]) bool {
		out = append(out, e)
		return true
	})
	return out
}

// Equal reports whether s and other hold exactly the same entries.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	a, b := s.Ranges(), other.Ranges()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func (s *Set[T]) String() string {
	parts := make([]string, 0, s.tree.Len())
	for r := range s.All() {
		parts = append(parts, r.String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
