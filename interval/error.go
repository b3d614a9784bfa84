package interval

var (
	ErrInvalidRange   = &InvalidRangeError{}
	ErrDisjointRanges = &DisjointRangesError{}
	ErrNoGap          = &NoGapError{}
)

// InvalidRangeError reports bounds that do not describe a range (start after end) or an
// iteration request that cannot produce a finite sequence.
type InvalidRangeError struct {
	Msg string
}

func (e *InvalidRangeError) Error() string {
	return withDetail("invalid range", e.Msg)
}

func (e *InvalidRangeError) Is(target error) bool {
	_, ok := target.(*InvalidRangeError)
	return ok
}

// DisjointRangesError is returned by Union when the operands neither overlap nor touch.
type DisjointRangesError struct {
	Msg string
}

func (e *DisjointRangesError) Error() string {
	return withDetail("ranges are disjoint", e.Msg)
}

func (e *DisjointRangesError) Is(target error) bool {
	_, ok := target.(*DisjointRangesError)
	return ok
}

// NoGapError is returned by Gap when nothing lies between the operands.
type NoGapError struct {
	Msg string
}

func (e *NoGapError) Error() string {
	return withDetail("no gap between ranges", e.Msg)
}

func (e *NoGapError) Is(target error) bool {
	_, ok := target.(*NoGapError)
	return ok
}

func withDetail(kind, msg string) string {
	if msg == "" {
		return kind
	}
	return kind + ": " + msg
}
