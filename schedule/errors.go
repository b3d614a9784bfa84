package schedule

import "github.com/cockroachdb/errors"

var (
	// ErrUnboundedDomain is returned by New when the domain is empty or open-ended.
	ErrUnboundedDomain = errors.New("schedule domain must be bounded and non-empty")
	// ErrOutOfDomain is returned when a booking reaches outside the calendar's domain.
	ErrOutOfDomain = errors.New("range is outside the schedule domain")
	// ErrConflict is returned when a booking overlaps an existing one.
	ErrConflict = errors.New("range overlaps an existing booking")
	// ErrNoCapacity is returned by Reserve when no free slot is long enough.
	ErrNoCapacity = errors.New("no free slot is long enough")
)
