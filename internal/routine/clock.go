package routine

import (
	"errors"
	"fmt"
)

const minutesPerDay = 24 * 60

var (
	ErrBadClock    = errors.New("invalid clock value: expected HH:MM between 00:00 and 23:59")
	ErrEqualBounds = errors.New("window start and end must differ")
)

// Clock is a wall-clock instant within a day, minute precision.
type Clock struct {
	hour   int
	minute int
}

// ParseClock parses "HH:MM" (00:00–23:59).
func ParseClock(s string) (Clock, error) {
	var h, m int
	if len(s) != 5 || s[2] != ':' {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrBadClock, s)
	}
	return Clock{hour: h, minute: m}, nil
}

// MustClock is ParseClock for literals; panics on malformed input.
func MustClock(s string) Clock {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Clock) Hour() int    { return c.hour }
func (c Clock) Minute() int  { return c.minute }
func (c Clock) Minutes() int { return c.hour*60 + c.minute }

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// Window is one operating interval. End at or before Start means the
// window crosses midnight (22:00–06:00 runs into the next day).
type Window struct {
	Start Clock
	End   Clock
}

// NewWindow builds a window, rejecting zero-length ones.
func NewWindow(start, end Clock) (Window, error) {
	w := Window{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return Window{}, err
	}
	return w, nil
}

// Validate rejects windows whose bounds coincide; every other pair is
// legal, wrap-around included.
func (w Window) Validate() error {
	if w.Start == w.End {
		return ErrEqualBounds
	}
	return nil
}

// CrossesMidnight reports whether the window wraps past 00:00.
func (w Window) CrossesMidnight() bool {
	return w.End.Minutes() < w.Start.Minutes()
}

// DurationMinutes is the window length on the wrapped span.
func (w Window) DurationMinutes() int {
	d := w.End.Minutes() - w.Start.Minutes()
	if d <= 0 {
		d += minutesPerDay
	}
	return d
}

// Contains reports whether r lies fully inside w, both treated as
// half-open [start, end) spans on the wrapped clock.
func (w Window) Contains(r Window) bool {
	offset := r.Start.Minutes() - w.Start.Minutes()
	if offset < 0 {
		offset += minutesPerDay
	}
	return offset+r.DurationMinutes() <= w.DurationMinutes()
}

func (w Window) String() string {
	return w.Start.String() + "–" + w.End.String()
}
