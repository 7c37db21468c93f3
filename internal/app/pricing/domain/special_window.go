package domain

import (
	"fmt"
	"time"
)

// windowPrecision is the granularity at which special price windows are compared.
const windowPrecision = time.Minute

// SpecialWindow is the optional date range during which a special price applies.
// Either bound may be absent.
type SpecialWindow struct {
	from *time.Time
	to   *time.Time
}

// NewSpecialWindow builds a window from optional bounds. Bounds are copied.
func NewSpecialWindow(from, to *time.Time) SpecialWindow {
	return SpecialWindow{from: copyTime(from), to: copyTime(to)}
}

// IsActiveAt reports whether a special price is in effect at now.
//
//	from and to: from <= now < to
//	from only:   now > from
//	to only:     now < to
//	neither:     always active
//
// The from-only arm is strictly greater, unlike the two-bound arm.
func (w SpecialWindow) IsActiveAt(now time.Time) bool {
	n := now.Truncate(windowPrecision)

	switch hasFrom, hasTo := w.from != nil, w.to != nil; {
	case hasFrom && hasTo:
		from := w.from.Truncate(windowPrecision)
		to := w.to.Truncate(windowPrecision)
		return !n.Before(from) && n.Before(to)
	case hasFrom:
		return n.After(w.from.Truncate(windowPrecision))
	case hasTo:
		return n.Before(w.to.Truncate(windowPrecision))
	default:
		return true
	}
}

func (w SpecialWindow) String() string {
	return fmt.Sprintf("[%s, %s)", formatBound(w.from), formatBound(w.to))
}

func formatBound(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.UTC().Format("2006-01-02 15:04")
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
