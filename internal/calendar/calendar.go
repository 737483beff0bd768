// Package calendar tracks the current in-dynasty date and advances it one
// day at a time, independent of wall-clock time (spec.md §4.2). Grounded
// on original_source/ui/controllers/calendar_controller.py's separation
// of "what day is it" from "what happens on that day".
package calendar

import (
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// Cursor is an in-memory view of a dynasty's current date. It is
// reconstructed from models.DynastyState on load and written back through
// the same state row on every advance (spec.md invariant 3: the date
// never moves backward).
type Cursor struct {
	date models.Date
}

// NewCursor returns a Cursor positioned at date.
func NewCursor(date models.Date) *Cursor {
	return &Cursor{date: date}
}

// Current returns the cursor's current date.
func (c *Cursor) Current() models.Date {
	return c.date
}

// AdvanceDay moves the cursor forward exactly one day and returns the new
// date. The cursor never moves backward or skips a day; callers that need
// to jump ahead (AdvanceToPhaseEnd) call this in a loop so every
// intervening day's events still run.
func (c *Cursor) AdvanceDay() models.Date {
	c.date = c.date.AddDays(1)
	return c.date
}

// IsAfter reports whether the cursor has passed boundary.
func (c *Cursor) IsAfter(boundary models.Date) bool {
	return c.date.After(boundary)
}
