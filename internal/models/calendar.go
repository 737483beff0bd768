package models

import (
	"fmt"
	"time"
)

// Date is a totally ordered (year, month, day) triple. It is the one
// representation of "a day" used throughout the core — never time.Time,
// which carries a time-of-day and a location that this domain has no use
// for and that would make equality comparisons fragile.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewDate constructs a Date, normalizing through time.Date so that
// overflowing inputs (e.g. month=13) roll forward the same way the
// standard library does.
func NewDate(year, month, day int) Date {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

func (d Date) toTime() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	t := d.toTime().AddDate(0, 0, n)
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}
}

// Weekday returns the day of the week for d.
func (d Date) Weekday() time.Weekday {
	return d.toTime().Weekday()
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.toTime().Before(other.toTime())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.toTime().After(other.toTime())
}

// Equal reports whether d and other name the same day.
func (d Date) Equal(other Date) bool {
	return d == other
}

// DaysUntil returns the number of days from d to other (negative if other
// precedes d).
func (d Date) DaysUntil(other Date) int {
	return int(other.toTime().Sub(d.toTime()).Hours() / 24)
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// NextWeekday returns the next date on or after d that falls on wd.
func (d Date) NextWeekday(wd time.Weekday) Date {
	delta := (int(wd) - int(d.Weekday()) + 7) % 7
	return d.AddDays(delta)
}
