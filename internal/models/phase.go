package models

import (
	"database/sql/driver"
	"fmt"
)

// Phase is the sum type of the four annually repeating season phases
// (spec.md §3). It is modeled as a proper enum rather than a string
// constant so that an invalid phase cannot be constructed silently
// (spec.md §9's "string-typed phase constants" re-architecture note).
type Phase int

const (
	Preseason Phase = iota
	RegularSeason
	Playoffs
	Offseason
)

func (p Phase) String() string {
	switch p {
	case Preseason:
		return "PRESEASON"
	case RegularSeason:
		return "REGULAR_SEASON"
	case Playoffs:
		return "PLAYOFFS"
	case Offseason:
		return "OFFSEASON"
	default:
		return "UNKNOWN"
	}
}

// Value implements driver.Valuer so a Phase can be written to a TEXT column.
func (p Phase) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner so a Phase can be read back from a TEXT column.
func (p *Phase) Scan(src interface{}) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Phase", src)
	}
	parsed, ok := ParsePhase(s)
	if !ok {
		return fmt.Errorf("unknown phase value %q", s)
	}
	*p = parsed
	return nil
}

// ParsePhase parses the canonical string form produced by String().
func ParsePhase(s string) (Phase, bool) {
	switch s {
	case "PRESEASON":
		return Preseason, true
	case "REGULAR_SEASON":
		return RegularSeason, true
	case "PLAYOFFS":
		return Playoffs, true
	case "OFFSEASON":
		return Offseason, true
	default:
		return 0, false
	}
}
