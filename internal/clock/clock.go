// Package clock supplies the current time in the operating timezone.
package clock

import (
	"time"
	_ "time/tzdata"
)

// Clock returns the current instant.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock and converts it into Location.
type System struct {
	Location *time.Location
}

// NewSystem creates a System clock for the named IANA zone (e.g. "Asia/Makassar").
func NewSystem(zone string) (*System, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &System{Location: loc}, nil
}

// Now returns the current time in the configured location.
func (c *System) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Fixed always returns the same instant.
type Fixed struct {
	At time.Time
}

// Now returns the fixed instant.
func (c Fixed) Now() time.Time {
	return c.At
}
