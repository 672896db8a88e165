// Package nightmode decides from the local wall clock whether the app should
// blank itself for the night.
package nightmode

import (
	"fmt"
	"time"
)

// Schedule is a nightly window of whole hours. The window wraps midnight when
// StartHour > EndHour.
type Schedule struct {
	StartHour int
	EndHour   int
}

// Default is 23:00 to 10:00.
var Default = Schedule{StartHour: 23, EndHour: 10}

// Validate checks both hours are in 0..23.
func (s Schedule) Validate() error {
	if s.StartHour < 0 || s.StartHour > 23 {
		return fmt.Errorf("nightmode: start hour %d out of range", s.StartHour)
	}
	if s.EndHour < 0 || s.EndHour > 23 {
		return fmt.Errorf("nightmode: end hour %d out of range", s.EndHour)
	}
	return nil
}

// Active reports whether t's local hour falls inside the window.
func (s Schedule) Active(t time.Time) bool {
	return s.ActiveHour(t.Hour())
}

// ActiveHour reports whether hour falls inside [StartHour, EndHour).
func (s Schedule) ActiveHour(hour int) bool {
	switch {
	case s.StartHour == s.EndHour:
		return false
	case s.StartHour < s.EndHour:
		return hour >= s.StartHour && hour < s.EndHour
	default:
		return hour >= s.StartHour || hour < s.EndHour
	}
}
