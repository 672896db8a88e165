package model

import "time"

// Shared defaults used by the binary and the packages it wires.
const (
	DefaultStoreKey          = "penguinSwipeStats"
	DefaultStoreDriver       = "file"
	DefaultSwipeThreshold    = 0.3
	DefaultFrameInterval     = 33 * time.Millisecond
	DefaultNightStartHour    = 23
	DefaultNightEndHour      = 10
	DefaultNightPollInterval = time.Minute
	DefaultStackDepth        = 3
)

// DefaultItems is the deck order shipped with the app.
var DefaultItems = []string{"baz", "shelley", "emma", "chad", "cody"}
