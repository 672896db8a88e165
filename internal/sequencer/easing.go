package sequencer

import "time"

// EaseOut decelerates towards 1 (cubic).
func EaseOut(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// Ease accelerates then decelerates (smoothstep).
func Ease(t float64) float64 {
	return t * t * (3 - 2*t)
}

// SnapBack returns the front card offset while it eases back to rest after a
// released drag that did not commit.
func SnapBack(from float64, elapsed time.Duration) float64 {
	p := progress(elapsed, 0)
	return from * (1 - Ease(p))
}
