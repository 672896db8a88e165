// Package sequencer runs the fixed animation timeline that follows a
// committed swipe. A run is driven by whatever clock the caller reads; it
// owns no timers.
package sequencer

import (
	"time"

	"github.com/heyojules/flippr/internal/model"
)

// PhaseDuration is the length of each timeline phase.
const PhaseDuration = 300 * time.Millisecond

// PopScale is the icon scale reached at the end of the pop phase.
const PopScale = 5.0

// StepKind identifies an entry of the schedule table.
type StepKind int

const (
	// StepSnap: icon to full size and opacity, card starts flying off.
	StepSnap StepKind = iota
	// StepPop: icon grows to PopScale while fading out.
	StepPop
	// StepApply: the decision is applied and the card leaves the stack.
	StepApply
	// StepHide: icon hidden and reset. The run is complete.
	StepHide
)

func (k StepKind) String() string {
	switch k {
	case StepSnap:
		return "snap"
	case StepPop:
		return "pop"
	case StepApply:
		return "apply"
	case StepHide:
		return "hide"
	default:
		return "unknown"
	}
}

// Step is one row of the schedule: an action due At after the commit.
type Step struct {
	At   time.Duration
	Kind StepKind
}

// Schedule is the timeline every run follows. Steps with the same offset fire
// in table order.
var Schedule = []Step{
	{At: 0, Kind: StepSnap},
	{At: PhaseDuration, Kind: StepPop},
	{At: PhaseDuration, Kind: StepApply},
	{At: 2 * PhaseDuration, Kind: StepHide},
}

// Frame is the visual state of a run at an instant.
type Frame struct {
	Icon model.IconState
	// Flying is true until the decision is applied.
	Flying    bool
	Direction model.Decision
	// FlyProgress runs 0→1 (eased) over the first phase.
	FlyProgress float64
}

// Run is one pass through Schedule for a committed decision.
type Run struct {
	decision model.Decision
	icon     model.Icon
	start    time.Time
	next     int
}

// Start begins a run at now. withIcon is false for commits that show no
// reaction icon (the intro card).
func Start(decision model.Decision, withIcon bool, now time.Time) *Run {
	r := &Run{decision: decision, start: now}
	if withIcon {
		r.icon = model.IconFor(decision)
	}
	return r
}

func (r *Run) Decision() model.Decision { return r.decision }

// Done reports whether every step has fired.
func (r *Run) Done() bool {
	return r.next >= len(Schedule)
}

// Applied reports whether StepApply has fired.
func (r *Run) Applied() bool {
	return r.fired(StepApply)
}

// Advance fires every step due at now that has not fired yet, in schedule
// order, and returns them.
func (r *Run) Advance(now time.Time) []Step {
	elapsed := now.Sub(r.start)
	var due []Step
	for r.next < len(Schedule) && Schedule[r.next].At <= elapsed {
		due = append(due, Schedule[r.next])
		r.next++
	}
	return due
}

// NextAt returns when the next unfired step is due.
func (r *Run) NextAt() (time.Time, bool) {
	if r.Done() {
		return time.Time{}, false
	}
	return r.start.Add(Schedule[r.next].At), true
}

// Frame renders the run at now. Only fired steps are reflected, so a late
// Advance never shows a state ahead of the applied one.
func (r *Run) Frame(now time.Time) Frame {
	elapsed := now.Sub(r.start)
	f := Frame{Direction: r.decision}

	if !r.Applied() {
		f.Flying = true
		f.FlyProgress = EaseOut(progress(elapsed, 0))
	}

	if r.icon == model.IconNone || r.fired(StepHide) {
		return f
	}
	switch {
	case r.fired(StepPop):
		p := EaseOut(progress(elapsed, PhaseDuration))
		f.Icon = model.IconState{
			Icon:    r.icon,
			Scale:   1 + (PopScale-1)*p,
			Opacity: 1 - p,
		}
	case r.fired(StepSnap):
		f.Icon = model.IconState{Icon: r.icon, Scale: 1, Opacity: 1}
	}
	return f
}

func (r *Run) fired(kind StepKind) bool {
	for i := 0; i < r.next; i++ {
		if Schedule[i].Kind == kind {
			return true
		}
	}
	return false
}

// progress is the linear 0..1 position inside the phase beginning at from.
func progress(elapsed, from time.Duration) float64 {
	p := float64(elapsed-from) / float64(PhaseDuration)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}
