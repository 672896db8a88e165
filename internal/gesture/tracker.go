// Package gesture turns one horizontal drag into a swipe decision.
package gesture

import (
	"math"

	"github.com/heyojules/flippr/internal/model"
)

const (
	// IntroDampen scales leftward drags on the intro card.
	IntroDampen = 0.1
	// IntroFloor is the furthest the intro card can be dragged left.
	IntroFloor = -50.0
	// FeedbackMax is the icon scale/opacity reached at the threshold while
	// still dragging.
	FeedbackMax = 0.8
)

// Tracker follows a single start/move*/end drag. It is reset after every End.
type Tracker struct {
	fraction float64
	width    float64

	dragging bool
	originX  float64
	offset   float64
}

// NewTracker returns a tracker committing when a drag exceeds fraction of the
// viewport width.
func NewTracker(fraction float64) *Tracker {
	return &Tracker{fraction: fraction}
}

// SetWidth records the viewport width used for the threshold.
func (t *Tracker) SetWidth(width float64) {
	t.width = width
}

// Threshold is the absolute offset a release must exceed to commit.
func (t *Tracker) Threshold() float64 {
	return t.fraction * t.width
}

// Dragging reports whether a drag is in progress.
func (t *Tracker) Dragging() bool { return t.dragging }

// Offset is the current (possibly dampened) offset of the front card.
func (t *Tracker) Offset() float64 { return t.offset }

// Start records the drag origin.
func (t *Tracker) Start(x float64) {
	t.dragging = true
	t.originX = x
	t.offset = 0
}

// Move updates the offset and returns the reaction icon to display. atIntro
// selects the intro dampening rule. Moves outside a drag are ignored.
func (t *Tracker) Move(x float64, atIntro bool) model.IconState {
	if !t.dragging {
		return model.IconState{}
	}

	diff := x - t.originX
	if atIntro && diff < 0 {
		t.offset = math.Max(diff*IntroDampen, IntroFloor)
	} else {
		t.offset = diff
	}
	return Feedback(t.offset, t.Threshold(), atIntro)
}

// End resolves the drag and resets the tracker. The intro card only accepts
// rightward commits.
func (t *Tracker) End(atIntro bool) model.Decision {
	if !t.dragging {
		return model.DecisionNone
	}
	offset := t.offset
	t.reset()
	return Decide(offset, t.Threshold(), atIntro)
}

// Cancel drops the drag without a decision.
func (t *Tracker) Cancel() {
	t.reset()
}

func (t *Tracker) reset() {
	t.dragging = false
	t.originX = 0
	t.offset = 0
}

// Decide maps a released offset to a decision.
func Decide(offset, threshold float64, atIntro bool) model.Decision {
	if math.Abs(offset) <= threshold {
		return model.DecisionNone
	}
	if offset > 0 {
		return model.DecisionRight
	}
	if atIntro {
		return model.DecisionNone
	}
	return model.DecisionLeft
}

// Feedback computes the reaction icon for a live offset. It depends only on
// its arguments.
func Feedback(offset, threshold float64, atIntro bool) model.IconState {
	if atIntro || offset == 0 {
		return model.IconState{}
	}

	progress := 1.0
	if threshold > 0 {
		progress = math.Min(math.Abs(offset)/threshold, 1)
	}
	icon := model.IconLike
	if offset < 0 {
		icon = model.IconDislike
	}
	return model.IconState{
		Icon:    icon,
		Scale:   progress * FeedbackMax,
		Opacity: progress * FeedbackMax,
	}
}
