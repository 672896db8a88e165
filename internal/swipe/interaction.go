package swipe

import (
	"time"

	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/sequencer"
)

// Interaction is the front card's input state. Exactly one variant is live at
// a time: Idle, Dragging or Resolving.
type Interaction interface {
	interaction()
}

// Idle accepts a new drag. SnapFrom/SnapAt describe the ease back to rest
// after a release that did not commit; they only affect rendering.
type Idle struct {
	SnapFrom float64
	SnapAt   time.Time
}

// Dragging follows a live drag that started at Origin.
type Dragging struct {
	Origin   float64
	Offset   float64
	Feedback model.IconState
}

// Resolving plays the commit timeline. Input is ignored until it ends.
type Resolving struct {
	Run *sequencer.Run
}

func (Idle) interaction()      {}
func (Dragging) interaction()  {}
func (Resolving) interaction() {}
