// Package swipe composes the deck, gesture tracker, animation timeline and
// score store into the swipe/results/night screens.
package swipe

import (
	"log"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"

	"github.com/heyojules/flippr/internal/audio"
	"github.com/heyojules/flippr/internal/deck"
	"github.com/heyojules/flippr/internal/gesture"
	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/nightmode"
	"github.com/heyojules/flippr/internal/scores"
	"github.com/heyojules/flippr/internal/sequencer"
)

// Effect is a side effect the caller must carry out after Tick. Effects never
// feed back into controller state.
type Effect interface {
	effect()
}

// PlaySound asks for a sound effect; failures are the caller's to log.
type PlaySound struct {
	Path string
}

func (PlaySound) effect() {}

// Options wires a Controller.
type Options struct {
	Deck      *deck.Deck
	Scores    *scores.Store
	Threshold float64 // fraction of the viewport width; 0 means the default
	Night     nightmode.Schedule
	Effects   audio.Effects
	Clock     clock.Clock
}

// Controller is the single owner of swipe state. It is not safe for
// concurrent use; every call comes from the UI loop.
type Controller struct {
	deck    *deck.Deck
	scores  *scores.Store
	tracker *gesture.Tracker
	night   nightmode.Schedule
	effects audio.Effects
	clock   clock.Clock

	width       float64
	state       Interaction
	nightActive bool
	session     uuid.UUID
}

// New builds a controller positioned at the intro card.
func New(opts Options) *Controller {
	threshold := opts.Threshold
	if threshold <= 0 {
		threshold = model.DefaultSwipeThreshold
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	c := &Controller{
		deck:    opts.Deck,
		scores:  opts.Scores,
		tracker: gesture.NewTracker(threshold),
		night:   opts.Night,
		effects: opts.Effects,
		clock:   clk,
		state:   Idle{},
		session: uuid.New(),
	}
	c.PollNight()
	return c
}

func (c *Controller) Deck() *deck.Deck         { return c.deck }
func (c *Controller) Scores() *scores.Store    { return c.scores }
func (c *Controller) Interaction() Interaction { return c.state }
func (c *Controller) Session() uuid.UUID       { return c.session }
func (c *Controller) Width() float64           { return c.width }
func (c *Controller) Ranked() []model.Ranking  { return c.scores.Ranked(c.deck.IDs()) }

// SetWidth records the viewport width.
func (c *Controller) SetWidth(width int) {
	c.width = float64(width)
	c.tracker.SetWidth(c.width)
}

// Screen reports which screen should be shown. Night supersedes both others.
func (c *Controller) Screen() model.Screen {
	switch {
	case c.nightActive:
		return model.ScreenNight
	case c.deck.Done():
		return model.ScreenResults
	default:
		return model.ScreenSwipe
	}
}

// PollNight recomputes night mode from the clock and reports whether it
// changed. A drag in progress is dropped when night begins.
func (c *Controller) PollNight() bool {
	active := c.night.Active(c.clock.Now())
	if active == c.nightActive {
		return false
	}
	c.nightActive = active
	if active {
		if _, ok := c.state.(Dragging); ok {
			c.tracker.Cancel()
			c.state = Idle{}
		}
	}
	log.Printf("swipe: night mode %v", active)
	return true
}

// Press starts a drag on the front card. It is ignored unless the swipe
// screen is showing and no commit is resolving.
func (c *Controller) Press(x float64) bool {
	if c.Screen() != model.ScreenSwipe {
		return false
	}
	if _, ok := c.state.(Resolving); ok {
		return false
	}
	c.tracker.Start(x)
	c.state = Dragging{Origin: x}
	return true
}

// Drag moves the front card.
func (c *Controller) Drag(x float64) {
	d, ok := c.state.(Dragging)
	if !ok {
		return
	}
	fb := c.tracker.Move(x, c.deck.AtIntro())
	c.state = Dragging{Origin: d.Origin, Offset: c.tracker.Offset(), Feedback: fb}
}

// Release ends the drag. A commit starts the timeline and returns its
// decision; anything else snaps the card back and returns DecisionNone.
func (c *Controller) Release() model.Decision {
	if _, ok := c.state.(Dragging); !ok {
		return model.DecisionNone
	}
	now := c.clock.Now()
	offset := c.tracker.Offset()
	atIntro := c.deck.AtIntro()

	decision := c.tracker.End(atIntro)
	if decision == model.DecisionNone {
		c.state = Idle{SnapFrom: offset, SnapAt: now}
		return decision
	}

	run := sequencer.Start(decision, !atIntro, now)
	run.Advance(now)
	c.state = Resolving{Run: run}
	return decision
}

// Tick fires every timeline step due now and returns the effects to run.
func (c *Controller) Tick() []Effect {
	r, ok := c.state.(Resolving)
	if !ok {
		return nil
	}

	var effects []Effect
	for _, step := range r.Run.Advance(c.clock.Now()) {
		if step.Kind == sequencer.StepApply {
			effects = append(effects, c.apply(r.Run.Decision())...)
		}
	}
	if r.Run.Done() {
		c.state = Idle{}
	}
	return effects
}

// Animating reports whether frames should keep being scheduled.
func (c *Controller) Animating() bool {
	switch s := c.state.(type) {
	case Resolving:
		return true
	case Idle:
		return s.SnapFrom != 0 && c.clock.Since(s.SnapAt) < sequencer.PhaseDuration
	}
	return false
}

// CardOffset is the horizontal offset of the front card right now.
func (c *Controller) CardOffset() float64 {
	now := c.clock.Now()
	switch s := c.state.(type) {
	case Dragging:
		return s.Offset
	case Idle:
		if s.SnapFrom == 0 {
			return 0
		}
		return sequencer.SnapBack(s.SnapFrom, now.Sub(s.SnapAt))
	case Resolving:
		f := s.Run.Frame(now)
		if !f.Flying {
			return 0
		}
		sign := 1.0
		if f.Direction == model.DecisionLeft {
			sign = -1
		}
		return sign * c.width * f.FlyProgress
	}
	return 0
}

// Icon is the reaction icon to draw right now.
func (c *Controller) Icon() model.IconState {
	switch s := c.state.(type) {
	case Dragging:
		return s.Feedback
	case Resolving:
		return s.Run.Frame(c.clock.Now()).Icon
	}
	return model.IconState{}
}

// StartOver returns to the intro card for a new session. Scores are kept.
func (c *Controller) StartOver() {
	c.deck.Reset()
	c.tracker.Cancel()
	c.state = Idle{}
	c.session = uuid.New()
	log.Printf("swipe: session %s started", c.session)
}

func (c *Controller) apply(decision model.Decision) []Effect {
	item, ok := c.deck.Current()
	if !ok {
		c.deck.Advance()
		return nil
	}

	var effects []Effect
	switch decision {
	case model.DecisionRight:
		if err := c.scores.Increment(item.ID); err != nil {
			log.Printf("swipe: saving scores failed: %v", err)
		}
		effects = append(effects, PlaySound{Path: c.effects.Like})
	case model.DecisionLeft:
		effects = append(effects, PlaySound{Path: c.effects.Dislike})
	}
	log.Printf("swipe: session %s %s %s (likes=%d)", c.session, decision, item.ID, c.scores.Count(item.ID))

	c.deck.Advance()
	if c.deck.Done() {
		log.Printf("swipe: session %s finished deck", c.session)
	}
	return effects
}
