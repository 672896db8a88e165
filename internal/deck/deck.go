// Package deck holds the ordered cards and the forward-only cursor over them.
package deck

import "github.com/heyojules/flippr/internal/model"

// Intro is the cursor position before the first item.
const Intro = -1

// Deck is a fixed ordered list of items with a cursor that moves
// intro → 0 → … → N-1 → done and never backwards except via Reset.
type Deck struct {
	items  []model.Item
	cursor int
}

// Card is one entry of the visible stack.
type Card struct {
	Item  model.Item
	Index int // deck position; Intro for the intro card
	Depth int // 0 is the front card
}

// New creates a deck positioned at intro.
func New(items []model.Item) *Deck {
	return &Deck{items: append([]model.Item(nil), items...), cursor: Intro}
}

// FromIDs builds items with the image naming convention.
func FromIDs(ids []string) *Deck {
	items := make([]model.Item, 0, len(ids))
	for _, id := range ids {
		items = append(items, model.NewItem(id))
	}
	return New(items)
}

func (d *Deck) Len() int      { return len(d.items) }
func (d *Deck) Cursor() int   { return d.cursor }
func (d *Deck) AtIntro() bool { return d.cursor == Intro }

// Done reports whether every item has been resolved.
func (d *Deck) Done() bool {
	return d.cursor >= len(d.items)
}

// Current returns the item under the cursor. ok is false at intro and done.
func (d *Deck) Current() (model.Item, bool) {
	if d.cursor < 0 || d.cursor >= len(d.items) {
		return model.Item{}, false
	}
	return d.items[d.cursor], true
}

// IDs returns the item ids in deck order.
func (d *Deck) IDs() []string {
	ids := make([]string, len(d.items))
	for i, it := range d.items {
		ids[i] = it.ID
	}
	return ids
}

// Advance moves the cursor one position forward. It is a no-op once done.
func (d *Deck) Advance() {
	if d.Done() {
		return
	}
	d.cursor++
}

// Reset returns the cursor to intro.
func (d *Deck) Reset() {
	d.cursor = Intro
}

// Stack returns up to limit cards starting at the cursor, front card first.
func (d *Deck) Stack(limit int) []Card {
	var cards []Card
	for depth := 0; depth < limit; depth++ {
		idx := d.cursor + depth
		switch {
		case idx == Intro:
			cards = append(cards, Card{Item: model.IntroItem(), Index: Intro, Depth: depth})
		case idx >= 0 && idx < len(d.items):
			cards = append(cards, Card{Item: d.items[idx], Index: idx, Depth: depth})
		default:
			return cards
		}
	}
	return cards
}
