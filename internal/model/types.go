package model

import (
	"path"
	"unicode"
	"unicode/utf8"
)

// IntroID identifies the intro card shown before the first item.
const IntroID = "main"

// Item is one swipeable card.
type Item struct {
	ID    string
	Image string // image reference relative to the assets dir
}

// NewItem builds an item using the images/<id>.png convention.
func NewItem(id string) Item {
	return Item{ID: id, Image: path.Join("images", id+".png")}
}

// IntroItem returns the card displayed at the intro position.
func IntroItem() Item {
	return Item{ID: IntroID, Image: path.Join("images", IntroID+".png")}
}

// DisplayName upper-cases the first letter of the id.
func (i Item) DisplayName() string {
	return DisplayName(i.ID)
}

// DisplayName upper-cases the first letter of id.
func DisplayName(id string) string {
	r, size := utf8.DecodeRuneInString(id)
	if r == utf8.RuneError {
		return id
	}
	return string(unicode.ToUpper(r)) + id[size:]
}

// Decision is the outcome of a released drag.
type Decision int

const (
	DecisionNone Decision = iota
	DecisionLeft
	DecisionRight
)

func (d Decision) String() string {
	switch d {
	case DecisionLeft:
		return "left"
	case DecisionRight:
		return "right"
	default:
		return "none"
	}
}

// Icon identifies a reaction icon.
type Icon int

const (
	IconNone Icon = iota
	IconLike
	IconDislike
)

// IconFor returns the reaction icon matching a committed decision.
func IconFor(d Decision) Icon {
	switch d {
	case DecisionRight:
		return IconLike
	case DecisionLeft:
		return IconDislike
	default:
		return IconNone
	}
}

// IconState is the rendered state of the reaction icon. Only one icon is ever
// visible at a time.
type IconState struct {
	Icon    Icon
	Scale   float64 // 0..5
	Opacity float64 // 0..1
}

// Visible reports whether an icon should be drawn.
func (s IconState) Visible() bool {
	return s.Icon != IconNone
}

// Ranking is one leaderboard row.
type Ranking struct {
	ID    string
	Count int
}

// Screen is the top-level screen being shown.
type Screen int

const (
	ScreenSwipe Screen = iota
	ScreenResults
	ScreenNight
)

func (s Screen) String() string {
	switch s {
	case ScreenResults:
		return "results"
	case ScreenNight:
		return "night"
	default:
		return "swipe"
	}
}
