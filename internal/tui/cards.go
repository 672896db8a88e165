package tui

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/heyojules/flippr/internal/deck"
	"github.com/heyojules/flippr/internal/model"
)

const (
	cardWidth  = 30
	cardHeight = 11
)

var penguinArt = []string{
	"   .--.   ",
	"  |o_o |  ",
	"  |:_/ |  ",
	" //   \\ \\ ",
	"(|     | )",
	"/'\\_   _/`\\",
	"\\___)=(___/",
}

// renderCard draws one card. The intro card carries the call to action
// instead of an item name.
func renderCard(c deck.Card, assetsDir string) string {
	var name, hint string
	if c.Index == deck.Intro {
		name = "flippr"
		hint = "swipe right to start →"
	} else {
		name = c.Item.DisplayName()
		hint = filepath.Join(assetsDir, c.Item.Image)
	}

	inner := cardWidth - 4
	lines := []string{cardNameStyle.Render(ansi.Truncate(name, inner, "…")), ""}
	for _, l := range penguinArt {
		lines = append(lines, lipgloss.PlaceHorizontal(inner, lipgloss.Center, l))
	}
	lines = append(lines, "", cardImageStyle.Render(ansi.Truncate(hint, inner, "…")))

	return cardStyle.Width(cardWidth - 2).Height(cardHeight).Render(strings.Join(lines, "\n"))
}

// renderStack draws the front card shifted by offset with the deeper cards
// peeking out underneath as ledges, narrower with each level of depth.
func renderStack(cards []deck.Card, offset float64, width int, assetsDir string) string {
	if len(cards) == 0 || width <= 0 {
		return ""
	}

	front := renderCard(cards[0], assetsDir)
	left := (width-cardWidth)/2 + int(math.Round(offset))
	block := []string{shiftBlock(front, left, width)}

	for _, c := range cards[1:] {
		inset := 2 * c.Depth
		ledge := ledgeStyle.Render("╰" + strings.Repeat("─", max(cardWidth-2-2*inset, 0)) + "╯")
		block = append(block, shiftBlock(ledge, (width-cardWidth)/2+inset, width))
	}
	return strings.Join(block, "\n")
}

// shiftBlock moves every line of block left columns to the right (negative
// moves left) and clips it to width.
func shiftBlock(block string, left, width int) string {
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		if left >= 0 {
			l = strings.Repeat(" ", left) + l
		} else {
			l = ansi.Cut(l, -left, ansi.StringWidth(l))
		}
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}

// renderIcon draws the reaction icon centered in a band of height rows. The
// glyph grid grows with the scale and its shade follows the opacity.
func renderIcon(s model.IconState, width, height int) string {
	blank := lipgloss.NewStyle().Width(width).Height(height).Render("")
	if !s.Visible() || s.Opacity <= 0 || s.Scale <= 0 {
		return blank
	}

	size := int(math.Round(s.Scale))
	size = max(1, min(size, height))

	glyph, shades := "♥", likeShades
	if s.Icon == model.IconDislike {
		glyph, shades = "✕", dislikeShades
	}
	shade := shades[int(math.Round(s.Opacity*float64(len(shades)-1)))]
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(shade)).Bold(true)

	row := strings.TrimSpace(strings.Repeat(glyph+" ", size))
	rows := make([]string, size)
	for i := range rows {
		rows[i] = style.Render(row)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(rows, "\n"))
}
