package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/swipe"
)

const (
	chartHeight   = 8
	maxChartWidth = 60
)

// ResultsPage shows the leaderboard once the deck is exhausted.
type ResultsPage struct {
	ctrl *swipe.Controller
	keys KeyMap
	help help.Model

	// Screen row and column span [buttonX0, buttonX1) of the start-over
	// button at the last render.
	buttonRow          int
	buttonX0, buttonX1 int
}

// NewResultsPage creates the results screen.
func NewResultsPage(ctrl *swipe.Controller, keys KeyMap) *ResultsPage {
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	return &ResultsPage{ctrl: ctrl, keys: keys, help: h, buttonRow: -1}
}

func (p *ResultsPage) ID() string    { return PageResults }
func (p *ResultsPage) Init() tea.Cmd { return nil }

func (p *ResultsPage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.StartOver):
			return p.startOver()
		case key.Matches(msg, p.keys.Help):
			p.help.ShowAll = !p.help.ShowAll
		}

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && p.onButton(msg.X, msg.Y) {
			return p.startOver()
		}
	}
	return nil, nil
}

func (p *ResultsPage) onButton(x, y int) bool {
	return y == p.buttonRow && x >= p.buttonX0 && x < p.buttonX1
}

func (p *ResultsPage) startOver() (tea.Cmd, *PageNav) {
	p.ctrl.StartOver()
	return nil, &PageNav{PageID: PageSwipe}
}

func (p *ResultsPage) View(width, height int) string {
	ranked := p.ctrl.Ranked()
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	sections := []string{
		center(logoStyle.Render("🐧 flippr")),
		"",
		center(messageStyle.Render("You've run out of potential\nmatches in your area.\nPenguins are pretty loyal!")),
		"",
		center(titleStyle.Render("Here's the most popular\npenguins in the last 12 months")),
		"",
	}
	if chart := renderLeaderboardChart(ranked, min(width-4, maxChartWidth)); chart != "" {
		sections = append(sections, center(chart), "")
	}
	sections = append(sections, center(renderLeaderboard(ranked)), "")

	above := lipgloss.JoinVertical(lipgloss.Left, sections...)
	p.buttonRow = lipgloss.Height(above)
	rendered := buttonStyle.Render("Start over")
	button := center(rendered)
	p.buttonX0 = leadingSpaces(button) - leadingSpaces(rendered)
	p.buttonX1 = p.buttonX0 + lipgloss.Width(rendered)
	footer := center(p.help.View(resultsKeys{p.keys}))

	body := lipgloss.JoinVertical(lipgloss.Left, above, button)
	if gap := height - lipgloss.Height(body) - lipgloss.Height(footer); gap > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, lipgloss.NewStyle().Height(gap).Render(""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

// leadingSpaces counts the blank columns before the first visible cell of a
// single-line string.
func leadingSpaces(s string) int {
	plain := ansi.Strip(s)
	return ansi.StringWidth(plain) - ansi.StringWidth(strings.TrimLeft(plain, " "))
}

// renderLeaderboard lists every item with its like count.
func renderLeaderboard(ranked []model.Ranking) string {
	nameWidth := 0
	for _, r := range ranked {
		nameWidth = max(nameWidth, ansi.StringWidth(model.DisplayName(r.ID)))
	}

	lines := make([]string, 0, len(ranked))
	for _, r := range ranked {
		name := model.DisplayName(r.ID)
		name += strings.Repeat(" ", nameWidth-ansi.StringWidth(name))
		lines = append(lines, fmt.Sprintf("%s  %s  %s", name, heartStyle.Render("♥"), countStyle.Render(fmt.Sprint(r.Count))))
	}
	return strings.Join(lines, "\n")
}

// renderLeaderboardChart draws one bar per item. It returns "" when nobody
// has been liked yet.
func renderLeaderboardChart(ranked []model.Ranking, width int) string {
	if len(ranked) == 0 || width < len(ranked)*2 {
		return ""
	}
	total := 0
	for _, r := range ranked {
		total += r.Count
	}
	if total == 0 {
		return ""
	}

	gap := 1
	barWidth := max(1, (width-gap*(len(ranked)-1))/len(ranked))
	bc := barchart.New(width, chartHeight,
		barchart.WithBarGap(gap),
		barchart.WithBarWidth(barWidth),
	)

	for i, r := range ranked {
		shade := likeShades[len(likeShades)-1-min(i, len(likeShades)-1)]
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(shade)).Background(lipgloss.Color(shade))
		bc.Push(barchart.BarData{
			Label: model.DisplayName(r.ID),
			Values: []barchart.BarValue{
				{Name: r.ID, Value: float64(r.Count), Style: style},
			},
		})
	}

	bc.Draw()
	return bc.View()
}
