package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/swipe"
)

const iconBandHeight = 5

// animateMsg asks the App to run frames until the controller settles.
type animateMsg struct{}

func requestFrames() tea.Msg { return animateMsg{} }

// SwipePage shows the card stack. Mouse press/motion/release drive the
// front card; the like/nope keys replay a full-width drag.
type SwipePage struct {
	ctrl      *swipe.Controller
	keys      KeyMap
	help      help.Model
	assetsDir string
	width     int
}

// NewSwipePage creates the swipe screen.
func NewSwipePage(ctrl *swipe.Controller, keys KeyMap, assetsDir string) *SwipePage {
	h := help.New()
	h.Styles.ShortKey = helpStyle
	h.Styles.ShortDesc = helpStyle
	return &SwipePage{ctrl: ctrl, keys: keys, help: h, assetsDir: assetsDir}
}

func (p *SwipePage) ID() string    { return PageSwipe }
func (p *SwipePage) Init() tea.Cmd { return nil }

func (p *SwipePage) Update(msg tea.Msg) (tea.Cmd, *PageNav) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.help.Width = msg.Width

	case tea.MouseMsg:
		return p.handleMouse(msg), nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Like):
			return p.replayDrag(1), nil
		case key.Matches(msg, p.keys.Dislike):
			return p.replayDrag(-1), nil
		case key.Matches(msg, p.keys.Help):
			p.help.ShowAll = !p.help.ShowAll
		}
	}
	return nil, nil
}

func (p *SwipePage) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x := float64(msg.X)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			p.ctrl.Press(x)
		}
	case tea.MouseActionMotion:
		p.ctrl.Drag(x)
	case tea.MouseActionRelease:
		p.ctrl.Drag(x)
		p.ctrl.Release()
		return requestFrames
	}
	return nil
}

// replayDrag feeds the tracker a drag across the whole viewport in dir.
func (p *SwipePage) replayDrag(dir float64) tea.Cmd {
	origin := p.ctrl.Width() / 2
	if !p.ctrl.Press(origin) {
		return nil
	}
	p.ctrl.Drag(origin + dir*p.ctrl.Width())
	p.ctrl.Release()
	return requestFrames
}

func (p *SwipePage) View(width, height int) string {
	cards := p.ctrl.Deck().Stack(model.DefaultStackDepth)
	icon := renderIcon(p.ctrl.Icon(), width, iconBandHeight)
	stack := renderStack(cards, p.ctrl.CardOffset(), width, p.assetsDir)
	header := lipgloss.PlaceHorizontal(width, lipgloss.Center, logoStyle.Render("🐧 flippr"))
	footer := lipgloss.PlaceHorizontal(width, lipgloss.Center, p.help.View(p.keys))

	body := lipgloss.JoinVertical(lipgloss.Left, header, icon, stack)
	gap := height - lipgloss.Height(body) - lipgloss.Height(footer)
	if gap > 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, lipgloss.NewStyle().Height(gap).Render(""))
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}
