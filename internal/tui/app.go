package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/heyojules/flippr/internal/model"
	"github.com/heyojules/flippr/internal/swipe"
)

// FrameMsg advances the swipe timeline by one rendered frame.
type FrameMsg time.Time

// NightPollMsg triggers a night-mode check.
type NightPollMsg time.Time

// AppOptions configures the App loops.
type AppOptions struct {
	FrameInterval     time.Duration
	NightPollInterval time.Duration
	Player            model.SoundPlayer
	Keys              KeyMap
}

// App is the top-level Bubble Tea model. It routes between pages, owns the
// frame and night-poll loops, and blanks the screen while night mode is on.
type App struct {
	pages      map[string]Page
	activePage string
	width      int
	height     int

	ctrl    *swipe.Controller
	opts    AppOptions
	framing bool
}

// NewApp creates a new App with the given pages. The first page is the default.
func NewApp(ctrl *swipe.Controller, opts AppOptions, pages ...Page) *App {
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = model.DefaultFrameInterval
	}
	if opts.NightPollInterval <= 0 {
		opts.NightPollInterval = model.DefaultNightPollInterval
	}

	pageMap := make(map[string]Page, len(pages))
	var firstID string
	for i, p := range pages {
		pageMap[p.ID()] = p
		if i == 0 {
			firstID = p.ID()
		}
	}
	return &App{
		pages:      pageMap,
		activePage: firstID,
		ctrl:       ctrl,
		opts:       opts,
	}
}

// ActivePage returns the id of the page currently routed to.
func (a *App) ActivePage() string { return a.activePage }

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.nightPollCmd()}
	if p, ok := a.pages[a.activePage]; ok {
		cmds = append(cmds, p.Init())
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Pass WindowSizeMsg to all pages so they can track dimensions.
		a.width = msg.Width
		a.height = msg.Height
		a.ctrl.SetWidth(msg.Width)
		var cmds []tea.Cmd
		for _, p := range a.pages {
			cmd, _ := p.Update(msg)
			cmds = append(cmds, cmd)
		}
		return a, tea.Batch(cmds...)

	case tea.KeyMsg:
		if key.Matches(msg, a.opts.Keys.ForceQuit) || key.Matches(msg, a.opts.Keys.Quit) {
			return a, tea.Quit
		}
		if a.ctrl.Screen() == model.ScreenNight {
			return a, nil
		}

	case tea.MouseMsg:
		if a.ctrl.Screen() == model.ScreenNight {
			return a, nil
		}

	case NightPollMsg:
		if a.ctrl.PollNight() {
			a.syncPage()
		}
		return a, a.nightPollCmd()

	case animateMsg:
		return a, a.startFrames()

	case FrameMsg:
		cmds := effectCmds(a.opts.Player, a.ctrl.Tick())
		a.syncPage()
		if a.ctrl.Animating() {
			cmds = append(cmds, a.frameCmd())
		} else {
			a.framing = false
		}
		return a, tea.Batch(cmds...)
	}

	p, ok := a.pages[a.activePage]
	if !ok {
		return a, nil
	}

	cmd, nav := p.Update(msg)
	if nav != nil {
		if _, exists := a.pages[nav.PageID]; exists {
			a.activePage = nav.PageID
			initCmd := a.pages[a.activePage].Init()
			return a, tea.Batch(cmd, initCmd)
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width <= 0 || a.height <= 0 {
		return "Starting flippr..."
	}
	if a.ctrl.Screen() == model.ScreenNight {
		return renderNight(a.width, a.height)
	}
	if p, ok := a.pages[a.activePage]; ok {
		return p.View(a.width, a.height)
	}
	return "No active page"
}

// syncPage routes to the page matching the controller's screen. Night keeps
// the underlying page so it reappears unchanged in the morning.
func (a *App) syncPage() {
	var want string
	switch a.ctrl.Screen() {
	case model.ScreenSwipe:
		want = PageSwipe
	case model.ScreenResults:
		want = PageResults
	default:
		return
	}
	if _, ok := a.pages[want]; ok {
		a.activePage = want
	}
}

func (a *App) startFrames() tea.Cmd {
	if a.framing || !a.ctrl.Animating() {
		return nil
	}
	a.framing = true
	return a.frameCmd()
}

func (a *App) frameCmd() tea.Cmd {
	return tea.Tick(a.opts.FrameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

func (a *App) nightPollCmd() tea.Cmd {
	return tea.Tick(a.opts.NightPollInterval, func(t time.Time) tea.Msg {
		return NightPollMsg(t)
	})
}
