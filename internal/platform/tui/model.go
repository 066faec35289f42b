package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/dodge-blocks/internal/core"
	"github.com/vovakirdan/dodge-blocks/internal/platform/driver"
	"github.com/vovakirdan/dodge-blocks/internal/platform/sound"
	"github.com/vovakirdan/dodge-blocks/internal/registry"
)

// helpRows is the number of terminal rows reserved below the playfield.
const helpRows = 1

// Model is the Bubble Tea model running one game.
type Model struct {
	driver   *driver.Driver
	screen   *core.Screen
	canvas   *core.CellCanvas
	hold     *core.HoldTracker
	frame    core.InputFrame
	keys     KeyMap
	help     help.Model
	log      sessionLog
	showLog  bool
	tickRate int
	quitting bool
}

// NewModel creates a model for the environment's game. playerName tags
// sessions in the log; best is the highscore the game reports to.
func NewModel(env registry.Env, playerName string, best *core.Highscore, opts ...driver.Option) Model {
	game := env.NewGame(best)

	opts = append([]driver.Option{
		driver.WithStore(env.Store),
		driver.WithLogger(env.Logger),
		driver.WithPlayer(playerName),
	}, opts...)
	d := driver.New(game, opts...)
	rt := d.Reset(env.Runtime)

	width := max(rt.ScreenW, 1)
	height := max(rt.ScreenH-helpRows, 1)
	screen := core.NewScreen(width, height)

	h := help.New()
	h.ShowAll = false
	h.Width = width

	return Model{
		driver:   d,
		screen:   screen,
		canvas:   core.NewCellCanvas(screen, env.Config.World.Width, env.Config.World.Height),
		hold:     core.NewHoldTracker(env.Config.Input.HoldTicks(rt.TickRate)),
		frame:    core.NewInputFrame(),
		keys:     DefaultKeyMap(),
		help:     h,
		log:      newSessionLog(env.Store, game.ID(), rt.ScreenW, rt.ScreenH),
		tickRate: rt.TickRate,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		if m.showLog && msg.String() == "esc" {
			m.showLog = false
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Sessions) && m.driver.State().Phase != "Gameplay" {
		m.showLog = !m.showLog
		if m.showLog {
			m.log.refresh()
		}
		return m, nil
	}

	if m.showLog {
		var cmd tea.Cmd
		m.log, cmd = m.log.update(msg)
		return m, cmd
	}

	if k := m.keys.Lookup(msg); k != core.KeyNone {
		m.hold.Press(k, &m.frame)
	}
	return m, nil
}

// handleResize keeps the world scaled to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(max(msg.Width, 1), max(msg.Height-helpRows, 1))
	m.help.Width = msg.Width
	m.log.resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs exactly one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Tick(&m.frame)
	res := m.driver.Tick(m.frame)
	m.frame.Clear()

	if res.State.Phase == "Gameplay" {
		m.showLog = false
	}

	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showLog {
		return m.log.view()
	}

	m.driver.Render(m.canvas)

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	keys := m.keys.ForPhase(m.driver.State().Phase)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(keys))
}

// Driver returns the model's game driver.
func (m Model) Driver() *driver.Driver {
	return m.driver
}

// Run plays the game in the local terminal until the user quits.
func Run(ctx context.Context, env registry.Env) error {
	var opts []driver.Option
	if env.Sound {
		player := sound.NewPlayer()
		if err := player.Init(); err != nil {
			env.Logger.Warn("sound disabled", "error", err)
		} else {
			defer player.Close()
			opts = append(opts, driver.WithCues(player))
		}
	}

	model := NewModel(env, "local", core.NewHighscore(0), opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
