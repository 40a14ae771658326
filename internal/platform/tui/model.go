package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// Model is the Bubble Tea model that hosts one game session. Bubble Tea
// delivers every message on a single goroutine, so the world is only ever
// touched from there.
type Model struct {
	world    *flappy.World
	driver   *flappy.Driver
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	clock    frameClock
	renderer *lipgloss.Renderer
	logger   *log.Logger
	phase    flappy.Phase // Last phase seen, for logging transitions
	quitting bool
}

// NewModel creates a model for a fresh session. The play area is fixed
// from the screen size in cfg and does not follow later resizes.
func NewModel(cfg core.RuntimeConfig, renderer *lipgloss.Renderer, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	playW, playH := cfg.PlayArea(flappy.MinPlayWidth, flappy.MinPlayHeight)
	world := flappy.NewWorld(playW, playH, rand.New(rand.NewSource(cfg.Seed)))
	screen := core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH))
	driver := flappy.NewDriver(world, NewCanvas(screen, playW, playH), cfg.TouchPrimary)
	driver.Render()

	h := newHelp(renderer)
	h.Width = cfg.ScreenW

	logger.Info("session started",
		"play_area", fmt.Sprintf("%.0fx%.0f", playW, playH),
		"seed", cfg.Seed,
		"touch", cfg.TouchPrimary,
	)

	return Model{
		world:    world,
		driver:   driver,
		screen:   screen,
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		clock:    newFrameClock(),
		renderer: renderer,
		logger:   logger,
		phase:    world.Phase(),
	}
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isTouch(msg) {
			m.driver.Touch()
			m.observePhase()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("session ended", "score", m.world.Score, "phase", m.world.Phase())
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	m.driver.Handle(m.keys.Event(msg))
	m.observePhase()
	return m, nil
}

// handleResize follows the terminal size. The world keeps its play area;
// the canvas stretches it over the new screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width
	m.driver.Render()
	return m, nil
}

// handleTick runs one frame and schedules the next.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	m.driver.Frame(m.clock.millis(time.Time(msg)))
	m.observePhase()
	return m, tickCmd(m.config.TickRate)
}

// observePhase logs phase transitions.
func (m *Model) observePhase() {
	next := m.world.Phase()
	if next == m.phase {
		return
	}

	switch next {
	case flappy.PhaseRunning:
		m.logger.Debug("run started")
	case flappy.PhaseDead:
		m.logger.Info("run ended",
			"score", m.world.Score,
			"distance", fmt.Sprintf("%.0f", m.world.Distance),
			"speed", fmt.Sprintf("%.1f", m.world.Speed),
		)
	case flappy.PhaseNotStarted:
		m.logger.Debug("world reset")
	}
	m.phase = next
}

// saveScreenshot saves the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}

	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last frame followed by the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	keys := m.keys
	keys.Restart.SetEnabled(m.world.Dead)

	return RenderScreen(m.renderer, m.screen) + "\n" + m.help.View(keys)
}

// World returns the session's world.
func (m Model) World() *flappy.World {
	return m.world
}

// Run starts a local session in the current terminal.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, lipgloss.DefaultRenderer(), logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Taps and clicks arrive as mouse presses
	)

	_, err := p.Run()
	return err
}

// newHelp creates the help footer with keys in the default colour and
// descriptions dimmed, styled for the session's renderer.
func newHelp(r *lipgloss.Renderer) help.Model {
	h := help.New()
	plain := r.NewStyle()
	dim := r.NewStyle().Foreground(lipgloss.Color(core.ColorGray))
	h.Styles.ShortKey, h.Styles.FullKey = plain, plain
	h.Styles.ShortDesc, h.Styles.FullDesc = dim, dim
	h.Styles.ShortSeparator, h.Styles.FullSeparator = dim, dim
	h.Styles.Ellipsis = dim
	return h
}

// playRows is the number of screen rows left for the play area once the
// help line is reserved.
func playRows(height int) int {
	return core.Max(height-1, 1)
}
