package tui

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rockflight/internal/config"
	"github.com/vovakirdan/rockflight/internal/core"
	"github.com/vovakirdan/rockflight/internal/flight"
	"github.com/vovakirdan/rockflight/internal/logging"
	"github.com/vovakirdan/rockflight/internal/scene"
)

// Renderer is implemented by scenes that can draw onto a character grid.
type Renderer interface {
	Render(dst *core.Screen)
}

// InputHandler is implemented by scenes that react to player actions.
type InputHandler interface {
	HandleInput(in core.InputFrame)
}

// Options configures one terminal session.
type Options struct {
	Runtime       core.RuntimeConfig
	Flight        config.FlightConfig
	AssetDir      string
	Logger        *log.Logger
	ConfigUpdates <-chan config.FlightConfig
	ScreenshotDir string // Empty selects ~/.rockflight/screenshots
}

// Model is the Bubble Tea model running a scene director in the terminal.
type Model struct {
	director *scene.Director
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	logger   *log.Logger
	shotDir  string
	lastTick time.Time
	quitting bool
}

// NewModel creates the director and starts the loading scene.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	d := scene.NewDirector(scene.Context{
		Config:        opts.Flight,
		Logger:        logger,
		Rand:          rand.New(rand.NewSource(cfg.Seed)),
		AssetDir:      opts.AssetDir,
		ConfigUpdates: opts.ConfigUpdates,
	})
	if err := d.Start(flight.SceneLoad); err != nil {
		return Model{}, fmt.Errorf("cannot start %s scene: %w", flight.SceneLoad, err)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		director: d,
		screen:   core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:   cfg,
		keys:     DefaultKeyMap(),
		help:     h,
		input:    core.NewInputFrame(),
		logger:   logger,
		shotDir:  opts.ScreenshotDir,
	}, nil
}

// playRows leaves the bottom row for the help line.
func playRows(h int) int {
	return core.Max(h-1, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.director.Stop()
		return m, tea.Quit
	case core.ActionNone:
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleTick feeds this frame's input to the scene and advances it by the
// wall-clock time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	delta := m.config.FrameDeltaMs()
	if !m.lastTick.IsZero() {
		delta = float64(now.Sub(m.lastTick)) / float64(time.Millisecond)
	}
	m.lastTick = now

	if h, ok := m.director.Current().(InputHandler); ok {
		h.HandleInput(m.input)
	}
	m.input.Clear()
	m.director.Update(delta)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".rockflight", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("rockflight_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m *Model) draw() {
	if r, ok := m.director.Current().(Renderer); ok {
		r.Render(m.screen)
		return
	}
	m.screen.Clear()
}

// View renders the current scene and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Director returns the scene director driven by the model.
func (m Model) Director() *scene.Director {
	return m.director
}

// Run starts the Bubble Tea program for a local terminal session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
