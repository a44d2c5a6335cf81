package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/gfx"
	"github.com/vovakirdan/tui-engine/internal/input"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/stage"
	"github.com/vovakirdan/tui-engine/internal/storage"
)

// Model is the Bubble Tea model hosting the engine. Tick messages drive
// the stage's frame scheduler; the stage runs the active screen and draws
// into the cell buffer the model renders.
type Model struct {
	demo    registry.Demo
	st      *stage.Stage
	sched   *stage.ManualScheduler
	screen  *gfx.Screen
	store   *storage.Store
	keys    *KeyMapper
	frame   *input.Frame
	pointer *input.Pointer
	surface *termSurface

	cfg       config.RuntimeConfig
	engineCfg config.EngineConfig
	logger    *log.Logger

	startedAt  time.Time
	quitting   bool
	scoreSaved bool
	installErr error
}

// NewModel creates a Bubble Tea model hosting the given demo.
func NewModel(demo registry.Demo, store *storage.Store, engineCfg config.EngineConfig, cfg config.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = engineCfg.Loop.TickRate
	}
	if cfg.Gravity == 0 {
		cfg.Gravity = engineCfg.Physics.Gravity
	}

	screen := gfx.NewScreen(cfg.ScreenW, cfg.ScreenH)
	sched := stage.NewManualScheduler()
	st := stage.New(screen, sched)
	st.SetTickRate(cfg.TickRate)
	if logger != nil {
		st.SetLogger(logger)
	}
	if engineCfg.Fade.DurationMs > 0 {
		st.SetFade(fadeColor(engineCfg.Fade.Color), time.Duration(engineCfg.Fade.DurationMs)*time.Millisecond)
	}

	surface := &termSurface{width: cfg.ScreenW, height: cfg.ScreenH}

	m := Model{
		demo:      demo,
		st:        st,
		sched:     sched,
		screen:    screen,
		store:     store,
		keys:      NewKeyMapper(),
		frame:     input.NewFrame(),
		pointer:   input.NewPointer(surface, cellViewport{}),
		surface:   surface,
		cfg:       cfg,
		engineCfg: engineCfg,
		logger:    logger,
		startedAt: time.Now(),
	}

	start, err := demo.Install(st, cfg, m.frame)
	if err != nil {
		m.installErr = err
		return m
	}
	if err := st.Change(start); err != nil {
		m.installErr = err
	}
	return m
}

// InstallErr returns the error from wiring the demo onto the stage, if any.
func (m Model) InstallErr() error {
	return m.installErr
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	if m.installErr != nil {
		return tea.Quit
	}
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	}

	// Pause is a loop-level control, not a screen action
	if action == input.ActionPause {
		if m.st.Paused() {
			m.st.Resume()
		} else {
			m.st.Pause()
		}
		return m, nil
	}

	if action != input.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

// handleMouse normalizes a terminal mouse event and hands it to the demo.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	ev := m.keys.MapMouse(msg)
	if ev == nil {
		return m, nil
	}

	m.pointer.SetEvent(ev, float64(msg.X), float64(msg.Y), nil)
	if h, ok := m.demo.(registry.PointerHandler); ok {
		h.HandlePointer(m.pointer)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.cfg.ScreenW = msg.Width
	m.cfg.ScreenH = msg.Height
	m.surface.width = msg.Width
	m.surface.height = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick fires the stage's pending frame and reschedules.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.sched.Fire(now)

	// Save score once when a run ends
	if m.st.IsCurrent(stage.StateGameOver) || m.st.IsCurrent(stage.StateGameEnd) {
		if !m.scoreSaved && m.demo.Score() > 0 {
			if m.store != nil {
				//nolint:errcheck // Best-effort save, session continues regardless
				m.store.SaveScore(m.demo.ID(), m.demo.Score())
			}
			m.scoreSaved = true
		}
	} else {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.frame.Clear()

	return m, tickCmd(m.cfg.TickRate)
}

// saveRun records the finished session before quitting.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}
	run := storage.RunEntry{
		DemoID:   m.demo.ID(),
		State:    stateName(m.st.CurrentState()),
		Duration: time.Since(m.startedAt),
		Score:    m.demo.Score(),
	}
	//nolint:errcheck // Best-effort save on the way out
	m.store.SaveRun(run)
}

// View renders the current frame, applying the transition fade overlay.
func (m Model) View() string {
	if m.quitting || m.installErr != nil {
		return ""
	}
	return RenderScreenWithFade(m.screen, m.st.FadeAlpha(), m.st.FadeColor())
}

// fadeColor maps a config color name onto a cell color.
func fadeColor(name string) gfx.Color {
	switch name {
	case "white":
		return gfx.ColorWhite
	case "gray":
		return gfx.ColorGray
	default:
		return gfx.ColorBlack
	}
}

// stateName returns a storage-friendly name for a stage state.
func stateName(s stage.State) string {
	switch s {
	case stage.StateLoading:
		return "LOADING"
	case stage.StateMenu:
		return "MENU"
	case stage.StateReady:
		return "READY"
	case stage.StatePlay:
		return "PLAY"
	case stage.StateGameOver:
		return "GAMEOVER"
	case stage.StateGameEnd:
		return "GAMEEND"
	case stage.StateScore:
		return "SCORE"
	case stage.StateCredits:
		return "CREDITS"
	case stage.StateSettings:
		return "SETTINGS"
	case stage.StateNone:
		return "NONE"
	default:
		return "USER"
	}
}

// Run starts the Bubble Tea program hosting the given demo.
func Run(demo registry.Demo, store *storage.Store, engineCfg config.EngineConfig, cfg config.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(demo, store, engineCfg, cfg, logger)
	if err := model.InstallErr(); err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pointer input for demos that use it
	)

	_, err := p.Run()
	return err
}
