package app

import (
	"context"
	"fmt"
	"time"

	"canvasmenu/canvas"
	"canvasmenu/clip"
	"canvasmenu/config"
	"canvasmenu/dispatch"
	"canvasmenu/keys"
	"canvasmenu/log"
	"canvasmenu/menu"
	"canvasmenu/strategies"
	"canvasmenu/ui"
	"canvasmenu/ui/overlay"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Run is the main entrypoint into the application.
func Run(ctx context.Context, cfg *config.Config) error {
	appState := config.LoadState()
	p := tea.NewProgram(
		newHome(ctx, cfg, appState, clip.NewFallback(clip.System{})),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Right click opens menus
	)

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	go func() {
		err := config.Watch(watchCtx, func(cfg *config.Config) {
			p.Send(configReloadedMsg{cfg: cfg})
		})
		if err != nil {
			log.WarningLog.Printf("config changes will not be picked up: %v", err)
		}
	}()

	_, err := p.Run()
	return err
}

type state int

const (
	stateDefault state = iota
	// stateMenu is the state when a context menu is open. It is modal.
	stateMenu
	// stateHelp is the state when a help screen is displayed.
	stateHelp
	// stateClipboard is the state when the clipboard text is being edited.
	stateClipboard
)

// stateStore is the persisted state the app reads and writes.
type stateStore interface {
	config.AppState
	ui.CursorStore
	Close() error
}

// configReloadedMsg carries a config that changed on disk.
type configReloadedMsg struct {
	cfg *config.Config
}

// clearNoticeMsg clears the notice with the given sequence number.
type clearNoticeMsg struct {
	seq int
}

type home struct {
	ctx context.Context

	// -- Storage and Configuration --

	// appConfig stores persistent application configuration
	appConfig *config.Config
	// appState stores persistent application state like seen help screens
	appState stateStore

	// -- State --

	state state
	// dispatcher resolves which menu a trigger gets
	dispatcher *dispatch.Dispatcher
	// pending is the menu waiting for a choice while in stateMenu
	pending   *dispatch.Pending
	clipboard clip.Writer

	width, height int

	// -- UI Components --

	canvas  *ui.CanvasView
	notices *ui.NoticeBar
	footer  *ui.Footer
	// menuOverlay draws the open context menu
	menuOverlay *overlay.ContextMenuOverlay
	// textOverlay displays text information
	textOverlay *overlay.TextOverlay
	// textInputOverlay edits the clipboard text
	textInputOverlay *overlay.TextInputOverlay
}

func newHome(ctx context.Context, cfg *config.Config, appState stateStore, clipboard clip.Writer) *home {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	scene := canvas.FromConfig(cfg.Items)
	notices := ui.NewNoticeBar()

	h := &home{
		ctx:       ctx,
		appConfig: cfg,
		appState:  appState,
		state:     stateDefault,
		clipboard: clipboard,
		canvas:    ui.NewCanvasView(scene, appState),
		notices:   notices,
		footer:    ui.NewFooter(),
	}
	h.dispatcher = dispatch.New(strategies.NewRegistry(), scene, nil, dispatch.Options{
		Canvas:    scene,
		Notifier:  notices,
		Clipboard: clipboard,
	})
	log.InfoLog.Printf("canvas ready: %s, menus for %v", scene, h.dispatcher.Registry().Kinds())

	h.showHelpScreen(helpTypeWelcome{}, nil)
	return h
}

// updateHandleWindowSizeEvent sets the sizes of the components.
// The components will try to render inside their bounds.
func (m *home) updateHandleWindowSizeEvent(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height

	// One row each for the notice bar and the footer.
	m.canvas.SetSize(msg.Width, max(msg.Height-2, 0))
	m.notices.SetWidth(msg.Width)
	m.footer.SetWidth(msg.Width)

	if m.menuOverlay != nil {
		m.menuOverlay.SetSize(msg.Width, msg.Height)
	}
	if m.textOverlay != nil {
		m.textOverlay.SetWidth(int(float32(msg.Width) * 0.6))
	}
	if m.textInputOverlay != nil {
		m.textInputOverlay.SetWidth(int(float32(msg.Width) * 0.6))
	}
}

func (m *home) Init() tea.Cmd {
	return nil
}

func (m *home) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearNoticeMsg:
		m.notices.Clear(msg.seq)
		return m, nil
	case configReloadedMsg:
		return m, m.applyConfig(msg.cfg)
	case tea.WindowSizeMsg:
		m.updateHandleWindowSizeEvent(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case error:
		return m, m.handleError(msg)
	}
	return m, nil
}

// applyConfig switches to cfg. The canvas is rebuilt from the configured items; an
// open menu keeps working on the items it was opened for, which are now detached.
func (m *home) applyConfig(cfg *config.Config) tea.Cmd {
	m.appConfig = cfg
	m.canvas.Scene().Reset(canvas.FromConfig(cfg.Items))

	before := m.notices.Seq()
	m.notices.Notify("Config", "reloaded")
	return m.noticeCmd(before)
}

func (m *home) handleQuit() (tea.Model, tea.Cmd) {
	if m.pending != nil {
		m.pending.Dismiss()
	}
	if err := m.appState.Close(); err != nil {
		log.WarningLog.Printf("Failed to close state manager: %v", err)
	}
	return m, tea.Quit
}

func (m *home) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		if m.menuOverlay.HandleKeyPress(msg) {
			return m, m.closeMenu()
		}
		return m, nil
	case stateHelp:
		return m.handleHelpState(msg)
	case stateClipboard:
		before := m.notices.Seq()
		if m.textInputOverlay.HandleKeyPress(msg) {
			m.textInputOverlay = nil
			m.state = stateDefault
		}
		return m, m.noticeCmd(before)
	}

	name, ok := keys.GlobalKeyStringsMap[msg.String()]
	if !ok {
		return m, nil
	}
	switch name {
	case keys.KeyUp:
		m.canvas.Move(0, -1)
	case keys.KeyDown:
		m.canvas.Move(0, 1)
	case keys.KeyLeft:
		m.canvas.Move(-1, 0)
	case keys.KeyRight:
		m.canvas.Move(1, 0)
	case keys.KeyMenu:
		if !m.openMenu(m.canvas.Cursor()) {
			return m, m.handleError(fmt.Errorf("no menu for the item at (%d,%d)", m.canvas.Cursor().X, m.canvas.Cursor().Y))
		}
	case keys.KeyClipboard:
		m.editClipboard()
	case keys.KeyHelp:
		return m.showHelpScreen(helpTypeGeneral{}, nil)
	case keys.KeyQuit:
		return m.handleQuit()
	}
	return m, nil
}

func (m *home) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		if m.menuOverlay.HandleMouse(msg) {
			return m, m.closeMenu()
		}
		return m, nil
	case stateHelp:
		if msg.Action == tea.MouseActionPress {
			return m.handleHelpState(tea.KeyMsg{Type: tea.KeyEsc})
		}
		return m, nil
	case stateClipboard:
		return m, nil
	}

	if msg.Action != tea.MouseActionPress {
		return m, nil
	}
	p, ok := m.canvas.ToCanvas(msg.X, msg.Y)
	if !ok {
		return m, nil
	}
	if msg.Button == tea.MouseButtonRight && m.openMenu(p) {
		// Shown menus consume the click.
		return m, nil
	}
	if msg.Button == tea.MouseButtonLeft || msg.Button == tea.MouseButtonRight {
		m.canvas.SetCursor(p)
	}
	return m, nil
}

// openMenu asks the dispatcher for the menu at p and shows it. It reports false
// when no menu applies, leaving the trigger to default handling.
func (m *home) openMenu(p menu.Point) bool {
	pending, ok := m.dispatcher.Open(p)
	if !ok {
		return false
	}
	x, y := m.canvas.ToScreen(p)
	m.pending = pending
	m.menuOverlay = overlay.NewContextMenuOverlay(pending.Menu(), x, y, m.appConfig.MenuMinWidth, m.appConfig.ShowDisabledEntries)
	m.menuOverlay.SetSize(m.width, m.height)
	m.state = stateMenu
	return true
}

// closeMenu runs the chosen entry, if any, and returns to the canvas.
func (m *home) closeMenu() tea.Cmd {
	before := m.notices.Seq()
	if m.pending != nil {
		if m.menuOverlay.Chosen != nil {
			m.pending.Choose(*m.menuOverlay.Chosen)
		} else {
			m.pending.Dismiss()
		}
	}
	m.pending = nil
	m.menuOverlay = nil
	m.state = stateDefault
	return m.noticeCmd(before)
}

func (m *home) editClipboard() {
	current, err := m.clipboard.ReadText()
	if err != nil {
		log.WarningLog.Printf("reading clipboard: %v", err)
	}
	m.textInputOverlay = overlay.NewTextInputOverlay("Clipboard text", current)
	m.textInputOverlay.SetWidth(int(float32(m.width) * 0.6))
	m.textInputOverlay.OnSubmit = func(value string) {
		if err := m.clipboard.WriteText(value); err != nil {
			log.WarningLog.Printf("writing clipboard: %v", err)
			m.notices.Notify("Clipboard", "saved for this session only")
			return
		}
		m.notices.Notify("Clipboard", "updated")
	}
	m.state = stateClipboard
}

// noticeCmd schedules clearing the notice bar when a new notice appeared since before.
func (m *home) noticeCmd(before int) tea.Cmd {
	seq := m.notices.Seq()
	if seq == before {
		return nil
	}
	timeout := time.Duration(m.appConfig.NoticeTimeoutMs) * time.Millisecond
	return func() tea.Msg {
		select {
		case <-m.ctx.Done():
		case <-time.After(timeout):
		}
		return clearNoticeMsg{seq: seq}
	}
}

// handleError handles all errors which get bubbled up to the app. It shows the error
// in the notice bar and returns a tea.Cmd that clears it after the notice timeout.
func (m *home) handleError(err error) tea.Cmd {
	log.ErrorLog.Printf("%v", err)
	before := m.notices.Seq()
	m.notices.Notify(ui.ErrorTitle, err.Error())
	return m.noticeCmd(before)
}

func (m *home) View() string {
	mainView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.canvas.String(),
		m.notices.String(),
		m.footer.String(),
	)

	switch m.state {
	case stateMenu:
		if m.menuOverlay == nil {
			log.ErrorLog.Printf("menu overlay is nil")
			return mainView
		}
		return m.menuOverlay.Place(mainView)
	case stateHelp:
		if m.textOverlay == nil {
			log.ErrorLog.Printf("text overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textOverlay.Render(), mainView, true, true)
	case stateClipboard:
		if m.textInputOverlay == nil {
			log.ErrorLog.Printf("text input overlay is nil")
			return mainView
		}
		return overlay.PlaceOverlay(0, 0, m.textInputOverlay.Render(), mainView, true, true)
	}
	return mainView
}
