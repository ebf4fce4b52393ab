package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func runEditor(cfg *Config, files []string) error {
	closer, err := setupEditorLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	m, err := initialModel(cfg, files)
	if err != nil {
		return err
	}
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		slog.Error("editor exited", "err", err)
		return err
	}
	return nil
}

// initialModel opens one buffer per file. A file that does not exist yet
// gets an empty buffer that will be saved under its name.
func initialModel(cfg *Config, files []string) (model, error) {
	m := model{
		config:       cfg,
		mode:         ModeNormal,
		toolKind:     ToolBox,
		freeformChar: cfg.FreeformRune(),
	}
	for _, file := range files {
		d := cfg.newDiagram()
		err := d.LoadFromFile(file, point{})
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return model{}, err
		}
		m.buffers = append(m.buffers, Buffer{diagram: d, filename: file})
	}
	if len(m.buffers) == 0 {
		m.buffers = []Buffer{{diagram: cfg.newDiagram()}}
	}
	m.currentBufferIndex = 0
	m.resetTool()
	return m, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureCursorInBounds()
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			return m.handleHelpKey(msg), nil
		}
		switch m.mode {
		case ModeFreeformChar:
			return m.handleFreeformCharKey(msg), nil
		case ModeFileInput:
			return m.handleFileInputKey(msg), nil
		case ModeConfirm:
			return m.handleConfirmKey(msg)
		default:
			return m.handleNormalKey(msg)
		}
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Y < m.canvasTop() {
		return
	}
	pos := m.screenToCell(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if m.drawing {
			// A press while the pen is down ends the pen stroke first.
			m.penDown = false
			m.endGesture()
		}
		m.cursorX, m.cursorY = msg.X, msg.Y
		m.ensureCursorInBounds()
		m.startGesture(pos)
	case tea.MouseMotion:
		if m.drawing && !m.penDown {
			m.moveGesture(pos)
		}
	case tea.MouseRelease:
		if !m.penDown {
			m.endGesture()
		}
	}
}

func (m *model) startGesture(pos point) bool {
	if m.tool == nil {
		return false
	}
	m.clearMessages()
	if err := m.tool.Start(pos); err != nil {
		m.getDiagram().ClearDraw()
		m.reportError("start", err)
		return false
	}
	m.drawing = true
	m.lastMoveCell = &pos
	return true
}

func (m *model) moveGesture(pos point) {
	if !m.drawing {
		return
	}
	if m.lastMoveCell != nil && *m.lastMoveCell == pos {
		return
	}
	m.lastMoveCell = &pos
	if err := m.tool.Move(pos); err != nil {
		m.reportError("draw", err)
	}
}

func (m *model) endGesture() {
	if !m.drawing {
		return
	}
	m.drawing = false
	m.lastMoveCell = nil
	if err := m.tool.End(); err != nil {
		m.reportError("finish", err)
	}
}

func (m *model) reportError(context string, err error) {
	slog.Error(context, "err", err)
	m.errorMessage = fmt.Sprintf("%s: %v", context, err)
	m.successMessage = ""
}

func (m *model) clearMessages() {
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) handleHelpKey(msg tea.KeyMsg) model {
	switch msg.String() {
	case "j", "down":
		visible := max(m.height-1, 1)
		if m.helpScroll < len(helpLines)-visible {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	default:
		m.help = false
		m.helpScroll = 0
	}
	return m
}

// toolKey translates a terminal key into the names drawTool.HandleKey
// understands. ok is false for keys tools never see.
func toolKey(msg tea.KeyMsg) (string, bool) {
	switch msg.Type {
	case tea.KeyEscape:
		return KeyEscape, true
	case tea.KeyBackspace:
		return KeyBackspace, true
	case tea.KeyEnter:
		return KeyReturn, true
	case tea.KeyUp:
		return KeyUp, true
	case tea.KeyDown:
		return KeyDown, true
	case tea.KeyLeft:
		return KeyLeft, true
	case tea.KeyRight:
		return KeyRight, true
	case tea.KeySpace:
		return " ", true
	case tea.KeyRunes:
		return string(msg.Runes), true
	}
	return "", false
}

func (m *model) sendToolKey(key string) {
	if m.tool == nil {
		return
	}
	if err := m.tool.HandleKey(key); err != nil {
		m.reportError("key", err)
	}
}

func (m *model) capturingKeys() bool {
	kc, ok := m.tool.(keyCapturer)
	return ok && kc.CapturingKeys()
}

var toolKeys = map[string]ToolKind{
	"1": ToolBox,
	"2": ToolLine,
	"3": ToolArrow,
	"4": ToolFreeform,
	"5": ToolErase,
	"6": ToolText,
	"7": ToolSelect,
	"8": ToolMove,
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.capturingKeys() {
		if key, ok := toolKey(msg); ok {
			m.sendToolKey(key)
		}
		return m, nil
	}

	d := m.getDiagram()
	key := msg.String()
	if kind, ok := toolKeys[key]; ok {
		m.setTool(kind)
		m.clearMessages()
		return m, nil
	}

	switch key {
	case "q":
		if m.hasHistory() {
			m.mode = ModeConfirm
			m.confirmAction = ConfirmQuit
			return m, nil
		}
		return m, tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "f":
		m.mode = ModeFreeformChar
	case "u":
		m.finishGesture()
		if !d.Undo() {
			m.successMessage = "Nothing to undo"
		}
	case "U":
		m.finishGesture()
		if !d.Redo() {
			m.successMessage = "Nothing to redo"
		}
	case "y":
		m.copySelection(false)
	case "x":
		m.copySelection(true)
	case "p":
		m.paste()
	case "i":
		m.importClipboard()
	case "D":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmClear
	case "s":
		m.startFileInput(FileOpSave)
	case "S":
		m.startFileInput(FileOpSavePNG)
	case "o":
		m.startFileInput(FileOpOpen)
	case "{":
		m.switchBuffer(-1)
	case "}":
		m.switchBuffer(1)
	case "N":
		m.addNewBuffer(m.config.newDiagram(), "")
	case "X":
		m.mode = ModeConfirm
		m.confirmAction = ConfirmCloseBuffer
	case "z":
		m.zPanMode = !m.zPanMode
	case " ":
		m.togglePen()
	case "esc":
		m.finishGesture()
		m.sendToolKey(KeyEscape)
		m.clearMessages()
	case "enter":
		m.sendToolKey(KeyReturn)
	case "backspace":
		m.sendToolKey(KeyBackspace)
	case "h", "j", "k", "l", "H", "J", "K", "L",
		"left", "right", "up", "down",
		"shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNavigation(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) hasHistory() bool {
	for _, buf := range m.buffers {
		if buf.diagram.CanUndo() {
			return true
		}
	}
	return false
}

func (m model) handleFreeformCharKey(msg tea.KeyMsg) model {
	m.mode = ModeNormal
	if msg.Type != tea.KeyRunes && msg.Type != tea.KeySpace {
		return m
	}
	key, _ := toolKey(msg)
	if len([]rune(key)) != 1 {
		return m
	}
	m.freeformChar = []rune(key)[0]
	if m.toolKind != ToolFreeform {
		m.setTool(ToolFreeform)
	}
	m.sendToolKey(key)
	m.successMessage = fmt.Sprintf("Freeform character: %q", m.freeformChar)
	return m
}

func (m *model) copySelection(cut bool) {
	sel, ok := m.tool.(*selectTool)
	if !ok {
		m.errorMessage = "Select an area with the select tool (7) first"
		return
	}
	box, ok := sel.Selection()
	if !ok {
		m.errorMessage = "Nothing selected"
		return
	}
	text := m.getDiagram().OutputText(&box)
	if err := writeClipboardText(text); err != nil {
		// The in-editor copy still works without a system clipboard.
		slog.Warn("clipboard unavailable", "err", err)
	}
	key := KeyCopy
	if cut {
		key = KeyCut
	}
	m.sendToolKey(key)
	if m.errorMessage == "" {
		m.successMessage = fmt.Sprintf("Copied %dx%d", box.Width(), box.Height())
	}
}

// paste stamps the select tool's copied cells at the cursor, or imports the
// system clipboard when nothing was copied in the editor.
func (m *model) paste() {
	if sel, ok := m.tool.(*selectTool); ok && len(sel.selected) > 0 {
		if err := sel.PasteAt(m.worldCell()); err != nil {
			m.reportError("paste", err)
		}
		return
	}
	m.importClipboard()
}

func (m *model) importClipboard() {
	text, err := clipboardDiagramText()
	if err != nil {
		m.reportError("import", err)
		return
	}
	if strings.TrimSpace(text) == "" {
		m.errorMessage = "Clipboard is empty"
		return
	}
	m.finishGesture()
	d := m.getDiagram()
	d.CommitDraw()
	if err := d.FromText(text, m.viewportCentre()); err != nil {
		d.ClearDraw()
		m.reportError("import", err)
		return
	}
	d.CommitDraw()
	m.successMessage = "Imported clipboard"
}

// viewportCentre is the grid cell under the middle of the drawing area.
func (m *model) viewportCentre() point {
	rows := max(m.height-1-m.canvasTop(), 1)
	return m.screenToCell(m.width/2, m.canvasTop()+rows/2)
}

func (m *model) startFileInput(op FileOperation) {
	m.finishGesture()
	m.getDiagram().CommitDraw()
	m.mode = ModeFileInput
	m.fileOp = op
	m.filename = ""
	if buf := m.getCurrentBuffer(); buf != nil && op == FileOpSave {
		m.filename = buf.filename
	}
	m.clearMessages()
}

func (m model) handleFileInputKey(msg tea.KeyMsg) model {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = ModeNormal
		m.filename = ""
		m.errorMessage = ""
	case tea.KeyEnter:
		if strings.TrimSpace(m.filename) == "" {
			m.errorMessage = "Please enter a filename"
			return m
		}
		if err := m.runFileOp(m.filename); err != nil {
			m.reportError(fileOpName(m.fileOp), err)
			return m
		}
		m.mode = ModeNormal
		m.filename = ""
	case tea.KeyBackspace:
		if r := []rune(m.filename); len(r) > 0 {
			m.filename = string(r[:len(r)-1])
		}
	case tea.KeyRunes, tea.KeySpace:
		key, _ := toolKey(msg)
		m.filename += key
	}
	return m
}

func fileOpName(op FileOperation) string {
	switch op {
	case FileOpSavePNG:
		return "export png"
	case FileOpOpen:
		return "open"
	default:
		return "save"
	}
}

func (m *model) runFileOp(filename string) error {
	switch m.fileOp {
	case FileOpSave:
		if filepath.Ext(filename) == "" {
			filename += ".txt"
		}
		path, err := m.config.GetSavePath(filename)
		if err != nil {
			return err
		}
		if err := m.getDiagram().SaveToFile(path); err != nil {
			return err
		}
		m.getCurrentBuffer().filename = filename
		m.successMessage = "Saved to " + absPath(path)
	case FileOpSavePNG:
		if !strings.HasSuffix(strings.ToLower(filename), ".png") {
			filename += ".png"
		}
		path, err := m.config.GetSavePath(filename)
		if err != nil {
			return err
		}
		if err := m.getDiagram().ExportToPNG(path); err != nil {
			return err
		}
		m.successMessage = "Exported to " + absPath(path)
	case FileOpOpen:
		path := filename
		if _, err := os.Stat(path); err != nil {
			if path, err = m.config.GetSavePath(filename); err != nil {
				return err
			}
		}
		d := m.config.newDiagram()
		if err := d.LoadFromFile(path, point{}); err != nil {
			return err
		}
		m.addNewBuffer(d, filename)
		m.successMessage = "Opened " + absPath(path)
	}
	return nil
}

func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

func (m model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return m, tea.Quit
		case ConfirmClear:
			m.finishGesture()
			m.getDiagram().Clear()
			m.successMessage = "Cleared (u to undo)"
		case ConfirmCloseBuffer:
			m.closeBuffer()
			m.clearMessages()
		}
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}
