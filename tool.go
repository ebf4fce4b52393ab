package main

import "log/slog"

// drawTool turns one pointer gesture into staged edits on a Diagram.
// Start is called on press, Move for every new cell while pressed and End on
// release. Move re-renders the preview from scratch; End commits it so the
// whole gesture is one undo unit.
type drawTool interface {
	Start(pos point) error
	Move(pos point) error
	End() error
	Cursor(pos point) cursorKind
	HandleKey(key string) error
}

// keyCapturer is implemented by tools that want every key while active.
type keyCapturer interface {
	CapturingKeys() bool
}

func newTool(kind ToolKind, d *Diagram, cfg *Config) drawTool {
	switch kind {
	case ToolLine:
		return &lineTool{diagram: d}
	case ToolArrow:
		return &lineTool{diagram: d, arrow: true}
	case ToolFreeform:
		return &freeformTool{diagram: d, value: cfg.FreeformRune()}
	case ToolErase:
		return &eraseTool{diagram: d}
	case ToolText:
		return &textTool{diagram: d}
	case ToolSelect:
		return &selectTool{diagram: d, finished: true}
	case ToolMove:
		return &moveTool{diagram: d, snap: cfg.TouchSnap}
	default:
		return &boxTool{diagram: d}
	}
}

// setTool commits whatever the previous tool left staged and installs kind.
func (m *model) setTool(kind ToolKind) {
	d := m.getDiagram()
	if d == nil {
		return
	}
	m.finishGesture()
	d.CommitDraw()
	m.toolKind = kind
	m.resetTool()
	slog.Debug("tool selected", "tool", kind.String())
}

// finishGesture ends a drag or pen stroke that is still in progress.
func (m *model) finishGesture() {
	if m.drawing && m.tool != nil {
		if err := m.tool.End(); err != nil {
			m.reportError("end gesture", err)
		}
	}
	m.drawing = false
	m.penDown = false
	m.lastMoveCell = nil
}
