package main

import "log/slog"

func (m *model) addNewBuffer(d *Diagram, filename string) {
	m.finishGesture()
	if cur := m.getDiagram(); cur != nil {
		cur.CommitDraw()
	}
	m.buffers = append(m.buffers, Buffer{diagram: d, filename: filename})
	m.currentBufferIndex = len(m.buffers) - 1
	m.resetTool()
	m.ensureCursorInBounds()
	slog.Debug("buffer opened", "index", m.currentBufferIndex, "file", filename)
}

func (m *model) switchBuffer(delta int) {
	if len(m.buffers) <= 1 {
		return
	}
	m.finishGesture()
	if d := m.getDiagram(); d != nil {
		d.CommitDraw()
	}
	m.currentBufferIndex = (m.currentBufferIndex + delta + len(m.buffers)) % len(m.buffers)
	m.resetTool()
	m.errorMessage = ""
	m.successMessage = ""
}

// closeBuffer drops the current buffer. The last buffer is replaced by an
// empty diagram instead.
func (m *model) closeBuffer() {
	m.finishGesture()
	if len(m.buffers) <= 1 {
		m.buffers = []Buffer{{diagram: m.config.newDiagram()}}
		m.currentBufferIndex = 0
	} else {
		m.buffers = append(m.buffers[:m.currentBufferIndex], m.buffers[m.currentBufferIndex+1:]...)
		m.currentBufferIndex = max(m.currentBufferIndex-1, 0)
	}
	m.resetTool()
	m.ensureCursorInBounds()
}

// resetTool rebuilds the active tool against the current buffer.
func (m *model) resetTool() {
	d := m.getDiagram()
	if d == nil {
		m.tool = nil
		return
	}
	m.tool = newTool(m.toolKind, d, m.config)
	if m.toolKind == ToolFreeform && m.freeformChar != 0 {
		if err := m.tool.HandleKey(string(m.freeformChar)); err != nil {
			m.reportError("freeform", err)
		}
	}
}
