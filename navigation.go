package main

func (m *model) handleNavigation(key string, speed int) {
	if m.zPanMode {
		m.handlePan(key, speed)
		return
	}
	m.handleCursorMove(key, speed)
}

func (m *model) handlePan(key string, speed int) {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	switch key {
	case "h", "left", "H", "shift+left":
		buf.panX -= speed
	case "l", "right", "L", "shift+right":
		buf.panX += speed
	case "k", "up", "K", "shift+up":
		buf.panY -= speed
	case "j", "down", "J", "shift+down":
		buf.panY += speed
	}
	m.clampPan()
	if m.penDown {
		m.penMove()
	}
}

func (m *model) handleCursorMove(key string, speed int) {
	switch key {
	case "h", "left", "H", "shift+left":
		m.cursorX -= speed
	case "l", "right", "L", "shift+right":
		m.cursorX += speed
	case "k", "up", "K", "shift+up":
		m.cursorY -= speed
	case "j", "down", "J", "shift+down":
		m.cursorY += speed
	}
	m.ensureCursorInBounds()
	if m.penDown {
		m.penMove()
	}
}

func (m *model) getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

func (m *model) ensureCursorInBounds() {
	m.cursorX = max(0, m.cursorX)
	m.cursorY = max(m.canvasTop(), m.cursorY)
	if m.width > 0 && m.cursorX >= m.width {
		m.cursorX = m.width - 1
	}
	// Leave room for the status line.
	maxY := max(m.height-2, m.canvasTop())
	if m.cursorY > maxY {
		m.cursorY = maxY
	}
}

// clampPan keeps the view over the grid.
func (m *model) clampPan() {
	buf := m.getCurrentBuffer()
	if buf == nil {
		return
	}
	w, h := buf.diagram.Size()
	buf.panX = max(0, min(buf.panX, w-1))
	buf.panY = max(0, min(buf.panY, h-1))
}

// togglePen starts a gesture at the cursor, or ends the one in progress.
func (m *model) togglePen() {
	if m.penDown {
		m.penDown = false
		m.endGesture()
		return
	}
	if m.startGesture(m.worldCell()) {
		m.penDown = true
	}
}

func (m *model) penMove() {
	m.moveGesture(m.worldCell())
}
