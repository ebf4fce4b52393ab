package main

// selectTool captures a rectangle, then copies, cuts, pastes or drags the
// non-empty cells inside it.
type selectTool struct {
	diagram   *Diagram
	start     *point
	end       *point
	dragStart *point
	finished  bool
	selected  []mappedValue
}

func (t *selectTool) hasSelection() bool {
	return t.start != nil && t.end != nil
}

// Selection returns the captured rectangle, if any.
func (t *selectTool) Selection() (rect, bool) {
	if !t.hasSelection() {
		return rect{}, false
	}
	return newRect(*t.start, *t.end), true
}

func (t *selectTool) Start(pos point) error {
	if box, ok := t.Selection(); ok && box.Contains(pos) {
		t.dragStart = &pos
		t.copyArea()
		return t.dragMove(pos)
	}
	t.start = &pos
	t.end = nil
	t.finished = false
	return t.Move(pos)
}

func (t *selectTool) Move(pos point) error {
	if t.dragStart != nil {
		return t.dragMove(pos)
	}
	if t.finished {
		return nil
	}
	t.end = &pos
	t.diagram.ClearDraw()
	box := newRect(*t.start, pos)
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			if err := highlightCell(t.diagram, point{x, y}); err != nil {
				return err
			}
		}
	}
	return nil
}

func (t *selectTool) End() error {
	if t.dragStart != nil {
		t.diagram.CommitDraw()
		t.start = nil
		t.end = nil
	}
	t.dragStart = nil
	t.finished = true
	return nil
}

func (t *selectTool) Cursor(pos point) cursorKind {
	if box, ok := t.Selection(); ok && box.Contains(pos) {
		return cursorPointer
	}
	return cursorDefault
}

func (t *selectTool) HandleKey(key string) error {
	if box, ok := t.Selection(); ok {
		if key == KeyCopy || key == KeyCut {
			t.copyArea()
		}
		if key == KeyCut {
			t.diagram.ClearDraw()
			if err := eraseRect(t.diagram, box); err != nil {
				return err
			}
			t.diagram.CommitDraw()
		}
	}
	if key == KeyPaste && t.start != nil {
		return t.PasteAt(*t.start)
	}
	return nil
}

// PasteAt stamps the copied cells with their top-left corner at pos and
// commits.
func (t *selectTool) PasteAt(pos point) error {
	t.diagram.ClearDraw()
	if err := t.drawSelected(pos); err != nil {
		t.diagram.ClearDraw()
		return err
	}
	t.diagram.CommitDraw()
	return nil
}

func (t *selectTool) copyArea() {
	box, ok := t.Selection()
	if !ok {
		return
	}
	t.selected = t.selected[:0]
	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			pos := point{x, y}
			v := t.diagram.rawAt(pos)
			if v == 0 || v == eraseChar {
				continue
			}
			t.selected = append(t.selected, mappedValue{Pos: pos.Sub(box.Min), Value: v})
		}
	}
}

func (t *selectTool) dragMove(pos point) error {
	box, _ := t.Selection()
	t.diagram.ClearDraw()
	if err := eraseRect(t.diagram, box); err != nil {
		return err
	}
	return t.drawSelected(pos.Sub(*t.dragStart).Add(box.Min))
}

func (t *selectTool) drawSelected(topLeft point) error {
	for _, mv := range t.selected {
		if err := t.diagram.DrawValue(mv.Pos.Add(topLeft), mv.Value); err != nil {
			return err
		}
	}
	return nil
}
