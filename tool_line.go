package main

// lineTool draws a single-bend line, optionally ending in an arrow.
type lineTool struct {
	diagram *Diagram
	arrow   bool
	start   point
}

func (t *lineTool) Start(pos point) error {
	t.start = pos
	return nil
}

func (t *lineTool) Move(pos point) error {
	t.diagram.ClearDraw()

	// Join existing lines straight on where possible.
	startCtx := t.diagram.Context(t.start)
	endCtx := t.diagram.Context(pos)
	horizontalFirst := (startCtx.up && startCtx.down) || (endCtx.left && endCtx.right)

	if err := drawLine(t.diagram, t.start, pos, horizontalFirst, specialValue); err != nil {
		return err
	}
	if t.arrow {
		return t.diagram.DrawValue(pos, altSpecialValue)
	}
	return nil
}

func (t *lineTool) End() error {
	t.diagram.CommitDraw()
	return nil
}

func (t *lineTool) Cursor(point) cursorKind { return cursorCrosshair }

func (t *lineTool) HandleKey(string) error { return nil }
