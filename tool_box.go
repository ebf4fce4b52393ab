package main

type boxTool struct {
	diagram *Diagram
	start   point
}

func (t *boxTool) Start(pos point) error {
	t.start = pos
	return nil
}

func (t *boxTool) Move(pos point) error {
	t.diagram.ClearDraw()
	if err := drawLine(t.diagram, t.start, pos, true, specialValue); err != nil {
		return err
	}
	return drawLine(t.diagram, t.start, pos, false, specialValue)
}

func (t *boxTool) End() error {
	t.diagram.CommitDraw()
	return nil
}

func (t *boxTool) Cursor(point) cursorKind { return cursorCrosshair }

func (t *boxTool) HandleKey(string) error { return nil }
