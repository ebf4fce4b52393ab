package main

type eraseTool struct {
	diagram *Diagram
	start   point
}

func (t *eraseTool) Start(pos point) error {
	t.start = pos
	return t.Move(pos)
}

func (t *eraseTool) Move(pos point) error {
	t.diagram.ClearDraw()
	return eraseRect(t.diagram, newRect(t.start, pos))
}

func (t *eraseTool) End() error {
	t.diagram.CommitDraw()
	return nil
}

func (t *eraseTool) Cursor(point) cursorKind { return cursorCrosshair }

func (t *eraseTool) HandleKey(string) error { return nil }

func eraseRect(d *Diagram, r rect) error {
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		for x := r.Min.X; x <= r.Max.X; x++ {
			if err := d.DrawValue(point{x, y}, eraseChar); err != nil {
				return err
			}
		}
	}
	return nil
}
