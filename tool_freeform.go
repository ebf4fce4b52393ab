package main

import "unicode/utf8"

type freeformTool struct {
	diagram *Diagram
	value   rune
}

func (t *freeformTool) Start(pos point) error {
	return t.diagram.DrawValue(pos, t.value)
}

func (t *freeformTool) Move(pos point) error {
	return t.diagram.DrawValue(pos, t.value)
}

func (t *freeformTool) End() error {
	t.diagram.CommitDraw()
	return nil
}

func (t *freeformTool) Cursor(point) cursorKind { return cursorCrosshair }

// HandleKey makes any single character the new stamp.
func (t *freeformTool) HandleKey(key string) error {
	if utf8.RuneCountInString(key) == 1 {
		t.value, _ = utf8.DecodeRuneInString(key)
	}
	return nil
}
