package main

import "unicode/utf8"

// textTool places a multi-line block of typed text. A click picks the
// anchor, every key restages the block and <escape> commits it.
type textTool struct {
	diagram *Diagram
	pressed *point
	anchor  *point
	text    []rune
}

func (t *textTool) Start(pos point) error {
	t.diagram.CommitDraw()
	t.text = t.text[:0]
	t.anchor = nil
	t.pressed = &pos
	return highlightCell(t.diagram, pos)
}

func (t *textTool) Move(point) error { return nil }

func (t *textTool) End() error {
	if t.pressed != nil {
		t.anchor = t.pressed
		t.pressed = nil
	}
	return nil
}

func (t *textTool) Cursor(point) cursorKind { return cursorPointer }

func (t *textTool) CapturingKeys() bool { return t.anchor != nil }

func (t *textTool) HandleKey(key string) error {
	if t.anchor == nil {
		return nil
	}
	switch key {
	case KeyEscape:
		if len(t.text) == 0 {
			t.diagram.ClearDraw()
		}
		t.diagram.CommitDraw()
		t.anchor = nil
		t.text = t.text[:0]
		return nil
	case KeyBackspace:
		if len(t.text) > 0 {
			t.text = t.text[:len(t.text)-1]
		}
	case KeyReturn:
		t.text = append(t.text, '\n')
	default:
		if utf8.RuneCountInString(key) != 1 {
			return nil
		}
		r, _ := utf8.DecodeRuneInString(key)
		t.text = append(t.text, r)
	}
	t.diagram.ClearDraw()
	return drawText(t.diagram, *t.anchor, string(t.text))
}

// highlightCell restages a cell's own value so the view marks it.
func highlightCell(d *Diagram, pos point) error {
	c, err := d.Cell(pos)
	if err != nil {
		return err
	}
	v := c.RawValue()
	if v == 0 {
		v = eraseChar
	}
	return d.DrawValue(pos, v)
}
