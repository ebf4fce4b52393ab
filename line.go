package main

// drawLine stages an orthogonal line from start to end with a single bend.
// With horizontalFirst the bend sits at (end.X, start.Y), otherwise at
// (start.X, end.Y). Staging a space erases a previous line without removing
// any line that crosses it.
func drawLine(d *Diagram, start, end point, horizontalFirst bool, value rune) error {
	box := newRect(start, end)
	mid := point{start.X, end.Y}
	if horizontalFirst {
		mid = point{end.X, start.Y}
	}

	for x := box.Min.X; x < box.Max.X; x++ {
		pos := point{x, mid.Y}
		ctx := d.Context(pos)
		if value == ' ' && ctx.up && ctx.down {
			continue
		}
		if err := d.DrawValueIncremental(pos, value); err != nil {
			return err
		}
	}
	for y := box.Min.Y; y < box.Max.Y; y++ {
		pos := point{mid.X, y}
		ctx := d.Context(pos)
		if value == ' ' && ctx.left && ctx.right {
			continue
		}
		if err := d.DrawValueIncremental(pos, value); err != nil {
			return err
		}
	}

	for _, pos := range []point{start, end, mid} {
		if err := d.DrawValue(pos, value); err != nil {
			return err
		}
	}
	return nil
}

// drawText stages text at pos; a newline restarts at pos.X on the next row.
func drawText(d *Diagram, pos point, text string) error {
	x, y := 0, 0
	for _, ch := range text {
		if ch == '\n' {
			x = 0
			y++
			continue
		}
		if err := d.DrawValue(pos.Add(point{x, y}), ch); err != nil {
			return err
		}
		x++
	}
	return nil
}
