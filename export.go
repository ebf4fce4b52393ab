package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// OutputText renders the diagram, or only box when given, as plain text.
// Trailing whitespace is trimmed from every line and each line ends in a
// newline. Without a box the output covers the tight bounding box of all
// occupied cells.
func (d *Diagram) OutputText(box *rect) string {
	var r rect
	if box != nil {
		r = *box
	} else {
		bb, ok := d.BoundingBox()
		if !ok {
			return ""
		}
		r = bb
	}

	var out strings.Builder
	line := make([]rune, 0, r.Width())
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		line = line[:0]
		for x := r.Min.X; x <= r.Max.X; x++ {
			line = append(line, d.exportRune(point{x, y}))
		}
		out.WriteString(strings.TrimRight(string(line), " "))
		out.WriteByte('\n')
	}
	return out.String()
}

func (d *Diagram) exportRune(pos point) rune {
	c := d.cellAt(pos)
	if c == nil {
		return ' '
	}
	v := d.resolve(pos, c)
	if v == 0 || v == eraseChar {
		return ' '
	}
	return v
}

// FromText stages text so that its middle lands on offset. Line glyphs are
// turned back into the generic line marker; the caller commits.
func (d *Diagram) FromText(text string, offset point) error {
	lines := splitTextLines(text)
	middle := textMiddle(lines)
	for j, line := range lines {
		i := 0
		for _, ch := range line {
			if isLineValue(ch) {
				ch = specialValue
			}
			pos := point{i, j}.Add(offset).Sub(middle)
			if err := d.DrawValue(pos, ch); err != nil {
				return fmt.Errorf("import line %d: %w", j+1, err)
			}
			i++
		}
	}
	return nil
}

func splitTextLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}

// textMiddle is the rounded-half extent of a block of lines.
func textMiddle(lines []string) point {
	middle := point{0, roundHalf(len(lines))}
	for _, line := range lines {
		middle.X = max(middle.X, roundHalf(utf8.RuneCountInString(line)))
	}
	return middle
}

func roundHalf(n int) int {
	return (n + 1) / 2
}

// ImportAt stages text with its top-left corner at topLeft.
func (d *Diagram) ImportAt(text string, topLeft point) error {
	return d.FromText(text, topLeft.Add(textMiddle(splitTextLines(text))))
}

func (d *Diagram) SaveToFile(filename string) error {
	if err := os.WriteFile(filename, []byte(d.OutputText(nil)), 0644); err != nil {
		return fmt.Errorf("save %s: %w", filename, err)
	}
	return nil
}

// LoadFromFile imports a text diagram with its top-left corner at topLeft
// and commits it.
func (d *Diagram) LoadFromFile(filename string, topLeft point) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	if err := d.ImportAt(string(data), topLeft); err != nil {
		d.ClearDraw()
		return fmt.Errorf("load %s: %w", filename, err)
	}
	d.CommitDraw()
	return nil
}
