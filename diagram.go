package main

import (
	"errors"
	"fmt"
	"log/slog"
)

var ErrOutOfBounds = errors.New("position out of bounds")

// Diagram holds the whole grid as independent cells plus the scratch
// (uncommitted) overlay and the undo/redo history.
//
// Shapes are never stored. Line and arrow cells hold a generic marker and the
// glyph shown for them is derived from the neighbouring cells on every read,
// see DisplayValue.
type Diagram struct {
	width   int
	height  int
	cells   []Cell
	staged  []point
	dirty   bool
	maxUndo int

	undoStack []historyEntry
	redoStack []historyEntry
}

func NewDiagram(width, height, maxUndo int) *Diagram {
	if width <= 0 {
		width = defaultGridWidth
	}
	if height <= 0 {
		height = defaultGridHeight
	}
	if maxUndo <= 0 {
		maxUndo = defaultMaxUndo
	}
	return &Diagram{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		dirty:   true,
		maxUndo: maxUndo,
	}
}

func (d *Diagram) Size() (int, int) {
	return d.width, d.height
}

func (d *Diagram) inBounds(pos point) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < d.width && pos.Y < d.height
}

func (d *Diagram) cellAt(pos point) *Cell {
	if !d.inBounds(pos) {
		return nil
	}
	return &d.cells[pos.Y*d.width+pos.X]
}

// Cell returns the cell at pos.
func (d *Diagram) Cell(pos point) (*Cell, error) {
	c := d.cellAt(pos)
	if c == nil {
		return nil, fmt.Errorf("cell %d,%d: %w", pos.X, pos.Y, ErrOutOfBounds)
	}
	return c, nil
}

// Off-grid neighbours are neither special nor occupied.
func (d *Diagram) isSpecialAt(pos point) bool {
	c := d.cellAt(pos)
	return c != nil && c.IsSpecial()
}

func (d *Diagram) isEmptyAt(pos point) bool {
	c := d.cellAt(pos)
	return c == nil || c.IsEmpty()
}

func (d *Diagram) rawAt(pos point) rune {
	if c := d.cellAt(pos); c != nil {
		return c.RawValue()
	}
	return 0
}

// DrawValue stages value as the scratch value of pos. A zero value stages
// the erase marker.
func (d *Diagram) DrawValue(pos point, value rune) error {
	c, err := d.Cell(pos)
	if err != nil {
		return err
	}
	d.stage(pos, c, value)
	return nil
}

// DrawValueIncremental stages value only when it differs from the raw value
// already at pos.
func (d *Diagram) DrawValueIncremental(pos point, value rune) error {
	c, err := d.Cell(pos)
	if err != nil {
		return err
	}
	if value == 0 {
		value = eraseChar
	}
	if c.RawValue() != value {
		d.stage(pos, c, value)
	}
	return nil
}

func (d *Diagram) stage(pos point, c *Cell, value rune) {
	if value == 0 {
		value = eraseChar
	}
	d.staged = append(d.staged, pos)
	c.scratch = value
	d.dirty = true
}

// ClearDraw discards everything staged since the last commit.
func (d *Diagram) ClearDraw() {
	for _, pos := range d.staged {
		d.cellAt(pos).scratch = 0
	}
	d.staged = d.staged[:0]
	d.dirty = true
}

// Staged returns the positions staged since the last commit, duplicates included.
func (d *Diagram) Staged() []point {
	out := make([]point, len(d.staged))
	copy(out, d.staged)
	return out
}

func (d *Diagram) Context(pos point) cellContext {
	return cellContext{
		left:  d.isSpecialAt(pos.Left()),
		right: d.isSpecialAt(pos.Right()),
		up:    d.isSpecialAt(pos.Up()),
		down:  d.isSpecialAt(pos.Down()),
	}
}

func (d *Diagram) ExtendContext(pos point, ctx *cellContext) {
	ctx.leftUp = d.isSpecialAt(pos.Left().Up())
	ctx.rightUp = d.isSpecialAt(pos.Right().Up())
	ctx.leftDown = d.isSpecialAt(pos.Left().Down())
	ctx.rightDown = d.isSpecialAt(pos.Right().Down())
}

// DisplayValue returns the glyph shown at pos.
func (d *Diagram) DisplayValue(pos point) (rune, error) {
	c, err := d.Cell(pos)
	if err != nil {
		return 0, err
	}
	return d.resolve(pos, c), nil
}

func (d *Diagram) resolve(pos point, c *Cell) rune {
	value := c.RawValue()
	isLine := isLineValue(value)
	isArrow := isArrowValue(value)
	if !isLine && !isArrow {
		return value
	}

	ctx := d.Context(pos)
	sum := ctx.Sum()

	if isLine && ctx.left && ctx.right && !ctx.up && !ctx.down {
		return specialLineH
	}
	if isLine && !ctx.left && !ctx.right && ctx.up && ctx.down {
		return specialLineV
	}
	// Plus junctions render as a horizontal run.
	if sum == 4 {
		return specialLineH
	}
	if isArrow && sum == 3 {
		switch {
		case !ctx.left:
			return specialArrowLeft
		case !ctx.up:
			return specialArrowUp
		case !ctx.down:
			return specialArrowDown
		default:
			return specialArrowRight
		}
	}
	if sum == 3 {
		d.ExtendContext(pos, &ctx)
		switch {
		case !ctx.right && ctx.leftUp && ctx.leftDown:
			return specialLineV
		case !ctx.left && ctx.rightUp && ctx.rightDown:
			return specialLineV
		case !ctx.down && ctx.leftUp && ctx.rightUp:
			return specialLineH
		case !ctx.up && ctx.rightDown && ctx.leftDown:
			return specialLineH
		}
		if ctx.up && ctx.left && ctx.right &&
			(!d.isEmptyAt(pos.Left().Up()) || !d.isEmptyAt(pos.Right().Up())) {
			return specialLineH
		}
		if ctx.down && ctx.left && ctx.right &&
			(!d.isEmptyAt(pos.Left().Down()) || !d.isEmptyAt(pos.Right().Down())) {
			return specialLineH
		}
		return specialValue
	}
	if isArrow && sum == 1 {
		switch {
		case ctx.left:
			return specialArrowRight
		case ctx.up:
			return specialArrowDown
		case ctx.down:
			return specialArrowUp
		case ctx.right:
			return specialArrowLeft
		}
	}
	return value
}

// CommitDraw makes everything staged permanent as one undo unit.
func (d *Diagram) CommitDraw() {
	d.commit(originEdit)
}

func (d *Diagram) commit(origin commitOrigin) {
	seen := make(map[point]bool, len(d.staged))
	var before historyEntry

	// The first staging of a position wins, so a self-crossing edit still
	// records the value the cell had before the edit.
	for _, pos := range d.staged {
		if seen[pos] {
			continue
		}
		seen[pos] = true

		c := d.cellAt(pos)
		prev := c.value
		next := c.RawValue()
		if next == eraseChar || next == ' ' {
			next = 0
		}
		// Store what the user sees, which freezes committed lines.
		if c.IsSpecial() {
			next = d.resolve(pos, c)
		}
		c.scratch = 0
		c.value = next

		// Restaging a cell with what it already holds is not an edit.
		if next == prev {
			continue
		}
		if prev == 0 {
			prev = ' '
		}
		before = append(before, mappedValue{Pos: pos, Value: prev})
	}
	d.staged = d.staged[:0]

	if len(before) > 0 {
		d.pushHistory(origin, before)
		slog.Debug("diagram commit", "origin", origin.String(), "cells", len(before))
	}
	d.dirty = true
}

// Clear erases every occupied cell as a single undoable edit.
func (d *Diagram) Clear() {
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			pos := point{x, y}
			c := d.cellAt(pos)
			if !c.IsEmpty() {
				d.stage(pos, c, eraseChar)
			}
		}
	}
	d.CommitDraw()
}

// BoundingBox returns the tightest box around all occupied cells.
func (d *Diagram) BoundingBox() (rect, bool) {
	start := point{d.width, d.height}
	end := point{-1, -1}
	for y := 0; y < d.height; y++ {
		for x := 0; x < d.width; x++ {
			if d.cells[y*d.width+x].IsEmpty() {
				continue
			}
			start.X = min(start.X, x)
			start.Y = min(start.Y, y)
			end.X = max(end.X, x)
			end.Y = max(end.Y, y)
		}
	}
	if end.X < 0 {
		return rect{}, false
	}
	return rect{Min: start, Max: end}, true
}

// Dirty reports whether anything changed since MarkClean.
func (d *Diagram) Dirty() bool { return d.dirty }

func (d *Diagram) MarkClean() { d.dirty = false }
