package main

import "slices"

// Cell is one grid slot. A zero rune means "absent" for value and "unset"
// for scratch.
type Cell struct {
	value   rune
	scratch rune
}

// RawValue returns the scratch value if one is staged, else the committed value.
func (c *Cell) RawValue() rune {
	if c.scratch != 0 {
		return c.scratch
	}
	return c.value
}

func (c *Cell) Value() rune      { return c.value }
func (c *Cell) HasScratch() bool { return c.scratch != 0 }
func (c *Cell) IsEmpty() bool    { return c.RawValue() == 0 }

func (c *Cell) IsSpecial() bool {
	v := c.RawValue()
	return isLineValue(v) || isArrowValue(v)
}

func isLineValue(v rune) bool  { return slices.Contains(specialValues, v) }
func isArrowValue(v rune) bool { return slices.Contains(altSpecialValues, v) }

// cellContext records which neighbours of a position hold special values.
// The diagonal flags are only filled in by Diagram.ExtendContext.
type cellContext struct {
	left, right, up, down bool

	leftUp, rightUp, leftDown, rightDown bool
}

func (c cellContext) Sum() int {
	sum := 0
	for _, b := range []bool{c.left, c.right, c.up, c.down} {
		if b {
			sum++
		}
	}
	return sum
}
