package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDiagram() *Diagram {
	return NewDiagram(20, 10, 50)
}

func stagePoints(t *testing.T, d *Diagram, value rune, pts ...point) {
	t.Helper()
	for _, p := range pts {
		require.NoError(t, d.DrawValue(p, value))
	}
}

func hline(y, x0, x1 int) []point {
	var pts []point
	for x := x0; x <= x1; x++ {
		pts = append(pts, point{x, y})
	}
	return pts
}

func vline(x, y0, y1 int) []point {
	var pts []point
	for y := y0; y <= y1; y++ {
		pts = append(pts, point{x, y})
	}
	return pts
}

func TestNewDiagramDefaults(t *testing.T) {
	d := NewDiagram(0, -1, 0)
	w, h := d.Size()
	assert.Equal(t, defaultGridWidth, w)
	assert.Equal(t, defaultGridHeight, h)
	assert.Equal(t, defaultMaxUndo, d.maxUndo)
	assert.False(t, d.CanUndo())
	assert.False(t, d.CanRedo())
}

func TestDisplayValueResolution(t *testing.T) {
	tests := []struct {
		name  string
		pts   []point
		probe point
		want  rune
	}{
		{"horizontal run", hline(0, 0, 2), point{1, 0}, '-'},
		{"vertical run", vline(0, 0, 2), point{0, 1}, '|'},
		{"line end", hline(0, 0, 2), point{0, 0}, '+'},
		{"corner", append(hline(0, 0, 2), vline(0, 1, 2)...), point{0, 0}, '+'},
		{"tee", append(hline(0, 0, 4), vline(2, 1, 2)...), point{2, 0}, '+'},
		{"cross", append(hline(1, 0, 2), point{1, 0}, point{1, 2}), point{1, 1}, '-'},
		{"lone marker", []point{{5, 5}}, point{5, 5}, '+'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDiagram()
			stagePoints(t, d, specialValue, tt.pts...)

			got, err := d.DisplayValue(tt.probe)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := d.DisplayValue(tt.probe)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestDisplayValueArrows(t *testing.T) {
	tests := []struct {
		name string
		line []point
		head point
		want rune
	}{
		{"pointing right", hline(0, 0, 2), point{3, 0}, '>'},
		{"pointing left", hline(0, 2, 4), point{1, 0}, '<'},
		{"pointing down", vline(0, 0, 2), point{0, 3}, 'v'},
		{"pointing up", vline(0, 2, 4), point{0, 1}, '^'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDiagram()
			stagePoints(t, d, specialValue, tt.line...)
			stagePoints(t, d, altSpecialValue, tt.head)

			got, err := d.DisplayValue(tt.head)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayValueArrowOnTee(t *testing.T) {
	d := newTestDiagram()
	// Arrow marker with neighbours left, up and down: the open side is right.
	stagePoints(t, d, specialValue, point{0, 1}, point{1, 0}, point{1, 2})
	stagePoints(t, d, altSpecialValue, point{1, 1})

	got, err := d.DisplayValue(point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, '>', got)
}

func TestDisplayValueTeeWithDiagonals(t *testing.T) {
	tests := []struct {
		name  string
		lines []point
		text  []point
		want  rune
	}{
		{"diagonals on the left", []point{{0, 1}, {1, 0}, {1, 2}, {0, 0}, {0, 2}}, nil, '|'},
		{"diagonals on the right", []point{{2, 1}, {1, 0}, {1, 2}, {2, 0}, {2, 2}}, nil, '|'},
		{"diagonals above", []point{{0, 1}, {2, 1}, {1, 0}, {0, 0}, {2, 0}}, nil, '-'},
		{"diagonals below", []point{{0, 1}, {2, 1}, {1, 2}, {0, 2}, {2, 2}}, nil, '-'},
		{"text above", []point{{0, 1}, {2, 1}, {1, 0}}, []point{{0, 0}}, '-'},
		{"text below", []point{{0, 1}, {2, 1}, {1, 2}}, []point{{2, 2}}, '-'},
		{"bare tee", []point{{0, 1}, {2, 1}, {1, 2}}, nil, '+'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDiagram()
			stagePoints(t, d, specialValue, append(tt.lines, point{1, 1})...)
			stagePoints(t, d, 'x', tt.text...)

			got, err := d.DisplayValue(point{1, 1})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayValueArrowOnJunction(t *testing.T) {
	tests := []struct {
		name       string
		neighbours []point
		want       rune
	}{
		{"open below", []point{{0, 1}, {2, 1}, {1, 0}}, 'v'},
		{"open above", []point{{0, 1}, {2, 1}, {1, 2}}, '^'},
		{"open left", []point{{2, 1}, {1, 0}, {1, 2}}, '<'},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDiagram()
			stagePoints(t, d, specialValue, tt.neighbours...)
			stagePoints(t, d, altSpecialValue, point{1, 1})

			got, err := d.DisplayValue(point{1, 1})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDisplayValuePlainText(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'x', point{1, 1})
	stagePoints(t, d, specialValue, point{0, 1}, point{2, 1})

	got, err := d.DisplayValue(point{1, 1})
	require.NoError(t, err)
	assert.Equal(t, 'x', got)
}

func TestCommitFreezesResolvedGlyph(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, specialValue, hline(0, 0, 2)...)
	d.CommitDraw()

	c, err := d.Cell(point{1, 0})
	require.NoError(t, err)
	assert.Equal(t, '-', c.Value())
	assert.False(t, c.HasScratch())
	assert.Empty(t, d.Staged())
	assert.Equal(t, "+-+\n", d.OutputText(nil))
}

func TestCommitRecordsFirstValue(t *testing.T) {
	d := newTestDiagram()
	p := point{3, 3}
	stagePoints(t, d, 'a', p)
	stagePoints(t, d, 'b', p)
	assert.Len(t, d.Staged(), 2)

	d.CommitDraw()
	assert.Equal(t, 'b', d.rawAt(p))
	require.Len(t, d.undoStack, 1)
	assert.Equal(t, historyEntry{{Pos: p, Value: ' '}}, d.undoStack[0])

	require.True(t, d.Undo())
	assert.True(t, d.cellAt(p).IsEmpty())
}

func TestCommitEmptyStagingRecordsNothing(t *testing.T) {
	d := newTestDiagram()
	d.CommitDraw()
	assert.False(t, d.CanUndo())
}

func TestCommitWithoutChangeKeepsHistory(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{0, 0})
	d.CommitDraw()
	stagePoints(t, d, 'b', point{1, 0})
	d.CommitDraw()
	require.True(t, d.Undo())

	// Restaging committed and empty cells with what they already hold.
	stagePoints(t, d, 'a', point{0, 0})
	stagePoints(t, d, eraseChar, point{3, 3}, point{4, 3})
	d.CommitDraw()

	assert.Len(t, d.undoStack, 1)
	assert.True(t, d.CanRedo())
	require.True(t, d.Redo())
	assert.Equal(t, "ab\n", d.OutputText(nil))
}

func TestCommitRecordsOnlyChangedCells(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{0, 0})
	d.CommitDraw()

	stagePoints(t, d, 'a', point{0, 0})
	stagePoints(t, d, 'c', point{2, 0})
	d.CommitDraw()

	require.Len(t, d.undoStack, 2)
	assert.Equal(t, historyEntry{{Pos: point{2, 0}, Value: ' '}}, d.undoStack[1])
}

func TestEraseCommitsAbsent(t *testing.T) {
	d := newTestDiagram()
	p := point{2, 2}
	stagePoints(t, d, 'x', p)
	d.CommitDraw()

	stagePoints(t, d, eraseChar, p)
	d.CommitDraw()
	assert.True(t, d.cellAt(p).IsEmpty())
	assert.Equal(t, "", d.OutputText(nil))

	require.True(t, d.Undo())
	assert.Equal(t, 'x', d.rawAt(p))
}

func TestClearDrawDiscardsScratch(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'q', point{1, 1}, point{2, 1})
	d.ClearDraw()

	assert.Empty(t, d.Staged())
	assert.Equal(t, rune(0), d.rawAt(point{1, 1}))
	_, ok := d.BoundingBox()
	assert.False(t, ok)
}

func TestDrawValueIncrementalSkipsSameValue(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{0, 0})
	d.CommitDraw()

	require.NoError(t, d.DrawValueIncremental(point{0, 0}, 'a'))
	assert.Empty(t, d.Staged())
	require.NoError(t, d.DrawValueIncremental(point{0, 0}, 'b'))
	assert.Equal(t, []point{{0, 0}}, d.Staged())
}

func TestUndoRedoInverse(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, specialValue, hline(1, 1, 3)...)
	d.CommitDraw()
	stagePoints(t, d, 'z', point{0, 0})
	d.CommitDraw()
	full := d.OutputText(nil)

	require.True(t, d.Undo())
	assert.Equal(t, "+-+\n", d.OutputText(nil))
	require.True(t, d.Undo())
	assert.Equal(t, "", d.OutputText(nil))
	assert.False(t, d.Undo())

	require.True(t, d.Redo())
	require.True(t, d.Redo())
	assert.Equal(t, full, d.OutputText(nil))
	assert.False(t, d.Redo())
}

func TestUndoDiscardsPendingPreview(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{0, 0})
	d.CommitDraw()
	stagePoints(t, d, 'b', point{5, 5})

	require.True(t, d.Undo())
	assert.Empty(t, d.Staged())
	assert.Equal(t, "", d.OutputText(nil))
}

func TestUndoKeepsRedoStack(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{0, 0})
	d.CommitDraw()
	stagePoints(t, d, 'b', point{1, 0})
	d.CommitDraw()

	require.True(t, d.Undo())
	require.True(t, d.Undo())
	assert.Len(t, d.redoStack, 2)
	assert.Empty(t, d.undoStack)
}

func TestEditClearsRedoStack(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{0, 0})
	d.CommitDraw()
	require.True(t, d.Undo())
	require.True(t, d.CanRedo())

	stagePoints(t, d, 'b', point{1, 0})
	d.CommitDraw()
	assert.False(t, d.CanRedo())
	assert.Equal(t, " b\n", d.OutputText(&rect{Max: point{1, 0}}))
}

func TestHistoryIsBounded(t *testing.T) {
	d := NewDiagram(10, 10, 3)
	for x := 0; x < 5; x++ {
		stagePoints(t, d, 'a'+rune(x), point{x, 0})
		d.CommitDraw()
	}
	assert.Len(t, d.undoStack, 3)

	for d.Undo() {
	}
	assert.Equal(t, "ab\n", d.OutputText(nil))
}

func TestClearIsUndoable(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, specialValue, hline(2, 2, 5)...)
	d.CommitDraw()
	before := d.OutputText(nil)

	d.Clear()
	_, ok := d.BoundingBox()
	assert.False(t, ok)

	require.True(t, d.Undo())
	assert.Equal(t, before, d.OutputText(nil))
}

func TestOutOfBounds(t *testing.T) {
	d := newTestDiagram()

	assert.ErrorIs(t, d.DrawValue(point{-1, 0}, 'a'), ErrOutOfBounds)
	assert.ErrorIs(t, d.DrawValueIncremental(point{20, 0}, 'a'), ErrOutOfBounds)
	_, err := d.DisplayValue(point{0, 10})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = d.Cell(point{-5, -5})
	assert.ErrorIs(t, err, ErrOutOfBounds)
	assert.Empty(t, d.Staged())
}

func TestEdgeNeighboursCountAsEmpty(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, specialValue, point{0, 0})

	ctx := d.Context(point{0, 0})
	assert.Equal(t, 0, ctx.Sum())
	got, err := d.DisplayValue(point{0, 0})
	require.NoError(t, err)
	assert.Equal(t, '+', got)
}

func TestBoundingBox(t *testing.T) {
	d := newTestDiagram()
	stagePoints(t, d, 'a', point{3, 2}, point{7, 5})

	box, ok := d.BoundingBox()
	require.True(t, ok)
	assert.Equal(t, rect{Min: point{3, 2}, Max: point{7, 5}}, box)
}

func TestDirtyTracking(t *testing.T) {
	d := newTestDiagram()
	assert.True(t, d.Dirty())
	d.MarkClean()
	assert.False(t, d.Dirty())

	stagePoints(t, d, 'a', point{0, 0})
	assert.True(t, d.Dirty())
}
