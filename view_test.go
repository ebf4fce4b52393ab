package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnicodeGlyphs(t *testing.T) {
	d := newTestDiagram()
	require.NoError(t, d.ImportAt(boxText, point{}))
	stagePoints(t, d, specialValue, point{1, 3})
	d.CommitDraw()

	tests := []struct {
		pos  point
		want rune
	}{
		{point{0, 0}, '┌'},
		{point{3, 0}, '┐'},
		{point{0, 2}, '└'},
		{point{3, 2}, '┘'},
		{point{1, 0}, '─'},
		{point{0, 1}, '│'},
	}
	for _, tt := range tests {
		v, err := d.DisplayValue(tt.pos)
		require.NoError(t, err)
		assert.Equal(t, string(tt.want), string(unicodeGlyph(d, tt.pos, v)), "at %v", tt.pos)
	}

	// The bottom edge cell above the stub is a tee in both renderings.
	v, err := d.DisplayValue(point{1, 2})
	require.NoError(t, err)
	assert.Equal(t, "+", string(v))
	assert.Equal(t, "┬", string(unicodeGlyph(d, point{1, 2}, v)))
	assert.Equal(t, "x", string(unicodeGlyph(d, point{9, 9}, 'x')))
}

func TestRenderGridShowsDiagram(t *testing.T) {
	m, err := initialModel(testConfig(), nil)
	require.NoError(t, err)
	m.width, m.height = 6, 5
	require.NoError(t, m.getDiagram().ImportAt(boxText, point{}))
	m.getDiagram().CommitDraw()

	rows := m.renderGrid(6, 3)
	require.Len(t, rows, 3)
	assert.Contains(t, rows[1], "|  |")
	assert.Contains(t, rows[2], "+--+")
	assert.False(t, m.getDiagram().Dirty())
}

func TestCanvasTopFollowsBufferCount(t *testing.T) {
	m, err := initialModel(testConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, m.canvasTop())

	m.addNewBuffer(m.config.newDiagram(), "second.txt")
	assert.Equal(t, 1, m.canvasTop())
	assert.Contains(t, m.renderBufferBar(80), "second")
}

func TestHelpViewScrolls(t *testing.T) {
	m := model{height: 5, help: true}
	first := m.helpView()
	assert.True(t, strings.HasPrefix(first, helpLines[0]))

	m.helpScroll = 2
	assert.True(t, strings.HasPrefix(m.helpView(), helpLines[2]))
}
