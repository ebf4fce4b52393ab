package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	stagedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	selectionStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	statusStyle    = lipgloss.NewStyle().Bold(true)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	activeBufStyle = lipgloss.NewStyle().Reverse(true)
)

// junctionGlyphs maps a left/right/up/down context to a box-drawing rune.
var junctionGlyphs = map[[4]bool]rune{
	{true, true, true, true}:    '┼',
	{true, true, true, false}:   '┴',
	{true, true, false, true}:   '┬',
	{false, true, true, true}:   '├',
	{true, false, true, true}:   '┤',
	{false, true, false, true}:  '┌',
	{true, false, false, true}:  '┐',
	{false, true, true, false}:  '└',
	{true, false, true, false}:  '┘',
	{true, true, false, false}:  '─',
	{false, false, true, true}:  '│',
	{true, false, false, false}: '─',
	{false, true, false, false}: '─',
	{false, false, true, false}: '│',
	{false, false, false, true}: '│',
}

// unicodeGlyph swaps resolved ASCII line glyphs for box-drawing ones.
func unicodeGlyph(d *Diagram, pos point, v rune) rune {
	switch v {
	case specialLineH:
		return '─'
	case specialLineV:
		return '│'
	case specialValue:
		ctx := d.Context(pos)
		if r, ok := junctionGlyphs[[4]bool{ctx.left, ctx.right, ctx.up, ctx.down}]; ok {
			return r
		}
	}
	return v
}

// styledRow accumulates runes and only emits escape codes when the style
// changes.
type styledRow struct {
	out   strings.Builder
	run   strings.Builder
	style *lipgloss.Style
}

func (r *styledRow) write(ch rune, style *lipgloss.Style) {
	if style != r.style {
		r.flush()
		r.style = style
	}
	r.run.WriteRune(ch)
}

func (r *styledRow) flush() {
	if r.run.Len() == 0 {
		return
	}
	if r.style == nil {
		r.out.WriteString(r.run.String())
	} else {
		r.out.WriteString(r.style.Render(r.run.String()))
	}
	r.run.Reset()
}

func (r *styledRow) String() string {
	r.flush()
	return r.out.String()
}

// renderGrid draws the visible part of the current diagram.
func (m *model) renderGrid(width, height int) []string {
	d := m.getDiagram()
	rows := make([]string, 0, height)
	if d == nil {
		for i := 0; i < height; i++ {
			rows = append(rows, strings.Repeat(" ", width))
		}
		return rows
	}

	panX, panY := m.getPanOffset()
	cursor := m.worldCell()
	selection, hasSelection := m.currentSelection()
	unicode := m.config != nil && m.config.UnicodeLines

	for sy := 0; sy < height; sy++ {
		var row styledRow
		for sx := 0; sx < width; sx++ {
			pos := point{sx + panX, sy + panY}
			c := d.cellAt(pos)
			if c == nil {
				row.write(' ', nil)
				continue
			}
			v := d.resolve(pos, c)
			if v == 0 || v == eraseChar {
				v = ' '
			} else if unicode {
				v = unicodeGlyph(d, pos, v)
			}

			var style *lipgloss.Style
			switch {
			case pos == cursor && m.mode == ModeNormal:
				style = &cursorStyle
			case c.HasScratch():
				style = &stagedStyle
			case hasSelection && selection.Contains(pos):
				style = &selectionStyle
			}
			row.write(v, style)
		}
		rows = append(rows, row.String())
	}
	d.MarkClean()
	return rows
}

func (m *model) currentSelection() (rect, bool) {
	if sel, ok := m.tool.(*selectTool); ok {
		return sel.Selection()
	}
	return rect{}, false
}

func (m *model) renderBufferBar(width int) string {
	var bar strings.Builder
	bar.WriteString("Open diagrams: ")
	for i, buf := range m.buffers {
		if i > 0 {
			bar.WriteString(" | ")
		}
		name := fmt.Sprintf("Buffer %d", i+1)
		if buf.filename != "" {
			name = strings.TrimSuffix(buf.filename, ".txt")
		}
		if i == m.currentBufferIndex {
			bar.WriteString(activeBufStyle.Render(name))
		} else {
			bar.WriteString(name)
		}
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(bar.String())
}

func (m *model) statusLine(width int) string {
	var status string
	switch m.mode {
	case ModeFileInput:
		prompt := map[FileOperation]string{
			FileOpSave:    "Save as",
			FileOpSavePNG: "Export PNG as",
			FileOpOpen:    "Open",
		}[m.fileOp]
		status = fmt.Sprintf("%s: %s█  (Enter to confirm, Esc to cancel)", prompt, m.filename)
	case ModeConfirm:
		question := map[ConfirmAction]string{
			ConfirmClear:       "Clear the whole diagram?",
			ConfirmQuit:        "Quit asciiflow?",
			ConfirmCloseBuffer: "Close this buffer?",
		}[m.confirmAction]
		status = question + " (y/n)"
	case ModeFreeformChar:
		status = "Type the character to stamp with the freeform tool"
	default:
		cell := m.worldCell()
		cursor := cursorDefault
		if m.tool != nil {
			cursor = m.tool.Cursor(cell)
		}
		pen := ""
		if m.penDown {
			pen = " PEN"
		}
		pan := ""
		if m.zPanMode {
			pan = " PAN"
		}
		status = statusStyle.Render(m.toolKind.String()+pen+pan) +
			fmt.Sprintf("  %d,%d  %s", cell.X, cell.Y, cursor)
		if d := m.getDiagram(); d != nil {
			status += fmt.Sprintf("  undo:%d redo:%d", len(d.undoStack), len(d.redoStack))
		}
	}

	if m.errorMessage != "" {
		status += "  " + errorStyle.Render(m.errorMessage)
	} else if m.successMessage != "" {
		status += "  " + successStyle.Render(m.successMessage)
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(status)
}

var helpLines = []string{
	"asciiflow help",
	"==============",
	"",
	"Drawing:",
	"  mouse drag        Draw with the current tool",
	"  space             Put the pen down / lift it at the cursor",
	"  h/j/k/l, arrows   Move the cursor (Shift for 2x); with the pen down this draws",
	"  z                 Toggle pan mode (cursor keys scroll the view)",
	"",
	"Tools:",
	"  1 box  2 line  3 arrow  4 freeform  5 erase  6 text  7 select  8 move",
	"  f                 Choose the freeform character",
	"  Esc               Finish typing with the text tool",
	"",
	"Editing:",
	"  u / U             Undo / redo",
	"  y / x / p         Copy / cut the selection, paste it at the cursor",
	"  i                 Import the system clipboard at the centre of the view",
	"  D                 Clear the diagram",
	"",
	"Files and buffers:",
	"  s                 Save as text",
	"  S                 Export PNG",
	"  o                 Open a text diagram into a new buffer",
	"  { / }             Previous / next buffer",
	"  N / X             New / close buffer",
	"",
	"  ?                 Toggle this help",
	"  q / Ctrl+C        Quit",
}

func (m model) helpView() string {
	visible := max(m.height-1, 1)
	start := min(m.helpScroll, max(len(helpLines)-visible, 0))
	end := min(start+visible, len(helpLines))
	return strings.Join(helpLines[start:end], "\n")
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	width := max(m.width, 1)
	height := max(m.height-1-m.canvasTop(), 1)

	var result strings.Builder
	if m.canvasTop() > 0 {
		result.WriteString(m.renderBufferBar(width))
		result.WriteString("\n")
	}
	for _, row := range m.renderGrid(width, height) {
		result.WriteString(row)
		result.WriteString("\n")
	}
	result.WriteString(m.statusLine(width))
	return result.String()
}

// canvasTop is the number of screen rows above the grid.
func (m model) canvasTop() int {
	if len(m.buffers) > 1 {
		return 1
	}
	return 0
}
