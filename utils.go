package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func (m *model) getCurrentBuffer() *Buffer {
	if len(m.buffers) == 0 {
		return nil
	}
	return &m.buffers[m.currentBufferIndex]
}

func (m *model) getDiagram() *Diagram {
	if buf := m.getCurrentBuffer(); buf != nil {
		return buf.diagram
	}
	return nil
}

func (m *model) getPanOffset() (int, int) {
	if buf := m.getCurrentBuffer(); buf != nil {
		return buf.panX, buf.panY
	}
	return 0, 0
}

// worldCell maps the keyboard cursor to a grid cell.
func (m *model) worldCell() point {
	return m.screenToCell(m.cursorX, m.cursorY)
}

// screenToCell maps a screen position to a grid cell, clamped to the grid.
func (m *model) screenToCell(screenX, screenY int) point {
	panX, panY := m.getPanOffset()
	p := point{screenX + panX, screenY - m.canvasTop() + panY}
	if d := m.getDiagram(); d != nil {
		w, h := d.Size()
		p.X = max(0, min(p.X, w-1))
		p.Y = max(0, min(p.Y, h-1))
	}
	return p
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// clipboardDiagramText reads the clipboard as plain diagram text.
func clipboardDiagramText() (string, error) {
	text, err := readClipboardText()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	if isHTML(text) {
		text = extractTextFromHTML(text)
	}
	return cleanClipboardText(text), nil
}

func isHTML(text string) bool {
	return strings.HasPrefix(strings.TrimSpace(text), "<") &&
		(strings.Contains(text, "<html") || strings.Contains(text, "<body") || strings.Contains(text, "<div") || strings.Contains(text, "<pre"))
}

var htmlEntities = strings.NewReplacer(
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", "\"",
	"&#39;", "'",
	"&nbsp;", " ",
	"&amp;", "&",
)

func extractTextFromHTML(html string) string {
	var result strings.Builder
	result.Grow(len(html))
	inTag := false
	for _, r := range html {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			result.WriteRune(r)
		}
	}
	return htmlEntities.Replace(result.String())
}

// cleanClipboardText strips RTF markup and control characters and
// normalizes line endings. Tabs become single spaces so columns stay aligned
// one rune per cell.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	text = stripRTF(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n':
			result.WriteRune(r)
		case r == '\t':
			result.WriteRune(' ')
		case r >= 32:
			result.WriteRune(r)
		}
	}
	return result.String()
}

func stripRTF(text string) string {
	if !strings.HasPrefix(text, "{\\rtf") && !strings.Contains(text, "\\rtf") {
		return text
	}
	var result strings.Builder
	result.Grow(len(text))
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '{' || r == '}' {
			continue
		}
		if r != '\\' {
			result.WriteRune(r)
			continue
		}
		if i+1 >= len(runes) {
			continue
		}
		next := runes[i+1]
		switch {
		case isASCIILetter(next):
			// Control word: letters, optional numeric argument, optional space.
			start := i + 1
			i++
			for i < len(runes) && isASCIILetter(runes[i]) {
				i++
			}
			word := string(runes[start:i])
			for i < len(runes) && (runes[i] == '-' || (runes[i] >= '0' && runes[i] <= '9')) {
				i++
			}
			if i < len(runes) && runes[i] == ' ' {
				i++
			}
			if word == "par" || word == "line" {
				result.WriteRune('\n')
			}
			i--
		case next == '\\' || next == '{' || next == '}' || next == '\n':
			result.WriteRune(next)
			i++
		}
	}
	return result.String()
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
