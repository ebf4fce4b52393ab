package main

import "log/slog"

// historyEntry is one undo unit: the values the committed cells held before
// the commit that produced it.
type historyEntry []mappedValue

type commitOrigin int

const (
	originEdit commitOrigin = iota
	originUndo
	originRedo
)

func (o commitOrigin) String() string {
	switch o {
	case originUndo:
		return "undo"
	case originRedo:
		return "redo"
	default:
		return "edit"
	}
}

// pushHistory files the entry on the stack that inverts it. A fresh edit
// invalidates anything that could still be redone.
func (d *Diagram) pushHistory(origin commitOrigin, entry historyEntry) {
	switch origin {
	case originUndo:
		d.redoStack = pushBounded(d.redoStack, entry, d.maxUndo)
	case originRedo:
		d.undoStack = pushBounded(d.undoStack, entry, d.maxUndo)
	default:
		d.undoStack = pushBounded(d.undoStack, entry, d.maxUndo)
		d.redoStack = d.redoStack[:0]
	}
}

func pushBounded(stack []historyEntry, entry historyEntry, limit int) []historyEntry {
	stack = append(stack, entry)
	if len(stack) > limit {
		stack = stack[len(stack)-limit:]
	}
	return stack
}

func (d *Diagram) CanUndo() bool { return len(d.undoStack) > 0 }

func (d *Diagram) CanRedo() bool { return len(d.redoStack) > 0 }

// Undo reverts the last committed edit. Any uncommitted preview is discarded
// first.
func (d *Diagram) Undo() bool {
	if len(d.undoStack) == 0 {
		return false
	}
	last := len(d.undoStack) - 1
	entry := d.undoStack[last]
	d.undoStack = d.undoStack[:last]

	d.ClearDraw()
	d.replay(entry)
	d.commit(originUndo)
	slog.Debug("undo", "cells", len(entry), "remaining", len(d.undoStack))
	return true
}

// Redo reapplies the last undone edit.
func (d *Diagram) Redo() bool {
	if len(d.redoStack) == 0 {
		return false
	}
	last := len(d.redoStack) - 1
	entry := d.redoStack[last]
	d.redoStack = d.redoStack[:last]

	d.ClearDraw()
	d.replay(entry)
	d.commit(originRedo)
	slog.Debug("redo", "cells", len(entry), "remaining", len(d.redoStack))
	return true
}

func (d *Diagram) replay(entry historyEntry) {
	for _, mv := range entry {
		if c := d.cellAt(mv.Pos); c != nil {
			d.stage(mv.Pos, c, mv.Value)
		}
	}
}
