package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeFreeformChar
	ModeFileInput
	ModeConfirm
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmClear ConfirmAction = iota
	ConfirmQuit
	ConfirmCloseBuffer
)

type ToolKind int

const (
	ToolBox ToolKind = iota
	ToolLine
	ToolArrow
	ToolFreeform
	ToolErase
	ToolText
	ToolSelect
	ToolMove
)

var toolNames = map[ToolKind]string{
	ToolBox:      "BOX",
	ToolLine:     "LINE",
	ToolArrow:    "ARROW",
	ToolFreeform: "FREEFORM",
	ToolErase:    "ERASE",
	ToolText:     "TEXT",
	ToolSelect:   "SELECT",
	ToolMove:     "MOVE",
}

func (k ToolKind) String() string {
	if name, ok := toolNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// Glyphs stored in and resolved from the grid.
const (
	specialValue    = '+'
	altSpecialValue = '^'

	specialLineH = '-'
	specialLineV = '|'

	specialArrowLeft  = '<'
	specialArrowUp    = '^'
	specialArrowRight = '>'
	specialArrowDown  = 'v'

	// Thin space. Staged to blank a cell; exported as a plain space.
	eraseChar = '\u2009'
)

var (
	specialValues    = []rune{'+', '\u2012', '\u2013', '-', '|'}
	altSpecialValues = []rune{'>', '<', '^', 'v'}
)

const (
	defaultGridWidth  = 2000
	defaultGridHeight = 600
	defaultMaxUndo    = 50
)

// Synthetic key names passed to drawTool.HandleKey.
const (
	KeyBackspace = "<backspace>"
	KeyReturn    = "<enter>"
	KeyEscape    = "<escape>"
	KeyCopy      = "<copy>"
	KeyCut       = "<cut>"
	KeyPaste     = "<paste>"
	KeyUp        = "<up>"
	KeyDown      = "<down>"
	KeyLeft      = "<left>"
	KeyRight     = "<right>"
)

type cursorKind int

const (
	cursorDefault cursorKind = iota
	cursorCrosshair
	cursorPointer
)

func (c cursorKind) String() string {
	switch c {
	case cursorCrosshair:
		return "crosshair"
	case cursorPointer:
		return "pointer"
	default:
		return "default"
	}
}
