package main

type point struct {
	X, Y int
}

func (p point) Add(o point) point { return point{p.X + o.X, p.Y + o.Y} }
func (p point) Sub(o point) point { return point{p.X - o.X, p.Y - o.Y} }
func (p point) Scale(f int) point { return point{p.X * f, p.Y * f} }
func (p point) Left() point { return point{p.X - 1, p.Y} }
func (p point) Right() point { return point{p.X + 1, p.Y} }
func (p point) Up() point { return point{p.X, p.Y - 1} }
func (p point) Down() point { return point{p.X, p.Y + 1} }
func (p point) isHorizontalDir() bool { return p.X != 0 }
func (p point) isOpposite(o point) bool { return p.Add(o) == point{} }

var (
	dirLeft  = point{-1, 0}
	dirRight = point{1, 0}
	dirUp    = point{0, -1}
	dirDown  = point{0, 1}

	directions = []point{dirLeft, dirRight, dirUp, dirDown}
)

// rect is an axis-aligned box normalized so Min <= Max on both axes.
type rect struct {
	Min, Max point
}

func newRect(a, b point) rect {
	return rect{
		Min: point{min(a.X, b.X), min(a.Y, b.Y)},
		Max: point{max(a.X, b.X), max(a.Y, b.Y)},
	}
}

func (r rect) Contains(p point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r rect) Width() int { return r.Max.X - r.Min.X + 1 }
func (r rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// mappedValue pairs a position with a cell value, for history entries and
// clipboard contents.
type mappedValue struct {
	Pos   point
	Value rune
}

type Buffer struct {
	diagram  *Diagram
	filename string
	panX     int
	panY     int
}

type model struct {
	width              int
	height             int
	cursorX            int
	cursorY            int
	zPanMode           bool
	buffers            []Buffer
	currentBufferIndex int
	mode               Mode
	help               bool
	helpScroll         int
	toolKind           ToolKind
	tool               drawTool
	drawing            bool
	penDown            bool
	lastMoveCell       *point
	filename           string
	fileOp             FileOperation
	confirmAction      ConfirmAction
	errorMessage       string
	successMessage     string
	config             *Config
	freeformChar       rune
}
