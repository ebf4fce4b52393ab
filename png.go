package main

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

var errNothingToExport = errors.New("nothing to export")

const (
	pngCharWidth  = 8.0
	pngCharHeight = 16.0
	pngPadding    = 2
	pngFontSize   = 12.0
	pngArrowSize  = 5.0
)

// ExportToPNG draws the occupied part of the diagram as an image. Line cells
// become strokes, arrows become filled heads and everything else is set in
// Go Mono.
func (d *Diagram) ExportToPNG(filename string) error {
	box, ok := d.BoundingBox()
	if !ok {
		return errNothingToExport
	}
	dc, err := d.renderImage(box)
	if err != nil {
		return err
	}
	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("save png %s: %w", filename, err)
	}
	return nil
}

func (d *Diagram) renderImage(box rect) (*gg.Context, error) {
	imageWidth := int(float64(box.Width()+2*pngPadding) * pngCharWidth)
	imageHeight := int(float64(box.Height()+2*pngPadding) * pngCharHeight)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.0)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    pngFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	for y := box.Min.Y; y <= box.Max.Y; y++ {
		for x := box.Min.X; x <= box.Max.X; x++ {
			pos := point{x, y}
			v := d.exportRune(pos)
			if v == ' ' {
				continue
			}
			cx := (float64(x-box.Min.X+pngPadding) + 0.5) * pngCharWidth
			cy := (float64(y-box.Min.Y+pngPadding) + 0.5) * pngCharHeight
			d.drawCellPNG(dc, pos, v, cx, cy)
		}
	}
	return dc, nil
}

func (d *Diagram) drawCellPNG(dc *gg.Context, pos point, v rune, cx, cy float64) {
	halfW, halfH := pngCharWidth/2, pngCharHeight/2
	ctx := d.Context(pos)

	switch {
	case v == specialLineH && d.isSpecialAt(pos) && (ctx.left || ctx.right):
		strokePNG(dc, cx-halfW, cy, cx+halfW, cy)
	case v == specialLineV && d.isSpecialAt(pos) && (ctx.up || ctx.down):
		strokePNG(dc, cx, cy-halfH, cx, cy+halfH)
	case v == specialValue && ctx.Sum() > 0:
		if ctx.left {
			strokePNG(dc, cx, cy, cx-halfW, cy)
		}
		if ctx.right {
			strokePNG(dc, cx, cy, cx+halfW, cy)
		}
		if ctx.up {
			strokePNG(dc, cx, cy, cx, cy-halfH)
		}
		if ctx.down {
			strokePNG(dc, cx, cy, cx, cy+halfH)
		}
	case isArrowValue(v) && ctx.Sum() > 0:
		dir := arrowDirection(v)
		tipX := cx + float64(dir.X)*halfW
		tipY := cy + float64(dir.Y)*halfH
		tailX := cx - float64(dir.X)*halfW
		tailY := cy - float64(dir.Y)*halfH
		strokePNG(dc, tailX, tailY, tipX, tipY)
		drawArrowPNG(dc, tailX, tailY, tipX, tipY)
	default:
		dc.DrawStringAnchored(string(v), cx, cy, 0.5, 0.35)
	}
}

func arrowDirection(v rune) point {
	switch v {
	case specialArrowLeft:
		return dirLeft
	case specialArrowRight:
		return dirRight
	case specialArrowDown:
		return dirDown
	default:
		return dirUp
	}
}

func strokePNG(dc *gg.Context, x1, y1, x2, y2 float64) {
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func drawArrowPNG(dc *gg.Context, fx, fy, tx, ty float64) {
	dx := tx - fx
	dy := ty - fy
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	arrowAngle := 0.6
	baseX1 := tx - pngArrowSize*dx + pngArrowSize*dy*arrowAngle
	baseY1 := ty - pngArrowSize*dy - pngArrowSize*dx*arrowAngle
	baseX2 := tx - pngArrowSize*dx - pngArrowSize*dy*arrowAngle
	baseY2 := ty - pngArrowSize*dy + pngArrowSize*dx*arrowAngle

	dc.MoveTo(tx, ty)
	dc.LineTo(baseX1, baseY1)
	dc.LineTo(baseX2, baseY2)
	dc.ClosePath()
	dc.Fill()
}
