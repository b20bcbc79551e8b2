// Package grid holds the CPU side of the cell grid: clip-space geometry
// generation, text layout, cursor placement, hit testing and the per-cell
// text store. Nothing in this package touches the GPU; the render package
// uploads the buffers this package produces.
package grid

import (
	"math"

	"github.com/gridsheet/gridsheet/font"
)

// Hard bounds carried over from the wire format: a hit test packs a cell
// as row*256+col, so columns must stay below 256.
const (
	MaxRows    = 256
	MaxCols    = 64
	MaxTextLen = 31
)

// Layout constants. CellPad insets every cell edge so neighbours never
// share a pixel. Glyphs use 65% of the cell height at the font's 5:7
// aspect ratio and advance by 85% of their width.
const (
	CellPad         = 0.005
	glyphHeightFrac = 0.65
	glyphAspect     = float32(font.GlyphWidth) / float32(font.GlyphHeight)
	AdvanceRatio    = 0.85
	cursorBarFrac   = 0.15
)

// Bounds is a cell rectangle in clip space. Y1 is the bottom edge and Y2
// the top edge (clip-space Y grows upward, rows grow downward).
type Bounds struct {
	X1, Y1, X2, Y2 float32
}

// Width returns the inner cell width.
func (b Bounds) Width() float32 { return b.X2 - b.X1 }

// Height returns the inner cell height.
func (b Bounds) Height() float32 { return b.Y2 - b.Y1 }

// CellBounds maps (row, col) of a rows x cols grid onto the padded
// clip-space rectangle of that cell. Row 0 is the visual top.
func CellBounds(row, col, rows, cols int) Bounds {
	cw := 2.0 / float32(cols)
	ch := 2.0 / float32(rows)
	return Bounds{
		X1: -1 + float32(col)*cw + CellPad,
		X2: -1 + float32(col+1)*cw - CellPad,
		Y1: 1 - float32(row+1)*ch + CellPad,
		Y2: 1 - float32(row)*ch - CellPad,
	}
}

// Layout is the shared origin both the text batcher and the cursor
// derive their geometry from. Keeping a single source for this math is
// what keeps the cursor pixel-aligned with the glyphs.
type Layout struct {
	OriginX, OriginY float32
	GlyphW, GlyphH   float32
}

// LayoutOrigin computes the bottom-left origin of a centered run of
// textLen glyphs inside a cell, plus the glyph dimensions.
func LayoutOrigin(b Bounds, textLen int) Layout {
	gh := b.Height() * glyphHeightFrac
	gw := gh * glyphAspect
	totalW := float32(textLen) * gw * AdvanceRatio
	return Layout{
		OriginX: b.X1 + (b.Width()-totalW)*0.5,
		OriginY: b.Y1 + (b.Height()-gh)*0.5,
		GlyphW:  gw,
		GlyphH:  gh,
	}
}

// NoCell is returned by HitTest when the point does not land on a cell.
const NoCell = -1

// PackCell packs a cell address into the row*256+col wire encoding.
func PackCell(row, col int) int { return row*256 + col }

// UnpackCell splits a packed cell address back into row and column.
func UnpackCell(packed int) (row, col int) { return packed / 256, packed % 256 }

// HitTest inverts CellBounds: given a clip-space point it returns the
// packed index of the cell underneath, or NoCell when the grid is not
// initialized or the point falls outside it.
func HitTest(x, y float32, rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return NoCell
	}
	cw := 2.0 / float32(cols)
	ch := 2.0 / float32(rows)
	col := int(math.Floor(float64((x + 1) / cw)))
	row := int(math.Floor(float64((1 - y) / ch)))
	if col < 0 || col >= cols || row < 0 || row >= rows {
		return NoCell
	}
	return PackCell(row, col)
}
