package grid

import (
	"math"
	"testing"
)

func almostEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

// TestCellBoundsOrdering verifies every cell's padded rectangle keeps
// x1<x2 and y1<y2 for reasonable grid sizes.
func TestCellBoundsOrdering(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 2}, {8, 4}, {16, 16}, {64, 64}}
	for _, s := range sizes {
		rows, cols := s[0], s[1]
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				b := CellBounds(row, col, rows, cols)
				if b.X1 >= b.X2 {
					t.Fatalf("%dx%d cell (%d,%d): x1 %v >= x2 %v", rows, cols, row, col, b.X1, b.X2)
				}
				if b.Y1 >= b.Y2 {
					t.Fatalf("%dx%d cell (%d,%d): y1 %v >= y2 %v", rows, cols, row, col, b.Y1, b.Y2)
				}
			}
		}
	}
}

// TestCellBoundsCorners pins the outer edges of the grid to clip space
// minus padding, with row 0 at the visual top.
func TestCellBoundsCorners(t *testing.T) {
	b := CellBounds(0, 0, 3, 2)
	if !almostEqual(b.X1, -1+CellPad) {
		t.Errorf("top-left x1 = %v, want %v", b.X1, -1+CellPad)
	}
	if !almostEqual(b.Y2, 1-CellPad) {
		t.Errorf("top-left y2 = %v, want %v", b.Y2, 1-CellPad)
	}
	b = CellBounds(2, 1, 3, 2)
	if !almostEqual(b.X2, 1-CellPad) {
		t.Errorf("bottom-right x2 = %v, want %v", b.X2, 1-CellPad)
	}
	if !almostEqual(b.Y1, -1+CellPad) {
		t.Errorf("bottom-right y1 = %v, want %v", b.Y1, -1+CellPad)
	}
}

// TestAdjacentCellsDoNotTouch verifies the padding keeps neighbouring
// cells from sharing an edge.
func TestAdjacentCellsDoNotTouch(t *testing.T) {
	left := CellBounds(0, 0, 2, 2)
	right := CellBounds(0, 1, 2, 2)
	if left.X2 >= right.X1 {
		t.Errorf("horizontal neighbours touch: %v >= %v", left.X2, right.X1)
	}
	top := CellBounds(0, 0, 2, 2)
	bottom := CellBounds(1, 0, 2, 2)
	if bottom.Y2 >= top.Y1 {
		t.Errorf("vertical neighbours touch: %v >= %v", bottom.Y2, top.Y1)
	}
}

// TestHitTestRoundTrip runs every cell centroid back through the
// inverse transform.
func TestHitTestRoundTrip(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 2}, {8, 4}, {256, 64}}
	for _, s := range sizes {
		rows, cols := s[0], s[1]
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				b := CellBounds(row, col, rows, cols)
				cx := (b.X1 + b.X2) / 2
				cy := (b.Y1 + b.Y2) / 2
				got := HitTest(cx, cy, rows, cols)
				if want := PackCell(row, col); got != want {
					t.Fatalf("%dx%d centroid of (%d,%d): got %d, want %d", rows, cols, row, col, got, want)
				}
			}
		}
	}
}

// TestHitTestMisses covers the uninitialized grid and points outside
// clip space.
func TestHitTestMisses(t *testing.T) {
	if got := HitTest(0, 0, 0, 0); got != NoCell {
		t.Errorf("uninitialized grid: got %d, want NoCell", got)
	}
	if got := HitTest(0, 0, -1, 4); got != NoCell {
		t.Errorf("negative rows: got %d, want NoCell", got)
	}
	for _, pt := range [][2]float32{{1.5, 0}, {-1.5, 0}, {0, 1.5}, {0, -1.5}} {
		if got := HitTest(pt[0], pt[1], 4, 4); got != NoCell {
			t.Errorf("point (%v,%v): got %d, want NoCell", pt[0], pt[1], got)
		}
	}
}

// TestPackUnpack verifies the row*256+col wire encoding.
func TestPackUnpack(t *testing.T) {
	cases := [][2]int{{0, 0}, {1, 0}, {0, 63}, {255, 63}, {7, 3}}
	for _, c := range cases {
		packed := PackCell(c[0], c[1])
		row, col := UnpackCell(packed)
		if row != c[0] || col != c[1] {
			t.Errorf("pack/unpack (%d,%d): got (%d,%d) via %d", c[0], c[1], row, col, packed)
		}
	}
	if got := PackCell(2, 5); got != 2*256+5 {
		t.Errorf("PackCell(2,5) = %d, want %d", got, 2*256+5)
	}
}

// TestLayoutOriginFormula pins the shared layout math: glyph height is
// 65% of the cell, width follows the 5:7 font aspect, and the advance
// run is centered on both axes.
func TestLayoutOriginFormula(t *testing.T) {
	b := CellBounds(1, 1, 4, 3)
	const textLen = 5
	l := LayoutOrigin(b, textLen)

	wantH := b.Height() * 0.65
	if !almostEqual(l.GlyphH, wantH) {
		t.Errorf("glyph height = %v, want %v", l.GlyphH, wantH)
	}
	wantW := wantH * 5 / 7
	if !almostEqual(l.GlyphW, wantW) {
		t.Errorf("glyph width = %v, want %v", l.GlyphW, wantW)
	}

	totalW := textLen * l.GlyphW * AdvanceRatio
	leftGap := l.OriginX - b.X1
	rightGap := b.X2 - (l.OriginX + totalW)
	if !almostEqual(leftGap, rightGap) {
		t.Errorf("horizontal gaps differ: left %v, right %v", leftGap, rightGap)
	}

	bottomGap := l.OriginY - b.Y1
	topGap := b.Y2 - (l.OriginY + l.GlyphH)
	if !almostEqual(bottomGap, topGap) {
		t.Errorf("vertical gaps differ: bottom %v, top %v", bottomGap, topGap)
	}
}

// TestLayoutOriginIndependentOfGridSize verifies centering holds for a
// single character regardless of the grid the cell comes from.
func TestLayoutOriginIndependentOfGridSize(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 2}, {10, 10}}
	for _, s := range sizes {
		b := CellBounds(0, 0, s[0], s[1])
		l := LayoutOrigin(b, 1)
		leftGap := l.OriginX - b.X1
		rightGap := b.X2 - (l.OriginX + l.GlyphW*AdvanceRatio)
		if !almostEqual(leftGap, rightGap) {
			t.Errorf("%dx%d: gaps %v vs %v", s[0], s[1], leftGap, rightGap)
		}
	}
}
