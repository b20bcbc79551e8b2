package grid

import (
	"testing"

	"github.com/gridsheet/gridsheet/font"
)

const floatsPerGlyph = VertsPerCell * TextFloatsPerVertex

// glyphQuad pulls one glyph quad out of a batch as [vertex][field].
func glyphQuad(batch []float32, i int) [VertsPerCell][TextFloatsPerVertex]float32 {
	var q [VertsPerCell][TextFloatsPerVertex]float32
	base := i * floatsPerGlyph
	for v := 0; v < VertsPerCell; v++ {
		for f := 0; f < TextFloatsPerVertex; f++ {
			q[v][f] = batch[base+v*TextFloatsPerVertex+f]
		}
	}
	return q
}

// TestAppendCellTextEmpty verifies empty text emits nothing.
func TestAppendCellTextEmpty(t *testing.T) {
	b := CellBounds(0, 0, 2, 2)
	if got := AppendCellText(nil, b, ""); len(got) != 0 {
		t.Errorf("empty text emitted %d floats", len(got))
	}
}

// TestSingleCharCentered verifies a one-character string lands centered
// in its cell, independent of grid size.
func TestSingleCharCentered(t *testing.T) {
	sizes := [][2]int{{1, 1}, {3, 2}, {10, 6}}
	for _, s := range sizes {
		rows, cols := s[0], s[1]
		b := CellBounds(0, 0, rows, cols)
		batch := AppendCellText(nil, b, "A")
		if len(batch) != floatsPerGlyph {
			t.Fatalf("%dx%d: got %d floats, want %d", rows, cols, len(batch), floatsPerGlyph)
		}
		q := glyphQuad(batch, 0)

		l := LayoutOrigin(b, 1)
		// Vertical centering is exact.
		wantCenterY := (b.Y1 + b.Y2) / 2
		gotCenterY := (q[0][1] + q[2][1]) / 2
		if !almostEqual(gotCenterY, wantCenterY) {
			t.Errorf("%dx%d: glyph center y = %v, want %v", rows, cols, gotCenterY, wantCenterY)
		}
		// Horizontally the advance run is centered; the glyph box sits
		// at its left edge, within the advance-to-width slack.
		wantCenterX := (b.X1 + b.X2) / 2
		gotCenterX := (q[0][0] + q[1][0]) / 2
		slack := l.GlyphW * (1 - AdvanceRatio)
		if diff := gotCenterX - wantCenterX; diff < -slack || diff > slack {
			t.Errorf("%dx%d: glyph center x = %v, want %v within %v", rows, cols, gotCenterX, wantCenterX, slack)
		}
		if q[0][0] < b.X1 || q[1][0] > b.X2 {
			t.Errorf("%dx%d: glyph [%v,%v] outside cell [%v,%v]", rows, cols, q[0][0], q[1][0], b.X1, b.X2)
		}
	}
}

// TestGlyphDimensionsAndUVs verifies the quad size follows the shared
// layout math and the UVs address the glyph's atlas cell.
func TestGlyphDimensionsAndUVs(t *testing.T) {
	b := CellBounds(1, 0, 4, 2)
	batch := AppendCellText(nil, b, "7")
	if len(batch) != floatsPerGlyph {
		t.Fatalf("got %d floats, want %d", len(batch), floatsPerGlyph)
	}
	q := glyphQuad(batch, 0)
	l := LayoutOrigin(b, 1)

	if gotW := q[1][0] - q[0][0]; !almostEqual(gotW, l.GlyphW) {
		t.Errorf("glyph width = %v, want %v", gotW, l.GlyphW)
	}
	if gotH := q[2][1] - q[1][1]; !almostEqual(gotH, l.GlyphH) {
		t.Errorf("glyph height = %v, want %v", gotH, l.GlyphH)
	}

	u0, v0, u1, v1 := font.UV(font.Index('7'))
	// Bottom-left vertex samples (u0,v1); top-right samples (u1,v0).
	if q[0][2] != u0 || q[0][3] != v1 {
		t.Errorf("bottom-left UV = (%v,%v), want (%v,%v)", q[0][2], q[0][3], u0, v1)
	}
	if q[2][2] != u1 || q[2][3] != v0 {
		t.Errorf("top-right UV = (%v,%v), want (%v,%v)", q[2][2], q[2][3], u1, v0)
	}
}

// TestUnsupportedCharsAdvance verifies characters outside the font
// advance the pen without emitting quads.
func TestUnsupportedCharsAdvance(t *testing.T) {
	b := CellBounds(0, 0, 4, 2)
	withGap := AppendCellText(nil, b, "A#B")
	if got := len(withGap) / floatsPerGlyph; got != 2 {
		t.Fatalf("emitted %d quads, want 2", got)
	}

	l := LayoutOrigin(b, 3)
	advance := l.GlyphW * AdvanceRatio
	qa := glyphQuad(withGap, 0)
	qb := glyphQuad(withGap, 1)
	if !almostEqual(qb[0][0]-qa[0][0], 2*advance) {
		t.Errorf("B offset = %v, want %v", qb[0][0]-qa[0][0], 2*advance)
	}
}

// TestTruncation verifies glyph emission stops at the cell's right edge
// and drops the rest of the string.
func TestTruncation(t *testing.T) {
	// 4 rows x 2 cols: the cell is wide enough for a handful of glyphs
	// but not nine.
	b := CellBounds(1, 0, 4, 2)
	text := "123456789"
	batch := AppendCellText(nil, b, text)
	n := len(batch) / floatsPerGlyph

	if n == 0 || n >= len(text) {
		t.Fatalf("emitted %d quads for %d chars, want 0 < n < %d", n, len(text), len(text))
	}
	for i := 0; i < n; i++ {
		q := glyphQuad(batch, i)
		if right := q[1][0]; right > b.X2+1e-5 {
			t.Errorf("glyph %d right edge %v past cell edge %v", i, right, b.X2)
		}
	}
}

// TestAppendCellTextCapsLength verifies strings beyond the storage
// bound contribute at most MaxTextLen glyphs.
func TestAppendCellTextCapsLength(t *testing.T) {
	// One giant cell so nothing truncates at the edge.
	b := CellBounds(0, 0, 64, 1)
	long := make([]byte, 40)
	for i := range long {
		long[i] = 'X'
	}
	batch := AppendCellText(nil, b, string(long))
	if n := len(batch) / floatsPerGlyph; n > MaxTextLen {
		t.Errorf("emitted %d quads, want at most %d", n, MaxTextLen)
	}
}

// TestCursorMatchesTextLayout pins the alignment invariant: for the
// same cell and text, the cursor bar at index i starts exactly at glyph
// i's left edge.
func TestCursorMatchesTextLayout(t *testing.T) {
	b := CellBounds(2, 1, 6, 3)
	text := "HELLO"
	batch := AppendCellText(nil, b, text)
	if got := len(batch) / floatsPerGlyph; got != len(text) {
		t.Fatalf("emitted %d quads, want %d", got, len(text))
	}

	white := RGB{1, 1, 1}
	for i := 0; i < len(text); i++ {
		quad := CursorQuad(b, len(text), i, white)
		glyphX := glyphQuad(batch, i)[0][0]
		if !almostEqual(quad[0], glyphX) {
			t.Errorf("cursor at %d starts at %v, glyph at %v", i, quad[0], glyphX)
		}
	}
}

// TestCursorQuadShape verifies the bar's width, height and color
// encoding.
func TestCursorQuadShape(t *testing.T) {
	b := CellBounds(0, 0, 3, 2)
	c := RGB{0.9, 0.8, 0.1}
	quad := CursorQuad(b, 3, 1, c)
	l := LayoutOrigin(b, 3)

	if gotW := quad[5] - quad[0]; !almostEqual(gotW, l.GlyphW*0.15) {
		t.Errorf("bar width = %v, want %v", gotW, l.GlyphW*0.15)
	}
	if gotH := quad[11] - quad[6]; !almostEqual(gotH, l.GlyphH) {
		t.Errorf("bar height = %v, want %v", gotH, l.GlyphH)
	}
	for v := 0; v < VertsPerCell; v++ {
		off := v*FloatsPerVertex + 2
		got := RGB{quad[off], quad[off+1], quad[off+2]}
		if got != c {
			t.Fatalf("vertex %d color %v, want %v", v, got, c)
		}
	}
}

// TestMaxBatchFloats verifies the lazy-allocation capacity formula.
func TestMaxBatchFloats(t *testing.T) {
	if got := MaxBatchFloats(3, 2); got != 3*2*MaxTextLen*VertsPerCell*TextFloatsPerVertex {
		t.Errorf("MaxBatchFloats(3,2) = %d", got)
	}
}
