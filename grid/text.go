package grid

import "github.com/gridsheet/gridsheet/font"

// Text batch vertex format: two position floats and two UV floats.
const TextFloatsPerVertex = 4

// MaxBatchFloats returns the capacity needed for a frame's worth of
// glyph quads at the given grid size, so the batch slice can be
// allocated once and reused.
func MaxBatchFloats(rows, cols int) int {
	return rows * cols * MaxTextLen * VertsPerCell * TextFloatsPerVertex
}

// AppendCellText lays out a cell's text and appends one textured quad
// per glyph to dst, returning the extended slice. Glyphs are centered in
// the cell via LayoutOrigin and emitted left to right. Characters the
// font does not cover advance the pen without emitting a quad. Emission
// stops once the next glyph would cross the cell's right edge; the
// remaining characters are dropped.
func AppendCellText(dst []float32, b Bounds, text string) []float32 {
	if len(text) == 0 {
		return dst
	}
	if len(text) > MaxTextLen {
		text = text[:MaxTextLen]
	}

	l := LayoutOrigin(b, len(text))
	advance := l.GlyphW * AdvanceRatio
	cx, cy := l.OriginX, l.OriginY

	for i := 0; i < len(text); i++ {
		ci := font.Index(text[i])
		if ci < 0 {
			cx += advance
			continue
		}
		u0, v0, u1, v1 := font.UV(ci)
		x2 := cx + l.GlyphW
		y2 := cy + l.GlyphH
		// Atlas row 0 is the glyph's top, so the bottom edge samples v1.
		dst = append(dst,
			cx, cy, u0, v1,
			x2, cy, u1, v1,
			x2, y2, u1, v0,
			cx, cy, u0, v1,
			x2, y2, u1, v0,
			cx, y2, u0, v0,
		)
		cx += advance
		if cx+l.GlyphW > b.X2 {
			break
		}
	}
	return dst
}

// CursorQuad builds the six vertices of a thin vertical bar placed at
// character position pos within a cell holding textLen characters. It
// uses the exact layout math the text batcher uses, so the bar lands on
// the glyph boundary it addresses. The vertices carry the background
// vertex format (position + color) and are drawn with the grid shader.
func CursorQuad(b Bounds, textLen, pos int, c RGB) [floatsPerCell]float32 {
	l := LayoutOrigin(b, textLen)
	cx := l.OriginX + float32(pos)*l.GlyphW*AdvanceRatio
	barW := l.GlyphW * cursorBarFrac
	y2 := l.OriginY + l.GlyphH

	var out [floatsPerCell]float32
	corners := [VertsPerCell][2]float32{
		{cx, l.OriginY}, {cx + barW, l.OriginY}, {cx + barW, y2},
		{cx, l.OriginY}, {cx + barW, y2}, {cx, y2},
	}
	i := 0
	for _, pt := range corners {
		out[i] = pt[0]
		out[i+1] = pt[1]
		out[i+2] = c[0]
		out[i+3] = c[1]
		out[i+4] = c[2]
		i += FloatsPerVertex
	}
	return out
}
