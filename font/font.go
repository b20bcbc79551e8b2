// Package font provides the fixed 5x7 bitmap font used for cell text.
//
// The glyph set is deliberately small: digits, '.', '-', '+', space and
// A-Z (lower case aliases to upper case). Each glyph is seven rows of
// five pixels, one byte per row with the low five bits used. All glyphs
// are baked into a single grayscale atlas that the renderer uploads as a
// one-channel texture and samples with nearest filtering.
package font

// Glyph metrics and atlas layout. Each glyph occupies a CellWidth x
// CellHeight slot in the atlas, leaving one pixel of padding on each
// axis so neighbouring glyphs never bleed under clamped sampling.
const (
	GlyphWidth  = 5
	GlyphHeight = 7
	GlyphCount  = 40

	AtlasCols   = 8
	CellWidth   = GlyphWidth + 1
	CellHeight  = GlyphHeight + 1
	AtlasWidth  = AtlasCols * CellWidth
	AtlasHeight = ((GlyphCount + AtlasCols - 1) / AtlasCols) * CellHeight
)

// glyphs holds the row bitmaps, one byte per row, most significant of
// the low five bits is the leftmost pixel.
var glyphs = [GlyphCount][GlyphHeight]byte{
	{0x0E, 0x11, 0x13, 0x15, 0x19, 0x11, 0x0E}, //  0: '0'
	{0x04, 0x0C, 0x04, 0x04, 0x04, 0x04, 0x0E}, //  1: '1'
	{0x0E, 0x11, 0x01, 0x02, 0x04, 0x08, 0x1F}, //  2: '2'
	{0x0E, 0x11, 0x01, 0x06, 0x01, 0x11, 0x0E}, //  3: '3'
	{0x02, 0x06, 0x0A, 0x12, 0x1F, 0x02, 0x02}, //  4: '4'
	{0x1F, 0x10, 0x1E, 0x01, 0x01, 0x11, 0x0E}, //  5: '5'
	{0x06, 0x08, 0x10, 0x1E, 0x11, 0x11, 0x0E}, //  6: '6'
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x08, 0x08}, //  7: '7'
	{0x0E, 0x11, 0x11, 0x0E, 0x11, 0x11, 0x0E}, //  8: '8'
	{0x0E, 0x11, 0x11, 0x0F, 0x01, 0x02, 0x0C}, //  9: '9'
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x0C}, // 10: '.'
	{0x00, 0x00, 0x00, 0x1F, 0x00, 0x00, 0x00}, // 11: '-'
	{0x00, 0x04, 0x04, 0x1F, 0x04, 0x04, 0x00}, // 12: '+'
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // 13: ' '
	{0x0E, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11}, // 14: 'A'
	{0x1E, 0x11, 0x11, 0x1E, 0x11, 0x11, 0x1E}, // 15: 'B'
	{0x0E, 0x11, 0x10, 0x10, 0x10, 0x11, 0x0E}, // 16: 'C'
	{0x1E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x1E}, // 17: 'D'
	{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x1F}, // 18: 'E'
	{0x1F, 0x10, 0x10, 0x1E, 0x10, 0x10, 0x10}, // 19: 'F'
	{0x0E, 0x11, 0x10, 0x17, 0x11, 0x11, 0x0F}, // 20: 'G'
	{0x11, 0x11, 0x11, 0x1F, 0x11, 0x11, 0x11}, // 21: 'H'
	{0x0E, 0x04, 0x04, 0x04, 0x04, 0x04, 0x0E}, // 22: 'I'
	{0x07, 0x02, 0x02, 0x02, 0x02, 0x12, 0x0C}, // 23: 'J'
	{0x11, 0x12, 0x14, 0x18, 0x14, 0x12, 0x11}, // 24: 'K'
	{0x10, 0x10, 0x10, 0x10, 0x10, 0x10, 0x1F}, // 25: 'L'
	{0x11, 0x1B, 0x15, 0x15, 0x11, 0x11, 0x11}, // 26: 'M'
	{0x11, 0x19, 0x15, 0x13, 0x11, 0x11, 0x11}, // 27: 'N'
	{0x0E, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E}, // 28: 'O'
	{0x1E, 0x11, 0x11, 0x1E, 0x10, 0x10, 0x10}, // 29: 'P'
	{0x0E, 0x11, 0x11, 0x11, 0x15, 0x12, 0x0D}, // 30: 'Q'
	{0x1E, 0x11, 0x11, 0x1E, 0x14, 0x12, 0x11}, // 31: 'R'
	{0x0E, 0x11, 0x10, 0x0E, 0x01, 0x11, 0x0E}, // 32: 'S'
	{0x1F, 0x04, 0x04, 0x04, 0x04, 0x04, 0x04}, // 33: 'T'
	{0x11, 0x11, 0x11, 0x11, 0x11, 0x11, 0x0E}, // 34: 'U'
	{0x11, 0x11, 0x11, 0x11, 0x0A, 0x0A, 0x04}, // 35: 'V'
	{0x11, 0x11, 0x11, 0x15, 0x15, 0x1B, 0x11}, // 36: 'W'
	{0x11, 0x11, 0x0A, 0x04, 0x0A, 0x11, 0x11}, // 37: 'X'
	{0x11, 0x11, 0x0A, 0x04, 0x04, 0x04, 0x04}, // 38: 'Y'
	{0x1F, 0x01, 0x02, 0x04, 0x08, 0x10, 0x1F}, // 39: 'Z'
}

// Index maps a character to its glyph index, or -1 if the character is
// not part of the font. Lower case letters share the upper case glyphs.
func Index(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c == '.':
		return 10
	case c == '-':
		return 11
	case c == '+':
		return 12
	case c == ' ':
		return 13
	case c >= 'A' && c <= 'Z':
		return 14 + int(c-'A')
	case c >= 'a' && c <= 'z':
		return 14 + int(c-'a')
	}
	return -1
}

var atlasPix []byte

// Atlas returns the baked atlas pixels, one byte per texel, 255 where a
// font pixel is set and 0 elsewhere. The bake runs once; subsequent
// calls return the same slice. Callers must not mutate it.
func Atlas() []byte {
	if atlasPix != nil {
		return atlasPix
	}
	pix := make([]byte, AtlasWidth*AtlasHeight)
	for g := 0; g < GlyphCount; g++ {
		ox := (g % AtlasCols) * CellWidth
		oy := (g / AtlasCols) * CellHeight
		for y := 0; y < GlyphHeight; y++ {
			bits := glyphs[g][y]
			for x := 0; x < GlyphWidth; x++ {
				if bits&(1<<(GlyphWidth-1-x)) != 0 {
					pix[(oy+y)*AtlasWidth+(ox+x)] = 255
				}
			}
		}
	}
	atlasPix = pix
	return atlasPix
}

// UV returns the texture coordinate rectangle for a glyph index. The
// rectangle covers only the 5x7 glyph pixels, not the padded slot.
func UV(index int) (u0, v0, u1, v1 float32) {
	ox := float32((index % AtlasCols) * CellWidth)
	oy := float32((index / AtlasCols) * CellHeight)
	u0 = ox / AtlasWidth
	u1 = (ox + GlyphWidth) / AtlasWidth
	v0 = oy / AtlasHeight
	v1 = (oy + GlyphHeight) / AtlasHeight
	return
}
