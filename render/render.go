// Package render owns every GPU resource of the grid: shader programs,
// vertex buffers, the font atlas texture. It composes a frame in three
// passes (cell backgrounds, batched glyph quads, cursor bar) and maps
// pointer positions back to cells.
//
// Render is called from uncoordinated triggers (pointer clicks, the
// blink timer, the data feed), so every entry resets the shared GL state
// before drawing rather than trusting whatever the previous caller left
// behind.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/gridsheet/gridsheet/font"
	"github.com/gridsheet/gridsheet/grid"
)

// Renderer holds all retained state: the CPU vertex mirror, the text
// store, the cursor overlay and the GL handles. One Renderer per GL
// context; all methods must run on the thread owning that context.
type Renderer struct {
	theme Theme

	rows, cols int
	bgVerts    []float32 // CPU mirror of the background buffer
	textBatch  []float32 // reused per-frame glyph batch

	store *grid.Store

	cursorRow, cursorCol, cursorPos int
	cursorVisible                   bool

	gridProgram uint32
	textProgram uint32

	gridVAO, gridVBO     uint32
	textVAO, textVBO     uint32
	cursorVAO, cursorVBO uint32
	textVBOCap           int

	fontTexture  uint32
	textColorLoc int32
	glyphsLoc    int32
}

// New compiles the shader programs, uploads the font atlas and creates
// the vertex buffers. It requires a current GL context.
func New(theme Theme) (*Renderer, error) {
	r := &Renderer{
		theme:     theme,
		store:     grid.NewStore(),
		cursorRow: -1,
		cursorCol: -1,
	}

	var err error
	r.gridProgram, err = createProgram(gridVertexShader, gridFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("grid shader: %w", err)
	}
	r.textProgram, err = createProgram(textVertexShader, textFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("text shader: %w", err)
	}
	r.textColorLoc = gl.GetUniformLocation(r.textProgram, gl.Str("textColor\x00"))
	r.glyphsLoc = gl.GetUniformLocation(r.textProgram, gl.Str("glyphs\x00"))

	gl.GenVertexArrays(1, &r.gridVAO)
	gl.GenBuffers(1, &r.gridVBO)
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.GenVertexArrays(1, &r.cursorVAO)
	gl.GenBuffers(1, &r.cursorVBO)

	gl.BindVertexArray(r.cursorVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cursorVBO)
	gl.BufferData(gl.ARRAY_BUFFER, grid.VertsPerCell*grid.FloatsPerVertex*4, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	r.uploadFontAtlas()

	return r, nil
}

// uploadFontAtlas bakes the bitmap font and uploads it as a
// single-channel texture. Nearest filtering and edge clamping keep the
// 5x7 glyphs crisp at any cell size.
func (r *Renderer) uploadFontAtlas() {
	pix := font.Atlas()

	gl.GenTextures(1, &r.fontTexture)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, font.AtlasWidth, font.AtlasHeight, 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// InitGrid (re)builds the background geometry for a rows x cols grid and
// uploads it wholesale. Any color patches applied to the previous grid
// are discarded; stored cell text is kept. The per-frame text batch is
// invalidated so it reallocates at the new capacity.
func (r *Renderer) InitGrid(rows, cols int) error {
	if rows <= 0 || cols <= 0 || rows > grid.MaxRows || cols > grid.MaxCols {
		return fmt.Errorf("render: grid size %dx%d outside 1..%d x 1..%d",
			rows, cols, grid.MaxRows, grid.MaxCols)
	}
	r.rows, r.cols = rows, cols
	r.bgVerts = grid.BuildBackground(rows, cols, r.theme.Palette)
	r.textBatch = nil
	r.textVBOCap = 0

	gl.BindVertexArray(r.gridVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.bgVerts)*4, gl.Ptr(r.bgVerts), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return nil
}

// Size returns the current grid dimensions (0,0 before InitGrid).
func (r *Renderer) Size() (rows, cols int) {
	return r.rows, r.cols
}

// SetCellColor patches one cell's background color in the CPU mirror.
// Nothing reaches the GPU until SyncGrid, so a burst of patches costs
// one upload. Returns grid.ErrOutOfRange for bad addresses or an
// unbuilt grid.
func (r *Renderer) SetCellColor(row, col int, c grid.RGB) error {
	if r.bgVerts == nil {
		return grid.ErrOutOfRange
	}
	return grid.PatchCellColor(r.bgVerts, row, col, r.cols, c)
}

// SyncGrid uploads the CPU color/geometry mirror to the GPU buffer.
// No-op when no grid has been built.
func (r *Renderer) SyncGrid() {
	if r.bgVerts == nil {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(r.bgVerts)*4, gl.Ptr(r.bgVerts))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// SetCellText stores a cell's text (truncated to grid.MaxTextLen).
func (r *Renderer) SetCellText(row, col int, text string) error {
	return r.store.SetText(row, col, text)
}

// CellText returns a cell's stored text.
func (r *Renderer) CellText(row, col int) string {
	return r.store.Text(row, col)
}

// SetCursor updates the cursor overlay: target cell, character insertion
// index and visibility. Takes effect on the next Render.
func (r *Renderer) SetCursor(row, col, pos int, visible bool) {
	r.cursorRow, r.cursorCol, r.cursorPos = row, col, pos
	r.cursorVisible = visible
}

// HitTest maps a clip-space point to the packed index (row*256+col) of
// the cell underneath, or grid.NoCell.
func (r *Renderer) HitTest(x, y float32) int {
	return grid.HitTest(x, y, r.rows, r.cols)
}

// Render composes one frame: reset shared GL state, clear, then draw
// backgrounds, text and cursor in that order. Safe to call at any time
// from any trigger; it depends only on retained state.
func (r *Renderer) Render() {
	// Defensive reset. Click handlers, the blink timer and the data
	// feed all schedule renders independently; a stale binding from a
	// previous entry must not leak into this one.
	gl.DisableVertexAttribArray(0)
	gl.DisableVertexAttribArray(1)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.UseProgram(0)
	gl.Disable(gl.BLEND)

	gl.ClearColor(r.theme.Clear[0], r.theme.Clear[1], r.theme.Clear[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.drawBackground()
	r.drawText()
	r.drawCursor()
}

// bindColorVerts points attributes 0 and 1 at the bound buffer's
// position+color layout. Pointers are re-set on every pass so a draw
// never depends on attribute state surviving from an earlier call.
func bindColorVerts() {
	stride := int32(grid.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 2*4)
}

func (r *Renderer) drawBackground() {
	if r.bgVerts == nil {
		return
	}
	gl.UseProgram(r.gridProgram)
	gl.BindVertexArray(r.gridVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.gridVBO)
	bindColorVerts()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.bgVerts)/grid.FloatsPerVertex))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// drawText rebuilds the glyph batch from the store and draws it in a
// single call: one texture bind, one upload, one draw regardless of how
// many cells hold text.
func (r *Renderer) drawText() {
	if r.rows <= 0 || r.cols <= 0 {
		return
	}
	if r.textBatch == nil {
		r.textBatch = make([]float32, 0, grid.MaxBatchFloats(r.rows, r.cols))
	}
	batch := r.textBatch[:0]
	for row := 0; row < r.rows; row++ {
		for col := 0; col < r.cols; col++ {
			text := r.store.Text(row, col)
			if text == "" {
				continue
			}
			b := grid.CellBounds(row, col, r.rows, r.cols)
			batch = grid.AppendCellText(batch, b, text)
		}
	}
	r.textBatch = batch
	if len(batch) == 0 {
		return
	}

	// Blending is enabled for this pass only; the atlas channel becomes
	// the glyph alpha over the already-drawn backgrounds.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.UseProgram(r.textProgram)
	gl.Uniform3f(r.textColorLoc, r.theme.Text[0], r.theme.Text[1], r.theme.Text[2])
	gl.Uniform1i(r.glyphsLoc, 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTexture)

	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	if len(batch) > r.textVBOCap {
		r.textVBOCap = cap(batch)
		gl.BufferData(gl.ARRAY_BUFFER, r.textVBOCap*4, nil, gl.DYNAMIC_DRAW)
	}
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(batch)*4, gl.Ptr(batch))

	stride := int32(grid.TextFloatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 4, gl.FLOAT, false, stride, 0)

	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(batch)/grid.TextFloatsPerVertex))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
}

// drawCursor derives a thin bar from the same layout math as the text
// pass and draws it with the background shader. The quad is rebuilt and
// re-uploaded on every frame it is visible.
func (r *Renderer) drawCursor() {
	if !r.cursorVisible || r.cursorRow < 0 || r.cursorCol < 0 {
		return
	}
	if r.cursorRow >= r.rows || r.cursorCol >= r.cols {
		return
	}

	b := grid.CellBounds(r.cursorRow, r.cursorCol, r.rows, r.cols)
	text := r.store.Text(r.cursorRow, r.cursorCol)
	quad := grid.CursorQuad(b, len(text), r.cursorPos, r.theme.Cursor)

	gl.UseProgram(r.gridProgram)
	gl.BindVertexArray(r.cursorVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.cursorVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(quad)*4, gl.Ptr(quad[:]))
	bindColorVerts()
	gl.DrawArrays(gl.TRIANGLES, 0, grid.VertsPerCell)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

// Destroy releases all GL resources.
func (r *Renderer) Destroy() {
	gl.DeleteVertexArrays(1, &r.gridVAO)
	gl.DeleteBuffers(1, &r.gridVBO)
	gl.DeleteVertexArrays(1, &r.textVAO)
	gl.DeleteBuffers(1, &r.textVBO)
	gl.DeleteVertexArrays(1, &r.cursorVAO)
	gl.DeleteBuffers(1, &r.cursorVBO)
	gl.DeleteProgram(r.gridProgram)
	gl.DeleteProgram(r.textProgram)
	gl.DeleteTextures(1, &r.fontTexture)
}
