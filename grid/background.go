package grid

import "errors"

// ErrOutOfRange reports a cell address outside the configured grid, or a
// write against a grid that has not been built yet.
var ErrOutOfRange = errors.New("grid: cell address out of range")

// Background vertex format: two position floats followed by three color
// floats, six vertices per cell.
const (
	FloatsPerVertex = 5
	VertsPerCell    = 6
	floatsPerCell   = FloatsPerVertex * VertsPerCell
)

// RGB is a color triple with components in [0,1].
type RGB [3]float32

// Palette holds the default background colors: row 0 is the header, body
// rows alternate by parity.
type Palette struct {
	Header   RGB
	BodyEven RGB
	BodyOdd  RGB
}

// RowColor returns the default palette color for a row.
func (p Palette) RowColor(row int) RGB {
	switch {
	case row == 0:
		return p.Header
	case row%2 == 0:
		return p.BodyEven
	default:
		return p.BodyOdd
	}
}

// BuildBackground generates the full background vertex buffer for a
// rows x cols grid: one quad per cell in row-major order, every vertex
// carrying the cell's palette color. The layout is
// cellIndex*30 + vertexIndex*5 + field.
func BuildBackground(rows, cols int, p Palette) []float32 {
	verts := make([]float32, rows*cols*floatsPerCell)
	i := 0
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b := CellBounds(row, col, rows, cols)
			c := p.RowColor(row)
			corners := [VertsPerCell][2]float32{
				{b.X1, b.Y1}, {b.X2, b.Y1}, {b.X2, b.Y2},
				{b.X1, b.Y1}, {b.X2, b.Y2}, {b.X1, b.Y2},
			}
			for _, pos := range corners {
				verts[i] = pos[0]
				verts[i+1] = pos[1]
				verts[i+2] = c[0]
				verts[i+3] = c[1]
				verts[i+4] = c[2]
				i += FloatsPerVertex
			}
		}
	}
	return verts
}

// PatchCellColor rewrites the color fields of the six vertices belonging
// to cell (row, col) in a buffer built for totalCols columns. Positions
// are left untouched. The write lands only in the CPU mirror; callers
// sync the GPU buffer separately so many patches coalesce into one
// upload.
func PatchCellColor(verts []float32, row, col, totalCols int, c RGB) error {
	if row < 0 || col < 0 || totalCols <= 0 || col >= totalCols {
		return ErrOutOfRange
	}
	base := (row*totalCols + col) * floatsPerCell
	if base+floatsPerCell > len(verts) {
		return ErrOutOfRange
	}
	for v := 0; v < VertsPerCell; v++ {
		off := base + v*FloatsPerVertex + 2
		verts[off] = c[0]
		verts[off+1] = c[1]
		verts[off+2] = c[2]
	}
	return nil
}
