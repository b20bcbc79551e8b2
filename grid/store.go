package grid

// Store holds per-cell text, addressable by (row, col) up to the fixed
// grid maxima. Rows are allocated on first write, so an empty store
// costs almost nothing regardless of the maxima.
//
// The store is deliberately independent of the grid's current
// dimensions: rebuilding the background geometry at a new size does not
// clear text, matching the rule that geometry owns colors and the store
// owns content.
type Store struct {
	rows [][]string
}

// NewStore returns an empty text store.
func NewStore() *Store {
	return &Store{rows: make([][]string, MaxRows)}
}

// SetText stores text for a cell, truncating to MaxTextLen bytes. It
// returns ErrOutOfRange when the address exceeds the fixed maxima.
func (s *Store) SetText(row, col int, text string) error {
	if row < 0 || row >= MaxRows || col < 0 || col >= MaxCols {
		return ErrOutOfRange
	}
	if len(text) > MaxTextLen {
		text = text[:MaxTextLen]
	}
	if s.rows[row] == nil {
		s.rows[row] = make([]string, MaxCols)
	}
	s.rows[row][col] = text
	return nil
}

// Text returns a cell's text, or the empty string for unset or
// out-of-range addresses.
func (s *Store) Text(row, col int) string {
	if row < 0 || row >= MaxRows || col < 0 || col >= MaxCols {
		return ""
	}
	if s.rows[row] == nil {
		return ""
	}
	return s.rows[row][col]
}

// Clear removes all stored text.
func (s *Store) Clear() {
	s.rows = make([][]string, MaxRows)
}
