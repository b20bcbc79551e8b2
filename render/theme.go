package render

import (
	"strings"

	"github.com/gridsheet/gridsheet/grid"
)

// Theme holds the grid's color scheme: the header/body background
// palette, the glyph foreground, the cursor bar and the clear color.
type Theme struct {
	Palette grid.Palette
	Text    grid.RGB
	Cursor  grid.RGB
	Clear   grid.RGB
}

// DefaultTheme returns the default color theme.
func DefaultTheme() Theme {
	return ThemeByName("ledger-blue")
}

// ThemeByName returns a theme for a known theme name.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "slate":
		return Theme{
			Palette: grid.Palette{
				Header:   grid.RGB{0.18, 0.20, 0.23},
				BodyEven: grid.RGB{0.11, 0.12, 0.13},
				BodyOdd:  grid.RGB{0.14, 0.15, 0.17},
			},
			Text:   grid.RGB{0.92, 0.93, 0.94},
			Cursor: grid.RGB{1.0, 0.85, 0.4},
			Clear:  grid.RGB{0.07, 0.07, 0.08},
		}
	case "paper":
		return Theme{
			Palette: grid.Palette{
				Header:   grid.RGB{0.75, 0.78, 0.82},
				BodyEven: grid.RGB{0.93, 0.93, 0.91},
				BodyOdd:  grid.RGB{0.88, 0.88, 0.86},
			},
			Text:   grid.RGB{0.10, 0.10, 0.12},
			Cursor: grid.RGB{0.15, 0.35, 0.80},
			Clear:  grid.RGB{0.96, 0.96, 0.95},
		}
	case "ledger-blue":
		fallthrough
	default:
		return Theme{
			Palette: grid.Palette{
				Header:   grid.RGB{0.0, 0.5, 0.7},
				BodyEven: grid.RGB{0.15, 0.15, 0.25},
				BodyOdd:  grid.RGB{0.2, 0.2, 0.32},
			},
			Text:   grid.RGB{1, 1, 1},
			Cursor: grid.RGB{1, 1, 1},
			Clear:  grid.RGB{0.08, 0.08, 0.14},
		}
	}
}
