package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gridsheet/gridsheet/config"
	"github.com/gridsheet/gridsheet/grid"
	"github.com/gridsheet/gridsheet/render"
	"github.com/gridsheet/gridsheet/window"
)

var headers = []string{"SYMBOL", "PRICE", "CHANGE", "VOLUME"}

var symbols = []string{"ACME", "GLOBEX", "INITECH", "UMBRELLA", "HOOLI", "STARK", "WAYNE"}

// editState tracks the cell being edited and the caret position.
type editState struct {
	row, col int
	pos      int
	active   bool
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	win, err := window.New(window.Config{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	})
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer win.Destroy()

	theme := render.ThemeByName(cfg.Theme)
	r, err := render.New(theme)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}
	defer r.Destroy()

	rows, cols := cfg.Grid.Rows, cfg.Grid.Cols
	if err := r.InitGrid(rows, cols); err != nil {
		log.Fatalf("grid: %v", err)
	}
	seedCells(r, rows, cols)

	var edit editState
	selection := grid.RGB{0.25, 0.35, 0.55}

	win.GLFW().SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		win.SetViewport(w, h)
		r.Render()
		win.SwapBuffers()
	})

	// Trigger 1: pointer clicks select a cell and place the cursor.
	win.GLFW().SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft || action != glfw.Press {
			return
		}
		x, y := w.GetCursorPos()
		cx, cy := win.ClipCoords(x, y)
		packed := r.HitTest(cx, cy)
		if packed == grid.NoCell {
			clearSelection(r, &edit, theme)
			r.SetCursor(-1, -1, 0, false)
			r.SyncGrid()
			return
		}
		row, col := grid.UnpackCell(packed)
		clearSelection(r, &edit, theme)
		edit = editState{row: row, col: col, pos: len(r.CellText(row, col)), active: true}
		if err := r.SetCellColor(row, col, selection); err != nil {
			log.Printf("select %d,%d: %v", row, col, err)
		}
		r.SyncGrid()
		r.SetCursor(row, col, edit.pos, true)
		r.Render()
		win.SwapBuffers()
	})

	win.GLFW().SetCharCallback(func(_ *glfw.Window, char rune) {
		if !edit.active || char > 0x7F {
			return
		}
		text := r.CellText(edit.row, edit.col)
		if len(text) >= grid.MaxTextLen {
			return
		}
		text = text[:edit.pos] + string(byte(char)) + text[edit.pos:]
		if err := r.SetCellText(edit.row, edit.col, text); err != nil {
			return
		}
		edit.pos++
		r.SetCursor(edit.row, edit.col, edit.pos, true)
		r.Render()
		win.SwapBuffers()
	})

	win.GLFW().SetKeyCallback(func(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		if action != glfw.Press && action != glfw.Repeat {
			return
		}
		switch {
		case key == glfw.KeyQ && mods&glfw.ModControl != 0:
			win.SetShouldClose(true)
		case key == glfw.KeyEscape:
			clearSelection(r, &edit, theme)
			r.SetCursor(-1, -1, 0, false)
			r.SyncGrid()
		case key == glfw.KeyBackspace && edit.active:
			text := r.CellText(edit.row, edit.col)
			if edit.pos == 0 || len(text) == 0 {
				return
			}
			text = text[:edit.pos-1] + text[edit.pos:]
			if err := r.SetCellText(edit.row, edit.col, text); err != nil {
				return
			}
			edit.pos--
			r.SetCursor(edit.row, edit.col, edit.pos, true)
		case key == glfw.KeyLeft && edit.active && edit.pos > 0:
			edit.pos--
			r.SetCursor(edit.row, edit.col, edit.pos, true)
		case key == glfw.KeyRight && edit.active:
			if edit.pos < len(r.CellText(edit.row, edit.col)) {
				edit.pos++
				r.SetCursor(edit.row, edit.col, edit.pos, true)
			}
		default:
			return
		}
		r.Render()
		win.SwapBuffers()
	})

	blinkInterval := time.Duration(cfg.BlinkIntervalMs) * time.Millisecond
	tickInterval := time.Duration(cfg.TickIntervalMs) * time.Millisecond
	lastBlink := time.Now()
	lastTick := time.Now()
	blinkOn := true

	for !win.ShouldClose() {
		window.PollEvents()
		now := time.Now()

		// Trigger 2: the cursor blink timer.
		if edit.active && now.Sub(lastBlink) >= blinkInterval {
			blinkOn = !blinkOn
			lastBlink = now
			r.SetCursor(edit.row, edit.col, edit.pos, blinkOn)
		}

		// Trigger 3: the periodic value feed.
		if now.Sub(lastTick) >= tickInterval {
			lastTick = now
			tickValues(r, rows, cols, edit)
			r.SyncGrid()
		}

		r.Render()
		win.SwapBuffers()

		time.Sleep(8 * time.Millisecond)
	}
}

// seedCells fills the header row and a column of symbols with starting
// values.
func seedCells(r *render.Renderer, rows, cols int) {
	for col := 0; col < cols && col < len(headers); col++ {
		if err := r.SetCellText(0, col, headers[col]); err != nil {
			log.Printf("seed header %d: %v", col, err)
		}
	}
	for row := 1; row < rows; row++ {
		if err := r.SetCellText(row, 0, symbols[(row-1)%len(symbols)]); err != nil {
			log.Printf("seed row %d: %v", row, err)
		}
		if cols > 1 {
			r.SetCellText(row, 1, fmt.Sprintf("%.2f", 20+rand.Float64()*200))
		}
		if cols > 2 {
			r.SetCellText(row, 2, "+0.00")
		}
		if cols > 3 {
			r.SetCellText(row, 3, fmt.Sprintf("%d", rand.Intn(900000)+100000))
		}
	}
}

// tickValues perturbs the price column and flashes changed cells. Cells
// being edited are left alone.
func tickValues(r *render.Renderer, rows, cols int, edit editState) {
	if cols < 2 {
		return
	}
	for row := 1; row < rows; row++ {
		if edit.active && edit.row == row && edit.col == 1 {
			continue
		}
		var price float64
		if _, err := fmt.Sscanf(r.CellText(row, 1), "%f", &price); err != nil {
			continue
		}
		delta := (rand.Float64() - 0.5) * 2
		price += delta
		if price < 1 {
			price = 1
		}
		r.SetCellText(row, 1, fmt.Sprintf("%.2f", price))
		if cols > 2 {
			r.SetCellText(row, 2, fmt.Sprintf("%+.2f", delta))
		}

		flash := grid.RGB{0.5, 0.15, 0.15}
		if delta >= 0 {
			flash = grid.RGB{0.12, 0.4, 0.2}
		}
		if err := r.SetCellColor(row, 1, flash); err != nil {
			log.Printf("flash %d: %v", row, err)
		}
	}
}

// clearSelection restores the palette color of the previously selected
// cell.
func clearSelection(r *render.Renderer, edit *editState, theme render.Theme) {
	if !edit.active {
		return
	}
	if err := r.SetCellColor(edit.row, edit.col, theme.Palette.RowColor(edit.row)); err == nil {
		edit.active = false
	}
}
