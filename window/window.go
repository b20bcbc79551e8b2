// Package window wraps GLFW window and OpenGL context creation. The
// renderer assumes a current context; everything context-related lives
// here.
package window

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gridsheet/gridsheet/assets"
)

func init() {
	// GLFW event handling must run on the main thread
	runtime.LockOSThread()
}

// Config holds window configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// DefaultConfig returns the default window configuration
func DefaultConfig() Config {
	return Config{
		Width:  960,
		Height: 640,
		Title:  "gridsheet",
	}
}

// Window wraps a GLFW window with OpenGL context
type Window struct {
	glfw   *glfw.Window
	width  int
	height int
}

// New creates a GLFW window, makes its OpenGL context current and
// initializes the GL bindings.
func New(config Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)

	glfw.WindowHintString(glfw.X11ClassName, "gridsheet")
	glfw.WindowHintString(glfw.X11InstanceName, "gridsheet")

	win, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// VSync
	glfw.SwapInterval(1)

	w := &Window{
		glfw:   win,
		width:  config.Width,
		height: config.Height,
	}

	if icons := assets.RenderIconSizes(); len(icons) > 0 {
		win.SetIcon(icons)
	}

	fbW, fbH := win.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbW), int32(fbH))

	return w, nil
}

// GLFW returns the underlying GLFW window
func (w *Window) GLFW() *glfw.Window {
	return w.glfw
}

// Size returns the current window size in screen coordinates.
func (w *Window) Size() (int, int) {
	return w.glfw.GetSize()
}

// SetViewport sets the OpenGL viewport
func (w *Window) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// ClipCoords converts a pointer position in window coordinates to clip
// space, with +Y up. This is the coordinate system hit testing expects.
func (w *Window) ClipCoords(x, y float64) (float32, float32) {
	width, height := w.glfw.GetSize()
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	cx := float32(x)/float32(width)*2 - 1
	cy := 1 - float32(y)/float32(height)*2
	return cx, cy
}

// ShouldClose returns true if the window should close
func (w *Window) ShouldClose() bool {
	return w.glfw.ShouldClose()
}

// SetShouldClose sets the window close flag
func (w *Window) SetShouldClose(close bool) {
	w.glfw.SetShouldClose(close)
}

// SwapBuffers swaps the front and back buffers
func (w *Window) SwapBuffers() {
	w.glfw.SwapBuffers()
}

// Destroy cleans up window resources
func (w *Window) Destroy() {
	w.glfw.Destroy()
	glfw.Terminate()
}

// PollEvents processes pending events
func PollEvents() {
	glfw.PollEvents()
}
