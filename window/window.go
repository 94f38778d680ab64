// Package window runs the bootstrap sequence: create a window and context,
// assemble the pipeline, and draw until the window is asked to close.
package window

// ContextHints are applied before the window is created.
type ContextHints struct {
	Major             int
	Minor             int
	CoreProfile       bool
	ForwardCompatible bool
}

// Windowing is the windowing and context subsystem. Every method must be
// called from the thread that called Init.
type Windowing interface {
	Init() error
	Hint(hints ContextHints)
	CreateWindow(width, height int, title string) (Surface, error)
	// PollEvents processes pending events without blocking.
	PollEvents()
	Terminate()
}

// Surface is a window with an attached rendering context.
type Surface interface {
	MakeContextCurrent()
	ShouldClose() bool
	SwapBuffers()
	Destroy()
}
