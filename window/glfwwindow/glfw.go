// Package glfwwindow implements window.Windowing with GLFW.
package glfwwindow

import (
	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stewi1014/gltriangle/window"
)

var _ window.Windowing = GLFW{}

// GLFW must only be used from the main thread.
type GLFW struct{}

func New() GLFW {
	return GLFW{}
}

func (GLFW) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "glfw.Init")
	}
	return nil
}

func (GLFW) Hint(hints window.ContextHints) {
	glfw.WindowHint(glfw.ContextVersionMajor, hints.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, hints.Minor)
	if hints.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	if hints.ForwardCompatible {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
}

func (GLFW) CreateWindow(width, height int, title string) (window.Surface, error) {
	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "glfw.CreateWindow")
	}
	return &Window{Window: w}, nil
}

func (GLFW) PollEvents() {
	glfw.PollEvents()
}

func (GLFW) Terminate() {
	glfw.Terminate()
}

// Window is a GLFW window and its OpenGL context.
type Window struct {
	*glfw.Window
}

var _ window.Surface = (*Window)(nil)
