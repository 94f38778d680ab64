package window

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/stewi1014/gltriangle/config"
	"github.com/stewi1014/gltriangle/pipeline"
	"github.com/stewi1014/gltriangle/programs"
)

// Process exit statuses returned by Run.
const (
	ExitOK      = 0
	ExitFailure = -1
)

var ErrCreateWindow = errors.New("failed to create window")

type Bootstrap struct {
	Windowing Windowing
	GL        pipeline.GL
	Config    config.Config
	Program   programs.Program
	Vertices  []float32
	Logger    *slog.Logger

	// FrameStats, when set, is told about every presented frame.
	FrameStats *FrameStats
}

func (b *Bootstrap) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}

// Run initialises the windowing subsystem, creates the window and pipeline
// and draws one frame per iteration until the window's close flag is set.
// It returns ExitOK after a normal close. Any failure on the way is logged,
// the subsystem terminated, and ExitFailure returned along with the error.
func (b *Bootstrap) Run() (int, error) {
	log := b.logger()

	if err := b.Windowing.Init(); err != nil {
		err = errors.Wrap(err, "initialising windowing")
		log.Error("windowing init failed", "error", err)
		return ExitFailure, err
	}
	defer b.Windowing.Terminate()

	c := b.Config
	b.Windowing.Hint(ContextHints{
		Major:             c.Context.Major,
		Minor:             c.Context.Minor,
		CoreProfile:       c.Context.CoreProfile,
		ForwardCompatible: c.Context.ForwardCompatible,
	})

	surface, err := b.Windowing.CreateWindow(c.Window.Width, c.Window.Height, c.Window.Title)
	if err != nil || surface == nil {
		err = errors.Mark(errors.Wrap(orNoHandle(err), "creating window"), ErrCreateWindow)
		log.Error("failed to create window", "error", err)
		return ExitFailure, err
	}
	defer surface.Destroy()

	surface.MakeContextCurrent()

	if err := b.GL.Init(); err != nil {
		err = errors.Wrap(err, "gl.Init")
		log.Error("failed to load OpenGL", "error", err)
		return ExitFailure, err
	}
	log.Info("context ready", "version", b.GL.Version(), "width", c.Window.Width, "height", c.Window.Height)

	b.GL.Viewport(0, 0, int32(c.Window.Width), int32(c.Window.Height))

	p, err := pipeline.Assemble(b.GL, b.Program, b.Vertices, c.ClearColor)
	if err != nil {
		log.Error("failed to assemble pipeline", "error", err)
		return ExitFailure, err
	}
	defer p.Release()

	frames := b.loop(surface, p)
	log.Info("window closed", "frames", frames)
	return ExitOK, nil
}

func (b *Bootstrap) loop(surface Surface, p *pipeline.Pipeline) int {
	frames := 0
	for !surface.ShouldClose() {
		p.Draw()
		surface.SwapBuffers()
		b.Windowing.PollEvents()

		frames++
		if b.FrameStats != nil {
			b.FrameStats.Frame()
		}
	}
	if b.FrameStats != nil {
		b.FrameStats.Flush()
	}
	return frames
}

func orNoHandle(err error) error {
	if err == nil {
		return errors.New("no window handle returned")
	}
	return err
}
