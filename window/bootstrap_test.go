package window

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stewi1014/gltriangle/config"
	"github.com/stewi1014/gltriangle/geometry"
	"github.com/stewi1014/gltriangle/pipeline"
	"github.com/stewi1014/gltriangle/pipeline/pipelinetest"
	"github.com/stewi1014/gltriangle/programs"
)

type fakeWindowing struct {
	gl *pipelinetest.GL

	initErr    error
	createErr  error
	nilSurface bool
	// closeAfter is the number of frames drawn before the close flag is set.
	closeAfter int

	events  []string
	hints   ContextHints
	surface *fakeSurface
}

func (w *fakeWindowing) Init() error {
	w.events = append(w.events, "Init")
	return w.initErr
}

func (w *fakeWindowing) Hint(hints ContextHints) {
	w.events = append(w.events, "Hint")
	w.hints = hints
}

func (w *fakeWindowing) CreateWindow(width, height int, title string) (Surface, error) {
	w.events = append(w.events, fmt.Sprintf("CreateWindow(%dx%d %s)", width, height, title))
	if w.createErr != nil {
		return nil, w.createErr
	}
	if w.nilSurface {
		return nil, nil
	}
	w.surface = &fakeSurface{w: w, liveAtDestroy: -1}
	return w.surface, nil
}

func (w *fakeWindowing) PollEvents() {
	w.events = append(w.events, "PollEvents")
}

func (w *fakeWindowing) Terminate() {
	w.events = append(w.events, "Terminate")
}

type fakeSurface struct {
	w *fakeWindowing

	current       bool
	shouldClose   int
	swaps         int
	liveAtDestroy int
}

func (s *fakeSurface) MakeContextCurrent() {
	s.w.events = append(s.w.events, "MakeContextCurrent")
	if len(s.w.gl.Calls) != 0 {
		panic("GL called before the context was current")
	}
	s.current = true
}

func (s *fakeSurface) ShouldClose() bool {
	s.shouldClose++
	return s.swaps >= s.w.closeAfter
}

func (s *fakeSurface) SwapBuffers() {
	s.w.events = append(s.w.events, "SwapBuffers")
	s.swaps++
}

func (s *fakeSurface) Destroy() {
	s.w.events = append(s.w.events, "Destroy")
	s.liveAtDestroy = s.w.gl.Live()
}

func newBootstrap(t *testing.T, closeAfter int) (*Bootstrap, *fakeWindowing) {
	t.Helper()

	program, err := programs.Lookup(programs.Triangle)
	if err != nil {
		t.Fatal(err)
	}

	gl := &pipelinetest.GL{}
	w := &fakeWindowing{gl: gl, closeAfter: closeAfter}
	return &Bootstrap{
		Windowing: w,
		GL:        gl,
		Config:    config.Default(),
		Program:   program,
		Vertices:  geometry.Flatten(geometry.Triangle()),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, w
}

func count(calls []string, call string) int {
	n := 0
	for _, c := range calls {
		if c == call {
			n++
		}
	}
	return n
}

func TestCreateWindowFailure(t *testing.T) {
	tests := []struct {
		name  string
		setup func(w *fakeWindowing)
	}{
		{"error", func(w *fakeWindowing) { w.createErr = errors.New("GLXBadFBConfig") }},
		{"no handle", func(w *fakeWindowing) { w.nilSurface = true }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			b, w := newBootstrap(t, 1)
			test.setup(w)

			code, err := b.Run()
			if code != ExitFailure {
				t.Errorf("exit status = %d, want %d", code, ExitFailure)
			}
			if !errors.Is(err, ErrCreateWindow) {
				t.Errorf("got %v, want ErrCreateWindow", err)
			}
			if len(w.gl.Calls) != 0 {
				t.Errorf("GL called after window creation failed: %v", w.gl.Calls)
			}
			want := []string{"Init", "Hint", "CreateWindow(400x400 Game)", "Terminate"}
			if !slices.Equal(w.events, want) {
				t.Errorf("events = %v, want %v", w.events, want)
			}
		})
	}
}

func TestInitFailure(t *testing.T) {
	b, w := newBootstrap(t, 1)
	w.initErr = errors.New("no display")

	code, err := b.Run()
	if code != ExitFailure || err == nil {
		t.Fatalf("Run() = %d, %v", code, err)
	}
	if !slices.Equal(w.events, []string{"Init"}) {
		t.Errorf("events = %v", w.events)
	}
}

func TestLoaderFailure(t *testing.T) {
	b, w := newBootstrap(t, 1)
	w.gl.InitErr = &pipeline.LoaderError{Err: errors.New("glBindVertexArray")}

	code, err := b.Run()
	if code != ExitFailure {
		t.Errorf("exit status = %d", code)
	}
	var loaderErr *pipeline.LoaderError
	if !errors.As(err, &loaderErr) {
		t.Errorf("got %v, want a LoaderError", err)
	}
	if !slices.Equal(w.gl.Calls, []string{"Init()"}) {
		t.Errorf("GL calls = %v", w.gl.Calls)
	}
	if w.events[len(w.events)-1] != "Terminate" {
		t.Errorf("subsystem not terminated: %v", w.events)
	}
}

func TestPipelineFailure(t *testing.T) {
	b, w := newBootstrap(t, 1)
	w.gl.CompileLogs = map[pipeline.ShaderStage]string{pipeline.FragmentStage: "bad"}

	code, err := b.Run()
	if code != ExitFailure {
		t.Errorf("exit status = %d", code)
	}
	var compileErr *pipeline.CompileError
	if !errors.As(err, &compileErr) {
		t.Errorf("got %v, want a CompileError", err)
	}
	if count(w.events, "SwapBuffers") != 0 {
		t.Error("frames presented with a broken pipeline")
	}
	if w.events[len(w.events)-1] != "Terminate" {
		t.Errorf("subsystem not terminated: %v", w.events)
	}
}

func TestHints(t *testing.T) {
	b, w := newBootstrap(t, 0)
	b.Config.Context.ForwardCompatible = true

	if code, err := b.Run(); code != ExitOK || err != nil {
		t.Fatalf("Run() = %d, %v", code, err)
	}

	want := ContextHints{Major: 3, Minor: 3, CoreProfile: true, ForwardCompatible: true}
	if w.hints != want {
		t.Errorf("hints = %+v, want %+v", w.hints, want)
	}
	if slices.Index(w.events, "Hint") > slices.Index(w.events, "CreateWindow(400x400 Game)") {
		t.Error("hints applied after window creation")
	}
}

func TestViewportMatchesWindow(t *testing.T) {
	tests := []struct{ width, height int }{
		{400, 400},
		{1200, 800},
	}

	for _, test := range tests {
		b, w := newBootstrap(t, 1)
		b.Config.Window.Width = test.width
		b.Config.Window.Height = test.height

		if code, err := b.Run(); code != ExitOK || err != nil {
			t.Fatalf("Run() = %d, %v", code, err)
		}

		if w.gl.ViewportSize != [2]int32{int32(test.width), int32(test.height)} {
			t.Errorf("viewport = %v, want %dx%d", w.gl.ViewportSize, test.width, test.height)
		}
		if w.gl.Index("Init()") > w.gl.Index(fmt.Sprintf("Viewport(0, 0, %d, %d)", test.width, test.height)) {
			t.Error("viewport set before the loader ran")
		}
	}
}

func TestLoopRunsUntilClose(t *testing.T) {
	for _, frames := range []int{0, 1, 2, 5, 120} {
		t.Run(fmt.Sprint(frames), func(t *testing.T) {
			b, w := newBootstrap(t, frames)

			code, err := b.Run()
			if code != ExitOK || err != nil {
				t.Fatalf("Run() = %d, %v", code, err)
			}

			s := w.surface
			if s.swaps != frames {
				t.Errorf("presented %d frames, want %d", s.swaps, frames)
			}
			if s.shouldClose != frames+1 {
				t.Errorf("close flag checked %d times, want %d", s.shouldClose, frames+1)
			}
			if n := count(w.events, "PollEvents"); n != frames {
				t.Errorf("polled events %d times, want %d", n, frames)
			}
			if n := count(w.gl.Calls, "DrawArrays(triangles, 0, 3)"); n != frames {
				t.Errorf("%d draw calls, want %d", n, frames)
			}
			for _, v := range w.gl.Violations {
				t.Error(v)
			}
		})
	}
}

func TestFramesAreIdentical(t *testing.T) {
	const frames = 10
	b, w := newBootstrap(t, frames)

	if _, err := b.Run(); err != nil {
		t.Fatal(err)
	}

	var draws [][]string
	var current []string
	for _, call := range w.gl.Calls {
		if strings.HasPrefix(call, "ClearColor(") {
			current = nil
		}
		current = append(current, call)
		if strings.HasPrefix(call, "DrawArrays(") {
			draws = append(draws, current)
		}
	}

	if len(draws) != frames {
		t.Fatalf("found %d frames, want %d", len(draws), frames)
	}
	for i := 1; i < len(draws); i++ {
		if !slices.Equal(draws[i], draws[0]) {
			t.Errorf("frame %d = %v, frame 0 = %v", i, draws[i], draws[0])
		}
	}
}

func TestShutdownOrder(t *testing.T) {
	b, w := newBootstrap(t, 3)

	if code, err := b.Run(); code != ExitOK || err != nil {
		t.Fatalf("Run() = %d, %v", code, err)
	}

	if w.surface.liveAtDestroy != 0 {
		t.Errorf("%d GPU objects alive when the window was destroyed", w.surface.liveAtDestroy)
	}
	n := len(w.events)
	if n < 2 || w.events[n-2] != "Destroy" || w.events[n-1] != "Terminate" {
		t.Errorf("events end with %v", w.events[max(0, n-2):])
	}
}

func TestFrameStatsCounted(t *testing.T) {
	b, _ := newBootstrap(t, 7)
	b.FrameStats = NewFrameStats(nil, 1000)

	var clock int64
	b.FrameStats.now = func() time.Duration {
		clock += int64(time.Millisecond)
		return time.Duration(clock)
	}

	if _, err := b.Run(); err != nil {
		t.Fatal(err)
	}

	if b.FrameStats.count != 0 {
		t.Errorf("stats not flushed on exit, %d frames pending", b.FrameStats.count)
	}
	if b.FrameStats.last != 7*time.Millisecond {
		t.Errorf("last frame at %v, want 7ms", b.FrameStats.last)
	}
}
