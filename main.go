package main

import (
	"flag"
	"log/slog"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/stewi1014/gltriangle/config"
	"github.com/stewi1014/gltriangle/geometry"
	"github.com/stewi1014/gltriangle/pipeline"
	"github.com/stewi1014/gltriangle/pipeline/glcore"
	"github.com/stewi1014/gltriangle/programs"
	"github.com/stewi1014/gltriangle/window"
	"github.com/stewi1014/gltriangle/window/glfwwindow"
)

func init() {
	// GLFW and the OpenGL context belong to the main thread.
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "YAML config file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error; overrides the config file")
	errorDialog := flag.Bool("error-dialog", false, "also show fatal errors in a dialog")
	flag.Parse()

	code, err := run(*configPath, *logLevel)
	if err != nil && *errorDialog {
		ShowErrorDialog(err)
	}
	os.Exit(code)
}

func run(configPath, logLevel string) (code int, err error) {
	defer CatchPanic(&code, &err)

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return window.ExitFailure, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	level, err := config.ParseLevel(cfg.LogLevel)
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		return window.ExitFailure, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	pipeline.SetLogger(logger)

	program, err := programs.Lookup(cfg.Program)
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return window.ExitFailure, errors.Wrap(err, "config program")
	}

	b := &window.Bootstrap{
		Windowing:  glfwwindow.New(),
		GL:         glcore.New(),
		Config:     cfg,
		Program:    program,
		Vertices:   geometry.Flatten(geometry.Triangle()),
		Logger:     logger,
		FrameStats: window.NewFrameStats(logger, 0),
	}
	return b.Run()
}
