package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/zenity"

	"github.com/zooyer/drawpanel"
	"github.com/zooyer/drawpanel/core"
	"github.com/zooyer/drawpanel/render/raster"
	"github.com/zooyer/drawpanel/render/svgdoc"
	"github.com/zooyer/drawpanel/tui"
)

const (
	defaultWidth    = 800 // 画布宽度(px)
	defaultHeight   = 600 // 画布高度(px)
	defaultFilename = "shapes.png"
)

var (
	script      = flag.String("script", "", "placement script to render; empty runs the interactive terminal UI")
	output      = flag.String("out", "", "output image, .png or .svg")
	csvFile     = flag.String("csv", "", "write the shape log as CSV")
	width       = flag.Int("width", defaultWidth, "canvas width in px")
	height      = flag.Int("height", defaultHeight, "canvas height in px")
	colors      = flag.Bool("colors", true, "colour mode for new shapes")
	annotations = flag.Bool("annotations", true, "annotation mode for new shapes")
	dialog      = flag.Bool("dialog", false, "choose the output image with a save dialog")
	verbose     = flag.Bool("v", false, "debug logging")
	logFile     = flag.String("log", "", "log file (the interactive UI does not log to stderr)")
)

// exporter 可以保存到文件的绘图表面
type exporter interface {
	core.Surface
	Save(path string) error
}

func main() {
	flag.Parse()

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()
	drawpanel.SetLogger(logger)

	if *script == "" {
		err = interactive()
	} else {
		err = batch(logger)
	}
	if err != nil {
		logger.Error("drawpanel failed", "error", err)
		closeLog()
		os.Exit(1)
	}
}

func newLogger() (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	var (
		w       io.Writer = os.Stderr
		closeFn           = func() {}
	)
	switch {
	case *logFile != "":
		file, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = file, func() { _ = file.Close() }
	case *script == "":
		w = io.Discard
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), closeFn, nil
}

func modes() drawpanel.PanelOption {
	return drawpanel.WithModes(drawpanel.Modes{Color: *colors, Annotation: *annotations})
}

func interactive() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err = screen.Init(); err != nil {
		return err
	}

	app := tui.New(screen, modes())
	err = app.Run()
	screen.Fini()
	if err != nil {
		return err
	}

	if *csvFile != "" {
		return app.Panel().Log().WriteCSV(*csvFile)
	}
	return nil
}

func outputPath() (string, error) {
	if !*dialog {
		return *output, nil
	}

	name := *output
	if name == "" {
		name = defaultFilename
	}
	path, err := zenity.SelectFileSave(
		zenity.Title("Save drawing"),
		zenity.Filename(name),
		zenity.ConfirmOverwrite(),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return path, err
}

func newSurface(path string) (exporter, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return svgdoc.New(*width, *height), nil
	}
	return raster.New(*width, *height)
}

func batch(logger *slog.Logger) (err error) {
	path, err := outputPath()
	if err != nil {
		return err
	}

	surface, err := newSurface(path)
	if err != nil {
		return err
	}
	panel := drawpanel.NewPanel(surface, modes())

	file, err := os.Open(*script)
	if err != nil {
		return err
	}
	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	// 逐行放置，非法行只记录不中断
	var (
		scanner  = core.NewScanner(file)
		rejected int
	)
	for scanner.Next() {
		if _, err := panel.PlaceRequest(scanner.LastRequest); err != nil {
			rejected++
			logger.Warn("placement rejected", "error", err)
		}
	}
	if err = scanner.Err(); err != nil {
		return err
	}

	for _, line := range panel.Log().Format(0) {
		fmt.Println(line)
	}
	logger.Info("placed shapes", "count", panel.Registry().Count(), "rejected", rejected)

	if *csvFile != "" {
		if err = panel.Log().WriteCSV(*csvFile); err != nil {
			return err
		}
		logger.Info("wrote log", "file", *csvFile)
	}

	if path != "" {
		if err = surface.Save(path); err != nil {
			return err
		}
		logger.Info("wrote image", "file", path)
	}
	return nil
}
