package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	wad "github.com/stuarthighley/wadlines"
	"github.com/stuarthighley/wadlines/sink"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "wadlines:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return err
	}

	// Set WAD logger
	wad.SetLogger(log.WithField("component", "wad"))

	switch {
	case cfg.List:
		return listLevels(cfg, stdout)
	case cfg.Tree:
		return printTree(cfg, stdout)
	case cfg.Serve != "":
		return serve(cfg, log)
	default:
		return render(cfg, stdout, log)
	}
}

func listLevels(cfg *Config, stdout io.Writer) error {
	w, err := wad.NewWAD(cfg.WAD)
	if err != nil {
		return err
	}
	for _, name := range w.LevelNames() {
		fmt.Fprintln(stdout, name)
	}
	return nil
}

func printTree(cfg *Config, stdout io.Writer) error {
	w, err := wad.NewWAD(cfg.WAD)
	if err != nil {
		return err
	}
	level, err := w.ReadLevel(cfg.Level, float32(cfg.Scale))
	if err != nil {
		return err
	}
	return wad.PrintTree(stdout, level)
}

// render draws into memory first so a failed load or draw leaves no output behind
func render(cfg *Config, stdout io.Writer, log logrus.FieldLogger) error {
	var buf bytes.Buffer
	s, err := sink.New(cfg.Format, &buf, cfg.sinkOptions())
	if err != nil {
		return err
	}
	logged := wad.SinkFunc(func(level string, lines []wad.Line) error {
		log.WithFields(logrus.Fields{"level": level, "lines": len(lines), "format": cfg.Format}).Info("Rendering")
		return s.DrawLines(level, lines)
	})
	if err := wad.LoadLevelTo(cfg.WAD, cfg.Level, float32(cfg.Scale), logged); err != nil {
		return errors.Wrapf(err, "%v", cfg.WAD)
	}

	if cfg.Out == "" {
		_, err := buf.WriteTo(stdout)
		return err
	}
	return os.WriteFile(cfg.Out, buf.Bytes(), 0o644)
}

func serve(cfg *Config, log *logrus.Logger) error {
	w, err := wad.NewWAD(cfg.WAD)
	if err != nil {
		return err
	}
	srv, err := newServer(w, cfg, log)
	if err != nil {
		return err
	}
	defer srv.Close()

	log.WithFields(logrus.Fields{"addr": cfg.Serve, "levels": len(w.LevelNames())}).Info("Starting server")
	return http.ListenAndServe(cfg.Serve, srv.router())
}
