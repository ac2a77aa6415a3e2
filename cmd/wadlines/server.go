package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"unsafe"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	wad "github.com/stuarthighley/wadlines"
	"github.com/stuarthighley/wadlines/sink"
)

// server renders levels of one WAD on request. Decoded lines are cached by level name.
type server struct {
	wad   *wad.WAD
	scale float32
	opts  sink.Options
	cache *ristretto.Cache[string, []wad.Line]
	log   logrus.FieldLogger

	newSink func(format string, w io.Writer, o sink.Options) (wad.Sink, error)
}

func newServer(w *wad.WAD, cfg *Config, log logrus.FieldLogger) (*server, error) {
	cache, err := ristretto.NewCache(&ristretto.Config[string, []wad.Line]{
		NumCounters: 1e4,
		MaxCost:     max(cfg.CacheMB, 1) << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, errors.Wrap(err, "level cache")
	}
	return &server{
		wad:   w,
		scale: float32(cfg.Scale),
		opts:  cfg.sinkOptions(),
		cache: cache,
		log:   log,

		newSink: sink.New,
	}, nil
}

func (s *server) Close() {
	s.cache.Close()
}

func (s *server) router() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/levels", s.handleLevels).Methods(http.MethodGet)
	r.HandleFunc("/levels/{name:[A-Za-z0-9_]+}.{format:[a-z]+}", s.handleLevel).Methods(http.MethodGet)
	return handlers.RecoveryHandler()(r)
}

func (s *server) handleLevels(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.wad.LevelNames()); err != nil {
		s.log.WithError(err).Warn("Write level list")
	}
}

func (s *server) lines(name string) ([]wad.Line, error) {
	if lines, ok := s.cache.Get(name); ok {
		return lines, nil
	}
	lines, err := s.wad.Lines(name, s.scale)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, lines, int64(len(lines))*int64(unsafe.Sizeof(wad.Line{})))
	return lines, nil
}

func (s *server) handleLevel(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	name, format := strings.ToUpper(vars["name"]), vars["format"]
	log := s.log.WithFields(logrus.Fields{"level": name, "format": format})

	var buf bytes.Buffer
	out, err := s.newSink(format, &buf, s.opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	lines, err := s.lines(name)
	switch {
	case errors.Is(err, wad.ErrLevelNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		log.WithError(err).Error("Load level")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	if err := out.DrawLines(name, lines); err != nil {
		log.WithError(err).Error("Render level")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", sink.ContentType(format))
	if _, err := buf.WriteTo(w); err != nil {
		log.WithError(err).Warn("Write level")
		return
	}
	log.WithField("lines", len(lines)).Debug("Served level")
}
