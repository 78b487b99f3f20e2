package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"HousePrice/internal/services/pricing"
	applogger "HousePrice/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

// ErrModelNotLoaded is returned when no model has been loaded yet.
var ErrModelNotLoaded = errors.New("model not loaded")

// modelFile is the on-disk model artifact.
type modelFile struct {
	Version      string                `yaml:"version"`
	Floor        *float64              `yaml:"floor"`
	Coefficients *pricing.Coefficients `yaml:"coefficients"`
}

// ModelStore loads the price model artifact and keeps the current model
// behind an atomic pointer so reloads never block predictions.
type ModelStore struct {
	path  string
	floor float64
	log   *applogger.Logger

	current atomic.Pointer[pricing.LinearModel]
}

// NewModelStore creates a store for the artifact at path. floor applies when
// the artifact does not set its own.
func NewModelStore(path string, floor float64, l *applogger.Logger) *ModelStore {
	if l == nil {
		l = applogger.Nop()
	}
	return &ModelStore{path: path, floor: floor, log: l.Component("model_store")}
}

// Load reads the artifact. A missing file installs the reference
// coefficients; a malformed file is an error and leaves the current model.
func (s *ModelStore) Load() error {
	m, err := s.read()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		s.log.Warn("model artifact not found, using reference coefficients", applogger.String("path", s.path))
		m = pricing.NewLinearModel(pricing.ReferenceCoefficients, s.floor, "reference")
	}
	s.current.Store(m)
	s.log.Info("model loaded", applogger.String("path", s.path), applogger.String("version", m.Info().Version))
	return nil
}

// Model returns the current model.
func (s *ModelStore) Model() (*pricing.LinearModel, error) {
	m := s.current.Load()
	if m == nil {
		return nil, ErrModelNotLoaded
	}
	return m, nil
}

func (s *ModelStore) read() (*pricing.LinearModel, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var mf modelFile
	if err := yaml.Unmarshal(b, &mf); err != nil {
		return nil, fmt.Errorf("parse model %s: %w", s.path, err)
	}
	if mf.Coefficients == nil {
		return nil, fmt.Errorf("parse model %s: coefficients missing", s.path)
	}
	floor := s.floor
	if mf.Floor != nil {
		if *mf.Floor < 0 {
			return nil, fmt.Errorf("parse model %s: floor cannot be negative", s.path)
		}
		floor = *mf.Floor
	}
	version := mf.Version
	if version == "" {
		version = filepath.Base(s.path)
	}
	return pricing.NewLinearModel(*mf.Coefficients, floor, version), nil
}

// Watch reloads the artifact whenever it is written or replaced, until ctx
// is cancelled. A failed reload is logged and the previous model stays.
func (s *ModelStore) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory so atomic renames over the file are seen.
	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}
	name := filepath.Clean(s.path)
	s.log.Info("watching model artifact", applogger.String("path", s.path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			m, err := s.read()
			if err != nil {
				s.log.Error("model reload failed, keeping previous model", applogger.Error(err))
				continue
			}
			s.current.Store(m)
			s.log.Info("model reloaded", applogger.String("version", m.Info().Version))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.log.Error("model watcher error", applogger.Error(err))
		}
	}
}
