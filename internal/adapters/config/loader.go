// Package config provides the configuration loader for dockq.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file and
// DOCKQ_* environment overrides.
type FileConfigLoader struct {
	Filename string
	log      ports.Logger
}

// NewLoader creates a loader looking for DefaultFilename.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: DefaultFilename, log: log}
}

// Load reads the configuration from the given working directory.
// DOCKQ_CONFIG selects another file; a missing default file yields the defaults.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	var overrides envOverrides
	if err := env.Parse(&overrides); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigInvalid, err), "source", "environment")
	}

	explicit := overrides.ConfigPath != ""
	path := overrides.ConfigPath
	if !explicit {
		path = filepath.Join(cwd, l.Filename)
	}

	file, err := readFile(path, explicit)
	if err != nil {
		return nil, err
	}
	if file == nil {
		if l.log != nil {
			l.log.Info("no " + l.Filename + " found, using built-in defaults")
		}
		defaults := Defaults()
		file = &defaults
	}

	applyOverrides(file, overrides)
	return Build(*file, cwd)
}

// Load reads a configuration file from the given path, without environment
// overrides, and returns the validated configuration.
func Load(path string) (*domain.Config, error) {
	file, err := readFile(path, true)
	if err != nil {
		return nil, err
	}
	return Build(*file, filepath.Dir(path))
}

func readFile(path string, required bool) (*Dockfile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrConfigRead, err), "path", path)
	}

	file := Defaults()
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrConfigParse, err), "path", path)
	}
	return &file, nil
}

func applyOverrides(file *Dockfile, o envOverrides) {
	if o.CachePath != "" {
		file.Cache.Path = o.CachePath
	}
	if o.CacheBackend != "" {
		file.Cache.Backend = o.CacheBackend
	}
	if o.KnowledgePath != "" {
		file.Knowledge.Path = o.KnowledgePath
	}
	if len(o.EngineCommand) > 0 {
		file.Engine.Command = o.EngineCommand
	}
	if o.EngineTimeout != 0 {
		file.Engine.Timeout = o.EngineTimeout
	}
	if o.Platform != "" {
		file.Platform = o.Platform
	}
	if o.Parallelism != 0 {
		file.Parallelism = o.Parallelism
	}
	if o.LogFormat != "" {
		file.Log.Format = o.LogFormat
	}
	if o.Telemetry != "" {
		file.Telemetry = o.Telemetry
	}
	if o.HTTPAddr != "" {
		file.HTTP.Addr = o.HTTPAddr
	}
}

// Build validates a Dockfile and converts it to a domain.Config.
// Relative paths are resolved against baseDir.
func Build(file Dockfile, baseDir string) (*domain.Config, error) {
	profiles := make([]domain.TargetProfile, 0, len(file.Targets))
	seen := make(map[string]bool, len(file.Targets))
	for _, t := range file.Targets {
		id := domain.NormalizeTarget(t.ID)
		if id == "" {
			return nil, zerr.Wrap(domain.ErrConfigInvalid, "target id must not be empty")
		}
		if seen[id] {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "duplicate target id"), "target", id)
		}
		seen[id] = true
		profiles = append(profiles, domain.TargetProfile{ID: id, Name: strings.TrimSpace(t.Name)})
	}
	if len(profiles) == 0 {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "at least one target is required")
	}

	for _, rule := range file.Engine.Allow {
		if !seen[domain.NormalizeTarget(rule.Target)] {
			return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "allow-list names an unknown target"), "target", rule.Target)
		}
	}

	backend := strings.ToLower(strings.TrimSpace(file.Cache.Backend))
	if backend != domain.CacheBackendJSON && backend != domain.CacheBackendSQLite {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown cache backend"), "backend", file.Cache.Backend)
	}
	if strings.TrimSpace(file.Cache.Path) == "" {
		return nil, zerr.Wrap(domain.ErrConfigInvalid, "cache path must not be empty")
	}
	if file.Parallelism <= 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "parallelism must be positive"), "parallelism", file.Parallelism)
	}
	if file.Engine.Timeout <= 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "engine timeout must be positive"), "timeout", file.Engine.Timeout)
	}

	logFormat := strings.ToLower(file.Log.Format)
	if logFormat != domain.LogFormatText && logFormat != domain.LogFormatJSON {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown log format"), "format", file.Log.Format)
	}
	telemetry := strings.ToLower(file.Telemetry)
	if telemetry != domain.TelemetryNone && telemetry != domain.TelemetryProgrock {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfigInvalid, "unknown telemetry mode"), "telemetry", file.Telemetry)
	}

	platform := domain.Platform(strings.ToLower(strings.TrimSpace(file.Platform)))
	if platform == "" {
		platform = domain.CurrentPlatform()
	}

	return &domain.Config{
		Targets: domain.NewTargetSet(profiles...),
		Cache: domain.CacheConfig{
			Backend: backend,
			Path:    resolve(baseDir, file.Cache.Path),
		},
		KnowledgePath: resolve(baseDir, file.Knowledge.Path),
		Engine: domain.EngineConfig{
			Command: file.Engine.Command,
			Timeout: file.Engine.Timeout,
			Env:     file.Engine.Env,
		},
		Policy:      domain.EnginePolicy{Allow: file.Engine.Allow},
		Platform:    platform,
		Parallelism: file.Parallelism,
		LogFormat:   logFormat,
		Telemetry:   telemetry,
		HTTPAddr:    file.HTTP.Addr,
	}, nil
}

func resolve(baseDir, path string) string {
	path = strings.TrimSpace(path)
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
