// Package shell provides the docking engine adapter that runs an external executable.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/dockq/internal/core/ports"
	"go.trai.ch/zerr"
)

// Placeholders substituted in every argument of the engine command.
const (
	MoleculePlaceholder = "{molecule}"
	TargetPlaceholder   = "{target}"
)

// waitDelay bounds how long Dock waits for output pipes after the engine is killed.
const waitDelay = 2 * time.Second

var _ ports.DockingEngine = (*Engine)(nil)

// Engine implements ports.DockingEngine using os/exec.
type Engine struct {
	command []string
	timeout time.Duration
	env     map[string]string
	logger  ports.Logger
}

// NewEngine creates an Engine from the engine configuration.
func NewEngine(cfg domain.EngineConfig, logger ports.Logger) *Engine {
	return &Engine{
		command: cfg.Command,
		timeout: cfg.Timeout,
		env:     cfg.Env,
		logger:  logger,
	}
}

// Available reports whether an engine command is configured.
func (e *Engine) Available() bool {
	return len(e.command) > 0 && strings.TrimSpace(e.command[0]) != ""
}

// Dock runs the engine for one molecule and target and parses the score from
// the last non-empty line of its stdout.
//
// The environment is os.Environ() overlaid with the configured engine env.
// Stderr is streamed to the logger line by line.
func (e *Engine) Dock(ctx context.Context, molecule, target string) (float64, error) {
	if !e.Available() {
		return 0, zerr.Wrap(domain.ErrEngineUnavailable, "no engine command configured")
	}

	if e.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	args := expand(e.command, molecule, target)
	name := args[0]
	cmdEnv := resolveEnvironment(os.Environ(), e.env)

	executable := name
	if !filepath.IsAbs(name) {
		if lp, err := lookPath(name, cmdEnv); err == nil {
			executable = lp
		}
	}

	cmd := exec.CommandContext(ctx, executable, args[1:]...) //nolint:gosec // configured command
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}
	cmd.Env = cmdEnv
	cmd.WaitDelay = waitDelay

	var stdout bytes.Buffer
	stderr := &logWriter{logger: e.logger}
	cmd.Stdout = &stdout
	cmd.Stderr = stderr

	err := cmd.Run()
	stderr.Flush()

	if ctxErr := ctx.Err(); errors.Is(ctxErr, context.DeadlineExceeded) {
		return 0, zerr.With(zerr.Wrap(domain.ErrEngineTimeout, "docking engine timed out"), "timeout", e.timeout.String())
	}
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		return 0, zerr.With(zerr.With(errors.Join(domain.ErrEngineFailed, err), "exit_code", exitCode), "target", target)
	}

	return parseScore(stdout.String())
}

func expand(command []string, molecule, target string) []string {
	r := strings.NewReplacer(MoleculePlaceholder, molecule, TargetPlaceholder, target)
	args := make([]string, len(command))
	for i, arg := range command {
		args[i] = r.Replace(arg)
	}
	return args
}

// parseScore accepts either a bare number or a JSON object with a "score" field.
func parseScore(output string) (float64, error) {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if last == "" {
		return 0, zerr.Wrap(domain.ErrEngineOutput, "docking engine produced no output")
	}

	if score, err := strconv.ParseFloat(last, 64); err == nil {
		return finite(score, last)
	}

	var payload struct {
		Score *float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(last), &payload); err == nil && payload.Score != nil {
		return finite(*payload.Score, last)
	}

	return 0, zerr.With(zerr.Wrap(domain.ErrEngineOutput, "docking engine output has no score"), "output", last)
}

// finite rejects NaN and infinities, which cannot be ranked or persisted.
func finite(score float64, output string) (float64, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, zerr.With(zerr.Wrap(domain.ErrEngineOutput, "docking engine score is not finite"), "output", output)
	}
	return score, nil
}

// logWriter forwards complete lines to the logger, buffering partial writes.
type logWriter struct {
	logger ports.Logger

	mu  sync.Mutex
	buf []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *logWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" || w.logger == nil {
		return
	}
	w.logger.Info(line)
}

// resolveEnvironment overlays the engine environment on the system environment.
func resolveEnvironment(sysEnv []string, engineEnv map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(engineEnv))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range engineEnv {
		if k == "PATH" {
			if sysPath := envMap["PATH"]; sysPath != "" {
				envMap[k] = v + string(os.PathListSeparator) + sysPath
				continue
			}
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
			break
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
