package domain

import "time"

// Cache backends.
const (
	CacheBackendJSON   = "json"
	CacheBackendSQLite = "sqlite"
)

// Log formats.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Telemetry modes.
const (
	TelemetryNone     = "none"
	TelemetryProgrock = "progrock"
)

// Config is the validated runtime configuration.
type Config struct {
	Targets       TargetSet
	Cache         CacheConfig
	KnowledgePath string
	Engine        EngineConfig
	Policy        EnginePolicy
	Platform      Platform
	Parallelism   int
	LogFormat     string
	Telemetry     string
	HTTPAddr      string
}

// CacheConfig selects and locates the score store.
type CacheConfig struct {
	Backend string
	Path    string
}

// EngineConfig describes how to invoke the external docking engine.
// An empty command means no engine is installed.
type EngineConfig struct {
	Command []string
	Timeout time.Duration
	Env     map[string]string
}
