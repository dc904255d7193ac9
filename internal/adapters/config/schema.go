package config

import (
	"time"

	"go.trai.ch/dockq/internal/core/domain"
)

// DefaultFilename is the configuration file looked up in the working directory.
const DefaultFilename = "dockq.yaml"

// Dockfile represents the structure of the dockq.yaml configuration file.
type Dockfile struct {
	Version     string       `yaml:"version"`
	Targets     []TargetDTO  `yaml:"targets"`
	Cache       CacheDTO     `yaml:"cache"`
	Knowledge   KnowledgeDTO `yaml:"knowledge"`
	Engine      EngineDTO    `yaml:"engine"`
	Platform    string       `yaml:"platform"`
	Parallelism int          `yaml:"parallelism"`
	Log         LogDTO       `yaml:"log"`
	Telemetry   string       `yaml:"telemetry"`
	HTTP        HTTPDTO      `yaml:"http"`
}

// TargetDTO represents a target definition in the configuration.
type TargetDTO struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// CacheDTO represents the score cache settings.
type CacheDTO struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// KnowledgeDTO represents the knowledge base settings.
type KnowledgeDTO struct {
	Path string `yaml:"path"`
}

// EngineDTO represents the docking engine settings.
type EngineDTO struct {
	Command []string           `yaml:"command"`
	Timeout time.Duration      `yaml:"timeout"`
	Env     map[string]string  `yaml:"env"`
	Allow   []domain.AllowRule `yaml:"allow"`
}

// LogDTO represents the logging settings.
type LogDTO struct {
	Format string `yaml:"format"`
}

// HTTPDTO represents the HTTP server settings.
type HTTPDTO struct {
	Addr string `yaml:"addr"`
}

// envOverrides holds raw environment values applied on top of the file.
type envOverrides struct {
	ConfigPath    string        `env:"DOCKQ_CONFIG"`
	CachePath     string        `env:"DOCKQ_CACHE_PATH"`
	CacheBackend  string        `env:"DOCKQ_CACHE_BACKEND"`
	KnowledgePath string        `env:"DOCKQ_KNOWLEDGE_PATH"`
	EngineCommand []string      `env:"DOCKQ_ENGINE_COMMAND" envSeparator:" "`
	EngineTimeout time.Duration `env:"DOCKQ_ENGINE_TIMEOUT"`
	Platform      string        `env:"DOCKQ_PLATFORM"`
	Parallelism   int           `env:"DOCKQ_PARALLELISM"`
	LogFormat     string        `env:"DOCKQ_LOG_FORMAT"`
	Telemetry     string        `env:"DOCKQ_TELEMETRY"`
	HTTPAddr      string        `env:"DOCKQ_HTTP_ADDR"`
}

// Defaults returns the configuration used when no file is present.
func Defaults() Dockfile {
	return Dockfile{
		Version: "1",
		Targets: []TargetDTO{
			{ID: "ABL1", Name: "Tyrosine-protein kinase ABL1"},
			{ID: "ACHE", Name: "Acetylcholinesterase"},
			{ID: "CDK2", Name: "Cyclin-dependent kinase 2"},
			{ID: "EGFR", Name: "Epidermal growth factor receptor"},
			{ID: "ESR1", Name: "Estrogen receptor alpha"},
			{ID: "F2", Name: "Prothrombin (coagulation factor II)"},
			{ID: "HSP90AA1", Name: "Heat shock protein HSP 90-alpha"},
			{ID: "JAK2", Name: "Tyrosine-protein kinase JAK2"},
			{ID: "KIT", Name: "Mast/stem cell growth factor receptor Kit"},
			{ID: "PPARG", Name: "Peroxisome proliferator-activated receptor gamma"},
		},
		Cache: CacheDTO{
			Backend: domain.CacheBackendJSON,
			Path:    "data/docking_scores.json",
		},
		Engine: EngineDTO{
			Timeout: 5 * time.Minute,
			Allow: []domain.AllowRule{
				{Target: "ACHE", Platforms: []string{"linux"}},
			},
		},
		Parallelism: 4,
		Log:         LogDTO{Format: domain.LogFormatText},
		Telemetry:   domain.TelemetryNone,
		HTTP:        HTTPDTO{Addr: ":5005"},
	}
}
