package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidTarget is returned when a target identifier is not in the configured target set.
	ErrInvalidTarget = zerr.New("invalid target")

	// ErrInvalidMolecule is returned when a molecule identifier fails structural validation.
	ErrInvalidMolecule = zerr.New("invalid molecule")

	// ErrNoMolecules is returned when a ranking request carries no molecules.
	ErrNoMolecules = zerr.New("no molecules given")

	// ErrEngineFailed is returned when the docking engine exits unsuccessfully.
	ErrEngineFailed = zerr.New("docking engine failed")

	// ErrEngineTimeout is returned when the docking engine exceeds its deadline.
	ErrEngineTimeout = zerr.New("docking engine timed out")

	// ErrEngineOutput is returned when the docking engine output cannot be parsed as a score.
	ErrEngineOutput = zerr.New("unparsable docking engine output")

	// ErrEngineUnavailable is returned when no docking engine command is configured.
	ErrEngineUnavailable = zerr.New("docking engine unavailable")

	// ErrStoreReadFailed is returned when the score cache cannot be loaded.
	ErrStoreReadFailed = zerr.New("failed to read score cache")

	// ErrStoreWriteFailed is returned when the score cache cannot be persisted.
	ErrStoreWriteFailed = zerr.New("failed to persist score cache")

	// ErrStoreDegraded is returned by writes to a store running in memory-only mode.
	ErrStoreDegraded = zerr.New("score cache is running in memory-only mode")

	// ErrConfigRead is returned when the configuration file cannot be read.
	ErrConfigRead = zerr.New("failed to read config file")

	// ErrConfigParse is returned when the configuration file is not valid YAML.
	ErrConfigParse = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the configuration fails validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrKnowledgeRead is returned when the knowledge base cannot be read.
	ErrKnowledgeRead = zerr.New("failed to read knowledge base")

	// ErrKnowledgeParse is returned when the knowledge base document cannot be decoded.
	ErrKnowledgeParse = zerr.New("failed to parse knowledge base")

	// ErrUnknownKey is returned when a knowledge lookup finds nothing for the key.
	ErrUnknownKey = zerr.New("unknown knowledge key")
)
