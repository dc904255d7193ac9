package knowledge

import (
	_ "embed"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/dockq/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

//go:embed default.json
var defaultDocument []byte

// Default returns the built-in knowledge base.
func Default() (*domain.KnowledgeBase, error) {
	return decode(defaultDocument, ".json", "embedded")
}

// Load reads a knowledge base document. The format is chosen by file extension:
// .json, .yaml, .yml or .toml.
func Load(path string) (*domain.KnowledgeBase, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user configuration
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrKnowledgeRead, err), "path", path)
	}
	return decode(data, strings.ToLower(filepath.Ext(path)), path)
}

func decode(data []byte, ext, origin string) (*domain.KnowledgeBase, error) {
	var doc domain.KnowledgeBase
	var err error
	switch ext {
	case ".json":
		err = json.Unmarshal(data, &doc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &doc)
	case ".toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrKnowledgeParse, "unsupported knowledge base format"), "path", origin)
	}
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrKnowledgeParse, err), "path", origin)
	}
	return &doc, nil
}
