package predefinedaliases

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/lazyasf/lazyasf/internal/core/domain/alias"
	"github.com/lazyasf/lazyasf/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// YAMLProvider implements the PredefinedAliasProvider interface
// by reading a list of aliases from a YAML file:
//
//	- alias: gs
//	  command: git status
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the path to the YAML file containing the alias set.
func NewYAMLProvider(filePath string) (ports.PredefinedAliasProvider, error) {
	if filePath == "" {
		return nil, fmt.Errorf("YAML file path cannot be empty")
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// GetPredefinedAliases reads and parses aliases from the configured YAML file.
// An empty document yields an empty list. Entries missing a name or a
// command are rejected so a typo does not turn into a half-written alias.
func (p *YAMLProvider) GetPredefinedAliases() ([]alias.Alias, error) {
	predefined := []alias.Alias{}

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read alias file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return predefined, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&predefined); err != nil {
		// A file holding only comments or "---" has no documents.
		if errors.Is(err, io.EOF) {
			return predefined, nil
		}
		return nil, fmt.Errorf("failed to unmarshal aliases from %s: %w", p.filePath, err)
	}

	for i, a := range predefined {
		if a.Name == "" || a.Command == "" {
			return nil, fmt.Errorf("entry %d in %s needs both 'alias' and 'command'", i+1, p.filePath)
		}
	}
	return predefined, nil
}
