package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNotAMapping = errors.New("interface description root must be a mapping of name to declaration")

// LoadFile loads and parses an interface description from the given path.
func LoadFile(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML (or JSON) data into a Description, keeping declaration
// order. Top-level keys prefixed with "_" are skipped.
func Parse(data []byte) (*Description, error) {
	var root yaml.Node

	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, fmt.Errorf("failed to parse description: %w", err)
	}

	desc := &Description{}

	if root.Kind == 0 || len(root.Content) == 0 {
		// Empty document.
		return desc, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return nil, ErrNotAMapping
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		key, val := mapping.Content[i], mapping.Content[i+1]

		if strings.HasPrefix(key.Value, "_") {
			continue
		}

		var td TypeDecl

		err := val.Decode(&td)
		if err != nil {
			return nil, fmt.Errorf("failed to parse declaration %q: %w", key.Value, err)
		}

		desc.Decls = append(desc.Decls, Decl{Name: key.Value, TypeDecl: td})
	}

	return desc, nil
}
