package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// SeedSchema is the top-level structure of a seed file.
type SeedSchema struct {
	View  string       `json:"view" yaml:"view"`
	Nodes []NodeImport `json:"nodes" yaml:"nodes"`
}

// NodeImport defines one planning row in the seed file. Parents must be
// listed before their children.
type NodeImport struct {
	Ref       string             `json:"ref" yaml:"ref"`
	ParentRef *string            `json:"parent_ref,omitempty" yaml:"parent_ref,omitempty"`
	Name      string             `json:"name" yaml:"name"`
	Info      *string            `json:"info,omitempty" yaml:"info,omitempty"`
	Skill     string             `json:"skill,omitempty" yaml:"skill,omitempty"`
	Order     int                `json:"order" yaml:"order"`
	Weeks     map[string]float64 `json:"weeks,omitempty" yaml:"weeks,omitempty"`
}

// LoadSeedSchema reads and parses a seed file. Files ending in .yaml or
// .yml are read as YAML, everything else as JSON.
func LoadSeedSchema(path string) (*SeedSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema SeedSchema
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &schema)
	default:
		err = json.Unmarshal(data, &schema)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing seed file: %w", err)
	}
	return &schema, nil
}
