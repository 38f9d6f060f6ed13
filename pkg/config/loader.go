package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
	"gopkg.in/yaml.v3"
)

// Rules is the on-disk form of reusable anonymization settings. Every
// field is optional; unset fields leave the corresponding Config value
// alone.
type Rules struct {
	Pattern  string `json:"pattern,omitempty" yaml:"pattern,omitempty" hcl:"pattern,optional"`
	Prefix   string `json:"prefix,omitempty" yaml:"prefix,omitempty" hcl:"prefix,optional"`
	Encoding string `json:"encoding,omitempty" yaml:"encoding,omitempty" hcl:"encoding,optional"`
}

// LoadRules loads a rules file from the given path.
// The format is determined by the file extension:
// - .json for JSON
// - .yaml or .yml for YAML
// - .hcl for HCL
func LoadRules(path string) (*Rules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading rules file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return loadJSON(data)
	case ".yaml", ".yml":
		return loadYAML(data)
	case ".hcl":
		return loadHCL(data, path)
	default:
		return nil, errors.Errorf("unsupported rules file extension %q", ext)
	}
}

// loadJSON loads rules from JSON data
func loadJSON(data []byte) (*Rules, error) {
	var rules Rules
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&rules); err != nil {
		return nil, errors.Errorf("parsing JSON: %w", err)
	}
	return &rules, nil
}

// loadYAML loads rules from YAML data
func loadYAML(data []byte) (*Rules, error) {
	var rules Rules
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&rules); err != nil {
		return nil, errors.Errorf("parsing YAML: %w", err)
	}
	return &rules, nil
}

// loadHCL loads rules from HCL data
func loadHCL(data []byte, filename string) (*Rules, error) {
	parser := hclparse.NewParser()
	hclFile, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing HCL: %s", diags.Error())
	}

	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{},
	}

	var rules Rules
	diags = gohcl.DecodeBody(hclFile.Body, ctx, &rules)
	if diags.HasErrors() {
		return nil, errors.Errorf("decoding HCL: %s", diags.Error())
	}

	return &rules, nil
}
