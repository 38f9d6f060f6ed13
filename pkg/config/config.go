// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"gitlab.com/tozd/go/errors"
)

// 🎯 Defaults for the anonymization run
const (
	// DefaultPattern matches common sensitive column-name shapes.
	DefaultPattern = `\b(\w+_name|\w+_address|\w+_phone|\w+_email|\w+_id)\b`

	// DefaultPrefix is the prefix for generated placeholder names.
	DefaultPrefix = "column_"

	// DefaultEncoding is used when no encoding is selected.
	DefaultEncoding = "utf-8"
)

// 📚 Config represents the complete configuration for one run. It is
// immutable once the run starts.
type Config struct {
	InputFile  string // Path to the table definition to anonymize
	OutputFile string // Path the anonymized definition is written to
	Pattern    string // Regex identifying column-name tokens
	Prefix     string // Prefix for replacement tokens
	Encoding   string // Encoding name, or "auto" for detection
}

// 🏭 New returns a Config for the given file pair with all defaults applied.
func New(inputFile, outputFile string) *Config {
	return &Config{
		InputFile:  inputFile,
		OutputFile: outputFile,
		Pattern:    DefaultPattern,
		Prefix:     DefaultPrefix,
		Encoding:   DefaultEncoding,
	}
}

// ✅ Validate checks that the configuration is usable
func (c *Config) Validate() error {
	if c.InputFile == "" {
		return errors.Errorf("input file path is required")
	}
	if c.OutputFile == "" {
		return errors.Errorf("output file path is required")
	}
	if c.Pattern == "" {
		return errors.Errorf("column name pattern is required")
	}
	if c.Encoding == "" {
		return errors.Errorf("encoding is required")
	}
	return nil
}

// 🔧 ApplyRules overlays values from a rules file. Only fields the rules
// file actually sets are applied; flag overrides happen after this in the
// command layer, so explicit flags always win.
func (c *Config) ApplyRules(rules *Rules) {
	if rules == nil {
		return
	}
	if rules.Pattern != "" {
		c.Pattern = rules.Pattern
	}
	if rules.Prefix != "" {
		c.Prefix = rules.Prefix
	}
	if rules.Encoding != "" {
		c.Encoding = rules.Encoding
	}
}
