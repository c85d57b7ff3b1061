// Copyright 2026 The labeleval Authors
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

// Package config loads and validates the evaluation run configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is one evaluation run's configuration: defaults overlaid by a
// YAML file, overlaid by CLI flags.
type Config struct {
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Inputs     InputsConfig     `yaml:"inputs"`
	Extractor  ExtractorConfig  `yaml:"extractor"`
	Reader     ReaderConfig     `yaml:"reader"`
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// VocabularyConfig supplies the category list and the sentinel label.
// The vocabulary is never built in; it always arrives from configuration.
type VocabularyConfig struct {
	Categories []string `yaml:"categories"`
	Sentinel   string   `yaml:"sentinel"`
}

// InputsConfig names the two input files.
type InputsConfig struct {
	// Truth is the ground-truth table; the reader is chosen by extension.
	Truth string `yaml:"truth"`

	// Predictions is the line-delimited JSON prediction file.
	Predictions string `yaml:"predictions"`

	// TextField is the gjson path of the prediction text within each
	// record. Empty means the reader's default.
	TextField string `yaml:"text_field"`
}

// ExtractorConfig selects and configures the extraction strategy.
type ExtractorConfig struct {
	Name    string         `yaml:"name"`
	Options map[string]any `yaml:"options"`
}

// ReaderConfig carries options for the ground-truth table reader.
type ReaderConfig struct {
	Options map[string]any `yaml:"options"`
}

// OutputConfig names the artifact directory and the optional run
// history database.
type OutputConfig struct {
	Dir string `yaml:"dir"`

	// History is the SQLite run-history path. Empty disables history.
	History string `yaml:"history"`
}

// LoggingConfig configures the CLI logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the configuration defaults. The vocabulary and input
// paths have no defaults; they must come from the file or flags.
func Default() *Config {
	return &Config{
		Extractor: ExtractorConfig{Name: "emphasis"},
		Output:    OutputConfig{Dir: "eval_out"},
		Logging:   LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML configuration file over the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for the failures a run could only
// discover later: a malformed vocabulary or missing paths.
func (c *Config) Validate() error {
	if len(c.Vocabulary.Categories) == 0 {
		return fmt.Errorf("config: vocabulary.categories is required")
	}
	seen := make(map[string]bool, len(c.Vocabulary.Categories))
	for i, category := range c.Vocabulary.Categories {
		if category == "" {
			return fmt.Errorf("config: vocabulary.categories[%d] is empty", i)
		}
		if seen[category] {
			return fmt.Errorf("config: duplicate category %q", category)
		}
		seen[category] = true
	}
	if c.Vocabulary.Sentinel == "" {
		return fmt.Errorf("config: vocabulary.sentinel is required")
	}
	if seen[c.Vocabulary.Sentinel] {
		return fmt.Errorf("config: sentinel %q collides with a category", c.Vocabulary.Sentinel)
	}

	if c.Inputs.Truth == "" {
		return fmt.Errorf("config: inputs.truth is required")
	}
	if c.Inputs.Predictions == "" {
		return fmt.Errorf("config: inputs.predictions is required")
	}

	if c.Extractor.Name == "" {
		return fmt.Errorf("config: extractor.name is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("config: output.dir is required")
	}
	return nil
}
