package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the settings of a session. Flags given on the command line
// take precedence over a configuration file.
type Config struct {
	Trace    string `yaml:"trace"`
	Prompt   string `yaml:"prompt"`
	MaxDepth int    `yaml:"max-depth"`
	DumpAST  bool   `yaml:"dump-ast"`
}

func defaultConfig() *Config {
	return &Config{
		Trace:  "Info",
		Prompt: "py> ",
	}
}

// readConfig decodes a YAML configuration on top of the default settings.
// Unknown keys are rejected.
func readConfig(r io.Reader) (*Config, error) {
	conf := defaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(conf); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: %w", err)
	}
	if conf.MaxDepth < 0 {
		return nil, fmt.Errorf("config: max-depth must not be negative, is %d", conf.MaxDepth)
	}
	return conf, nil
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		return defaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	return readConfig(f)
}
