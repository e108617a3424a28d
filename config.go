package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the content of a .termexport.yaml file.
type Config struct {
	// Terms is the exported terms file (JSON or YAML).
	Terms         string        `yaml:"terms"`
	PrintDate     bool          `yaml:"print_date"`
	Substitutions Substitutions `yaml:"substitutions"`
	Output        OutputConfig  `yaml:"output"`
}

// OutputConfig names the files written by "export". Empty entries are
// skipped.
type OutputConfig struct {
	Strings     string `yaml:"strings"`
	Stringsdict string `yaml:"stringsdict"`
	Context     string `yaml:"context"`
}

// loadConfig reads a config file. Relative paths inside it are resolved
// against the file's directory.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(abs)
	cfg.Terms = resolvePath(dir, cfg.Terms)
	cfg.Output.Strings = resolvePath(dir, cfg.Output.Strings)
	cfg.Output.Stringsdict = resolvePath(dir, cfg.Output.Stringsdict)
	cfg.Output.Context = resolvePath(dir, cfg.Output.Context)
	return &cfg, nil
}

// options returns the rendering options of the config, with extra
// substitutions appended after the configured ones.
func (c *Config) options(extra Substitutions, printDate bool) Options {
	subs := make(Substitutions, 0, len(c.Substitutions)+len(extra))
	subs = append(subs, c.Substitutions...)
	subs = append(subs, extra...)
	return Options{
		Substitutions: subs,
		PrintDate:     c.PrintDate || printDate,
	}
}
