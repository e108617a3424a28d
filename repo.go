package main

import (
	"errors"
	"os"
	"path/filepath"
)

const configFileName = ".termexport.yaml"

var errNoConfig = errors.New("could not find " + configFileName + " in the current directory or its parents")

// findConfig returns the path of the nearest config file by walking up
// from dir.
func findConfig(dir string) (string, error) {
	for {
		path := filepath.Join(dir, configFileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errNoConfig
		}
		dir = parent
	}
}

// resolvePath interprets path relative to the directory holding the
// config file.
func resolvePath(configDir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}
