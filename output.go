package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// timestampLayout matches the header timestamps of earlier exports.
const timestampLayout = "2006-01-02 15:04:05 -0700"

// Options control how terms are rendered.
type Options struct {
	Substitutions Substitutions
	// PrintDate adds a generation timestamp to the file header.
	PrintDate bool
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) timestamp() string {
	now := o.Now
	if now == nil {
		now = time.Now
	}
	return now().Format(timestampLayout)
}

// stats counts what happened to the terms of one emitter run.
type stats struct {
	processed int
	android   int
	empty     []string
}

// logStats writes the run summary.
func (s stats) logStats(log logrus.FieldLogger) {
	log.Infof("[Stats] %d strings processed (filtered out %d android strings)", s.processed, s.android)
	if len(s.empty) == 0 {
		return
	}
	log.Errorf("Found %d empty value(s) for the following term(s):", len(s.empty))
	for _, term := range s.empty {
		log.Errorf("  - %q", term)
	}
}

// writeFileAtomic writes content to a temporary file next to path and
// renames it into place, creating parent directories as needed.
func writeFileAtomic(path string, content []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

// saveFile writes content to path and announces it.
func saveFile(log logrus.FieldLogger, path string, content []byte) error {
	if err := writeFileAtomic(path, content); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	log.Infof("Save to file: %s", path)
	return nil
}
