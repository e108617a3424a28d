package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
)

// contextIndex is the JSON document listing translator notes.
type contextIndex struct {
	Date     string         `json:"date"`
	Contexts []contextEntry `json:"contexts"`
}

type contextEntry struct {
	Term    string `json:"term"`
	Context string `json:"context"`
}

// contextStats differs from stats in that missing contexts are only
// counted, not listed.
type contextStats struct {
	processed int
	android   int
	missing   int
}

// filterContexts selects terms carrying a context note. Substitutions are
// not applied to notes.
func filterContexts(terms []Term) ([]contextEntry, contextStats) {
	var st contextStats
	entries := []contextEntry{}
	for _, t := range terms {
		if t.Term == "" || t.Context == "" {
			st.missing++
			continue
		}
		if t.isAndroid() {
			st.android++
			continue
		}
		st.processed++
		entries = append(entries, contextEntry{
			Term:    t.Term,
			Context: transformText(t.Context, nil, contextRules),
		})
	}
	return entries, st
}

// buildContextFile renders the context index. The timestamp is always
// included.
func buildContextFile(terms []Term, opts Options) ([]byte, contextStats, error) {
	entries, st := filterContexts(terms)
	doc := contextIndex{Date: opts.timestamp(), Contexts: entries}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, st, fmt.Errorf("encoding context index: %w", err)
	}
	return buf.Bytes(), st, nil
}

// writeContextFile writes the JSON context index for terms at path.
func writeContextFile(log logrus.FieldLogger, terms []Term, path string, opts Options) error {
	content, st, err := buildContextFile(terms, opts)
	if err != nil {
		return err
	}
	if err := saveFile(log, path, content); err != nil {
		return err
	}
	log.Infof("[Stats] %d contexts processed (filtered out %d android entries, %d nil contexts)", st.processed, st.android, st.missing)
	return nil
}
