package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestBuildContextFile(t *testing.T) {
	terms := []Term{
		{Term: "home_title", Definition: Single("Home"), Context: `Path C:\tmp`},
		{Term: "home_body", Definition: Single("Body")},
		{Term: "home_title_android", Context: "Android only"},
		{Term: "", Context: "orphan"},
		{Term: "cart_total", Context: `Shows %s, press \"Pay\" <now>`},
	}
	opts := Options{
		Substitutions: Substitutions{{From: "Path", To: "Folder"}},
		Now:           fixedNow,
	}
	content, st, err := buildContextFile(terms, opts)
	if err != nil {
		t.Fatal(err)
	}

	var doc contextIndex
	if err := json.Unmarshal(content, &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, content)
	}
	want := contextIndex{
		Date: "2024-03-01 12:30:00 +0000",
		Contexts: []contextEntry{
			{Term: "home_title", Context: `Path C:\\tmp`},
			{Term: "cart_total", Context: `Shows %@, press \"Pay\" <now>`},
		},
	}
	if diff := cmp.Diff(want, doc); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
	if st.processed != 2 || st.android != 1 || st.missing != 2 {
		t.Errorf("unexpected stats: %+v", st)
	}

	// Pretty printed, date first, no HTML escaping.
	if !strings.HasPrefix(string(content), "{\n  \"date\": \"2024-03-01 12:30:00 +0000\",\n  \"contexts\": [\n") {
		t.Errorf("unexpected layout:\n%s", content)
	}
	if !strings.Contains(string(content), "<now>") {
		t.Errorf("HTML characters were escaped:\n%s", content)
	}
}

func TestBuildContextFileNoContexts(t *testing.T) {
	content, _, err := buildContextFile([]Term{{Term: "a", Definition: Single("b")}}, Options{Now: fixedNow})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(content), `"contexts": []`) {
		t.Errorf("expected an empty contexts array:\n%s", content)
	}
}

func TestWriteContextFileLogs(t *testing.T) {
	log, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "context.json")
	terms := []Term{
		{Term: "a_b", Context: "note"},
		{Term: "a_c"},
		{Term: "a_b_android", Context: "note"},
	}
	if err := writeContextFile(log, terms, path, Options{Now: fixedNow}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}

	var got []string
	for _, e := range hook.AllEntries() {
		got = append(got, e.Message)
	}
	want := []string{
		"Save to file: " + path,
		"[Stats] 1 contexts processed (filtered out 1 android entries, 1 nil contexts)",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("log mismatch (-want +got):\n%s", diff)
	}
}
