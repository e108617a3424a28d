package main

import (
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// stringsEntry is one eligible term of a Localizable.strings file, already
// escaped.
type stringsEntry struct {
	key     string
	value   string
	context string
	prefix  string
}

// filterStrings selects the terms that belong in the strings table and
// escapes their values.
func filterStrings(terms []Term, opts Options) ([]stringsEntry, stats) {
	var st stats
	var entries []stringsEntry
	for _, t := range terms {
		singular := t.Definition.Singular()
		if t.Term == "" || singular == "" {
			st.empty = append(st.empty, t.Term)
			continue
		}
		if t.isAndroid() {
			st.android++
			continue
		}
		st.processed++
		entries = append(entries, stringsEntry{
			key:     t.Term,
			value:   transformText(singular, opts.Substitutions, stringsRules),
			context: strings.ReplaceAll(t.Context, "\n", `\n`),
			prefix:  termPrefix(t.Term),
		})
	}
	return entries, st
}

// termPrefix returns the namespace before the first underscore, or "" when
// the key has none.
func termPrefix(term string) string {
	prefix, _, ok := strings.Cut(term, "_")
	if !ok {
		return ""
	}
	return prefix
}

// markTitle upper-cases the first character of prefix and lower-cases the
// rest.
func markTitle(prefix string) string {
	r, size := utf8.DecodeRuneInString(prefix)
	if r == utf8.RuneError && size <= 1 {
		return prefix
	}
	return cases.Upper(language.Und).String(prefix[:size]) + cases.Lower(language.Und).String(prefix[size:])
}

// sectionFold carries the last emitted prefix and the lines so far.
type sectionFold struct {
	prefix string
	lines  []string
}

// add appends e, preceded by a MARK block when its prefix starts a new
// section.
func (f sectionFold) add(e stringsEntry) sectionFold {
	if e.prefix != "" && e.prefix != f.prefix {
		f.prefix = e.prefix
		f.lines = append(f.lines, "", strings.Repeat("/", 80), "// MARK: "+markTitle(e.prefix))
	}
	if e.context != "" {
		f.lines = append(f.lines, "// CONTEXT: "+e.context)
	}
	f.lines = append(f.lines, `"`+e.key+`" = "`+e.value+`";`)
	return f
}

func stringsHeader(opts Options) []string {
	lines := []string{
		"/" + strings.Repeat("*", 79),
		" * Exported from POEditor - https://poeditor.com",
	}
	if opts.PrintDate {
		lines = append(lines, " * "+opts.timestamp())
	}
	return append(lines, " "+strings.Repeat("*", 79)+"/", "")
}

// buildStringsFile renders a Localizable.strings file.
func buildStringsFile(terms []Term, opts Options) ([]byte, stats) {
	entries, st := filterStrings(terms, opts)
	fold := sectionFold{lines: stringsHeader(opts)}
	for _, e := range entries {
		fold = fold.add(e)
	}
	return []byte(strings.Join(fold.lines, "\n") + "\n"), st
}

// writeStringsFile renders terms as a Localizable.strings file at path.
func writeStringsFile(log logrus.FieldLogger, terms []Term, path string, opts Options) error {
	content, st := buildStringsFile(terms, opts)
	if err := saveFile(log, path, content); err != nil {
		return err
	}
	st.logStats(log)
	return nil
}
