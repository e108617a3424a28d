package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
)

const stringsdictTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<!-- Exported from POEditor -->
{{- if .Date}}
<!-- {{.Date}} -->
{{- end}}
<!-- see https://poeditor.com -->
<plist version="1.0">
    <dict>
{{- range .Entries}}
        <key>{{xml .Key}}</key>
        <dict>
            <key>NSStringLocalizedFormatKey</key>
            <string>%#@format@</string>
            <key>format</key>
            <dict>
                <key>NSStringFormatSpecTypeKey</key>
                <string>NSStringPluralRuleType</string>
                <key>NSStringFormatValueTypeKey</key>
                <string>d</string>
{{- range .Forms}}
                <key>{{xml .Category}}</key>
                <string>{{xml .Text}}</string>
{{- end}}
            </dict>
        </dict>
{{- end}}
    </dict>
</plist>
`

// Only markup characters are escaped; line feeds stay literal.
var xmlText = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

var stringsdictTmpl = template.Must(template.New("stringsdict").
	Funcs(template.FuncMap{"xml": xmlText.Replace}).
	Parse(stringsdictTemplate))

type stringsdictModel struct {
	Date    string
	Entries []pluralEntry
}

// pluralEntry is one plural rule of a Localizable.stringsdict file.
type pluralEntry struct {
	Key   string
	Forms []PluralForm
}

// filterPlurals selects terms with plural definitions. Terms with a single
// string definition, empty or not, are skipped without being counted.
func filterPlurals(terms []Term, opts Options) ([]pluralEntry, stats) {
	var st stats
	var entries []pluralEntry
	for _, t := range terms {
		if t.Term == "" || (t.Definition.Kind != SingleText && t.Definition.IsEmpty()) {
			st.empty = append(st.empty, t.Term)
			continue
		}
		if t.isAndroid() {
			st.android++
			continue
		}
		if t.Definition.Kind != PluralText {
			continue
		}
		st.processed++
		forms := make([]PluralForm, len(t.Definition.Forms))
		for i, f := range t.Definition.Forms {
			forms[i] = PluralForm{
				Category: f.Category,
				Text:     transformText(f.Text, opts.Substitutions, stringsdictRules),
			}
		}
		entries = append(entries, pluralEntry{Key: t.pluralKey(), Forms: forms})
	}
	return entries, st
}

// buildStringsdictFile renders a Localizable.stringsdict property list.
func buildStringsdictFile(terms []Term, opts Options) ([]byte, stats, error) {
	entries, st := filterPlurals(terms, opts)
	model := stringsdictModel{Entries: entries}
	if opts.PrintDate {
		model.Date = opts.timestamp()
	}
	var buf bytes.Buffer
	if err := stringsdictTmpl.Execute(&buf, model); err != nil {
		return nil, st, fmt.Errorf("rendering stringsdict: %w", err)
	}
	return buf.Bytes(), st, nil
}

// writeStringsdictFile renders the plural terms as a
// Localizable.stringsdict file at path.
func writeStringsdictFile(log logrus.FieldLogger, terms []Term, path string, opts Options) error {
	content, st, err := buildStringsdictFile(terms, opts)
	if err != nil {
		return err
	}
	if err := saveFile(log, path, content); err != nil {
		return err
	}
	st.logStats(log)
	return nil
}
