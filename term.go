package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Term is one exported localization term.
type Term struct {
	Term       string     `json:"term" yaml:"term"`
	TermPlural string     `json:"term_plural" yaml:"term_plural"`
	Definition Definition `json:"definition" yaml:"definition"`
	Comment    string     `json:"comment" yaml:"comment"`
	Context    string     `json:"context" yaml:"context"`
}

// pluralKey returns the key used in the plural table.
func (t Term) pluralKey() string {
	if t.TermPlural != "" {
		return t.TermPlural
	}
	return t.Term
}

// isAndroid reports whether the term is scoped to Android only.
func (t Term) isAndroid() bool {
	return strings.HasSuffix(t.Term, "_android")
}

// DefinitionKind tells which case of Definition is set.
type DefinitionKind int

const (
	NoDefinition DefinitionKind = iota
	SingleText
	PluralText
)

// PluralForm is the text for one plural category ("one", "other", ...).
type PluralForm struct {
	Category string
	Text     string
}

// Definition is the translated text of a term: either a single string or
// a list of plural forms in the order the source listed them.
type Definition struct {
	Kind  DefinitionKind
	Text  string
	Forms []PluralForm
}

// Single returns a SingleText definition.
func Single(text string) Definition {
	return Definition{Kind: SingleText, Text: text}
}

// Plural returns a PluralText definition.
func Plural(forms ...PluralForm) Definition {
	if forms == nil {
		forms = []PluralForm{}
	}
	return Definition{Kind: PluralText, Forms: forms}
}

// Singular resolves the text used where only one string fits. For plural
// definitions that is the "one" category.
func (d Definition) Singular() string {
	switch d.Kind {
	case SingleText:
		return d.Text
	case PluralText:
		for _, f := range d.Forms {
			if f.Category == "one" {
				return f.Text
			}
		}
	}
	return ""
}

// IsEmpty reports whether the definition carries no text at all.
func (d Definition) IsEmpty() bool {
	switch d.Kind {
	case SingleText:
		return d.Text == ""
	case PluralText:
		return len(d.Forms) == 0
	}
	return true
}

// UnmarshalJSON accepts null, a string, or an object of category → string.
// Object keys keep their document order.
func (d *Definition) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("definition: invalid JSON")
	}
	r := gjson.ParseBytes(data)
	switch {
	case r.Type == gjson.Null:
		*d = Definition{}
	case r.Type == gjson.String:
		*d = Single(r.Str)
	case r.IsObject():
		forms := []PluralForm{}
		var err error
		r.ForEach(func(key, value gjson.Result) bool {
			if value.Type != gjson.String {
				err = fmt.Errorf("definition: plural category %q is %s, not a string", key.Str, value.Type)
				return false
			}
			forms = append(forms, PluralForm{Category: key.Str, Text: value.Str})
			return true
		})
		if err != nil {
			return err
		}
		*d = Plural(forms...)
	default:
		return fmt.Errorf("definition: unsupported JSON value %s", strings.TrimSpace(r.Raw))
	}
	return nil
}

// UnmarshalYAML accepts null, a string, or a mapping of category → string.
// Numbers, booleans and other tagged scalars are rejected.
func (d *Definition) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!null":
			*d = Definition{}
		case "!!str":
			*d = Single(node.Value)
		default:
			return fmt.Errorf("line %d: definition: %s value %q is not a string", node.Line, node.ShortTag(), node.Value)
		}
	case yaml.MappingNode:
		forms := make([]PluralForm, 0, len(node.Content)/2)
		for i := 0; i < len(node.Content)-1; i += 2 {
			keyNode := node.Content[i]
			valNode := node.Content[i+1]
			if valNode.Kind != yaml.ScalarNode || valNode.ShortTag() != "!!str" {
				return fmt.Errorf("line %d: definition: plural category %q is not a string", valNode.Line, keyNode.Value)
			}
			forms = append(forms, PluralForm{Category: keyNode.Value, Text: valNode.Value})
		}
		*d = Plural(forms...)
	default:
		return fmt.Errorf("line %d: definition: expected a string or a mapping", node.Line)
	}
	return nil
}

// loadTerms reads exported terms from path. YAML files hold a list of
// terms; JSON files hold either a bare list or a POEditor API response with
// the list under result.terms.
func loadTerms(path string) ([]Term, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var terms []Term
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &terms); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	default:
		if err := decodeTermsJSON(data, &terms); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}
	return terms, nil
}

func decodeTermsJSON(data []byte, terms *[]Term) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}
	raw := data
	if root := gjson.ParseBytes(data); root.IsObject() {
		list := root.Get("result.terms")
		if !list.IsArray() {
			return fmt.Errorf("no result.terms list in API response")
		}
		raw = []byte(list.Raw)
	}
	return json.Unmarshal(raw, terms)
}
