package main

import (
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Substitution replaces every occurrence of From with To.
type Substitution struct {
	From string
	To   string
}

// Substitutions is an ordered list of literal replacements applied to
// translated text before escaping.
type Substitutions []Substitution

// UnmarshalYAML reads a mapping of from → to, keeping document order.
func (s *Substitutions) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: substitutions must be a mapping", node.Line)
	}
	subs := make(Substitutions, 0, len(node.Content)/2)
	for i := 0; i < len(node.Content)-1; i += 2 {
		keyNode := node.Content[i]
		valNode := node.Content[i+1]
		if valNode.Kind != yaml.ScalarNode {
			return fmt.Errorf("line %d: substitution for %q must be a string", valNode.Line, keyNode.Value)
		}
		subs = append(subs, Substitution{From: keyNode.Value, To: valNode.Value})
	}
	*s = subs
	return nil
}

// parseSubstitution parses a "from=to" command line value.
func parseSubstitution(s string) (Substitution, error) {
	from, to, ok := strings.Cut(s, "=")
	if !ok || from == "" {
		return Substitution{}, fmt.Errorf("invalid substitution %q, want from=to", s)
	}
	return Substitution{From: from, To: to}, nil
}

// parseSubstitutions parses repeated "from=to" flag values, keeping their
// order.
func parseSubstitutions(values []string) (Substitutions, error) {
	subs := make(Substitutions, 0, len(values))
	for _, v := range values {
		sub, err := parseSubstitution(v)
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}
	return subs, nil
}

// Apply runs every substitution over text, in order.
func (s Substitutions) Apply(text string) string {
	for _, sub := range s {
		if sub.From == "" {
			continue
		}
		text = strings.ReplaceAll(text, sub.From, sub.To)
	}
	return text
}

// escapeRule is one (pattern, replacement) step of an escaping chain.
// Literal rules replace verbatim; the others expand $1-style references.
type escapeRule struct {
	pattern *regexp.Regexp
	replace string
	literal bool
}

func literalRule(from, to string) escapeRule {
	return escapeRule{pattern: regexp.MustCompile(regexp.QuoteMeta(from)), replace: to, literal: true}
}

func (r escapeRule) apply(s string) string {
	if r.literal {
		return r.pattern.ReplaceAllLiteralString(s, r.replace)
	}
	return r.pattern.ReplaceAllString(s, r.replace)
}

var (
	// POEditor exports occasionally carry U+2028 LINE SEPARATOR.
	stripLineSeparator = literalRule("\u2028", "")

	// %s and %1$s become %@ and %1$@: Foundation formats objects, not C strings.
	objectPlaceholder = escapeRule{pattern: regexp.MustCompile(`%(\d+\$)?s`), replace: "%${1}@"}
)

// Escaping chains, one per output format, applied in order.
var (
	stringsRules = []escapeRule{
		stripLineSeparator,
		literalRule("\n", `\n`),
		literalRule(`"`, `\"`),
		objectPlaceholder,
	}

	stringsdictRules = []escapeRule{
		stripLineSeparator,
		literalRule(`\n`, "\n"),
		objectPlaceholder,
	}

	contextRules = []escapeRule{
		stripLineSeparator,
		literalRule(`\`, `\\`),
		literalRule(`\\"`, `\"`),
		objectPlaceholder,
	}
)

// transformText applies subs and then rules to text.
func transformText(text string, subs Substitutions, rules []escapeRule) string {
	text = subs.Apply(text)
	for _, r := range rules {
		text = r.apply(text)
	}
	return text
}
