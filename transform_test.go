package main

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestTransformText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		subs  Substitutions
		rules []escapeRule
		want  string
	}{
		{
			name:  "strings: line feed becomes escape",
			input: "Line1\nLine2",
			rules: stringsRules,
			want:  `Line1\nLine2`,
		},
		{
			name:  "strings: quotes escaped",
			input: `Say "hi"`,
			rules: stringsRules,
			want:  `Say \"hi\"`,
		},
		{
			name:  "strings: placeholders rewritten",
			input: "%s and %2$s",
			rules: stringsRules,
			want:  "%@ and %2$@",
		},
		{
			name:  "strings: no placeholders unchanged",
			input: "Plain text, 100% done",
			rules: stringsRules,
			want:  "Plain text, 100% done",
		},
		{
			name:  "strings: other verbs untouched",
			input: "%d items, %1$d left",
			rules: stringsRules,
			want:  "%d items, %1$d left",
		},
		{
			name:  "strings: line separator stripped",
			input: "a\u2028b",
			rules: stringsRules,
			want:  "ab",
		},
		{
			name:  "strings: substitution before escaping",
			input: "Welcome to {app}",
			subs:  Substitutions{{From: "{app}", To: `"Acme"`}},
			rules: stringsRules,
			want:  `Welcome to \"Acme\"`,
		},
		{
			name:  "stringsdict: escape becomes line feed",
			input: `one\ntwo`,
			rules: stringsdictRules,
			want:  "one\ntwo",
		},
		{
			name:  "stringsdict: placeholders rewritten",
			input: "%1$s has %d items",
			rules: stringsdictRules,
			want:  "%1$@ has %d items",
		},
		{
			name:  "context: backslash doubled",
			input: `C:\dir`,
			rules: contextRules,
			want:  `C:\\dir`,
		},
		{
			name:  "context: escaped quote kept single",
			input: `press \"OK\"`,
			rules: contextRules,
			want:  `press \"OK\"`,
		},
		{
			name:  "context: placeholders and separator",
			input: "shows %s\u2028here",
			rules: contextRules,
			want:  "shows %@here",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := transformText(tc.input, tc.subs, tc.rules)
			if got != tc.want {
				t.Errorf("transformText(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestLineFeedRoundTrip(t *testing.T) {
	onDisk := transformText("Line1\nLine2", nil, stringsRules)
	if onDisk != `Line1\nLine2` {
		t.Fatalf("strings form = %q", onDisk)
	}
	if got := transformText(onDisk, nil, stringsdictRules); got != "Line1\nLine2" {
		t.Errorf("stringsdict form = %q, want literal line feed", got)
	}
}

func TestSubstitutionsApplyInOrder(t *testing.T) {
	subs := Substitutions{
		{From: "a", To: "b"},
		{From: "b", To: "c"},
		{From: "", To: "ignored"},
	}
	if got := subs.Apply("a-b"); got != "c-c" {
		t.Errorf("Apply = %q, want %q", got, "c-c")
	}
}

func TestLiteralRuleDoesNotExpand(t *testing.T) {
	r := literalRule("x", "$1")
	if got := r.apply("axb"); got != "a$1b" {
		t.Errorf("apply = %q, want %q", got, "a$1b")
	}
}

func TestSubstitutionsUnmarshalYAML(t *testing.T) {
	input := `
zeta: last
"{app}": Acme
alpha: first
`
	var subs Substitutions
	if err := yaml.Unmarshal([]byte(input), &subs); err != nil {
		t.Fatal(err)
	}
	want := Substitutions{
		{From: "zeta", To: "last"},
		{From: "{app}", To: "Acme"},
		{From: "alpha", To: "first"},
	}
	if diff := cmp.Diff(want, subs); diff != "" {
		t.Errorf("substitutions mismatch (-want +got):\n%s", diff)
	}

	if err := yaml.Unmarshal([]byte("- a\n- b\n"), &subs); err == nil {
		t.Error("expected error for a list")
	}
}

func TestParseSubstitution(t *testing.T) {
	tests := []struct {
		input   string
		want    Substitution
		wantErr bool
	}{
		{input: "{app}=Acme", want: Substitution{From: "{app}", To: "Acme"}},
		{input: "a=b=c", want: Substitution{From: "a", To: "b=c"}},
		{input: "gone=", want: Substitution{From: "gone", To: ""}},
		{input: "noequals", wantErr: true},
		{input: "=x", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := parseSubstitution(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Errorf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}
