package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// checkReport summarizes how the terms would be filtered by each output.
type checkReport struct {
	Strings         int      `json:"strings"`
	Plurals         int      `json:"plurals"`
	Contexts        int      `json:"contexts"`
	Android         int      `json:"android"`
	Empty           []string `json:"empty"`
	MissingContexts int      `json:"missingContexts"`
}

func newCheckReport(terms []Term, opts Options) checkReport {
	_, strs := filterStrings(terms, opts)
	_, plurals := filterPlurals(terms, opts)
	_, contexts := filterContexts(terms)

	empty := strs.empty
	if empty == nil {
		empty = []string{}
	}
	return checkReport{
		Strings:         strs.processed,
		Plurals:         plurals.processed,
		Contexts:        contexts.processed,
		Android:         strs.android,
		Empty:           empty,
		MissingContexts: contexts.missing,
	}
}

// reportCheck runs every filter over terms without writing files and
// prints the result. Terms with an empty value fail the check.
func reportCheck(w io.Writer, terms []Term, opts Options, format string) error {
	report := newCheckReport(terms, opts)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	case "text":
		printCount := func(label string, count int) {
			fmt.Fprintf(w, "  %-30s %3d\n", label+":", count)
		}
		printCount("strings processed", report.Strings)
		printCount("plurals processed", report.Plurals)
		printCount("contexts processed", report.Contexts)
		printCount("android terms filtered", report.Android)
		printCount("terms without context", report.MissingContexts)

		status := "OK"
		if len(report.Empty) > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(w, "  %-30s %3d  %s\n", "empty values:", len(report.Empty), status)
		for _, term := range report.Empty {
			fmt.Fprintf(w, "    - %q\n", term)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}

	if len(report.Empty) > 0 {
		return fmt.Errorf("checks failed: %d empty value(s)", len(report.Empty))
	}
	if format == "text" {
		fmt.Fprintln(w, "All checks passed.")
	}
	return nil
}
