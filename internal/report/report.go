// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report renders verification runs for human consumption: a
// plain-text table, indented JSON, and a booktabs LaTeX table. The
// engine emits structured exact values only; all formatting lives here.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/apd-engine/internal/engine"
	"github.com/pdiddy/apd-engine/pkg/types"
)

// VanishingInterval renders a vanishing run for display: "None" for an
// empty run, a single degree, or "a--b".
func VanishingInterval(from, to int) string {
	switch {
	case from == 0 || to < from:
		return "None"
	case from == to:
		return strconv.Itoa(from)
	default:
		return fmt.Sprintf("%d--%d", from, to)
	}
}

// Rows converts engine records into their serializable display form.
func Rows(records []engine.VerificationRecord) []types.RecordRow {
	rows := make([]types.RecordRow, 0, len(records))
	for _, rec := range records {
		row := types.RecordRow{
			N:                 rec.N,
			Outcome:           types.RunOutcome(rec.Outcome),
			M1:                rec.M1,
			VanishingInterval: VanishingInterval(rec.VanishingFrom, rec.VanishingTo),
			Verified:          rec.Verified,
		}
		if rec.APD != nil {
			row.APD = rec.APD.String()
		}
		if rec.Expected != nil {
			row.ExpectedM1 = rec.Expected.M1
			row.Expected = rec.Expected.Value.String()
		}
		rows = append(rows, row)
	}
	return rows
}

// FormatTable writes a run as a human-readable table.
func FormatTable(run types.RunRecord, w io.Writer) {
	fmt.Fprintf(w, "Family: %s (n = 2..%d)\n\n", run.Family, run.NMax)
	fmt.Fprintf(w, "%-4s  %-18s  %-4s  %-30s  %-30s  %s\n",
		"n", "Vanishing", "m1", "APD_m1", "Expected", "Verified")
	fmt.Fprintln(w, strings.Repeat("-", 110))

	for _, row := range run.Records {
		apd := row.APD
		if row.Outcome == types.OutcomeExhausted {
			apd = "N/A"
		}
		expected := row.Expected
		verified := fmt.Sprintf("%v", row.Verified)
		if expected == "" {
			expected = "-"
			verified = "n/a"
		}
		fmt.Fprintf(w, "%-4d  %-18s  %-4d  %-30s  %-30s  %s\n",
			row.N, row.VanishingInterval, row.M1,
			clip(apd, 30), clip(expected, 30), verified)
	}
	fmt.Fprintf(w, "\n%d sizes verified\n", len(run.Records))
}

// FormatJSON writes a run as indented JSON.
func FormatJSON(run types.RunRecord, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(run)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
