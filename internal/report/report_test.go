// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/apd-engine/internal/engine"
	"github.com/pdiddy/apd-engine/internal/exact"
	"github.com/pdiddy/apd-engine/internal/family"
	"github.com/pdiddy/apd-engine/pkg/types"
)

func TestVanishingInterval(t *testing.T) {
	tests := []struct {
		from, to int
		want     string
	}{
		{0, 0, "None"},
		{1, 1, "1"},
		{1, 5, "1--5"},
		{2, 2, "2"},
		{0, 3, "None"}, // from=0 marks an empty run regardless of to
	}
	for _, tt := range tests {
		if got := VanishingInterval(tt.from, tt.to); got != tt.want {
			t.Errorf("VanishingInterval(%d, %d) = %q, want %q", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRows(t *testing.T) {
	want := family.Expectation{M1: 2, Value: exact.NewInt(6)}
	records := []engine.VerificationRecord{
		{
			SearchResult: engine.SearchResult{
				N: 3, Outcome: engine.OutcomeFound, M1: 2,
				APD: exact.NewInt(6), VanishingFrom: 1, VanishingTo: 1,
			},
			Expected: &want,
			Verified: true,
		},
		{
			SearchResult: engine.SearchResult{
				N: 4, Outcome: engine.OutcomeExhausted,
				VanishingFrom: 1, VanishingTo: 3,
			},
		},
	}

	rows := Rows(records)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	found := rows[0]
	if found.APD != "6" || found.Expected != "6" || found.ExpectedM1 != 2 {
		t.Errorf("found row = %+v", found)
	}
	if found.VanishingInterval != "1" || !found.Verified {
		t.Errorf("found row = %+v", found)
	}

	exhausted := rows[1]
	if exhausted.Outcome != types.OutcomeExhausted || exhausted.APD != "" {
		t.Errorf("exhausted row = %+v", exhausted)
	}
	if exhausted.VanishingInterval != "1--3" || exhausted.Verified {
		t.Errorf("exhausted row = %+v", exhausted)
	}
}

func sampleRun() types.RunRecord {
	return types.RunRecord{
		Family: "hilbert",
		NMax:   3,
		Records: []types.RecordRow{
			{N: 2, Outcome: types.OutcomeFound, M1: 1, APD: "1/3", VanishingInterval: "None"},
			{N: 3, Outcome: types.OutcomeFound, M1: 2, APD: "1/120", VanishingInterval: "1",
				ExpectedM1: 2, Expected: "1/120", Verified: true},
		},
	}
}

func TestFormatTable(t *testing.T) {
	var buf bytes.Buffer
	FormatTable(sampleRun(), &buf)
	out := buf.String()

	for _, want := range []string{"hilbert", "1/120", "None", "true", "2 sizes verified"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatJSON(sampleRun(), &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{`"family": "hilbert"`, `"apd": "1/120"`, `"verified": true`} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatLaTeXFractions(t *testing.T) {
	var buf bytes.Buffer
	FormatLaTeX(sampleRun(), types.ReportConfig{}, &buf)
	out := buf.String()

	for _, want := range []string{
		`\begin{table}[h]`,
		`\label{tab:hilbert-apd-verification}`,
		`\toprule`,
		`$\frac{1}{3}$`,
		`\checkmark \,$\frac{1}{120}$`,
		`\bottomrule`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("LaTeX output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatLaTeXLargeIntegers(t *testing.T) {
	run := types.RunRecord{
		Family: "multiplication",
		NMax:   7,
		Records: []types.RecordRow{
			{N: 4, Outcome: types.OutcomeFound, M1: 6, APD: "8640",
				VanishingInterval: "1--5", Verified: true},
			{N: 7, Outcome: types.OutcomeFound, M1: 21,
				APD:               "1271306132247080337408000000", // 21! * prod_{k=1}^{6} k!
				VanishingInterval: "1--20", Verified: true},
		},
	}

	var buf bytes.Buffer
	FormatLaTeX(run, types.ReportConfig{}, &buf)
	out := buf.String()

	if !strings.Contains(out, `\checkmark \,8,640`) {
		t.Errorf("small value should be digit-grouped:\n%s", out)
	}
	if !strings.Contains(out, `1.27130 \times 10^{27}`) {
		t.Errorf("large value should use scientific notation:\n%s", out)
	}
}

func TestFormatLaTeXExhausted(t *testing.T) {
	run := types.RunRecord{
		Family: "pascal",
		NMax:   2,
		Records: []types.RecordRow{
			{N: 2, Outcome: types.OutcomeExhausted, VanishingInterval: "1--2"},
		},
	}
	var buf bytes.Buffer
	FormatLaTeX(run, types.ReportConfig{}, &buf)
	if !strings.Contains(buf.String(), "N/A") {
		t.Errorf("exhausted rows should render N/A:\n%s", buf.String())
	}
}

func TestGroupDigits(t *testing.T) {
	tests := []struct{ in, want string }{
		{"0", "0"},
		{"999", "999"},
		{"1000", "1,000"},
		{"1234567", "1,234,567"},
		{"-8640", "-8,640"},
	}
	for _, tt := range tests {
		if got := groupDigits(tt.in); got != tt.want {
			t.Errorf("groupDigits(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSciNotation(t *testing.T) {
	tests := []struct {
		in     string
		digits int
		want   string
	}{
		{"1271306132247080337408000000", 6, `1.27130 \times 10^{27}`},
		{"-123456789", 3, `-1.23 \times 10^{8}`},
		{"5", 6, `5 \times 10^{0}`},
	}
	for _, tt := range tests {
		if got := sciNotation(tt.in, tt.digits); got != tt.want {
			t.Errorf("sciNotation(%s, %d) = %s, want %s", tt.in, tt.digits, got, tt.want)
		}
	}
}

func TestLabelSlug(t *testing.T) {
	tests := []struct{ in, want string }{
		{"identity", "identity"},
		{"shifted-grid(d=3)", "shifted-grid-d-3"},
		{"shifted-grid(d=n)", "shifted-grid-d-n"},
	}
	for _, tt := range tests {
		if got := labelSlug(tt.in); got != tt.want {
			t.Errorf("labelSlug(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}
