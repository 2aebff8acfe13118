// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/apd-engine/pkg/types"
)

const (
	defaultSciDigits = 6
	defaultSciMinLen = 15
)

// FormatLaTeX writes a run as a booktabs tabular environment, following
// the layout of the published verification tables: vanishing interval,
// first appearance degree, and the exact value with a checkmark when it
// matched the closed form. Integers longer than the configured length
// are compressed to scientific notation for readability; the underlying
// verification is always exact.
func FormatLaTeX(run types.RunRecord, cfg types.ReportConfig, w io.Writer) {
	digits := cfg.SciNotationDigits
	if digits <= 0 {
		digits = defaultSciDigits
	}
	minLen := cfg.SciNotationMinLen
	if minLen <= 0 {
		minLen = defaultSciMinLen
	}

	fmt.Fprintln(w, `\begin{table}[h]`)
	fmt.Fprintln(w, `\centering`)
	fmt.Fprintf(w, `\caption{First Appearance Degree and Value for the %s Family (Verification Results)}`+"\n", latexEscape(run.Family))
	fmt.Fprintf(w, `\label{tab:%s-apd-verification}`+"\n", labelSlug(run.Family))
	fmt.Fprintln(w, `\begin{tabular}{@{}cccc@{}}`)
	fmt.Fprintln(w, `\toprule`)
	fmt.Fprintln(w, `$n$ & Vanishing Interval & $m_1$ & $\operatorname{APD}_{m_1}$ \\`)
	fmt.Fprintln(w, `\midrule`)

	for _, row := range run.Records {
		fmt.Fprintf(w, "%d & %s & %d & %s \\\\\n",
			row.N, row.VanishingInterval, row.M1, latexValue(row, digits, minLen))
	}

	fmt.Fprintln(w, `\bottomrule`)
	fmt.Fprintln(w, `\end{tabular}`)
	fmt.Fprintln(w, `\end{table}`)
}

// latexValue renders one APD cell: "N/A" when exhausted, a fraction for
// rationals, grouped digits or scientific notation for integers, with a
// leading checkmark when the closed form matched.
func latexValue(row types.RecordRow, digits, minLen int) string {
	if row.Outcome == types.OutcomeExhausted || row.APD == "" {
		return "N/A"
	}

	var cell string
	if num, den, ok := strings.Cut(row.APD, "/"); ok {
		cell = fmt.Sprintf(`$\frac{%s}{%s}$`, groupDigits(num), groupDigits(den))
	} else if len(strings.TrimPrefix(row.APD, "-")) >= minLen {
		cell = "$" + sciNotation(row.APD, digits) + "$"
	} else {
		cell = groupDigits(row.APD)
	}

	if row.Verified {
		cell = `\checkmark \,` + cell
	}
	return cell
}

// sciNotation compresses a decimal integer string to d significant
// digits in LaTeX scientific notation.
func sciNotation(s string, d int) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	exp := len(s) - 1
	mantissa := s[:1]
	if len(s) > 1 {
		rest := s[1:]
		if len(rest) > d-1 {
			rest = rest[:d-1]
		}
		mantissa += "." + rest
	}
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf(`%s%s \times 10^{%d}`, sign, mantissa, exp)
}

// groupDigits inserts thousands separators into a decimal integer string.
func groupDigits(s string) string {
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if len(s) <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// labelSlug derives a LaTeX label fragment from a family identifier,
// e.g. "shifted-grid(d=3)" -> "shifted-grid-d-3".
func labelSlug(family string) string {
	r := strings.NewReplacer("(", "-", ")", "", "=", "-", " ", "-")
	return strings.Trim(r.Replace(family), "-")
}

// latexEscape guards the few characters family identifiers may carry.
func latexEscape(s string) string {
	return strings.NewReplacer("_", `\_`, "&", `\&`, "#", `\#`).Replace(s)
}
