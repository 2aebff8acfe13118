// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package engine

import (
	"context"
	"fmt"

	"github.com/pdiddy/apd-engine/internal/family"
)

// VerificationRecord is the engine's complete output for one n:
// the search result plus the comparison against the family's
// closed-form expectation, when one exists. Immutable once returned.
type VerificationRecord struct {
	SearchResult

	// Expected is the conjectured (m1, value); nil when the family has
	// no closed form for this n.
	Expected *family.Expectation

	// Verified reports whether both the degree and the value match the
	// expectation exactly. Always false when Expected is nil.
	Verified bool
}

// HasExpectation reports whether a closed-form prediction applies.
func (r VerificationRecord) HasExpectation() bool { return r.Expected != nil }

// Verified compares an observed search result against a closed-form
// expectation. Exact equality on both the degree and the value; no
// tolerance, no recomputation of either side.
func Verified(res SearchResult, want family.Expectation) bool {
	if res.Outcome != OutcomeFound || res.M1 != want.M1 {
		return false
	}
	return res.APD.Equal(want.Value)
}

// Verify runs the first-appearance search for every n in 2..nMax and
// returns the records in ascending n. On error the records computed for
// smaller n are returned alongside it; they remain valid.
func (e *Engine) Verify(ctx context.Context, nMax int, f family.Func) ([]VerificationRecord, error) {
	if nMax < 2 {
		return nil, fmt.Errorf("%w: verification requires n_max >= 2, got %d", ErrDomain, nMax)
	}

	records := make([]VerificationRecord, 0, nMax-1)
	for n := 2; n <= nMax; n++ {
		fmt.Fprintf(e.progress, "verifying %s n=%d...\n", f.Name(), n)

		res, err := e.Search(ctx, n, f)
		if err != nil {
			return records, fmt.Errorf("n=%d: %w", n, err)
		}

		rec := VerificationRecord{SearchResult: res}
		if want, ok := f.Expectation(n); ok {
			rec.Expected = &want
			rec.Verified = Verified(res, want)
		}
		records = append(records, rec)

		switch res.Outcome {
		case OutcomeFound:
			fmt.Fprintf(e.progress, "  n=%d: m1=%d APD=%s verified=%v\n", n, res.M1, res.APD, rec.Verified)
		case OutcomeExhausted:
			fmt.Fprintf(e.progress, "  n=%d: exhausted (no nonzero APD up to m=%d)\n", n, f.SearchBound(n))
		}
	}
	return records, nil
}
