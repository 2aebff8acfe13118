// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// RunOutcome mirrors the engine's search outcome in serializable form.
type RunOutcome string

const (
	OutcomeFound     RunOutcome = "found"
	OutcomeExhausted RunOutcome = "exhausted"
)

// RecordRow is the serializable form of one verification record. Exact
// values are carried as decimal strings ("p/q" for non-integral
// rationals) so no precision is lost across YAML, JSON, or SQLite.
type RecordRow struct {
	// N is the matrix size.
	N int `json:"n" yaml:"n"`

	// Outcome is "found" or "exhausted".
	Outcome RunOutcome `json:"outcome" yaml:"outcome"`

	// M1 is the first appearance degree; 0 when exhausted.
	M1 int `json:"m1" yaml:"m1"`

	// APD is the exact value at M1, empty when exhausted.
	APD string `json:"apd,omitempty" yaml:"apd,omitempty"`

	// VanishingInterval is the display form of the vanishing run:
	// "None", a single degree, or "a--b".
	VanishingInterval string `json:"vanishing_interval" yaml:"vanishing_interval"`

	// ExpectedM1 and Expected hold the closed-form prediction; zero and
	// empty when the family has none for this n.
	ExpectedM1 int    `json:"expected_m1,omitempty" yaml:"expected_m1,omitempty"`
	Expected   string `json:"expected,omitempty" yaml:"expected,omitempty"`

	// Verified is true when both degree and value matched the prediction.
	Verified bool `json:"verified" yaml:"verified"`
}

// RunRecord is a completed verification run: one family, sizes 2..NMax.
type RunRecord struct {
	// ID is assigned by the store; zero until persisted.
	ID int64 `json:"id,omitempty" yaml:"id,omitempty"`

	// Family is the family identifier including parameters
	// (e.g. "shifted-grid(d=3)").
	Family string `json:"family" yaml:"family"`

	// NMax is the largest size verified.
	NMax int `json:"n_max" yaml:"n_max"`

	// StartedAt is the wall-clock start of the run.
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Records holds one row per n, ascending.
	Records []RecordRow `json:"records" yaml:"records"`
}
