// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/apd-engine/internal/engine"
	"github.com/pdiddy/apd-engine/internal/family"
	"github.com/pdiddy/apd-engine/internal/report"
	"github.com/pdiddy/apd-engine/internal/store"
	"github.com/pdiddy/apd-engine/pkg/types"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run a verification sweep for one matrix family",
	Long: `Verify computes APD_m for n = 2 up to --n-max and reports, per n, the
vanishing interval, the first appearance degree m1, the exact value
APD_{m1}, and whether both match the family's conjectured closed form.

The permutation space is n!; the run is refused when n! exceeds the
configured budget rather than silently truncated. Interrupting with
Ctrl-C aborts cleanly, keeping results for sizes already finished.`,
	Example: `  apd-engine verify --family identity --n-max 8
  apd-engine verify --family shifted-grid --shift 3 --n-max 7 --latex
  apd-engine verify --family shifted-grid --natural --n-max 6 --save
  apd-engine verify --family hilbert --n-max 7 --json`,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	spec, err := familySpecFromFlags(cmd)
	if err != nil {
		return err
	}
	f, err := family.New(spec)
	if err != nil {
		return err
	}

	nMax, _ := cmd.Flags().GetInt("n-max")
	quiet, _ := cmd.Flags().GetBool("quiet")

	progress := cmd.ErrOrStderr()
	if quiet {
		progress = nil
	}
	eng := engine.New(engineConfig(cmd), progress)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	started := time.Now()
	records, err := eng.Verify(ctx, nMax, f)
	run := types.RunRecord{
		Family:    f.Name(),
		NMax:      nMax,
		StartedAt: started,
		Records:   report.Rows(records),
	}
	if err != nil {
		// Records for smaller n are still valid; show them before failing.
		if len(run.Records) > 0 {
			report.FormatTable(run, cmd.OutOrStdout())
		}
		return err
	}

	if err := renderRun(cmd, run); err != nil {
		return err
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		st, err := store.Open(storeConfig(cmd))
		if err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveRun(ctx, run)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved run %d\n", id)
	}
	return nil
}

func renderRun(cmd *cobra.Command, run types.RunRecord) error {
	out := cmd.OutOrStdout()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return report.FormatJSON(run, out)
	}
	if latex, _ := cmd.Flags().GetBool("latex"); latex {
		report.FormatLaTeX(run, reportConfig(), out)
		return nil
	}
	report.FormatTable(run, out)
	return nil
}

// familySpecFromFlags builds the family spec from --family, --shift, and
// --natural. Parameter validation happens in family.New.
func familySpecFromFlags(cmd *cobra.Command) (family.Spec, error) {
	name, _ := cmd.Flags().GetString("family")
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return family.Spec{}, fmt.Errorf("--family is required: one of %s", strings.Join(family.Names(), ", "))
	}
	spec := family.Spec{Kind: name}
	if name == family.ShiftedGrid {
		spec.NaturalShift, _ = cmd.Flags().GetBool("natural")
		spec.Shift, _ = cmd.Flags().GetInt("shift")
	}
	return spec, nil
}

// engineConfig merges flags over the viper-loaded config.
func engineConfig(cmd *cobra.Command) types.EngineConfig {
	cfg := types.EngineConfig{
		Workers:         viper.GetInt("engine.workers"),
		MaxPermutations: viper.GetInt64("engine.max_permutations"),
		CacheLimit:      viper.GetInt64("engine.cache_limit"),
	}
	if workers, _ := cmd.Flags().GetInt("workers"); workers > 0 {
		cfg.Workers = workers
	}
	if budget, _ := cmd.Flags().GetInt64("max-permutations"); budget > 0 {
		cfg.MaxPermutations = budget
	}
	return cfg
}

func storeConfig(cmd *cobra.Command) types.StoreConfig {
	cfg := types.StoreConfig{
		ResultsDir: viper.GetString("store.results_dir"),
		MaxResults: viper.GetInt("store.max_results"),
	}
	if dir, _ := cmd.Flags().GetString("results-dir"); dir != "" {
		cfg.ResultsDir = dir
	}
	return cfg
}

func reportConfig() types.ReportConfig {
	return types.ReportConfig{
		SciNotationDigits: viper.GetInt("report.sci_notation_digits"),
		SciNotationMinLen: viper.GetInt("report.sci_notation_min_len"),
	}
}

func init() {
	verifyCmd.Flags().String("family", "", "matrix family: "+strings.Join(family.Names(), ", "))
	verifyCmd.Flags().Int("n-max", 6, "largest matrix size to verify (n runs from 2)")
	verifyCmd.Flags().Int("shift", 1, "shift distance d for shifted-grid")
	verifyCmd.Flags().Bool("natural", false, "shifted-grid natural mode (d = n)")
	verifyCmd.Flags().Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
	verifyCmd.Flags().Int64("max-permutations", 0, "permutation budget per sweep (0 = config/default)")
	verifyCmd.Flags().Bool("latex", false, "render a LaTeX table instead of text")
	verifyCmd.Flags().Bool("json", false, "render JSON instead of text")
	verifyCmd.Flags().Bool("save", false, "save the run to the results store")
	verifyCmd.Flags().String("results-dir", "", "results store directory (default: results)")
	verifyCmd.Flags().Bool("quiet", false, "suppress per-n progress output")

	rootCmd.AddCommand(verifyCmd)
}
