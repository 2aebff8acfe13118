// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/apd-engine/internal/report"
	"github.com/pdiddy/apd-engine/internal/store"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Inspect stored verification runs (list, show, export)",
	Long: `Results reads the SQLite results store written by verify --save.
Use subcommands to list runs, show one run in full, or export runs
to YAML or JSON.`,
}

// --- list subcommand ---

var resultsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored verification runs",
	RunE:  runResultsList,
}

func runResultsList(cmd *cobra.Command, args []string) error {
	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(context.Background(), queryOptsFromFlags(cmd))
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No stored runs.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-6s  %-24s  %-6s  %s\n", "ID", "Family", "n_max", "Started")
	fmt.Fprintln(out, strings.Repeat("-", 70))
	for _, run := range runs {
		fmt.Fprintf(out, "%-6d  %-24s  %-6d  %s\n",
			run.ID, run.Family, run.NMax, run.StartedAt.Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(out, "\n%d runs\n", len(runs))
	return nil
}

// --- show subcommand ---

var resultsShowCmd = &cobra.Command{
	Use:   "show [run-id]",
	Short: "Show one stored run with all records",
	Args:  cobra.ExactArgs(1),
	RunE:  runResultsShow,
}

func runResultsShow(cmd *cobra.Command, args []string) error {
	var id int64
	if _, err := fmt.Sscanf(args[0], "%d", &id); err != nil {
		return fmt.Errorf("invalid run ID %q", args[0])
	}

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.GetRun(context.Background(), id)
	if err != nil {
		return err
	}

	if latex, _ := cmd.Flags().GetBool("latex"); latex {
		report.FormatLaTeX(run, reportConfig(), cmd.OutOrStdout())
		return nil
	}
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return report.FormatJSON(run, cmd.OutOrStdout())
	}
	report.FormatTable(run, cmd.OutOrStdout())
	return nil
}

// --- export subcommand ---

var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored runs to YAML or JSON",
	RunE:  runResultsExport,
}

func runResultsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	st, err := store.Open(storeConfig(cmd))
	if err != nil {
		return err
	}
	defer st.Close()

	opts := queryOptsFromFlags(cmd)
	switch format {
	case "yaml", "":
		if err := st.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Exported to export.yaml")
	case "json":
		if err := st.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Exported to export.json")
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	return nil
}

// --- shared helpers ---

func queryOptsFromFlags(cmd *cobra.Command) store.QueryOptions {
	familyName, _ := cmd.Flags().GetString("family")
	limit, _ := cmd.Flags().GetInt("limit")
	return store.QueryOptions{Family: familyName, MaxResults: limit}
}

func init() {
	resultsCmd.PersistentFlags().String("results-dir", "", "results store directory (default: results)")
	resultsCmd.PersistentFlags().String("family", "", "filter by family identifier")
	resultsCmd.PersistentFlags().Int("limit", 0, "maximum runs (0 = store default)")

	resultsShowCmd.Flags().Bool("latex", false, "render a LaTeX table")
	resultsShowCmd.Flags().Bool("json", false, "render JSON")

	resultsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	resultsCmd.AddCommand(resultsListCmd)
	resultsCmd.AddCommand(resultsShowCmd)
	resultsCmd.AddCommand(resultsExportCmd)

	rootCmd.AddCommand(resultsCmd)
}
