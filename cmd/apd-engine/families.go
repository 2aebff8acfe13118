// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/apd-engine/internal/family"
)

// familyInfo describes one family for the listing: the scalar it sums
// along the permuted diagonal and the conjectured first appearance.
type familyInfo struct {
	name       string
	formula    string
	valueType  string
	bound      string
	conjecture string
}

var familyTable = []familyInfo{
	{family.Identity, "#{i : sigma(i) = i}", "integer", "n-1",
		"m1 = n-1, APD = n!"},
	{family.Circulant, "Tr(C_n P_sigma), C_n[i,j] = ((j+i) mod n)+1", "integer", "n-1",
		"observed only (no closed form)"},
	{family.ShiftedGrid, "sum_i (sigma(i) + (i-1)d)^2, d >= 1 or d = n", "integer", "T_{n-1}",
		"m1 = T_{n-1}, APD = (2d)^{T_{n-1}} T_{n-1}! prod k!"},
	{family.Hilbert, "sum_i 1/(i + sigma(i) - 1)", "rational", "n",
		"m1 = n-1, APD = det(H_n) n n!  (n >= 3)"},
	{family.Multiplication, "sum_i i sigma(i)", "integer", "T_{n-1}",
		"m1 = T_{n-1}, APD = T_{n-1}! prod k!"},
	{family.Vandermonde, "sum_i i^(sigma(i)-1)", "integer", "n-1",
		"m1 = n-1, APD = (n-1)! prod k!"},
	{family.Pascal, "sum_i C(i+sigma(i)-2, i-1)", "integer", "n",
		"observed only (no closed form)"},
}

var familiesCmd = &cobra.Command{
	Use:   "families",
	Short: "List supported matrix families and their conjectures",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-16s  %-44s  %-8s  %-8s  %s\n",
			"Family", "f(sigma)", "Values", "Bound", "Conjecture")
		fmt.Fprintln(out, strings.Repeat("-", 130))
		for _, fi := range familyTable {
			fmt.Fprintf(out, "%-16s  %-44s  %-8s  %-8s  %s\n",
				fi.name, fi.formula, fi.valueType, fi.bound, fi.conjecture)
		}
		fmt.Fprintln(out, "\nT_{n-1} = n(n-1)/2; prod k! runs over k = 1..n-1.")
	},
}

func init() {
	rootCmd.AddCommand(familiesCmd)
}
