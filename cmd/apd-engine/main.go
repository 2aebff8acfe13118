// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the apd-engine CLI.
// apd-engine verifies first-appearance conjectures for Alternating Power
// Differences over several matrix families, in exact arithmetic.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the apd-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "apd-engine",
	Short: "Exact verification of APD first-appearance conjectures",
	Long: `apd-engine computes Alternating Power Differences: sign-weighted sums of
a permutation scalar raised to a power, over all permutations of {1..n}.
For each matrix family it finds the first degree where the sum stops
vanishing and checks the value against the conjectured closed form,
entirely in unbounded-precision arithmetic.

Use verify to run a verification sweep, families to list the supported
matrix families, and results to inspect stored runs.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./apd-engine.yaml or ~/.config/apd-engine/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("apd-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "apd-engine"))
		}
	}

	viper.SetEnvPrefix("APD_ENGINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
