// Copyright (c) 2025 Sensorq
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the sensorq client.
// It implements the subcommands for asking one-shot questions and for the
// interactive chat screen using the Cobra CLI framework, and handles
// configuration layering before a command runs.
package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "sensorq",
	Short: "Ask natural-language questions about your sensor data",
	Long: `sensorq is a terminal client for a sensor-analytics backend. You type a
question in plain language ("Which room had the highest temperature last
week?"), the backend analyzes the recorded sensor data, and the client renders
the answer: a summary, and a table or chart when the question calls for one.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Same convention as the backend: a .env in the working directory
		// may carry settings like SENSORQ_BACKEND_ORIGIN. Missing is fine.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("sensorq %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show client version information")

	rootCmd.PersistentFlags().String("backend", "", "Backend origin (e.g. http://localhost:8000)")
	rootCmd.PersistentFlags().Int("timeout", 0, "Request timeout in seconds")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show diagnostic details for failed requests")
}
