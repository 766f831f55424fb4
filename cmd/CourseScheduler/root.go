package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Input files use a comma delimiter.
const delimiter = ','

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "CourseScheduler",
	Short:        "Multi-semester course schedule planner",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// SP_ overrides may live in a local .env file
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "configuration file (yaml or json)")
	rootCmd.AddCommand(planCmd, showCmd)
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }
