package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-studyplan/internal/csvio"
	"github.com/rhyrak/go-studyplan/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show [schedule.csv]",
	Short: "Print a previously exported schedule as a weekly view",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "schedule.csv"
		if len(args) == 1 {
			path = args[0]
		}
		schedules, err := csvio.ReadExport(path)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), render.Schedules(schedules))
		return nil
	},
}
