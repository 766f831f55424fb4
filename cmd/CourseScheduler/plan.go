package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rhyrak/go-studyplan/internal/config"
	"github.com/rhyrak/go-studyplan/internal/csvio"
	"github.com/rhyrak/go-studyplan/internal/logger"
	"github.com/rhyrak/go-studyplan/internal/render"
	"github.com/rhyrak/go-studyplan/internal/scheduler"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

var planFlags struct {
	semesters     int
	output        string
	report        string
	noElectives   bool
	startYear     int
	startSemester int
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate schedules for the next semesters",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.IntVarP(&planFlags.semesters, "semesters", "n", 0, "number of semesters to plan (overrides config)")
	f.StringVarP(&planFlags.output, "output", "o", "", "schedule CSV export file (overrides config)")
	f.StringVar(&planFlags.report, "report", "", "text report file (overrides config)")
	f.BoolVar(&planFlags.noElectives, "no-electives", false, "skip the elective pass")
	f.IntVar(&planFlags.startYear, "start-year", 0, "first year to plan, derived from records when 0")
	f.IntVar(&planFlags.startSemester, "start-semester", 0, "first semester to plan, derived from records when 0")
}

func runPlan(cmd *cobra.Command, args []string) error {
	// Logs go to stderr so stdout only carries the rendered plan
	log := logger.NewTo("planner", cmd.ErrOrStderr())

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("semesters") {
		cfg.NumberOfSemesters = planFlags.semesters
	}
	if planFlags.output != "" {
		cfg.ExportFile = planFlags.output
	}
	if planFlags.report != "" {
		cfg.ReportFile = planFlags.report
	}
	if planFlags.noElectives {
		cfg.ElectivesEnabled = false
	}

	plan, err := csvio.LoadStudyPlan(cfg.StudyPlanFile, delimiter)
	if err != nil {
		return err
	}
	records, err := csvio.LoadStudentRecords(cfg.RecordsFile, delimiter)
	if err != nil {
		return err
	}
	electives, err := csvio.LoadElectives(cfg.ElectivesFile, delimiter)
	if err != nil {
		return err
	}
	catalog, err := csvio.LoadCatalogs(
		cfg.CatalogFile(model.FirstSemester),
		cfg.CatalogFile(model.SecondSemester),
		cfg.CatalogFile(model.SummerSemester),
	)
	if err != nil {
		return err
	}

	passed := model.PassedFromRecords(records, cfg.PassingGrade)
	total, done := scheduler.CreditSummary(plan, passed)
	log.Infof("study plan: %d credit hours, passed: %d credit hours", total, done)

	planner, err := scheduler.NewPlanner(scheduler.Input{
		StudyPlan:   plan,
		Electives:   electives,
		Catalog:     catalog,
		Preferences: cfg.Preferences,
	}, scheduler.WithLogger(log), scheduler.WithElectives(cfg.ElectivesEnabled))
	if err != nil {
		return err
	}

	start := model.Term{Year: planFlags.startYear, Semester: planFlags.startSemester}
	res, err := planner.Run(passed, start, cfg.NumberOfSemesters)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, render.StudyPlan(plan, passed, render.PlannedCodes(res.Schedules)))
	fmt.Fprintln(out, render.Schedules(res.Schedules))
	if !res.Valid {
		fmt.Fprintln(out, "Invalid schedule:")
	} else {
		fmt.Fprintln(out, "Passed all tests")
	}
	fmt.Fprintln(out, res.Report)

	if cfg.ExportFile != "" {
		if err := csvio.ExportSchedules(res.Schedules, cfg.ExportFile); err != nil {
			return err
		}
		log.Infof("schedules exported to %s", cfg.ExportFile)
	}
	if cfg.ReportFile != "" {
		if err := render.WriteReport(cfg.ReportFile, res.Schedules, res.Report); err != nil {
			return err
		}
	}
	return nil
}
