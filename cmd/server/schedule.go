package main

import (
	"github.com/rhyrak/go-studyplan/internal/logger"
	"github.com/rhyrak/go-studyplan/internal/scheduler"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

// planRequest is the JSON body of POST /plan. Zero semesters, a missing
// passing grade or missing preferences fall back to the default configuration.
type planRequest struct {
	StudyPlan    []model.StudyPlanEntry `json:"studyPlan" binding:"required"`
	Records      []model.StudentRecord  `json:"records"`
	Electives    []model.Elective       `json:"electives"`
	Catalog      model.Catalog          `json:"catalog"`
	Preferences  model.Preferences      `json:"preferences"`
	Semesters    int                    `json:"semesters"`
	Start        *model.Term            `json:"start"`
	NoElectives  bool                   `json:"noElectives"`
	PassingGrade *int                   `json:"passingGrade"`
}

// createSchedules runs the planner on the request and validates the outcome.
func createSchedules(req *planRequest, log logger.Logger) (*scheduler.Result, error) {
	defaults := scheduler.NewDefaultConfiguration()
	grade := defaults.PassingGrade
	if req.PassingGrade != nil {
		grade = *req.PassingGrade
	}
	prefs := req.Preferences
	if prefs == nil {
		prefs = defaults.Preferences
	}
	semesters := req.Semesters
	if semesters == 0 {
		semesters = defaults.NumberOfSemesters
	}
	if semesters > scheduler.MaxSemesters {
		return nil, scheduler.ErrTooManySemesters
	}

	planner, err := scheduler.NewPlanner(scheduler.Input{
		StudyPlan:   req.StudyPlan,
		Electives:   req.Electives,
		Catalog:     &req.Catalog,
		Preferences: prefs,
	}, scheduler.WithLogger(log), scheduler.WithElectives(!req.NoElectives))
	if err != nil {
		return nil, err
	}

	var start model.Term
	if req.Start != nil {
		start = *req.Start
		if !start.Valid() {
			return nil, scheduler.ErrInvalidTerm
		}
	}
	return planner.Run(model.PassedFromRecords(req.Records, grade), start, semesters)
}
