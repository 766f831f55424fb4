package scheduler

import "github.com/rhyrak/go-studyplan/pkg/model"

// Result is the outcome of a full planning run.
type Result struct {
	Start     model.Term           `json:"start"`
	Schedules []model.Schedule     `json:"schedules"`
	Passed    *model.PassedCourses `json:"passed"`
	Report    string               `json:"report"`
	Valid     bool                 `json:"valid"`
}

// Run plans numSemesters semesters from start on top of the historical passed
// set and validates the outcome. A zero start is derived from passed.
func (p *Planner) Run(passed *model.PassedCourses, start model.Term, numSemesters int) (*Result, error) {
	if passed == nil {
		passed = model.NewPassedCourses()
	}
	if start == (model.Term{}) {
		start = passed.NextTerm()
	}
	st := p.NewState(passed)
	schedules, err := p.Plan(start, numSemesters, st)
	if err != nil {
		return nil, err
	}
	valid, report := Validate(schedules, passed, p.prereqs, p.prefs)
	if !valid {
		p.log.Warnf("generated schedules failed validation:\n%s", report)
	}
	return &Result{
		Start:     start,
		Schedules: schedules,
		Passed:    st.Passed,
		Report:    report,
		Valid:     valid,
	}, nil
}
