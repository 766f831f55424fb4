package scheduler

import "github.com/rhyrak/go-studyplan/pkg/model"

// Prerequisites maps a course code to its prerequisite codes.
type Prerequisites map[string][]string

// NewPrerequisites indexes study plan entries first. When a code is listed more
// than once the last entry wins. Electives only fill codes the plan does not list.
func NewPrerequisites(plan []model.StudyPlanEntry, electives []model.Elective) Prerequisites {
	p := make(Prerequisites, len(plan)+len(electives))
	for _, e := range plan {
		p[e.CourseCode] = e.Prerequisites
	}
	for _, e := range electives {
		if _, ok := p[e.CourseCode]; !ok {
			p[e.CourseCode] = e.Prerequisites
		}
	}
	return p
}

// Of returns the prerequisites of code. Unknown codes have none.
func (p Prerequisites) Of(code string) []string {
	return p[code]
}

// Resolution is the outcome of a prerequisite check for one course.
type Resolution struct {
	// Eligible is set when every prerequisite is already passed.
	Eligible bool
	// Backfill lists unmet prerequisites whose own prerequisites are all passed.
	Backfill []string
	// Blocked is set when an unmet prerequisite has unmet prerequisites itself.
	Blocked bool
}

// Resolve checks code against passed, looking exactly one level past its
// direct prerequisites.
func Resolve(code string, prereqs Prerequisites, passed *model.PassedCourses) Resolution {
	var unmet []string
	for _, pre := range prereqs.Of(code) {
		if !passed.Has(pre) && !contains(unmet, pre) {
			unmet = append(unmet, pre)
		}
	}
	if len(unmet) == 0 {
		return Resolution{Eligible: true}
	}
	for _, pre := range unmet {
		for _, deeper := range prereqs.Of(pre) {
			if !passed.Has(deeper) {
				return Resolution{Blocked: true}
			}
		}
	}
	return Resolution{Backfill: unmet}
}
