package scheduler

import (
	"errors"
	"fmt"

	"github.com/rhyrak/go-studyplan/internal/logger"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

var (
	ErrNoStudyPlan       = errors.New("study plan is empty")
	ErrNoCatalog         = errors.New("catalog is nil")
	ErrInvalidTerm       = errors.New("invalid term")
	ErrNegativeSemesters = errors.New("number of semesters must not be negative")
	ErrTooManySemesters  = fmt.Errorf("number of semesters must not exceed %d", MaxSemesters)
)

// MaxSemesters bounds a single planning run.
const MaxSemesters = 64

// Input bundles the immutable data a planning run works on.
type Input struct {
	StudyPlan   []model.StudyPlanEntry
	Electives   []model.Elective
	Catalog     *model.Catalog
	Preferences model.Preferences
}

// Option customizes a Planner.
type Option func(*Planner)

// WithLogger sets the logger used for deferral and progress messages.
func WithLogger(l logger.Logger) Option {
	return func(p *Planner) {
		if l != nil {
			p.log = l
		}
	}
}

// WithElectives toggles the elective pass that runs after the study plan pass.
func WithElectives(enabled bool) Option {
	return func(p *Planner) {
		p.electivesEnabled = enabled
	}
}

// Planner builds semester schedules with a greedy first-fit strategy.
type Planner struct {
	plan             []model.StudyPlanEntry
	electives        []model.Elective
	catalog          *model.Catalog
	prefs            model.Preferences
	prereqs          Prerequisites
	electivesEnabled bool
	log              logger.Logger
}

// State is the mutable part of a run: it is fed forward from one semester to the next.
type State struct {
	Passed    *model.PassedCourses
	Electives *model.ElectiveQueue
}

func NewPlanner(in Input, opts ...Option) (*Planner, error) {
	if len(in.StudyPlan) == 0 {
		return nil, ErrNoStudyPlan
	}
	if in.Catalog == nil {
		return nil, ErrNoCatalog
	}
	p := &Planner{
		plan:             in.StudyPlan,
		electives:        in.Electives,
		catalog:          in.Catalog,
		prefs:            in.Preferences.Clamp(),
		prereqs:          NewPrerequisites(in.StudyPlan, in.Electives),
		electivesEnabled: true,
		log:              logger.NopLogger{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Prerequisites returns the prerequisite index the planner resolves against.
func (p *Planner) Prerequisites() Prerequisites {
	return p.prereqs
}

// NewState prepares the run state from the historical passed courses. The passed
// set is copied, already passed electives are left out of the queue.
func (p *Planner) NewState(passed *model.PassedCourses) *State {
	if passed == nil {
		passed = model.NewPassedCourses()
	}
	st := &State{
		Passed:    passed.Clone(),
		Electives: model.NewElectiveQueue(p.electives, model.DependentCounts(p.plan, p.electives)),
	}
	for _, code := range st.Electives.Codes() {
		if st.Passed.Has(code) {
			st.Electives.Remove(code)
		}
	}
	return st
}

// Plan runs the semester planner numSemesters times starting at start and
// returns one Schedule per semester in order. State is updated in place.
func (p *Planner) Plan(start model.Term, numSemesters int, st *State) ([]model.Schedule, error) {
	if !start.Valid() {
		return nil, fmt.Errorf("%w: %+v", ErrInvalidTerm, start)
	}
	if numSemesters < 0 {
		return nil, ErrNegativeSemesters
	}
	if numSemesters > MaxSemesters {
		return nil, ErrTooManySemesters
	}
	schedules := make([]model.Schedule, 0, numSemesters)
	term := start
	for i := 0; i < numSemesters; i++ {
		before := st.Passed.Len()
		schedule := p.PlanSemester(term, st)
		p.log.Infof("%s: placed %d courses (%d credits), passed %d -> %d",
			term, len(schedule.Courses), schedule.Credits(), before, st.Passed.Len())
		schedules = append(schedules, schedule)
		term = term.Next()
	}
	return schedules, nil
}

// semester carries the running state of one PlanSemester pass.
type semester struct {
	term      model.Term
	placed    []model.PlacedCourse
	remaining int
}

// PlanSemester makes one pass over the study plan in plan order, then over the
// elective queue in priority order, and returns the semester's schedule.
// Placed codes are added to st.Passed under term and removed from st.Electives.
func (p *Planner) PlanSemester(term model.Term, st *State) model.Schedule {
	s := &semester{term: term, remaining: p.prefs.MaxCredits(term.Semester)}

	// Iterate over study plan
	for _, entry := range p.plan {
		if s.remaining <= 0 {
			p.log.Debugf("%s: credit budget exhausted", term)
			break
		}
		p.attempt(s, st, entry.CourseCode)
	}

	// Spend what is left on electives, highest dependents first
	if p.electivesEnabled {
		for _, code := range st.Electives.Codes() {
			if s.remaining <= 0 {
				break
			}
			if st.Passed.Has(code) {
				st.Electives.Remove(code)
				continue
			}
			p.attempt(s, st, code)
		}
	}

	return model.Schedule{Year: term.Year, Semester: term.Semester, Courses: s.placed}
}

// attempt tries to place one course code, backfilling one missing prerequisite layer if possible.
func (p *Planner) attempt(s *semester, st *State, code string) {
	// Skip course if it has been passed
	if st.Passed.Has(code) {
		return
	}
	res := Resolve(code, p.prereqs, st.Passed)
	switch {
	case res.Eligible:
		p.place(s, st, code)
	case res.Blocked:
		p.log.Debugf("%s: %s deferred, prerequisites %v are more than one layer away", s.term, code, p.prereqs.Of(code))
	default:
		for _, pre := range res.Backfill {
			if st.Passed.Has(pre) {
				continue
			}
			p.place(s, st, pre)
		}
		// Original course only once every prerequisite is in
		if Resolve(code, p.prereqs, st.Passed).Eligible {
			p.place(s, st, code)
		}
	}
}

// place picks a section for code and commits it to the semester and run state.
func (p *Planner) place(s *semester, st *State, code string) bool {
	candidates := p.catalog.SectionsFor(s.term.Semester, code)
	if len(candidates) == 0 {
		p.log.Debugf("%s: %s is not offered", s.term, code)
		return false
	}
	placed, ok := PickSection(candidates, s.placed, s.remaining)
	if !ok {
		p.log.Debugf("%s: no conflict-free section of %s within %d credits", s.term, code, s.remaining)
		return false
	}
	s.placed = append(s.placed, placed)
	s.remaining -= placed.Credits()
	st.Passed.Add(s.term, code)
	st.Electives.Remove(code)
	return true
}

// PickSection walks candidates in catalog order and returns the first one that
// has meetings, fits in budget and does not collide with placed.
func PickSection(candidates []*model.OfferedSection, placed []model.PlacedCourse, budget int) (model.PlacedCourse, bool) {
	for _, c := range candidates {
		// Sections without meetings are placeholders
		if len(c.Meetings) == 0 {
			continue
		}
		if model.CreditHours(c.CourseCode) > budget {
			continue
		}
		if conflictsWith(c.Meetings, placed) {
			continue
		}
		return c.Place(), true
	}
	return model.PlacedCourse{}, false
}
