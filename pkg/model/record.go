package model

import (
	"encoding/json"
	"slices"
)

// TermCourses lists the course codes completed in one term.
type TermCourses struct {
	Term    Term     `json:"term"`
	Courses []string `json:"courses"`
}

// PassedCourses records completed course codes per term, in term insertion order.
// A code is stored at most once and never removed.
type PassedCourses struct {
	terms []*TermCourses
	index map[string]Term
}

func NewPassedCourses() *PassedCourses {
	return &PassedCourses{index: make(map[string]Term)}
}

// Has reports whether code has been completed in any term.
func (p *PassedCourses) Has(code string) bool {
	_, ok := p.index[code]
	return ok
}

// TermOf returns the term in which code was completed.
func (p *PassedCourses) TermOf(code string) (Term, bool) {
	t, ok := p.index[code]
	return t, ok
}

// Add records code as completed in term. Returns false when code was already present.
func (p *PassedCourses) Add(term Term, code string) bool {
	if p.Has(code) {
		return false
	}
	if p.index == nil {
		p.index = make(map[string]Term)
	}
	tc := p.termCourses(term)
	tc.Courses = append(tc.Courses, code)
	p.index[code] = term
	return true
}

// Touch makes sure term exists even when nothing was passed in it.
func (p *PassedCourses) Touch(term Term) {
	p.termCourses(term)
}

func (p *PassedCourses) termCourses(term Term) *TermCourses {
	for _, tc := range p.terms {
		if tc.Term == term {
			return tc
		}
	}
	tc := &TermCourses{Term: term}
	p.terms = append(p.terms, tc)
	return tc
}

// Len returns the number of distinct completed codes.
func (p *PassedCourses) Len() int {
	return len(p.index)
}

// Terms returns a copy of the per-term records.
func (p *PassedCourses) Terms() []TermCourses {
	out := make([]TermCourses, 0, len(p.terms))
	for _, tc := range p.terms {
		out = append(out, TermCourses{Term: tc.Term, Courses: slices.Clone(tc.Courses)})
	}
	return out
}

// Codes returns every completed code in insertion order.
func (p *PassedCourses) Codes() []string {
	var codes []string
	for _, tc := range p.terms {
		codes = append(codes, tc.Courses...)
	}
	return codes
}

// Clone returns an independent copy.
func (p *PassedCourses) Clone() *PassedCourses {
	c := NewPassedCourses()
	for _, tc := range p.terms {
		c.Touch(tc.Term)
		for _, code := range tc.Courses {
			c.Add(tc.Term, code)
		}
	}
	return c
}

func (p *PassedCourses) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Terms())
}

func (p *PassedCourses) UnmarshalJSON(data []byte) error {
	var terms []TermCourses
	if err := json.Unmarshal(data, &terms); err != nil {
		return err
	}
	*p = *NewPassedCourses()
	for _, tc := range terms {
		p.Touch(tc.Term)
		for _, code := range tc.Courses {
			p.Add(tc.Term, code)
		}
	}
	return nil
}

// NextTerm derives the first term to plan from the recorded history.
// The last recorded year's semester count decides the next semester.
func (p *PassedCourses) NextTerm() Term {
	if len(p.terms) == 0 {
		return Term{Year: 1, Semester: FirstSemester}
	}
	lastYear := 0
	for _, tc := range p.terms {
		lastYear = max(lastYear, tc.Term.Year)
	}
	count := 0
	for _, tc := range p.terms {
		if tc.Term.Year == lastYear {
			count++
		}
	}
	switch count {
	case 0:
		return Term{Year: lastYear, Semester: FirstSemester}
	case 1, 2:
		return Term{Year: lastYear, Semester: count + 1}
	}
	return Term{Year: lastYear + 1, Semester: FirstSemester}
}

// StudentRecord is one term of a student's transcript with raw grades.
type StudentRecord struct {
	Term   Term    `json:"term"`
	Grades []Grade `json:"grades"`
}

type Grade struct {
	CourseCode string `json:"courseCode"`
	Grade      int    `json:"grade"`
}

// PassedFromRecords keeps every graded course at or above passingGrade.
func PassedFromRecords(records []StudentRecord, passingGrade int) *PassedCourses {
	p := NewPassedCourses()
	for _, r := range records {
		p.Touch(r.Term)
		for _, g := range r.Grades {
			if g.Grade >= passingGrade {
				p.Add(r.Term, g.CourseCode)
			}
		}
	}
	return p
}
