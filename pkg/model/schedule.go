package model

import "fmt"

const (
	FirstSemester  = 1
	SecondSemester = 2
	SummerSemester = 3
)

// Term identifies one semester of one study year.
type Term struct {
	Year     int `json:"year"`
	Semester int `json:"semester"`
}

// Valid reports whether the term has a positive year and a known semester.
func (t Term) Valid() bool {
	return t.Year > 0 && t.Semester >= FirstSemester && t.Semester <= SummerSemester
}

// Next advances first -> second -> summer -> first of the following year.
func (t Term) Next() Term {
	if t.Semester == SummerSemester {
		return Term{Year: t.Year + 1, Semester: FirstSemester}
	}
	return Term{Year: t.Year, Semester: t.Semester + 1}
}

// Type returns the semester type name used by preferences.
func (t Term) Type() string {
	return SemesterType(t.Semester)
}

func (t Term) String() string {
	return fmt.Sprintf("Year %d - Semester %d", t.Year, t.Semester)
}

// SemesterType maps 1, 2, 3 to "first", "second", "summer".
func SemesterType(semester int) string {
	switch semester {
	case FirstSemester:
		return "first"
	case SecondSemester:
		return "second"
	case SummerSemester:
		return "summer"
	}
	return ""
}

// Schedule is the course set generated for one semester.
type Schedule struct {
	Year     int            `json:"year"`
	Semester int            `json:"semester"`
	Courses  []PlacedCourse `json:"courses"`
}

// Term returns the term the schedule belongs to.
func (s *Schedule) Term() Term {
	return Term{Year: s.Year, Semester: s.Semester}
}

// Credits sums the credit hours of all placed courses.
func (s *Schedule) Credits() int {
	total := 0
	for i := range s.Courses {
		total += s.Courses[i].Credits()
	}
	return total
}

// Days returns the distinct meeting days used by the schedule.
func (s *Schedule) Days() map[string]bool {
	days := make(map[string]bool)
	for _, c := range s.Courses {
		for _, m := range c.Meetings {
			days[m.Day] = true
		}
	}
	return days
}

type ScheduleCSVRow struct {
	Year       int    `csv:"year"`
	Semester   int    `csv:"semester"`
	CourseCode string `csv:"course_code"`
	CourseType string `csv:"course_type"`
	Section    string `csv:"section"`
	Instructor string `csv:"instructor"`
	Day        string `csv:"day"`
	Time       string `csv:"time"`
	Credits    int    `csv:"credits"`
}
