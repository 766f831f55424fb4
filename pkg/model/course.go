package model

import (
	"slices"
	"strconv"
)

// StudyPlanEntry is one course of the degree study plan.
type StudyPlanEntry struct {
	Year          int      `csv:"Year" json:"year"`
	Semester      int      `csv:"Semester" json:"semester"`
	CourseCode    string   `csv:"Course_Code" json:"courseCode"`
	Prerequisites []string `csv:"-" json:"prerequisites"`
}

// OfferedSection is a catalog section with fixed meeting times.
type OfferedSection struct {
	CourseCode string    `json:"courseCode"`
	Section    string    `json:"section"`
	CourseType string    `json:"courseType"`
	Instructor string    `json:"instructor"`
	Meetings   []Meeting `json:"meetings"`
}

// PlacedCourse is a section owned by exactly one generated Schedule.
type PlacedCourse struct {
	CourseCode string    `json:"courseCode"`
	Section    string    `json:"section"`
	CourseType string    `json:"courseType"`
	Instructor string    `json:"instructor"`
	Meetings   []Meeting `json:"meetings"`
}

// Place copies the section into a PlacedCourse.
func (s *OfferedSection) Place() PlacedCourse {
	return PlacedCourse{
		CourseCode: s.CourseCode,
		Section:    s.Section,
		CourseType: s.CourseType,
		Instructor: s.Instructor,
		Meetings:   slices.Clone(s.Meetings),
	}
}

// Credits returns the credit hours of the placed course.
func (c *PlacedCourse) Credits() int {
	return CreditHours(c.CourseCode)
}

// CreditHours reads the credit value encoded as the 6th character of a course code.
// Short codes and non-digit characters carry no credit.
func CreditHours(code string) int {
	if len(code) < 6 {
		return 0
	}
	h, err := strconv.Atoi(code[5:6])
	if err != nil {
		return 0
	}
	return h
}

// Catalog holds the offered sections of each semester type in catalog order.
type Catalog struct {
	First  []*OfferedSection `json:"first"`
	Second []*OfferedSection `json:"second"`
	Summer []*OfferedSection `json:"summer"`
}

// Sections returns the offered sections for the given semester number (1, 2 or 3).
func (c *Catalog) Sections(semester int) []*OfferedSection {
	switch semester {
	case 1:
		return c.First
	case 2:
		return c.Second
	case 3:
		return c.Summer
	}
	return nil
}

// SectionsFor returns the sections of one course code for a semester type.
func (c *Catalog) SectionsFor(semester int, code string) []*OfferedSection {
	var found []*OfferedSection
	for _, s := range c.Sections(semester) {
		if s.CourseCode == code {
			found = append(found, s)
		}
	}
	return found
}
