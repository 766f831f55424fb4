package csvio

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

// ExportSchedules formats the schedules into ScheduleCSVRow structs and
// writes them to the CSV file specified by the given path.
func ExportSchedules(schedules []model.Schedule, path string) error {
	rows := formatSchedules(schedules)

	// Replace file if exists
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open export file %s: %w", path, err)
	}
	defer out.Close()

	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write export file %s: %w", path, err)
	}
	return nil
}

// ReadExport parses rows written by ExportSchedules back into schedules.
func ReadExport(path string) ([]model.Schedule, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open export file %s: %w", path, err)
	}
	defer in.Close()

	rows := []*model.ScheduleCSVRow{}
	if err := gocsv.UnmarshalFile(in, &rows); err != nil {
		return nil, fmt.Errorf("parse export file %s: %w", path, err)
	}

	var schedules []model.Schedule
	for _, r := range rows {
		if n := len(schedules); n == 0 || schedules[n-1].Year != r.Year || schedules[n-1].Semester != r.Semester {
			schedules = append(schedules, model.Schedule{Year: r.Year, Semester: r.Semester})
		}
		s := &schedules[len(schedules)-1]
		if r.CourseCode == "" {
			continue
		}
		var meetings []model.Meeting
		if r.Day != "" {
			m, err := model.ParseMeeting(r.Day, r.Time)
			if err != nil {
				return nil, fmt.Errorf("parse export file %s: %w", path, err)
			}
			meetings = append(meetings, m)
		}
		if n := len(s.Courses); n > 0 && s.Courses[n-1].CourseCode == r.CourseCode && s.Courses[n-1].Section == r.Section {
			s.Courses[n-1].Meetings = append(s.Courses[n-1].Meetings, meetings...)
			continue
		}
		s.Courses = append(s.Courses, model.PlacedCourse{
			CourseCode: r.CourseCode,
			Section:    r.Section,
			CourseType: r.CourseType,
			Instructor: r.Instructor,
			Meetings:   meetings,
		})
	}
	return schedules, nil
}

// formatSchedules emits one row per meeting. Empty semesters keep a bare row so
// the term survives a round trip.
func formatSchedules(schedules []model.Schedule) []*model.ScheduleCSVRow {
	var formatted []*model.ScheduleCSVRow
	for _, s := range schedules {
		if len(s.Courses) == 0 {
			formatted = append(formatted, &model.ScheduleCSVRow{Year: s.Year, Semester: s.Semester})
			continue
		}
		for _, c := range s.Courses {
			for _, m := range c.Meetings {
				formatted = append(formatted, &model.ScheduleCSVRow{
					Year:       s.Year,
					Semester:   s.Semester,
					CourseCode: c.CourseCode,
					CourseType: c.CourseType,
					Section:    c.Section,
					Instructor: c.Instructor,
					Day:        m.Day,
					Time:       m.TimeRange(),
					Credits:    c.Credits(),
				})
			}
		}
	}
	return formatted
}
