// Package render turns study plans and generated schedules into terminal text.
package render

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

var (
	passedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	inProgressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	headerStyle     = lipgloss.NewStyle().Bold(true)
	mutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

// dayOrder is the display order of meeting days. Unknown days follow, sorted.
var dayOrder = []string{"M", "T", "W", "R", "F"}

// StudyPlan lists the plan per year and semester. Passed courses are green and
// courses planned in this run (inProgress) are red.
func StudyPlan(plan []model.StudyPlanEntry, passed *model.PassedCourses, inProgress map[string]bool) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-5s%-10s%-5s", "Year", "Semester", "Courses")))
	b.WriteString("\n")

	var order []model.Term
	groups := make(map[model.Term][]string)
	for _, e := range plan {
		term := model.Term{Year: e.Year, Semester: e.Semester}
		if _, ok := groups[term]; !ok {
			order = append(order, term)
		}
		code := e.CourseCode
		switch {
		case passed != nil && passed.Has(code):
			code = passedStyle.Render(code)
		case inProgress[code]:
			code = inProgressStyle.Render(code)
		}
		groups[term] = append(groups[term], code)
	}
	for _, term := range order {
		fmt.Fprintf(&b, "%-5d%-10d%s\n", term.Year, term.Semester, strings.Join(groups[term], ", "))
	}
	return b.String()
}

// PlannedCodes collects every course code placed in the given schedules.
func PlannedCodes(schedules []model.Schedule) map[string]bool {
	codes := make(map[string]bool)
	for _, s := range schedules {
		for _, c := range s.Courses {
			codes[c.CourseCode] = true
		}
	}
	return codes
}

// WeeklySchedule prints one semester day by day with its classes sorted by time.
func WeeklySchedule(s model.Schedule) string {
	byDay := make(map[string][]string)
	for _, c := range s.Courses {
		for _, m := range c.Meetings {
			byDay[m.Day] = append(byDay[m.Day], fmt.Sprintf("%s: %s-%s-%s", m.TimeRange(), c.CourseCode, c.Instructor, c.Section))
		}
	}

	days := slices.Clone(dayOrder)
	var extra []string
	for d := range byDay {
		if !slices.Contains(dayOrder, d) {
			extra = append(extra, d)
		}
	}
	slices.Sort(extra)
	days = append(days, extra...)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Weekly Schedule for Year %d - Semester %d:", s.Year, s.Semester)))
	b.WriteString("\n-----------------\n")
	for _, d := range days {
		b.WriteString(d + ":\n")
		classes := byDay[d]
		if len(classes) == 0 {
			b.WriteString("  " + mutedStyle.Render("No classes scheduled") + "\n")
			continue
		}
		slices.Sort(classes)
		for _, c := range classes {
			b.WriteString("  " + c + "\n")
		}
	}
	fmt.Fprintf(&b, "Credits: %d\n", s.Credits())
	return b.String()
}

// Schedules renders every schedule, separated by blank lines.
func Schedules(schedules []model.Schedule) string {
	parts := make([]string, len(schedules))
	for i, s := range schedules {
		parts[i] = WeeklySchedule(s)
	}
	return strings.Join(parts, "\n")
}

// Report combines the schedule view and the validation report.
func Report(schedules []model.Schedule, validation string) string {
	return Schedules(schedules) + "\n" + validation
}

// WriteReport replaces the file at path with the plain text report.
func WriteReport(path string, schedules []model.Schedule, validation string) error {
	if err := os.WriteFile(path, []byte(Report(schedules, validation)), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
