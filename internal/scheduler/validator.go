package scheduler

import (
	"fmt"

	"github.com/rhyrak/go-studyplan/pkg/model"
)

// Weekdays are the day keys counted when looking for free days.
var Weekdays = []string{"M", "T", "W", "R", "F"}

// Validate checks generated schedules for time conflicts, credit overruns,
// prerequisite order and repeated courses. initial is the passed set before the run.
// Returns false and a message for invalid schedules. Free day wishes are reported
// but never invalidate a schedule.
func Validate(schedules []model.Schedule, initial *model.PassedCourses, prereqs Prerequisites, prefs model.Preferences) (bool, string) {
	var message string
	var hasCourseCollision bool = false
	var hasCreditOverrun bool = false
	var hasPrerequisiteViolation bool = false
	var hasDuplicate bool = false
	var missesFreeDays bool = false

	passed := model.NewPassedCourses()
	if initial != nil {
		passed = initial.Clone()
	}

	for _, schedule := range schedules {
		term := schedule.Term()

		for i := 0; i < len(schedule.Courses); i++ {
			for j := i + 1; j < len(schedule.Courses); j++ {
				c1, c2 := schedule.Courses[i], schedule.Courses[j]
				if conflictsWith(c1.Meetings, []model.PlacedCourse{c2}) {
					hasCourseCollision = true
					message += fmt.Sprintf("- %s: %s-%s overlaps %s-%s\n", term, c1.CourseCode, c1.Section, c2.CourseCode, c2.Section)
				}
			}
		}

		limit := prefs.MaxCredits(term.Semester)
		if credits := schedule.Credits(); credits > limit {
			hasCreditOverrun = true
			message += fmt.Sprintf("- %s: %d credits exceed the limit of %d\n", term, credits, limit)
		}

		for _, c := range schedule.Courses {
			for _, pre := range prereqs.Of(c.CourseCode) {
				if !passed.Has(pre) {
					hasPrerequisiteViolation = true
					message += fmt.Sprintf("- %s: %s placed before its prerequisite %s\n", term, c.CourseCode, pre)
				}
			}
			if !passed.Add(term, c.CourseCode) {
				hasDuplicate = true
				message += fmt.Sprintf("- %s: %s was already completed\n", term, c.CourseCode)
			}
		}

		used := schedule.Days()
		free := 0
		for _, d := range Weekdays {
			if !used[d] {
				free++
			}
		}
		if want := prefs.MinFreeDays(term.Semester); free < want {
			missesFreeDays = true
			message += fmt.Sprintf("- %s: %d free days, %d wished\n", term, free, want)
		}
	}

	header := status(!hasCourseCollision) + ": Course collision check.\n" +
		status(!hasCreditOverrun) + ": Credit limit check.\n" +
		status(!hasPrerequisiteViolation) + ": Prerequisite order check.\n" +
		status(!hasDuplicate) + ": Repeated course check.\n"
	if missesFreeDays {
		header += "[WARN]: Free day preference.\n"
	} else {
		header += "[  OK]: Free day preference.\n"
	}

	valid := !hasCourseCollision && !hasCreditOverrun && !hasPrerequisiteViolation && !hasDuplicate
	return valid, header + message
}

func status(ok bool) string {
	if ok {
		return "[  OK]"
	}
	return "[FAIL]"
}
