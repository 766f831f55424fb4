package scheduler

import (
	"strings"
	"testing"

	"github.com/rhyrak/go-studyplan/pkg/model"
	"github.com/stretchr/testify/require"
)

// section builds an offered section from "DAY HH:MM-HH:MM" meeting strings.
func section(t *testing.T, code, sec string, meetings ...string) *model.OfferedSection {
	t.Helper()
	s := &model.OfferedSection{CourseCode: code, Section: sec, CourseType: "LEC", Instructor: "Staff"}
	for _, m := range meetings {
		day, tr, ok := strings.Cut(m, " ")
		require.True(t, ok, "bad meeting %q", m)
		parsed, err := model.ParseMeeting(day, tr)
		require.NoError(t, err)
		s.Meetings = append(s.Meetings, parsed)
	}
	return s
}

func meeting(t *testing.T, day, tr string) model.Meeting {
	t.Helper()
	m, err := model.ParseMeeting(day, tr)
	require.NoError(t, err)
	return m
}

func entry(year, sem int, code string, pre ...string) model.StudyPlanEntry {
	return model.StudyPlanEntry{Year: year, Semester: sem, CourseCode: code, Prerequisites: pre}
}

func prefs(first, second, summer int) model.Preferences {
	return model.Preferences{
		"first":  {MaxCredits: first},
		"second": {MaxCredits: second},
		"summer": {MaxCredits: summer},
	}
}

func codes(s model.Schedule) []string {
	out := make([]string, len(s.Courses))
	for i, c := range s.Courses {
		out[i] = c.CourseCode
	}
	return out
}
