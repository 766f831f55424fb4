package scheduler

import (
	"testing"

	"github.com/rhyrak/go-studyplan/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name       string
		day1, t1   string
		day2, t2   string
		wantResult bool
	}{
		{"partial overlap", "M", "09:00-09:50", "M", "09:30-10:20", true},
		{"touching endpoints", "M", "09:00-09:50", "M", "09:50-10:40", false},
		{"different days", "M", "09:00-09:50", "T", "09:00-09:50", false},
		{"contained", "W", "10:00-12:00", "W", "10:30-11:00", true},
		{"identical", "R", "13:00-14:15", "R", "13:00-14:15", true},
		{"spaced source format", "F", "08:00 - 09:15", "F", "09:00 - 09:50", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := meeting(t, tc.day1, tc.t1)
			b := meeting(t, tc.day2, tc.t2)
			assert.Equal(t, tc.wantResult, Overlaps(a, b))
			assert.Equal(t, Overlaps(a, b), Overlaps(b, a), "overlap must be symmetric")
		})
	}
}

func TestConflictsWith(t *testing.T) {
	placed := []model.PlacedCourse{
		section(t, "CMPE1311", "1", "M 09:00-09:50", "W 09:00-09:50").Place(),
		section(t, "MATH1411", "2", "T 11:00-12:15").Place(),
	}
	assert.True(t, conflictsWith(section(t, "PHYS1311", "1", "T 12:00-13:00").Meetings, placed))
	assert.False(t, conflictsWith(section(t, "PHYS1311", "2", "T 12:15-13:00", "F 09:00-09:50").Meetings, placed))
	assert.False(t, conflictsWith(section(t, "PHYS1311", "3", "M 10:00-10:50").Meetings, nil))
}
