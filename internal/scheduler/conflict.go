package scheduler

import "github.com/rhyrak/go-studyplan/pkg/model"

// Overlaps reports whether two meetings share a day and their half-open
// intervals [Start, End) intersect. Touching endpoints do not overlap.
func Overlaps(a, b model.Meeting) bool {
	return a.Day == b.Day && a.Start < b.End && b.Start < a.End
}

// conflictsWith reports whether any meeting collides with a meeting of an already placed course.
func conflictsWith(meetings []model.Meeting, placed []model.PlacedCourse) bool {
	for _, m := range meetings {
		for _, p := range placed {
			for _, pm := range p.Meetings {
				if Overlaps(m, pm) {
					return true
				}
			}
		}
	}
	return false
}
