package model

import "slices"

// Elective is an elective course and its prerequisite codes.
type Elective struct {
	Group         string   `json:"group"`
	CourseCode    string   `json:"courseCode"`
	Prerequisites []string `json:"prerequisites"`
}

// ElectivePriority pairs an elective code with the number of courses depending on it.
type ElectivePriority struct {
	CourseCode string `json:"courseCode"`
	Dependents int    `json:"dependents"`
}

// ElectiveQueue keeps electives sorted by dependents, descending.
// Ties keep the order in which electives were pushed.
type ElectiveQueue struct {
	items []ElectivePriority
}

// NewElectiveQueue builds the queue from electives and a dependency count map.
func NewElectiveQueue(electives []Elective, dependents map[string]int) *ElectiveQueue {
	q := &ElectiveQueue{}
	seen := make(map[string]bool, len(electives))
	for _, e := range electives {
		if seen[e.CourseCode] {
			continue
		}
		seen[e.CourseCode] = true
		q.items = append(q.items, ElectivePriority{CourseCode: e.CourseCode, Dependents: dependents[e.CourseCode]})
	}
	slices.SortStableFunc(q.items, func(a, b ElectivePriority) int {
		return b.Dependents - a.Dependents
	})
	return q
}

// Remove drops code from the queue. Returns false if it was not queued.
func (q *ElectiveQueue) Remove(code string) bool {
	i := slices.IndexFunc(q.items, func(p ElectivePriority) bool { return p.CourseCode == code })
	if i < 0 {
		return false
	}
	q.items = slices.Delete(q.items, i, i+1)
	return true
}

// Contains reports whether code is still queued.
func (q *ElectiveQueue) Contains(code string) bool {
	return slices.ContainsFunc(q.items, func(p ElectivePriority) bool { return p.CourseCode == code })
}

func (q *ElectiveQueue) Len() int {
	return len(q.items)
}

// Codes returns the queued codes in priority order.
func (q *ElectiveQueue) Codes() []string {
	codes := make([]string, len(q.items))
	for i, p := range q.items {
		codes[i] = p.CourseCode
	}
	return codes
}

// DependentCounts counts, for each code, how many plan and elective entries list it
// as a prerequisite.
func DependentCounts(plan []StudyPlanEntry, electives []Elective) map[string]int {
	counts := make(map[string]int)
	for _, e := range plan {
		for _, pre := range e.Prerequisites {
			counts[pre]++
		}
	}
	for _, e := range electives {
		for _, pre := range e.Prerequisites {
			counts[pre]++
		}
	}
	return counts
}
