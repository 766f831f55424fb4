package model

const (
	MaxRegularCredits = 18
	MaxSummerCredits  = 9
)

// SemesterPreference holds the student's wishes for one semester type.
type SemesterPreference struct {
	MinFreeDays int `json:"min_free_days" csv:"min_free_days"`
	MaxCredits  int `json:"max_credits" csv:"max_credits"`
}

// Preferences maps "first", "second" and "summer" to a SemesterPreference.
type Preferences map[string]SemesterPreference

// Clamp caps MaxCredits at 9 for summer and 18 otherwise. Negative values become 0.
func (p Preferences) Clamp() Preferences {
	out := make(Preferences, len(p))
	for name, pref := range p {
		limit := MaxRegularCredits
		if name == SemesterType(SummerSemester) {
			limit = MaxSummerCredits
		}
		pref.MaxCredits = max(0, min(pref.MaxCredits, limit))
		pref.MinFreeDays = max(0, pref.MinFreeDays)
		out[name] = pref
	}
	return out
}

// MaxCredits returns the clamped credit cap for a semester number.
// Missing preferences fall back to the cap itself.
func (p Preferences) MaxCredits(semester int) int {
	limit := MaxRegularCredits
	if semester == SummerSemester {
		limit = MaxSummerCredits
	}
	pref, ok := p[SemesterType(semester)]
	if !ok {
		return limit
	}
	return max(0, min(pref.MaxCredits, limit))
}

// MinFreeDays returns the free day wish for a semester number.
func (p Preferences) MinFreeDays(semester int) int {
	return max(0, p[SemesterType(semester)].MinFreeDays)
}
