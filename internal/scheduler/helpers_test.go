package scheduler

import (
	"testing"

	"github.com/rhyrak/go-studyplan/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationValidateClampsPreferences(t *testing.T) {
	cfg := NewDefaultConfiguration()
	cfg.Preferences = model.Preferences{
		"first":  {MaxCredits: 21, MinFreeDays: 1},
		"summer": {MaxCredits: 12},
	}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 18, cfg.Preferences["first"].MaxCredits)
	assert.Equal(t, 1, cfg.Preferences["first"].MinFreeDays)
	assert.Equal(t, 9, cfg.Preferences["summer"].MaxCredits)
}

func TestConfigurationValidateRejects(t *testing.T) {
	cases := map[string]func(*Configuration){
		"no study plan":      func(c *Configuration) { c.StudyPlanFile = "" },
		"negative semesters": func(c *Configuration) { c.NumberOfSemesters = -1 },
		"too many semesters": func(c *Configuration) { c.NumberOfSemesters = MaxSemesters + 1 },
		"grade out of range": func(c *Configuration) { c.PassingGrade = 101 },
		"unknown semester":   func(c *Configuration) { c.Preferences["winter"] = model.SemesterPreference{} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := NewDefaultConfiguration()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCatalogFile(t *testing.T) {
	cfg := NewDefaultConfiguration()
	assert.Equal(t, cfg.FirstCatalogFile, cfg.CatalogFile(1))
	assert.Equal(t, cfg.SecondCatalogFile, cfg.CatalogFile(2))
	assert.Equal(t, cfg.SummerCatalogFile, cfg.CatalogFile(3))
	assert.Empty(t, cfg.CatalogFile(4))
}

func TestCreditSummary(t *testing.T) {
	plan := []model.StudyPlanEntry{entry(1, 1, "MATH1411"), entry(1, 1, "CMPE1311"), entry(1, 2, "LAB")}
	passed := model.NewPassedCourses()
	passed.Add(model.Term{Year: 1, Semester: 1}, "MATH1411")

	planned, done := CreditSummary(plan, passed)
	assert.Equal(t, 7, planned)
	assert.Equal(t, 4, done)
}
