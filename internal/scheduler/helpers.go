package scheduler

import (
	"fmt"

	"github.com/rhyrak/go-studyplan/pkg/model"
)

type Configuration struct {
	StudyPlanFile     string            `json:"study_plan_file"`
	RecordsFile       string            `json:"records_file"`
	ElectivesFile     string            `json:"electives_file"`
	FirstCatalogFile  string            `json:"first_catalog_file"`
	SecondCatalogFile string            `json:"second_catalog_file"`
	SummerCatalogFile string            `json:"summer_catalog_file"`
	ExportFile        string            `json:"export_file"`
	ReportFile        string            `json:"report_file"`
	NumberOfSemesters int               `json:"number_of_semesters"`
	PassingGrade      int               `json:"passing_grade"`
	ElectivesEnabled  bool              `json:"electives_enabled"`
	Preferences       model.Preferences `json:"preferences"`
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		StudyPlanFile:     "./res/CEStudyPlan.csv",
		RecordsFile:       "./res/records.csv",
		ElectivesFile:     "./res/Electives.csv",
		FirstCatalogFile:  "./res/CourseBrowser1.json",
		SecondCatalogFile: "./res/CourseBrowser2.json",
		SummerCatalogFile: "./res/CourseBrowser3.json",
		ExportFile:        "schedule.csv",
		ReportFile:        "SuggestedCourses.txt",
		NumberOfSemesters: 3,
		PassingGrade:      60,
		ElectivesEnabled:  true,
		Preferences: model.Preferences{
			"first":  {MinFreeDays: 0, MaxCredits: model.MaxRegularCredits},
			"second": {MinFreeDays: 0, MaxCredits: model.MaxRegularCredits},
			"summer": {MinFreeDays: 0, MaxCredits: model.MaxSummerCredits},
		},
	}
}

// Validate checks mandatory fields and clamps preferences in place.
func (c *Configuration) Validate() error {
	if c.StudyPlanFile == "" {
		return fmt.Errorf("study_plan_file is required")
	}
	if c.NumberOfSemesters < 0 || c.NumberOfSemesters > MaxSemesters {
		return fmt.Errorf("number_of_semesters must be within 0-%d, got %d", MaxSemesters, c.NumberOfSemesters)
	}
	if c.PassingGrade < 0 || c.PassingGrade > 100 {
		return fmt.Errorf("passing_grade must be within 0-100, got %d", c.PassingGrade)
	}
	for name := range c.Preferences {
		switch name {
		case "first", "second", "summer":
		default:
			return fmt.Errorf("unknown semester type %q in preferences", name)
		}
	}
	c.Preferences = c.Preferences.Clamp()
	return nil
}

// CatalogFile returns the catalog path for a semester number.
func (c *Configuration) CatalogFile(semester int) string {
	switch semester {
	case model.FirstSemester:
		return c.FirstCatalogFile
	case model.SecondSemester:
		return c.SecondCatalogFile
	case model.SummerSemester:
		return c.SummerCatalogFile
	}
	return ""
}

// CreditSummary returns the credit hours of the whole study plan and the hours already passed.
func CreditSummary(plan []model.StudyPlanEntry, passed *model.PassedCourses) (int, int) {
	planHours := 0
	for _, e := range plan {
		planHours += model.CreditHours(e.CourseCode)
	}
	passedHours := 0
	for _, code := range passed.Codes() {
		passedHours += model.CreditHours(code)
	}
	return planHours, passedHours
}

func contains(s []string, e string) bool {
	for _, a := range s {
		if a == e {
			return true
		}
	}
	return false
}
