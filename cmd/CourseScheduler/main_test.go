package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestPlanAndShow(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "plan.csv", "Year,Semester,Course_Code,Prerequisites\n1,1,MATH1411\n1,1,CMPE1311,MATH1411\n")
	writeFile(t, dir, "first.json", `{
  "MATH1411-LEC-1": {"M": "09:00 - 09:50", "Instructor": "Emmy"},
  "CMPE1311-LEC-1": {"M": "09:30 - 10:20", "Instructor": "Ada"},
  "CMPE1311-LEC-2": {"T": "09:00 - 09:50", "Instructor": "Alan"}
}`)
	export := filepath.Join(dir, "schedule.csv")
	report := filepath.Join(dir, "report.txt")
	cfg := writeFile(t, dir, "planner.yaml", "study_plan_file: "+filepath.Join(dir, "plan.csv")+`
records_file: ""
electives_file: ""
first_catalog_file: `+filepath.Join(dir, "first.json")+`
second_catalog_file: ""
summer_catalog_file: ""
export_file: `+export+`
report_file: `+report+`
`)

	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")
	var out, logs bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&logs)
	rootCmd.SetArgs([]string{"plan", "--config", cfg, "--semesters", "1"})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "09:00-09:50: MATH1411-Emmy-1")
	assert.Contains(t, out.String(), "09:00-09:50: CMPE1311-Alan-2")
	assert.Contains(t, out.String(), "Passed all tests")
	assert.NotContains(t, out.String(), `"component":"planner"`, "logs stay off stdout")
	assert.Contains(t, logs.String(), `"component":"planner"`)
	assert.Contains(t, logs.String(), "study plan: 7 credit hours")

	data, err := os.ReadFile(export)
	require.NoError(t, err)
	assert.Contains(t, string(data), "1,1,CMPE1311,LEC,2,Alan,T,09:00-09:50,3")
	_, err = os.Stat(report)
	assert.NoError(t, err)

	out.Reset()
	rootCmd.SetArgs([]string{"show", export})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Weekly Schedule for Year 1 - Semester 1:")
	assert.Contains(t, out.String(), "CMPE1311-Alan-2")
}
