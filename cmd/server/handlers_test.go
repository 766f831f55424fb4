package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rhyrak/go-studyplan/internal/logger"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := newRouter(logger.NopLogger{})
	require.NoError(t, err)
	return r
}

func TestHealth(t *testing.T) {
	w := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

const planBody = `{
  "studyPlan": [
    {"year": 1, "semester": 1, "courseCode": "MATH1411"},
    {"year": 1, "semester": 2, "courseCode": "MATH1421", "prerequisites": ["MATH1411"]}
  ],
  "records": [
    {"term": {"year": 1, "semester": 1}, "grades": [{"courseCode": "MATH1411", "grade": 75}]}
  ],
  "catalog": {
    "second": [
      {"courseCode": "MATH1421", "section": "1", "courseType": "LEC", "instructor": "Emmy",
       "meetings": [{"day": "T", "time": "09:00 - 09:50"}]}
    ]
  },
  "semesters": 2
}`

func TestPostPlan(t *testing.T) {
	router := newTestRouter(t)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(planBody))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		ID        string           `json:"id"`
		Start     model.Term       `json:"start"`
		Schedules []model.Schedule `json:"schedules"`
		Report    string           `json:"report"`
		Valid     bool             `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, model.Term{Year: 1, Semester: 2}, resp.Start)
	require.Len(t, resp.Schedules, 2)
	require.Len(t, resp.Schedules[0].Courses, 1)
	assert.Equal(t, "MATH1421", resp.Schedules[0].Courses[0].CourseCode)
	assert.Equal(t, "T 09:00-09:50", resp.Schedules[0].Courses[0].Meetings[0].String())
	assert.True(t, resp.Valid, resp.Report)
	require.NotEmpty(t, resp.ID)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plan/"+resp.ID, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"MATH1421"`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/plan/unknown", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostPlanBadRequests(t *testing.T) {
	cases := map[string]string{
		"malformed":    `{"studyPlan": [`,
		"missing plan": `{"semesters": 1}`,
		"bad start":    `{"studyPlan": [{"year": 1, "semester": 1, "courseCode": "MATH1411"}], "start": {"year": 1, "semester": 5}}`,
		"bad time":     `{"studyPlan": [{"year": 1, "semester": 1, "courseCode": "A"}], "catalog": {"first": [{"courseCode": "A", "meetings": [{"day": "M", "time": "9"}]}]}}`,
		"negative":     `{"studyPlan": [{"year": 1, "semester": 1, "courseCode": "A"}], "semesters": -1}`,
		"too many":     `{"studyPlan": [{"year": 1, "semester": 1, "courseCode": "A"}], "semesters": 9223372036854775807}`,
		"over bound":   `{"studyPlan": [{"year": 1, "semester": 1, "courseCode": "A"}], "semesters": 65}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/plan", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			newTestRouter(t).ServeHTTP(w, req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
