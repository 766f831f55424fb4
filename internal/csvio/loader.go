package csvio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-studyplan/pkg/model"
)

// ErrMalformedRecord is returned for rows that cannot be turned into model values.
var ErrMalformedRecord = errors.New("malformed record")

type studyPlanRow struct {
	Year          int    `csv:"Year"`
	Semester      int    `csv:"Semester"`
	CourseCode    string `csv:"Course_Code"`
	Prerequisites string `csv:"Prerequisites"`
}

type recordRow struct {
	Year     int    `csv:"Year"`
	Semester int    `csv:"Semester"`
	Grades   string `csv:"Grades"`
}

type electiveRow struct {
	Group         string `csv:"Group"`
	CourseCode    string `csv:"Course_Code"`
	Prerequisites string `csv:"Prerequisites"`
}

// foldingReader lets rows carry a variable number of trailing values. Everything
// past the last header column is joined into that column with ';'.
type foldingReader struct {
	r     *csv.Reader
	width int
}

func newFoldingReader(in io.Reader, delim rune, width int) *foldingReader {
	r := csv.NewReader(in)
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	return &foldingReader{r: r, width: width}
}

func (f *foldingReader) Read() ([]string, error) {
	row, err := f.r.Read()
	if err != nil {
		return nil, err
	}
	return f.fold(row), nil
}

func (f *foldingReader) ReadAll() ([][]string, error) {
	var rows [][]string
	for {
		row, err := f.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func (f *foldingReader) fold(row []string) []string {
	// Pad short rows so every header column is present
	for len(row) < f.width {
		row = append(row, "")
	}
	if len(row) == f.width {
		return row
	}
	folded := make([]string, f.width)
	copy(folded, row[:f.width-1])
	var tail []string
	for _, v := range row[f.width-1:] {
		if v = strings.TrimSpace(v); v != "" {
			tail = append(tail, v)
		}
	}
	folded[f.width-1] = strings.Join(tail, ";")
	return folded
}

// splitList splits a list column on ';', '|' or whitespace.
func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ';' || r == '|' || r == ' ' || r == '\t'
	})
}

// ReadStudyPlan parses study plan rows: Year, Semester, Course_Code, then any
// number of prerequisite codes.
func ReadStudyPlan(in io.Reader, delim rune) ([]model.StudyPlanEntry, error) {
	rows := []*studyPlanRow{}
	if err := gocsv.UnmarshalCSV(newFoldingReader(in, delim, 4), &rows); err != nil {
		return nil, fmt.Errorf("parse study plan: %w", err)
	}
	plan := make([]model.StudyPlanEntry, 0, len(rows))
	for i, r := range rows {
		code := strings.TrimSpace(r.CourseCode)
		if code == "" || !(model.Term{Year: r.Year, Semester: r.Semester}).Valid() {
			return nil, fmt.Errorf("%w: study plan line %d", ErrMalformedRecord, i+2)
		}
		plan = append(plan, model.StudyPlanEntry{
			Year:          r.Year,
			Semester:      r.Semester,
			CourseCode:    code,
			Prerequisites: splitList(r.Prerequisites),
		})
	}
	return plan, nil
}

// ReadStudentRecords parses transcript rows: Year, Semester, then code:grade pairs.
func ReadStudentRecords(in io.Reader, delim rune) ([]model.StudentRecord, error) {
	rows := []*recordRow{}
	if err := gocsv.UnmarshalCSV(newFoldingReader(in, delim, 3), &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse student records: %w", err)
	}
	records := make([]model.StudentRecord, 0, len(rows))
	for i, r := range rows {
		term := model.Term{Year: r.Year, Semester: r.Semester}
		if !term.Valid() {
			return nil, fmt.Errorf("%w: student records line %d", ErrMalformedRecord, i+2)
		}
		rec := model.StudentRecord{Term: term}
		for _, pair := range splitList(r.Grades) {
			code, grade, ok := strings.Cut(pair, ":")
			if !ok {
				return nil, fmt.Errorf("%w: student records line %d: %q is not code:grade", ErrMalformedRecord, i+2, pair)
			}
			g, err := strconv.Atoi(strings.TrimSpace(grade))
			if err != nil {
				return nil, fmt.Errorf("%w: student records line %d: grade %q", ErrMalformedRecord, i+2, grade)
			}
			rec.Grades = append(rec.Grades, model.Grade{CourseCode: strings.TrimSpace(code), Grade: g})
		}
		records = append(records, rec)
	}
	return records, nil
}

// ReadElectives parses elective rows: Group, Course_Code, then prerequisite codes.
func ReadElectives(in io.Reader, delim rune) ([]model.Elective, error) {
	rows := []*electiveRow{}
	if err := gocsv.UnmarshalCSV(newFoldingReader(in, delim, 3), &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse electives: %w", err)
	}
	electives := make([]model.Elective, 0, len(rows))
	for i, r := range rows {
		code := strings.TrimSpace(r.CourseCode)
		if code == "" {
			return nil, fmt.Errorf("%w: electives line %d", ErrMalformedRecord, i+2)
		}
		electives = append(electives, model.Elective{
			Group:         strings.TrimSpace(r.Group),
			CourseCode:    code,
			Prerequisites: splitList(r.Prerequisites),
		})
	}
	return electives, nil
}

// LoadStudyPlan reads and parses the study plan file.
func LoadStudyPlan(path string, delim rune) ([]model.StudyPlanEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open study plan %s: %w", path, err)
	}
	defer f.Close()
	return ReadStudyPlan(f, delim)
}

// LoadStudentRecords reads the transcript file. An empty path or an empty file
// means the student has no history yet.
func LoadStudentRecords(path string, delim rune) ([]model.StudentRecord, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open student records %s: %w", path, err)
	}
	defer f.Close()
	return ReadStudentRecords(f, delim)
}

// LoadElectives reads the electives file. A missing path yields no electives.
func LoadElectives(path string, delim rune) ([]model.Elective, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open electives %s: %w", path, err)
	}
	defer f.Close()
	return ReadElectives(f, delim)
}
