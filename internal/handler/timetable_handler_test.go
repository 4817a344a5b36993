package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sai69186/ai-time-table-generator/internal/models"
	"github.com/Sai69186/ai-time-table-generator/internal/repository"
	"github.com/Sai69186/ai-time-table-generator/internal/service"
)

type timetableHandlerFixture struct {
	router    *gin.Engine
	sections  *repository.SectionRepository
	courses   *repository.CourseRepository
	sectionID int
}

func newTimetableHandlerFixture(t *testing.T) *timetableHandlerFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := repository.NewStore()
	sections := repository.NewSectionRepository(store)
	courses := repository.NewCourseRepository(store)
	timetables := repository.NewTimetableRepository(store)

	timetableSvc := service.NewTimetableService(sections, courses, timetables, nil, nil, service.TimetableDefaults{})
	exportSvc := service.NewExportService(timetableSvc, nil, nil, nil)
	handler := NewTimetableHandler(timetableSvc, exportSvc)

	router := gin.New()
	router.POST("/timetables/generate", handler.Generate)
	router.GET("/timetables", handler.List)
	router.POST("/sections/:id/timetable", handler.GenerateSimple)
	router.GET("/sections/:id/timetable", handler.Get)
	router.GET("/sections/:id/timetable/export", handler.Export)

	section := &models.Section{Name: "CSE-A", Year: 2, Semester: 3}
	require.NoError(t, sections.Create(context.Background(), section))

	return &timetableHandlerFixture{
		router:    router,
		sections:  sections,
		courses:   courses,
		sectionID: section.ID,
	}
}

func (f *timetableHandlerFixture) seedCourse(t *testing.T, subject string) {
	t.Helper()
	require.NoError(t, f.courses.Create(context.Background(), &models.Course{
		SectionID:   f.sectionID,
		SubjectID:   1,
		TeacherID:   1,
		SubjectName: subject,
		SubjectCode: subject,
		TeacherName: "Dr. Rao",
		RoomNumber:  "101",
	}))
}

func (f *timetableHandlerFixture) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestTimetableHandlerGenerate(t *testing.T) {
	f := newTimetableHandlerFixture(t)
	f.seedCourse(t, "MATH")

	rec := f.do(http.MethodPost, "/timetables/generate", gin.H{"section_id": f.sectionID})

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			Timetable models.Timetable      `json:"timetable"`
			Conflicts models.ConflictReport `json:"conflicts"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, f.sectionID, envelope.Data.Timetable.SectionID)
	assert.Equal(t, 0, envelope.Data.Conflicts.TotalConflicts)
}

func TestTimetableHandlerGenerateWithoutCourses(t *testing.T) {
	f := newTimetableHandlerFixture(t)

	rec := f.do(http.MethodPost, "/timetables/generate", gin.H{"section_id": f.sectionID})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "NO_COURSES", envelope.Error.Code)
}

func TestTimetableHandlerGenerateSimplePathWins(t *testing.T) {
	f := newTimetableHandlerFixture(t)
	f.seedCourse(t, "MATH")

	// Body names a different section; the path id is authoritative.
	rec := f.do(http.MethodPost, fmt.Sprintf("/sections/%d/timetable", f.sectionID), gin.H{"section_id": 999})

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data struct {
			Timetable models.Timetable `json:"timetable"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, f.sectionID, envelope.Data.Timetable.SectionID)
}

func TestTimetableHandlerGetMissing(t *testing.T) {
	f := newTimetableHandlerFixture(t)

	rec := f.do(http.MethodGet, fmt.Sprintf("/sections/%d/timetable", f.sectionID), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTimetableHandlerInvalidID(t *testing.T) {
	f := newTimetableHandlerFixture(t)

	rec := f.do(http.MethodGet, "/sections/abc/timetable", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTimetableHandlerExportCSV(t *testing.T) {
	f := newTimetableHandlerFixture(t)
	f.seedCourse(t, "MATH")

	rec := f.do(http.MethodPost, "/timetables/generate", gin.H{"section_id": f.sectionID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, fmt.Sprintf("/sections/%d/timetable/export?format=csv", f.sectionID), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), fmt.Sprintf("timetable-section-%d.csv", f.sectionID))
	assert.Contains(t, rec.Body.String(), "Day,Start,End,Subject Code,Subject,Teacher,Room,Building")
}

func TestTimetableHandlerList(t *testing.T) {
	f := newTimetableHandlerFixture(t)
	f.seedCourse(t, "MATH")

	rec := f.do(http.MethodPost, "/timetables/generate", gin.H{"section_id": f.sectionID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/timetables", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data []models.TimetableSummary `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, f.sectionID, envelope.Data[0].SectionID)
}
