package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Sai69186/ai-time-table-generator/internal/dto"
	"github.com/Sai69186/ai-time-table-generator/internal/service"
	appErrors "github.com/Sai69186/ai-time-table-generator/pkg/errors"
	"github.com/Sai69186/ai-time-table-generator/pkg/response"
)

// UniversityHandler exposes entity management endpoints.
type UniversityHandler struct {
	university *service.UniversityService
}

// NewUniversityHandler constructs UniversityHandler.
func NewUniversityHandler(university *service.UniversityService) *UniversityHandler {
	return &UniversityHandler{university: university}
}

func pathID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "id must be an integer")
	}
	return id, nil
}

// CreateBranch godoc
// @Summary Create branch
// @Tags University
// @Accept json
// @Produce json
// @Param payload body dto.CreateBranchRequest true "Branch payload"
// @Success 201 {object} response.Envelope
// @Router /university/branches [post]
func (h *UniversityHandler) CreateBranch(c *gin.Context) {
	var req dto.CreateBranchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	branch, err := h.university.CreateBranch(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, branch)
}

// ListBranches godoc
// @Summary List branches
// @Tags University
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /university/branches [get]
func (h *UniversityHandler) ListBranches(c *gin.Context) {
	branches, err := h.university.ListBranches(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, branches, nil)
}

// DeleteBranch godoc
// @Summary Delete branch
// @Tags University
// @Param id path int true "Branch ID"
// @Success 204
// @Router /university/branches/{id} [delete]
func (h *UniversityHandler) DeleteBranch(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.university.DeleteBranch(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateSection godoc
// @Summary Create section
// @Tags University
// @Accept json
// @Produce json
// @Param payload body dto.CreateSectionRequest true "Section payload"
// @Success 201 {object} response.Envelope
// @Router /university/sections [post]
func (h *UniversityHandler) CreateSection(c *gin.Context) {
	var req dto.CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	section, err := h.university.CreateSection(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, section)
}

// ListSections godoc
// @Summary List sections
// @Tags University
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /university/sections [get]
func (h *UniversityHandler) ListSections(c *gin.Context) {
	sections, err := h.university.ListSections(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sections, nil)
}

// DeleteSection godoc
// @Summary Delete section
// @Tags University
// @Param id path int true "Section ID"
// @Success 204
// @Router /university/sections/{id} [delete]
func (h *UniversityHandler) DeleteSection(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.university.DeleteSection(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListSectionCourses godoc
// @Summary List courses assigned to a section
// @Tags University
// @Produce json
// @Param id path int true "Section ID"
// @Success 200 {object} response.Envelope
// @Router /university/sections/{id}/courses [get]
func (h *UniversityHandler) ListSectionCourses(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	courses, err := h.university.ListSectionCourses(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// CreateTeacher godoc
// @Summary Create teacher
// @Tags University
// @Accept json
// @Produce json
// @Param payload body dto.CreateTeacherRequest true "Teacher payload"
// @Success 201 {object} response.Envelope
// @Router /university/teachers [post]
func (h *UniversityHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.university.CreateTeacher(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, teacher)
}

// ListTeachers godoc
// @Summary List teachers
// @Tags University
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /university/teachers [get]
func (h *UniversityHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.university.ListTeachers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teachers, nil)
}

// DeleteTeacher godoc
// @Summary Delete teacher
// @Tags University
// @Param id path int true "Teacher ID"
// @Success 204
// @Router /university/teachers/{id} [delete]
func (h *UniversityHandler) DeleteTeacher(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.university.DeleteTeacher(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateRoom godoc
// @Summary Create room
// @Tags University
// @Accept json
// @Produce json
// @Param payload body dto.CreateRoomRequest true "Room payload"
// @Success 201 {object} response.Envelope
// @Router /university/rooms [post]
func (h *UniversityHandler) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	room, err := h.university.CreateRoom(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room)
}

// ListRooms godoc
// @Summary List rooms
// @Tags University
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /university/rooms [get]
func (h *UniversityHandler) ListRooms(c *gin.Context) {
	rooms, err := h.university.ListRooms(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rooms, nil)
}

// DeleteRoom godoc
// @Summary Delete room
// @Tags University
// @Param id path int true "Room ID"
// @Success 204
// @Router /university/rooms/{id} [delete]
func (h *UniversityHandler) DeleteRoom(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.university.DeleteRoom(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateSubject godoc
// @Summary Create subject
// @Tags University
// @Accept json
// @Produce json
// @Param payload body dto.CreateSubjectRequest true "Subject payload"
// @Success 201 {object} response.Envelope
// @Router /university/subjects [post]
func (h *UniversityHandler) CreateSubject(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	subject, err := h.university.CreateSubject(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, subject)
}

// ListSubjects godoc
// @Summary List subjects
// @Tags University
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /university/subjects [get]
func (h *UniversityHandler) ListSubjects(c *gin.Context) {
	subjects, err := h.university.ListSubjects(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, subjects, nil)
}

// DeleteSubject godoc
// @Summary Delete subject
// @Tags University
// @Param id path int true "Subject ID"
// @Success 204
// @Router /university/subjects/{id} [delete]
func (h *UniversityHandler) DeleteSubject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.university.DeleteSubject(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// CreateCourse godoc
// @Summary Assign subject, teacher and room to a section
// @Tags University
// @Accept json
// @Produce json
// @Param payload body dto.CreateCourseRequest true "Course payload"
// @Success 201 {object} response.Envelope
// @Router /university/courses [post]
func (h *UniversityHandler) CreateCourse(c *gin.Context) {
	var req dto.CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	course, err := h.university.CreateCourse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// ListCourses godoc
// @Summary List courses
// @Tags University
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /university/courses [get]
func (h *UniversityHandler) ListCourses(c *gin.Context) {
	courses, err := h.university.ListCourses(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, courses, nil)
}

// DeleteCourse godoc
// @Summary Delete course
// @Tags University
// @Param id path int true "Course ID"
// @Success 204
// @Router /university/courses/{id} [delete]
func (h *UniversityHandler) DeleteCourse(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := h.university.DeleteCourse(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Health godoc
// @Summary Service health with entity totals
// @Tags System
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /health [get]
func (h *UniversityHandler) Health(c *gin.Context) {
	counts, err := h.university.Counts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok", "counts": counts}, nil)
}
