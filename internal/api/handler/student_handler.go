package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/ports"
)

// StudentHandler serves student records and grade management.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

// UpdateGrades handles PUT /grades/:username - merges scores into the named
// student's record and recomputes the average and grade. Admin only.
//
// @Summary      Update grades for a student (admin only)
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string              true  "Student username"
// @Param        body      body      gradeUpdateRequest  true  "Subject scores to merge"
// @Success      200       {object}  domain.Student
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Failure      422       {object}  errorResponse
// @Router       /grades/{username} [put]
func (h *StudentHandler) UpdateGrades(c echo.Context) error {
	var req gradeUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	student, err := h.service.UpdateGrades(c.Request().Context(), c.Param("username"), req.SubjectScores)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// GetOwnRecord handles GET /grades/ - returns the caller's own record.
//
// @Summary      View your own grades
// @Tags         students
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Student
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /grades/ [get]
func (h *StudentHandler) GetOwnRecord(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	student, err := h.service.GetRecord(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// List handles GET /students/ - all student records. Public.
//
// @Summary      List all students
// @Tags         students
// @Produce      json
// @Success      200  {array}  domain.Student
// @Router       /students/ [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// Get handles GET /students/:name - a single student record. Public.
//
// @Summary      Get a student by username
// @Tags         students
// @Produce      json
// @Param        name  path      string  true  "Student username"
// @Success      200   {object}  domain.Student
// @Failure      404   {object}  errorResponse
// @Router       /students/{name} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.GetRecord(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Update handles PUT /students/:name - replaces the student's profile.
// The body's name must match the path. Admin only.
//
// @Summary      Update a student record (admin only)
// @Tags         students
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        name  path      string                true  "Student username"
// @Param        body  body      studentUpdateRequest  true  "Replacement profile"
// @Success      200   {object}  domain.Student
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /students/{name} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	var req studentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	name := c.Param("name")
	if req.Name != name {
		return echo.NewHTTPError(http.StatusBadRequest, "Name mismatch")
	}

	student, err := h.service.Update(c.Request().Context(), name, ports.UpdateStudentInput{
		Name:          req.Name,
		SubjectScores: req.SubjectScores,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Delete handles DELETE /students/:name - removes the student record. Admin only.
//
// @Summary      Delete a student record (admin only)
// @Tags         students
// @Security     BearerAuth
// @Param        name  path  string  true  "Student username"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /students/{name} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
