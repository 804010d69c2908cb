package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/ports"
)

// ApplicationHandler serves the authenticated user's job applications.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type applicationRequest struct {
	JobTitle    string `json:"job_title"    validate:"required"`
	Company     string `json:"company"      validate:"required"`
	DateApplied string `json:"date_applied"`
	Status      string `json:"status"       validate:"required"`
}

// Add handles POST /applications/ - records a new application for the caller.
//
// @Summary      Add a job application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applicationRequest  true  "Application details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /applications/ [post]
func (h *ApplicationHandler) Add(c echo.Context) error {
	var req applicationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.service.Add(c.Request().Context(), username, ports.JobApplicationInput{
		JobTitle:    req.JobTitle,
		Company:     req.Company,
		DateApplied: req.DateApplied,
		Status:      req.Status,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "Application added successfully."})
}

// List handles GET /applications/ - all of the caller's applications.
//
// @Summary      List your job applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.JobApplication
// @Failure      401  {object}  errorResponse
// @Router       /applications/ [get]
func (h *ApplicationHandler) List(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	applications, err := h.service.List(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}
