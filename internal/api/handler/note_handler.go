package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhive/taskhive/internal/core/ports"
)

// NoteHandler serves the authenticated user's notes.
type NoteHandler struct {
	service ports.NoteService
}

func NewNoteHandler(service ports.NoteService) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteRequest struct {
	Title   string `json:"title"   validate:"required"`
	Content string `json:"content" validate:"required"`
}

type noteCreatedResponse struct {
	Message string `json:"message"`
	NoteID  string `json:"note_id"`
}

// Add handles POST /notes/ - stores a new note for the caller.
//
// @Summary      Add a note
// @Tags         notes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      noteRequest  true  "Note title and content"
// @Success      201   {object}  noteCreatedResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /notes/ [post]
func (h *NoteHandler) Add(c echo.Context) error {
	var req noteRequest
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

	note, err := h.service.Add(c.Request().Context(), username, req.Title, req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, noteCreatedResponse{
		Message: "Note added successfully",
		NoteID:  note.NoteID,
	})
}

// List handles GET /notes/ - all of the caller's notes.
//
// @Summary      List your notes
// @Tags         notes
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Note
// @Failure      401  {object}  errorResponse
// @Router       /notes/ [get]
func (h *NoteHandler) List(c echo.Context) error {
	username, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	notes, err := h.service.List(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}
