package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/dto"
	"github.com/pharmadesk/pharma_ledger_app/internal/middleware"
)

// noteHandler handles HTTP requests related to debit and credit notes.
type noteHandler struct {
	noteService portssvc.NoteSvcFacade
}

// newNoteHandler creates a new noteHandler.
func newNoteHandler(ns portssvc.NoteSvcFacade) *noteHandler {
	return &noteHandler{
		noteService: ns,
	}
}

// registerNoteRoutes registers all note-related routes.
func registerNoteRoutes(rg *gin.RouterGroup, noteService portssvc.NoteSvcFacade) {
	h := newNoteHandler(noteService)

	notes := rg.Group("/notes")
	{
		notes.POST("", h.createNote)
		notes.GET("/:noteID", h.getNote)
	}
	rg.GET("/parties/:partyID/notes", h.listNotesByParty)
}

// createNote godoc
// @Summary Record a debit or credit note
// @Description Records a note against a party; the related invoice number is matched at read time
// @Tags notes
// @Accept  json
// @Produce  json
// @Param   note body dto.CreateNoteRequest true "Note details"
// @Success 201 {object} dto.NoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create note"
// @Security BearerAuth
// @Router /notes [post]
func (h *noteHandler) createNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	note, err := h.noteService.CreateNote(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create note", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToNoteResponse(note))
}

// getNote godoc
// @Summary Get a note by ID
// @Description Retrieves details for a specific note
// @Tags notes
// @Produce  json
// @Param   noteID path string true "Note ID"
// @Success 200 {object} dto.NoteResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Note not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve note"
// @Security BearerAuth
// @Router /notes/{noteID} [get]
func (h *noteHandler) getNote(c *gin.Context) {
	noteID := c.Param("noteID")

	note, err := h.noteService.GetNoteByID(c.Request.Context(), noteID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Note not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve note"})
		return
	}

	c.JSON(http.StatusOK, dto.ToNoteResponse(note))
}

// listNotesByParty godoc
// @Summary List notes for a party
// @Description Retrieves all notes recorded against a party ordered by date
// @Tags notes
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.ListNotesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list notes"
// @Security BearerAuth
// @Router /parties/{partyID}/notes [get]
func (h *noteHandler) listNotesByParty(c *gin.Context) {
	partyID := c.Param("partyID")

	notes, err := h.noteService.ListNotesByParty(c.Request.Context(), partyID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list notes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListNotesResponse(notes))
}
