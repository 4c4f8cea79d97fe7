package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pharmadesk/pharma_ledger_app/internal/apperrors"
	portssvc "github.com/pharmadesk/pharma_ledger_app/internal/core/ports/services"
	"github.com/pharmadesk/pharma_ledger_app/internal/middleware"
)

// ledgerHandler serves the reconciliation read endpoints. These are pure
// projections: every request recomputes the figures from the party's current
// records.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// getPartySummary godoc
// @Summary Get the reconciled summary for a party
// @Description Computes balances, per-invoice settlement history and the transaction timeline for a party
// @Tags ledger
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartySummaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to compute summary"
// @Security BearerAuth
// @Router /parties/{partyID}/summary [get]
func (h *ledgerHandler) getPartySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	summary, err := h.ledgerService.GetPartySummary(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		logger.Error("Failed to compute party summary", slog.String("error", err.Error()), slog.String("party_id", partyID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute summary"})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getPartyStatement godoc
// @Summary Get the transaction statement for a party
// @Description Computes the date-descending transaction timeline for a party
// @Tags ledger
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyStatementResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Party not found"
// @Failure 500 {object} ErrorResponse "Failed to compute statement"
// @Security BearerAuth
// @Router /parties/{partyID}/statement [get]
func (h *ledgerHandler) getPartyStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	partyID := c.Param("partyID")

	statement, err := h.ledgerService.GetPartyStatement(c.Request.Context(), partyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Party not found"})
			return
		}
		logger.Error("Failed to compute party statement", slog.String("error", err.Error()), slog.String("party_id", partyID))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute statement"})
		return
	}

	c.JSON(http.StatusOK, statement)
}
