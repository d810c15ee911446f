package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tcapp/mobile-ticket-api/internal/repository"
	"github.com/tcapp/mobile-ticket-api/internal/ticket"
	"github.com/tcapp/mobile-ticket-api/internal/utils"
)

// GetTicketDetail handles GET /v1/ticket/:user_id/:transaction_id.  It
// returns the full detail of one ticket: titles, facility list, the
// subtitles/dubbing variant when the schedule carries one, and the
// seat list sorted by seat number.
func (h *TicketHandler) GetTicketDetail(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("user_id")
	transactionID := c.Param("transaction_id")

	mt, err := h.TicketRepo.FetchDetail(ctx, userID, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "ticket not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	view, err := ticket.BuildDetail(ctx, h.Source, utils.SubtitlesDubbingName, mt)
	if err != nil {
		if errors.Is(err, ticket.ErrTitleUnresolved) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not resolve ticket title"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, view)
}
