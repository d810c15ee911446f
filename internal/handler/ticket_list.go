// Package handler exposes the HTTP handlers of the mobile ticket API.
// This file defines the two ticket list endpoints.  Both lists share
// the view rules in internal/ticket but differ in failure policy: the
// before list fails outright on an unrenderable ticket while the after
// list drops it and keeps going.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tcapp/mobile-ticket-api/internal/repository"
	"github.com/tcapp/mobile-ticket-api/internal/ticket"
)

// TicketHandler groups the data access needed to render ticket lists
// and detail.  JWT authentication and user matching have already been
// performed by middleware when its methods run.
type TicketHandler struct {
	TicketRepo *repository.TicketRepo // ticket rows and seats
	Source     *repository.Source     // movie/schedule/concession reads for the assembler
}

// NewTicketHandler constructs a TicketHandler with the provided
// repositories.  All dependencies must be non-nil.
func NewTicketHandler(ticketRepo *repository.TicketRepo, source *repository.Source) *TicketHandler {
	if ticketRepo == nil || source == nil {
		panic("nil repository passed to NewTicketHandler")
	}
	return &TicketHandler{TicketRepo: ticketRepo, Source: source}
}

// GetTicketListBefore handles GET /v1/ticket/before/:user_id.  It
// returns the user's tickets for showings that have not happened yet,
// with mobile-order concessions attached per theater.  One ticket
// whose title cannot be resolved fails the whole request with 500; a
// before-show list with holes would strand users at the theater.
func (h *TicketHandler) GetTicketListBefore(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("user_id")

	tickets, err := h.TicketRepo.FetchByUser(ctx, userID, true)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	views, err := ticket.BuildBeforeList(ctx, h.Source, tickets)
	if err != nil {
		if errors.Is(err, ticket.ErrTitleUnresolved) {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not resolve ticket title"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, ticket.ListResponse{TicketList: views})
}

// GetTicketListAfter handles GET /v1/ticket/after/:user_id.  It
// returns the user's watched tickets.  Movie and schedule relations
// arrive pre-loaded on the rows; tickets without a resolvable title
// are skipped (and logged) instead of failing the request.
func (h *TicketHandler) GetTicketListAfter(c echo.Context) error {
	ctx := c.Request().Context()
	userID := c.Param("user_id")

	tickets, err := h.TicketRepo.FetchByUser(ctx, userID, false)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	views := ticket.BuildAfterList(tickets)
	return c.JSON(http.StatusOK, ticket.ListResponse{TicketList: views})
}
