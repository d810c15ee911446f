package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tcapp/mobile-ticket-api/internal/queue"
	"github.com/tcapp/mobile-ticket-api/internal/repository"
	"github.com/tcapp/mobile-ticket-api/internal/service"
)

// DistributionHandler serves the promotional (TC) ticket distribution
// endpoints used by campaign tooling.
type DistributionHandler struct {
	DistributionRepo *repository.DistributionRepo
}

// NewDistributionHandler constructs a DistributionHandler.
func NewDistributionHandler(repo *repository.DistributionRepo) *DistributionHandler {
	if repo == nil {
		panic("nil repository passed to NewDistributionHandler")
	}
	return &DistributionHandler{DistributionRepo: repo}
}

// distributionRequest is the body of POST /distribution.
type distributionRequest struct {
	TicketType string `json:"ticket_type"`
	UserID     string `json:"user_id"`
}

// Distribute handles POST /v1/ticket/distribution.  It grants one TC
// ticket of the given type to the user and publishes a status event.
func (h *DistributionHandler) Distribute(c echo.Context) error {
	ctx := c.Request().Context()

	var body distributionRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TicketType == "" || body.UserID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket_type and user_id are required"})
	}

	if err := h.DistributionRepo.DistributeTCTicket(ctx, body.TicketType, body.UserID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := service.PublishTicketStatus(ctx, queue.TicketStatusEvent{
		UserID:     body.UserID,
		TicketType: body.TicketType,
		Status:     "DISTRIBUTED",
	}); err != nil {
		log.Printf("distribution: publish failed for user %s: %v", body.UserID, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}

// DistributeByReceipt handles GET /v1/ticket/distribution.  Query
// parameters identify the grant: receipt_number and the registered
// email_address of the user.  The app server's result code decides the
// outcome; anything but "1" reports an error to the caller.
func (h *DistributionHandler) DistributeByReceipt(c echo.Context) error {
	ctx := c.Request().Context()

	receiptNumber := c.QueryParam("receipt_number")
	email := c.QueryParam("email_address")
	if receiptNumber == "" || email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "receipt_number and email_address are required"})
	}

	result, err := h.DistributionRepo.DistributeByReceipt(ctx, receiptNumber, email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if result != "1" {
		return c.JSON(http.StatusOK, echo.Map{"message": "error"})
	}

	if err := service.PublishTicketStatus(ctx, queue.TicketStatusEvent{
		TicketType: "TC",
		Status:     "DISTRIBUTED",
	}); err != nil {
		log.Printf("distribution: publish failed for receipt %s: %v", receiptNumber, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}
