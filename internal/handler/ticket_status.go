package handler

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tcapp/mobile-ticket-api/internal/queue"
	"github.com/tcapp/mobile-ticket-api/internal/repository"
	"github.com/tcapp/mobile-ticket-api/internal/service"
)

// StatusHandler serves the server-to-server endpoints through which the
// app server and the ticketing machines report status changes.  These
// endpoints are guarded by the API key middleware, not by user tokens.
type StatusHandler struct {
	TicketRepo *repository.TicketRepo
}

// NewStatusHandler constructs a StatusHandler.
func NewStatusHandler(ticketRepo *repository.TicketRepo) *StatusHandler {
	if ticketRepo == nil {
		panic("nil repository passed to NewStatusHandler")
	}
	return &StatusHandler{TicketRepo: ticketRepo}
}

// ticketingNotificationItem is one issued ticket reported by the
// ticketing machines.
type ticketingNotificationItem struct {
	TransactionID string `json:"transaction_id"`
	TicketingDay  string `json:"ticketing_day"`
	TicketingTime string `json:"ticketing_time"`
}

// ticketingNotificationRequest is the body of POST /notification/issue.
type ticketingNotificationRequest struct {
	List []ticketingNotificationItem `json:"list"`
}

// NotificationIssue handles POST /v1/ticket/notification/issue.  Each
// reported transaction is marked used, and any shared ticket of the
// same transaction is flagged as notified so the recipient is not
// notified twice.  A status event is published per transaction; broker
// failures are logged but never fail the request.
func (h *StatusHandler) NotificationIssue(c echo.Context) error {
	ctx := c.Request().Context()

	var body ticketingNotificationRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.List) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "list is required"})
	}

	for _, item := range body.List {
		if item.TransactionID == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "transaction_id is required"})
		}
		if err := h.TicketRepo.MarkIssued(ctx, item.TransactionID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if err := h.TicketRepo.MarkShareTicketNotified(ctx, item.TransactionID); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
		}
		if err := service.PublishTicketStatus(ctx, queue.TicketStatusEvent{
			TransactionID: item.TransactionID,
			Status:        "ISSUED",
		}); err != nil {
			log.Printf("notification issue: publish failed for %s: %v", item.TransactionID, err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}

// ticketingRefundRequest is the body of POST /refund, built from the
// app's purchase record.
type ticketingRefundRequest struct {
	TransactionID string `json:"transaction_id"`
	RefundDay     string `json:"refund_day"`
	RefundTime    string `json:"refund_time"`
}

// Refund handles POST /v1/ticket/refund.  It marks the purchase
// refunded and publishes a status event.
func (h *StatusHandler) Refund(c echo.Context) error {
	ctx := c.Request().Context()

	var body ticketingRefundRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TransactionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "transaction_id is required"})
	}

	if err := h.TicketRepo.MarkRefunded(ctx, body.TransactionID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	if err := service.PublishTicketStatus(ctx, queue.TicketStatusEvent{
		TransactionID: body.TransactionID,
		Status:        "REFUNDED",
	}); err != nil {
		log.Printf("refund: publish failed for %s: %v", body.TransactionID, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "success"})
}
