package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tcapp/mobile-ticket-api/internal/purchase"
)

// PurchaseHandler proxies the app to the purchase-page service.
type PurchaseHandler struct {
	Client *purchase.Client
}

// NewPurchaseHandler constructs a PurchaseHandler.
func NewPurchaseHandler(client *purchase.Client) *PurchaseHandler {
	if client == nil {
		panic("nil client passed to NewPurchaseHandler")
	}
	return &PurchaseHandler{Client: client}
}

// purchaseRequest is the body of POST /purchase.
type purchaseRequest struct {
	TransactionID          string `json:"transaction_id"`
	AccessTokenCinemileage string `json:"access_token_cinemileage"`
	InvitationParam        string `json:"invitation_param"`
}

// Purchase handles POST /v1/ticket/purchase.  It fetches the purchase
// page for the transaction from the purchase-page service and returns
// the decoded page text as-is.
func (h *PurchaseHandler) Purchase(c echo.Context) error {
	ctx := c.Request().Context()

	var body purchaseRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.TransactionID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "transaction_id is required"})
	}

	text, err := h.Client.FetchPurchasePage(ctx, body.TransactionID, body.AccessTokenCinemileage, body.InvitationParam)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "purchase service unavailable"})
	}
	return c.String(http.StatusOK, text)
}
