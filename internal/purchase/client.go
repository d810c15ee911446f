// Package purchase talks to the external purchase-page service.  The
// service renders the checkout page for a transaction and responds
// with Shift_JIS encoded HTML, which this client decodes to UTF-8.
package purchase

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// Client is an HTTP client for the purchase-page service.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient constructs a Client.  baseURL must not have a trailing
// slash; timeout bounds the whole request including body read.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// FetchPurchasePage requests the purchase page for a transaction and
// returns its body decoded from Shift_JIS.  accessToken is the user's
// cinemileage token; invitationParam is passed through untouched for
// invitation campaigns.
func (c *Client) FetchPurchasePage(ctx context.Context, transactionID, accessToken, invitationParam string) (string, error) {
	form := url.Values{}
	form.Set("transaction_id", transactionID)
	form.Set("access_token_cinemileage", accessToken)
	if invitationParam != "" {
		form.Set("invitation_param", invitationParam)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/purchase", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("purchase service returned status %d", resp.StatusCode)
	}

	// The service responds in Shift_JIS regardless of headers.
	decoded, err := io.ReadAll(transform.NewReader(resp.Body, japanese.ShiftJIS.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode purchase page: %w", err)
	}
	return string(decoded), nil
}
