package purchase

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPurchasePageDecodesShiftJIS(t *testing.T) {
	// "テスト" encoded as Shift_JIS.
	shiftJIS := []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/purchase", r.URL.Path)
		assert.Equal(t, "secret-key", r.Header.Get("X-API-Key"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "TXN-1", r.PostFormValue("transaction_id"))
		assert.Equal(t, "token-abc", r.PostFormValue("access_token_cinemileage"))
		assert.Equal(t, "inv-7", r.PostFormValue("invitation_param"))

		w.Header().Set("Content-Type", "text/html; charset=Shift_JIS")
		_, _ = w.Write(shiftJIS)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 5*time.Second)
	text, err := c.FetchPurchasePage(context.Background(), "TXN-1", "token-abc", "inv-7")
	require.NoError(t, err)
	assert.Equal(t, "テスト", text)
}

func TestFetchPurchasePageOmitsEmptyInvitationParam(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		_, has := r.PostForm["invitation_param"]
		assert.False(t, has)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 5*time.Second)
	text, err := c.FetchPurchasePage(context.Background(), "TXN-1", "token-abc", "")
	require.NoError(t, err)
	assert.Equal(t, "ok", text)
}

func TestFetchPurchasePageNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret-key", 5*time.Second)
	_, err := c.FetchPurchasePage(context.Background(), "TXN-1", "token-abc", "")
	assert.Error(t, err)
}
