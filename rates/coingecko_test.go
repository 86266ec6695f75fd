package rates

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &Client{baseURL: srv.URL, client: srv.Client()}
}

func TestUSDRate(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/simple/price", r.URL.Path)
		assert.Equal(t, "ethereum", r.URL.Query().Get("ids"))
		fmt.Fprint(w, `{"ethereum":{"usd":3214.5}}`)
	})

	rate, err := c.USDRate(context.Background(), "ETH")
	require.NoError(t, err)
	assert.Equal(t, "3214.50", rate)
}

func TestUSDRate_TestnetSymbolMapsToMainnetCoin(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "binancecoin", r.URL.Query().Get("ids"))
		fmt.Fprint(w, `{"binancecoin":{"usd":575}}`)
	})

	rate, err := c.USDRate(context.Background(), "tBNB")
	require.NoError(t, err)
	assert.Equal(t, "575.00", rate)
}

func TestUSDRate_UnknownSymbol(t *testing.T) {
	c := NewClient()
	_, err := c.USDRate(context.Background(), "DOGE")
	assert.Error(t, err)
}

func TestUSDRate_UpstreamError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := c.USDRate(context.Background(), "ETH")
	assert.Error(t, err)
}

func TestUSDRate_MissingCoinInResponse(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	})

	_, err := c.USDRate(context.Background(), "ETH")
	assert.Error(t, err)
}
