package sdk

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalletBalance(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/balance", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"message": "balance retrieved",
			"data": {"balance": 15250.75, "currency": "NGN"}
		}`))
	})

	resp, err := client.WalletBalance(context.Background())

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "NGN", resp.Data.Currency)
	assert.True(t, resp.Data.Balance.Equal(decimal.RequireFromString("15250.75")))
}
