package sdk

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	airtimenigeria "github.com/airtimenigeria/sdk-go"
	"github.com/airtimenigeria/sdk-go/errors"
)

func TestPurchaseAirtimeValidation(t *testing.T) {
	valid := airtimenigeria.AirtimeParams{
		NetworkOperator: airtimenigeria.OperatorMTN,
		Phone:           "08012345678",
		Amount:          500,
		MaxAmount:       "500",
	}

	tests := []struct {
		name   string
		mutate func(*airtimenigeria.AirtimeParams)
	}{
		{name: "amount below minimum", mutate: func(p *airtimenigeria.AirtimeParams) { p.Amount = 25 }},
		{name: "amount above maximum", mutate: func(p *airtimenigeria.AirtimeParams) { p.Amount = 60000 }},
		{name: "unsupported operator", mutate: func(p *airtimenigeria.AirtimeParams) { p.NetworkOperator = "sprint" }},
		{name: "missing operator", mutate: func(p *airtimenigeria.AirtimeParams) { p.NetworkOperator = "" }},
		{name: "missing phone", mutate: func(p *airtimenigeria.AirtimeParams) { p.Phone = "" }},
		{name: "missing amount", mutate: func(p *airtimenigeria.AirtimeParams) { p.Amount = 0 }},
		{name: "missing max amount", mutate: func(p *airtimenigeria.AirtimeParams) { p.MaxAmount = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

			params := valid
			tt.mutate(&params)

			resp, err := client.PurchaseAirtime(context.Background(), params)

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, &errors.SDKError{Code: errors.VALIDATION_FAILED}))
			assert.Equal(t, int64(0), hits.Load(), "invalid calls must never reach the network")
		})
	}
}

func TestPurchaseAirtimeWireMapping(t *testing.T) {
	client, hits := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/airtime", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "mtn", body["network_operator"])
		assert.Equal(t, "08012345678,08123456789", body["phone"])
		assert.Equal(t, float64(1000), body["amount"])
		assert.Equal(t, "1000", body["max_amount"])
		assert.Equal(t, "https://example.com/hook", body["callback_url"])
		assert.Equal(t, "order-42", body["customer_reference"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"status": "processing",
			"message": "Airtime purchase in progress",
			"data": {
				"network_operator": "mtn",
				"phone": "08012345678,08123456789",
				"amount": 1000,
				"reference": "ANG-12345",
				"customer_reference": "order-42",
				"status": "processing"
			}
		}`))
	})

	resp, err := client.PurchaseAirtime(context.Background(), airtimenigeria.AirtimeParams{
		NetworkOperator:   airtimenigeria.OperatorMTN,
		Phone:             "08012345678,08123456789",
		Amount:            1000,
		MaxAmount:         "1000",
		CallbackURL:       "https://example.com/hook",
		CustomerReference: "order-42",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), hits.Load())
	assert.True(t, resp.Success)
	assert.Equal(t, "ANG-12345", resp.Data.Reference)
	assert.True(t, resp.Data.Amount.Equal(decimal.NewFromInt(1000)))
}

func TestPurchaseAirtimeOmitsUnsetOptionals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.NotContains(t, body, "callback_url")
		assert.NotContains(t, body, "customer_reference")

		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{}}`))
	})

	_, err := client.PurchaseAirtime(context.Background(), airtimenigeria.AirtimeParams{
		NetworkOperator: airtimenigeria.OperatorGlo,
		Phone:           "08012345678",
		Amount:          50,
		MaxAmount:       "50",
	})
	require.NoError(t, err)
}

func TestPurchaseAirtimeSemanticFailurePassesThrough(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"success":false,"message":"insufficient balance","data":{}}`))
	})

	resp, err := client.PurchaseAirtime(context.Background(), airtimenigeria.AirtimeParams{
		NetworkOperator: airtimenigeria.OperatorAirtel,
		Phone:           "08012345678",
		Amount:          500,
		MaxAmount:       "500",
	})

	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "insufficient balance", resp.Message)
}
