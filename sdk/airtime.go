package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	airtimenigeria "github.com/airtimenigeria/sdk-go"
	"github.com/airtimenigeria/sdk-go/errors"
)

// Airtime purchase amount bounds in naira, inclusive.
const (
	MinAirtimeAmount = 50
	MaxAirtimeAmount = 50000
)

// PurchaseAirtime tops up one or more phone numbers with airtime. Parameters
// are validated locally before any network call; the returned envelope's
// Success flag carries the API's own verdict and is never translated into a
// local error.
func (c *Client) PurchaseAirtime(ctx context.Context, params airtimenigeria.AirtimeParams) (*airtimenigeria.PurchaseResponse, error) {
	if err := validateAirtimeParams(params); err != nil {
		return nil, err
	}

	body := map[string]any{
		"network_operator": params.NetworkOperator,
		"phone":            params.Phone,
		"amount":           params.Amount,
		"max_amount":       params.MaxAmount,
	}
	if params.CallbackURL != "" {
		body["callback_url"] = params.CallbackURL
	}
	if params.CustomerReference != "" {
		body["customer_reference"] = params.CustomerReference
	}

	var resp airtimenigeria.PurchaseResponse
	if _, err := c.transport.Do(ctx, http.MethodPost, "/airtime", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func validateAirtimeParams(params airtimenigeria.AirtimeParams) error {
	if params.NetworkOperator == "" {
		return errors.NewValidationError("network operator is required")
	}
	if !params.NetworkOperator.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unsupported network operator %q", params.NetworkOperator))
	}
	if strings.TrimSpace(params.Phone) == "" {
		return errors.NewValidationError("phone is required")
	}
	if params.Amount < MinAirtimeAmount || params.Amount > MaxAirtimeAmount {
		return errors.NewValidationError(fmt.Sprintf(
			"amount must be between %d and %d, got %d", MinAirtimeAmount, MaxAirtimeAmount, params.Amount))
	}
	if strings.TrimSpace(params.MaxAmount) == "" {
		return errors.NewValidationError("max amount is required")
	}
	return nil
}
