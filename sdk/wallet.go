package sdk

import (
	"context"
	"net/http"

	airtimenigeria "github.com/airtimenigeria/sdk-go"
)

// WalletBalance fetches the current wallet balance.
func (c *Client) WalletBalance(ctx context.Context) (*airtimenigeria.WalletBalanceResponse, error) {
	var resp airtimenigeria.WalletBalanceResponse
	if _, err := c.transport.Do(ctx, http.MethodGet, "/balance", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
