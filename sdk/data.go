package sdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	airtimenigeria "github.com/airtimenigeria/sdk-go"
	"github.com/airtimenigeria/sdk-go/errors"
)

// PurchaseData buys a data bundle for a phone number, billed per transaction.
// Exactly one plan identifier is required: PackageCode or PlanID. When both
// are set, PackageCode takes precedence and PlanID is dropped from the wire
// request.
func (c *Client) PurchaseData(ctx context.Context, params airtimenigeria.DataParams) (*airtimenigeria.PurchaseResponse, error) {
	if err := validateDataParams(params); err != nil {
		return nil, err
	}

	var resp airtimenigeria.PurchaseResponse
	if _, err := c.transport.Do(ctx, http.MethodPost, "/data", dataBody(params), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VendDataFromWallet buys a data bundle funded from the wallet balance. The
// plan identifier rule matches PurchaseData; ProcessType, when given, selects
// queued or instant processing.
func (c *Client) VendDataFromWallet(ctx context.Context, params airtimenigeria.WalletVendParams) (*airtimenigeria.PurchaseResponse, error) {
	if err := validateDataParams(params.DataParams); err != nil {
		return nil, err
	}
	if params.ProcessType != "" && !params.ProcessType.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported process type %q", params.ProcessType))
	}

	body := dataBody(params.DataParams)
	if params.ProcessType != "" {
		body["process_type"] = params.ProcessType
	}

	var resp airtimenigeria.PurchaseResponse
	if _, err := c.transport.Do(ctx, http.MethodPost, "/data/wallet", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DataPlans fetches the full data plan catalog. Each call is a fresh
// snapshot; the SDK does not cache.
func (c *Client) DataPlans(ctx context.Context) (*airtimenigeria.DataPlansResponse, error) {
	var resp airtimenigeria.DataPlansResponse
	if _, err := c.transport.Do(ctx, http.MethodGet, "/data/plans", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DataPlansByOperator fetches the catalog and filters it client-side by
// carrier. It returns an empty slice, not an error, when the catalog fetch
// reports success=false or carries no plan list.
func (c *Client) DataPlansByOperator(ctx context.Context, operator airtimenigeria.NetworkOperator) ([]airtimenigeria.DataPlan, error) {
	if !operator.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported network operator %q", operator))
	}

	resp, err := c.DataPlans(ctx)
	if err != nil {
		return nil, err
	}

	plans := make([]airtimenigeria.DataPlan, 0)
	if !resp.Success || resp.Data == nil {
		return plans, nil
	}
	for _, plan := range resp.Data {
		if plan.NetworkOperator == operator {
			plans = append(plans, plan)
		}
	}
	return plans, nil
}

// FindDataPlan fetches the catalog and returns the plan whose package code
// matches exactly, or nil when no such plan exists or the catalog fetch
// reports success=false.
func (c *Client) FindDataPlan(ctx context.Context, packageCode string) (*airtimenigeria.DataPlan, error) {
	if strings.TrimSpace(packageCode) == "" {
		return nil, errors.NewValidationError("package code is required")
	}

	resp, err := c.DataPlans(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, nil
	}

	for i := range resp.Data {
		if resp.Data[i].PackageCode == packageCode {
			plan := resp.Data[i]
			return &plan, nil
		}
	}
	return nil, nil
}

// DataPlanPrice returns the plan's price for the requested tier, defaulting
// to the regular tier when tier is empty. It returns nil only when the plan
// is not found; a plan whose tier price is literally zero yields a non-nil
// zero decimal.
func (c *Client) DataPlanPrice(ctx context.Context, packageCode string, tier airtimenigeria.PriceType) (*decimal.Decimal, error) {
	if tier == "" {
		tier = airtimenigeria.PriceRegular
	}
	if !tier.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unsupported price type %q", tier))
	}

	plan, err := c.FindDataPlan(ctx, packageCode)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, nil
	}

	price := plan.Price(tier)
	return &price, nil
}

// dataBody builds the wire payload shared by PurchaseData and
// VendDataFromWallet, inserting optional keys only when set.
func dataBody(params airtimenigeria.DataParams) map[string]any {
	body := map[string]any{
		"phone": params.Phone,
	}
	if params.PackageCode != "" {
		body["package_code"] = params.PackageCode
	} else {
		body["plan_id"] = params.PlanID
	}
	if params.MaxAmount != "" {
		body["max_amount"] = params.MaxAmount
	}
	if params.CallbackURL != "" {
		body["callback_url"] = params.CallbackURL
	}
	if params.CustomerReference != "" {
		body["customer_reference"] = params.CustomerReference
	}
	return body
}

func validateDataParams(params airtimenigeria.DataParams) error {
	if strings.TrimSpace(params.Phone) == "" {
		return errors.NewValidationError("phone is required")
	}
	if params.PackageCode == "" && params.PlanID == 0 {
		return errors.NewValidationError("either package code or plan id is required")
	}
	return nil
}
