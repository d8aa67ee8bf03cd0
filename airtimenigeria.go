// Package airtimenigeria provides a Go SDK for the Airtime Nigeria vending
// API. It covers airtime top-ups, data bundle purchases, wallet-funded data
// vends, data plan catalog lookups, and wallet balance checks, while leaving
// credential storage and response interpretation to the developer.
package airtimenigeria

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NetworkOperator identifies one of the four supported Nigerian carriers.
type NetworkOperator string

const (
	// OperatorMTN is MTN Nigeria.
	OperatorMTN NetworkOperator = "mtn"

	// OperatorAirtel is Airtel Nigeria.
	OperatorAirtel NetworkOperator = "airtel"

	// OperatorGlo is Globacom.
	OperatorGlo NetworkOperator = "glo"

	// Operator9Mobile is 9mobile (formerly Etisalat Nigeria).
	Operator9Mobile NetworkOperator = "9mobile"
)

// Valid reports whether the operator is one of the supported carriers.
func (o NetworkOperator) Valid() bool {
	switch o {
	case OperatorMTN, OperatorAirtel, OperatorGlo, Operator9Mobile:
		return true
	default:
		return false
	}
}

// NetworkOperators returns the supported carriers in a stable order.
func NetworkOperators() []NetworkOperator {
	return []NetworkOperator{OperatorMTN, OperatorAirtel, OperatorGlo, Operator9Mobile}
}

// ProcessType indicates how a wallet-funded data vend is executed by the
// remote system.
type ProcessType string

const (
	// ProcessQueue enqueues the vend for asynchronous processing.
	ProcessQueue ProcessType = "queue"

	// ProcessInstant completes the vend in the same request.
	ProcessInstant ProcessType = "instant"
)

// Valid reports whether the process type is one of the allowed values.
func (p ProcessType) Valid() bool {
	return p == ProcessQueue || p == ProcessInstant
}

// PriceType selects which tier of a data plan's pricing applies.
type PriceType string

const (
	// PriceRegular is the standard retail price and the default tier.
	PriceRegular PriceType = "regular"

	// PriceAgent is the discounted agent price.
	PriceAgent PriceType = "agent"

	// PriceDealer is the discounted dealer price.
	PriceDealer PriceType = "dealer"
)

// Valid reports whether the price type is one of the allowed tiers.
func (p PriceType) Valid() bool {
	switch p {
	case PriceRegular, PriceAgent, PriceDealer:
		return true
	default:
		return false
	}
}

// APIResponse is the generic envelope every Airtime Nigeria endpoint returns.
// Success is the API's own semantic verdict; the SDK never translates it into
// a local error, leaving interpretation to the caller.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// DataPlan is a single entry in the data bundle catalog. PackageCode is the
// catalog-unique key; PlanID is the equivalent numeric identifier.
type DataPlan struct {
	NetworkOperator NetworkOperator `json:"network_operator"`
	PlanSummary     string          `json:"plan_summary"`
	PackageCode     string          `json:"package_code"`
	PlanID          int64           `json:"plan_id"`
	Validity        string          `json:"validity"`
	RegularPrice    decimal.Decimal `json:"regular_price"`
	AgentPrice      decimal.Decimal `json:"agent_price"`
	DealerPrice     decimal.Decimal `json:"dealer_price"`
	Currency        string          `json:"currency"`
}

// Price returns the plan's price for the given tier. An unknown tier falls
// back to the regular price.
func (p DataPlan) Price(tier PriceType) decimal.Decimal {
	switch tier {
	case PriceAgent:
		return p.AgentPrice
	case PriceDealer:
		return p.DealerPrice
	default:
		return p.RegularPrice
	}
}

// PurchaseDetails is the data payload returned for airtime purchases, data
// purchases, and wallet vends.
type PurchaseDetails struct {
	NetworkOperator   NetworkOperator `json:"network_operator"`
	Phone             string          `json:"phone"`
	Amount            decimal.Decimal `json:"amount"`
	PackageCode       string          `json:"package_code,omitempty"`
	Reference         string          `json:"reference"`
	CustomerReference string          `json:"customer_reference,omitempty"`
	Status            string          `json:"status"`
}

// WalletBalance is the data payload returned by the balance endpoint.
type WalletBalance struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
}

// PurchaseResponse is the decoded envelope for purchase and vend operations.
type PurchaseResponse = APIResponse[PurchaseDetails]

// DataPlansResponse is the decoded envelope for the plan catalog.
type DataPlansResponse = APIResponse[[]DataPlan]

// WalletBalanceResponse is the decoded envelope for wallet balance checks.
type WalletBalanceResponse = APIResponse[WalletBalance]

// AirtimeParams are the inputs for an airtime purchase. NetworkOperator,
// Phone, Amount, and MaxAmount are required; the rest are optional.
type AirtimeParams struct {
	// NetworkOperator is the carrier to top up.
	NetworkOperator NetworkOperator

	// Phone is one local phone number or a comma-separated list of numbers.
	Phone string

	// Amount is the top-up value in naira, between 50 and 50000 inclusive.
	Amount int

	// MaxAmount is the string-encoded ceiling the caller authorises for
	// this purchase.
	MaxAmount string

	// CallbackURL, if set, receives the delivery report.
	CallbackURL string

	// CustomerReference is an optional caller-supplied idempotency token.
	// It is attached as-is and never validated locally.
	CustomerReference string
}

// DataParams are the inputs for a data bundle purchase. Phone is required,
// along with exactly one plan identifier: PackageCode or PlanID. When both
// are supplied, PackageCode takes precedence and PlanID is ignored.
type DataParams struct {
	Phone             string
	PackageCode       string
	PlanID            int64
	MaxAmount         string
	CallbackURL       string
	CustomerReference string
}

// WalletVendParams are the inputs for a wallet-funded data vend. The plan
// identifier rule is the same as DataParams; ProcessType is optional.
type WalletVendParams struct {
	DataParams

	// ProcessType selects queued or instant processing. Leave empty to use
	// the API default.
	ProcessType ProcessType
}

// NewCustomerReference returns a fresh UUID string suitable for use as a
// customer reference on purchase requests.
func NewCustomerReference() string {
	return uuid.NewString()
}
