package gateway

import "context"

// ChargeType identifies a mobile-money provider for direct charges
type ChargeType string

// Supported direct-charge providers
const (
	ChargeTelebirr ChargeType = "telebirr"
	ChargeMpesa    ChargeType = "mpesa"
	ChargeCBEBirr  ChargeType = "cbebirr"
	ChargeEBirr    ChargeType = "ebirr"
	ChargeEnatBank ChargeType = "enat_bank"
)

// IsValid reports whether the charge type is one of the supported providers
func (c ChargeType) IsValid() bool {
	switch c {
	case ChargeTelebirr, ChargeMpesa, ChargeCBEBirr, ChargeEBirr, ChargeEnatBank:
		return true
	}
	return false
}

// Customization carries branding shown on the hosted checkout page
type Customization struct {
	Title       string
	Description string
}

// InitializeRequest is the input for a hosted checkout initialization.
// TxRef, CallbackURL, ReturnURL and Customization are optional; the
// gateway adapter substitutes configured defaults when they are empty.
type InitializeRequest struct {
	Amount        string
	Currency      string
	Email         string
	FirstName     string
	LastName      string
	PhoneNumber   string
	TxRef         string
	CallbackURL   string
	ReturnURL     string
	Customization *Customization
}

// InitializeResponse is the provider's checkout-initialization result
type InitializeResponse struct {
	CheckoutURL string
	TxRef       string
}

// VerifyResponse is the provider's verification result for one reference
type VerifyResponse struct {
	Status    string
	TxRef     string
	Reference string
	Amount    float64
	Currency  string
	Method    string
}

// TxRefOptions controls the shape of generated transaction references
type TxRefOptions struct {
	RemovePrefix bool
	Prefix       string
	Size         int
}

// DirectChargeRequest is the input for a one-step mobile-money charge
type DirectChargeRequest struct {
	Amount     string
	Currency   string
	FirstName  string
	LastName   string
	Email      string
	Mobile     string
	TxRef      string
	ChargeType ChargeType
}

// DirectChargeResponse is the provider's direct-charge result
type DirectChargeResponse struct {
	Status   string
	Message  string
	TxRef    string
	AuthType string
}

// AuthorizeRequest completes a two-step direct-charge flow
type AuthorizeRequest struct {
	Reference   string
	ClientToken string
	ChargeType  ChargeType
}

// AuthorizeResponse is the provider's charge-authorization result
type AuthorizeResponse struct {
	Status  string
	Message string
}

// PaymentGateway presents a stable local surface over the external payment
// provider. Every remote operation is a pass-through: provider errors are
// logged and returned unchanged, with no retry and no local interpretation.
type PaymentGateway interface {
	// InitializePayment starts a hosted checkout session
	InitializePayment(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)

	// InitializeMobilePayment starts a mobile checkout session; the
	// request must carry a phone number
	InitializeMobilePayment(ctx context.Context, req InitializeRequest) (*InitializeResponse, error)

	// VerifyPayment fetches the provider's view of one transaction reference
	VerifyPayment(ctx context.Context, txRef string) (*VerifyResponse, error)

	// GenerateTxRef produces a new unique transaction reference
	GenerateTxRef(opts TxRefOptions) string

	// ProcessDirectCharge charges a payer through a mobile-money provider
	ProcessDirectCharge(ctx context.Context, req DirectChargeRequest) (*DirectChargeResponse, error)

	// AuthorizeDirectCharge completes a pending direct charge with the
	// client token obtained from the payer
	AuthorizeDirectCharge(ctx context.Context, req AuthorizeRequest) (*AuthorizeResponse, error)
}
