package dto

// InitializePaymentRequest starts a checkout session. The customer identity
// comes from the admission gate, never from the body.
type InitializePaymentRequest struct {
	BusinessID  string  `json:"businessId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
	Email       string  `json:"email"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	PhoneNumber string  `json:"phoneNumber"`
	Method      string  `json:"method"`
	Description string  `json:"description"`
	TxRef       string  `json:"txRef"`
	CallbackURL string  `json:"callbackUrl"`
	ReturnURL   string  `json:"returnUrl"`
}

// InitializePaymentResponse returns the checkout redirect and the reference
// callers use to verify the payment later
type InitializePaymentResponse struct {
	CheckoutURL string `json:"checkoutUrl"`
	TxRef       string `json:"txRef"`
}

// VerifyPaymentResponse is the provider's verification result
type VerifyPaymentResponse struct {
	Status   string  `json:"status"`
	TxRef    string  `json:"txRef"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method,omitempty"`
}

// DirectChargeRequest charges a payer through a mobile-money provider
type DirectChargeRequest struct {
	BusinessID  string  `json:"businessId" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	Currency    string  `json:"currency"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Mobile      string  `json:"mobile" binding:"required"`
	TxRef       string  `json:"txRef"`
	ChargeType  string  `json:"chargeType" binding:"required"`
	Description string  `json:"description"`
}

// DirectChargeResponse is the provider's direct-charge result
type DirectChargeResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	TxRef    string `json:"txRef"`
	AuthType string `json:"authType,omitempty"`
}

// AuthorizeDirectChargeRequest completes a two-step direct-charge flow
type AuthorizeDirectChargeRequest struct {
	Reference   string `json:"reference" binding:"required"`
	ClientToken string `json:"client" binding:"required"`
	ChargeType  string `json:"chargeType" binding:"required"`
}

// AuthorizeDirectChargeResponse is the provider's authorization result
type AuthorizeDirectChargeResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
