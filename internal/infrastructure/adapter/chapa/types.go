package chapa

// Wire shapes for the Chapa HTTP API. Field names follow the provider's
// documented JSON exactly; the adapter translates them to and from the
// domain gateway types.

type initializeRequest struct {
	Amount                   string `json:"amount"`
	Currency                 string `json:"currency"`
	Email                    string `json:"email,omitempty"`
	FirstName                string `json:"first_name,omitempty"`
	LastName                 string `json:"last_name,omitempty"`
	PhoneNumber              string `json:"phone_number,omitempty"`
	TxRef                    string `json:"tx_ref"`
	CallbackURL              string `json:"callback_url,omitempty"`
	ReturnURL                string `json:"return_url,omitempty"`
	CustomizationTitle       string `json:"customization[title],omitempty"`
	CustomizationDescription string `json:"customization[description],omitempty"`
}

type initializeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    struct {
		CheckoutURL string `json:"checkout_url"`
	} `json:"data"`
}

type verifyResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    struct {
		FirstName string  `json:"first_name"`
		LastName  string  `json:"last_name"`
		Email     string  `json:"email"`
		Currency  string  `json:"currency"`
		Amount    float64 `json:"amount"`
		Charge    float64 `json:"charge"`
		Mode      string  `json:"mode"`
		Method    string  `json:"method"`
		Type      string  `json:"type"`
		Status    string  `json:"status"`
		Reference string  `json:"reference"`
		TxRef     string  `json:"tx_ref"`
		CreatedAt string  `json:"created_at"`
		UpdatedAt string  `json:"updated_at"`
	} `json:"data"`
}

type directChargeRequest struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Email     string `json:"email,omitempty"`
	Mobile    string `json:"mobile"`
	TxRef     string `json:"tx_ref"`
}

type directChargeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Data    struct {
		AuthType string `json:"auth_type"`
		Meta     struct {
			Message string `json:"message"`
			Status  string `json:"status"`
			RefID   string `json:"ref_id"`
		} `json:"meta"`
	} `json:"data"`
}

type authorizeRequest struct {
	Reference string `json:"reference"`
	Client    string `json:"client"`
}

type authorizeResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// errorEnvelope captures the provider's failure body regardless of shape;
// message may be a string or a field-keyed object depending on the endpoint
type errorEnvelope struct {
	Message any    `json:"message"`
	Status  string `json:"status"`
}
