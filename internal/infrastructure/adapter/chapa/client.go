package chapa

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/khanut-app/backend/internal/domain/error"
	coreport "github.com/khanut-app/backend/internal/domain/port/core"
	"github.com/khanut-app/backend/internal/domain/port/gateway"
)

// DefaultBaseURL is the production Chapa API endpoint
const DefaultBaseURL = "https://api.chapa.co/v1"

const defaultTimeout = 30 * time.Second

// Config holds everything the client needs to talk to Chapa. It is built
// once at process entry and passed in; the client never reads ambient state.
type Config struct {
	SecretKey          string
	BaseURL            string
	CallbackURL        string
	ReturnURL          string
	DefaultTitle       string
	DefaultDescription string
	MobileTitle        string
	MobileDescription  string
	Timeout            time.Duration
}

// Client is a Chapa API client implementing the PaymentGateway port
type Client struct {
	cfg        Config
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a new Chapa client with one owned HTTP client
func NewClient(cfg Config, logger coreport.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.DefaultTitle == "" {
		cfg.DefaultTitle = "Khanut"
	}
	if cfg.DefaultDescription == "" {
		cfg.DefaultDescription = "Payment for products or services on Khanut"
	}
	if cfg.MobileTitle == "" {
		cfg.MobileTitle = "Khanut Mobile"
	}
	if cfg.MobileDescription == "" {
		cfg.MobileDescription = "Mobile payment on Khanut"
	}

	return &Client{
		cfg:    cfg,
		logger: logger,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// InitializePayment starts a hosted checkout session. Missing reference,
// callback/return URLs and branding are filled from the configured defaults.
func (c *Client) InitializePayment(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	body := c.buildInitializeRequest(req, c.cfg.DefaultTitle, c.cfg.DefaultDescription)

	var resp initializeResponse
	if err := c.post(ctx, "/transaction/initialize", body, &resp); err != nil {
		c.logger.Error("Chapa initialize failed", map[string]any{
			"tx_ref": body.TxRef,
			"error":  err.Error(),
		})
		return nil, errs.NewGatewayError("initialize", body.TxRef, err)
	}

	return &gateway.InitializeResponse{
		CheckoutURL: resp.Data.CheckoutURL,
		TxRef:       body.TxRef,
	}, nil
}

// InitializeMobilePayment starts a mobile checkout session with
// mobile-flavored default branding. A phone number is mandatory.
func (c *Client) InitializeMobilePayment(ctx context.Context, req gateway.InitializeRequest) (*gateway.InitializeResponse, error) {
	if req.PhoneNumber == "" {
		return nil, errs.ErrMissingPhoneNumber
	}
	body := c.buildInitializeRequest(req, c.cfg.MobileTitle, c.cfg.MobileDescription)

	var resp initializeResponse
	if err := c.post(ctx, "/transaction/mobile-initialize", body, &resp); err != nil {
		c.logger.Error("Chapa mobile initialize failed", map[string]any{
			"tx_ref": body.TxRef,
			"error":  err.Error(),
		})
		return nil, errs.NewGatewayError("mobile-initialize", body.TxRef, err)
	}

	return &gateway.InitializeResponse{
		CheckoutURL: resp.Data.CheckoutURL,
		TxRef:       body.TxRef,
	}, nil
}

// VerifyPayment fetches the provider's verification result for a reference
func (c *Client) VerifyPayment(ctx context.Context, txRef string) (*gateway.VerifyResponse, error) {
	if txRef == "" {
		return nil, errs.ErrInvalidTxRef
	}

	var resp verifyResponse
	if err := c.get(ctx, "/transaction/verify/"+txRef, &resp); err != nil {
		c.logger.Error("Chapa verify failed", map[string]any{
			"tx_ref": txRef,
			"error":  err.Error(),
		})
		return nil, errs.NewGatewayError("verify", txRef, err)
	}

	return &gateway.VerifyResponse{
		Status:    resp.Data.Status,
		TxRef:     resp.Data.TxRef,
		Reference: resp.Data.Reference,
		Amount:    resp.Data.Amount,
		Currency:  resp.Data.Currency,
		Method:    resp.Data.Method,
	}, nil
}

// ProcessDirectCharge charges a payer through the mobile-money provider
// named by the charge type
func (c *Client) ProcessDirectCharge(ctx context.Context, req gateway.DirectChargeRequest) (*gateway.DirectChargeResponse, error) {
	if !req.ChargeType.IsValid() {
		return nil, errs.ErrInvalidChargeType
	}
	txRef := req.TxRef
	if txRef == "" {
		txRef = c.GenerateTxRef(gateway.TxRefOptions{})
	}

	body := directChargeRequest{
		Amount:    req.Amount,
		Currency:  req.Currency,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		TxRef:     txRef,
	}

	var resp directChargeResponse
	path := "/charges?type=" + string(req.ChargeType)
	if err := c.post(ctx, path, body, &resp); err != nil {
		c.logger.Error("Chapa direct charge failed", map[string]any{
			"tx_ref":      txRef,
			"charge_type": string(req.ChargeType),
			"error":       err.Error(),
		})
		return nil, errs.NewGatewayError("direct-charge", txRef, err)
	}

	return &gateway.DirectChargeResponse{
		Status:   resp.Status,
		Message:  resp.Message,
		TxRef:    txRef,
		AuthType: resp.Data.AuthType,
	}, nil
}

// AuthorizeDirectCharge completes a two-step direct-charge flow
func (c *Client) AuthorizeDirectCharge(ctx context.Context, req gateway.AuthorizeRequest) (*gateway.AuthorizeResponse, error) {
	if !req.ChargeType.IsValid() {
		return nil, errs.ErrInvalidChargeType
	}

	body := authorizeRequest{
		Reference: req.Reference,
		Client:    req.ClientToken,
	}

	var resp authorizeResponse
	path := "/validate?type=" + string(req.ChargeType)
	if err := c.post(ctx, path, body, &resp); err != nil {
		c.logger.Error("Chapa charge authorization failed", map[string]any{
			"reference":   req.Reference,
			"charge_type": string(req.ChargeType),
			"error":       err.Error(),
		})
		return nil, errs.NewGatewayError("authorize", req.Reference, err)
	}

	return &gateway.AuthorizeResponse{
		Status:  resp.Status,
		Message: resp.Message,
	}, nil
}

func (c *Client) buildInitializeRequest(req gateway.InitializeRequest, defaultTitle, defaultDescription string) initializeRequest {
	txRef := req.TxRef
	if txRef == "" {
		txRef = c.GenerateTxRef(gateway.TxRefOptions{})
	}
	callbackURL := req.CallbackURL
	if callbackURL == "" {
		callbackURL = c.cfg.CallbackURL
	}
	returnURL := req.ReturnURL
	if returnURL == "" {
		returnURL = c.cfg.ReturnURL
	}
	title := defaultTitle
	description := defaultDescription
	if req.Customization != nil {
		title = req.Customization.Title
		description = req.Customization.Description
	}

	return initializeRequest{
		Amount:                   req.Amount,
		Currency:                 req.Currency,
		Email:                    req.Email,
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		PhoneNumber:              req.PhoneNumber,
		TxRef:                    txRef,
		CallbackURL:              callbackURL,
		ReturnURL:                returnURL,
		CustomizationTitle:       title,
		CustomizationDescription: description,
	}
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+path, nil)
	if err != nil {
		return err
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var envelope errorEnvelope
		if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != nil {
			return fmt.Errorf("chapa: %s: %v", resp.Status, envelope.Message)
		}
		return fmt.Errorf("chapa: %s: %s", resp.Status, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("chapa: decoding response: %w", err)
	}
	return nil
}
