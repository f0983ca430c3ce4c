package paymentControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/shopspring/decimal"
)

// Gateway is the client for the external payment service. Base URL, secret
// and redirect URL are injected at construction; handlers never read them
// from the environment.
type Gateway struct {
	BaseURL     string
	SecretKey   string
	RedirectURL string
	Client      *http.Client
}

func NewGateway(baseURL, secretKey, redirectURL string) *Gateway {
	return &Gateway{
		BaseURL:     baseURL,
		SecretKey:   secretKey,
		RedirectURL: redirectURL,
		Client:      &http.Client{},
	}
}

type Customer struct {
	Email       string `json:"email"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phonenumber"`
}

type PaymentRequest struct {
	TxRef       string   `json:"tx_ref"`
	Amount      string   `json:"amount"`
	Currency    string   `json:"currency"`
	RedirectURL string   `json:"redirect_url"`
	Customer    Customer `json:"customer"`
}

// VerifyResponse is the gateway's transaction-verification payload.
type VerifyResponse struct {
	Status string `json:"status"`
	Data   struct {
		Status   string          `json:"status"`
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency"`
		TxRef    string          `json:"tx_ref"`
	} `json:"data"`
}

// CreatePayment posts a payment-creation request and returns the gateway's
// status code and raw body so the handler can relay them verbatim.
func (g *Gateway) CreatePayment(req PaymentRequest) (int, []byte, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return 0, nil, err
	}

	httpReq, err := http.NewRequest("POST", g.BaseURL+"/payments", bytes.NewBuffer(jsonData))
	if err != nil {
		return 0, nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// VerifyTransaction calls the gateway's verification endpoint for the given
// gateway-side transaction id.
func (g *Gateway) VerifyTransaction(transactionID string) (*VerifyResponse, error) {
	url := fmt.Sprintf("%s/transactions/%s/verify", g.BaseURL, transactionID)
	httpReq, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.SecretKey)

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gateway verification error (%d): %s", resp.StatusCode, string(body))
	}

	var verify VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verify); err != nil {
		return nil, fmt.Errorf("failed to parse verification response: %w", err)
	}
	return &verify, nil
}
