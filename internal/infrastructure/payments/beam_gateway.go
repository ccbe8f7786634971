package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase/interfaces"
)

const (
	sandboxBaseURL    = "https://api.sandbox.beamcheckout.com"
	productionBaseURL = "https://api.beamcheckout.com"
	paymentLinksPath  = "/api/v1/payment-links"

	// A hanging provider must not stall requests indefinitely.
	requestTimeout = 30 * time.Second

	maxErrorBodyBytes = 8 << 10
)

var ErrEmptyPaymentLinkID = errors.New("gateway response missing paymentLinkId")

// BeamGateway mints hosted payment links against the Beam checkout API.
//
// Credentials come from the resolved GatewayConfig per call, not from the
// environment: the merchant can rotate keys in settings without a restart.

type BeamGateway struct {
	httpClient *http.Client
	baseURL    string // overrides environment selection, tests only
}

var _ interfaces.IPaymentLinkGateway = (*BeamGateway)(nil)

func NewBeamGateway() *BeamGateway {
	return &BeamGateway{
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

type linkSettingBody struct {
	IsEnabled bool `json:"isEnabled"`
}

type linkOrderBody struct {
	Currency    string `json:"currency"`
	NetAmount   int64  `json:"netAmount"`
	Description string `json:"description"`
	ReferenceID string `json:"referenceId"`
}

type createLinkBody struct {
	Order        linkOrderBody              `json:"order"`
	LinkSettings map[string]linkSettingBody `json:"linkSettings"`
	RedirectURL  string                     `json:"redirectUrl"`
}

type createLinkResponse struct {
	PaymentLinkID string `json:"paymentLinkId"`
	URL           string `json:"url"`
	Status        string `json:"status"`
}

func (g *BeamGateway) CreatePaymentLink(ctx context.Context, cfg entities.GatewayConfig, req interfaces.PaymentLinkRequest) (interfaces.PaymentLink, error) {
	log.Printf("[paylink][gateway] create start reference_id=%s amount_minor=%d env=%s", req.ReferenceID, req.AmountMinor, cfg.Environment)

	body := createLinkBody{
		Order: linkOrderBody{
			Currency:    req.Currency,
			NetAmount:   req.AmountMinor,
			Description: req.Description,
			ReferenceID: req.ReferenceID,
		},
		LinkSettings: make(map[string]linkSettingBody, len(req.LinkSettings)),
		RedirectURL:  req.RedirectURL,
	}
	for key, enabled := range req.LinkSettings {
		body.LinkSettings[key] = linkSettingBody{IsEnabled: enabled}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return interfaces.PaymentLink{}, err
	}

	url := g.resolveBaseURL(cfg.Environment) + paymentLinksPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return interfaces.PaymentLink{}, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(cfg.MerchantID, cfg.APIKey)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("[paylink][gateway] request failed reference_id=%s err=%v", req.ReferenceID, err)
		return interfaces.PaymentLink{}, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return interfaces.PaymentLink{}, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail := raw
		if len(detail) > maxErrorBodyBytes {
			detail = detail[:maxErrorBodyBytes]
		}
		log.Printf("[paylink][gateway] non-success response reference_id=%s status=%d body=%s", req.ReferenceID, resp.StatusCode, detail)
		return interfaces.PaymentLink{}, fmt.Errorf("payment link request rejected: status=%d body=%s", resp.StatusCode, detail)
	}

	var parsed createLinkResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		log.Printf("[paylink][gateway] response unmarshal failed reference_id=%s err=%v", req.ReferenceID, err)
		return interfaces.PaymentLink{}, err
	}
	if parsed.PaymentLinkID == "" {
		return interfaces.PaymentLink{}, ErrEmptyPaymentLinkID
	}

	log.Printf("[paylink][gateway] create success reference_id=%s payment_link_id=%s status=%s", req.ReferenceID, parsed.PaymentLinkID, parsed.Status)
	return interfaces.PaymentLink{
		ID:     parsed.PaymentLinkID,
		URL:    parsed.URL,
		Status: parsed.Status,
		Raw:    raw,
	}, nil
}

func (g *BeamGateway) resolveBaseURL(env entities.GatewayEnvironment) string {
	if g.baseURL != "" {
		return g.baseURL
	}
	if env == entities.GatewayEnvProduction {
		return productionBaseURL
	}
	return sandboxBaseURL
}
