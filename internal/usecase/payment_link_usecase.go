package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidOrderID            = errors.New("invalid order_id")
	ErrOrderNotFound             = errors.New("order not found")
	ErrOrderCancelled            = errors.New("order cancelled")
	ErrOrderNotPaymentPending    = errors.New("order not pending payment")
	ErrGatewayNotConfigured      = errors.New("payment gateway not configured")
	ErrGatewayCredentialsMissing = errors.New("payment gateway credentials missing")
	ErrNoChannelAvailable        = errors.New("no payment channel available")
	ErrGatewayRequestFailed      = errors.New("payment gateway request failed")
	ErrInvalidPaymentLinkID      = errors.New("invalid payment_link_id")
	ErrInvalidGatewayStatus      = errors.New("invalid gateway status")
	ErrPaymentRecordNotFound     = errors.New("payment record not found")
	ErrPaymentRecordNotPending   = errors.New("payment record not pending")
)

const linkCurrency = "THB"

// IPaymentLinkUseCase encapsulates the order-to-payment-link flow.
//
// CreateLink validates the order state, resolves the active gateway
// configuration, filters payment channels, mints a hosted link and
// reconciles payment records (cancel stale pending, insert one fresh
// pending). The order's own payment_status is never touched here.

type IPaymentLinkUseCase interface {
	CreateLink(ctx context.Context, orderID string) (entities.PaymentRecord, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error)
	ConfirmGatewayCallback(ctx context.Context, paymentLinkID, gatewayStatus string) (entities.PaymentRecord, error)
}

type PaymentLinkUseCase struct {
	recordRepo   interfaces.IPaymentRecordRepository
	orderRepo    interfaces.IOrderRepository
	customerRepo interfaces.ICustomerRepository
	configRepo   interfaces.IGatewayConfigRepository
	gateway      interfaces.IPaymentLinkGateway
}

var _ IPaymentLinkUseCase = (*PaymentLinkUseCase)(nil)

func NewPaymentLinkUseCase(
	recordRepo interfaces.IPaymentRecordRepository,
	orderRepo interfaces.IOrderRepository,
	customerRepo interfaces.ICustomerRepository,
	configRepo interfaces.IGatewayConfigRepository,
	gateway interfaces.IPaymentLinkGateway,
) *PaymentLinkUseCase {
	return &PaymentLinkUseCase{
		recordRepo:   recordRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		configRepo:   configRepo,
		gateway:      gateway,
	}
}

func (u *PaymentLinkUseCase) CreateLink(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	log.Printf("[paylink][usecase] create-link start raw_order_id=%q", orderID)
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		log.Printf("[paylink][usecase] invalid order_id (empty)")
		return entities.PaymentRecord{}, ErrInvalidOrderID
	}
	if u.gateway == nil {
		log.Printf("[paylink][usecase] gateway not configured order_id=%s", orderID)
		return entities.PaymentRecord{}, errors.New("payment link gateway not configured")
	}
	if u.orderRepo == nil {
		log.Printf("[paylink][usecase] order repository not configured order_id=%s", orderID)
		return entities.PaymentRecord{}, errors.New("order repository not configured")
	}

	log.Printf("[paylink][usecase] loading order order_id=%s", orderID)
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[paylink][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}
	if order.ID == "" {
		log.Printf("[paylink][usecase] order not found order_id=%s", orderID)
		return entities.PaymentRecord{}, ErrOrderNotFound
	}
	if !order.CanRequestPaymentLink() {
		if order.OrderStatus == entities.OrderStatusCancelled {
			log.Printf("[paylink][usecase] order cancelled order_id=%s", orderID)
			return entities.PaymentRecord{}, ErrOrderCancelled
		}
		log.Printf("[paylink][usecase] order not pending payment order_id=%s payment_status=%s", orderID, order.PaymentStatus)
		return entities.PaymentRecord{}, ErrOrderNotPaymentPending
	}
	log.Printf("[paylink][usecase] order loaded order_id=%s order_number=%s total=%.2f", orderID, order.OrderNumber, order.TotalAmount)

	cfg, err := u.configRepo.GetActive(ctx)
	if err != nil {
		log.Printf("[paylink][usecase] failed loading gateway config order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}
	if !cfg.Active {
		log.Printf("[paylink][usecase] no active gateway config order_id=%s", orderID)
		return entities.PaymentRecord{}, ErrGatewayNotConfigured
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[paylink][usecase] gateway config invalid order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, ErrGatewayCredentialsMissing
	}

	customerType := ""
	if order.CustomerID != "" && u.customerRepo != nil {
		customer, err := u.customerRepo.GetByID(ctx, order.CustomerID)
		if err != nil {
			log.Printf("[paylink][usecase] failed loading customer order_id=%s customer_id=%s err=%v", orderID, order.CustomerID, err)
			return entities.PaymentRecord{}, err
		}
		customerType = customer.CustomerType
	}

	settings := eligibleLinkSettings(order.TotalAmount, customerType, cfg.Channels)
	if !anySettingEnabled(settings) {
		log.Printf("[paylink][usecase] no eligible channel order_id=%s customer_type=%s total=%.2f", orderID, customerType, order.TotalAmount)
		return entities.PaymentRecord{}, ErrNoChannelAvailable
	}
	log.Printf("[paylink][usecase] channels resolved order_id=%s settings=%v", orderID, settings)

	linkReq := interfaces.PaymentLinkRequest{
		Currency:     linkCurrency,
		AmountMinor:  toMinorUnits(order.TotalAmount),
		Description:  order.OrderNumber,
		ReferenceID:  order.ID,
		LinkSettings: settings,
		RedirectURL:  redirectURLFor(order.ID),
	}

	log.Printf("[paylink][usecase] calling gateway order_id=%s amount_minor=%d", orderID, linkReq.AmountMinor)
	link, err := u.gateway.CreatePaymentLink(ctx, cfg, linkReq)
	if err != nil {
		// Full provider detail stays in the server log; callers get the
		// generic sentinel only.
		log.Printf("[paylink][usecase] gateway call failed order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, fmt.Errorf("%w: %v", ErrGatewayRequestFailed, err)
	}
	log.Printf("[paylink][usecase] gateway call success order_id=%s payment_link_id=%s gateway_status=%s", orderID, link.ID, link.Status)

	cancelled, err := u.recordRepo.CancelPendingByOrderID(ctx, order.ID, entities.PaymentMethodGateway)
	if err != nil {
		log.Printf("[paylink][usecase] cancel stale pending failed order_id=%s err=%v", orderID, err)
		return entities.PaymentRecord{}, err
	}
	if cancelled > 0 {
		log.Printf("[paylink][usecase] cancelled stale pending records order_id=%s count=%d", orderID, cancelled)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(link.Raw, &parsed); err != nil {
		log.Printf("[paylink][usecase] gateway response unmarshal failed order_id=%s err=%v", orderID, err)
	}

	now := time.Now().UTC()
	record := entities.PaymentRecord{
		ID:                uuid.NewString(),
		OrderID:           order.ID,
		PaymentMethod:     entities.PaymentMethodGateway,
		Amount:            order.TotalAmount,
		Status:            entities.PaymentRecordPending,
		PaymentLinkID:     link.ID,
		PaymentLinkURL:    link.URL,
		GatewayStatus:     link.Status,
		GatewayPayloadRaw: link.Raw,
		GatewayPayload:    parsed,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.recordRepo.Create(ctx, record)
	if err != nil {
		// The link was minted but no pending record exists; the next link
		// request reconciles and the orphaned link expires unserved.
		log.Printf("[paylink][usecase] record create failed order_id=%s payment_link_id=%s err=%v", orderID, link.ID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[paylink][usecase] create-link success order_id=%s record_id=%s payment_link_id=%s", orderID, created.ID, created.PaymentLinkID)
	return created, nil
}

func (u *PaymentLinkUseCase) GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentRecord{}, ErrInvalidOrderID
	}

	records, err := u.recordRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(records) == 0 {
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}
	return latest, nil
}

func (u *PaymentLinkUseCase) ConfirmGatewayCallback(ctx context.Context, paymentLinkID, gatewayStatus string) (entities.PaymentRecord, error) {
	log.Printf("[paylink][usecase] callback start payment_link_id=%q gateway_status=%q", paymentLinkID, gatewayStatus)
	paymentLinkID = strings.TrimSpace(paymentLinkID)
	if paymentLinkID == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentLinkID
	}

	next, err := recordStatusFromGateway(gatewayStatus)
	if err != nil {
		log.Printf("[paylink][usecase] callback unknown status payment_link_id=%s gateway_status=%q", paymentLinkID, gatewayStatus)
		return entities.PaymentRecord{}, err
	}

	record, err := u.recordRepo.GetByPaymentLinkID(ctx, paymentLinkID)
	if err != nil {
		log.Printf("[paylink][usecase] callback record lookup failed payment_link_id=%s err=%v", paymentLinkID, err)
		return entities.PaymentRecord{}, err
	}
	if record.ID == "" {
		log.Printf("[paylink][usecase] callback record not found payment_link_id=%s", paymentLinkID)
		return entities.PaymentRecord{}, ErrPaymentRecordNotFound
	}
	if err := record.Transition(next); err != nil {
		log.Printf("[paylink][usecase] callback rejected payment_link_id=%s record_id=%s err=%v", paymentLinkID, record.ID, err)
		return entities.PaymentRecord{}, ErrPaymentRecordNotPending
	}

	updated, err := u.recordRepo.TransitionStatus(ctx, record.ID, entities.PaymentRecordPending, next, gatewayStatus)
	if err != nil {
		log.Printf("[paylink][usecase] callback transition failed record_id=%s err=%v", record.ID, err)
		return entities.PaymentRecord{}, err
	}
	if updated.ID == "" {
		// Lost a race against another callback or a newer link request.
		log.Printf("[paylink][usecase] callback conditional no-op record_id=%s", record.ID)
		return entities.PaymentRecord{}, ErrPaymentRecordNotPending
	}

	if next == entities.PaymentRecordPaid {
		if _, err := u.orderRepo.MarkPaid(ctx, record.OrderID); err != nil {
			log.Printf("[paylink][usecase] order mark-paid failed order_id=%s err=%v", record.OrderID, err)
			return entities.PaymentRecord{}, err
		}
		log.Printf("[paylink][usecase] order marked paid order_id=%s", record.OrderID)
	}

	log.Printf("[paylink][usecase] callback success record_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

// toMinorUnits converts a major-unit amount to minor units (satang),
// rounding half away from zero. Everything downstream of this call works in
// integer minor units.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func redirectURLFor(orderID string) string {
	base := strings.TrimRight(getenvDefault("APP_BASE_URL", "http://localhost:3000"), "/")
	return base + "/payment/result/" + orderID
}

func recordStatusFromGateway(gatewayStatus string) (entities.PaymentRecordStatus, error) {
	switch strings.ToLower(strings.TrimSpace(gatewayStatus)) {
	case "paid", "succeeded", "completed":
		return entities.PaymentRecordPaid, nil
	case "failed", "expired", "cancelled":
		return entities.PaymentRecordFailed, nil
	}
	return "", ErrInvalidGatewayStatus
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
