package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/kwamkid/joolz-factory-sub006/internal/adapter/http/dto/request"
	response "github.com/kwamkid/joolz-factory-sub006/internal/adapter/http/dto/response"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase"
	"github.com/kwamkid/joolz-factory-sub006/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentLinkHandler handles HTTP requests for hosted payment links.

type PaymentLinkHandler struct {
	usecase usecase.IPaymentLinkUseCase
}

func NewPaymentLinkHandler(uc usecase.IPaymentLinkUseCase) *PaymentLinkHandler {
	return &PaymentLinkHandler{usecase: uc}
}

// CreatePaymentLink mints a hosted payment link for a pending order.
func (h *PaymentLinkHandler) CreatePaymentLink(c *gin.Context) {
	var payload request.PaymentLinkCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[paylink][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "order_id required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylink][handler] create start order_id=%s", payload.OrderID)

	created, err := h.usecase.CreateLink(c.Request.Context(), payload.OrderID)
	if err != nil {
		log.Printf("[paylink][handler] create failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapPaymentLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylink][handler] create success order_id=%s record_id=%s payment_link_id=%s", payload.OrderID, created.ID, created.PaymentLinkID)

	c.JSON(http.StatusOK, response.FromPaymentRecord(created))
}

// GetPaymentByOrderID returns the latest payment record for an order.
func (h *PaymentLinkHandler) GetPaymentByOrderID(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[paylink][handler] get-by-order start order_id=%s", orderID)

	latest, err := h.usecase.GetLatestByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[paylink][handler] get-by-order failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylink][handler] get-by-order success order_id=%s record_id=%s status=%s", orderID, latest.ID, latest.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(latest))
}

// GatewayCallback applies the gateway's terminal verdict to a pending record.
func (h *PaymentLinkHandler) GatewayCallback(c *gin.Context) {
	var payload request.GatewayCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[paylink][handler] invalid callback payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "payment_link_id and status required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylink][handler] callback start payment_link_id=%s status=%s", payload.PaymentLinkID, payload.Status)

	updated, err := h.usecase.ConfirmGatewayCallback(c.Request.Context(), payload.PaymentLinkID, payload.Status)
	if err != nil {
		log.Printf("[paylink][handler] callback failed payment_link_id=%s err=%v", payload.PaymentLinkID, err)
		appErr := mapPaymentLinkError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[paylink][handler] callback success payment_link_id=%s record_id=%s status=%s", payload.PaymentLinkID, updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(updated))
}

func mapPaymentLinkError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "order_id required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentLinkID), errors.Is(err, usecase.ErrInvalidGatewayStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderCancelled):
		return pkg.NewDomainErrorSimple("ORDER_CANCELLED", "Order is cancelled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotPaymentPending):
		return pkg.NewDomainErrorSimple("ORDER_NOT_PENDING", "Order is not pending payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Payment gateway is not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayCredentialsMissing):
		return pkg.NewDomainErrorSimple("GATEWAY_CREDENTIALS_MISSING", "Payment gateway credentials missing", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoChannelAvailable):
		return pkg.NewDomainErrorSimple("NO_CHANNEL_AVAILABLE", "No payment channel available for this order", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRecordNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment record is not pending", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayRequestFailed):
		// Provider detail is already in the server log; clients get the
		// generic message only.
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider request failed", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
