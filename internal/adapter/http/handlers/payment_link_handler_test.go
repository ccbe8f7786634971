package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/kwamkid/joolz-factory-sub006/internal/adapter/http/handlers/mocks"
	"github.com/kwamkid/joolz-factory-sub006/internal/domain/entities"
	"github.com/kwamkid/joolz-factory-sub006/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPaymentLinkHandler_CreatePaymentLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing order_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/links", h.CreatePaymentLink)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/links", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("state errors map to 400", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
			code string
		}{
			{"cancelled", usecase.ErrOrderCancelled, "ORDER_CANCELLED"},
			{"not pending", usecase.ErrOrderNotPaymentPending, "ORDER_NOT_PENDING"},
			{"not configured", usecase.ErrGatewayNotConfigured, "GATEWAY_NOT_CONFIGURED"},
			{"credentials missing", usecase.ErrGatewayCredentialsMissing, "GATEWAY_CREDENTIALS_MISSING"},
			{"no channel", usecase.ErrNoChannelAvailable, "NO_CHANNEL_AVAILABLE"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
				h := NewPaymentLinkHandler(uc)

				r := gin.New()
				r.POST("/v1/payments/links", h.CreatePaymentLink)

				uc.EXPECT().CreateLink(gomock.Any(), "ord-1").Return(entities.PaymentRecord{}, tc.err)

				req := httptest.NewRequest(http.MethodPost, "/v1/payments/links", bytes.NewBufferString(`{"order_id":"ord-1"}`))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				r.ServeHTTP(w, req)

				if w.Code != http.StatusBadRequest {
					t.Fatalf("expected 400, got %d", w.Code)
				}
				var body map[string]any
				_ = json.Unmarshal(w.Body.Bytes(), &body)
				if body["code"] != tc.code {
					t.Fatalf("expected code %s, got %v", tc.code, body["code"])
				}
			})
		}
	})

	t.Run("order not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/links", h.CreatePaymentLink)

		uc.EXPECT().CreateLink(gomock.Any(), "ord-404").Return(entities.PaymentRecord{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/links", bytes.NewBufferString(`{"order_id":"ord-404"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to 500 with generic message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/links", h.CreatePaymentLink)

		wrapped := usecase.ErrGatewayRequestFailed
		uc.EXPECT().CreateLink(gomock.Any(), "ord-1").Return(entities.PaymentRecord{}, wrapped)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/links", bytes.NewBufferString(`{"order_id":"ord-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Payment provider request failed" {
			t.Fatalf("expected generic message, got %v", body["message"])
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/links", h.CreatePaymentLink)

		now := time.Now().UTC()
		uc.EXPECT().CreateLink(gomock.Any(), "ord-1").Return(entities.PaymentRecord{
			ID:             "rec-1",
			OrderID:        "ord-1",
			PaymentMethod:  entities.PaymentMethodGateway,
			Amount:         500,
			Status:         entities.PaymentRecordPending,
			PaymentLinkID:  "pl_1",
			PaymentLinkURL: "https://pay/x",
			CreatedAt:      now,
			UpdatedAt:      now,
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/links", bytes.NewBufferString(`{"order_id":"ord-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_url"] != "https://pay/x" || body["payment_link_id"] != "pl_1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentLinkHandler_GetPaymentByOrderID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/orders/:order_id", h.GetPaymentByOrderID)

		uc.EXPECT().GetLatestByOrderID(gomock.Any(), "ord-1").Return(entities.PaymentRecord{}, usecase.ErrPaymentRecordNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.GET("/v1/payments/orders/:order_id", h.GetPaymentByOrderID)

		uc.EXPECT().GetLatestByOrderID(gomock.Any(), "ord-1").Return(entities.PaymentRecord{ID: "rec-1", OrderID: "ord-1", Status: entities.PaymentRecordPaid}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/payments/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "rec-1" || body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestPaymentLinkHandler_GatewayCallback(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/gateway/callback", h.GatewayCallback)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/callback", bytes.NewBufferString(`{"payment_link_id":"pl_1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("record not pending maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/gateway/callback", h.GatewayCallback)

		uc.EXPECT().ConfirmGatewayCallback(gomock.Any(), "pl_1", "paid").Return(entities.PaymentRecord{}, usecase.ErrPaymentRecordNotPending)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/callback", bytes.NewBufferString(`{"payment_link_id":"pl_1","status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentLinkUseCase(ctrl)
		h := NewPaymentLinkHandler(uc)

		r := gin.New()
		r.POST("/v1/payments/gateway/callback", h.GatewayCallback)

		uc.EXPECT().ConfirmGatewayCallback(gomock.Any(), "pl_1", "paid").Return(entities.PaymentRecord{ID: "rec-1", Status: entities.PaymentRecordPaid}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/payments/gateway/callback", bytes.NewBufferString(`{"payment_link_id":"pl_1","status":"paid"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
