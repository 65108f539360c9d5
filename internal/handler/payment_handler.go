package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/middleware"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/internal/service"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/pkg/logger"
	"github.com/VATSALJOSHI07/RERA-Document-Tracking-2/prometheus"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PaymentHandler exposes the payment ledger.
type PaymentHandler struct {
	ledger *service.PaymentLedger
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(ledger *service.PaymentLedger) *PaymentHandler {
	return &PaymentHandler{ledger: ledger}
}

// Create handles opening a new payment obligation
func (h *PaymentHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordPaymentOperation("create")

	var req struct {
		ClientID    uint             `json:"clientId"`
		Amount      *decimal.Decimal `json:"amount"`
		Description string           `json:"description"`
		DueDate     *time.Time       `json:"dueDate"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid payment request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("insert")(time.Now())
	payment, err := h.ledger.Create(c.Request().Context(), middleware.OwnerID(c), req.ClientID, req.Amount, req.Description, req.DueDate)
	if err != nil {
		return respondError(c, log, err, "payment")
	}

	log.Info("Payment created",
		zap.Uint("payment_id", payment.ID),
		zap.Uint("client_id", payment.ClientID),
		zap.String("amount", payment.Amount.StringFixed(2)))
	return c.JSON(http.StatusOK, payment)
}

// Record handles settling part of a payment
func (h *PaymentHandler) Record(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")
	prometheus.RecordPaymentOperation("record")

	var req struct {
		Amount decimal.Decimal `json:"amount"`
		Date   string          `json:"date"`
		Notes  string          `json:"notes"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Invalid payment request data", zap.Uint("payment_id", id), zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	defer prometheus.TrackDBOperation("update")(time.Now())
	payment, err := h.ledger.Record(c.Request().Context(), id, req.Amount, req.Date, req.Notes)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAmount) {
			prometheus.OverpaymentRejectedCounter.Inc()
		}
		return respondError(c, log, err, "payment")
	}

	log.Info("Payment recorded",
		zap.Uint("payment_id", payment.ID),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.String("paid_amount", payment.PaidAmount.StringFixed(2)))
	return c.JSON(http.StatusOK, payment)
}

// Delete handles removing a fully settled payment
func (h *PaymentHandler) Delete(c echo.Context) error {
	log := logger.FromContext(c)
	id := pathID(c, "id")
	prometheus.RecordPaymentOperation("delete")

	defer prometheus.TrackDBOperation("delete")(time.Now())
	if err := h.ledger.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, log, err, "payment")
	}

	log.Info("Payment deleted", zap.Uint("payment_id", id))
	return c.JSON(http.StatusOK, echo.Map{"message": "Payment deleted successfully"})
}

// ListForClient handles retrieving all payments against one client
func (h *PaymentHandler) ListForClient(c echo.Context) error {
	log := logger.FromContext(c)
	clientID := pathID(c, "clientId")

	defer prometheus.TrackDBOperation("query")(time.Now())
	payments, err := h.ledger.ListForClient(c.Request().Context(), clientID)
	if err != nil {
		return respondError(c, log, err, "payments")
	}

	return c.JSON(http.StatusOK, payments)
}

// ListForOwner handles retrieving all payments across the owner's clients
func (h *PaymentHandler) ListForOwner(c echo.Context) error {
	log := logger.FromContext(c)

	defer prometheus.TrackDBOperation("query")(time.Now())
	payments, err := h.ledger.ListForOwner(c.Request().Context(), middleware.OwnerID(c))
	if err != nil {
		return respondError(c, log, err, "payments")
	}

	return c.JSON(http.StatusOK, payments)
}
