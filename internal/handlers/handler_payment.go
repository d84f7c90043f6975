package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/SscSPs/sitebooks_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to payments and their postings.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(ps portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: ps}
}

// registerPaymentRoutes registers routes related to payments.
func registerPaymentRoutes(company *gin.RouterGroup, ps portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(ps)

	payments := company.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.GET("", h.listPayments)
		payments.POST("/backfill", h.backfillPayments)
		payments.GET("/:payment_id", h.getPayment)
		payments.POST("/:payment_id/post", h.postPayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Stores the payment and posts its journal entry. A posting failure is reported in postingError; the payment is still stored.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.PostingResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Company or bank account not found"
// @Failure 500 {object} map[string]string "Failed to create payment"
// @Security BearerAuth
// @Router /companies/{company_id}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	result, err := h.paymentService.CreatePayment(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create payment")
		return
	}

	logger = logger.With(slog.String("payment_id", result.Payment.PaymentID))
	if result.Error != "" {
		logger.Warn("Payment stored without a journal entry", slog.String("posting_error", result.Error))
	} else {
		logger.Info("Payment created and posted")
	}
	c.JSON(http.StatusCreated, dto.ToPostingResponse(result))
}

// listPayments godoc
// @Summary List payments
// @Tags payments
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   limit query int false "Page size" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list payments"
// @Security BearerAuth
// @Router /companies/{company_id}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListPaymentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPayments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), c.Param("company_id"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err, "Failed to list payments")
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentResponse(payments))
}

// getPayment godoc
// @Summary Get a payment
// @Description Returns the payment and its entry. A payment without an entry is posted first.
// @Tags payments
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   payment_id path string true "Payment ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 500 {object} map[string]string "Failed to retrieve payment"
// @Security BearerAuth
// @Router /companies/{company_id}/payments/{payment_id} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	result, err := h.paymentService.GetPayment(c.Request.Context(), c.Param("company_id"), c.Param("payment_id"), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve payment")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostingResponse(result))
}

// postPayment godoc
// @Summary Post a payment
// @Description Compiles and stores the payment's journal entry. Posting an already posted payment returns the existing entry.
// @Tags payments
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   payment_id path string true "Payment ID"
// @Success 200 {object} dto.PostingResponse
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 422 {object} map[string]string "No account mapped for a posting role"
// @Failure 500 {object} map[string]string "Failed to post payment"
// @Security BearerAuth
// @Router /companies/{company_id}/payments/{payment_id}/post [post]
func (h *paymentHandler) postPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}
	paymentID := c.Param("payment_id")
	logger = logger.With(slog.String("payment_id", paymentID))

	result, err := h.paymentService.PostPayment(c.Request.Context(), c.Param("company_id"), paymentID, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to post payment")
		return
	}

	logger.Info("Payment posted", slog.Int("warnings", len(result.Warnings)))
	c.JSON(http.StatusOK, dto.ToPostingResponse(result))
}

// backfillPayments godoc
// @Summary Post every payment missing a journal entry
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   request body dto.BackfillRequest false "Run bounds"
// @Success 200 {object} domain.BackfillResult
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to backfill payments"
// @Security BearerAuth
// @Router /companies/{company_id}/payments/backfill [post]
func (h *paymentHandler) backfillPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BackfillRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Warn("Failed to bind JSON for BackfillPayments", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
			return
		}
	}

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	result, err := h.paymentService.BackfillPayments(c.Request.Context(), c.Param("company_id"), req.Limit, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to backfill payments")
		return
	}

	logger.Info("Backfill finished",
		slog.Int("scanned", result.Scanned),
		slog.Int("posted", result.Posted),
		slog.Int("failed", result.Failed))
	c.JSON(http.StatusOK, result)
}
