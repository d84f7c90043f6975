package handlers

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/SscSPs/sitebooks_ledger/internal/middleware"
	"github.com/SscSPs/sitebooks_ledger/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// creditCardHandler handles cards and their statement imports.
type creditCardHandler struct {
	importService  portssvc.ImportSvcFacade
	posthogClient  *utils.PosthogClientWrapper
	maxImportBytes int64
}

func newCreditCardHandler(is portssvc.ImportSvcFacade, posthogClient *utils.PosthogClientWrapper, maxImportBytes int64) *creditCardHandler {
	return &creditCardHandler{importService: is, posthogClient: posthogClient, maxImportBytes: maxImportBytes}
}

// registerCreditCardRoutes registers card routes. The import route is rate limited when importLimiter is set.
// maxImportBytes <= 0 disables the upload size check.
func registerCreditCardRoutes(company *gin.RouterGroup, is portssvc.ImportSvcFacade, importLimiter *limiter.Limiter, posthogClient *utils.PosthogClientWrapper, maxImportBytes int64) {
	h := newCreditCardHandler(is, posthogClient, maxImportBytes)

	cards := company.Group("/credit-cards")
	{
		cards.POST("", h.createCreditCard)
		cards.GET("", h.listCreditCards)
		cards.GET("/:card_id", h.getCreditCard)
		cards.GET("/:card_id/transactions", h.listCardTransactions)

		importChain := []gin.HandlerFunc{h.importStatement}
		if importLimiter != nil {
			importChain = append([]gin.HandlerFunc{middleware.RateLimit(importLimiter)}, importChain...)
		}
		cards.POST("/:card_id/imports", importChain...)
	}
}

// createCreditCard godoc
// @Summary Register a credit card
// @Tags credit-cards
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   card body dto.CreateCreditCardRequest true "Card details"
// @Success 201 {object} dto.CreditCardResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to create credit card"
// @Security BearerAuth
// @Router /companies/{company_id}/credit-cards [post]
func (h *creditCardHandler) createCreditCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCreditCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCreditCard", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	card, err := h.importService.CreateCreditCard(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create credit card")
		return
	}

	logger.Info("Credit card created successfully", slog.String("card_id", card.CardID))
	c.JSON(http.StatusCreated, dto.ToCreditCardResponse(card))
}

// listCreditCards godoc
// @Summary List credit cards
// @Tags credit-cards
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {array} dto.CreditCardResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list credit cards"
// @Security BearerAuth
// @Router /companies/{company_id}/credit-cards [get]
func (h *creditCardHandler) listCreditCards(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	cards, err := h.importService.ListCreditCards(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list credit cards")
		return
	}

	c.JSON(http.StatusOK, dto.ToListCreditCardResponse(cards))
}

// getCreditCard godoc
// @Summary Get a credit card with its import statistics
// @Tags credit-cards
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   card_id path string true "Card ID"
// @Success 200 {object} dto.CreditCardResponse
// @Failure 404 {object} map[string]string "Credit card not found"
// @Failure 500 {object} map[string]string "Failed to retrieve credit card"
// @Security BearerAuth
// @Router /companies/{company_id}/credit-cards/{card_id} [get]
func (h *creditCardHandler) getCreditCard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	card, err := h.importService.GetCreditCard(c.Request.Context(), c.Param("company_id"), c.Param("card_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve credit card")
		return
	}

	c.JSON(http.StatusOK, dto.ToCreditCardResponse(card))
}

// importStatement godoc
// @Summary Import a card statement
// @Description Uploads a CSV or XLSX statement. Rows already imported for the card are counted as duplicates and skipped.
// @Tags credit-cards
// @Accept  multipart/form-data
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   card_id path string true "Card ID"
// @Param   file formData file true "Statement file"
// @Success 200 {object} domain.ImportResult
// @Failure 400 {object} map[string]string "Missing file or unreadable statement"
// @Failure 404 {object} map[string]string "Credit card not found"
// @Failure 413 {object} map[string]string "Statement file too large"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to import statement"
// @Security BearerAuth
// @Router /companies/{company_id}/credit-cards/{card_id}/imports [post]
func (h *creditCardHandler) importStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	header, err := c.FormFile("file")
	if err != nil {
		logger.Warn("Statement file missing from upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A statement file is required in the 'file' field"})
		return
	}
	cardID := c.Param("card_id")
	logger = logger.With(slog.String("card_id", cardID), slog.String("file_name", header.Filename), slog.Int64("file_size", header.Size))

	if h.maxImportBytes > 0 && header.Size > h.maxImportBytes {
		h.rejectTooLarge(c, logger)
		return
	}

	file, err := header.Open()
	if err != nil {
		logger.Error("Failed to open uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	defer file.Close()

	var src io.Reader = file
	if h.maxImportBytes > 0 {
		src = io.LimitReader(file, h.maxImportBytes+1)
	}
	data, err := io.ReadAll(src)
	if err != nil {
		logger.Error("Failed to read uploaded statement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read the uploaded file"})
		return
	}
	if h.maxImportBytes > 0 && int64(len(data)) > h.maxImportBytes {
		h.rejectTooLarge(c, logger)
		return
	}

	result, err := h.importService.ImportStatement(c.Request.Context(), c.Param("company_id"), cardID, header.Filename, data, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to import statement")
		return
	}

	logger.Info("Statement imported",
		slog.String("format", result.Format),
		slog.Int("imported", result.ImportedCount),
		slog.Int("duplicates", result.DuplicateCount),
		slog.Int("skipped", result.SkippedCount),
		slog.Int("excluded", result.ExcludedCount))
	middleware.PosthogEvent(c, h.posthogClient, "statement_imported", map[string]any{
		"format":          result.Format,
		"imported_count":  result.ImportedCount,
		"duplicate_count": result.DuplicateCount,
	})
	c.JSON(http.StatusOK, result)
}

// listCardTransactions godoc
// @Summary List imported card transactions
// @Description Newest first, paged with an opaque nextToken.
// @Tags credit-cards
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   card_id path string true "Card ID"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListCardTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 404 {object} map[string]string "Credit card not found"
// @Failure 500 {object} map[string]string "Failed to list card transactions"
// @Security BearerAuth
// @Router /companies/{company_id}/credit-cards/{card_id}/transactions [get]
func (h *creditCardHandler) listCardTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCardTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCardTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.importService.ListCardTransactions(c.Request.Context(), c.Param("company_id"), c.Param("card_id"), params)
	if err != nil {
		respondError(c, logger, err, "Failed to list card transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *creditCardHandler) rejectTooLarge(c *gin.Context, logger *slog.Logger) {
	logger.Warn("Statement file exceeds upload limit", slog.Int64("max_bytes", h.maxImportBytes))
	c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("Statement file exceeds %d bytes", h.maxImportBytes)})
}
