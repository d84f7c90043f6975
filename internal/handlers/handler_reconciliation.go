package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/sitebooks_ledger/internal/core/ports/services"
	"github.com/SscSPs/sitebooks_ledger/internal/dto"
	"github.com/SscSPs/sitebooks_ledger/internal/middleware"
	"github.com/SscSPs/sitebooks_ledger/internal/utils"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// reconciliationHandler handles bank accounts and their reconciliation sessions.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
	posthogClient         *utils.PosthogClientWrapper
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade, posthogClient *utils.PosthogClientWrapper) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs, posthogClient: posthogClient}
}

// registerReconciliationRoutes registers bank account and reconciliation routes.
func registerReconciliationRoutes(company *gin.RouterGroup, rs portssvc.ReconciliationSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newReconciliationHandler(rs, posthogClient)

	bankAccounts := company.Group("/bank-accounts")
	{
		bankAccounts.POST("", h.createBankAccount)
		bankAccounts.GET("", h.listBankAccounts)
		bankAccounts.GET("/:bank_account_id", h.getBankAccount)
		bankAccounts.GET("/:bank_account_id/reconciliations", h.listBankAccountReconciliations)
	}

	recons := company.Group("/reconciliations")
	{
		recons.POST("", h.createReconciliation)
		recons.GET("", h.listReconciliations)
		recons.GET("/:reconciliation_id", h.getReconciliationReport)
		recons.POST("/:reconciliation_id/preview", h.previewReconciliation)
		recons.POST("/:reconciliation_id/close", h.closeReconciliation)
		recons.GET("/:reconciliation_id/export", h.exportReconciliation)
	}
}

// createBankAccount godoc
// @Summary Create a bank account
// @Tags bank-accounts
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   bankAccount body dto.CreateBankAccountRequest true "Bank account details"
// @Success 201 {object} dto.BankAccountResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to create bank account"
// @Security BearerAuth
// @Router /companies/{company_id}/bank-accounts [post]
func (h *reconciliationHandler) createBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBankAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}

	bankAccount, err := h.reconciliationService.CreateBankAccount(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create bank account")
		return
	}

	logger.Info("Bank account created successfully", slog.String("bank_account_id", bankAccount.BankAccountID))
	c.JSON(http.StatusCreated, dto.ToBankAccountResponse(bankAccount))
}

// listBankAccounts godoc
// @Summary List bank accounts
// @Tags bank-accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Success 200 {array} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Company not found"
// @Failure 500 {object} map[string]string "Failed to list bank accounts"
// @Security BearerAuth
// @Router /companies/{company_id}/bank-accounts [get]
func (h *reconciliationHandler) listBankAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.reconciliationService.ListBankAccounts(c.Request.Context(), c.Param("company_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to list bank accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBankAccountResponse(accounts))
}

// getBankAccount godoc
// @Summary Get a bank account
// @Tags bank-accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   bank_account_id path string true "Bank account ID"
// @Success 200 {object} dto.BankAccountResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank account"
// @Security BearerAuth
// @Router /companies/{company_id}/bank-accounts/{bank_account_id} [get]
func (h *reconciliationHandler) getBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bankAccount, err := h.reconciliationService.GetBankAccount(c.Request.Context(), c.Param("company_id"), c.Param("bank_account_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve bank account")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankAccountResponse(bankAccount))
}

// listBankAccountReconciliations godoc
// @Summary List the reconciliation sessions of a bank account
// @Tags bank-accounts
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   bank_account_id path string true "Bank account ID"
// @Success 200 {array} dto.ReconciliationResponse
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to list reconciliations"
// @Security BearerAuth
// @Router /companies/{company_id}/bank-accounts/{bank_account_id}/reconciliations [get]
func (h *reconciliationHandler) listBankAccountReconciliations(c *gin.Context) {
	h.respondReconciliationList(c, c.Param("bank_account_id"))
}

// listReconciliations godoc
// @Summary List reconciliation sessions
// @Tags reconciliations
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   bankAccountID query string true "Bank account ID"
// @Success 200 {array} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Missing bankAccountID"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 500 {object} map[string]string "Failed to list reconciliations"
// @Security BearerAuth
// @Router /companies/{company_id}/reconciliations [get]
func (h *reconciliationHandler) listReconciliations(c *gin.Context) {
	bankAccountID := c.Query("bankAccountID")
	if bankAccountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bankAccountID query parameter is required"})
		return
	}
	h.respondReconciliationList(c, bankAccountID)
}

func (h *reconciliationHandler) respondReconciliationList(c *gin.Context, bankAccountID string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	recons, err := h.reconciliationService.ListReconciliations(c.Request.Context(), c.Param("company_id"), bankAccountID)
	if err != nil {
		respondError(c, logger, err, "Failed to list reconciliations")
		return
	}

	c.JSON(http.StatusOK, dto.ToListReconciliationResponse(recons))
}

// createReconciliation godoc
// @Summary Open a reconciliation session
// @Description Opens a session for a statement period. The beginning balance defaults to the last closed session's ending balance.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   reconciliation body dto.CreateReconciliationRequest true "Statement period and balances"
// @Success 201 {object} dto.ReconciliationResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Bank account not found"
// @Failure 409 {object} map[string]string "An open session already exists"
// @Failure 500 {object} map[string]string "Failed to create reconciliation"
// @Security BearerAuth
// @Router /companies/{company_id}/reconciliations [post]
func (h *reconciliationHandler) createReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReconciliationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("bank_account_id", req.BankAccountID))

	recon, err := h.reconciliationService.CreateReconciliation(c.Request.Context(), c.Param("company_id"), req, userID)
	if err != nil {
		respondError(c, logger, err, "Failed to create reconciliation")
		return
	}

	logger.Info("Reconciliation opened", slog.String("reconciliation_id", recon.ReconciliationID))
	c.JSON(http.StatusCreated, dto.ToReconciliationResponse(recon))
}

// getReconciliationReport godoc
// @Summary Get a reconciliation report
// @Description Closed sessions report their stored selection; open sessions report every candidate as uncleared.
// @Tags reconciliations
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   reconciliation_id path string true "Reconciliation ID"
// @Success 200 {object} dto.ReconciliationReportResponse
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 500 {object} map[string]string "Failed to build reconciliation report"
// @Security BearerAuth
// @Router /companies/{company_id}/reconciliations/{reconciliation_id} [get]
func (h *reconciliationHandler) getReconciliationReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	report, err := h.reconciliationService.GetReconciliationReport(c.Request.Context(), c.Param("company_id"), c.Param("reconciliation_id"))
	if err != nil {
		respondError(c, logger, err, "Failed to build reconciliation report")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationReportResponse(report))
}

// previewReconciliation godoc
// @Summary Preview a clearing selection
// @Description Computes the report for the proposed selection without storing it.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   reconciliation_id path string true "Reconciliation ID"
// @Param   selection body dto.ClearSelectionRequest true "Candidates to clear"
// @Success 200 {object} dto.ReconciliationReportResponse
// @Failure 400 {object} map[string]string "Invalid selection"
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 500 {object} map[string]string "Failed to preview reconciliation"
// @Security BearerAuth
// @Router /companies/{company_id}/reconciliations/{reconciliation_id}/preview [post]
func (h *reconciliationHandler) previewReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClearSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	report, err := h.reconciliationService.PreviewReconciliation(c.Request.Context(), c.Param("company_id"), c.Param("reconciliation_id"), req.ToCandidateRefs())
	if err != nil {
		respondError(c, logger, err, "Failed to preview reconciliation")
		return
	}

	c.JSON(http.StatusOK, dto.ToReconciliationReportResponse(report))
}

// closeReconciliation godoc
// @Summary Close a reconciliation session
// @Description Stores the cleared selection and closes the session. The difference must be zero.
// @Tags reconciliations
// @Accept  json
// @Produce  json
// @Param   company_id path string true "Company ID"
// @Param   reconciliation_id path string true "Reconciliation ID"
// @Param   selection body dto.ClearSelectionRequest true "Candidates to clear"
// @Success 200 {object} dto.ReconciliationReportResponse
// @Failure 400 {object} map[string]string "Out of balance or invalid selection"
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 409 {object} map[string]string "Session already closed or an item was cleared elsewhere"
// @Failure 500 {object} map[string]string "Failed to close reconciliation"
// @Security BearerAuth
// @Router /companies/{company_id}/reconciliations/{reconciliation_id}/close [post]
func (h *reconciliationHandler) closeReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ClearSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseReconciliation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := actorFromContext(c, logger)
	if !ok {
		return
	}
	reconciliationID := c.Param("reconciliation_id")
	logger = logger.With(slog.String("reconciliation_id", reconciliationID))

	report, err := h.reconciliationService.CloseReconciliation(c.Request.Context(), c.Param("company_id"), reconciliationID, req.ToCandidateRefs(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to close reconciliation")
		return
	}

	logger.Info("Reconciliation closed", slog.Int("cleared_items", len(report.Cleared)))
	middleware.PosthogEvent(c, h.posthogClient, "reconciliation_closed", map[string]any{
		"cleared_items":   len(report.Cleared),
		"uncleared_items": len(report.Uncleared),
	})
	c.JSON(http.StatusOK, dto.ToReconciliationReportResponse(report))
}

// exportReconciliation godoc
// @Summary Export a reconciliation report
// @Description Downloads the report as an XLSX workbook with Summary, Cleared and Uncleared sheets.
// @Tags reconciliations
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   company_id path string true "Company ID"
// @Param   reconciliation_id path string true "Reconciliation ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string "Reconciliation not found"
// @Failure 500 {object} map[string]string "Failed to export reconciliation"
// @Security BearerAuth
// @Router /companies/{company_id}/reconciliations/{reconciliation_id}/export [get]
func (h *reconciliationHandler) exportReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	reconciliationID := c.Param("reconciliation_id")

	workbook, err := h.reconciliationService.ExportReconciliationReport(c.Request.Context(), c.Param("company_id"), reconciliationID)
	if err != nil {
		respondError(c, logger.With(slog.String("reconciliation_id", reconciliationID)), err, "Failed to export reconciliation")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="reconciliation-%s.xlsx"`, reconciliationID))
	c.Data(http.StatusOK, xlsxContentType, workbook)
}
