package api

import (
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/domain"
	"github.com/nitin-trapo/home-construction-ledger/internal/ledger/service"
)

type LedgerHandler struct {
	svc *service.LedgerService
}

func NewLedgerHandler(svc *service.LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

// RegisterRoutes wires the ledger module under the versioned group.
func (h *LedgerHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/projects/:projectId/transactions", h.ListTransactions)
	r.POST("/projects/:projectId/transactions", h.CreateTransaction)
	r.PUT("/transactions/:id", h.UpdateTransaction)
	r.DELETE("/transactions/:id", h.DeleteTransaction)

	r.GET("/projects/:projectId/parties", h.ListParties)
	r.POST("/projects/:projectId/parties", h.CreateParty)
	r.PUT("/parties/:id", h.UpdateParty)
	r.DELETE("/parties/:id", h.DeleteParty)

	r.GET("/parties/:id/ledger", h.PartyLedger)
	r.GET("/projects/:projectId/ledger", h.CompanyLedger)

	r.POST("/transactions/:id/attachment", h.SetAttachment)
	r.GET("/transactions/:id/attachment", h.GetAttachment)
	r.DELETE("/transactions/:id/attachment", h.DeleteAttachment)
}

// writeError maps domain errors to HTTP statuses.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPartyNotFound),
		errors.Is(err, domain.ErrTransactionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrPartyHasTransactions):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// generateVoucherNo produces a human-facing serial like V-202601-042.
// Not globally unique across projects; it only has to look like a
// voucher book entry.
func generateVoucherNo() string {
	now := time.Now()
	return fmt.Sprintf("V-%04d%02d-%03d", now.Year(), int(now.Month()), rand.Intn(1000))
}

// ==================== TRANSACTIONS ====================

// ListTransactions GET /projects/:projectId/transactions
func (h *LedgerHandler) ListTransactions(c *gin.Context) {
	txns, err := h.svc.ListTransactions(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]transactionResp, len(txns))
	for i, t := range txns {
		out[i] = toTransactionResp(t)
	}
	c.JSON(http.StatusOK, out)
}

// CreateTransaction POST /projects/:projectId/transactions
func (h *LedgerHandler) CreateTransaction(c *gin.Context) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.VoucherNo == "" {
		req.VoucherNo = generateVoucherNo()
	}

	txn := &domain.Transaction{
		Date:           req.Date,
		VoucherNo:      req.VoucherNo,
		PartyID:        req.PartyID,
		PartyName:      req.PartyName,
		Description:    req.Description,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		Type:           domain.EntryType(req.Type),
		PurchaseAmount: req.PurchaseAmount.Decimal,
		Credit:         req.Credit.Decimal,
		Debit:          req.Debit.Decimal,
		PaymentMode:    req.PaymentMode,
		Reference:      req.Reference,
		Notes:          req.Notes,
		IsPaid:         req.IsPaid,
	}

	created, err := h.svc.CreateTransaction(c.Request.Context(), c.Param("projectId"), txn)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransactionResp(*created))
}

// UpdateTransaction PUT /transactions/:id
func (h *LedgerHandler) UpdateTransaction(c *gin.Context) {
	var req transactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.svc.UpdateTransaction(c.Request.Context(), c.Param("id"), service.TransactionUpdate{
		Date:           req.Date,
		VoucherNo:      req.VoucherNo,
		PartyID:        req.PartyID,
		PartyName:      req.PartyName,
		Description:    req.Description,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		PurchaseAmount: req.PurchaseAmount,
		Credit:         req.Credit,
		Debit:          req.Debit,
		PaymentMode:    req.PaymentMode,
		Reference:      req.Reference,
		Notes:          req.Notes,
		IsPaid:         req.IsPaid,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransactionResp(*updated))
}

// DeleteTransaction DELETE /transactions/:id
func (h *LedgerHandler) DeleteTransaction(c *gin.Context) {
	if err := h.svc.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ==================== PARTIES ====================

// ListParties GET /projects/:projectId/parties
func (h *LedgerHandler) ListParties(c *gin.Context) {
	parties, err := h.svc.ListParties(c.Request.Context(), c.Param("projectId"))
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]partyResp, len(parties))
	for i, p := range parties {
		out[i] = toPartyResp(p)
	}
	c.JSON(http.StatusOK, out)
}

// CreateParty POST /projects/:projectId/parties
func (h *LedgerHandler) CreateParty(c *gin.Context) {
	var req partyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	party := &domain.Party{
		Name:           req.Name,
		Type:           domain.PartyType(req.Type),
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance.Decimal,
	}

	created, err := h.svc.CreateParty(c.Request.Context(), c.Param("projectId"), party)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPartyResp(*created))
}

// UpdateParty PUT /parties/:id
func (h *LedgerHandler) UpdateParty(c *gin.Context) {
	var req partyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.svc.UpdateParty(c.Request.Context(), c.Param("id"), service.PartyUpdate{
		Name:           req.Name,
		Type:           domain.PartyType(req.Type),
		Phone:          req.Phone,
		Address:        req.Address,
		OpeningBalance: req.OpeningBalance.Decimal,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPartyResp(*updated))
}

// DeleteParty DELETE /parties/:id
func (h *LedgerHandler) DeleteParty(c *gin.Context) {
	if err := h.svc.DeleteParty(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ==================== LEDGER VIEWS ====================

// PartyLedger GET /parties/:id/ledger
func (h *LedgerHandler) PartyLedger(c *gin.Context) {
	view, err := h.svc.PartyLedger(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, partyLedgerResp{
		Party:          toPartyResp(view.Party),
		OpeningBalance: domain.NewAmount(view.Party.OpeningBalance),
		Entries:        toLedgerLines(view.Lines),
		TotalDebit:     domain.NewAmount(view.Totals.Debit),
		TotalCredit:    domain.NewAmount(view.Totals.Credit),
		ClosingBalance: domain.NewAmount(view.Totals.Closing),
	})
}

// CompanyLedger GET /projects/:projectId/ledger?from=&to=&type=
func (h *LedgerHandler) CompanyLedger(c *gin.Context) {
	filter := service.CompanyFilter{
		From: c.Query("from"),
		To:   c.Query("to"),
		Type: c.Query("type"),
	}

	view, err := h.svc.CompanyLedger(c.Request.Context(), c.Param("projectId"), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, companyLedgerResp{
		Entries:     toLedgerLines(view.Lines),
		TotalDebit:  domain.NewAmount(view.Totals.Debit),
		TotalCredit: domain.NewAmount(view.Totals.Credit),
		NetBalance:  domain.NewAmount(view.Net),
	})
}

// ==================== ATTACHMENTS ====================

// SetAttachment POST /transactions/:id/attachment
func (h *LedgerHandler) SetAttachment(c *gin.Context) {
	var req attachmentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.svc.SetAttachment(c.Request.Context(), c.Param("id"), req.ImageData); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetAttachment GET /transactions/:id/attachment
func (h *LedgerHandler) GetAttachment(c *gin.Context) {
	data, err := h.svc.GetAttachment(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageData": data})
}

// DeleteAttachment DELETE /transactions/:id/attachment
func (h *LedgerHandler) DeleteAttachment(c *gin.Context) {
	if err := h.svc.DeleteAttachment(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
