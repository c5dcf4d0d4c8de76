package handler

import (
	"fmt"
	"strconv"

	"transaction-anonymizer/internal/adapter/http/dto"
	"transaction-anonymizer/internal/core/ports"
	"transaction-anonymizer/pkg/apperror"
	"transaction-anonymizer/pkg/response"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// CorpusHandler serves the anonymized corpus: account listing, paginated
// transactions, per-account summaries and corpus-wide stats.
type CorpusHandler struct {
	corpusSvc       ports.CorpusService
	defaultPageSize int
	maxPageSize     int
}

// NewCorpusHandler creates a new CorpusHandler.
func NewCorpusHandler(corpusSvc ports.CorpusService, defaultPageSize, maxPageSize int) *CorpusHandler {
	return &CorpusHandler{
		corpusSvc:       corpusSvc,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// ListAccounts handles GET /accounts.
func (h *CorpusHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.corpusSvc.Accounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountsResponse{
		Accounts:   accounts,
		TotalCount: len(accounts),
	})
}

// ListTransactions handles GET /accounts/:id/transactions.
func (h *CorpusHandler) ListTransactions(c *gin.Context) {
	accountID := c.Param("id")

	page, perPage, err := h.pagination(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	envelopes, total, err := h.corpusSvc.AccountEnvelopes(c.Request.Context(), accountID, page, perPage)
	if err != nil {
		response.Error(c, err)
		return
	}

	totalPages := (total + perPage - 1) / perPage
	response.OK(c, dto.TransactionPageResponse{
		AccountID:    accountID,
		Transactions: envelopes,
		Pagination: dto.PaginationMeta{
			Page:       page,
			PerPage:    perPage,
			TotalCount: total,
			TotalPages: totalPages,
			HasNext:    page*perPage < total,
			HasPrev:    page > 1,
		},
	})
}

// GetSummary handles GET /accounts/:id/summary.
func (h *CorpusHandler) GetSummary(c *gin.Context) {
	accountID := c.Param("id")

	summary, err := h.corpusSvc.AccountSummary(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountSummaryResponse{
		AccountID:                summary.AccountID,
		TotalTransactionRecords:  summary.TotalRecords,
		TotalPendingTransactions: summary.PendingTotal,
		TotalBookedTransactions:  summary.BookedTotal,
		DateRange: dto.DateRange{
			FirstTransaction: summary.FirstTransaction,
			LastTransaction:  summary.LastTransaction,
		},
	})
}

// GetStats handles GET /stats.
func (h *CorpusHandler) GetStats(c *gin.Context) {
	stats, err := h.corpusSvc.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.StatsResponse{
		TotalAccounts:            stats.TotalAccounts,
		TotalTransactionRecords:  stats.TotalEnvelopes,
		TotalPendingTransactions: stats.PendingTotal,
		TotalBookedTransactions:  stats.BookedTotal,
		APIVersion:               apiVersion,
		Configuration: dto.StatsConfiguration{
			DefaultPageSize: h.defaultPageSize,
			MaxPageSize:     h.maxPageSize,
		},
	})
}

// pagination parses and bounds the page/per_page query parameters.
func (h *CorpusHandler) pagination(c *gin.Context) (page, perPage int, err error) {
	page, err = strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 0, 0, apperror.ErrInvalidPagination("Invalid pagination parameters")
	}
	perPage, err = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(h.defaultPageSize)))
	if err != nil {
		return 0, 0, apperror.ErrInvalidPagination("Invalid pagination parameters")
	}

	if page < 1 {
		return 0, 0, apperror.ErrInvalidPagination("Page number must be >= 1")
	}
	if perPage < 1 || perPage > h.maxPageSize {
		return 0, 0, apperror.ErrInvalidPagination(
			fmt.Sprintf("Page size must be between 1 and %d", h.maxPageSize))
	}
	return page, perPage, nil
}
