package dto

import "transaction-anonymizer/internal/core/domain"

// LoginRequest is the request body for operator login.
type LoginRequest struct {
	Username string `json:"username" binding:"required,safe_id"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AccountsResponse lists every account id in the served corpus.
type AccountsResponse struct {
	Accounts   []string `json:"accounts"`
	TotalCount int      `json:"total_count"`
}

// PaginationMeta describes one page of a paginated listing.
type PaginationMeta struct {
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalCount int  `json:"total_count"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// TransactionPageResponse is one page of an account's capture envelopes.
// Envelopes pass through unmodified so consumers see the exact anonymized
// corpus structure.
type TransactionPageResponse struct {
	AccountID    string            `json:"account_id"`
	Transactions []domain.Envelope `json:"transactions"`
	Pagination   PaginationMeta    `json:"pagination"`
}

// DateRange is the first/last capture timestamp of an account.
type DateRange struct {
	FirstTransaction string `json:"first_transaction"`
	LastTransaction  string `json:"last_transaction"`
}

// AccountSummaryResponse aggregates one account's snapshots.
type AccountSummaryResponse struct {
	AccountID                string    `json:"account_id"`
	TotalTransactionRecords  int       `json:"total_transaction_records"`
	TotalPendingTransactions int       `json:"total_pending_transactions"`
	TotalBookedTransactions  int       `json:"total_booked_transactions"`
	DateRange                DateRange `json:"date_range"`
}

// StatsResponse aggregates the whole served corpus.
type StatsResponse struct {
	TotalAccounts            int                `json:"total_accounts"`
	TotalTransactionRecords  int                `json:"total_transaction_records"`
	TotalPendingTransactions int                `json:"total_pending_transactions"`
	TotalBookedTransactions  int                `json:"total_booked_transactions"`
	APIVersion               string             `json:"api_version"`
	Configuration            StatsConfiguration `json:"configuration"`
}

// StatsConfiguration echoes the serving parameters clients should adapt to.
type StatsConfiguration struct {
	DefaultPageSize int `json:"default_page_size"`
	MaxPageSize     int `json:"max_page_size"`
}
