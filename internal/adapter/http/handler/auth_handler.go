package handler

import (
	"net/http"

	"transaction-anonymizer/internal/adapter/http/dto"
	"transaction-anonymizer/internal/core/ports"
	"transaction-anonymizer/pkg/apperror"
	"transaction-anonymizer/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles operator authentication.
type AuthHandler struct {
	authSvc ports.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.LoginResponse{
		Token:  token,
		Expiry: expiry.Unix(),
	})
}

// HealthCheck handles GET /health. It reports whether a corpus is loaded and
// pings each backing dependency.
func HealthCheck(corpusSvc ports.CorpusService, checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		accounts := 0
		records := 0
		if stats, err := corpusSvc.Stats(c.Request.Context()); err == nil {
			accounts = stats.TotalAccounts
			records = stats.TotalEnvelopes
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		body := gin.H{
			"status":                    status,
			"data_loaded":               records > 0,
			"accounts_available":        accounts,
			"total_transaction_records": records,
		}
		if len(deps) > 0 {
			body["dependencies"] = deps
		}
		c.JSON(httpCode, body)
	}
}
