package handler

import (
	"transaction-anonymizer/internal/core/ports"
	"transaction-anonymizer/pkg/apperror"
	"transaction-anonymizer/pkg/response"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the sensitive analysis endpoints: the relationship
// report and the pseudonym mappings. Both sit behind operator auth because the
// mappings link fakes back to originals.
type ReportHandler struct {
	corpusSvc ports.CorpusService
	mappings  ports.MappingsProvider
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(corpusSvc ports.CorpusService, mappings ports.MappingsProvider) *ReportHandler {
	return &ReportHandler{corpusSvc: corpusSvc, mappings: mappings}
}

// GetRelationships handles GET /relationships. It runs the analyzer over the
// served corpus.
func (h *ReportHandler) GetRelationships(c *gin.Context) {
	report, err := h.corpusSvc.Relationships(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// GetMappings handles GET /mappings: the substitution tables of the last
// anonymization run.
func (h *ReportHandler) GetMappings(c *gin.Context) {
	snap, err := h.mappings.Mappings(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	if snap == nil {
		response.Error(c, apperror.ErrMappingsUnavailable())
		return
	}
	response.OK(c, snap)
}
