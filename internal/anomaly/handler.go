package anomaly

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"freight-backend/internal/shared/metrics"
	"freight-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the detector.
type Handler struct {
	Detector *Detector
}

// NewHandler constructs a Handler.
func NewHandler(d *Detector) *Handler {
	return &Handler{Detector: d}
}

// RegisterRoutes attaches anomaly detection routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/anomalias", h.analyze)
	rg.POST("/anomalias/historico", h.analyzeWithHistory)
}

type analyzeRequest struct {
	Cargas *[]Record `json:"cargas"`
}

type analyzeHistoryRequest struct {
	Cargas    *[]Record `json:"cargas"`
	Historico []Record  `json:"historico"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Cargas == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Dados inválidos. Envie uma lista de cargas.", nil)
		return
	}

	start := time.Now()
	metrics.IncBatchesAnalyzed()
	result := h.Detector.Analyze(*req.Cargas)
	h.observe(result, start)

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) analyzeWithHistory(c *gin.Context) {
	var req analyzeHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Cargas == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Dados inválidos. Envie uma lista de cargas.", nil)
		return
	}

	start := time.Now()
	metrics.IncBatchesAnalyzed()
	result := h.Detector.AnalyzeWithHistory(*req.Cargas, req.Historico)
	h.observe(result, start)

	respond.JSON(c, http.StatusOK, result)
}

func (h *Handler) observe(result *Result, start time.Time) {
	metrics.ObserveAnalysisDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	if result.Err != "" {
		metrics.IncAnalysesFailed()
		return
	}
	metrics.AddRecordsFlagged(uint64(result.TotalAnomalies))
}
