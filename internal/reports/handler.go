package reports

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"freight-backend/internal/shared/server/respond"
)

// Handler serves the delivery report endpoint.
type Handler struct{}

// NewHandler constructs a Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// RegisterRoutes attaches report routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/relatorio", h.report)
}

type reportRequest struct {
	Entregas *[]Delivery `json:"entregas"`
}

func (h *Handler) report(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Entregas == nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "Dados inválidos. Envie uma lista de entregas.", nil)
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{
		"mensagem":     "Relatório gerado com sucesso",
		"estatisticas": Summarize(*req.Entregas),
	})
}
