package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search"
)

// HealthHandler gerencia os endpoints de health check
type HealthHandler struct {
	rescorer *search.Rescorer
	defaults models.NormalizationConfig
}

// NewHealthHandler cria um novo handler de health check
func NewHealthHandler(rescorer *search.Rescorer, defaults models.NormalizationConfig) *HealthHandler {
	return &HealthHandler{
		rescorer: rescorer,
		defaults: defaults,
	}
}

// HealthResponse representa a resposta do health check
type HealthResponse struct {
	Status    string            `json:"status"`
	Checks    map[string]string `json:"checks,omitempty"`
	Error     string            `json:"error,omitempty"`
	Timestamp int64             `json:"timestamp"`
}

// Liveness godoc
// @Summary Liveness probe endpoint
// @Description Verifica se a aplicação está viva (sem checagens internas)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /liveness [get]
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "alive",
		Timestamp: time.Now().Unix(),
	})
}

// Readiness godoc
// @Summary Readiness probe endpoint
// @Description Verifica se a aplicação está pronta para receber tráfego (normaliza uma lista de teste com os defaults)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readiness [get]
func (h *HealthHandler) Readiness(c *gin.Context) {
	h.respond(c, "ready", "not_ready")
}

// Health godoc
// @Summary Comprehensive health check endpoint
// @Description Verifica a saúde completa da aplicação (para monitoramento externo de uptime)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	h.respond(c, "healthy", "unhealthy")
}

func (h *HealthHandler) respond(c *gin.Context, okStatus, failStatus string) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	response := HealthResponse{
		Status:    okStatus,
		Checks:    make(map[string]string),
		Timestamp: time.Now().Unix(),
	}

	if err := h.checkRescorer(ctx); err != nil {
		response.Checks["rescorer"] = "failed"
		response.Status = failStatus
		response.Error = "Configuração de normalização inválida: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	response.Checks["rescorer"] = "ok"

	c.JSON(http.StatusOK, response)
}

// checkRescorer normaliza uma lista fixa com os defaults configurados
func (h *HealthHandler) checkRescorer(ctx context.Context) error {
	probe := models.RankedResultSet{
		{ID: "probe-1", Score: 3},
		{ID: "probe-2", Score: 2},
		{ID: "probe-3", Score: 1},
	}
	_, err := h.rescorer.Rescore(ctx, probe, 0, h.defaults)
	return err
}
