package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	middlewares "github.com/prefeitura-rio/app-busca-rescore/internal/middleware"
	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search/ranking"
)

// RescoreHandler gerencia os endpoints de normalização de scores
type RescoreHandler struct {
	rescorer  *search.Rescorer
	defaults  models.NormalizationConfig
	validator *validator.Validate
	logger    *slog.Logger
}

// NewRescoreHandler cria um novo handler de rescore
func NewRescoreHandler(rescorer *search.Rescorer, defaults models.NormalizationConfig, logger *slog.Logger) *RescoreHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &RescoreHandler{
		rescorer:  rescorer,
		defaults:  defaults,
		validator: validator.New(),
		logger:    logger,
	}
}

// Rescore godoc
// @Summary Normaliza os scores de uma lista de resultados
// @Description Reescreve os scores dos primeiros window_size resultados usando min_max ou z_score e aplica o fator configurado. Ordem e identificadores não mudam; resultados fora da janela mantêm o score original.
// @Tags rescore
// @Accept json
// @Produce json
// @Param request body models.RescoreRequest true "Resultados e parâmetros de normalização"
// @Param explain query bool false "Inclui a explicação do cálculo do score final" default(false)
// @Success 200 {object} models.RescoreResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/rescore [post]
func (h *RescoreHandler) Rescore(c *gin.Context) {
	start := time.Now()

	var request models.RescoreRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos: " + err.Error()})
		return
	}

	// Valida os dados
	if err := h.validator.Struct(request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validação falhou: " + err.Error()})
		return
	}

	cfg := request.ToConfig(h.defaults)

	normalizeStart := time.Now()
	results, err := h.rescorer.Rescore(c.Request.Context(), request.Results, request.WindowSize, cfg)
	normalizeMs := float64(time.Since(normalizeStart).Microseconds()) / 1000
	if err != nil {
		if search.IsConfigError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if search.IsInputError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.logger.ErrorContext(c.Request.Context(), "erro ao normalizar scores", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao normalizar scores: " + err.Error()})
		return
	}

	response := models.RescoreResponse{
		RequestID:  middlewares.GetRequestID(c),
		Normalizer: cfg.Normalizer,
		WindowSize: search.WindowLength(len(results), request.WindowSize),
		Results:    results,
	}

	if c.Query("explain") == "true" {
		explanation := search.Explain(cfg)
		response.Explanation = &explanation
	}

	response.Timing = models.TimingMeta{
		TotalMs:     float64(time.Since(start).Microseconds()) / 1000,
		NormalizeMs: normalizeMs,
	}

	c.JSON(http.StatusOK, response)
}

// Explain godoc
// @Summary Explica o cálculo do score final
// @Description Descreve, em texto e markdown, como o score final é calculado para os parâmetros informados. Parâmetros omitidos usam os defaults do serviço.
// @Tags rescore
// @Produce json
// @Param normalizer_type query string false "min_max ou z_score"
// @Param min_score query number false "Limite inferior (min_max)"
// @Param max_score query number false "Limite superior (min_max)"
// @Param factor query number false "Fator pós-normalização"
// @Param factor_mode query string false "sum, multiply ou increase_by_percent"
// @Param on_score_same query string false "avg, min ou max (min_max)"
// @Success 200 {object} models.Explanation
// @Failure 400 {object} map[string]string
// @Router /api/v1/rescore/explain [get]
func (h *RescoreHandler) Explain(c *gin.Context) {
	var params models.NormalizationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetros inválidos: " + err.Error()})
		return
	}

	cfg := params.ToConfig(h.defaults)
	if cfg.Normalizer == models.NormalizerMinMax {
		if err := ranking.ValidateRange(cfg); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, search.Explain(cfg))
}
