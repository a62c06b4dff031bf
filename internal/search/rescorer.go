package search

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/observability"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search/ranking"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Rescorer aplica a normalização ao topo de uma lista de resultados.
// Não guarda estado entre chamadas.
type Rescorer struct {
	maxWindowSize int
	logger        *slog.Logger
}

// NewRescorer cria um rescorer. maxWindowSize <= 0 desativa o limite.
func NewRescorer(maxWindowSize int, logger *slog.Logger) *Rescorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Rescorer{
		maxWindowSize: maxWindowSize,
		logger:        logger,
	}
}

// Rescore normaliza os primeiros windowSize resultados in-place.
// windowSize <= 0 ou maior que a lista normaliza todos; o restante mantém o score original.
func (r *Rescorer) Rescore(ctx context.Context, results models.RankedResultSet, windowSize int, cfg models.NormalizationConfig) (models.RankedResultSet, error) {
	normalizer := ranking.Select(cfg.Normalizer)
	normalizerName := string(normalizer.Type())

	ctx, span := otel.Tracer("rescore").Start(ctx, "rescore.normalize")
	defer span.End()

	span.SetAttributes(
		attribute.String("rescore.normalizer", normalizerName),
		attribute.String("rescore.factor_mode", string(cfg.FactorMode)),
		attribute.Float64("rescore.factor", float64(cfg.Factor)),
		attribute.Int("rescore.results", len(results)),
		attribute.Int("rescore.window_size", windowSize),
	)

	if r.maxWindowSize > 0 && windowSize > r.maxWindowSize {
		err := fmt.Errorf("%w: %d > %d", models.ErrInvalidWindowSize, windowSize, r.maxWindowSize)
		return results, r.fail(ctx, span, normalizerName, err)
	}

	window := WindowLength(len(results), windowSize)
	if window == 0 {
		return results, nil
	}

	start := time.Now()
	if _, err := normalizer.Normalize(results[:window], cfg); err != nil {
		return results, r.fail(ctx, span, normalizerName, err)
	}
	duration := time.Since(start)

	observability.RecordRescore(normalizerName, window, duration.Seconds())
	span.SetStatus(codes.Ok, "rescore succeeded")

	r.logger.DebugContext(ctx, "rescore concluído",
		"normalizer", normalizerName,
		"window", window,
		"results", len(results),
		"duration", duration,
	)

	return results, nil
}

func (r *Rescorer) fail(ctx context.Context, span trace.Span, normalizer string, err error) error {
	errType := ErrorType(err)

	span.RecordError(err)
	span.SetStatus(codes.Error, errType)
	observability.RecordError(normalizer, errType)

	r.logger.WarnContext(ctx, "rescore falhou",
		"normalizer", normalizer,
		"error_type", errType,
		"error", err,
	)
	return err
}

// WindowLength retorna quantos resultados do topo entram na normalização
func WindowLength(total, windowSize int) int {
	if windowSize <= 0 || windowSize > total {
		return total
	}
	return windowSize
}
