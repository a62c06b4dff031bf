package search

import (
	"errors"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

// ErrorType classifica erros de rescore para métricas e logs
func ErrorType(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, models.ErrInvalidRange):
		return "invalid_range"
	case errors.Is(err, models.ErrInvalidFactor):
		return "invalid_factor"
	case errors.Is(err, models.ErrInvalidWindowSize):
		return "invalid_window_size"
	case errors.Is(err, models.ErrNonFiniteScore):
		return "non_finite_score"
	default:
		return "internal"
	}
}

// IsConfigError indica se o erro vem de parâmetros inválidos da requisição
func IsConfigError(err error) bool {
	return errors.Is(err, models.ErrInvalidRange) ||
		errors.Is(err, models.ErrInvalidFactor) ||
		errors.Is(err, models.ErrInvalidWindowSize)
}

// IsInputError indica se os scores recebidos não podem ser normalizados
// com a configuração pedida (overflow para NaN ou Inf)
func IsInputError(err error) bool {
	return errors.Is(err, models.ErrNonFiniteScore)
}
