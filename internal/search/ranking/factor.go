package ranking

import (
	"fmt"
	"math"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

// As duas variantes abaixo têm o mesmo contrato mas tratam sinal de forma
// diferente: o min_max trabalha num intervalo alvo positivo, o z_score num
// domínio com sinal. Modos desconhecidos caem em increase_by_percent.

// minMaxFinalScore aplica o fator a um score normalizado pelo min_max
func minMaxFinalScore(mode models.FactorMode, factor, normalized float32) (float32, error) {
	switch mode {
	case models.FactorModeSum:
		return normalized + factor, nil
	case models.FactorModeMultiply:
		return normalized * factor, nil
	}

	if normalized == 0 {
		return factor, nil
	}
	if factor < 0 || factor > 1 {
		return 0, fmt.Errorf("%w: factor=%g", models.ErrInvalidFactor, factor)
	}
	return normalized + float32(normalized*factor), nil
}

// zScoreFinalScore aplica o fator a um z-score. Para valores negativos,
// multiply e increase_by_percent usam o módulo, preservando o sinal.
func zScoreFinalScore(mode models.FactorMode, factor, normalized float32) (float32, error) {
	if mode == models.FactorModeSum {
		return normalized + factor, nil
	}

	byMagnitude := normalized + float32(abs32(normalized)*factor)

	if mode == models.FactorModeMultiply {
		if normalized >= 0 {
			return normalized * factor, nil
		}
		return byMagnitude, nil
	}

	if normalized == 0 {
		return factor, nil
	}
	if factor < 0 || factor > 1 {
		return 0, fmt.Errorf("%w: factor=%g", models.ErrInvalidFactor, factor)
	}
	return byMagnitude, nil
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
