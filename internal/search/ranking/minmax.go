package ranking

import (
	"fmt"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

// MinMaxNormalizer leva os scores para [MinScore, MaxScore] usando o
// mínimo e o máximo observados na própria janela
type MinMaxNormalizer struct{}

// Type retorna o tipo da estratégia
func (MinMaxNormalizer) Type() models.NormalizerType {
	return models.NormalizerMinMax
}

// Normalize aplica a normalização min-max.
//
// O primeiro elemento é o máximo e o último é o mínimo (a lista chega ordenada).
// Com mais de dois resultados, o primeiro colocado é empurrado acima de MaxScore
// pela mesma distância que o separa do segundo.
func (MinMaxNormalizer) Normalize(results models.RankedResultSet, cfg models.NormalizationConfig) (models.RankedResultSet, error) {
	if err := ValidateRange(cfg); err != nil {
		return results, err
	}

	if len(results) == 0 {
		return results, nil
	}

	// Resultado único fica fixo no topo do intervalo
	if len(results) == 1 {
		score, err := minMaxFinalScore(cfg.FactorMode, cfg.Factor, cfg.MaxScore)
		if err != nil {
			return results, err
		}
		return results, commit(results, []float32{score})
	}

	oldMax := results[0].Score
	oldMin := results[len(results)-1].Score

	// Edge case: todos iguais, sem aplicação de fator
	if oldMax == oldMin {
		tie := sameScoreValue(cfg)
		scores := make([]float32, len(results))
		for i := range scores {
			scores[i] = tie
		}
		return results, commit(results, scores)
	}

	scores := make([]float32, len(results))
	for i, doc := range results {
		normalized := rescale(doc.Score, oldMin, oldMax, cfg.MinScore, cfg.MaxScore)

		score, err := minMaxFinalScore(cfg.FactorMode, cfg.Factor, normalized)
		if err != nil {
			return results, err
		}
		scores[i] = score
	}

	if len(scores) > 2 {
		scores[0] = scores[0] + (scores[0] - scores[1])
	}

	return results, commit(results, scores)
}

// ValidateRange exige MinScore < MaxScore, o intervalo alvo do min_max
func ValidateRange(cfg models.NormalizationConfig) error {
	if cfg.MinScore >= cfg.MaxScore {
		return fmt.Errorf("%w: min_score=%g, max_score=%g", models.ErrInvalidRange, cfg.MinScore, cfg.MaxScore)
	}
	return nil
}

// rescale leva v de [oldMin, oldMax] para [newMin, newMax]
func rescale(v, oldMin, oldMax, newMin, newMax float32) float32 {
	proportion := (v - oldMin) / (oldMax - oldMin)
	return float32(proportion*(newMax-newMin)) + newMin
}

// sameScoreValue retorna o valor de empate definido por OnScoreSame (default: avg)
func sameScoreValue(cfg models.NormalizationConfig) float32 {
	switch cfg.OnScoreSame {
	case models.SameScoreMin:
		return cfg.MinScore
	case models.SameScoreMax:
		return cfg.MaxScore
	default:
		return (cfg.MaxScore + cfg.MinScore) / 2
	}
}
