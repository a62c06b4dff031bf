package ranking

import (
	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"gonum.org/v1/gonum/stat"
)

// ZScoreNormalizer padroniza os scores para média 0 usando o desvio padrão
// populacional da janela
type ZScoreNormalizer struct{}

// Type retorna o tipo da estratégia
func (ZScoreNormalizer) Type() models.NormalizerType {
	return models.NormalizerZScore
}

// Normalize aplica z = (v - média) / desvio. MinScore e MaxScore são ignorados.
func (ZScoreNormalizer) Normalize(results models.RankedResultSet, cfg models.NormalizationConfig) (models.RankedResultSet, error) {
	if len(results) == 0 {
		return results, nil
	}

	values := make([]float64, len(results))
	for i, doc := range results {
		values[i] = float64(doc.Score)
	}

	// Janela inteira é a população: divide por N
	mean, sd := stat.PopMeanStdDev(values, nil)
	if sd == 0 {
		sd = 1
	}

	scores := make([]float32, len(results))
	for i, v := range values {
		z := float32(stat.StdScore(v, mean, sd))

		score, err := zScoreFinalScore(cfg.FactorMode, cfg.Factor, z)
		if err != nil {
			return results, err
		}
		scores[i] = score
	}

	return results, commit(results, scores)
}
