package ranking

import "github.com/prefeitura-rio/app-busca-rescore/internal/models"

// Select retorna a estratégia para o tipo informado.
// Qualquer tipo desconhecido cai no z_score, sem erro.
func Select(t models.NormalizerType) Normalizer {
	switch t {
	case models.NormalizerMinMax:
		return MinMaxNormalizer{}
	case models.NormalizerZScore:
		return ZScoreNormalizer{}
	default:
		return ZScoreNormalizer{}
	}
}
