// Package ranking reescreve os scores de uma janela de resultados já ordenada,
// levando-os para um intervalo ou distribuição escolhidos por quem chama.
//
// A identidade e a ordem dos documentos nunca mudam: apenas Score é alterado.
// As estratégias não guardam estado e podem ser usadas concorrentemente,
// desde que cada chamada receba sua própria lista.
package ranking

import (
	"fmt"
	"math"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

// Normalizer normaliza os scores de uma lista ordenada por score decrescente.
// A lista é alterada in-place e retornada. Em caso de erro nenhum score é alterado.
type Normalizer interface {
	Normalize(results models.RankedResultSet, cfg models.NormalizationConfig) (models.RankedResultSet, error)
	Type() models.NormalizerType
}

// Normalize seleciona a estratégia de cfg.Normalizer e normaliza a lista
func Normalize(results models.RankedResultSet, cfg models.NormalizationConfig) (models.RankedResultSet, error) {
	return Select(cfg.Normalizer).Normalize(results, cfg)
}

// commit grava os scores calculados; só é chamado depois que a passada inteira deu certo.
// Scores NaN ou Inf (overflow de float32 em entradas extremas) abortam sem alterar a lista.
func commit(results models.RankedResultSet, scores []float32) error {
	for i, score := range scores {
		if f := float64(score); math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("%w: results[%d]=%v", models.ErrNonFiniteScore, i, score)
		}
	}
	for i := range results {
		results[i].Score = scores[i]
	}
	return nil
}
