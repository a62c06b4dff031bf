package models

// ScoredDocument é um resultado da busca: identificador opaco e score de relevância.
// Apenas Score é reescrito pela normalização.
type ScoredDocument struct {
	ID    string  `json:"id" validate:"required"`
	Score float32 `json:"score"`
}

// RankedResultSet é a janela de resultados ordenada por score decrescente.
// A ordenação é garantida por quem chama e não é verificada aqui.
type RankedResultSet []ScoredDocument

// Scores retorna uma cópia dos scores na ordem da lista
func (r RankedResultSet) Scores() []float32 {
	scores := make([]float32, len(r))
	for i, doc := range r {
		scores[i] = doc.Score
	}
	return scores
}
