package models

// NormalizationConfig contém os parâmetros de uma execução de normalização.
// É construído uma vez por requisição e tratado como somente leitura.
type NormalizationConfig struct {
	Normalizer  NormalizerType  `json:"normalizer_type"`
	MinScore    float32         `json:"min_score"`    // usado apenas pelo min_max
	MaxScore    float32         `json:"max_score"`    // usado apenas pelo min_max
	Factor      float32         `json:"factor"`       // magnitude do ajuste pós-normalização
	FactorMode  FactorMode      `json:"factor_mode"`  // sum, multiply, increase_by_percent
	OnScoreSame SameScorePolicy `json:"on_score_same"` // empate no min_max: avg, min, max
}

// DefaultNormalizationConfig retorna os valores padrão do rescorer
func DefaultNormalizationConfig() NormalizationConfig {
	return NormalizationConfig{
		Normalizer:  NormalizerZScore,
		MinScore:    1.0,
		MaxScore:    5.0,
		Factor:      0.0,
		FactorMode:  FactorModeIncreaseByPercent,
		OnScoreSame: SameScoreAvg,
	}
}
