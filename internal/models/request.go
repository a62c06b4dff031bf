package models

// NormalizationParams são os parâmetros opcionais de normalização recebidos pela API.
// Campos ausentes assumem os defaults configurados.
type NormalizationParams struct {
	// Estratégia: min_max ou z_score. Valores desconhecidos mantêm o default.
	NormalizerType *string `json:"normalizer_type,omitempty" form:"normalizer_type" example:"min_max" enums:"min_max,z_score"`
	// Limite inferior do intervalo alvo (apenas min_max)
	MinScore *float32 `json:"min_score,omitempty" form:"min_score" example:"1"`
	// Limite superior do intervalo alvo (apenas min_max)
	MaxScore *float32 `json:"max_score,omitempty" form:"max_score" example:"5"`
	// Fator aplicado após a normalização
	Factor *float32 `json:"factor,omitempty" form:"factor" example:"0.6"`
	// Modo do fator: sum, multiply, increase_by_percent
	FactorMode *string `json:"factor_mode,omitempty" form:"factor_mode" example:"increase_by_percent" enums:"sum,multiply,increase_by_percent"`
	// Valor usado quando todos os scores são iguais (apenas min_max): avg, min, max
	OnScoreSame *string `json:"on_score_same,omitempty" form:"on_score_same" example:"avg" enums:"avg,min,max"`
}

// RescoreRequest representa uma requisição de normalização de scores
// @Description Janela de resultados ordenada por score decrescente e parâmetros de normalização.
type RescoreRequest struct {
	NormalizationParams

	// Quantidade de resultados do topo a normalizar. 0 normaliza a lista inteira.
	WindowSize int `json:"window_size" validate:"gte=0" example:"10" minimum:"0"`

	// Resultados ordenados por score decrescente
	Results RankedResultSet `json:"results" validate:"required,dive"`
}

// ToConfig aplica os parâmetros informados sobre os defaults.
// normalizer_type inválido é ignorado; os demais campos são repassados como vieram.
func (p NormalizationParams) ToConfig(defaults NormalizationConfig) NormalizationConfig {
	cfg := defaults

	if p.NormalizerType != nil {
		if t := NormalizerType(*p.NormalizerType); t.IsValid() {
			cfg.Normalizer = t
		}
	}
	if p.MinScore != nil {
		cfg.MinScore = *p.MinScore
	}
	if p.MaxScore != nil {
		cfg.MaxScore = *p.MaxScore
	}
	if p.Factor != nil {
		cfg.Factor = *p.Factor
	}
	if p.FactorMode != nil {
		cfg.FactorMode = FactorMode(*p.FactorMode)
	}
	if p.OnScoreSame != nil {
		cfg.OnScoreSame = SameScorePolicy(*p.OnScoreSame)
	}

	return cfg
}
