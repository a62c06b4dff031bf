package models

// RescoreResponse representa a resposta da normalização
type RescoreResponse struct {
	RequestID   string          `json:"request_id"`
	Normalizer  NormalizerType  `json:"normalizer"`
	WindowSize  int             `json:"window_size"`
	Results     RankedResultSet `json:"results"`
	Timing      TimingMeta      `json:"timing"`
	Explanation *Explanation    `json:"explanation,omitempty"`
}

// TimingMeta contém métricas de tempo
type TimingMeta struct {
	TotalMs     float64 `json:"total_ms"`
	NormalizeMs float64 `json:"normalize_ms"`
}

// Explanation descreve como o score final foi calculado
type Explanation struct {
	// Descrição em texto puro
	Description string `json:"description"`
	// Mesma descrição em markdown, com detalhes da configuração
	Markdown string `json:"markdown"`
}
