package models

import "errors"

var (
	ErrInvalidRange      = errors.New("max_score não pode ser menor ou igual a min_score")
	ErrInvalidFactor     = errors.New("factor inválido para factor_mode increase_by_percent (intervalo permitido: 0-1, inclusive)")
	ErrInvalidWindowSize = errors.New("window_size excede o limite configurado")
	ErrNonFiniteScore    = errors.New("normalização produziu score não finito (NaN ou Inf)")
)
