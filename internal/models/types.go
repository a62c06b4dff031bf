package models

// NormalizerType define a estratégia de normalização aplicada aos scores
type NormalizerType string

const (
	NormalizerMinMax NormalizerType = "min_max"
	NormalizerZScore NormalizerType = "z_score"
)

// FactorMode define como o fator é aplicado ao score já normalizado
type FactorMode string

const (
	FactorModeSum               FactorMode = "sum"
	FactorModeMultiply          FactorMode = "multiply"
	FactorModeIncreaseByPercent FactorMode = "increase_by_percent"
)

// SameScorePolicy define o valor usado pelo min_max quando todos os scores são iguais
type SameScorePolicy string

const (
	SameScoreAvg SameScorePolicy = "avg"
	SameScoreMin SameScorePolicy = "min"
	SameScoreMax SameScorePolicy = "max"
)

// IsValid verifica se o tipo de normalizador é conhecido
func (t NormalizerType) IsValid() bool {
	switch t {
	case NormalizerMinMax, NormalizerZScore:
		return true
	}
	return false
}

// IsValid verifica se o modo de fator é conhecido
func (m FactorMode) IsValid() bool {
	switch m {
	case FactorModeSum, FactorModeMultiply, FactorModeIncreaseByPercent:
		return true
	}
	return false
}

// IsValid verifica se a política de empate é conhecida
func (p SameScorePolicy) IsValid() bool {
	switch p {
	case SameScoreAvg, SameScoreMin, SameScoreMax:
		return true
	}
	return false
}
