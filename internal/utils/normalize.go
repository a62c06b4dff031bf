package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var identifierFold = cases.Fold()

// NormalizeIdentifier normaliza um identificador de configuração:
// remove espaços nas pontas, acentos e diferenças de caixa.
// Exemplo: " MIN_MAX " -> "min_max", "Máx" -> "max"
func NormalizeIdentifier(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	normalized, _, err := transform.String(t, value)
	if err != nil {
		normalized = value
	}

	return identifierFold.String(normalized)
}
