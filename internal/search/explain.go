package search

import (
	"fmt"
	"strings"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/search/ranking"
	"github.com/prefeitura-rio/app-busca-rescore/internal/utils"
)

// Explain descreve, em markdown e em texto puro, como o score final é calculado.
// Usa os valores efetivos: identificadores desconhecidos aparecem com o default aplicado.
func Explain(cfg models.NormalizationConfig) models.Explanation {
	normalizer := ranking.Select(cfg.Normalizer).Type()

	var b strings.Builder
	fmt.Fprintf(&b, "**Final score** -> normalize using `%s` and then `%s` using %g\n\n",
		normalizer, effectiveFactorMode(cfg.FactorMode), cfg.Factor)

	switch normalizer {
	case models.NormalizerMinMax:
		fmt.Fprintf(&b, "- `min_score`: %g\n", cfg.MinScore)
		fmt.Fprintf(&b, "- `max_score`: %g\n", cfg.MaxScore)
		fmt.Fprintf(&b, "- `on_score_same`: %s\n", effectiveSameScore(cfg.OnScoreSame))
	default:
		b.WriteString("- `mean`: 0\n")
		b.WriteString("- `std_dev`: population\n")
	}

	md := b.String()
	return models.Explanation{
		Description: utils.StripMarkdown(md),
		Markdown:    md,
	}
}

func effectiveFactorMode(mode models.FactorMode) models.FactorMode {
	if mode.IsValid() {
		return mode
	}
	return models.FactorModeIncreaseByPercent
}

func effectiveSameScore(policy models.SameScorePolicy) models.SameScorePolicy {
	if policy.IsValid() {
		return policy
	}
	return models.SameScoreAvg
}
