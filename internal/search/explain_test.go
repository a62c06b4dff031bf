package search

import (
	"strings"
	"testing"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

func TestExplain(t *testing.T) {
	t.Run("min_max", func(t *testing.T) {
		cfg := minMax(1, 4, 0.6, models.FactorModeIncreaseByPercent)
		cfg.OnScoreSame = "median"

		exp := Explain(cfg)

		wantDesc := "Final score -> normalize using min_max and then increase_by_percent using 0.6\n" +
			"- min_score: 1\n" +
			"- max_score: 4\n" +
			"- on_score_same: avg"
		if exp.Description != wantDesc {
			t.Errorf("Description = %q, want %q", exp.Description, wantDesc)
		}
		if !strings.Contains(exp.Markdown, "`min_max`") {
			t.Errorf("Markdown sem code span: %q", exp.Markdown)
		}
	})

	t.Run("tipo desconhecido usa z_score", func(t *testing.T) {
		cfg := models.DefaultNormalizationConfig()
		cfg.Normalizer = "sigmoid"
		cfg.FactorMode = "pow"

		exp := Explain(cfg)

		if !strings.HasPrefix(exp.Description, "Final score -> normalize using z_score and then increase_by_percent using 0") {
			t.Errorf("Description = %q", exp.Description)
		}
		if strings.Contains(exp.Description, "min_score") {
			t.Errorf("z_score não usa min_score: %q", exp.Description)
		}
	})
}
