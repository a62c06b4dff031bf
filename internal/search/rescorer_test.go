package search

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
	"github.com/prefeitura-rio/app-busca-rescore/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func newTestRescorer(maxWindow int) *Rescorer {
	return NewRescorer(maxWindow, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func docs(scores ...float32) models.RankedResultSet {
	results := make(models.RankedResultSet, len(scores))
	for i, s := range scores {
		results[i] = models.ScoredDocument{ID: string(rune('a' + i)), Score: s}
	}
	return results
}

func minMax(min, max, factor float32, mode models.FactorMode) models.NormalizationConfig {
	cfg := models.DefaultNormalizationConfig()
	cfg.Normalizer = models.NormalizerMinMax
	cfg.MinScore = min
	cfg.MaxScore = max
	cfg.Factor = factor
	cfg.FactorMode = mode
	return cfg
}

func TestWindowLength(t *testing.T) {
	tests := []struct {
		total, window, want int
	}{
		{5, 0, 5},
		{5, -1, 5},
		{5, 3, 3},
		{5, 5, 5},
		{5, 50, 5},
		{0, 3, 0},
	}

	for _, tt := range tests {
		if got := WindowLength(tt.total, tt.window); got != tt.want {
			t.Errorf("WindowLength(%d, %d) = %d, want %d", tt.total, tt.window, got, tt.want)
		}
	}
}

func TestRescore(t *testing.T) {
	ctx := context.Background()

	t.Run("Lista inteira", func(t *testing.T) {
		results := docs(10.5, 9, 8, 6.5, 2)
		got, err := newTestRescorer(0).Rescore(ctx, results, 0, minMax(1, 4, 0.6, models.FactorModeIncreaseByPercent))
		if err != nil {
			t.Fatalf("Rescore() error = %v", err)
		}
		want := []float32{7.2, 5.5, 4.9, 4.1, 1.6}
		for i := range want {
			if math.Abs(float64(got[i].Score-want[i])) > 0.1 {
				t.Errorf("results[%d] = %v, want %v", i, got[i].Score, want[i])
			}
		}
	})

	t.Run("Janela preserva a cauda", func(t *testing.T) {
		results := docs(10, 8, 6, 4, 2)
		got, err := newTestRescorer(0).Rescore(ctx, results, 2, minMax(1, 4, 0, models.FactorModeSum))
		if err != nil {
			t.Fatalf("Rescore() error = %v", err)
		}
		want := []float32{4, 1, 6, 4, 2}
		for i := range want {
			if got[i].Score != want[i] {
				t.Errorf("results[%d] = %v, want %v", i, got[i].Score, want[i])
			}
		}
	})

	t.Run("Lista vazia", func(t *testing.T) {
		got, err := newTestRescorer(0).Rescore(ctx, models.RankedResultSet{}, 10, minMax(5, 1, 0, models.FactorModeSum))
		if err != nil {
			t.Fatalf("Rescore() error = %v", err)
		}
		if len(got) != 0 {
			t.Errorf("len = %d, want 0", len(got))
		}
	})

	t.Run("Janela acima do limite", func(t *testing.T) {
		results := docs(3, 2, 1)
		_, err := newTestRescorer(2).Rescore(ctx, results, 3, minMax(1, 4, 0, models.FactorModeSum))
		if !errors.Is(err, models.ErrInvalidWindowSize) {
			t.Fatalf("error = %v, want ErrInvalidWindowSize", err)
		}
		if results[0].Score != 3 {
			t.Error("scores não deveriam mudar")
		}
	})

	t.Run("Intervalo inválido", func(t *testing.T) {
		before := testutil.ToFloat64(observability.ErrorsTotal.WithLabelValues("min_max", "invalid_range"))

		results := docs(3, 2, 1)
		_, err := newTestRescorer(0).Rescore(ctx, results, 0, minMax(4, 1, 0, models.FactorModeSum))
		if !errors.Is(err, models.ErrInvalidRange) {
			t.Fatalf("error = %v, want ErrInvalidRange", err)
		}

		after := testutil.ToFloat64(observability.ErrorsTotal.WithLabelValues("min_max", "invalid_range"))
		if after != before+1 {
			t.Errorf("errors_total = %v, want %v", after, before+1)
		}
	})

	t.Run("Scores extremos não finitos", func(t *testing.T) {
		before := testutil.ToFloat64(observability.ErrorsTotal.WithLabelValues("min_max", "non_finite_score"))

		results := docs(3e38, 0, -3e38)
		_, err := newTestRescorer(0).Rescore(ctx, results, 0, minMax(1, 4, 0, models.FactorModeSum))
		if !errors.Is(err, models.ErrNonFiniteScore) {
			t.Fatalf("error = %v, want ErrNonFiniteScore", err)
		}
		if results[0].Score != 3e38 || results[2].Score != -3e38 {
			t.Errorf("scores não deveriam mudar: %v", results)
		}

		after := testutil.ToFloat64(observability.ErrorsTotal.WithLabelValues("min_max", "non_finite_score"))
		if after != before+1 {
			t.Errorf("errors_total = %v, want %v", after, before+1)
		}
	})

	t.Run("Métrica de sucesso", func(t *testing.T) {
		cfg := models.DefaultNormalizationConfig()
		before := testutil.ToFloat64(observability.RescoreTotal.WithLabelValues("z_score", "ok"))

		if _, err := newTestRescorer(0).Rescore(ctx, docs(3, 2, 1), 0, cfg); err != nil {
			t.Fatalf("Rescore() error = %v", err)
		}

		after := testutil.ToFloat64(observability.RescoreTotal.WithLabelValues("z_score", "ok"))
		if after != before+1 {
			t.Errorf("operations_total = %v, want %v", after, before+1)
		}
	})
}

func TestErrorType(t *testing.T) {
	tests := []struct {
		err        error
		want       string
		wantConfig bool
	}{
		{nil, "", false},
		{models.ErrInvalidRange, "invalid_range", true},
		{models.ErrInvalidFactor, "invalid_factor", true},
		{models.ErrInvalidWindowSize, "invalid_window_size", true},
		{models.ErrNonFiniteScore, "non_finite_score", false},
		{errors.New("boom"), "internal", false},
	}

	for _, tt := range tests {
		if got := ErrorType(tt.err); got != tt.want {
			t.Errorf("ErrorType(%v) = %q, want %q", tt.err, got, tt.want)
		}
		if got := IsConfigError(tt.err); got != tt.wantConfig {
			t.Errorf("IsConfigError(%v) = %v, want %v", tt.err, got, tt.wantConfig)
		}
		if got, want := IsInputError(tt.err), tt.want == "non_finite_score"; got != want {
			t.Errorf("IsInputError(%v) = %v, want %v", tt.err, got, want)
		}
	}
}
