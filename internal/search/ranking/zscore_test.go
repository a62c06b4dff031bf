package ranking

import (
	"errors"
	"math"
	"testing"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

func zScoreConfig(factor float32, mode models.FactorMode) models.NormalizationConfig {
	return models.NormalizationConfig{
		Normalizer: models.NormalizerZScore,
		MinScore:   1,
		MaxScore:   4,
		Factor:     factor,
		FactorMode: mode,
	}
}

func TestZScoreNormalize(t *testing.T) {
	tests := []struct {
		name   string
		scores []float32
		factor float32
		want   []float32
	}{
		{
			name:   "Sem fator",
			scores: []float32{10, 6, 4, 3.5, 3},
			factor: 0,
			want:   []float32{1.8, 0.27, -0.5, -0.7, -0.89},
		},
		{
			name:   "Aumento de 50% aproxima negativos de zero",
			scores: []float32{10, 6, 4, 3.5, 3},
			factor: 0.5,
			want:   []float32{2.7, 0.405, -0.25, -0.35, -0.45},
		},
		{
			name:   "Scores iguais",
			scores: []float32{10, 10, 10},
			factor: 0,
			want:   []float32{0, 0, 0},
		},
		{
			name:   "Resultado único",
			scores: []float32{7.5},
			factor: 0,
			want:   []float32{0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := resultSet(tt.scores...)
			got, err := ZScoreNormalizer{}.Normalize(results, zScoreConfig(tt.factor, models.FactorModeIncreaseByPercent))
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}
			assertScores(t, got, tt.want, 0.1)
		})
	}
}

func TestZScoreSameScoresAreExactlyZero(t *testing.T) {
	for _, v := range []float32{0.1, 4, 10.5, 1e6} {
		results := resultSet(v, v, v, v, v, v, v)
		got, err := ZScoreNormalizer{}.Normalize(results, zScoreConfig(0, models.FactorModeSum))
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		for i, doc := range got {
			if doc.Score != 0 {
				t.Errorf("v=%v: results[%d].Score = %v, want 0", v, i, doc.Score)
			}
		}
	}
}

func TestZScoreMeanIsZero(t *testing.T) {
	results := resultSet(42, 17.5, 9, 8.25, 3, 0.5)
	got, err := ZScoreNormalizer{}.Normalize(results, zScoreConfig(0, models.FactorModeSum))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}

	var total float64
	for _, doc := range got {
		total += float64(doc.Score)
	}
	if mean := total / float64(len(got)); math.Abs(mean) > 1e-5 {
		t.Errorf("média dos z-scores = %v, want 0", mean)
	}
}

func TestZScoreMonotonicity(t *testing.T) {
	scores := []float32{42, 17.5, 17.5, 9, 3, -2}
	got, err := ZScoreNormalizer{}.Normalize(resultSet(scores...), zScoreConfig(0, models.FactorModeSum))
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Score > got[i-1].Score {
			t.Errorf("ordem invertida em %d: %v > %v", i, got[i].Score, got[i-1].Score)
		}
		if scores[i] == scores[i-1] && got[i].Score != got[i-1].Score {
			t.Errorf("empate desfeito em %d", i)
		}
	}
}

func TestZScoreIgnoresTargetRange(t *testing.T) {
	cfg := zScoreConfig(0, models.FactorModeSum)
	cfg.MinScore, cfg.MaxScore = 9, 1

	if _, err := (ZScoreNormalizer{}).Normalize(resultSet(3, 2, 1), cfg); err != nil {
		t.Errorf("Normalize() error = %v, want nil", err)
	}
}

func TestZScoreInvalidFactor(t *testing.T) {
	t.Run("Valores não nulos disparam erro", func(t *testing.T) {
		results := resultSet(10, 6, 4)
		_, err := ZScoreNormalizer{}.Normalize(results, zScoreConfig(2, models.FactorModeIncreaseByPercent))
		if !errors.Is(err, models.ErrInvalidFactor) {
			t.Fatalf("error = %v, want ErrInvalidFactor", err)
		}
		assertScores(t, results, []float32{10, 6, 4}, 0)
	})

	t.Run("Todos nulos não disparam erro", func(t *testing.T) {
		results := resultSet(5, 5, 5)
		got, err := ZScoreNormalizer{}.Normalize(results, zScoreConfig(2, models.FactorModeIncreaseByPercent))
		if err != nil {
			t.Fatalf("Normalize() error = %v", err)
		}
		assertScores(t, got, []float32{2, 2, 2}, 0)
	})
}

func TestZScoreEmpty(t *testing.T) {
	got, err := ZScoreNormalizer{}.Normalize(models.RankedResultSet{}, zScoreConfig(0, models.FactorModeSum))
	if err != nil || len(got) != 0 {
		t.Errorf("Normalize(empty) = %v, %v", got, err)
	}
}

func TestZScoreNonFiniteInput(t *testing.T) {
	inf := float32(math.Inf(1))
	results := resultSet(inf, 1, 0)

	_, err := ZScoreNormalizer{}.Normalize(results, zScoreConfig(0, models.FactorModeSum))
	if !errors.Is(err, models.ErrNonFiniteScore) {
		t.Fatalf("error = %v, want ErrNonFiniteScore", err)
	}
	if results[0].Score != inf || results[1].Score != 1 || results[2].Score != 0 {
		t.Errorf("scores não deveriam mudar: %v", results)
	}
}
