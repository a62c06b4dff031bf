package ranking

import (
	"math"
	"strconv"
	"testing"

	"github.com/prefeitura-rio/app-busca-rescore/internal/models"
)

func resultSet(scores ...float32) models.RankedResultSet {
	results := make(models.RankedResultSet, len(scores))
	for i, s := range scores {
		results[i] = models.ScoredDocument{ID: "doc-" + strconv.Itoa(i+1), Score: s}
	}
	return results
}

func assertScores(t *testing.T, got models.RankedResultSet, want []float32, tolerance float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(float64(got[i].Score-want[i])) > tolerance {
			t.Errorf("results[%d].Score = %v, want %v (±%v)", i, got[i].Score, want[i], tolerance)
		}
	}
}
