package service

import (
	"math"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

const (
	EntityWeight     = 0.4
	ModelWeight      = 0.4
	ValidationWeight = 0.2
)

// ComputeConfidence fuses the three boolean signals into a score rounded to
// three decimals. Only multiples of 0.2 in [0, 1] are reachable.
func ComputeConfidence(inEntity, inModel, valid bool) float64 {
	score := EntityWeight*indicator(inEntity) +
		ModelWeight*indicator(inModel) +
		ValidationWeight*indicator(valid)
	return roundScore(score)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func roundScore(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// ScoreCandidate builds the BrandScore for one key of the set.
func ScoreCandidate(set *domain.CandidateSet, key string, verdict domain.Verdict) domain.BrandScore {
	conf := ComputeConfidence(
		set.Has(key, domain.SourceEntity),
		set.Has(key, domain.SourceModel),
		verdict.Valid,
	)
	return domain.BrandScore{
		Brand:      set.Name(key),
		Confidence: conf,
		Band:       domain.ComputeBand(conf),
		Sources:    set.SourcesOf(key),
		Verdict:    verdict,
	}
}
