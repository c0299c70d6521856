package domain

// ConfidenceBand is a coarse label for a fused brand confidence.
type ConfidenceBand string

const (
	BandStrong   ConfidenceBand = "strong"
	BandModerate ConfidenceBand = "moderate"
	BandWeak     ConfidenceBand = "weak"
	BandMinimal  ConfidenceBand = "minimal"
)

// ComputeBand maps a confidence score to its band. Scores are multiples of 0.2
// under the fixed fusion weights, so the cut points sit between them.
func ComputeBand(confidence float64) ConfidenceBand {
	switch {
	case confidence >= 0.75:
		return BandStrong
	case confidence >= 0.55:
		return BandModerate
	case confidence >= 0.35:
		return BandWeak
	default:
		return BandMinimal
	}
}
