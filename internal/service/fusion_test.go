package service

import (
	"testing"

	"github.com/Harshitk-cp/brandlens/internal/domain"
)

func TestComputeConfidence(t *testing.T) {
	tests := []struct {
		entity, model, valid bool
		want                 float64
	}{
		{false, false, false, 0.0},
		{false, false, true, 0.2},
		{true, false, false, 0.4},
		{false, true, false, 0.4},
		{true, false, true, 0.6},
		{false, true, true, 0.6},
		{true, true, false, 0.8},
		{true, true, true, 1.0},
	}
	for _, tt := range tests {
		got := ComputeConfidence(tt.entity, tt.model, tt.valid)
		if got != tt.want {
			t.Errorf("ComputeConfidence(%v, %v, %v) = %v, want %v", tt.entity, tt.model, tt.valid, got, tt.want)
		}
		if again := ComputeConfidence(tt.entity, tt.model, tt.valid); again != got {
			t.Errorf("ComputeConfidence not stable: %v then %v", got, again)
		}
	}
}

func TestComputeConfidence_ValidationLift(t *testing.T) {
	for _, e := range []bool{false, true} {
		for _, m := range []bool{false, true} {
			lift := ComputeConfidence(e, m, true) - ComputeConfidence(e, m, false)
			if roundScore(lift) != 0.2 {
				t.Errorf("lift for entity=%v model=%v = %v, want 0.2", e, m, lift)
			}
		}
	}
}

func TestScoreCandidate(t *testing.T) {
	set := domain.NewCandidateSet(map[domain.Source][]string{
		domain.SourceEntity:     {"Sony"},
		domain.SourceDictionary: {"Sony"},
	}, nil)

	s := ScoreCandidate(set, "Sony", domain.BypassVerdict())
	if s.Brand != "Sony" {
		t.Errorf("expected brand Sony, got %q", s.Brand)
	}
	if s.Confidence != 0.6 {
		t.Errorf("expected confidence 0.6, got %v", s.Confidence)
	}
	if s.Band != domain.BandModerate {
		t.Errorf("expected band moderate, got %s", s.Band)
	}
	if len(s.Sources) != 2 || s.Sources[0] != domain.SourceEntity || s.Sources[1] != domain.SourceDictionary {
		t.Errorf("unexpected sources %v", s.Sources)
	}
}
