package domain

type ValidationMode string

const (
	// ValidationBypass means no search credential is configured; every
	// candidate is assumed valid.
	ValidationBypass   ValidationMode = "bypass"
	ValidationSearched ValidationMode = "searched"
)

type EvidenceOutcome string

const (
	EvidenceKnowledgeGraph EvidenceOutcome = "knowledge_graph"
	EvidenceTitleMatch     EvidenceOutcome = "title_match"
	EvidenceNone           EvidenceOutcome = "no_evidence"
	EvidenceFailed         EvidenceOutcome = "failed"
)

// Positive reports whether the outcome confirms the candidate.
func (o EvidenceOutcome) Positive() bool {
	return o == EvidenceKnowledgeGraph || o == EvidenceTitleMatch
}

// QueryEvidence is the outcome of one validation query.
type QueryEvidence struct {
	Query   string          `json:"query"`
	Outcome EvidenceOutcome `json:"outcome"`
	Error   string          `json:"error,omitempty"`
}

type Verdict struct {
	Valid    bool            `json:"valid"`
	Mode     ValidationMode  `json:"mode"`
	Evidence []QueryEvidence `json:"evidence,omitempty"`
}

func BypassVerdict() Verdict {
	return Verdict{Valid: true, Mode: ValidationBypass}
}
