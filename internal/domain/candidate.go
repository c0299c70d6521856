package domain

// Source identifies which extractor proposed a candidate.
type Source string

const (
	SourceEntity     Source = "entity"
	SourceModel      Source = "model"
	SourceDictionary Source = "dictionary"
)

// Sources lists every candidate source in pipeline order.
var Sources = []Source{SourceEntity, SourceModel, SourceDictionary}

// NormalizeFunc maps a candidate surface form to its deduplication key.
type NormalizeFunc func(string) string

// CandidateSet is the deduplicated union of all source outputs for one prompt.
// Entries keep first-seen order; the first surface form seen for a key is the
// one reported.
type CandidateSet struct {
	keys    []string
	names   map[string]string
	sources map[string][]Source
}

// NewCandidateSet builds the set from per-source candidate lists. Sources are
// consumed in the order of Sources. A nil normalize keeps exact-string keys.
func NewCandidateSet(lists map[Source][]string, normalize NormalizeFunc) *CandidateSet {
	if normalize == nil {
		normalize = func(s string) string { return s }
	}
	cs := &CandidateSet{
		names:   make(map[string]string),
		sources: make(map[string][]Source),
	}
	for _, src := range Sources {
		for _, name := range lists[src] {
			key := normalize(name)
			if key == "" {
				continue
			}
			if _, ok := cs.names[key]; !ok {
				cs.keys = append(cs.keys, key)
				cs.names[key] = name
			}
			if !containsSource(cs.sources[key], src) {
				cs.sources[key] = append(cs.sources[key], src)
			}
		}
	}
	return cs
}

func containsSource(list []Source, s Source) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func (cs *CandidateSet) Len() int {
	return len(cs.keys)
}

// Keys returns a copy of the deduplication keys in first-seen order.
func (cs *CandidateSet) Keys() []string {
	out := make([]string, len(cs.keys))
	copy(out, cs.keys)
	return out
}

// Name returns the reported surface form for a key.
func (cs *CandidateSet) Name(key string) string {
	return cs.names[key]
}

// SourcesOf returns the sources that produced a key.
func (cs *CandidateSet) SourcesOf(key string) []Source {
	src := cs.sources[key]
	out := make([]Source, len(src))
	copy(out, src)
	return out
}

// Has reports whether src produced key.
func (cs *CandidateSet) Has(key string, src Source) bool {
	return containsSource(cs.sources[key], src)
}

// BrandScore is one scored entry of an extraction result.
type BrandScore struct {
	Brand      string         `json:"brand"`
	Confidence float64        `json:"confidence"`
	Band       ConfidenceBand `json:"band"`
	Sources    []Source       `json:"sources"`
	Verdict    Verdict        `json:"verdict"`
}

// SourceReport records what a single source produced, or why it produced nothing.
type SourceReport struct {
	Source     Source   `json:"source"`
	Candidates []string `json:"candidates"`
	Error      string   `json:"error,omitempty"`
}

func (r SourceReport) Failed() bool {
	return r.Error != ""
}

// ExtractionResult holds brands sorted by confidence, highest first.
type ExtractionResult struct {
	Brands        []BrandScore   `json:"brands"`
	SourceReports []SourceReport `json:"source_reports"`
}
