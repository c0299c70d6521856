package domain

import (
	"strings"
	"testing"
)

func TestNewCandidateSet_ExactDedup(t *testing.T) {
	cs := NewCandidateSet(map[Source][]string{
		SourceEntity:     {"Samsung", "LG"},
		SourceModel:      {"samsung", "LG"},
		SourceDictionary: {"Samsung", "Samsung"},
	}, nil)

	want := []string{"Samsung", "LG", "samsung"}
	got := cs.Keys()
	if len(got) != len(want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("key %d = %q, want %q", i, got[i], want[i])
		}
	}

	if !cs.Has("Samsung", SourceEntity) || !cs.Has("Samsung", SourceDictionary) {
		t.Error("Samsung should carry entity and dictionary provenance")
	}
	if cs.Has("Samsung", SourceModel) {
		t.Error("exact policy must not credit the lower-case model output to Samsung")
	}
	if srcs := cs.SourcesOf("LG"); len(srcs) != 2 {
		t.Errorf("LG sources = %v, want entity and model", srcs)
	}
}

func TestNewCandidateSet_CustomNormalize(t *testing.T) {
	cs := NewCandidateSet(map[Source][]string{
		SourceEntity: {"Samsung"},
		SourceModel:  {"samsung "},
	}, func(s string) string { return strings.ToLower(strings.TrimSpace(s)) })

	if cs.Len() != 1 {
		t.Fatalf("len = %d, want 1", cs.Len())
	}
	if cs.Name("samsung") != "Samsung" {
		t.Errorf("reported name = %q, want first seen surface form", cs.Name("samsung"))
	}
	if !cs.Has("samsung", SourceModel) {
		t.Error("model provenance lost after normalization")
	}
}

func TestNewCandidateSet_SkipsEmptyKeys(t *testing.T) {
	cs := NewCandidateSet(map[Source][]string{SourceModel: {"", "Sony"}}, nil)
	if cs.Len() != 1 {
		t.Errorf("len = %d, want 1", cs.Len())
	}
	if cs.Name("Sony") != "Sony" || !cs.Has("Sony", SourceModel) {
		t.Errorf("Sony = %q from %v", cs.Name("Sony"), cs.SourcesOf("Sony"))
	}
}

func TestNewCandidateSet_Empty(t *testing.T) {
	cs := NewCandidateSet(nil, nil)
	if cs.Len() != 0 || len(cs.Keys()) != 0 {
		t.Error("expected empty set")
	}
}
