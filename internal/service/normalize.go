package service

import (
	"fmt"
	"strings"

	"github.com/Harshitk-cp/brandlens/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Normalization policies for candidate deduplication.
const (
	NormalizeExact    = "exact"
	NormalizeCasefold = "casefold"
)

// NewNormalizer returns the NormalizeFunc for a policy name.
// An empty name selects exact matching.
func NewNormalizer(policy string) (domain.NormalizeFunc, error) {
	switch policy {
	case "", NormalizeExact:
		return ExactKey, nil
	case NormalizeCasefold:
		return CasefoldKey, nil
	default:
		return nil, fmt.Errorf("unknown brand normalization: %s (valid options: exact, casefold)", policy)
	}
}

// ExactKey keeps the surface form as the key. "Samsung" and "samsung" stay
// distinct.
func ExactKey(s string) string {
	return s
}

// CasefoldKey trims, collapses inner whitespace, applies NFKC and folds case.
func CasefoldKey(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFKC.String(s))
}
