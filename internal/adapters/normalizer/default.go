package normalizer

import (
	"golang.org/x/text/cases"

	"github.com/baditaflorin/go_list_compare/internal/ports"
)

// DefaultNormalizer case-folds tokens so comparison is case-insensitive.
type DefaultNormalizer struct {
	fold bool
}

// NewDefaultNormalizer creates the default token normalizer. When fold is
// false the normalizer passes tokens through unchanged.
func NewDefaultNormalizer(fold bool) ports.Normalizer {
	return &DefaultNormalizer{fold: fold}
}

// Normalize applies Unicode case folding when enabled.
func (n *DefaultNormalizer) Normalize(token string) string {
	if !n.fold {
		return token
	}
	return cases.Fold().String(token)
}
