package normalizer

import (
	"golang.org/x/text/cases"

	"github.com/baditaflorin/go_list_compare/internal/pool"
	"github.com/baditaflorin/go_list_compare/internal/ports"
)

// FastNormalizer folds tokens with a precomputed ASCII lowering table and
// pooled buffers for the common case. Tokens containing non-ASCII bytes
// fall back to the Unicode folding path.
type FastNormalizer struct {
	fold bool

	asciiLower [128]byte
	bytePool   *pool.BufferPool
}

// NewFastNormalizer creates a fast token normalizer.
func NewFastNormalizer(fold bool) ports.Normalizer {
	n := &FastNormalizer{
		fold:     fold,
		bytePool: pool.NewBufferPool(256),
	}
	for i := 0; i < 128; i++ {
		b := byte(i)
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		n.asciiLower[i] = b
	}
	return n
}

// Normalize applies case folding when enabled.
func (n *FastNormalizer) Normalize(token string) string {
	if !n.fold || token == "" {
		return token
	}

	asciiOnly := true
	needsFold := false
	for i := 0; i < len(token); i++ {
		b := token[i]
		if b >= 128 {
			asciiOnly = false
			break
		}
		if b >= 'A' && b <= 'Z' {
			needsFold = true
		}
	}

	if !asciiOnly {
		return cases.Fold().String(token)
	}
	if !needsFold {
		return token
	}

	buffer := n.bytePool.Get()
	defer n.bytePool.Put(buffer)
	if cap(*buffer) < len(token) {
		*buffer = make([]byte, 0, len(token))
	}
	for i := 0; i < len(token); i++ {
		*buffer = append(*buffer, n.asciiLower[token[i]])
	}
	return string(*buffer)
}
