package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNormalizerFolds(t *testing.T) {
	n := NewDefaultNormalizer(true)

	assert.Equal(t, "apple", n.Normalize("APPLE"))
	assert.Equal(t, "héllo", n.Normalize("HÉLLO"))
	// Full Unicode case folding, not just lowercasing.
	assert.Equal(t, "strasse", n.Normalize("Straße"))
}

func TestDefaultNormalizerPassThrough(t *testing.T) {
	n := NewDefaultNormalizer(false)

	assert.Equal(t, "APPLE", n.Normalize("APPLE"))
	assert.Equal(t, "", n.Normalize(""))
}

func TestFastNormalizerMatchesDefault(t *testing.T) {
	fast := NewFastNormalizer(true)
	def := NewDefaultNormalizer(true)

	inputs := []string{
		"",
		"apple",
		"APPLE",
		"MiXeD-Case_42",
		"already lower",
		"HÉLLO",
		"Straße",
		"ÆØÅ",
	}
	for _, in := range inputs {
		assert.Equal(t, def.Normalize(in), fast.Normalize(in), "input %q", in)
	}
}

func TestFastNormalizerPassThrough(t *testing.T) {
	n := NewFastNormalizer(false)
	assert.Equal(t, "APPLE", n.Normalize("APPLE"))
}

func TestFastNormalizerReusesBuffers(t *testing.T) {
	n := NewFastNormalizer(true)
	// Repeated calls must not corrupt earlier results.
	first := n.Normalize("FIRST-TOKEN")
	second := n.Normalize("SECOND")
	assert.Equal(t, "first-token", first)
	assert.Equal(t, "second", second)
}
