package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
)

func TestVennSVG(t *testing.T) {
	result := domain.Result{
		LabelA:       "Staging",
		LabelB:       "Production",
		SetA:         []string{"a", "b", "c"},
		SetB:         []string{"b", "c", "d"},
		Intersection: []string{"b", "c"},
		Union:        []string{"a", "b", "c", "d"},
		AOnly:        []string{"a"},
		BOnly:        []string{"d"},
		Jaccard:      0.5,
		Overlap:      2.0 / 3.0,
	}

	var sb strings.Builder
	require.NoError(t, VennSVG(&sb, result))

	svg := sb.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.Contains(t, svg, "Staging")
	assert.Contains(t, svg, "Production")
	assert.Contains(t, svg, "Jaccard 0.500")
}

func TestVennSVGEscapesLabels(t *testing.T) {
	result := domain.Result{
		LabelA: "Tom & Jerry",
		LabelB: "</text><script>alert(1)</script><text>",
	}

	var sb strings.Builder
	require.NoError(t, VennSVG(&sb, result))

	svg := sb.String()
	assert.NotContains(t, svg, "<script>")
	assert.NotContains(t, svg, "Tom & Jerry")
	assert.Contains(t, svg, "Tom &amp; Jerry")
}

func TestVennSVGEmptyResult(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, VennSVG(&sb, domain.Result{LabelA: "List A", LabelB: "List B"}))
	assert.Contains(t, sb.String(), "<circle")
}

func TestRadiusScalesWithSize(t *testing.T) {
	small := radius(1, 10)
	large := radius(9, 10)
	assert.Less(t, small, large)
	assert.Equal(t, float64(minRadius), radius(0, 10))
	assert.LessOrEqual(t, large, float64(maxRadius))
}
