package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
)

func sampleResult() domain.Result {
	return domain.Result{
		LabelA:       "List A",
		LabelB:       "List B",
		AOnly:        []string{"cherry"},
		Intersection: []string{"apple", "banana"},
		BOnly:        []string{"date"},
	}
}

func TestWriteTXT(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTXT(&sb, []string{"apple", "banana"}))
	assert.Equal(t, "apple\nbanana", sb.String())
}

func TestWriteTXTEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteTXT(&sb, nil))
	assert.Equal(t, "", sb.String())
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, sampleResult()))

	lines := strings.Split(strings.TrimSpace(sb.String()), "\n")
	assert.Equal(t, []string{
		"member,category",
		"cherry,a_only",
		"apple,intersection",
		"banana,intersection",
		"date,b_only",
	}, lines)
}

func TestWriteCSVQuotesSpecialCharacters(t *testing.T) {
	var sb strings.Builder
	result := domain.Result{Intersection: []string{`say "hi", twice`}}
	require.NoError(t, WriteCSV(&sb, result))
	assert.Contains(t, sb.String(), `"say ""hi"", twice",intersection`)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "a_only.txt", Filename(domain.RegionAOnly, "txt"))
	assert.Equal(t, "union.csv", Filename(domain.RegionUnion, "csv"))
}
