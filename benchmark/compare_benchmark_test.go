package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	listcompare "github.com/baditaflorin/go_list_compare"
)

// generateList builds a newline-separated list of n items, offset so two
// lists can share a controlled overlap.
func generateList(n, offset int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "Item-%d\n", offset+i)
	}
	return sb.String()
}

func benchmarkCompare(b *testing.B, opts ...listcompare.Option) {
	lc, err := listcompare.New(opts...)
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}

	listA := generateList(1000, 0)
	listB := generateList(1000, 500)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lc.Compare(ctx, listA, listB)
	}
}

func BenchmarkCompareDefaultNormalizer(b *testing.B) {
	benchmarkCompare(b, listcompare.WithDelimiter(listcompare.DelimiterNewline))
}

func BenchmarkCompareFastNormalizer(b *testing.B) {
	benchmarkCompare(b,
		listcompare.WithDelimiter(listcompare.DelimiterNewline),
		listcompare.WithFastNormalizer(),
	)
}

func BenchmarkCompareSortedOutput(b *testing.B) {
	benchmarkCompare(b,
		listcompare.WithDelimiter(listcompare.DelimiterNewline),
		listcompare.WithSortOutput(true),
	)
}
