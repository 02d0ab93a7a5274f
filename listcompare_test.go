// listcompare_test.go
package listcompare

import (
	"context"
	"math"
	"sort"
	"testing"
)

func equalMembers(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	g := append([]string(nil), got...)
	w := append([]string(nil), want...)
	sort.Strings(g)
	sort.Strings(w)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}

func TestCompareWithDefaults(t *testing.T) {
	tests := []struct {
		name             string
		rawA             string
		rawB             string
		wantIntersection []string
		wantJaccard      float64
		wantOverlap      float64
	}{
		{
			name:             "Identical lists",
			rawA:             "apple\nbanana\ncherry",
			rawB:             "apple\nbanana\ncherry",
			wantIntersection: []string{"apple", "banana", "cherry"},
			wantJaccard:      1.0,
			wantOverlap:      1.0,
		},
		{
			name: "Mixed delimiters resolved by auto mode",
			// A splits on newlines; B is a single line, so auto mode
			// falls back to commas.
			rawA:             "apple\nbanana\nCherry",
			rawB:             "APPLE,banana,date",
			wantIntersection: []string{"apple", "banana"},
			wantJaccard:      0.5,
			wantOverlap:      1.0,
		},
		{
			name:             "Disjoint lists",
			rawA:             "a\nb",
			rawB:             "c\nd",
			wantIntersection: []string{},
			wantJaccard:      0,
			wantOverlap:      0,
		},
		{
			name:             "Both empty",
			rawA:             "",
			rawB:             "",
			wantIntersection: []string{},
			wantJaccard:      0,
			wantOverlap:      0,
		},
		{
			name:             "Duplicates collapse into one member",
			rawA:             "apple\napple\nApple",
			rawB:             "apple",
			wantIntersection: []string{"apple"},
			wantJaccard:      1.0,
			wantOverlap:      1.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result, err := CompareWithDefaults(tc.rawA, tc.rawB)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !equalMembers(result.Intersection, tc.wantIntersection) {
				t.Errorf("intersection = %v, want %v", result.Intersection, tc.wantIntersection)
			}
			if math.Abs(result.Jaccard-tc.wantJaccard) > 1e-9 {
				t.Errorf("jaccard = %v, want %v", result.Jaccard, tc.wantJaccard)
			}
			if math.Abs(result.Overlap-tc.wantOverlap) > 1e-9 {
				t.Errorf("overlap = %v, want %v", result.Overlap, tc.wantOverlap)
			}
		})
	}
}

func TestCompareCaseSensitive(t *testing.T) {
	lc, err := New(WithCaseSensitive(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := lc.Compare(context.Background(), "apple\nbanana\nCherry", "APPLE,banana,date")
	if !equalMembers(result.Intersection, []string{"banana"}) {
		t.Errorf("intersection = %v, want [banana]", result.Intersection)
	}
	if math.Abs(result.Jaccard-0.2) > 1e-9 {
		t.Errorf("jaccard = %v, want 0.2", result.Jaccard)
	}
}

func TestCompareSortedOutput(t *testing.T) {
	lc, err := New(WithSortOutput(true), WithDelimiter(DelimiterComma))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := lc.Compare(context.Background(), "pear,apple,mango", "apple,mango,pear")
	want := []string{"apple", "mango", "pear"}
	if len(result.Intersection) != len(want) {
		t.Fatalf("intersection = %v, want %v", result.Intersection, want)
	}
	for i, m := range result.Intersection {
		if m != want[i] {
			t.Fatalf("intersection = %v, want sorted %v", result.Intersection, want)
		}
	}
}

func TestCompareCustomDelimiter(t *testing.T) {
	lc, err := New(WithCustomDelimiter("|"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := lc.Compare(context.Background(), "a|b|c", "b|c|d")
	if !equalMembers(result.Intersection, []string{"b", "c"}) {
		t.Errorf("intersection = %v, want [b c]", result.Intersection)
	}
}

func TestEmptyCustomDelimiterIsRejected(t *testing.T) {
	if _, err := New(WithCustomDelimiter("")); err == nil {
		t.Fatal("expected an error for an empty custom delimiter")
	}
}

func TestCompareWithFastNormalizer(t *testing.T) {
	lc, err := New(WithFastNormalizer(), WithDelimiter(DelimiterWhitespace))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result := lc.Compare(context.Background(), "Apple Banana", "apple cherry")
	if !equalMembers(result.Intersection, []string{"Apple"}) {
		t.Errorf("intersection = %v, want [Apple]", result.Intersection)
	}
}
