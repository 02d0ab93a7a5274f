// Package compare implements the list comparison core: tokenize two raw
// text blobs, build normalized sets, and derive set operations and
// similarity metrics.
package compare

import (
	"context"
	"sort"
	"strings"

	"github.com/go-faster/errors"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
	"github.com/baditaflorin/go_list_compare/internal/core/setops"
	"github.com/baditaflorin/go_list_compare/internal/ports"
)

// Config holds configuration for the list comparator.
type Config struct {
	// TrimWhitespace strips leading and trailing whitespace from tokens.
	TrimWhitespace bool
	// Deduplicate collapses duplicate tokens in the displayed members.
	// Result sets are always deduplicated; when this is false the
	// pre-dedup token counts are surfaced in the result details.
	Deduplicate bool
	// SortOutput returns all member lists in lexical order.
	SortOutput bool
	// LabelA and LabelB are display names for the two lists.
	LabelA string
	LabelB string
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		TrimWhitespace: true,
		Deduplicate:    true,
		LabelA:         "List A",
		LabelB:         "List B",
	}
}

// Comparator implements the list comparison computation.
type Comparator struct {
	config     Config
	logger     ports.Logger
	splitter   ports.Splitter
	normalizer ports.Normalizer
}

// NewComparator creates a list comparator.
func NewComparator(config Config, logger ports.Logger, splitter ports.Splitter, normalizer ports.Normalizer) (*Comparator, error) {
	if splitter == nil {
		return nil, errors.New("splitter is required")
	}
	if normalizer == nil {
		return nil, errors.New("normalizer is required")
	}
	if config.LabelA == "" {
		config.LabelA = "List A"
	}
	if config.LabelB == "" {
		config.LabelB = "List B"
	}

	return &Comparator{
		config:     config,
		logger:     logger,
		splitter:   splitter,
		normalizer: normalizer,
	}, nil
}

// parsedList holds one input after tokenization and normalization.
type parsedList struct {
	set setops.Set
	// display maps a normalized member to the first-seen original spelling.
	display map[string]string
	// total counts non-empty tokens before deduplication.
	total int
}

func (c *Comparator) parse(raw string) parsedList {
	tokens := c.splitter.Split(raw)
	p := parsedList{
		set:     setops.New(len(tokens)),
		display: make(map[string]string, len(tokens)),
	}
	for _, token := range tokens {
		if c.config.TrimWhitespace {
			token = strings.TrimSpace(token)
		}
		if token == "" {
			continue
		}
		p.total++
		norm := c.normalizer.Normalize(token)
		p.set.Add(norm)
		if _, seen := p.display[norm]; !seen {
			p.display[norm] = token
		}
	}
	return p
}

// Compare computes the comparison result for the two raw lists.
func (c *Comparator) Compare(ctx context.Context, rawA, rawB string) domain.Result {
	c.logger.Debug("Starting list comparison",
		"raw_a_bytes", len(rawA),
		"raw_b_bytes", len(rawB),
	)

	details := make(map[string]interface{})

	select {
	case <-ctx.Done():
		c.logger.Error("Comparison cancelled", "error", ctx.Err())
		details["error"] = "comparison cancelled"
		return domain.Result{
			Name:    "list_comparison",
			LabelA:  c.config.LabelA,
			LabelB:  c.config.LabelB,
			Details: details,
		}
	default:
	}

	a := c.parse(rawA)
	b := c.parse(rawB)

	inter := a.set.Intersect(b.set)
	union := a.set.Union(b.set)
	aOnly := a.set.Difference(b.set)
	bOnly := b.set.Difference(a.set)

	c.logger.Debug("Computed set operations",
		"distinct_a", a.set.Len(),
		"distinct_b", b.set.Len(),
		"intersection", inter.Len(),
		"union", union.Len(),
	)

	details["distinct_a"] = a.set.Len()
	details["distinct_b"] = b.set.Len()
	if !c.config.Deduplicate {
		details["total_tokens_a"] = a.total
		details["total_tokens_b"] = b.total
	}

	result := domain.Result{
		Name:         "list_comparison",
		LabelA:       c.config.LabelA,
		LabelB:       c.config.LabelB,
		SetA:         c.members(a.set, a.display, nil),
		SetB:         c.members(b.set, b.display, nil),
		Intersection: c.members(inter, a.display, b.display),
		Union:        c.members(union, a.display, b.display),
		AOnly:        c.members(aOnly, a.display, nil),
		BOnly:        c.members(bOnly, b.display, nil),
		TotalA:       a.total,
		TotalB:       b.total,
		Jaccard:      jaccard(inter.Len(), union.Len()),
		Overlap:      overlap(inter.Len(), a.set.Len(), b.set.Len()),
		Details:      details,
	}

	c.logger.Debug("Computed similarity metrics",
		"jaccard", result.Jaccard,
		"overlap", result.Overlap,
	)

	return result
}

// members maps normalized set members back to their first-seen original
// spellings, preferring the primary input's spelling.
func (c *Comparator) members(s setops.Set, primary, fallback map[string]string) []string {
	out := make([]string, 0, s.Len())
	for _, norm := range s.Members() {
		if v, ok := primary[norm]; ok {
			out = append(out, v)
		} else if v, ok := fallback[norm]; ok {
			out = append(out, v)
		} else {
			out = append(out, norm)
		}
	}
	if c.config.SortOutput {
		sort.Strings(out)
	}
	return out
}

// jaccard is |intersection| / |union|, 0 by convention for an empty union.
func jaccard(inter, union int) float64 {
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// overlap is |intersection| / min(|A|, |B|), 0 when either set is empty.
func overlap(inter, lenA, lenB int) float64 {
	smaller := min(lenA, lenB)
	if smaller == 0 {
		return 0
	}
	return float64(inter) / float64(smaller)
}
