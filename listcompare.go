// listcompare.go
// Package listcompare compares two user-supplied lists using basic set
// operations. Each raw text blob is split on a configurable delimiter,
// normalized, and converted into a set; the package then derives the
// intersection, union, and one-sided differences together with two
// similarity metrics:
//
//	Jaccard  = |A∩B| / |A∪B|         (0 when the union is empty)
//	Overlap  = |A∩B| / min(|A|,|B|)  (0 when either set is empty)
//
// Configuration uses the functional options pattern.
package listcompare

import (
	"context"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_list_compare/internal/adapters/logger"
	"github.com/baditaflorin/go_list_compare/internal/adapters/normalizer"
	"github.com/baditaflorin/go_list_compare/internal/adapters/splitter"
	"github.com/baditaflorin/go_list_compare/internal/core/compare"
	"github.com/baditaflorin/go_list_compare/internal/core/domain"
	"github.com/baditaflorin/go_list_compare/internal/ports"
	"github.com/baditaflorin/go_list_compare/internal/warmup"
)

// Delimiter selects how raw list text is tokenized.
type Delimiter = splitter.Mode

// Supported delimiter modes.
const (
	DelimiterAuto       = splitter.ModeAuto
	DelimiterNewline    = splitter.ModeNewline
	DelimiterComma      = splitter.ModeComma
	DelimiterSemicolon  = splitter.ModeSemicolon
	DelimiterWhitespace = splitter.ModeWhitespace
	DelimiterCustom     = splitter.ModeCustom
)

// ListCompare provides methods to compare two raw lists.
type ListCompare struct {
	comparator ports.ListComparator
	logger     ports.Logger
}

// Option defines a functional option for configuring ListCompare.
type Option func(*config)

type config struct {
	Delimiter       Delimiter
	CustomDelimiter string
	CaseSensitive   bool
	TrimWhitespace  bool
	Deduplicate     bool
	SortOutput      bool
	LabelA          string
	LabelB          string
	FastNormalizer  bool
	WarmUp          bool
	Logger          ports.Logger
	Normalizer      ports.Normalizer
}

// WithDelimiter sets the delimiter mode used to tokenize both inputs.
func WithDelimiter(d Delimiter) Option {
	return func(cfg *config) {
		cfg.Delimiter = d
	}
}

// WithCustomDelimiter sets a literal delimiter string and selects the
// custom delimiter mode.
func WithCustomDelimiter(delim string) Option {
	return func(cfg *config) {
		cfg.Delimiter = DelimiterCustom
		cfg.CustomDelimiter = delim
	}
}

// WithCaseSensitive controls whether comparison distinguishes case.
// Comparison is case-insensitive by default.
func WithCaseSensitive(sensitive bool) Option {
	return func(cfg *config) {
		cfg.CaseSensitive = sensitive
	}
}

// WithTrimWhitespace controls whether tokens are trimmed before
// comparison. Trimming is on by default.
func WithTrimWhitespace(trim bool) Option {
	return func(cfg *config) {
		cfg.TrimWhitespace = trim
	}
}

// WithDeduplicate controls whether duplicate tokens are collapsed in the
// displayed members. Result sets are always deduplicated; disabling this
// surfaces the pre-dedup token counts in the result details.
func WithDeduplicate(dedup bool) Option {
	return func(cfg *config) {
		cfg.Deduplicate = dedup
	}
}

// WithSortOutput returns all member lists in lexical order.
func WithSortOutput(sorted bool) Option {
	return func(cfg *config) {
		cfg.SortOutput = sorted
	}
}

// WithLabels sets display names for the two lists.
func WithLabels(labelA, labelB string) Option {
	return func(cfg *config) {
		cfg.LabelA = labelA
		cfg.LabelB = labelB
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithFastNormalizer enables the ASCII fast-path token normalizer.
func WithFastNormalizer() Option {
	return func(cfg *config) {
		cfg.FastNormalizer = true
	}
}

// WithNormalizer sets a custom token normalizer.
func WithNormalizer(n ports.Normalizer) Option {
	return func(cfg *config) {
		cfg.Normalizer = n
	}
}

// WithWarmUp pre-exercises the comparator and normalizer at construction
// time so first-request latency is stable.
func WithWarmUp(enabled bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enabled
	}
}

// New creates a new ListCompare instance.
func New(opts ...Option) (*ListCompare, error) {
	defaults := compare.DefaultConfig()

	cfg := &config{
		Delimiter:      DelimiterAuto,
		TrimWhitespace: defaults.TrimWhitespace,
		Deduplicate:    defaults.Deduplicate,
		LabelA:         defaults.LabelA,
		LabelB:         defaults.LabelB,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		base, err := createDefaultLogger()
		if err != nil {
			return nil, err
		}
		cfg.Logger = logger.FromExisting(base)
	}

	split, err := splitter.New(cfg.Delimiter, cfg.CustomDelimiter)
	if err != nil {
		return nil, err
	}

	if cfg.Normalizer == nil {
		if cfg.FastNormalizer {
			cfg.Normalizer = normalizer.NewFastNormalizer(!cfg.CaseSensitive)
		} else {
			cfg.Normalizer = normalizer.NewDefaultNormalizer(!cfg.CaseSensitive)
		}
	}

	coreConfig := compare.Config{
		TrimWhitespace: cfg.TrimWhitespace,
		Deduplicate:    cfg.Deduplicate,
		SortOutput:     cfg.SortOutput,
		LabelA:         cfg.LabelA,
		LabelB:         cfg.LabelB,
	}
	comparator, err := compare.NewComparator(coreConfig, cfg.Logger, split, cfg.Normalizer)
	if err != nil {
		return nil, err
	}

	if cfg.WarmUp {
		wm := warmup.NewManager(cfg.Logger, warmup.DefaultConfig())
		wm.RegisterComparator(comparator)
		wm.RegisterNormalizer(cfg.Normalizer)
		wm.WarmUp(context.Background())
	}

	return &ListCompare{
		comparator: comparator,
		logger:     cfg.Logger,
	}, nil
}

// Compare computes the comparison result for the two raw lists.
func (lc *ListCompare) Compare(ctx context.Context, rawA, rawB string) domain.Result {
	return lc.comparator.Compare(ctx, rawA, rawB)
}

// CompareWithDefaults compares two raw lists using the default
// configuration: auto delimiter, case-insensitive, trimmed, deduplicated.
func CompareWithDefaults(rawA, rawB string) (domain.Result, error) {
	lc, err := New()
	if err != nil {
		return domain.Result{}, err
	}
	return lc.Compare(context.Background(), rawA, rawB), nil
}
