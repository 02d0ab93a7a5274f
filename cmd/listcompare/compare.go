package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/cobra"

	listcompare "github.com/baditaflorin/go_list_compare"
	"github.com/baditaflorin/go_list_compare/internal/adapters/splitter"
	"github.com/baditaflorin/go_list_compare/internal/core/domain"
	"github.com/baditaflorin/go_list_compare/internal/export"
)

// options holds the command-line flag values.
type options struct {
	fileA         string
	fileB         string
	textA         string
	textB         string
	delimiter     string
	customDelim   string
	caseSensitive bool
	trim          bool
	dedupe        bool
	sort          bool
	labelA        string
	labelB        string
	format        string
	region        string
	timeout       time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "listcompare",
		Short: "Compare two lists with set operations and similarity metrics",
		Long: `Compare two lists with set operations and similarity metrics.

Inputs are split on a configurable delimiter, normalized, and compared as
sets. The output covers the intersection, union, one-sided differences,
the Jaccard similarity, and the overlap coefficient.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.fileA, "file-a", "", "Path to the first list file")
	flags.StringVar(&opts.fileB, "file-b", "", "Path to the second list file")
	flags.StringVar(&opts.textA, "a", "", "First list as inline text")
	flags.StringVar(&opts.textB, "b", "", "Second list as inline text")
	flags.StringVar(&opts.delimiter, "delimiter", "auto", "Delimiter mode: auto, newline, comma, semicolon, whitespace, custom")
	flags.StringVar(&opts.customDelim, "custom-delimiter", "", "Literal delimiter for custom mode")
	flags.BoolVar(&opts.caseSensitive, "case-sensitive", false, "Compare case-sensitively")
	flags.BoolVar(&opts.trim, "trim", true, "Trim whitespace from tokens")
	flags.BoolVar(&opts.dedupe, "dedupe", true, "Collapse duplicate tokens in output")
	flags.BoolVar(&opts.sort, "sort", false, "Sort member lists alphabetically")
	flags.StringVar(&opts.labelA, "label-a", "List A", "Display name for the first list")
	flags.StringVar(&opts.labelB, "label-b", "List B", "Display name for the second list")
	flags.StringVar(&opts.format, "output", "table", "Output format: table, json, csv, txt")
	flags.StringVar(&opts.region, "region", "intersection", "Region for txt output: a_only, intersection, b_only, union")
	flags.DurationVar(&opts.timeout, "timeout", 30*time.Second, "Comparison timeout")

	return cmd
}

// loadInput returns the inline text, or the file contents when a path is set.
func loadInput(text, path string) (string, error) {
	if path == "" {
		return text, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	return string(data), nil
}

func runCompare(opts *options) error {
	rawA, err := loadInput(opts.textA, opts.fileA)
	if err != nil {
		return err
	}
	rawB, err := loadInput(opts.textB, opts.fileB)
	if err != nil {
		return err
	}

	mode, err := splitter.ParseMode(opts.delimiter)
	if err != nil {
		return err
	}

	lcOpts := []listcompare.Option{
		listcompare.WithCaseSensitive(opts.caseSensitive),
		listcompare.WithTrimWhitespace(opts.trim),
		listcompare.WithDeduplicate(opts.dedupe),
		listcompare.WithSortOutput(opts.sort),
		listcompare.WithLabels(opts.labelA, opts.labelB),
	}
	if mode == splitter.ModeCustom {
		lcOpts = append(lcOpts, listcompare.WithCustomDelimiter(opts.customDelim))
	} else {
		lcOpts = append(lcOpts, listcompare.WithDelimiter(mode))
	}

	lc, err := listcompare.New(lcOpts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	result := lc.Compare(ctx, rawA, rawB)
	return writeOutput(opts, result)
}

func writeOutput(opts *options, result domain.Result) error {
	switch opts.format {
	case "table":
		fmt.Println(renderSummaryTable(result))
		fmt.Println(renderMembersTable(result))
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "csv":
		return export.WriteCSV(os.Stdout, result)
	case "txt":
		region := domain.Region(opts.region)
		members := result.Members(region)
		if members == nil {
			return errors.Errorf("unknown region %q", opts.region)
		}
		if err := export.WriteTXT(os.Stdout, members); err != nil {
			return err
		}
		fmt.Println()
		return nil
	default:
		return errors.Errorf("unknown output format %q", opts.format)
	}
}
