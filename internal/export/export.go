// Package export writes comparison results as plain text or CSV, the two
// formats offered for download.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/go-faster/errors"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
)

// WriteTXT writes the members as a newline-separated plain text list.
func WriteTXT(w io.Writer, members []string) error {
	if _, err := io.WriteString(w, strings.Join(members, "\n")); err != nil {
		return errors.Wrap(err, "write txt")
	}
	return nil
}

// WriteCSV writes every union member as a (member, category) row, where
// category is one of a_only, intersection, or b_only.
func WriteCSV(w io.Writer, result domain.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"member", "category"}); err != nil {
		return errors.Wrap(err, "write csv header")
	}

	rows := []struct {
		members  []string
		category domain.Region
	}{
		{result.AOnly, domain.RegionAOnly},
		{result.Intersection, domain.RegionIntersection},
		{result.BOnly, domain.RegionBOnly},
	}
	for _, group := range rows {
		for _, member := range group.members {
			if err := cw.Write([]string{member, string(group.category)}); err != nil {
				return errors.Wrap(err, "write csv row")
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.Wrap(err, "flush csv")
	}
	return nil
}

// Filename builds a download file name for a region, e.g. "a_only.csv".
func Filename(region domain.Region, extension string) string {
	return fmt.Sprintf("%s.%s", region, extension)
}
