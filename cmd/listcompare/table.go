package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/baditaflorin/go_list_compare/internal/core/domain"
)

// renderSummaryTable renders the per-list counts and similarity metrics.
func renderSummaryTable(result domain.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{"", result.LabelA, result.LabelB})
	tw.AppendRow(table.Row{"Tokens", result.TotalA, result.TotalB})
	tw.AppendRow(table.Row{"Distinct", len(result.SetA), len(result.SetB)})
	tw.AppendRow(table.Row{"Only here", len(result.AOnly), len(result.BOnly)})
	tw.AppendSeparator()
	tw.AppendRow(table.Row{"Common", len(result.Intersection), ""})
	tw.AppendRow(table.Row{"Union", len(result.Union), ""})
	tw.AppendRow(table.Row{"Jaccard", fmt.Sprintf("%.3f", result.Jaccard), ""})
	tw.AppendRow(table.Row{"Overlap", fmt.Sprintf("%.3f", result.Overlap), ""})

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	return tw.Render()
}

// renderMembersTable renders the three comparison regions side by side.
func renderMembersTable(result domain.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	tw.AppendHeader(table.Row{
		result.LabelA + " only",
		"Intersection",
		result.LabelB + " only",
	})

	rows := len(result.AOnly)
	if len(result.Intersection) > rows {
		rows = len(result.Intersection)
	}
	if len(result.BOnly) > rows {
		rows = len(result.BOnly)
	}
	for i := 0; i < rows; i++ {
		tw.AppendRow(table.Row{
			cell(result.AOnly, i),
			cell(result.Intersection, i),
			cell(result.BOnly, i),
		})
	}

	return tw.Render()
}

func cell(members []string, i int) string {
	if i < len(members) {
		return members[i]
	}
	return ""
}
