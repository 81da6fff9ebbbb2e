package console

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"libshelf/internal/domain"
)

// RenderGroups renders the grouped view as a table: one row per record,
// numbered 1..N within its category. The numbers are how the operator
// addresses single entries, so this rendering must stay in step with
// the grouping order used to interpret them.
func RenderGroups(groups []domain.Group) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Category", "#", "Name", "Size"})

	for _, group := range groups {
		for i, record := range group.Records {
			label := ""
			if i == 0 {
				label = fmt.Sprintf("%s (%d)", group.Category, len(group.Records))
			}
			tw.AppendRow(table.Row{label, i + 1, record.Name, formatSize(record.Size)})
		}
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// formatSize renders a byte count in a compact human form
func formatSize(size int64) string {
	const (
		kib = 1024
		mib = 1024 * kib
		gib = 1024 * mib
	)
	switch {
	case size >= gib:
		return fmt.Sprintf("%.1f GiB", float64(size)/gib)
	case size >= mib:
		return fmt.Sprintf("%.1f MiB", float64(size)/mib)
	case size >= kib:
		return fmt.Sprintf("%.1f KiB", float64(size)/kib)
	default:
		return strconv.FormatInt(size, 10) + " B"
	}
}
