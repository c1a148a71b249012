package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Tabwriter layout: modest padding, spaces only, no column truncation.
const (
	reportMinWidth = 0
	reportTabWidth = 0
	reportPadding  = 2
	reportPadChar  = ' '
)

// WriteReport renders rows as an aligned text table, one line per
// instance × algorithm combination; failed rows show the error instead
// of a measurement.
func WriteReport(w io.Writer, rows []Row) error {
	tw := tabwriter.NewWriter(w, reportMinWidth, reportTabWidth, reportPadding, reportPadChar, 0)

	fmt.Fprintln(tw, "INSTANCE\tALGORITHM\tVERTICES\tEDGES\tCOLORS\tTIME")
	for _, row := range rows {
		if row.Err != nil {
			fmt.Fprintf(tw, "%s\t%s\t-\t-\t-\t%v\n", row.Instance, row.Algorithm, row.Err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			row.Instance, row.Algorithm, row.Vertices, row.Edges, row.Colors, row.Elapsed)
	}

	return tw.Flush()
}
