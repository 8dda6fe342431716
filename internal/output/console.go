package output

import (
	"fmt"
	"io"
	"text/tabwriter"

	"netexposure/internal/model"
)

// WriteTable renders the exposure list as an aligned text table, one row per
// exposure, with a single placeholder row when nothing was found.
func WriteTable(w io.Writer, report *model.ScanReport) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "HOST\tPORT\tBANNER\tRISK NOTE")
	if len(report.Exposures) == 0 {
		fmt.Fprintln(tw, "-\t-\t-\tNo exposures detected")
		return tw.Flush()
	}
	for _, row := range buildRows(report) {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", row.Host, row.Port, row.Banner, row.Risk)
	}
	return tw.Flush()
}
