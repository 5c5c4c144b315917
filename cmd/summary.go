package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kilianp07/roomutil/core/chart"
	"github.com/kilianp07/roomutil/core/model"
	"github.com/kilianp07/roomutil/core/report"
)

var (
	summaryPeriod string
	summaryJSON   bool
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the efficiency category distribution",
	RunE:  runSummary,
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryPeriod, "period", "p", model.All, "period key")
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "print JSON")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()
	s, err := svc.SummaryFor(context.Background(), summaryPeriod)
	if err != nil {
		return err
	}
	if summaryJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	return printSummary(cmd.OutOrStdout(), s)
}

func printSummary(w io.Writer, s report.Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "period\t%s\t\n", s.Period)
	fmt.Fprintf(tw, "category\trooms\tshare\t\n")
	for _, b := range s.Buckets() {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", b.Category, b.Count, chart.PercentText(b.Percent))
	}
	fmt.Fprintf(tw, "rated\t%d\t\t\n", s.Total)
	fmt.Fprintf(tw, "unrated\t%d\t\t\n", s.Unrated)
	fmt.Fprintf(tw, "inventory\t%d\t\t\n", s.Rooms)
	return tw.Flush()
}
