package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/kilianp07/roomutil/core/model"
	"github.com/kilianp07/roomutil/pkg/export"
)

var (
	exportFormat string
	exportTables []string
	exportPeriod string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the aggregates as CSV, JSON or XLSX",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(export.CSV), "csv, json or xlsx")
	exportCmd.Flags().StringSliceVarP(&exportTables, "table", "t", nil, "tables to export (rooms, programs, slots, occupancy)")
	exportCmd.Flags().StringVarP(&exportPeriod, "period", "p", model.All, "period key")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file, stdout when empty")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(exportFormat)
	if err != nil {
		return err
	}
	tables := lo.Uniq(exportTables)
	if format == export.CSV && len(tables) == 0 {
		tables = []string{export.RoomsTable}
	}
	if format == export.CSV && len(tables) != 1 {
		return fmt.Errorf("csv export takes exactly one table")
	}

	svc, err := newService()
	if err != nil {
		return err
	}
	defer svc.Close()
	d, err := svc.Dashboard(context.Background(), exportPeriod, model.All)
	if err != nil {
		return err
	}
	selected, err := export.Select(export.Tables(d), tables...)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	switch format {
	case export.JSON:
		if len(tables) == 0 {
			return export.WriteJSON(w, d)
		}
		return export.WriteTablesJSON(w, selected)
	case export.XLSX:
		return export.WriteXLSX(w, selected)
	default:
		return export.WriteCSV(w, selected[0])
	}
}
