// Package export writes dashboard aggregates as JSON, CSV or an XLSX
// workbook.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/samber/lo"

	"github.com/kilianp07/roomutil/core/efficiency"
	"github.com/kilianp07/roomutil/core/model"
	"github.com/kilianp07/roomutil/core/report"
)

// Format is an output encoding.
type Format string

const (
	JSON Format = "json"
	CSV  Format = "csv"
	XLSX Format = "xlsx"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case JSON, CSV, XLSX:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q", s)
	}
}

// Table is one aggregate laid out as rows of cells.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Table names.
const (
	RoomsTable     = "rooms"
	ProgramsTable  = "programs"
	SlotsTable     = "slots"
	OccupancyTable = "occupancy"
)

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// Tables lays out the aggregates of d. The slot and occupancy tables hold
// the unfiltered (ALL) series.
func Tables(d *report.Dashboard) []Table {
	rooms := Table{Name: RoomsTable, Header: []string{"room", "efficiency_percent", "sections"}}
	for _, r := range d.Rooms.All {
		rooms.Rows = append(rooms.Rows, []string{r.Room, num(r.Percent), strconv.Itoa(r.Sections)})
	}
	programs := Table{Name: ProgramsTable, Header: []string{"program", "efficiency_percent", "sections"}}
	for _, p := range d.Programs {
		programs.Rows = append(programs.Rows, []string{p.Program, num(p.Percent), strconv.Itoa(p.Sections)})
	}
	slots := Table{Name: SlotsTable, Header: []string{"day", "session", "efficiency_percent", "sections"}}
	if s, _, ok := efficiency.FindSlotSeries(d.Slots, model.All); ok {
		for _, c := range s.Slots {
			slots.Rows = append(slots.Rows, []string{string(c.Day), string(c.Session), num(c.Percent), strconv.Itoa(c.Sections)})
		}
	}
	occ := Table{Name: OccupancyTable, Header: []string{"day", "session", "rooms_used", "occupancy_percent"}}
	if s, _, ok := d.Occupancy.Find(model.All, model.All); ok {
		for _, c := range s.Slots {
			occ.Rows = append(occ.Rows, []string{string(c.Day), string(c.Session), strconv.Itoa(c.Rooms), num(c.Percent)})
		}
	}
	return []Table{rooms, programs, slots, occ}
}

// Select returns the named tables, or every table when names is empty.
func Select(tables []Table, names ...string) ([]Table, error) {
	if len(names) == 0 {
		return tables, nil
	}
	out := make([]Table, 0, len(names))
	for _, n := range names {
		t, ok := lo.Find(tables, func(t Table) bool { return t.Name == n })
		if !ok {
			return nil, fmt.Errorf("unknown table %q", n)
		}
		out = append(out, t)
	}
	return out, nil
}

// WriteJSON writes the dashboard aggregates to w in JSON format.
func WriteJSON(w io.Writer, d *report.Dashboard) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(d)
}

// WriteTablesJSON writes the tables as one JSON object keyed by table
// name, each row an object keyed by column header.
func WriteTablesJSON(w io.Writer, tables []Table) error {
	out := make(map[string][]map[string]any, len(tables))
	for _, t := range tables {
		rows := make([]map[string]any, 0, len(t.Rows))
		for _, row := range t.Rows {
			obj := make(map[string]any, len(t.Header))
			for j, h := range t.Header {
				if j >= len(row) {
					break
				}
				obj[h] = row[j]
				if numericColumns[h] {
					obj[h] = cellValue(row[j])
				}
			}
			rows = append(rows, obj)
		}
		out[t.Name] = rows
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteCSV writes one table to w with its header row.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return err
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
