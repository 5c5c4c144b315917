package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kilianp07/roomutil/core/model"
)

// ErrEmptyTable is returned for a source without a header row.
var ErrEmptyTable = errors.New("table has no header row")

// Table is a decoded sheet: a header and its data rows.
type Table struct {
	header map[string]int
	rows   [][]string
}

// NewTable splits raw rows into header and data. Header names are matched
// after trimming surrounding whitespace and a leading byte order mark.
func NewTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyTable
	}
	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := header[name]; !dup {
			header[name] = i
		}
	}
	return &Table{header: header, rows: rows[1:]}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Column returns the index of a header, failing when it is missing.
func (t *Table) Column(name string) (int, error) {
	i, ok := t.header[name]
	if !ok {
		return 0, fmt.Errorf("missing column %q", name)
	}
	return i, nil
}

func (t *Table) cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Rooms decodes the room inventory. Room names are kept verbatim since
// they are exact join keys.
func (t *Table) Rooms(cols Columns) ([]model.Room, error) {
	nameIdx, err := t.Column(cols.Room)
	if err != nil {
		return nil, err
	}
	capIdx, err := t.Column(cols.Capacity)
	if err != nil {
		return nil, err
	}
	out := make([]model.Room, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, model.Room{
			Name:     t.cell(r, nameIdx),
			Capacity: model.ParseNumber(t.cell(r, capIdx)),
		})
	}
	return out, nil
}

// Sections decodes section records, normalizing period, day and session.
func (t *Table) Sections(cols Columns) ([]model.Section, error) {
	idx := make(map[string]int, 6)
	for _, name := range []string{cols.Room, cols.Program, cols.Period, cols.Day, cols.Session, cols.Participants} {
		i, err := t.Column(name)
		if err != nil {
			return nil, err
		}
		idx[name] = i
	}
	out := make([]model.Section, 0, len(t.rows))
	for _, r := range t.rows {
		out = append(out, model.Section{
			Room:         t.cell(r, idx[cols.Room]),
			Program:      t.cell(r, idx[cols.Program]),
			Period:       model.NormalizeKey(t.cell(r, idx[cols.Period])),
			Day:          model.ParseDay(t.cell(r, idx[cols.Day])),
			Session:      model.ParseSession(t.cell(r, idx[cols.Session])),
			Participants: model.ParseNumber(t.cell(r, idx[cols.Participants])),
		})
	}
	return out, nil
}
