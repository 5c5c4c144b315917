package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kilianp07/roomutil/core/dataset"
	"github.com/kilianp07/roomutil/core/report"
)

func sample(t *testing.T) *report.Dashboard {
	t.Helper()
	rooms := dataset.StaticSource{{"ruang", "kapasitas"}, {"101", "40"}, {"A102", "20"}}
	sections := dataset.StaticSource{
		{"ruang", "prodi", "th_ajaran", "hari", "sesi", "peserta"},
		{"101", "informatika", "2023-1", "SENIN", "1", "36"},
		{"A102", "sipil", "2023-1", "SELASA", "2", "5"},
	}
	ds, err := dataset.NewLoader(rooms, sections, dataset.Columns{}, nil, nil).Load(context.Background(), "ALL")
	require.NoError(t, err)
	return report.BuildDashboard(ds, "ALL")
}

func TestTables(t *testing.T) {
	tables := Tables(sample(t))
	require.Len(t, tables, 4)

	rooms := tables[0]
	assert.Equal(t, RoomsTable, rooms.Name)
	assert.Equal(t, [][]string{{"101", "90", "1"}, {"A102", "25", "1"}}, rooms.Rows)

	assert.Len(t, tables[2].Rows, 20)
	assert.Len(t, tables[3].Rows, 20)
	assert.Equal(t, []string{"MONDAY", "1", "1", "50"}, tables[3].Rows[0])
}

func TestSelect(t *testing.T) {
	tables := Tables(sample(t))

	all, err := Select(tables)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	one, err := Select(tables, ProgramsTable)
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, ProgramsTable, one[0].Name)

	_, err = Select(tables, "vehicles")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Tables(sample(t))[1]))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"program", "efficiency_percent", "sections"}, rows[0])
	assert.Equal(t, []string{"INFORMATIKA", "90", "1"}, rows[1])
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, sample(t)))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "ALL", out["period"])
	assert.Contains(t, out, "occupancy")
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, Tables(sample(t))))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{RoomsTable, ProgramsTable, SlotsTable, OccupancyTable}, f.GetSheetList())

	rows, err := f.GetRows(RoomsTable)
	require.NoError(t, err)
	assert.Equal(t, []string{"room", "efficiency_percent", "sections"}, rows[0])
	assert.Equal(t, []string{"101", "90", "1"}, rows[1])

	typ, err := f.GetCellType(RoomsTable, "A2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeNumber, typ)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("xlsx")
	require.NoError(t, err)
	assert.Equal(t, XLSX, f)
	_, err = ParseFormat("pdf")
	assert.Error(t, err)
}

func TestWriteTablesJSON(t *testing.T) {
	selected, err := Select(Tables(sample(t)), RoomsTable)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, WriteTablesJSON(&buf, selected))

	var out map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	rows := out[RoomsTable]
	require.Len(t, rows, 2)
	assert.Equal(t, "101", rows[0]["room"])
	assert.Equal(t, 90.0, rows[0]["efficiency_percent"])
	assert.Equal(t, 1.0, rows[0]["sections"])
}
