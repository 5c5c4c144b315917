package render

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/roomutil/core/chart"
	"github.com/kilianp07/roomutil/core/dataset"
	"github.com/kilianp07/roomutil/core/efficiency"
	"github.com/kilianp07/roomutil/core/report"
)

func sampleFigure() chart.Figure {
	return chart.RoomFigure(efficiency.RoomRanking{
		All:    []efficiency.RoomEfficiency{{Room: "A101", Percent: 90}, {Room: "A102", Percent: 62.5}},
		Top:    []efficiency.RoomEfficiency{{Room: "A101", Percent: 90}, {Room: "A102", Percent: 62.5}},
		Bottom: []efficiency.RoomEfficiency{{Room: "A101", Percent: 90}, {Room: "A102", Percent: 62.5}},
	})
}

type optionJSON struct {
	Series []struct {
		Name      string `json:"name"`
		ItemStyle struct {
			Color string `json:"color"`
		} `json:"itemStyle"`
		Data []struct {
			Value float64 `json:"value"`
			Label struct {
				Formatter string `json:"formatter"`
			} `json:"label"`
		} `json:"data"`
	} `json:"series"`
	XAxis []struct {
		Data []string `json:"data"`
	} `json:"xAxis"`
}

func TestTraceOption(t *testing.T) {
	f := sampleFigure()
	b, err := json.Marshal(TraceOption(f, 1))
	require.NoError(t, err)

	var opt optionJSON
	require.NoError(t, json.Unmarshal(b, &opt))
	require.Len(t, opt.Series, 1)
	assert.Equal(t, "Top 10", opt.Series[0].Name)
	assert.Equal(t, "#16a34a", opt.Series[0].ItemStyle.Color)
	require.Len(t, opt.Series[0].Data, 2)
	assert.Equal(t, 62.5, opt.Series[0].Data[1].Value)
	assert.Equal(t, "62.5%", opt.Series[0].Data[1].Label.Formatter)
	require.NotEmpty(t, opt.XAxis)
	assert.Equal(t, []string{"A101", "A102"}, opt.XAxis[0].Data)
}

func TestFragment(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	html, err := r.Fragment(sampleFigure())
	require.NoError(t, err)
	s := string(html)
	assert.Contains(t, s, `id="chart-rooms"`)
	assert.Contains(t, s, `id="chart-rooms-canvas"`)
	assert.Contains(t, s, `<option value="1" selected>Top 10</option>`)
	assert.Contains(t, s, `<option value="2">Bottom 10</option>`)
	assert.Contains(t, s, "c.setOption(options[")
	assert.NotContains(t, s, "<html")
	assert.Equal(t, 3, strings.Count(s, `"series"`))
}

func load(t *testing.T) *dataset.Dataset {
	t.Helper()
	rooms := dataset.StaticSource{{"ruang", "kapasitas"}, {"A101", "40"}, {"A102", "20"}}
	sections := dataset.StaticSource{
		{"ruang", "prodi", "th_ajaran", "hari", "sesi", "peserta"},
		{"A101", "informatika", "2023-1", "SENIN", "1", "36"},
		{"A102", "sipil", "2023-2", "RABU", "2", "10"},
	}
	ds, err := dataset.NewLoader(rooms, sections, dataset.Columns{}, nil, nil).Load(context.Background(), "ALL")
	require.NoError(t, err)
	return ds
}

func TestDashboardPage(t *testing.T) {
	r, err := New(WithAssetsHost("/assets/"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Dashboard(&buf, report.BuildDashboard(load(t), "RABU")))
	s := buf.String()
	assert.Contains(t, s, `<script src="/assets/echarts.min.js"></script>`)
	assert.Contains(t, s, `<option value="2023-1">2023-1</option>`)
	assert.Contains(t, s, `<option value="WEDNESDAY" selected>WEDNESDAY</option>`)
	for _, id := range []string{chart.RoomFigureID, chart.ProgramFigureID, chart.SlotFigureID, chart.OccupancyFigureID} {
		assert.Contains(t, s, `id="`+id+`"`)
	}
}

func TestSummaryPage(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Summary(&buf, report.BuildSummary(load(t))))
	s := buf.String()
	assert.Contains(t, s, "<td>Efficient</td><td>1</td><td>50%</td>")
	assert.Contains(t, s, "<td>Inefficient</td><td>1</td><td>50%</td>")
	assert.Contains(t, s, "<td>Rated rooms</td><td>2</td>")
}
