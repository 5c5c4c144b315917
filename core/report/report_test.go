package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/roomutil/core/dataset"
	"github.com/kilianp07/roomutil/core/model"
)

func load(t *testing.T, period string) *dataset.Dataset {
	t.Helper()
	rooms := dataset.StaticSource{
		{"ruang", "kapasitas"},
		{"A101", "40"},
		{"A102", "20"},
		{"B201", "0"},
	}
	sections := dataset.StaticSource{
		{"ruang", "prodi", "th_ajaran", "hari", "sesi", "peserta"},
		{"A101", "informatika", "2023-1", "SENIN", "1", "36"},
		{"A102", "informatika", "2023-1", "SENIN", "2", "10"},
		{"A102", "sipil", "2023-2", "RABU", "1", "15"},
		{"B201", "sipil", "2023-2", "RABU", "1", "15"},
	}
	ds, err := dataset.NewLoader(rooms, sections, dataset.Columns{}, nil, nil).Load(context.Background(), period)
	require.NoError(t, err)
	return ds
}

func TestBuildDashboard(t *testing.T) {
	d := BuildDashboard(load(t, "2023-1"), "senin")
	assert.Equal(t, "2023-1", d.Period)
	assert.Equal(t, "MONDAY", d.Day)
	assert.Equal(t, []string{"2023-1", "2023-2"}, d.Periods)
	require.Len(t, d.Rooms.All, 2)
	assert.Equal(t, "A101", d.Rooms.All[0].Room)
	assert.Equal(t, 90.0, d.Rooms.All[0].Percent)
	assert.Equal(t, 3, d.Occupancy.TotalRooms)
	assert.Equal(t, 1, d.Figures.Slots.VisibleIndex())
	assert.Len(t, d.Figures.All(), 4)
}

func TestBuildSummary(t *testing.T) {
	s := BuildSummary(load(t, model.All))
	assert.Equal(t, model.All, s.Period)
	assert.Equal(t, 3, s.Rooms)
	// A101 0.9, A102 mean(0.5, 0.75) = 0.625; B201 has zero capacity
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 1, s.Unrated)
	assert.Equal(t, 1, s.Efficient.Count)
	assert.Equal(t, 1, s.Adequate.Count)
	assert.Equal(t, 0, s.Inefficient.Count)
}
