package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/roomutil/core/efficiency"
	"github.com/kilianp07/roomutil/core/model"
)

func records() []model.Record {
	var recs []model.Record
	days := []model.Day{model.Monday, model.Tuesday, model.Friday}
	for i := 0; i < 12; i++ {
		room := model.Room{Name: fmt.Sprintf("R%02d", i), Capacity: model.Valid(40)}
		s := model.Section{
			Room:         room.Name,
			Program:      "prog",
			Day:          days[i%len(days)],
			Session:      model.Sessions[i%len(model.Sessions)],
			Participants: model.Valid(float64(i + 1)),
		}
		recs = append(recs, model.NewRecord(s, &room))
	}
	return recs
}

func TestRoomFigure(t *testing.T) {
	f := RoomFigure(efficiency.ByRoom(records()))
	require.Len(t, f.Traces, 3)
	assert.Equal(t, 1, f.VisibleIndex())
	assert.Len(t, f.Traces[0].Labels, 12)
	assert.Len(t, f.Traces[1].Labels, 10)
	assert.Equal(t, "R11", f.Traces[1].Labels[0])
	assert.Equal(t, "R09", f.Traces[2].Labels[0])
	require.Len(t, f.Menus, 1)
	for i, b := range f.Menus[0].Buttons {
		assert.Equal(t, i, b.Target())
	}
	assert.Equal(t, 1, f.Menus[0].Active)
	assert.Equal(t, "30%", f.Traces[1].Text[0])
}

func TestProgramFigure(t *testing.T) {
	f := ProgramFigure(efficiency.ByProgram(records()))
	require.Len(t, f.Traces, 1)
	assert.True(t, f.Traces[0].Visible)
	assert.Equal(t, []string{"PROG"}, f.Traces[0].Labels)
	assert.Empty(t, f.Menus)
}

func TestSlotFigure_VisibleDay(t *testing.T) {
	series := efficiency.BySlot(records())
	f := SlotFigure(series, "selasa")
	require.Len(t, f.Traces, 6)
	assert.Equal(t, 2, f.VisibleIndex())
	assert.Equal(t, "TUESDAY", f.Traces[2].Name)
	visible := 0
	for _, tr := range f.Traces {
		if tr.Visible {
			visible++
		}
	}
	assert.Equal(t, 1, visible)
	assert.Equal(t, 2, f.Menus[0].Active)
	assert.Len(t, f.Menus[0].Buttons, 6)

	f = SlotFigure(series, "nonsense")
	assert.Equal(t, 0, f.VisibleIndex())
}

func TestOccupancyFigure_Menus(t *testing.T) {
	occ := efficiency.ByOccupancy(records(), 12)
	f := OccupancyFigure(occ, model.All)
	require.Len(t, f.Traces, 30)
	assert.Equal(t, 0, f.VisibleIndex())
	require.Len(t, f.Menus, 2)

	dayMenu, sessionMenu := f.Menus[0], f.Menus[1]
	require.Len(t, dayMenu.Buttons, 6)
	require.Len(t, sessionMenu.Buttons, 5)
	for _, b := range dayMenu.Buttons {
		tr := f.Traces[b.Target()]
		assert.Equal(t, b.Label+" / ALL", tr.Name)
	}
	for i, b := range sessionMenu.Buttons {
		tr := f.Traces[b.Target()]
		assert.Equal(t, "ALL / "+efficiency.SessionFilters()[i], tr.Name)
	}
	assert.Equal(t, "Session 2", sessionMenu.Buttons[2].Label)

	// only single-axis combinations are reachable
	reachable := map[int]bool{}
	for _, m := range f.Menus {
		for _, b := range m.Buttons {
			reachable[b.Target()] = true
		}
	}
	_, pairIdx, ok := occ.Find("MONDAY", "2")
	require.True(t, ok)
	assert.False(t, reachable[pairIdx])
	assert.Len(t, reachable, 10)
}

func TestOccupancyFigure_DayArgument(t *testing.T) {
	occ := efficiency.ByOccupancy(records(), 12)
	f := OccupancyFigure(occ, "FRIDAY")
	_, idx, _ := occ.Find("FRIDAY", model.All)
	assert.Equal(t, idx, f.VisibleIndex())
	assert.Equal(t, 5, f.Menus[0].Active)
}

func TestPercentText(t *testing.T) {
	assert.Equal(t, "12.5%", PercentText(12.5))
	assert.Equal(t, "0%", PercentText(0))
	assert.Equal(t, "33.33%", PercentText(33.33))
}
