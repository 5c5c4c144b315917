package efficiency

import (
	"sort"

	"github.com/kilianp07/roomutil/core/model"
)

// ProgramEfficiency is the mean efficiency of one study program.
type ProgramEfficiency struct {
	Program    string  `json:"program"`
	Efficiency float64 `json:"efficiency"`
	Percent    float64 `json:"percent"`
	Sections   int     `json:"sections"`
}

// ByProgram groups records by upper-cased program name and sorts the
// programs by descending efficiency. Programs without any defined
// efficiency are left out.
func ByProgram(recs []model.Record) []ProgramEfficiency {
	g := newGroups[string]()
	for _, r := range recs {
		if r.Program == "" {
			continue
		}
		g.add(model.Upper(r.Program), r.Efficiency)
	}
	out := make([]ProgramEfficiency, 0, len(g.order))
	for _, p := range g.order {
		acc := g.get(p)
		m, ok := acc.mean()
		if !ok {
			continue
		}
		out = append(out, ProgramEfficiency{Program: p, Efficiency: m, Percent: Percent(m), Sections: len(acc.values)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Percent > out[j].Percent })
	return out
}
