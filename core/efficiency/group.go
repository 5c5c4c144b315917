package efficiency

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/kilianp07/roomutil/core/model"
)

// meanAcc collects the defined values of one group.
type meanAcc struct {
	values []float64
}

func (a *meanAcc) add(n model.Number) {
	if n.Valid {
		a.values = append(a.values, n.Value)
	}
}

// mean is undefined when no defined value was added.
func (a *meanAcc) mean() (float64, bool) {
	if a == nil || len(a.values) == 0 {
		return 0, false
	}
	return stat.Mean(a.values, nil), true
}

// groups keeps one accumulator per key in first-seen order.
type groups[K comparable] struct {
	order []K
	acc   map[K]*meanAcc
}

func newGroups[K comparable]() *groups[K] {
	return &groups[K]{acc: map[K]*meanAcc{}}
}

func (g *groups[K]) add(key K, n model.Number) {
	a, ok := g.acc[key]
	if !ok {
		a = &meanAcc{}
		g.acc[key] = a
		g.order = append(g.order, key)
	}
	a.add(n)
}

func (g *groups[K]) get(key K) *meanAcc { return g.acc[key] }

// Percent converts a ratio to a percentage rounded to two decimals.
func Percent(ratio float64) float64 {
	return math.Round(ratio*100*100) / 100
}

// Share returns part/total as a percentage rounded to two decimals, or 0
// when total is not positive.
func Share(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return Percent(float64(part) / float64(total))
}
