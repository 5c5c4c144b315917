package efficiency

import "github.com/kilianp07/roomutil/core/model"

// Category classifies a room by its mean efficiency.
type Category string

const (
	Inefficient Category = "Inefficient"
	Adequate    Category = "Adequate"
	Efficient   Category = "Efficient"
)

// Category thresholds; both bounds are inclusive on the lower class.
const (
	InefficientMax = 0.60
	AdequateMax    = 0.80
)

// Categorize places a mean efficiency ratio in [0,0.60], (0.60,0.80] or
// above 0.80. There is no upper bound.
func Categorize(eff float64) Category {
	switch {
	case eff <= InefficientMax:
		return Inefficient
	case eff <= AdequateMax:
		return Adequate
	default:
		return Efficient
	}
}

// Bucket is the size of one category.
type Bucket struct {
	Category Category `json:"category"`
	Count    int      `json:"count"`
	Percent  float64  `json:"percent"`
}

// Summary is the category distribution of rated rooms.
type Summary struct {
	Efficient   Bucket `json:"efficient"`
	Adequate    Bucket `json:"adequate"`
	Inefficient Bucket `json:"inefficient"`
	// Total counts rated rooms and equals the sum of bucket counts.
	Total int `json:"total"`
	// Unrated counts rooms with records but no defined efficiency.
	Unrated int `json:"unrated"`
}

// Buckets returns the buckets from best to worst.
func (s Summary) Buckets() []Bucket {
	return []Bucket{s.Efficient, s.Adequate, s.Inefficient}
}

// Summarize computes the category distribution over per-room means.
func Summarize(recs []model.Record) Summary {
	rooms, unrated := roomMeans(recs)
	counts := map[Category]int{}
	for _, r := range rooms {
		counts[Categorize(r.Efficiency)]++
	}
	total := len(rooms)
	bucket := func(c Category) Bucket {
		return Bucket{Category: c, Count: counts[c], Percent: Share(counts[c], total)}
	}
	return Summary{
		Efficient:   bucket(Efficient),
		Adequate:    bucket(Adequate),
		Inefficient: bucket(Inefficient),
		Total:       total,
		Unrated:     len(unrated),
	}
}
