package stats

import (
	"sort"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// ValueCounts counts distinct values, most frequent first.
// Equal counts keep the order in which values first appear.
func ValueCounts(values []string) []model.ValueCount {
	index := make(map[string]int)
	counts := make([]model.ValueCount, 0)
	for _, v := range values {
		i, ok := index[v]
		if !ok {
			index[v] = len(counts)
			counts = append(counts, model.ValueCount{Value: v})
			i = len(counts) - 1
		}
		counts[i].Count++
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Mode returns the most frequent value; ties go to the first occurring one.
func Mode(values []string) model.Optional[model.ValueCount] {
	counts := ValueCounts(values)
	if len(counts) == 0 {
		return model.Unavailable[model.ValueCount]()
	}
	return model.Present(counts[0])
}
