package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/model"
)

// DurationReport holds total and mean trip duration in seconds.
type DurationReport struct {
	Total float64
	Mean  model.Optional[float64]
}

// ComputeDurations sums and averages the trip durations.
func ComputeDurations(ds *dataset.Dataset) DurationReport {
	values := ds.Floats(model.ColDuration)
	report := DurationReport{
		Total: Sum(values),
		Mean:  model.Unavailable[float64](),
	}
	if mean, ok := Mean(values); ok {
		report.Mean = model.Present(mean)
	}
	return report
}

// Render writes the report lines.
func (r DurationReport) Render(w io.Writer) error {
	total := time.Duration(r.Total * float64(time.Second)).Round(time.Second)
	lines := []string{
		fmt.Sprintf("The total travel time is: %s seconds (%s)", humanize.Commaf(r.Total), total),
	}
	if mean, ok := r.Mean.Get(); ok {
		lines = append(lines, fmt.Sprintf("The mean travel time is: %.2f seconds", mean))
	} else {
		lines = append(lines, fmt.Sprintf("The mean travel time is: %s", notAvailable))
	}
	return writeLines(w, lines)
}
