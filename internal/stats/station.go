package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/model"
)

// StationReport holds the most popular stations and trip.
type StationReport struct {
	Start model.Optional[string]
	End   model.Optional[string]
	Trip  model.Optional[string]
}

// ComputeStations finds the most used start station, end station and pair.
func ComputeStations(ds *dataset.Dataset) StationReport {
	return StationReport{
		Start: modeValue(ds.Strings(model.ColStartStation)),
		End:   modeValue(ds.Strings(model.ColEndStation)),
		Trip:  modeValue(ds.Strings(model.ColTrip)),
	}
}

// Render writes the report lines.
func (r StationReport) Render(w io.Writer) error {
	return writeLines(w, []string{
		fmt.Sprintf("The most commonly used start station is: %s", orNA(r.Start)),
		fmt.Sprintf("The most commonly used end station is: %s", orNA(r.End)),
		fmt.Sprintf("The most frequent combination of start station and end station trip is: %s", orNA(r.Trip)),
	})
}
