package stats

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/model"
)

// TimeReport holds the most frequent times of travel.
type TimeReport struct {
	Month  model.Optional[string]
	Day    model.Optional[string]
	Hour   model.Optional[string]
	Hourly []float64
}

// ComputeTime finds the most common month, weekday and start hour.
func ComputeTime(ds *dataset.Dataset) TimeReport {
	report := TimeReport{
		Month:  model.Unavailable[string](),
		Day:    modeValue(ds.Strings(model.ColDayOfWeek)),
		Hour:   modeValue(ds.Strings(model.ColHour)),
		Hourly: make([]float64, 24),
	}
	if month, ok := modeValue(ds.Strings(model.ColMonth)).Get(); ok {
		if n, err := strconv.Atoi(month); err == nil && n >= 1 && n <= 12 {
			report.Month = model.Present(time.Month(n).String())
		}
	}
	for _, raw := range ds.Strings(model.ColHour) {
		if h, err := strconv.Atoi(raw); err == nil && h >= 0 && h < 24 {
			report.Hourly[h]++
		}
	}
	return report
}

// Render writes the report lines.
func (r TimeReport) Render(w io.Writer) error {
	lines := []string{
		fmt.Sprintf("The most common month is: %s", orNA(r.Month)),
		fmt.Sprintf("The most common day of the week is: %s", orNA(r.Day)),
		fmt.Sprintf("The most common start hour is: %s", orNA(r.Hour)),
	}
	if r.Hour.IsPresent() {
		lines = append(lines, fmt.Sprintf("Trips by start hour (00-23): [%s]", Sparkline(r.Hourly)))
	}
	return writeLines(w, lines)
}

func modeValue(values []string) model.Optional[string] {
	mode, ok := Mode(values).Get()
	if !ok {
		return model.Unavailable[string]()
	}
	return model.Present(mode.Value)
}

func orNA(v model.Optional[string]) string {
	if s, ok := v.Get(); ok {
		return s
	}
	return notAvailable
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
