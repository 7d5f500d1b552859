// Package dataset loads city trip files into filtered data frames.
package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/logging"
	"github.com/verte-zerg/bikeshare/internal/model"
)

// ErrMissingColumn reports a required column absent from a city file.
var ErrMissingColumn = errors.New("missing column")

const tripSeparator = " -> "

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
}

var nanValues = []string{"", "NA", "NaN", "<nil>"}

// Dataset is a filtered city table with derived columns attached.
type Dataset struct {
	City   string
	Filter model.Filter
	Schema model.Schema
	frame  dataframe.DataFrame
	names  map[string]struct{}
}

// Load opens the city file named by the filter and returns the filtered table.
func Load(ctx context.Context, logger *slog.Logger, catalog *config.Catalog, f model.Filter) (*Dataset, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	city, ok := catalog.City(f.City)
	if !ok {
		return nil, fmt.Errorf("unknown city %q", f.City)
	}
	path := catalog.Path(city)
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s data: %w", city.Name, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only data file.
			_ = cerr
		}
	}()
	logger.Debug("loading city data", "city", city.Name, "path", path)
	return Read(ctx, logger, file, catalog, city, f)
}

// Read parses CSV trip data for a city, derives time columns and applies the filter.
func Read(ctx context.Context, logger *slog.Logger, r io.Reader, catalog *config.Catalog, city config.City, f model.Filter) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	started := time.Now()
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
		dataframe.NaNValues(nanValues),
		dataframe.WithTypes(map[string]series.Type{
			model.ColStartTime:    series.String,
			model.ColEndTime:      series.String,
			model.ColStartStation: series.String,
			model.ColEndStation:   series.String,
			model.ColUserType:     series.String,
			model.ColGender:       series.String,
		}),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read %s data: %w", city.Name, df.Err)
	}

	names := columnSet(df.Names())
	for _, col := range model.RequiredColumns {
		if _, ok := names[col]; !ok {
			return nil, fmt.Errorf("%w %q in %s data", ErrMissingColumn, col, city.Name)
		}
	}
	schema := resolveSchema(logger, city, names)

	df, err := attachDerived(df)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare %s data: %w", city.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	total := df.Nrow()

	if idx, ok := catalog.MonthIndex(f.Month); ok {
		df = df.Filter(dataframe.F{Colname: model.ColMonth, Comparator: series.Eq, Comparando: idx})
	}
	if day := config.NormalizeName(f.Day); day != "" && day != model.FilterAll {
		df = df.Filter(dataframe.F{Colname: model.ColDayOfWeek, Comparator: series.Eq, Comparando: config.Title(day)})
	}
	if df.Err != nil {
		return nil, fmt.Errorf("failed to filter %s data: %w", city.Name, df.Err)
	}

	logger.Debug("city data loaded",
		"city", city.Name,
		"rows", total,
		"filtered_rows", df.Nrow(),
		"elapsed", time.Since(started),
	)
	return &Dataset{
		City:   city.Name,
		Filter: f,
		Schema: schema,
		frame:  df,
		names:  columnSet(df.Names()),
	}, nil
}

func resolveSchema(logger *slog.Logger, city config.City, names map[string]struct{}) model.Schema {
	_, hasGender := names[model.ColGender]
	_, hasBirthYear := names[model.ColBirthYear]
	if city.Schema.Gender && !hasGender {
		logger.Warn("declared column missing from data", "city", city.Name, "column", model.ColGender)
	}
	if city.Schema.BirthYear && !hasBirthYear {
		logger.Warn("declared column missing from data", "city", city.Name, "column", model.ColBirthYear)
	}
	return model.Schema{
		Gender:    city.Schema.Gender && hasGender,
		BirthYear: city.Schema.BirthYear && hasBirthYear,
	}
}

func attachDerived(df dataframe.DataFrame) (dataframe.DataFrame, error) {
	starts := df.Col(model.ColStartTime).Records()
	months := make([]int, len(starts))
	days := make([]string, len(starts))
	hours := make([]int, len(starts))
	for i, raw := range starts {
		ts, err := ParseTimestamp(raw)
		if err != nil {
			return df, fmt.Errorf("row %d: %w", i+1, err)
		}
		months[i] = int(ts.Month())
		days[i] = ts.Weekday().String()
		hours[i] = ts.Hour()
	}

	startCol := df.Col(model.ColStartStation)
	endCol := df.Col(model.ColEndStation)
	startNames, startNaN := startCol.Records(), startCol.IsNaN()
	endNames, endNaN := endCol.Records(), endCol.IsNaN()
	trips := make([]string, len(startNames))
	for i := range startNames {
		if startNaN[i] || endNaN[i] {
			trips[i] = "NaN"
			continue
		}
		trips[i] = startNames[i] + tripSeparator + endNames[i]
	}

	df = df.
		Mutate(series.New(months, series.Int, model.ColMonth)).
		Mutate(series.New(days, series.String, model.ColDayOfWeek)).
		Mutate(series.New(hours, series.Int, model.ColHour)).
		Mutate(series.New(trips, series.String, model.ColTrip))
	if df.Err != nil {
		return df, df.Err
	}
	return df, nil
}

// ParseTimestamp parses a trip timestamp in any of the accepted layouts.
func ParseTimestamp(raw string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", raw)
}

func columnSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// Rows returns the number of rows after filtering.
func (d *Dataset) Rows() int {
	return d.frame.Nrow()
}

// Names returns the column names in file order followed by derived columns.
func (d *Dataset) Names() []string {
	return d.frame.Names()
}

// Has reports whether the table carries a column.
func (d *Dataset) Has(col string) bool {
	_, ok := d.names[col]
	return ok
}

// Strings returns the non-missing values of a column in row order.
func (d *Dataset) Strings(col string) []string {
	if !d.Has(col) {
		return nil
	}
	s := d.frame.Col(col)
	records := s.Records()
	nan := s.IsNaN()
	out := make([]string, 0, len(records))
	for i, v := range records {
		if nan[i] {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Floats returns the non-missing numeric values of a column in row order.
func (d *Dataset) Floats(col string) []float64 {
	if !d.Has(col) {
		return nil
	}
	s := d.frame.Col(col)
	values := s.Float()
	nan := s.IsNaN()
	out := make([]float64, 0, len(values))
	for i, v := range values {
		if nan[i] || math.IsNaN(v) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Window returns up to n rows starting at start, formatted as strings.
func (d *Dataset) Window(start, n int) [][]string {
	rows := d.Rows()
	if start < 0 || start >= rows || n <= 0 {
		return nil
	}
	end := start + n
	if end > rows {
		end = rows
	}
	indexes := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		indexes = append(indexes, i)
	}
	records := d.frame.Subset(indexes).Records()
	if len(records) <= 1 {
		return nil
	}
	return records[1:]
}
