package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/model"
)

const (
	noGenderNotice    = "No gender information available for this city."
	noBirthYearNotice = "No birth year information available for this city."
)

// BirthYears summarizes the birth year column.
type BirthYears struct {
	Earliest   int
	MostRecent int
	MostCommon int
}

// UserReport holds user type counts and the optional demographics.
type UserReport struct {
	UserTypes  []model.ValueCount
	Gender     model.Optional[[]model.ValueCount]
	BirthYears model.Optional[BirthYears]
}

// ComputeUsers counts user types and, where the city has them, genders and birth years.
func ComputeUsers(ds *dataset.Dataset) UserReport {
	report := UserReport{
		UserTypes:  ValueCounts(ds.Strings(model.ColUserType)),
		Gender:     model.Unavailable[[]model.ValueCount](),
		BirthYears: model.Unavailable[BirthYears](),
	}
	if ds.Schema.Gender {
		report.Gender = model.Present(ValueCounts(ds.Strings(model.ColGender)))
	}
	if ds.Schema.BirthYear {
		if years, ok := birthYears(ds.Floats(model.ColBirthYear)); ok {
			report.BirthYears = model.Present(years)
		}
	}
	return report
}

func birthYears(values []float64) (BirthYears, bool) {
	if len(values) == 0 {
		return BirthYears{}, false
	}
	years := make([]string, len(values))
	for i, v := range values {
		years[i] = strconv.Itoa(int(v))
	}
	mode, _ := Mode(years).Get()
	common, err := strconv.Atoi(mode.Value)
	if err != nil {
		return BirthYears{}, false
	}
	earliest, latest := minMax(values)
	return BirthYears{
		Earliest:   int(earliest),
		MostRecent: int(latest),
		MostCommon: common,
	}, true
}

// Render writes the report lines.
func (r UserReport) Render(w io.Writer) error {
	lines := []string{"Counts of user types:"}
	lines = append(lines, countLines("User Type", r.UserTypes)...)

	lines = append(lines, "")
	if counts, ok := r.Gender.Get(); ok {
		lines = append(lines, "Counts of gender:")
		lines = append(lines, countLines("Gender", counts)...)
	} else {
		lines = append(lines, noGenderNotice)
	}

	lines = append(lines, "")
	if years, ok := r.BirthYears.Get(); ok {
		lines = append(lines,
			fmt.Sprintf("Earliest birth year: %d", years.Earliest),
			fmt.Sprintf("Most recent birth year: %d", years.MostRecent),
			fmt.Sprintf("Most common birth year: %d", years.MostCommon),
		)
	} else {
		lines = append(lines, noBirthYearNotice)
	}
	return writeLines(w, lines)
}

func countLines(label string, counts []model.ValueCount) []string {
	if len(counts) == 0 {
		return []string{notAvailable}
	}
	rows := make([][]string, 0, len(counts))
	for _, c := range counts {
		rows = append(rows, []string{c.Value, humanize.Comma(int64(c.Count))})
	}
	return FormatTable([]string{label, "Count"}, rows, map[int]bool{1: true})
}
