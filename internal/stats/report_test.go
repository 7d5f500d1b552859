package stats

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/logging"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/testutil"
)

func loadFixture(t *testing.T, city, month, day string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(context.Background(), logging.Discard(), testutil.Catalog(t), model.Filter{City: city, Month: month, Day: day})
	if err != nil {
		t.Fatalf("load %s: %v", city, err)
	}
	return ds
}

func TestComputeTime(t *testing.T) {
	report := ComputeTime(loadFixture(t, "chicago", "all", "all"))
	if v, _ := report.Month.Get(); v != "January" {
		t.Fatalf("expected January, got %q", v)
	}
	if v, _ := report.Day.Get(); v != "Monday" {
		t.Fatalf("expected Monday, got %q", v)
	}
	if v, _ := report.Hour.Get(); v != "9" {
		t.Fatalf("expected hour 9, got %q", v)
	}
	if report.Hourly[9] != 6 || report.Hourly[23] != 1 {
		t.Fatalf("unexpected hourly counts: %v", report.Hourly)
	}
	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "The most common month is: January") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

func TestComputeTimeFilteredMonth(t *testing.T) {
	report := ComputeTime(loadFixture(t, "chicago", "june", "all"))
	if v, _ := report.Month.Get(); v != "June" {
		t.Fatalf("expected June, got %q", v)
	}
	if v, _ := report.Day.Get(); v != "Monday" {
		t.Fatalf("expected Monday, got %q", v)
	}
}

func TestComputeStations(t *testing.T) {
	report := ComputeStations(loadFixture(t, "chicago", "all", "all"))
	if v, _ := report.Start.Get(); v != "Clark St & Elm St" {
		t.Fatalf("unexpected start station %q", v)
	}
	if v, _ := report.End.Get(); v != "Canal St & Adams St" {
		t.Fatalf("unexpected end station %q", v)
	}
	if v, _ := report.Trip.Get(); v != "Clark St & Elm St -> Canal St & Adams St" {
		t.Fatalf("unexpected trip %q", v)
	}
}

func TestComputeDurations(t *testing.T) {
	report := ComputeDurations(loadFixture(t, "washington", "all", "all"))
	if report.Total != 360 {
		t.Fatalf("expected total 360, got %v", report.Total)
	}
	if mean, ok := report.Mean.Get(); !ok || mean != 120 {
		t.Fatalf("expected mean 120, got %v", mean)
	}
	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "The total travel time is: 360 seconds (6m0s)") {
		t.Fatalf("unexpected total line: %s", out)
	}
	if !strings.Contains(out, "The mean travel time is: 120.00 seconds") {
		t.Fatalf("unexpected mean line: %s", out)
	}
}

func TestComputeUsersWithDemographics(t *testing.T) {
	report := ComputeUsers(loadFixture(t, "chicago", "all", "all"))
	if len(report.UserTypes) != 2 || report.UserTypes[0].Value != "Subscriber" || report.UserTypes[0].Count != 8 {
		t.Fatalf("unexpected user types: %+v", report.UserTypes)
	}
	genders, ok := report.Gender.Get()
	if !ok || len(genders) != 2 || genders[0].Value != "Male" || genders[0].Count != 6 {
		t.Fatalf("unexpected genders: %+v", genders)
	}
	years, ok := report.BirthYears.Get()
	if !ok {
		t.Fatalf("expected birth years")
	}
	if years.Earliest != 1975 || years.MostRecent != 2000 || years.MostCommon != 1990 {
		t.Fatalf("unexpected birth years: %+v", years)
	}
	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Counts of user types:", "Subscriber", "Counts of gender:", "Earliest birth year: 1975"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output: %s", want, out)
		}
	}
}

func TestComputeUsersWithoutDemographics(t *testing.T) {
	report := ComputeUsers(loadFixture(t, "washington", "all", "all"))
	if report.Gender.IsPresent() || report.BirthYears.IsPresent() {
		t.Fatalf("expected demographics unavailable")
	}
	var buf bytes.Buffer
	if err := report.Render(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, noGenderNotice) {
		t.Fatalf("expected gender notice: %s", out)
	}
	if !strings.Contains(out, "No birth year information available for this city.") {
		t.Fatalf("expected birth year notice: %s", out)
	}
}

func TestReportsOnEmptyDataset(t *testing.T) {
	ds := loadFixture(t, "chicago", "april", "all")
	var buf bytes.Buffer
	runner := NewRunner(&buf)
	if err := runner.Run(ds, Sections()...); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "The most common month is: n/a") {
		t.Fatalf("expected n/a month: %s", out)
	}
	if !strings.Contains(out, "The mean travel time is: n/a") {
		t.Fatalf("expected n/a mean: %s", out)
	}
}

func TestRunnerPrintsSections(t *testing.T) {
	ds := loadFixture(t, "washington", "all", "all")
	var buf bytes.Buffer
	runner := NewRunner(&buf)
	base := time.Unix(0, 0)
	calls := 0
	runner.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * 250 * time.Millisecond)
	}
	if err := runner.Run(ds, Sections()...); err != nil {
		t.Fatalf("run: %v", err)
	}
	out := buf.String()
	titles := []string{
		"Calculating The Most Frequent Times of Travel...",
		"Calculating The Most Popular Stations and Trip...",
		"Calculating Trip Duration...",
		"Calculating User Stats...",
	}
	last := -1
	for _, title := range titles {
		idx := strings.Index(out, title)
		if idx <= last {
			t.Fatalf("expected %q after previous section: %s", title, out)
		}
		last = idx
	}
	if got := strings.Count(out, "This took 0.2500 seconds."); got != 4 {
		t.Fatalf("expected 4 elapsed lines, got %d: %s", got, out)
	}
	if got := strings.Count(out, Separator()); got != 4 {
		t.Fatalf("expected 4 separators, got %d", got)
	}
}
