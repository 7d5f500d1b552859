package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/verte-zerg/bikeshare/internal/model"
)

// City is a configured city and its data file.
type City struct {
	Name   string
	File   string
	Schema model.Schema
}

// Catalog is the immutable set of cities, months and days a session may select.
type Catalog struct {
	dataDir string
	cities  []City
	byName  map[string]City
	months  []string
	days    []string
}

var defaultCities = []City{
	{Name: "chicago", File: "chicago.csv", Schema: model.Schema{Gender: true, BirthYear: true}},
	{Name: "new york city", File: "new_york_city.csv", Schema: model.Schema{Gender: true, BirthYear: true}},
	{Name: "washington", File: "washington.csv"},
}

var canonicalMonths = []string{model.FilterAll, "january", "february", "march", "april", "may", "june"}

var canonicalDays = []string{model.FilterAll, "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

var titleCaser = cases.Title(language.English)

// DefaultCatalog returns the built-in cities rooted at dataDir.
func DefaultCatalog(dataDir string) *Catalog {
	return newCatalog(dataDir, defaultCities)
}

// NewCatalog merges the built-in cities with overrides from the config file.
// Cities not known by default are appended in name order.
func NewCatalog(dataDir string, overrides map[string]CityConfig) (*Catalog, error) {
	cities := make([]City, len(defaultCities))
	copy(cities, defaultCities)
	index := make(map[string]int, len(cities))
	for i, c := range cities {
		index[c.Name] = i
	}

	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, rawName := range names {
		override := overrides[rawName]
		name := NormalizeName(rawName)
		if name == "" {
			return nil, fmt.Errorf("city name must not be empty")
		}
		i, ok := index[name]
		if !ok {
			if override.File == nil || strings.TrimSpace(*override.File) == "" {
				return nil, fmt.Errorf("city %q needs a file", name)
			}
			cities = append(cities, City{Name: name})
			i = len(cities) - 1
			index[name] = i
		}
		if override.File != nil {
			cities[i].File = strings.TrimSpace(*override.File)
		}
		if override.Gender != nil {
			cities[i].Schema.Gender = *override.Gender
		}
		if override.BirthYear != nil {
			cities[i].Schema.BirthYear = *override.BirthYear
		}
	}
	return newCatalog(dataDir, cities), nil
}

func newCatalog(dataDir string, cities []City) *Catalog {
	c := &Catalog{
		dataDir: dataDir,
		cities:  append([]City(nil), cities...),
		byName:  make(map[string]City, len(cities)),
		months:  canonicalMonths,
		days:    canonicalDays,
	}
	for _, city := range c.cities {
		c.byName[city.Name] = city
	}
	return c
}

// NormalizeName trims and lowercases user input.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Title renders a lowercase catalog value for display.
func Title(s string) string {
	return titleCaser.String(s)
}

// DataDir returns the directory city files are resolved against.
func (c *Catalog) DataDir() string {
	return c.dataDir
}

// Cities returns the configured cities in display order.
func (c *Catalog) Cities() []City {
	return append([]City(nil), c.cities...)
}

// CityNames returns the lowercase city names in display order.
func (c *Catalog) CityNames() []string {
	names := make([]string, len(c.cities))
	for i, city := range c.cities {
		names[i] = city.Name
	}
	return names
}

// Months returns the month choices, starting with "all".
func (c *Catalog) Months() []string {
	return append([]string(nil), c.months...)
}

// Days returns the weekday choices, starting with "all".
func (c *Catalog) Days() []string {
	return append([]string(nil), c.days...)
}

// City looks up a city by name.
func (c *Catalog) City(name string) (City, bool) {
	city, ok := c.byName[NormalizeName(name)]
	return city, ok
}

// Path returns the data file path for a city.
func (c *Catalog) Path(city City) string {
	if filepath.IsAbs(city.File) {
		return city.File
	}
	return filepath.Join(c.dataDir, city.File)
}

// MonthIndex returns the 1-based calendar month of a month name.
func (c *Catalog) MonthIndex(month string) (int, bool) {
	month = NormalizeName(month)
	if month == model.FilterAll {
		return 0, false
	}
	for i, m := range c.months {
		if m == month {
			return i, true
		}
	}
	return 0, false
}

// Validate checks that every filter field is a known catalog value.
func (c *Catalog) Validate(f model.Filter) error {
	if _, ok := c.City(f.City); !ok {
		return fmt.Errorf("unknown city %q (available: %s)", f.City, strings.Join(c.CityNames(), ", "))
	}
	if !contains(c.months, NormalizeName(f.Month)) {
		return fmt.Errorf("unknown month %q (available: %s)", f.Month, strings.Join(c.months, ", "))
	}
	if !contains(c.days, NormalizeName(f.Day)) {
		return fmt.Errorf("unknown day %q (available: %s)", f.Day, strings.Join(c.days, ", "))
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
