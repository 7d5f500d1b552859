// Package session runs the interactive explore-report-restart loop.
package session

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/prompt"
)

// SelectFilters asks for a city, month and day until each is a catalog value.
func SelectFilters(p *prompt.Prompter, catalog *config.Catalog) (model.Filter, error) {
	cities := catalog.CityNames()
	cityList := titledList(cities)
	city, err := p.Choose(
		fmt.Sprintf("Please enter the city you want to analyze (%s): ", strings.Join(cityList, ", ")),
		fmt.Sprintf("Invalid city. Please choose from %s.", orList(cityList)),
		cities,
	)
	if err != nil {
		return model.Filter{}, err
	}

	months := catalog.Months()
	month, err := p.Choose(
		fmt.Sprintf("Please enter the month you want to filter by (all, %s, ..., %s): ", config.Title(months[1]), config.Title(months[len(months)-1])),
		fmt.Sprintf("Invalid month. Please choose from %s.", orList(append([]string{model.FilterAll}, titledList(months[1:])...))),
		months,
	)
	if err != nil {
		return model.Filter{}, err
	}

	days := catalog.Days()
	day, err := p.Choose(
		fmt.Sprintf("Please enter the day of the week you want to filter by (all, %s, ..., %s): ", config.Title(days[1]), config.Title(days[len(days)-1])),
		fmt.Sprintf("Invalid day. Please choose from %s.", orList(append([]string{model.FilterAll}, titledList(days[1:])...))),
		days,
	)
	if err != nil {
		return model.Filter{}, err
	}
	return model.Filter{City: city, Month: month, Day: day}, nil
}

func titledList(values []string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = config.Title(v)
	}
	return out
}

func orList(values []string) string {
	switch len(values) {
	case 0:
		return ""
	case 1:
		return values[0]
	default:
		return strings.Join(values[:len(values)-1], ", ") + ", or " + values[len(values)-1]
	}
}
