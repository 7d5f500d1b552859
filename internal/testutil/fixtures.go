// Package testutil provides trip data fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/verte-zerg/bikeshare/internal/config"
)

// ChicagoCSV has 12 trips across January to June with full demographics.
// Two rows lack a gender and one lacks a birth year.
const ChicagoCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
2017-01-02 09:07:57,2017-01-02 09:08:57,60,Clark St & Elm St,Canal St & Adams St,Subscriber,Male,1990
2017-01-03 09:10:00,2017-01-03 09:12:00,120,Clark St & Elm St,Canal St & Adams St,Subscriber,Female,1985
2017-01-09 17:00:00,2017-01-09 17:03:00,180,Canal St & Adams St,Lake Shore Dr & Monroe St,Customer,,
2017-02-06 09:30:00,2017-02-06 09:35:00,300,Clark St & Elm St,Lake Shore Dr & Monroe St,Subscriber,Male,1990
2017-03-04 08:00:00,2017-03-04 08:04:00,240,Lake Shore Dr & Monroe St,Clark St & Elm St,Customer,Female,1975
2017-05-01 09:45:00,2017-05-01 09:55:00,600,Clark St & Elm St,Canal St & Adams St,Subscriber,Male,2000
2017-06-30 23:59:59,2017-07-01 00:01:29,90,Canal St & Adams St,Clark St & Elm St,Subscriber,Male,1990
2017-06-05 09:05:00,2017-06-05 09:05:30,30,Lake Shore Dr & Monroe St,Canal St & Adams St,Customer,Female,1985
2017-02-06 12:00:00,2017-02-06 12:07:00,420,Canal St & Adams St,Lake Shore Dr & Monroe St,Subscriber,Male,1992
2017-03-04 09:15:00,2017-03-04 09:17:30,150,Clark St & Elm St,Canal St & Adams St,Subscriber,Female,1990
2017-01-02 18:20:00,2017-01-02 18:21:15,75,Lake Shore Dr & Monroe St,Clark St & Elm St,Subscriber,Male,1988
2017-06-05 07:40:00,2017-06-05 07:40:35,35,Clark St & Elm St,Lake Shore Dr & Monroe St,Customer,,1999
`

// ChicagoRows is the number of trips in ChicagoCSV.
const ChicagoRows = 12

// WashingtonCSV has three trips and no demographic columns.
const WashingtonCSV = `Start Time,End Time,Trip Duration,Start Station,End Station,User Type
2017-04-03 10:00:00,2017-04-03 10:01:00,60,14th & V St NW,Lincoln Memorial,Subscriber
2017-04-04 11:00:00,2017-04-04 11:02:00,120,Lincoln Memorial,Jefferson Dr & 14th St SW,Customer
2017-04-05 10:30:00,2017-04-05 10:33:00,180,14th & V St NW,Lincoln Memorial,Subscriber
`

// WriteFile writes content under dir and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

// Catalog writes the fixture files for every default city into a temp dir
// and returns a catalog rooted there. New York City reuses the Chicago data.
func Catalog(t *testing.T) *config.Catalog {
	t.Helper()
	dir := t.TempDir()
	WriteFile(t, dir, "chicago.csv", ChicagoCSV)
	WriteFile(t, dir, "new_york_city.csv", ChicagoCSV)
	WriteFile(t, dir, "washington.csv", WashingtonCSV)
	return config.DefaultCatalog(dir)
}
