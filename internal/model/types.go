// Package model defines shared data structures.
package model

// Column names of the trip CSV files.
const (
	ColStartTime    = "Start Time"
	ColEndTime      = "End Time"
	ColDuration     = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Derived column names attached at load time.
const (
	ColMonth     = "month"
	ColDayOfWeek = "day_of_week"
	ColHour      = "hour"
	ColTrip      = "Trip"
)

// FilterAll disables the month or day predicate.
const FilterAll = "all"

// RequiredColumns lists the columns every city file must carry.
var RequiredColumns = []string{
	ColStartTime,
	ColDuration,
	ColStartStation,
	ColEndStation,
	ColUserType,
}

// Filter selects a city and optional month and weekday.
type Filter struct {
	City  string
	Month string
	Day   string
}

// Schema describes which optional columns a city carries.
type Schema struct {
	Gender    bool
	BirthYear bool
}

// Optional holds a value that may be unavailable for a city.
type Optional[T any] struct {
	value   T
	present bool
}

// Present wraps an available value.
func Present[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Unavailable returns an empty Optional.
func Unavailable[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool {
	return o.present
}

// ValueCount is a distinct column value and its number of occurrences.
type ValueCount struct {
	Value string
	Count int
}
