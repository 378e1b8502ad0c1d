// Package normalize resolves raw ETC usage-history fields into canonical
// calendar values. Usage-history exports disagree about year width and zero
// padding, so everything here is tolerant: a record that cannot be resolved
// is dropped by the caller, never fatal.
package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"tollbook/internal/common"
	"tollbook/internal/model"
)

// ExpandYear converts a two-digit year to four digits: values below 50 are
// 2000s, values 50-99 are 1900s. Four-digit years pass through unchanged.
// This is the fixed heuristic the upstream exports rely on; it misreads
// years from 2050 on.
func ExpandYear(y int) int {
	switch {
	case y < 50:
		return y + 2000
	case y < 100:
		return y + 1900
	default:
		return y
	}
}

// Normalize parses one raw record's date, time and fare. The returned error
// marks the record as dropped; the pipeline swallows it and continues.
func Normalize(raw model.RawTripRecord) (model.NormalizedTripRecord, error) {
	year, month, day, err := parseDate(raw.DepartureDate)
	if err != nil {
		return model.NormalizedTripRecord{}, err
	}

	fare, err := ParseFare(raw.Fare)
	if err != nil {
		return model.NormalizedTripRecord{}, err
	}

	return model.NormalizedTripRecord{
		Origin:      raw.Origin,
		Destination: raw.Destination,
		Year:        year,
		Month:       month,
		Day:         day,
		Bucket:      parseBucket(raw.DepartureTime),
		Fare:        fare,
	}, nil
}

// parseDate accepts "YY/MM/DD" and "YYYY/MM/DD", with or without zero
// padding, and validates the result against the actual month length.
func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	if len(parts) < 3 {
		return 0, 0, 0, fmt.Errorf("date %q: want YY/MM/DD", s)
	}

	y, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || y < 0 {
		return 0, 0, 0, fmt.Errorf("date %q: bad year", s)
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || m < 1 || m > 12 {
		return 0, 0, 0, fmt.Errorf("date %q: bad month", s)
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return 0, 0, 0, fmt.Errorf("date %q: bad day", s)
	}

	y = ExpandYear(y)
	if d < 1 || d > model.DaysInMonth(y, m) {
		return 0, 0, 0, fmt.Errorf("date %q: day out of range for %d-%02d", s, y, m)
	}
	return y, m, d, nil
}

// parseBucket assigns a time-of-day bucket. Hours before noon are morning;
// a missing or unparsable time also defaults to morning. The default is a
// deliberate bias toward the outbound slot, asserted by tests.
func parseBucket(s string) model.TimeBucket {
	hh, _, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return model.Morning
	}
	hour, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil || hour < 0 || hour > 23 {
		return model.Morning
	}
	if hour < 12 {
		return model.Morning
	}
	return model.Afternoon
}

// ParseFare parses a fare amount, tolerating a yen sign and digit grouping
// ("1,340", "¥1340"). Negative amounts are rejected.
func ParseFare(s string) (int, error) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ',', '，', '¥', '￥', ' ', '　':
			return -1
		}
		return r
	}, strings.TrimSpace(s))

	if cleaned == "" {
		return 0, fmt.Errorf("fare %q: empty", s)
	}
	n, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("fare %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("fare %q: negative", s)
	}
	return n, nil
}

// DetectPeriod returns the latest (year, month) found among the records'
// departure dates. Records whose date does not parse are skipped.
func DetectPeriod(records []model.RawTripRecord) (year, month int, err error) {
	for _, r := range records {
		y, m, _, perr := parseDate(r.DepartureDate)
		if perr != nil {
			continue
		}
		if y > year || (y == year && m > month) {
			year, month = y, m
		}
	}
	if year == 0 {
		return 0, 0, common.NewUserError("no record has a parsable departure date", common.ErrUnknownPeriod)
	}
	return year, month, nil
}
