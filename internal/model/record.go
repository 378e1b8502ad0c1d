// Package model defines the core domain types used throughout the application.
package model

import "time"

// TimeBucket splits a calendar day at noon. Morning legs of a commute are
// assumed to be outbound, afternoon legs the return.
type TimeBucket string

// Time-of-day buckets.
const (
	Morning   TimeBucket = "MORNING"
	Afternoon TimeBucket = "AFTERNOON"
)

// RawTripRecord is one row of an ETC usage-history CSV, exactly as exported.
// Date, time and fare are kept as raw text; the usage-history exports are not
// consistent about zero padding, year width or digit grouping, so parsing is
// the normalizer's job. Never mutated.
type RawTripRecord struct {
	DepartureDate string // 利用年月日（自）, e.g. "25/05/01" or "2025/5/1"
	DepartureTime string // 時分（自）, e.g. "07:45"; may be empty
	Origin        string // 利用ＩＣ（自）
	Destination   string // 利用ＩＣ（至）
	Fare          string // 通行料金 or 後納料金, e.g. "1,340" or "¥1340"
	Remark        string // 備考
}

// NormalizedTripRecord is a RawTripRecord with its date, time and fare
// resolved to canonical values. Year is always 4 digits; year/month/day form
// a valid calendar date.
type NormalizedTripRecord struct {
	Origin      string
	Destination string
	Year        int
	Month       int
	Day         int
	Bucket      TimeBucket
	Fare        int // yen
}

// DaysInMonth returns the number of days in the given month, leap-year aware.
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
