// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

// Package calendar produces the rolling 7-day window used for the weekly
// event view: one sequence of weekday names and one parallel sequence of
// ISO dates, both starting at today.
package calendar

import "time"

// DaysPerWeek is the length of the sequences returned by this package.
const DaysPerWeek = 7

// ISODateFormat is the YYYY-MM-DD layout used for event date bucketing.
const ISODateFormat = "2006-01-02"

// WeekdayNames returns the weekday names for the next 7 calendar days,
// starting with the weekday of now. time.Weekday already counts from
// Sunday, so the rotation is a simple modular walk.
func WeekdayNames(now time.Time) []string {
	names := make([]string, 0, DaysPerWeek)
	start := int(now.Weekday())
	for i := 0; i < DaysPerWeek; i++ {
		names = append(names, time.Weekday((start+i)%DaysPerWeek).String())
	}
	return names
}

// WeekDates returns ISO YYYY-MM-DD date strings for the next 7 calendar
// days, today inclusive. The result is strictly increasing and parallel
// to WeekdayNames for the same now.
func WeekDates(now time.Time) []string {
	dates := make([]string, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		dates = append(dates, now.AddDate(0, 0, i).Format(ISODateFormat))
	}
	return dates
}
