// ArtScout - Art Event and Artist Discovery
// Copyright 2026 ArtScout Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/artscout/artscout

package calendar

import (
	"testing"
	"time"
)

func TestWeekdayNames_RotatesFromToday(t *testing.T) {
	// 2024-04-10 was a Wednesday.
	now := time.Date(2024, 4, 10, 15, 30, 0, 0, time.UTC)

	got := WeekdayNames(now)
	want := []string{"Wednesday", "Thursday", "Friday", "Saturday", "Sunday", "Monday", "Tuesday"}

	if len(got) != DaysPerWeek {
		t.Fatalf("WeekdayNames() returned %d names, want %d", len(got), DaysPerWeek)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WeekdayNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWeekDates_StartsTodayStrictlyIncreasing(t *testing.T) {
	now := time.Date(2024, 4, 10, 23, 59, 0, 0, time.UTC)

	got := WeekDates(now)
	if len(got) != DaysPerWeek {
		t.Fatalf("WeekDates() returned %d dates, want %d", len(got), DaysPerWeek)
	}

	if got[0] != now.Format(ISODateFormat) {
		t.Errorf("WeekDates()[0] = %q, want today %q", got[0], now.Format(ISODateFormat))
	}

	for i := 1; i < len(got); i++ {
		if !(got[i-1] < got[i]) {
			t.Errorf("WeekDates() not strictly increasing at %d: %q >= %q", i, got[i-1], got[i])
		}
	}
}

func TestWeekDates_CrossesMonthBoundary(t *testing.T) {
	now := time.Date(2024, 1, 29, 0, 0, 0, 0, time.UTC)

	got := WeekDates(now)
	want := []string{
		"2024-01-29", "2024-01-30", "2024-01-31",
		"2024-02-01", "2024-02-02", "2024-02-03", "2024-02-04",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("WeekDates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWeekdayNamesAndDatesAreParallel(t *testing.T) {
	now := time.Date(2024, 4, 14, 12, 0, 0, 0, time.UTC) // a Sunday

	names := WeekdayNames(now)
	dates := WeekDates(now)

	for i := range dates {
		d, err := time.Parse(ISODateFormat, dates[i])
		if err != nil {
			t.Fatalf("WeekDates()[%d] = %q is not a valid ISO date: %v", i, dates[i], err)
		}
		if d.Weekday().String() != names[i] {
			t.Errorf("index %d: date %s is a %s, but WeekdayNames says %s",
				i, dates[i], d.Weekday(), names[i])
		}
	}
}
