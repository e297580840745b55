/* Copyright 2025 Gymplan Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package calendar

import (
	"fmt"
	"testing"
	"time"

	"github.com/gymplan/gymplan/pkg/assert"
	"github.com/gymplan/gymplan/pkg/cli/client"
)

func TestMonthGrid(t *testing.T) {
	testCases := []struct {
		year  int
		month time.Month
		weeks int
		first string
		last  string
	}{
		// starts on a Thursday, ends on a Saturday
		{year: 2026, month: time.October, weeks: 5, first: "2026-09-28", last: "2026-11-01"},
		// starts on a Monday and has 28 days
		{year: 2021, month: time.February, weeks: 4, first: "2021-02-01", last: "2021-02-28"},
		// starts on a Sunday
		{year: 2026, month: time.March, weeks: 6, first: "2026-02-23", last: "2026-04-05"},
		// leap year
		{year: 2024, month: time.February, weeks: 5, first: "2024-01-29", last: "2024-03-03"},
		// year boundaries
		{year: 2026, month: time.December, weeks: 5, first: "2026-11-30", last: "2027-01-03"},
		{year: 2027, month: time.January, weeks: 5, first: "2026-12-28", last: "2027-01-31"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d-%02d", tc.year, tc.month), func(t *testing.T) {
			grid := MonthGrid(tc.year, tc.month)

			assert.Equal(t, len(grid), tc.weeks, "week count mismatch")
			assert.Equal(t, grid[0][0].Date.Format("2006-01-02"), tc.first, "first day mismatch")
			assert.Equal(t, grid[len(grid)-1][6].Date.Format("2006-01-02"), tc.last, "last day mismatch")

			var inMonth int
			prev := grid[0][0].Date.AddDate(0, 0, -1)
			for _, w := range grid {
				assert.Equal(t, w[0].Date.Weekday(), time.Monday, "week should start on monday")

				for _, c := range w {
					assert.Equal(t, c.Date.Sub(prev), 24*time.Hour, "days should be consecutive")
					assert.Equal(t, c.InMonth, c.Date.Month() == tc.month, "in month mismatch")
					if c.InMonth {
						inMonth++
					}
					prev = c.Date
				}
			}

			days := time.Date(tc.year, tc.month+1, 0, 0, 0, 0, 0, time.UTC).Day()
			assert.Equal(t, inMonth, days, "in month day count mismatch")
		})
	}
}

func TestView(t *testing.T) {
	v := NewView(time.Date(2026, time.December, 14, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, v.Title(), "December 2026", "title mismatch")

	if err := v.Select(31); err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, v.Selected, 31, "selection mismatch")

	v.Next()
	assert.Equal(t, v.Year, 2027, "year mismatch after next")
	assert.Equal(t, v.Month, time.January, "month mismatch after next")
	assert.Equal(t, v.Selected, 0, "next should clear the selection")

	if err := v.Select(5); err != nil {
		t.Fatal(err)
	}
	v.Prev()
	v.Prev()
	assert.Equal(t, v.Year, 2026, "year mismatch after prev")
	assert.Equal(t, v.Month, time.November, "month mismatch after prev")
	assert.Equal(t, v.Selected, 0, "prev should clear the selection")

	assert.NotEqual(t, v.Select(31), nil, "november has 30 days")
	assert.NotEqual(t, v.Select(0), nil, "day 0 should be invalid")

	v.Shift(-11)
	assert.Equal(t, v.Title(), "December 2025", "title mismatch after shift")
}

func TestParseMonth(t *testing.T) {
	v, err := ParseMonth("2026-02")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, v.Year, 2026, "year mismatch")
	assert.Equal(t, v.Month, time.February, "month mismatch")
	assert.Equal(t, v.DaysInMonth(), 28, "days in month mismatch")

	for _, input := range []string{"2026-13", "Feb 2026", ""} {
		_, err := ParseMonth(input)
		assert.NotEqual(t, err, nil, fmt.Sprintf("expected an error for '%s'", input))
	}
}

func intp(i int) *int { return &i }

func floatp(f float64) *float64 { return &f }

func link(name string, sets, reps int, weight *float64) client.RoutineExercise {
	return client.RoutineExercise{Exercise: client.Exercise{Name: name}, Sets: intp(sets), Reps: intp(reps), Weight: weight}
}

func fixture() ([]client.WeeklyPlan, Library) {
	push := client.Routine{ID: 5, Name: "Push Day", Exercises: []client.RoutineExercise{
		link("Bench Press", 4, 8, floatp(80)),
		link("Overhead Press", 3, 10, floatp(42.5)),
		link("Dips", 3, 12, nil),
	}}

	all := []client.WeeklyPlan{
		{ID: 1, Week: 1, Days: []client.PlannedDay{{ID: 10, Weekday: 1, Routine: &client.Routine{ID: 6, Name: "Legs"}}}},
		{ID: 2, Week: 2, Active: true, Days: []client.PlannedDay{{ID: 20, Weekday: 3, Name: "Wednesday - Push Day", Routine: &client.Routine{ID: 5, Name: "Push Day"}}}},
	}

	return all, NewLibrary([]client.Routine{push})
}

func TestDays(t *testing.T) {
	all, lib := fixture()
	today := time.Date(2026, time.October, 14, 9, 30, 0, 0, time.UTC)

	days := NewView(today).Days(all, lib, today)

	var todays, scheduled int
	for _, w := range days {
		for _, d := range w {
			if d.Today {
				todays++
				assert.Equal(t, d.Date.Day(), 14, "today mismatch")
			}

			if d.Date.Weekday() == time.Wednesday {
				assert.Equal(t, d.Scheduled(), true, fmt.Sprintf("%s should be scheduled", d.Date))
				assert.Equal(t, d.Routine.Name, "Push Day", "routine mismatch")
				assert.Equal(t, len(d.Routine.Exercises), 3, "exercises should come from the library")
				scheduled++
			} else {
				assert.Equal(t, d.Scheduled(), false, fmt.Sprintf("%s should not be scheduled", d.Date))
			}
		}
	}

	assert.Equal(t, todays, 1, "today count mismatch")
	assert.Equal(t, scheduled, len(days), "one wednesday per week")
}

func TestResolveConsistency(t *testing.T) {
	all, lib := fixture()
	today := time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

	v := NewView(today)
	if err := v.Select(14); err != nil {
		t.Fatal(err)
	}

	banner := Resolve(all, lib, today)
	selected, ok := v.SelectedDay(all, lib)
	assert.Equal(t, ok, true, "selection should resolve")

	var cell Day
	for _, w := range v.Days(all, lib, today) {
		for _, d := range w {
			if d.Today {
				cell = d
			}
		}
	}

	assert.Equal(t, banner.Planned.ID, 20, "banner mismatch")
	assert.Equal(t, selected.Planned.ID, banner.Planned.ID, "detail and banner disagree")
	assert.Equal(t, cell.Planned.ID, banner.Planned.ID, "cell and banner disagree")
}

func TestResolve_NoLibraryEntry(t *testing.T) {
	all, _ := fixture()

	d := Resolve(all, Library{}, time.Date(2026, time.October, 21, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, d.Scheduled(), true, "day should be scheduled")
	assert.Equal(t, d.Routine.Name, "Push Day", "routine name mismatch")
	assert.Equal(t, len(d.Routine.Exercises), 0, "exercise count mismatch")
}

func TestPreview(t *testing.T) {
	_, lib := fixture()
	push := lib[5]

	assert.Equal(t, Preview(push), "Bench Press, Overhead Press, Dips", "preview mismatch")

	push.Exercises = append(push.Exercises, link("Flyes", 3, 15, nil), link("Pushups", 2, 20, nil))
	assert.Equal(t, Preview(push), "Bench Press, Overhead Press, Dips +2 more", "preview mismatch")

	assert.Equal(t, Preview(client.Routine{}), "", "empty preview mismatch")
}

func TestExerciseLine(t *testing.T) {
	testCases := []struct {
		re       client.RoutineExercise
		expected string
	}{
		{re: link("Bench Press", 4, 8, floatp(80)), expected: "Bench Press 4x8 @ 80kg"},
		{re: link("Overhead Press", 3, 10, floatp(42.5)), expected: "Overhead Press 3x10 @ 42.5kg"},
		{re: link("Dips", 3, 12, nil), expected: "Dips 3x12"},
		{re: client.RoutineExercise{Exercise: client.Exercise{Name: "Plank"}}, expected: "Plank N/AxN/A"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, ExerciseLine(tc.re), tc.expected, "line mismatch")
		})
	}
}

func TestDetailOf(t *testing.T) {
	all, lib := fixture()

	d, ok := DetailOf(Resolve(all, lib, time.Date(2026, time.October, 7, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ok, true, "detail should exist")
	assert.Equal(t, d.Routine, "Push Day", "routine mismatch")
	assert.DeepEqual(t, d.Lines, []string{
		"Bench Press 4x8 @ 80kg",
		"Overhead Press 3x10 @ 42.5kg",
		"Dips 3x12",
	}, "lines mismatch")

	_, ok = DetailOf(Resolve(all, lib, time.Date(2026, time.October, 8, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, ok, false, "thursday should have no detail")
}
