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

// Package calendar lays out a month as Monday-first weeks and resolves the
// routine scheduled on each date
package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/plans"
	"github.com/pkg/errors"
)

// PreviewSize is the number of exercises listed in a preview
const PreviewSize = 3

// NotAvailable is printed in place of a missing target
const NotAvailable = "N/A"

// Cell is a date of a month grid
type Cell struct {
	Date time.Time
	// InMonth is false for the padding days of the adjacent months
	InMonth bool
}

// Week is a Monday-first row of a month grid
type Week [7]Cell

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// MonthGrid returns the weeks covering the given month. The first week is
// padded with days of the previous month and the last week with days of the
// next month.
func MonthGrid(year int, month time.Month) []Week {
	first := date(year, month, 1)
	last := first.AddDate(0, 1, -1)

	start := first.AddDate(0, 0, -(plans.ISOWeekday(first) - 1))
	end := last.AddDate(0, 0, 7-plans.ISOWeekday(last))

	var ret []Week
	var w Week
	i := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		w[i] = Cell{Date: d, InMonth: d.Month() == month}
		i++

		if i == 7 {
			ret = append(ret, w)
			w = Week{}
			i = 0
		}
	}

	return ret
}

// View is the month shown by the calendar and the selected day of it
type View struct {
	Year  int
	Month time.Month
	// Selected is the selected day of the month, or 0 for none
	Selected int
}

// NewView returns a view of the month of t
func NewView(t time.Time) View {
	return View{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses a month in the YYYY-MM format
func ParseMonth(s string) (View, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return View{}, errors.Errorf("invalid month '%s'. Use the YYYY-MM format", s)
	}

	return NewView(t), nil
}

func (v *View) shift(months int) {
	t := date(v.Year, v.Month, 1).AddDate(0, months, 0)
	v.Year, v.Month = t.Year(), t.Month()
	v.Selected = 0
}

// Next moves to the next month and clears the selection
func (v *View) Next() {
	v.shift(1)
}

// Prev moves to the previous month and clears the selection
func (v *View) Prev() {
	v.shift(-1)
}

// Shift moves by the given number of months and clears the selection
func (v *View) Shift(months int) {
	v.shift(months)
}

// DaysInMonth returns the number of days of the viewed month
func (v View) DaysInMonth() int {
	return date(v.Year, v.Month, 1).AddDate(0, 1, -1).Day()
}

// Select selects a day of the viewed month
func (v *View) Select(day int) error {
	if day < 1 || day > v.DaysInMonth() {
		return errors.Errorf("day must be between 1 and %d", v.DaysInMonth())
	}

	v.Selected = day
	return nil
}

// Title returns the month and year of the view, e.g. "October 2026"
func (v View) Title() string {
	return fmt.Sprintf("%s %d", v.Month, v.Year)
}

// Day is a cell of the calendar with the routine resolved for its date
type Day struct {
	Cell
	Today bool
	// Planned is nil when nothing is scheduled
	Planned *client.PlannedDay
	Routine client.Routine
}

// Scheduled returns true if a routine is scheduled on the day
func (d Day) Scheduled() bool {
	return d.Planned != nil
}

// Library maps routine ids to routines with their exercises loaded
type Library map[int]client.Routine

// NewLibrary indexes the given routines by id
func NewLibrary(rs []client.Routine) Library {
	ret := Library{}
	for _, r := range rs {
		ret[r.ID] = r
	}

	return ret
}

// Resolve returns the calendar day for the given date. The same resolution
// is used by the today banner, the grid and the detail panel.
func Resolve(all []client.WeeklyPlan, lib Library, t time.Time) Day {
	ret := Day{Cell: Cell{Date: t, InMonth: true}}

	pd, ok := plans.DayForDate(all, t)
	if !ok {
		return ret
	}

	ret.Planned = &pd
	ret.Routine = client.Routine{Name: pd.Name}
	if pd.Routine != nil {
		ret.Routine = *pd.Routine
		if r, ok := lib[pd.Routine.ID]; ok {
			ret.Routine = r
		}
	}

	return ret
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// Days returns the grid of the viewed month with every cell resolved
func (v View) Days(all []client.WeeklyPlan, lib Library, today time.Time) [][7]Day {
	grid := MonthGrid(v.Year, v.Month)

	ret := make([][7]Day, len(grid))
	for i, w := range grid {
		for j, c := range w {
			d := Resolve(all, lib, c.Date)
			d.InMonth = c.InMonth
			d.Today = sameDate(c.Date, today)
			ret[i][j] = d
		}
	}

	return ret
}

// SelectedDay returns the resolved selected day of the view
func (v View) SelectedDay(all []client.WeeklyPlan, lib Library) (Day, bool) {
	if v.Selected == 0 {
		return Day{}, false
	}

	return Resolve(all, lib, date(v.Year, v.Month, v.Selected)), true
}

// Preview returns the names of the first exercises of the routine followed
// by the count of the remaining ones
func Preview(r client.Routine) string {
	var parts []string
	for i, re := range r.Exercises {
		if i == PreviewSize {
			break
		}
		parts = append(parts, re.Exercise.Name)
	}

	ret := strings.Join(parts, ", ")
	if rest := len(r.Exercises) - PreviewSize; rest > 0 {
		ret = fmt.Sprintf("%s +%d more", ret, rest)
	}

	return ret
}

func formatInt(p *int) string {
	if p == nil {
		return NotAvailable
	}

	return strconv.Itoa(*p)
}

// FormatWeight formats a weight in kilograms without trailing zeros
func FormatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

// ExerciseLine formats an exercise of a routine as "<name> <sets>x<reps>",
// followed by " @ <weight>kg" when a weight is set
func ExerciseLine(re client.RoutineExercise) string {
	ret := fmt.Sprintf("%s %sx%s", re.Exercise.Name, formatInt(re.Sets), formatInt(re.Reps))
	if re.Weight != nil {
		ret = fmt.Sprintf("%s @ %skg", ret, FormatWeight(*re.Weight))
	}

	return ret
}

// Detail is the full description of a scheduled day
type Detail struct {
	Date    time.Time
	Routine string
	Lines   []string
}

// DetailOf returns the detail of the given day. It returns false when
// nothing is scheduled on the day.
func DetailOf(d Day) (Detail, bool) {
	if !d.Scheduled() {
		return Detail{}, false
	}

	ret := Detail{Date: d.Date, Routine: d.Routine.Name, Lines: []string{}}
	for _, re := range d.Routine.Exercises {
		ret.Lines = append(ret.Lines, ExerciseLine(re))
	}

	return ret, true
}
