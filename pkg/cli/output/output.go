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

// Package output provides functions to print informations on the terminal
// in a consistent manner
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/gymplan/gymplan/pkg/cli/calendar"
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/planner"
	"github.com/gymplan/gymplan/pkg/cli/plans"
	"github.com/gymplan/gymplan/pkg/cli/utils/diff"
)

const indent = "  "

const unassigned = "unassigned"

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}

	return s
}

// Exercises prints the exercise library
func Exercises(w io.Writer, exs []client.Exercise) {
	if len(exs) == 0 {
		fmt.Fprintf(w, "%sno exercises yet\n", indent)
		return
	}

	for _, e := range exs {
		fmt.Fprintf(w, "%s(%s) %s %s\n", indent, log.ColorYellow.Sprintf("%d", e.ID), e.Name, log.ColorGray.Sprintf("[%s]", orNone(e.Muscle)))
		if e.Description != "" {
			fmt.Fprintf(w, "%s     %s\n", indent, e.Description)
		}
	}
}

// ExerciseInfo prints an exercise
func ExerciseInfo(w io.Writer, e client.Exercise) {
	fmt.Fprintf(w, "%sexercise id: %d\n", indent, e.ID)
	fmt.Fprintf(w, "%sname: %s\n", indent, e.Name)
	fmt.Fprintf(w, "%sdescription: %s\n", indent, orNone(e.Description))
	fmt.Fprintf(w, "%starget muscle: %s\n", indent, orNone(e.Muscle))
}

// Routines prints the routine list. The selected routine is marked.
func Routines(w io.Writer, rs []client.Routine, selected int) {
	if len(rs) == 0 {
		fmt.Fprintf(w, "%sno routines yet\n", indent)
		return
	}

	for _, r := range rs {
		marker := " "
		if r.ID == selected {
			marker = log.ColorGreen.Sprint(">")
		}

		fmt.Fprintf(w, "%s%s (%s) %s %s\n", indent, marker, log.ColorYellow.Sprintf("%d", r.ID), r.Name, log.ColorGray.Sprintf("[exercises: %d]", len(r.Exercises)))
	}
}

func targetInt(p *int) string {
	if p == nil {
		return calendar.NotAvailable
	}

	return fmt.Sprintf("%d", *p)
}

func targetWeight(p *float64) string {
	if p == nil {
		return calendar.NotAvailable
	}

	return calendar.FormatWeight(*p) + "kg"
}

// RoutineDetail prints a routine with its exercises in stored order
func RoutineDetail(w io.Writer, r client.Routine) {
	fmt.Fprintf(w, "%sroutine id: %d\n", indent, r.ID)
	fmt.Fprintf(w, "%sname: %s\n", indent, r.Name)
	fmt.Fprintf(w, "%sdescription: %s\n", indent, orNone(r.Description))

	fmt.Fprintf(w, "\n")
	if len(r.Exercises) == 0 {
		fmt.Fprintf(w, "%sno exercises in this routine\n", indent)
		return
	}

	for _, re := range r.Exercises {
		fmt.Fprintf(w, "%s(%s) %s  sets: %s  reps: %s  weight: %s\n", indent,
			log.ColorYellow.Sprintf("%d", re.ID), re.Exercise.Name, targetInt(re.Sets), targetInt(re.Reps), targetWeight(re.Weight))
	}
}

func slotLabel(d *client.PlannedDay) string {
	if d == nil {
		return log.ColorGray.Sprint(unassigned)
	}
	if d.Routine != nil {
		return d.Routine.Name
	}

	return d.Name
}

// WeekOverview prints the seven weekday slots of the active plan
func WeekOverview(w io.Writer, week plans.Week) {
	if !week.Found {
		fmt.Fprintf(w, "%sno active weekly plan\n", indent)
		return
	}

	fmt.Fprintf(w, "%s%s (week %d)\n", indent, week.Plan.Name, week.Plan.Week)
	for i, d := range week.Days {
		fmt.Fprintf(w, "%s%-9s %s\n", indent+indent, planner.WeekdayName(i+1), slotLabel(d))
	}
}

// Plans prints every weekly plan, ordered by week number, with all of its
// weekday slots
func Plans(w io.Writer, all []client.WeeklyPlan) {
	if len(all) == 0 {
		fmt.Fprintf(w, "%sno weekly plans yet\n", indent)
		return
	}

	for i, p := range plans.SortByWeek(all) {
		if i > 0 {
			fmt.Fprintf(w, "\n")
		}

		active := ""
		if p.Active {
			active = " " + log.ColorGreen.Sprint("[active]")
		}

		fmt.Fprintf(w, "%s(%s) %s - week %d%s %s\n", indent, log.ColorYellow.Sprintf("%d", p.ID), p.Name, p.Week, active, log.ColorGray.Sprintf("(%s)", planner.StateOf(p)))

		week := plans.WeekOf(p)
		for j, d := range week.Days {
			fmt.Fprintf(w, "%s%d %-9s %s\n", indent+indent, j+1, planner.WeekdayName(j+1), slotLabel(d))
		}
	}
}

// TodayBanner prints the routine scheduled for today
func TodayBanner(w io.Writer, today calendar.Day) {
	label := today.Date.Format("Monday, January 2")
	if !today.Scheduled() {
		fmt.Fprintf(w, "%sToday (%s): nothing scheduled\n", indent, label)
		return
	}

	fmt.Fprintf(w, "%sToday (%s): %s\n", indent, label, log.ColorGreen.Sprint(today.Routine.Name))
}

func cellText(d calendar.Day) string {
	marker := " "
	if d.Scheduled() {
		marker = "*"
	}

	text := fmt.Sprintf("%2d%s", d.Date.Day(), marker)

	switch {
	case d.Today:
		return log.ColorHighlight.Sprint(text)
	case !d.InMonth:
		return log.ColorGray.Sprint(text)
	}

	return text
}

// Calendar prints the month grid followed by the scheduled days of the
// month. With preview, the first exercises of each routine are listed.
func Calendar(w io.Writer, v calendar.View, days [][7]calendar.Day, preview bool) {
	fmt.Fprintf(w, "%s%s\n", indent, v.Title())
	fmt.Fprintf(w, "%sMo  Tu  We  Th  Fr  Sa  Su\n", indent)

	for _, week := range days {
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = cellText(d)
		}
		fmt.Fprintf(w, "%s%s\n", indent, strings.Join(cells, " "))
	}

	fmt.Fprintf(w, "\n")

	var scheduled bool
	for _, week := range days {
		for _, d := range week {
			if !d.InMonth || !d.Scheduled() {
				continue
			}
			scheduled = true

			line := fmt.Sprintf("%s%s %s", indent, d.Date.Format("Mon Jan 02"), d.Routine.Name)
			if preview {
				if p := calendar.Preview(d.Routine); p != "" {
					line = fmt.Sprintf("%s %s", line, log.ColorGray.Sprintf("(%s)", p))
				}
			}
			fmt.Fprintf(w, "%s\n", line)
		}
	}

	if !scheduled {
		fmt.Fprintf(w, "%snothing scheduled this month\n", indent)
	}
}

// DayDetail prints the detail panel of a day
func DayDetail(w io.Writer, d calendar.Day) {
	detail, ok := calendar.DetailOf(d)
	if !ok {
		fmt.Fprintf(w, "%s%s: nothing scheduled\n", indent, d.Date.Format("Monday, January 2, 2006"))
		return
	}

	fmt.Fprintf(w, "%s%s: %s\n", indent, detail.Date.Format("Monday, January 2, 2006"), detail.Routine)
	if len(detail.Lines) == 0 {
		fmt.Fprintf(w, "%s%sno exercises\n", indent, indent)
		return
	}

	for _, l := range detail.Lines {
		fmt.Fprintf(w, "%s%s%s\n", indent, indent, l)
	}
}

// FieldDiff prints the change of a field being edited. Nothing is printed
// when the value is unchanged.
func FieldDiff(w io.Writer, field, before, after string) bool {
	diffs := diff.Do(before, after)
	if !diff.Changed(diffs) {
		return false
	}

	fmt.Fprintf(w, "%s%s:\n", indent, field)
	for _, d := range diffs {
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			switch d.Type {
			case diff.DiffInsert:
				fmt.Fprintf(w, "%s%s\n", indent+indent, log.ColorGreen.Sprintf("+ %s", line))
			case diff.DiffDelete:
				fmt.Fprintf(w, "%s%s\n", indent+indent, log.ColorRed.Sprintf("- %s", line))
			default:
				fmt.Fprintf(w, "%s  %s\n", indent+indent, line)
			}
		}
	}

	return true
}
