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

// Package planner assigns routines to the weekdays of a weekly plan
package planner

import (
	"context"
	"fmt"
	"time"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/pkg/errors"
)

// ErrInvalidWeekday is an error for a weekday outside of 1 (Monday) to 7 (Sunday)
var ErrInvalidWeekday = errors.New("weekday must be between 1 (Monday) and 7 (Sunday)")

// API is the subset of the gym API used to write planned days
type API interface {
	CreatePlannedDay(ctx context.Context, payload client.PlannedDayPayload) (client.PlannedDay, error)
	UpdatePlannedDay(ctx context.Context, id int, payload client.PlannedDayPayload) (client.PlannedDay, error)
}

// State is the assignment state of a weekly plan
type State int

const (
	// Unassigned is a plan without any planned day
	Unassigned State = iota
	// Partial is a plan with some weekdays unassigned
	Partial
	// Complete is a plan with every weekday assigned
	Complete
)

func (s State) String() string {
	switch s {
	case Unassigned:
		return "unassigned"
	case Partial:
		return "partial"
	case Complete:
		return "complete"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// ValidWeekday returns true if the given weekday is in [1, 7]
func ValidWeekday(weekday int) bool {
	return weekday >= 1 && weekday <= 7
}

// WeekdayName returns the English name of the given ISO weekday
func WeekdayName(weekday int) string {
	if !ValidWeekday(weekday) {
		return ""
	}

	// time.Weekday counts from Sunday=0
	return time.Weekday(weekday % 7).String()
}

// SlotName returns the name of the planned day that assigns the given
// routine to the given weekday, e.g. "Wednesday - Push Day"
func SlotName(weekday int, routineName string) string {
	return fmt.Sprintf("%s - %s", WeekdayName(weekday), routineName)
}

// Lookup finds the planned day for the given weekday by a linear scan of the
// plan's days. The first match wins.
func Lookup(plan client.WeeklyPlan, weekday int) (client.PlannedDay, bool) {
	for _, d := range plan.Days {
		if d.Weekday == weekday {
			return d, true
		}
	}

	return client.PlannedDay{}, false
}

// StateOf returns the assignment state of the given plan
func StateOf(plan client.WeeklyPlan) State {
	var assigned int
	for weekday := 1; weekday <= 7; weekday++ {
		if _, ok := Lookup(plan, weekday); ok {
			assigned++
		}
	}

	switch assigned {
	case 0:
		return Unassigned
	case 7:
		return Complete
	}

	return Partial
}

// Assign assigns the routine to the weekday of the plan. An existing planned
// day for the weekday is updated in place and keeps its id; a new planned
// day is created only when the weekday is unoccupied.
func Assign(ctx context.Context, api API, plan client.WeeklyPlan, weekday int, routine client.Routine) (client.PlannedDay, error) {
	if !ValidWeekday(weekday) {
		return client.PlannedDay{}, errors.Wrapf(ErrInvalidWeekday, "got %d", weekday)
	}

	payload := client.PlannedDayPayload{
		Name:      SlotName(weekday, routine.Name),
		Weekday:   weekday,
		PlanID:    plan.ID,
		RoutineID: routine.ID,
	}

	if existing, ok := Lookup(plan, weekday); ok {
		day, err := api.UpdatePlannedDay(ctx, existing.ID, payload)
		if err != nil {
			return client.PlannedDay{}, err
		}

		return day, nil
	}

	day, err := api.CreatePlannedDay(ctx, payload)
	if err != nil {
		return client.PlannedDay{}, err
	}

	return day, nil
}
