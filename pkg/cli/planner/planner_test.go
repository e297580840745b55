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

package planner

import (
	"context"
	"fmt"
	"testing"

	"github.com/gymplan/gymplan/pkg/assert"
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/pkg/errors"
)

type fakeAPI struct {
	created []client.PlannedDayPayload
	updated map[int]client.PlannedDayPayload
	err     error
}

func (f *fakeAPI) CreatePlannedDay(ctx context.Context, payload client.PlannedDayPayload) (client.PlannedDay, error) {
	if f.err != nil {
		return client.PlannedDay{}, f.err
	}

	f.created = append(f.created, payload)
	return client.PlannedDay{ID: 100 + len(f.created), Name: payload.Name, Weekday: payload.Weekday, PlanID: payload.PlanID}, nil
}

func (f *fakeAPI) UpdatePlannedDay(ctx context.Context, id int, payload client.PlannedDayPayload) (client.PlannedDay, error) {
	if f.err != nil {
		return client.PlannedDay{}, f.err
	}

	if f.updated == nil {
		f.updated = map[int]client.PlannedDayPayload{}
	}
	f.updated[id] = payload
	return client.PlannedDay{ID: id, Name: payload.Name, Weekday: payload.Weekday, PlanID: payload.PlanID}, nil
}

func TestSlotName(t *testing.T) {
	testCases := []struct {
		weekday  int
		routine  string
		expected string
	}{
		{weekday: 1, routine: "Legs", expected: "Monday - Legs"},
		{weekday: 3, routine: "Push Day", expected: "Wednesday - Push Day"},
		{weekday: 7, routine: "Rest", expected: "Sunday - Rest"},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("weekday %d", tc.weekday), func(t *testing.T) {
			assert.Equal(t, SlotName(tc.weekday, tc.routine), tc.expected, "slot name mismatch")
		})
	}
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, WeekdayName(0), "", "weekday 0 mismatch")
	assert.Equal(t, WeekdayName(6), "Saturday", "weekday 6 mismatch")
	assert.Equal(t, WeekdayName(8), "", "weekday 8 mismatch")
}

func TestStateOf(t *testing.T) {
	full := client.WeeklyPlan{}
	for i := 1; i <= 7; i++ {
		full.Days = append(full.Days, client.PlannedDay{ID: i, Weekday: i})
	}

	assert.Equal(t, StateOf(client.WeeklyPlan{}), Unassigned, "empty plan state mismatch")
	assert.Equal(t, StateOf(client.WeeklyPlan{Days: []client.PlannedDay{{ID: 1, Weekday: 2}}}), Partial, "partial plan state mismatch")
	assert.Equal(t, StateOf(full), Complete, "full plan state mismatch")
}

func TestAssign(t *testing.T) {
	routine := client.Routine{ID: 9, Name: "Push Day"}

	t.Run("unoccupied weekday", func(t *testing.T) {
		api := &fakeAPI{}
		plan := client.WeeklyPlan{ID: 3, Days: []client.PlannedDay{{ID: 11, Weekday: 1}}}

		day, err := Assign(context.Background(), api, plan, 3, routine)
		if err != nil {
			t.Fatal(errors.Wrap(err, "assigning"))
		}

		assert.Equal(t, len(api.created), 1, "created count mismatch")
		assert.Equal(t, len(api.updated), 0, "updated count mismatch")
		assert.Equal(t, api.created[0], client.PlannedDayPayload{Name: "Wednesday - Push Day", Weekday: 3, PlanID: 3, RoutineID: 9}, "payload mismatch")
		assert.Equal(t, day.Weekday, 3, "weekday mismatch")
	})

	t.Run("occupied weekday", func(t *testing.T) {
		api := &fakeAPI{}
		plan := client.WeeklyPlan{ID: 3, Days: []client.PlannedDay{
			{ID: 11, Weekday: 1},
			{ID: 12, Weekday: 3},
			{ID: 13, Weekday: 3},
		}}

		day, err := Assign(context.Background(), api, plan, 3, routine)
		if err != nil {
			t.Fatal(errors.Wrap(err, "assigning"))
		}

		assert.Equal(t, len(api.created), 0, "created count mismatch")
		assert.Equal(t, len(api.updated), 1, "updated count mismatch")
		assert.Equal(t, api.updated[12].RoutineID, 9, "routine id mismatch")
		assert.Equal(t, day.ID, 12, "slot id should be kept")
	})

	t.Run("invalid weekday", func(t *testing.T) {
		api := &fakeAPI{}

		for _, weekday := range []int{0, 8, -1} {
			_, err := Assign(context.Background(), api, client.WeeklyPlan{ID: 3}, weekday, routine)
			assert.ErrorIs(t, err, ErrInvalidWeekday, fmt.Sprintf("error mismatch for %d", weekday))
		}

		assert.Equal(t, len(api.created), 0, "nothing should be created")
	})

	t.Run("api error", func(t *testing.T) {
		api := &fakeAPI{err: errors.New("boom")}

		_, err := Assign(context.Background(), api, client.WeeklyPlan{ID: 3}, 2, routine)
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}
