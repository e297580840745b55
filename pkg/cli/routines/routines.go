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

// Package routines loads the routines of a user together with their
// exercises and tracks the routine selected for detail display
package routines

import (
	"context"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// fetchConcurrency bounds the number of in-flight routine exercise requests
const fetchConcurrency = 4

// API is the subset of the gym API used to load routines
type API interface {
	GetRoutines(ctx context.Context) ([]client.Routine, error)
	GetRoutineExercises(ctx context.Context, routineID int) ([]client.RoutineExercise, error)
}

// fetchExercises gets the exercises of a routine. A failure is logged and
// yields an empty list so that one broken routine does not hide the others.
func fetchExercises(ctx context.Context, api API, routineID int) ([]client.RoutineExercise, error) {
	exs, err := api.GetRoutineExercises(ctx, routineID)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		log.Debug("fetching exercises of routine %d: %s\n", routineID, err.Error())
		return []client.RoutineExercise{}, nil
	}

	if exs == nil {
		exs = []client.RoutineExercise{}
	}

	return exs, nil
}

// FetchAll gets the routines of the user and then the exercises of every
// routine concurrently. The routines keep the server order.
func FetchAll(ctx context.Context, api API) ([]client.Routine, error) {
	rs, err := api.GetRoutines(ctx)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for i := range rs {
		i := i
		g.Go(func() error {
			exs, err := fetchExercises(gctx, api, rs[i].ID)
			if err != nil {
				return err
			}

			rs[i].Exercises = exs
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "fetching routine exercises")
	}

	return rs, nil
}

// Dashboard holds the routines of the user and the selected routine
type Dashboard struct {
	api API

	Routines []client.Routine
	// Selected is the id of the selected routine, or 0 for none
	Selected int
}

// NewDashboard returns an empty dashboard
func NewDashboard(api API) *Dashboard {
	return &Dashboard{api: api}
}

// Find returns the routine with the given id
func (d *Dashboard) Find(id int) (client.Routine, bool) {
	for _, r := range d.Routines {
		if r.ID == id {
			return r, true
		}
	}

	return client.Routine{}, false
}

// Select selects the routine with the given id. It returns false and clears
// the selection if no such routine is loaded.
func (d *Dashboard) Select(id int) bool {
	if _, ok := d.Find(id); !ok {
		d.Selected = 0
		return false
	}

	d.Selected = id
	return true
}

// SelectedRoutine returns the selected routine, if any
func (d *Dashboard) SelectedRoutine() (client.Routine, bool) {
	if d.Selected == 0 {
		return client.Routine{}, false
	}

	return d.Find(d.Selected)
}

// Refresh refetches every routine. A positive keepID selects that routine
// in the refreshed list; otherwise the current selection is kept. Either way
// the selection clears if the routine no longer exists.
func (d *Dashboard) Refresh(ctx context.Context, keepID int) error {
	rs, err := FetchAll(ctx, d.api)
	if err != nil {
		return err
	}

	d.Routines = rs

	want := d.Selected
	if keepID > 0 {
		want = keepID
	}
	if want > 0 {
		d.Select(want)
	}

	return nil
}

// RefreshRoutine refetches the exercises of one routine and replaces them in
// place
func (d *Dashboard) RefreshRoutine(ctx context.Context, id int) error {
	for i := range d.Routines {
		if d.Routines[i].ID != id {
			continue
		}

		exs, err := fetchExercises(ctx, d.api, id)
		if err != nil {
			return errors.Wrapf(err, "fetching exercises of routine %d", id)
		}

		d.Routines[i].Exercises = exs
		return nil
	}

	return errors.Errorf("routine %d is not loaded", id)
}
