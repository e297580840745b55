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

package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

type createRoutinePayload struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	UserID      int    `json:"usuarioId"`
}

type updateRoutinePayload struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

// RoutineExerciseParams holds the per-routine targets of an exercise. Nil
// fields are omitted from the request.
type RoutineExerciseParams struct {
	Sets   *int     `json:"series,omitempty"`
	Reps   *int     `json:"repeticiones,omitempty"`
	Weight *float64 `json:"peso,omitempty"`
}

type createRoutineExercisePayload struct {
	RoutineID  int `json:"rutinaId"`
	ExerciseID int `json:"ejercicioId"`
	RoutineExerciseParams
}

// GetRoutines gets the routines of the user. The exercise links are not
// included; see GetRoutineExercises.
func (c *Client) GetRoutines(ctx context.Context) ([]Routine, error) {
	var resp []Routine
	if err := c.doAuthorizedReq(ctx, http.MethodGet, "/routines", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "fetching routines")
	}

	return resp, nil
}

// CreateRoutine creates a routine owned by the session user
func (c *Client) CreateRoutine(ctx context.Context, name, description string) (Routine, error) {
	payload := createRoutinePayload{
		Name:        name,
		Description: description,
		UserID:      c.session.UserID,
	}

	var resp Routine
	if err := c.doAuthorizedReq(ctx, http.MethodPost, "/routines", payload, &resp); err != nil {
		return Routine{}, errors.Wrap(err, "creating a routine")
	}

	return resp, nil
}

// UpdateRoutine updates the name and description of a routine
func (c *Client) UpdateRoutine(ctx context.Context, id int, name, description string) (Routine, error) {
	payload := updateRoutinePayload{
		Name:        name,
		Description: description,
	}

	var resp Routine
	endpoint := fmt.Sprintf("/routines/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodPut, endpoint, payload, &resp); err != nil {
		return Routine{}, errors.Wrapf(err, "updating routine %d", id)
	}

	return resp, nil
}

// DeleteRoutine deletes a routine
func (c *Client) DeleteRoutine(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("/routines/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting routine %d", id)
	}

	return nil
}

// GetRoutineExercises gets the exercise links of a routine in stored order
func (c *Client) GetRoutineExercises(ctx context.Context, routineID int) ([]RoutineExercise, error) {
	var resp []RoutineExercise
	endpoint := fmt.Sprintf("/routine-exercises/rutina/%d", routineID)
	if err := c.doAuthorizedReq(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrapf(err, "fetching exercises of routine %d", routineID)
	}

	return resp, nil
}

// CreateRoutineExercise links an exercise to a routine
func (c *Client) CreateRoutineExercise(ctx context.Context, routineID, exerciseID int, params RoutineExerciseParams) (RoutineExercise, error) {
	payload := createRoutineExercisePayload{
		RoutineID:             routineID,
		ExerciseID:            exerciseID,
		RoutineExerciseParams: params,
	}

	var resp RoutineExercise
	if err := c.doAuthorizedReq(ctx, http.MethodPost, "/routine-exercises", payload, &resp); err != nil {
		return RoutineExercise{}, errors.Wrap(err, "adding an exercise to the routine")
	}

	return resp, nil
}

// UpdateRoutineExercise updates the targets of an exercise link
func (c *Client) UpdateRoutineExercise(ctx context.Context, id int, params RoutineExerciseParams) (RoutineExercise, error) {
	var resp RoutineExercise
	endpoint := fmt.Sprintf("/routine-exercises/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodPut, endpoint, params, &resp); err != nil {
		return RoutineExercise{}, errors.Wrapf(err, "updating routine exercise %d", id)
	}

	return resp, nil
}

// DeleteRoutineExercise removes an exercise link from its routine
func (c *Client) DeleteRoutineExercise(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("/routine-exercises/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting routine exercise %d", id)
	}

	return nil
}
