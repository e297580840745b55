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

// ExercisePayload is a payload for creating or updating an exercise
type ExercisePayload struct {
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Muscle      string `json:"musculo"`
}

// GetExercises gets the exercise library
func (c *Client) GetExercises(ctx context.Context) ([]Exercise, error) {
	var resp []Exercise
	if err := c.doAuthorizedReq(ctx, http.MethodGet, "/ejercicios", nil, &resp); err != nil {
		return nil, errors.Wrap(err, "fetching exercises")
	}

	return resp, nil
}

// CreateExercise creates an exercise in the library
func (c *Client) CreateExercise(ctx context.Context, payload ExercisePayload) (Exercise, error) {
	var resp Exercise
	if err := c.doAuthorizedReq(ctx, http.MethodPost, "/ejercicios", payload, &resp); err != nil {
		return Exercise{}, errors.Wrap(err, "creating an exercise")
	}

	return resp, nil
}

// UpdateExercise updates the exercise with the given id
func (c *Client) UpdateExercise(ctx context.Context, id int, payload ExercisePayload) (Exercise, error) {
	var resp Exercise
	endpoint := fmt.Sprintf("/ejercicios/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodPut, endpoint, payload, &resp); err != nil {
		return Exercise{}, errors.Wrapf(err, "updating exercise %d", id)
	}

	return resp, nil
}

// DeleteExercise deletes the exercise with the given id
func (c *Client) DeleteExercise(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("/ejercicios/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return errors.Wrapf(err, "deleting exercise %d", id)
	}

	return nil
}
