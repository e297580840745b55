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

type createPlanPayload struct {
	Name   string `json:"nombre"`
	Week   int    `json:"numero"`
	UserID int    `json:"usuarioId"`
}

// PlannedDayPayload is a payload for creating or updating a planned day
type PlannedDayPayload struct {
	Name      string `json:"nombre"`
	Weekday   int    `json:"diaSemana"`
	PlanID    int    `json:"planificacionId"`
	RoutineID int    `json:"rutinaId"`
}

// GetPlans gets the weekly plans of the given user
func (c *Client) GetPlans(ctx context.Context, userID int) ([]WeeklyPlan, error) {
	var resp []WeeklyPlan
	endpoint := fmt.Sprintf("/planificaciones/usuario/%d", userID)
	if err := c.doAuthorizedReq(ctx, http.MethodGet, endpoint, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "fetching weekly plans")
	}

	return resp, nil
}

// CreatePlan creates a weekly plan for the session user
func (c *Client) CreatePlan(ctx context.Context, name string, week int) (WeeklyPlan, error) {
	payload := createPlanPayload{
		Name:   name,
		Week:   week,
		UserID: c.session.UserID,
	}

	var resp WeeklyPlan
	if err := c.doAuthorizedReq(ctx, http.MethodPost, "/planificaciones", payload, &resp); err != nil {
		return WeeklyPlan{}, errors.Wrap(err, "creating a weekly plan")
	}

	return resp, nil
}

// ActivatePlan marks a plan as the active one. The server clears the flag
// on every other plan of the user.
func (c *Client) ActivatePlan(ctx context.Context, id int) error {
	endpoint := fmt.Sprintf("/planificaciones/%d/activate", id)
	if err := c.doAuthorizedReq(ctx, http.MethodPost, endpoint, nil, nil); err != nil {
		return errors.Wrapf(err, "activating weekly plan %d", id)
	}

	return nil
}

// CreatePlannedDay assigns a routine to an unoccupied weekday of a plan
func (c *Client) CreatePlannedDay(ctx context.Context, payload PlannedDayPayload) (PlannedDay, error) {
	var resp PlannedDay
	if err := c.doAuthorizedReq(ctx, http.MethodPost, "/planificaciones/dias", payload, &resp); err != nil {
		return PlannedDay{}, errors.Wrap(err, "creating a planned day")
	}

	return resp, nil
}

// UpdatePlannedDay replaces the routine of an existing planned day
func (c *Client) UpdatePlannedDay(ctx context.Context, id int, payload PlannedDayPayload) (PlannedDay, error) {
	var resp PlannedDay
	endpoint := fmt.Sprintf("/planificaciones/dias/%d", id)
	if err := c.doAuthorizedReq(ctx, http.MethodPut, endpoint, payload, &resp); err != nil {
		return PlannedDay{}, errors.Wrapf(err, "updating planned day %d", id)
	}

	return resp, nil
}
