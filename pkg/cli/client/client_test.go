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
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gymplan/gymplan/pkg/assert"
	gymctx "github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/session"
	"github.com/pkg/errors"
)

func newTestClient(endpoint string, s session.Session) *Client {
	return New(gymctx.GymCtx{
		APIEndpoint: endpoint,
		Version:     "test",
		Session:     s,
	})
}

var testSession = session.Session{Token: "tok", UserID: 7}

func TestDoAuthorizedReq_Headers(t *testing.T) {
	var gotAuth, gotVersion string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Gymplan-Version")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, testSession)
	if _, err := c.GetExercises(context.Background()); err != nil {
		t.Fatal(errors.Wrap(err, "getting exercises"))
	}

	assert.Equal(t, gotAuth, "Bearer tok", "authorization header mismatch")
	assert.Equal(t, gotVersion, "test", "version header mismatch")
}

func TestDoAuthorizedReq_NotLoggedIn(t *testing.T) {
	var called bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, session.Session{})
	_, err := c.GetRoutines(context.Background())

	assert.ErrorIs(t, err, session.ErrNotLoggedIn, "error mismatch")
	assert.Equal(t, called, false, "request should not be sent")
}

func TestCheckRespErr(t *testing.T) {
	testCases := []struct {
		status  int
		body    string
		message string
	}{
		{
			status:  http.StatusBadRequest,
			body:    `{"message":"nombre is required"}`,
			message: "nombre is required",
		},
		{
			status:  http.StatusInternalServerError,
			body:    `internal error`,
			message: DefaultErrorMessage,
		},
		{
			status:  http.StatusConflict,
			body:    `{"message":"  "}`,
			message: DefaultErrorMessage,
		},
		{
			status:  http.StatusNotFound,
			body:    ``,
			message: DefaultErrorMessage,
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("status %d body %s", tc.status, tc.body), func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			c := newTestClient(ts.URL, testSession)
			_, err := c.CreateExercise(context.Background(), ExercisePayload{Name: "Squat"})

			var apiErr *APIError
			if !errors.As(err, &apiErr) {
				t.Fatalf("expected an APIError, got %v", err)
			}

			assert.Equal(t, apiErr.StatusCode, tc.status, "status code mismatch")
			assert.Equal(t, apiErr.Message, tc.message, "message mismatch")
		})
	}
}

func TestContentTypeMismatch(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html></html>"))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, testSession)
	_, err := c.GetExercises(context.Background())

	assert.ErrorIs(t, err, ErrContentTypeMismatch, "error mismatch")
}

func TestLogin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got LoginPayload
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, r.URL.Path, "/login", "path mismatch")
			assert.Equal(t, r.Header.Get("Authorization"), "", "login should be unauthenticated")
			json.NewDecoder(r.Body).Decode(&got)

			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Write([]byte(`{"token":"abc","userId":3}`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL, session.Session{})
		resp, err := c.Login(context.Background(), "a@b.c", "pw")
		if err != nil {
			t.Fatal(errors.Wrap(err, "logging in"))
		}

		assert.Equal(t, got.Email, "a@b.c", "email mismatch")
		assert.Equal(t, got.Password, "pw", "password mismatch")
		assert.Equal(t, resp.Token, "abc", "token mismatch")
		assert.Equal(t, resp.UserID, 3, "user id mismatch")
	})

	t.Run("server message", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Invalid credentials"}`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL, session.Session{})
		_, err := c.Login(context.Background(), "a@b.c", "bad")

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected an APIError, got %v", err)
		}
		assert.Equal(t, apiErr.Message, "Invalid credentials", "message mismatch")
	})

	t.Run("bare unauthorized", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer ts.Close()

		c := newTestClient(ts.URL, session.Session{})
		_, err := c.Login(context.Background(), "a@b.c", "bad")

		assert.ErrorIs(t, err, ErrInvalidLogin, "error mismatch")
	})

	t.Run("no token", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		c := newTestClient(ts.URL, session.Session{})
		_, err := c.Login(context.Background(), "a@b.c", "pw")

		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestRequests(t *testing.T) {
	ptrInt := func(i int) *int { return &i }
	ptrFloat := func(f float64) *float64 { return &f }

	testCases := []struct {
		name   string
		call   func(c *Client) error
		method string
		path   string
		body   string
	}{
		{
			name: "update exercise",
			call: func(c *Client) error {
				_, err := c.UpdateExercise(context.Background(), 4, ExercisePayload{Name: "Squat", Description: "", Muscle: "Legs"})
				return err
			},
			method: http.MethodPut,
			path:   "/ejercicios/4",
			body:   `{"nombre":"Squat","descripcion":"","musculo":"Legs"}`,
		},
		{
			name:   "delete exercise",
			call:   func(c *Client) error { return c.DeleteExercise(context.Background(), 4) },
			method: http.MethodDelete,
			path:   "/ejercicios/4",
		},
		{
			name: "create routine",
			call: func(c *Client) error {
				_, err := c.CreateRoutine(context.Background(), "Push Day", "chest")
				return err
			},
			method: http.MethodPost,
			path:   "/routines",
			body:   `{"nombre":"Push Day","descripcion":"chest","usuarioId":7}`,
		},
		{
			name: "update routine",
			call: func(c *Client) error {
				_, err := c.UpdateRoutine(context.Background(), 5, "Pull Day", "")
				return err
			},
			method: http.MethodPut,
			path:   "/routines/5",
			body:   `{"nombre":"Pull Day","descripcion":""}`,
		},
		{
			name:   "delete routine",
			call:   func(c *Client) error { return c.DeleteRoutine(context.Background(), 5) },
			method: http.MethodDelete,
			path:   "/routines/5",
		},
		{
			name: "routine exercises",
			call: func(c *Client) error {
				_, err := c.GetRoutineExercises(context.Background(), 5)
				return err
			},
			method: http.MethodGet,
			path:   "/routine-exercises/rutina/5",
		},
		{
			name: "create routine exercise",
			call: func(c *Client) error {
				_, err := c.CreateRoutineExercise(context.Background(), 5, 2, RoutineExerciseParams{Sets: ptrInt(3), Reps: ptrInt(10), Weight: ptrFloat(62.5)})
				return err
			},
			method: http.MethodPost,
			path:   "/routine-exercises",
			body:   `{"rutinaId":5,"ejercicioId":2,"series":3,"repeticiones":10,"peso":62.5}`,
		},
		{
			name: "create routine exercise without weight",
			call: func(c *Client) error {
				_, err := c.CreateRoutineExercise(context.Background(), 5, 2, RoutineExerciseParams{Sets: ptrInt(3)})
				return err
			},
			method: http.MethodPost,
			path:   "/routine-exercises",
			body:   `{"rutinaId":5,"ejercicioId":2,"series":3}`,
		},
		{
			name: "update routine exercise",
			call: func(c *Client) error {
				_, err := c.UpdateRoutineExercise(context.Background(), 9, RoutineExerciseParams{Reps: ptrInt(8)})
				return err
			},
			method: http.MethodPut,
			path:   "/routine-exercises/9",
			body:   `{"repeticiones":8}`,
		},
		{
			name:   "delete routine exercise",
			call:   func(c *Client) error { return c.DeleteRoutineExercise(context.Background(), 9) },
			method: http.MethodDelete,
			path:   "/routine-exercises/9",
		},
		{
			name: "plans",
			call: func(c *Client) error {
				_, err := c.GetPlans(context.Background(), 7)
				return err
			},
			method: http.MethodGet,
			path:   "/planificaciones/usuario/7",
		},
		{
			name: "create plan",
			call: func(c *Client) error {
				_, err := c.CreatePlan(context.Background(), "Base", 1)
				return err
			},
			method: http.MethodPost,
			path:   "/planificaciones",
			body:   `{"nombre":"Base","numero":1,"usuarioId":7}`,
		},
		{
			name:   "activate plan",
			call:   func(c *Client) error { return c.ActivatePlan(context.Background(), 3) },
			method: http.MethodPost,
			path:   "/planificaciones/3/activate",
		},
		{
			name: "create planned day",
			call: func(c *Client) error {
				_, err := c.CreatePlannedDay(context.Background(), PlannedDayPayload{Name: "Wednesday - Push Day", Weekday: 3, PlanID: 3, RoutineID: 5})
				return err
			},
			method: http.MethodPost,
			path:   "/planificaciones/dias",
			body:   `{"nombre":"Wednesday - Push Day","diaSemana":3,"planificacionId":3,"rutinaId":5}`,
		},
		{
			name: "update planned day",
			call: func(c *Client) error {
				_, err := c.UpdatePlannedDay(context.Background(), 11, PlannedDayPayload{Name: "Friday - Legs", Weekday: 5, PlanID: 3, RoutineID: 6})
				return err
			},
			method: http.MethodPut,
			path:   "/planificaciones/dias/11",
			body:   `{"nombre":"Friday - Legs","diaSemana":5,"planificacionId":3,"rutinaId":6}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotMethod, gotPath, gotBody string

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				b, _ := io.ReadAll(r.Body)
				gotBody = string(b)

				if r.Method == http.MethodDelete {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				if r.Method == http.MethodGet {
					w.Header().Set("Content-Type", "application/json")
					w.Write([]byte("[]"))
					return
				}
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte("{}"))
			}))
			defer ts.Close()

			c := newTestClient(ts.URL+"/", testSession)
			if err := tc.call(c); err != nil {
				t.Fatal(errors.Wrap(err, "performing request"))
			}

			assert.Equal(t, gotMethod, tc.method, "method mismatch")
			assert.Equal(t, gotPath, tc.path, "path mismatch")
			if tc.body != "" {
				assert.Equal(t, gotBody, tc.body, "body mismatch")
			}
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":3,"nombre":"Base","numero":1,"usuarioId":7,"activa":true,"dias":[
			{"id":11,"nombre":"Wednesday - Push Day","diaSemana":3,"planificacionId":3,"completado":false,"fecha":null,
			 "rutina":{"id":5,"nombre":"Push Day","descripcion":null,"usuarioId":7}}
		]}]`))
	}))
	defer ts.Close()

	c := newTestClient(ts.URL, testSession)
	plans, err := c.GetPlans(context.Background(), 7)
	if err != nil {
		t.Fatal(errors.Wrap(err, "getting plans"))
	}

	assert.Equal(t, len(plans), 1, "plan count mismatch")
	assert.Equal(t, plans[0].Active, true, "active mismatch")
	assert.Equal(t, len(plans[0].Days), 1, "day count mismatch")

	day := plans[0].Days[0]
	assert.Equal(t, day.Weekday, 3, "weekday mismatch")
	assert.Equal(t, day.Routine.Name, "Push Day", "routine name mismatch")
	assert.Equal(t, day.Routine.Description, "", "routine description mismatch")
	assert.Equal(t, day.Date == nil, true, "date should be nil")
}

func TestRequestCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestClient(ts.URL, testSession)
	_, err := c.GetExercises(ctx)

	assert.ErrorIs(t, err, context.Canceled, "error mismatch")
}
