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

package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/gymplan/gymplan/pkg/cli/client"
	gymctx "github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/session"
)

// Credentials accepted by the fake server
const (
	TestEmail    = "alice@example.com"
	TestPassword = "pass1234"
	TestUserID   = 7
)

// MakeToken returns a signed bearer token whose payload carries the given
// user id under the userId claim
func MakeToken(t *testing.T, userID int) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
	})

	signed, err := token.SignedString([]byte("gymplan-test-secret"))
	if err != nil {
		t.Fatalf("signing token: %s", err.Error())
	}

	return signed
}

// Server is an in-memory fake of the gym API
type Server struct {
	*httptest.Server

	mu sync.Mutex

	Token  string
	UserID int

	Exercises []client.Exercise
	Routines  []client.Routine
	Plans     []client.WeeklyPlan

	// Requests records "METHOD path" for every request received
	Requests []string
	// Fail maps "METHOD path" to a status code the server responds with
	Fail map[string]int

	nextID int
}

// NewServer starts a fake gym API that is closed when the test finishes
func NewServer(t *testing.T) *Server {
	s := &Server{
		Token:  MakeToken(t, TestUserID),
		UserID: TestUserID,
		Fail:   map[string]int{},
		nextID: 100,
	}

	r := mux.NewRouter()
	r.Use(s.record)

	r.HandleFunc("/login", s.login).Methods(http.MethodPost)

	r.HandleFunc("/ejercicios", s.auth(s.getExercises)).Methods(http.MethodGet)
	r.HandleFunc("/ejercicios", s.auth(s.createExercise)).Methods(http.MethodPost)
	r.HandleFunc("/ejercicios/{id}", s.auth(s.updateExercise)).Methods(http.MethodPut)
	r.HandleFunc("/ejercicios/{id}", s.auth(s.deleteExercise)).Methods(http.MethodDelete)

	r.HandleFunc("/routines", s.auth(s.getRoutines)).Methods(http.MethodGet)
	r.HandleFunc("/routines", s.auth(s.createRoutine)).Methods(http.MethodPost)
	r.HandleFunc("/routines/{id}", s.auth(s.updateRoutine)).Methods(http.MethodPut)
	r.HandleFunc("/routines/{id}", s.auth(s.deleteRoutine)).Methods(http.MethodDelete)

	r.HandleFunc("/routine-exercises/rutina/{id}", s.auth(s.getRoutineExercises)).Methods(http.MethodGet)
	r.HandleFunc("/routine-exercises", s.auth(s.createRoutineExercise)).Methods(http.MethodPost)
	r.HandleFunc("/routine-exercises/{id}", s.auth(s.updateRoutineExercise)).Methods(http.MethodPut)
	r.HandleFunc("/routine-exercises/{id}", s.auth(s.deleteRoutineExercise)).Methods(http.MethodDelete)

	r.HandleFunc("/planificaciones/usuario/{id}", s.auth(s.getPlans)).Methods(http.MethodGet)
	r.HandleFunc("/planificaciones", s.auth(s.createPlan)).Methods(http.MethodPost)
	r.HandleFunc("/planificaciones/dias", s.auth(s.createPlannedDay)).Methods(http.MethodPost)
	r.HandleFunc("/planificaciones/dias/{id}", s.auth(s.updatePlannedDay)).Methods(http.MethodPut)
	r.HandleFunc("/planificaciones/{id}/activate", s.auth(s.activatePlan)).Methods(http.MethodPost)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)

	return s
}

// Login points the given context at the server with a session of the test user
func Login(t *testing.T, ctx *gymctx.GymCtx, s *Server) {
	ctx.APIEndpoint = s.URL
	ctx.Session = session.Session{
		Token:  s.Token,
		UserID: s.UserID,
	}
}

// FailOn makes the server respond to "METHOD path" with the given status code
func (s *Server) FailOn(request string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Fail[request] = code
}

// Count returns the number of recorded requests matching "METHOD path"
func (s *Server) Count(request string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, r := range s.Requests {
		if r == request {
			n++
		}
	}

	return n
}

// AddExercise stores an exercise and returns it with its id
func (s *Server) AddExercise(name, description, muscle string) client.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	e := client.Exercise{ID: s.newID(), Name: name, Description: description, Muscle: muscle}
	s.Exercises = append(s.Exercises, e)

	return e
}

// AddRoutine stores a routine of the test user and returns it with its id
func (s *Server) AddRoutine(name, description string) client.Routine {
	s.mu.Lock()
	defer s.mu.Unlock()

	r := client.Routine{ID: s.newID(), Name: name, Description: description, UserID: s.UserID}
	s.Routines = append(s.Routines, r)

	return r
}

// Link links an exercise to a routine and returns the link
func (s *Server) Link(routineID int, e client.Exercise, sets, reps int, weight float64) client.RoutineExercise {
	s.mu.Lock()
	defer s.mu.Unlock()

	re := client.RoutineExercise{ID: s.newID(), Exercise: e, Sets: &sets, Reps: &reps, Weight: &weight}
	for i := range s.Routines {
		if s.Routines[i].ID == routineID {
			s.Routines[i].Exercises = append(s.Routines[i].Exercises, re)
		}
	}

	return re
}

// AddPlan stores a weekly plan of the test user and returns it with its id
func (s *Server) AddPlan(name string, week int, active bool) client.WeeklyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := client.WeeklyPlan{ID: s.newID(), Name: name, Week: week, UserID: s.UserID, Active: active}
	s.Plans = append(s.Plans, p)

	return p
}

// AddDay assigns a routine to a weekday of a plan and returns the day
func (s *Server) AddDay(planID, weekday int, r client.Routine) client.PlannedDay {
	s.mu.Lock()
	defer s.mu.Unlock()

	r.Exercises = nil
	d := client.PlannedDay{
		ID:      s.newID(),
		Name:    r.Name,
		Weekday: weekday,
		PlanID:  planID,
		Routine: &r,
	}
	for i := range s.Plans {
		if s.Plans[i].ID == planID {
			s.Plans[i].Days = append(s.Plans[i].Days, d)
		}
	}

	return d
}

// Plan returns the stored plan with the given id
func (s *Server) Plan(id int) (client.WeeklyPlan, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.Plans {
		if p.ID == id {
			return p, true
		}
	}

	return client.WeeklyPlan{}, false
}

// Routine returns the stored routine with the given id
func (s *Server) Routine(id int) (client.Routine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.Routines {
		if r.ID == id {
			return r, true
		}
	}

	return client.Routine{}, false
}

// ExerciseNamed returns the stored exercise with the given name
func (s *Server) ExerciseNamed(name string) (client.Exercise, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.Exercises {
		if e.Name == name {
			return e, true
		}
	}

	return client.Exercise{}, false
}

// RoutineNamed returns the stored routine with the given name
func (s *Server) RoutineNamed(name string) (client.Routine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range s.Routines {
		if r.Name == name {
			return r, true
		}
	}

	return client.Routine{}, false
}

func (s *Server) newID() int {
	s.nextID++
	return s.nextID
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := fmt.Sprintf("%s %s", r.Method, r.URL.Path)

		s.mu.Lock()
		s.Requests = append(s.Requests, key)
		code, fail := s.Fail[key]
		s.mu.Unlock()

		if fail {
			respondError(w, code, fmt.Sprintf("forced failure of %s", key))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.Token {
			respondError(w, http.StatusUnauthorized, "unauthorized")
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		h(w, r)
	}
}

func respondJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, code int, message string) {
	respondJSON(w, code, map[string]string{"message": message})
}

func pathID(r *http.Request) int {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	return id
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "malformed body")
		return false
	}

	return true
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var p client.LoginPayload
	if !decode(w, r, &p) {
		return
	}

	if p.Email != TestEmail || p.Password != TestPassword {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, client.LoginResponse{Token: s.Token, UserID: s.UserID})
}

func (s *Server) getExercises(w http.ResponseWriter, r *http.Request) {
	ret := []client.Exercise{}
	ret = append(ret, s.Exercises...)
	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) createExercise(w http.ResponseWriter, r *http.Request) {
	var p client.ExercisePayload
	if !decode(w, r, &p) {
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		respondError(w, http.StatusBadRequest, "nombre is required")
		return
	}

	e := client.Exercise{ID: s.newID(), Name: p.Name, Description: p.Description, Muscle: p.Muscle}
	s.Exercises = append(s.Exercises, e)

	respondJSON(w, http.StatusCreated, e)
}

func (s *Server) updateExercise(w http.ResponseWriter, r *http.Request) {
	var p client.ExercisePayload
	if !decode(w, r, &p) {
		return
	}

	id := pathID(r)
	for i, e := range s.Exercises {
		if e.ID == id {
			s.Exercises[i] = client.Exercise{ID: id, Name: p.Name, Description: p.Description, Muscle: p.Muscle}
			respondJSON(w, http.StatusOK, s.Exercises[i])
			return
		}
	}

	respondError(w, http.StatusNotFound, "exercise not found")
}

func (s *Server) deleteExercise(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	for i, e := range s.Exercises {
		if e.ID == id {
			s.Exercises = append(s.Exercises[:i], s.Exercises[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	respondError(w, http.StatusNotFound, "exercise not found")
}

func (s *Server) getRoutines(w http.ResponseWriter, r *http.Request) {
	ret := []client.Routine{}
	for _, rt := range s.Routines {
		if rt.UserID == s.UserID {
			rt.Exercises = nil
			ret = append(ret, rt)
		}
	}

	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) createRoutine(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Name        string `json:"nombre"`
		Description string `json:"descripcion"`
		UserID      int    `json:"usuarioId"`
	}
	if !decode(w, r, &p) {
		return
	}
	if strings.TrimSpace(p.Name) == "" {
		respondError(w, http.StatusBadRequest, "nombre is required")
		return
	}

	rt := client.Routine{ID: s.newID(), Name: p.Name, Description: p.Description, UserID: p.UserID}
	s.Routines = append(s.Routines, rt)

	respondJSON(w, http.StatusCreated, rt)
}

func (s *Server) updateRoutine(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Name        string `json:"nombre"`
		Description string `json:"descripcion"`
	}
	if !decode(w, r, &p) {
		return
	}

	id := pathID(r)
	for i, rt := range s.Routines {
		if rt.ID == id {
			s.Routines[i].Name = p.Name
			s.Routines[i].Description = p.Description
			respondJSON(w, http.StatusOK, s.Routines[i])
			return
		}
	}

	respondError(w, http.StatusNotFound, "routine not found")
}

func (s *Server) deleteRoutine(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	for i, rt := range s.Routines {
		if rt.ID == id {
			s.Routines = append(s.Routines[:i], s.Routines[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}

	respondError(w, http.StatusNotFound, "routine not found")
}

func (s *Server) getRoutineExercises(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	for _, rt := range s.Routines {
		if rt.ID == id {
			ret := []client.RoutineExercise{}
			ret = append(ret, rt.Exercises...)
			respondJSON(w, http.StatusOK, ret)
			return
		}
	}

	respondError(w, http.StatusNotFound, "routine not found")
}

func (s *Server) findExercise(id int) (client.Exercise, bool) {
	for _, e := range s.Exercises {
		if e.ID == id {
			return e, true
		}
	}

	return client.Exercise{}, false
}

func (s *Server) createRoutineExercise(w http.ResponseWriter, r *http.Request) {
	var p struct {
		RoutineID  int `json:"rutinaId"`
		ExerciseID int `json:"ejercicioId"`
		client.RoutineExerciseParams
	}
	if !decode(w, r, &p) {
		return
	}

	e, ok := s.findExercise(p.ExerciseID)
	if !ok {
		respondError(w, http.StatusBadRequest, "exercise not found")
		return
	}

	for i, rt := range s.Routines {
		if rt.ID == p.RoutineID {
			re := client.RoutineExercise{ID: s.newID(), Exercise: e, Sets: p.Sets, Reps: p.Reps, Weight: p.Weight}
			s.Routines[i].Exercises = append(s.Routines[i].Exercises, re)
			respondJSON(w, http.StatusCreated, re)
			return
		}
	}

	respondError(w, http.StatusBadRequest, "routine not found")
}

func (s *Server) updateRoutineExercise(w http.ResponseWriter, r *http.Request) {
	var p client.RoutineExerciseParams
	if !decode(w, r, &p) {
		return
	}

	id := pathID(r)
	for i := range s.Routines {
		for j, re := range s.Routines[i].Exercises {
			if re.ID == id {
				re.Sets, re.Reps, re.Weight = p.Sets, p.Reps, p.Weight
				s.Routines[i].Exercises[j] = re
				respondJSON(w, http.StatusOK, re)
				return
			}
		}
	}

	respondError(w, http.StatusNotFound, "routine exercise not found")
}

func (s *Server) deleteRoutineExercise(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)
	for i := range s.Routines {
		for j, re := range s.Routines[i].Exercises {
			if re.ID == id {
				exs := s.Routines[i].Exercises
				s.Routines[i].Exercises = append(exs[:j], exs[j+1:]...)
				w.WriteHeader(http.StatusNoContent)
				return
			}
		}
	}

	respondError(w, http.StatusNotFound, "routine exercise not found")
}

func (s *Server) getPlans(w http.ResponseWriter, r *http.Request) {
	userID := pathID(r)

	ret := []client.WeeklyPlan{}
	for _, p := range s.Plans {
		if p.UserID == userID {
			days := make([]client.PlannedDay, len(p.Days))
			copy(days, p.Days)
			sort.Slice(days, func(i, j int) bool { return days[i].Weekday < days[j].Weekday })
			p.Days = days
			ret = append(ret, p)
		}
	}

	respondJSON(w, http.StatusOK, ret)
}

func (s *Server) createPlan(w http.ResponseWriter, r *http.Request) {
	var p struct {
		Name   string `json:"nombre"`
		Week   int    `json:"numero"`
		UserID int    `json:"usuarioId"`
	}
	if !decode(w, r, &p) {
		return
	}

	plan := client.WeeklyPlan{ID: s.newID(), Name: p.Name, Week: p.Week, UserID: p.UserID}
	s.Plans = append(s.Plans, plan)

	respondJSON(w, http.StatusCreated, plan)
}

func (s *Server) activatePlan(w http.ResponseWriter, r *http.Request) {
	id := pathID(r)

	found := false
	for _, p := range s.Plans {
		if p.ID == id {
			found = true
		}
	}
	if !found {
		respondError(w, http.StatusNotFound, "plan not found")
		return
	}

	for i := range s.Plans {
		if s.Plans[i].UserID == s.UserID {
			s.Plans[i].Active = s.Plans[i].ID == id
		}
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) findRoutine(id int) (client.Routine, bool) {
	for _, rt := range s.Routines {
		if rt.ID == id {
			rt.Exercises = nil
			return rt, true
		}
	}

	return client.Routine{}, false
}

func (s *Server) createPlannedDay(w http.ResponseWriter, r *http.Request) {
	var p client.PlannedDayPayload
	if !decode(w, r, &p) {
		return
	}

	rt, ok := s.findRoutine(p.RoutineID)
	if !ok {
		respondError(w, http.StatusBadRequest, "routine not found")
		return
	}

	for i := range s.Plans {
		if s.Plans[i].ID != p.PlanID {
			continue
		}

		for _, d := range s.Plans[i].Days {
			if d.Weekday == p.Weekday {
				respondError(w, http.StatusConflict, "day already planned")
				return
			}
		}

		d := client.PlannedDay{ID: s.newID(), Name: p.Name, Weekday: p.Weekday, PlanID: p.PlanID, Routine: &rt}
		s.Plans[i].Days = append(s.Plans[i].Days, d)
		respondJSON(w, http.StatusCreated, d)
		return
	}

	respondError(w, http.StatusBadRequest, "plan not found")
}

func (s *Server) updatePlannedDay(w http.ResponseWriter, r *http.Request) {
	var p client.PlannedDayPayload
	if !decode(w, r, &p) {
		return
	}

	rt, ok := s.findRoutine(p.RoutineID)
	if !ok {
		respondError(w, http.StatusBadRequest, "routine not found")
		return
	}

	id := pathID(r)
	for i := range s.Plans {
		for j, d := range s.Plans[i].Days {
			if d.ID == id {
				d.Name, d.Weekday, d.Routine = p.Name, p.Weekday, &rt
				s.Plans[i].Days[j] = d
				respondJSON(w, http.StatusOK, d)
				return
			}
		}
	}

	respondError(w, http.StatusNotFound, "planned day not found")
}
