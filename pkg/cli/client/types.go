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

// Exercise is an entry of the exercise library
type Exercise struct {
	ID          int    `json:"id"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
	Muscle      string `json:"musculo"`
}

// RoutineExercise links an exercise to a routine with per-routine targets
type RoutineExercise struct {
	ID       int      `json:"id"`
	Exercise Exercise `json:"ejercicio"`
	Sets     *int     `json:"series"`
	Reps     *int     `json:"repeticiones"`
	Weight   *float64 `json:"peso"`
}

// Routine is a named, user-owned collection of exercises
type Routine struct {
	ID          int               `json:"id"`
	Name        string            `json:"nombre"`
	Description string            `json:"descripcion"`
	UserID      int               `json:"usuarioId"`
	Exercises   []RoutineExercise `json:"ejercicios"`
}

// PlannedDay assigns one routine to one weekday within one weekly plan.
// Weekday is 1 for Monday through 7 for Sunday.
type PlannedDay struct {
	ID        int      `json:"id"`
	Name      string   `json:"nombre"`
	Weekday   int      `json:"diaSemana"`
	PlanID    int      `json:"planificacionId"`
	Routine   *Routine `json:"rutina"`
	Completed bool     `json:"completado"`
	Date      *string  `json:"fecha"`
}

// WeeklyPlan is a named, numbered container assigning at most one routine
// per weekday
type WeeklyPlan struct {
	ID     int          `json:"id"`
	Name   string       `json:"nombre"`
	Week   int          `json:"numero"`
	UserID int          `json:"usuarioId"`
	Days   []PlannedDay `json:"dias"`
	Active bool         `json:"activa"`
}
