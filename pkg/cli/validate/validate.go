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

// Package validate provides validators for user input
package validate

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrNameEmpty is an error for an empty name
var ErrNameEmpty = errors.New("The name is empty")

// ErrNameMultiline is an error for a name that has linebreaks
var ErrNameMultiline = errors.New("The name contains multiple lines")

// ErrWeekNumber is an error for a week number below 1
var ErrWeekNumber = errors.New("The week number must be at least 1")

// ErrWeekday is an error for a weekday outside of Monday (1) to Sunday (7)
var ErrWeekday = errors.New("The weekday must be between 1 (Monday) and 7 (Sunday)")

// ErrSets is an error for a non-positive number of sets
var ErrSets = errors.New("The number of sets must be at least 1")

// ErrReps is an error for a non-positive number of repetitions
var ErrReps = errors.New("The number of repetitions must be at least 1")

// ErrWeight is an error for a negative weight
var ErrWeight = errors.New("The weight cannot be negative")

// ErrEmailEmpty is an error for an empty email
var ErrEmailEmpty = errors.New("The email is empty")

// ErrPasswordEmpty is an error for an empty password
var ErrPasswordEmpty = errors.New("The password is empty")

// Name validates the name of an exercise, a routine or a weekly plan
func Name(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameEmpty
	}

	if strings.Contains(name, "\n") || strings.Contains(name, "\r") {
		return ErrNameMultiline
	}

	return nil
}

// WeekNumber validates the number of a weekly plan
func WeekNumber(n int) error {
	if n < 1 {
		return ErrWeekNumber
	}

	return nil
}

// Weekday validates an ISO weekday
func Weekday(n int) error {
	if n < 1 || n > 7 {
		return ErrWeekday
	}

	return nil
}

// Targets validates the optional sets, repetitions and weight of an
// exercise in a routine
func Targets(sets, reps *int, weight *float64) error {
	if sets != nil && *sets < 1 {
		return ErrSets
	}
	if reps != nil && *reps < 1 {
		return ErrReps
	}
	if weight != nil && *weight < 0 {
		return ErrWeight
	}

	return nil
}

// Credentials validates the email and password given for login
func Credentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return ErrEmailEmpty
	}
	if password == "" {
		return ErrPasswordEmpty
	}

	return nil
}
