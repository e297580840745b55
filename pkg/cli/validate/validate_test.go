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

package validate

import (
	"fmt"
	"testing"

	"github.com/gymplan/gymplan/pkg/assert"
)

func TestName(t *testing.T) {
	testCases := []struct {
		input    string
		expected error
	}{
		{
			input:    "Push Day",
			expected: nil,
		},
		{
			input:    "123",
			expected: nil,
		},
		{
			input:    "",
			expected: ErrNameEmpty,
		},
		{
			input:    "   ",
			expected: ErrNameEmpty,
		},
		{
			input:    "push\nday",
			expected: ErrNameMultiline,
		},
		{
			input:    "push\r\nday",
			expected: ErrNameMultiline,
		},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("for input %q", tc.input), func(t *testing.T) {
			assert.Equal(t, Name(tc.input), tc.expected, "result mismatch")
		})
	}
}

func TestWeekNumber(t *testing.T) {
	assert.Equal(t, WeekNumber(1), nil, "week 1 mismatch")
	assert.Equal(t, WeekNumber(52), nil, "week 52 mismatch")
	assert.Equal(t, WeekNumber(0), ErrWeekNumber, "week 0 mismatch")
	assert.Equal(t, WeekNumber(-3), ErrWeekNumber, "week -3 mismatch")
}

func TestWeekday(t *testing.T) {
	for i := 1; i <= 7; i++ {
		assert.Equal(t, Weekday(i), nil, fmt.Sprintf("weekday %d mismatch", i))
	}

	assert.Equal(t, Weekday(0), ErrWeekday, "weekday 0 mismatch")
	assert.Equal(t, Weekday(8), ErrWeekday, "weekday 8 mismatch")
}

func TestTargets(t *testing.T) {
	intp := func(i int) *int { return &i }
	floatp := func(f float64) *float64 { return &f }

	testCases := []struct {
		name     string
		sets     *int
		reps     *int
		weight   *float64
		expected error
	}{
		{name: "none", expected: nil},
		{name: "all", sets: intp(4), reps: intp(8), weight: floatp(80), expected: nil},
		{name: "zero weight", weight: floatp(0), expected: nil},
		{name: "zero sets", sets: intp(0), expected: ErrSets},
		{name: "zero reps", reps: intp(0), expected: ErrReps},
		{name: "negative weight", weight: floatp(-2.5), expected: ErrWeight},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, Targets(tc.sets, tc.reps, tc.weight), tc.expected, "result mismatch")
		})
	}
}

func TestCredentials(t *testing.T) {
	assert.Equal(t, Credentials("alice@example.com", "pw"), nil, "valid credentials mismatch")
	assert.Equal(t, Credentials(" ", "pw"), ErrEmailEmpty, "empty email mismatch")
	assert.Equal(t, Credentials("alice@example.com", ""), ErrPasswordEmpty, "empty password mismatch")
}
