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

// Package plan implements the commands managing weekly plans
package plan

import (
	"strconv"
	"strings"
	"time"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/plans"
	"github.com/gymplan/gymplan/pkg/cli/validate"
	"github.com/spf13/cobra"
)

var example = `
  * List weekly plans
  gymplan plan ls

  * Create a plan for week 1
  gymplan plan add -n "Base block" -w 1

  * Assign routine 3 to Monday of plan 5
  gymplan plan assign 5 monday 3

  * Make plan 5 the active plan
  gymplan plan activate 5`

// NewCmd returns a new plan command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "plan",
		Short:   "Manage weekly plans",
		Aliases: []string{"p", "plans"},
		Example: example,
	}

	cmd.AddCommand(newLsCmd(ctx))
	cmd.AddCommand(newAddCmd(ctx))
	cmd.AddCommand(newAssignCmd(ctx))
	cmd.AddCommand(newActivateCmd(ctx))
	cmd.AddCommand(newOverviewCmd(ctx))

	return cmd
}

func newService(ctx context.GymCtx) *plans.Service {
	return plans.NewService(client.New(ctx), ctx.Session.UserID)
}

// parseWeekday parses an ISO weekday given either as a number from 1 to 7
// or as an English day name, full or abbreviated to three letters
func parseWeekday(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	if n, err := strconv.Atoi(s); err == nil {
		if err := validate.Weekday(n); err != nil {
			return 0, err
		}

		return n, nil
	}

	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) == 3 && strings.HasPrefix(name, s)) {
			if d == time.Sunday {
				return 7, nil
			}

			return int(d), nil
		}
	}

	return 0, validate.ErrWeekday
}
