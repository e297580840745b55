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

// Package routine implements the commands managing routines and the
// exercises linked to them
package routine

import (
	"context"

	"github.com/fatih/color"
	"github.com/gymplan/gymplan/pkg/cli/client"
	gymctx "github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/output"
	"github.com/gymplan/gymplan/pkg/cli/routines"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * List routines and the weekly overview of the active plan
  gymplan routine ls

  * Create a routine
  gymplan routine add -n "Push Day"

  * Link an exercise with its targets
  gymplan routine add-exercise 3 --exercise 12 --sets 4 --reps 8 --weight 80

  * Show a routine
  gymplan routine view 3`

// NewCmd returns a new routine command
func NewCmd(ctx gymctx.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "routine",
		Short:   "Manage routines",
		Aliases: []string{"r", "routines"},
		Example: example,
	}

	cmd.AddCommand(newLsCmd(ctx))
	cmd.AddCommand(newViewCmd(ctx))
	cmd.AddCommand(newAddCmd(ctx))
	cmd.AddCommand(newEditCmd(ctx))
	cmd.AddCommand(newRemoveCmd(ctx))
	cmd.AddCommand(newAddExerciseCmd(ctx))
	cmd.AddCommand(newEditExerciseCmd(ctx))
	cmd.AddCommand(newRemoveExerciseCmd(ctx))

	return cmd
}

// loadDashboard fetches every routine with its exercises and selects the
// routine with the given id, if positive
func loadDashboard(ctx context.Context, c *client.Client, selectID int) (*routines.Dashboard, error) {
	d := routines.NewDashboard(c)
	if err := d.Refresh(ctx, selectID); err != nil {
		return nil, errors.Wrap(err, "fetching routines")
	}

	return d, nil
}

// printSelected prints the detail of the selected routine of the dashboard
func printSelected(d *routines.Dashboard) error {
	r, ok := d.SelectedRoutine()
	if !ok {
		return errors.Errorf("routine %d not found", d.Selected)
	}

	output.RoutineDetail(color.Output, r)
	return nil
}

func findLink(r client.Routine, linkID int) (client.RoutineExercise, bool) {
	for _, re := range r.Exercises {
		if re.ID == linkID {
			return re, true
		}
	}

	return client.RoutineExercise{}, false
}

func argsPreRun(n int) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errors.New("Incorrect number of argument")
		}

		return nil
	}
}
