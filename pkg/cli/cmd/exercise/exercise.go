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

// Package exercise implements the commands managing the exercise library
package exercise

import (
	"context"

	"github.com/fatih/color"
	"github.com/gymplan/gymplan/pkg/cli/client"
	gymctx "github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/output"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * List the exercise library
  gymplan exercise ls

  * Add an exercise
  gymplan exercise add -n "Bench Press" -m Chest

  * Edit an exercise
  gymplan exercise edit 12 -d "flat bench, full range of motion"

  * Remove an exercise
  gymplan exercise rm 12`

// NewCmd returns a new exercise command
func NewCmd(ctx gymctx.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "exercise",
		Short:   "Manage the exercise library",
		Aliases: []string{"ex", "exercises"},
		Example: example,
	}

	cmd.AddCommand(newLsCmd(ctx))
	cmd.AddCommand(newAddCmd(ctx))
	cmd.AddCommand(newEditCmd(ctx))
	cmd.AddCommand(newRemoveCmd(ctx))

	return cmd
}

func findExercise(exs []client.Exercise, id int) (client.Exercise, bool) {
	for _, e := range exs {
		if e.ID == id {
			return e, true
		}
	}

	return client.Exercise{}, false
}

// printLibrary refetches and prints the exercise library
func printLibrary(ctx context.Context, c *client.Client) error {
	exs, err := c.GetExercises(ctx)
	if err != nil {
		return errors.Wrap(err, "refreshing the exercise library")
	}

	output.Exercises(color.Output, exs)

	return nil
}
