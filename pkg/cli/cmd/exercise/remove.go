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

package exercise

import (
	"fmt"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var yesFlag bool

func removePreRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

func newRemoveCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <exercise id>",
		Short:   "Remove an exercise from the library",
		Aliases: []string{"remove", "d"},
		PreRunE: removePreRun,
		RunE:    newRemoveRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&yesFlag, "yes", "y", false, "Assume yes to the prompts and run in non-interactive mode")

	return cmd
}

func newRemoveRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		id, err := utils.ParseID(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid exercise id")
		}

		c := client.New(ctx)
		exs, err := c.GetExercises(cmd.Context())
		if err != nil {
			return err
		}
		e, ok := findExercise(exs, id)
		if !ok {
			return errors.Errorf("exercise %d not found", id)
		}

		if !yesFlag {
			ok, err := ui.Confirm(fmt.Sprintf("remove exercise %s?", e.Name), false)
			if err != nil {
				return errors.Wrap(err, "getting confirmation")
			}
			if !ok {
				log.Warnf("aborted by user\n")
				return nil
			}
		}

		if err := c.DeleteExercise(cmd.Context(), id); err != nil {
			return err
		}

		log.Successf("removed exercise %s\n", e.Name)

		return printLibrary(cmd.Context(), c)
	}
}
