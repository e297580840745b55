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

package routine

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/output"
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var yesFlag bool

func newRemoveCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm <routine id>",
		Short:   "Remove a routine",
		Aliases: []string{"remove", "d"},
		PreRunE: argsPreRun(1),
		RunE:    newRemoveRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&yesFlag, "yes", "y", false, "Assume yes to the prompts and run in non-interactive mode")

	return cmd
}

// confirm asks the question unless the prompts are skipped
func confirm(question string, skip bool) (bool, error) {
	if skip {
		return true, nil
	}

	ok, err := ui.Confirm(question, false)
	if err != nil {
		return false, errors.Wrap(err, "getting confirmation")
	}
	if !ok {
		log.Warnf("aborted by user\n")
	}

	return ok, nil
}

func newRemoveRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		id, err := utils.ParseID(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid routine id")
		}

		c := client.New(ctx)
		d, err := loadDashboard(cmd.Context(), c, id)
		if err != nil {
			return err
		}
		r, ok := d.SelectedRoutine()
		if !ok {
			return errors.Errorf("routine %d not found", id)
		}

		ok, err = confirm(fmt.Sprintf("remove routine %s?", r.Name), yesFlag)
		if err != nil || !ok {
			return err
		}

		if err := c.DeleteRoutine(cmd.Context(), id); err != nil {
			return err
		}

		log.Successf("removed routine %s\n", r.Name)

		if err := d.Refresh(cmd.Context(), 0); err != nil {
			return errors.Wrap(err, "fetching routines")
		}
		output.Routines(color.Output, d.Routines, d.Selected)

		return nil
	}
}
