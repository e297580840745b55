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

package plan

import (
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/plans"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func assignPreRun(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

func newAssignCmd(ctx context.GymCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "assign <plan id> <weekday> <routine id>",
		Short:   "Assign a routine to a weekday of a plan",
		Example: "  gymplan plan assign 5 wed 3\n  gymplan plan assign 5 7 4",
		PreRunE: assignPreRun,
		RunE:    newAssignRun(ctx),
	}
}

func findRoutine(rs []client.Routine, id int) (client.Routine, bool) {
	for _, r := range rs {
		if r.ID == id {
			return r, true
		}
	}

	return client.Routine{}, false
}

func newAssignRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		planID, err := utils.ParseID(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid plan id")
		}
		weekday, err := parseWeekday(args[1])
		if err != nil {
			return errors.Wrapf(err, "invalid weekday '%s'", args[1])
		}
		routineID, err := utils.ParseID(args[2])
		if err != nil {
			return errors.Wrap(err, "invalid routine id")
		}

		c := client.New(ctx)
		rs, err := c.GetRoutines(cmd.Context())
		if err != nil {
			return err
		}
		r, ok := findRoutine(rs, routineID)
		if !ok {
			return errors.Errorf("routine %d not found", routineID)
		}

		svc := plans.NewService(c, ctx.Session.UserID)
		day, err := svc.Assign(cmd.Context(), planID, weekday, r)
		if err != nil {
			return err
		}

		log.Successf("assigned %s\n", day.Name)

		return nil
	}
}
