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
	"github.com/fatih/color"
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/output"
	"github.com/gymplan/gymplan/pkg/cli/plans"
	"github.com/spf13/cobra"
)

func newLsCmd(ctx context.GymCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List routines and the weekly overview",
		Aliases: []string{"l", "list"},
		RunE:    newLsRun(ctx),
	}
}

func newLsRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		c := client.New(ctx)
		d, err := loadDashboard(cmd.Context(), c, 0)
		if err != nil {
			return err
		}

		output.Routines(color.Output, d.Routines, d.Selected)

		// the overview is secondary to the routine list
		week, err := plans.NewService(c, ctx.Session.UserID).Overview(cmd.Context())
		if err != nil {
			log.Warnf("could not load the weekly overview: %s\n", err.Error())
			return nil
		}

		output.WeekOverview(color.Output, week)

		return nil
	}
}
