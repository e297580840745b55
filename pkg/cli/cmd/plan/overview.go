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
	"github.com/fatih/color"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/output"
	"github.com/spf13/cobra"
)

func newOverviewCmd(ctx context.GymCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "overview",
		Short:   "Show the week of the active plan",
		Aliases: []string{"o", "week"},
		RunE:    newOverviewRun(ctx),
	}
}

func newOverviewRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		week, err := newService(ctx).Overview(cmd.Context())
		if err != nil {
			return err
		}

		output.WeekOverview(color.Output, week)

		return nil
	}
}
