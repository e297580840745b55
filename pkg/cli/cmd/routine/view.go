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
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newViewCmd(ctx context.GymCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "view <routine id>",
		Short:   "Show a routine with its exercises",
		Aliases: []string{"v", "show"},
		PreRunE: argsPreRun(1),
		RunE:    newViewRun(ctx),
	}
}

func newViewRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		id, err := utils.ParseID(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid routine id")
		}

		d, err := loadDashboard(cmd.Context(), client.New(ctx), id)
		if err != nil {
			return err
		}

		return printSelected(d)
	}
}
