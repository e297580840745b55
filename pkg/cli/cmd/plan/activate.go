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
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func activatePreRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

func newActivateCmd(ctx context.GymCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "activate <plan id>",
		Short:   "Make a plan the active plan",
		PreRunE: activatePreRun,
		RunE:    newActivateRun(ctx),
	}
}

func newActivateRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		id, err := utils.ParseID(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid plan id")
		}

		if err := newService(ctx).Activate(cmd.Context(), id); err != nil {
			return err
		}

		log.Successf("activated plan %d\n", id)

		return nil
	}
}
