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
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var nameFlag string
var weekFlag int

func newAddCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a weekly plan",
		Aliases: []string{"a", "new"},
		RunE:    newAddRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&nameFlag, "name", "n", "", "The name of the plan")
	f.IntVarP(&weekFlag, "week", "w", 1, "The week number of the plan")

	return cmd
}

func newAddRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		name := nameFlag
		if name == "" {
			if err := ui.PromptInput("name", &name); err != nil {
				return errors.Wrap(err, "getting name input")
			}
		}
		if err := validate.Name(name); err != nil {
			return errors.Wrap(err, "invalid plan name")
		}
		if err := validate.WeekNumber(weekFlag); err != nil {
			return err
		}

		p, err := newService(ctx).Create(cmd.Context(), name, weekFlag)
		if err != nil {
			return err
		}

		log.Successf("created plan %s for week %d (%d)\n", p.Name, p.Week, p.ID)

		return nil
	}
}
