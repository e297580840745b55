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
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var nameFlag string
var descriptionFlag string
var editorFlag bool

func newAddCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Create a routine",
		Aliases: []string{"a", "new"},
		RunE:    newAddRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&nameFlag, "name", "n", "", "The name of the routine")
	f.StringVarP(&descriptionFlag, "description", "d", "", "The description of the routine")
	f.BoolVarP(&editorFlag, "editor", "e", false, "Write the description in the editor")

	return cmd
}

func getAddInput(ctx context.GymCtx) (string, string, error) {
	name := nameFlag
	if name == "" {
		if err := ui.PromptInput("name", &name); err != nil {
			return "", "", errors.Wrap(err, "getting name input")
		}
	}

	desc := descriptionFlag
	if editorFlag {
		var err error
		desc, err = ui.GetEditorInput(ctx, desc)
		if err != nil {
			return "", "", errors.Wrap(err, "getting editor input")
		}
	}

	return name, desc, nil
}

func newAddRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		name, desc, err := getAddInput(ctx)
		if err != nil {
			return err
		}
		if err := validate.Name(name); err != nil {
			return errors.Wrap(err, "invalid routine name")
		}

		c := client.New(ctx)
		r, err := c.CreateRoutine(cmd.Context(), name, desc)
		if err != nil {
			return err
		}

		log.Successf("created routine %s (%d)\n", r.Name, r.ID)

		d, err := loadDashboard(cmd.Context(), c, r.ID)
		if err != nil {
			return err
		}

		return printSelected(d)
	}
}
