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
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/gymplan/gymplan/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var editNameFlag string
var editDescriptionFlag string
var editEditorFlag bool

func newEditCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <routine id>",
		Short:   "Edit the name or the description of a routine",
		Aliases: []string{"e"},
		PreRunE: argsPreRun(1),
		RunE:    newEditRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&editNameFlag, "name", "n", "", "The new name of the routine")
	f.StringVarP(&editDescriptionFlag, "description", "d", "", "The new description of the routine")
	f.BoolVarP(&editEditorFlag, "editor", "e", false, "Edit the description in the editor")

	return cmd
}

func getEditInput(ctx context.GymCtx, cmd *cobra.Command, r client.Routine) (string, string, error) {
	name, desc := r.Name, r.Description

	f := cmd.Flags()
	if f.Changed("name") {
		name = editNameFlag
	}
	if f.Changed("description") {
		desc = editDescriptionFlag
	}

	if editEditorFlag {
		var err error
		desc, err = ui.GetEditorInput(ctx, desc)
		if err != nil {
			return "", "", errors.Wrap(err, "getting editor input")
		}

		return name, desc, nil
	}

	if !f.Changed("name") && !f.Changed("description") {
		if err := ui.PromptInputDefault("name", r.Name, &name); err != nil {
			return "", "", errors.Wrap(err, "getting name input")
		}
		if err := ui.PromptInputDefault("description", r.Description, &desc); err != nil {
			return "", "", errors.Wrap(err, "getting description input")
		}
	}

	return name, desc, nil
}

func newEditRun(ctx context.GymCtx) infra.RunEFunc {
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

		name, desc, err := getEditInput(ctx, cmd, r)
		if err != nil {
			return err
		}
		if err := validate.Name(name); err != nil {
			return errors.Wrap(err, "invalid routine name")
		}

		changed := output.FieldDiff(color.Output, "name", r.Name, name)
		changed = output.FieldDiff(color.Output, "description", r.Description, desc) || changed
		if !changed {
			log.Info("nothing changed\n")
			return nil
		}

		if _, err := c.UpdateRoutine(cmd.Context(), id, name, desc); err != nil {
			return err
		}

		log.Successf("edited routine %d\n", id)

		if err := d.Refresh(cmd.Context(), id); err != nil {
			return errors.Wrap(err, "fetching routines")
		}

		return printSelected(d)
	}
}
