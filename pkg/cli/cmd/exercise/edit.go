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
var editMuscleFlag string

func editPreRun(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("Incorrect number of argument")
	}

	return nil
}

func newEditCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit <exercise id>",
		Short:   "Edit an exercise",
		Aliases: []string{"e"},
		PreRunE: editPreRun,
		RunE:    newEditRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&editNameFlag, "name", "n", "", "The new name of the exercise")
	f.StringVarP(&editDescriptionFlag, "description", "d", "", "The new description of the exercise")
	f.StringVarP(&editMuscleFlag, "muscle", "m", "", "The new target muscle of the exercise")

	return cmd
}

// getEditPayload applies the changed flags to the exercise. Without any
// flag, every field is prompted with its current value as the default.
func getEditPayload(cmd *cobra.Command, e client.Exercise) (client.ExercisePayload, error) {
	p := client.ExercisePayload{
		Name:        e.Name,
		Description: e.Description,
		Muscle:      e.Muscle,
	}

	f := cmd.Flags()
	if f.Changed("name") || f.Changed("description") || f.Changed("muscle") {
		if f.Changed("name") {
			p.Name = editNameFlag
		}
		if f.Changed("description") {
			p.Description = editDescriptionFlag
		}
		if f.Changed("muscle") {
			p.Muscle = editMuscleFlag
		}

		return p, nil
	}

	if err := ui.PromptInputDefault("name", e.Name, &p.Name); err != nil {
		return p, errors.Wrap(err, "getting name input")
	}
	if err := ui.PromptInputDefault("description", e.Description, &p.Description); err != nil {
		return p, errors.Wrap(err, "getting description input")
	}
	if err := ui.PromptInputDefault("target muscle", e.Muscle, &p.Muscle); err != nil {
		return p, errors.Wrap(err, "getting target muscle input")
	}

	return p, nil
}

func newEditRun(ctx context.GymCtx) infra.RunEFunc {
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

		p, err := getEditPayload(cmd, e)
		if err != nil {
			return err
		}
		if err := validate.Name(p.Name); err != nil {
			return errors.Wrap(err, "invalid exercise name")
		}

		changed := output.FieldDiff(color.Output, "name", e.Name, p.Name)
		changed = output.FieldDiff(color.Output, "description", e.Description, p.Description) || changed
		changed = output.FieldDiff(color.Output, "target muscle", e.Muscle, p.Muscle) || changed
		if !changed {
			log.Info("nothing changed\n")
			return nil
		}

		if _, err := c.UpdateExercise(cmd.Context(), id, p); err != nil {
			return err
		}

		log.Successf("edited exercise %d\n", id)

		return printLibrary(cmd.Context(), c)
	}
}
