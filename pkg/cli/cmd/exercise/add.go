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
var muscleFlag string

func newAddCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Add an exercise to the library",
		Aliases: []string{"a", "new"},
		RunE:    newAddRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&nameFlag, "name", "n", "", "The name of the exercise")
	f.StringVarP(&descriptionFlag, "description", "d", "", "The description of the exercise")
	f.StringVarP(&muscleFlag, "muscle", "m", "", "The target muscle of the exercise")

	return cmd
}

// getAddPayload reads the exercise from the flags, prompting for every
// field when no name is given
func getAddPayload() (client.ExercisePayload, error) {
	p := client.ExercisePayload{
		Name:        nameFlag,
		Description: descriptionFlag,
		Muscle:      muscleFlag,
	}
	if p.Name != "" {
		return p, nil
	}

	if err := ui.PromptInput("name", &p.Name); err != nil {
		return p, errors.Wrap(err, "getting name input")
	}
	if p.Description == "" {
		if err := ui.PromptInput("description (optional)", &p.Description); err != nil {
			return p, errors.Wrap(err, "getting description input")
		}
	}
	if p.Muscle == "" {
		if err := ui.PromptInput("target muscle (optional)", &p.Muscle); err != nil {
			return p, errors.Wrap(err, "getting target muscle input")
		}
	}

	return p, nil
}

func newAddRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		p, err := getAddPayload()
		if err != nil {
			return err
		}
		if err := validate.Name(p.Name); err != nil {
			return errors.Wrap(err, "invalid exercise name")
		}

		c := client.New(ctx)
		e, err := c.CreateExercise(cmd.Context(), p)
		if err != nil {
			return err
		}

		if e.ID != 0 {
			log.Successf("added exercise %s (%d)\n", p.Name, e.ID)
		} else {
			log.Successf("added exercise %s\n", p.Name)
		}

		return printLibrary(cmd.Context(), c)
	}
}
