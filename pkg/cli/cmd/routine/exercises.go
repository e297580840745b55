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
	"fmt"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/gymplan/gymplan/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var exerciseFlag int
var setsFlag int
var repsFlag int
var weightFlag float64
var rmExerciseYesFlag bool

func addTargetFlags(f *pflag.FlagSet) {
	f.IntVarP(&setsFlag, "sets", "s", 0, "The number of sets")
	f.IntVarP(&repsFlag, "reps", "r", 0, "The number of repetitions per set")
	f.Float64VarP(&weightFlag, "weight", "w", 0, "The weight in kg")
}

// targetParams returns the targets given by the flags. Targets without a
// flag keep the value of base.
func targetParams(f *pflag.FlagSet, base client.RoutineExerciseParams) (client.RoutineExerciseParams, error) {
	ret := base
	if f.Changed("sets") {
		v := setsFlag
		ret.Sets = &v
	}
	if f.Changed("reps") {
		v := repsFlag
		ret.Reps = &v
	}
	if f.Changed("weight") {
		v := weightFlag
		ret.Weight = &v
	}

	if err := validate.Targets(ret.Sets, ret.Reps, ret.Weight); err != nil {
		return ret, errors.Wrap(err, "invalid targets")
	}

	return ret, nil
}

func newAddExerciseCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add-exercise <routine id>",
		Short:   "Link an exercise to a routine",
		Aliases: []string{"ae"},
		Example: "  gymplan routine add-exercise 3 --exercise 12 --sets 4 --reps 8 --weight 80",
		PreRunE: argsPreRun(1),
		RunE:    newAddExerciseRun(ctx),
	}

	f := cmd.Flags()
	f.IntVarP(&exerciseFlag, "exercise", "x", 0, "The id of the exercise to link")
	addTargetFlags(f)

	return cmd
}

func newAddExerciseRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		routineID, err := utils.ParseID(args[0])
		if err != nil {
			return errors.Wrap(err, "invalid routine id")
		}
		if exerciseFlag <= 0 {
			return errors.New("an exercise is required. Pass it with --exercise")
		}

		params, err := targetParams(cmd.Flags(), client.RoutineExerciseParams{})
		if err != nil {
			return err
		}

		c := client.New(ctx)
		d, err := loadDashboard(cmd.Context(), c, routineID)
		if err != nil {
			return err
		}
		if _, ok := d.SelectedRoutine(); !ok {
			return errors.Errorf("routine %d not found", routineID)
		}

		if _, err := c.CreateRoutineExercise(cmd.Context(), routineID, exerciseFlag, params); err != nil {
			return err
		}

		log.Successf("linked exercise %d to routine %d\n", exerciseFlag, routineID)

		if err := d.RefreshRoutine(cmd.Context(), routineID); err != nil {
			return err
		}

		return printSelected(d)
	}
}

func newEditExerciseCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit-exercise <routine id> <link id>",
		Short:   "Edit the targets of an exercise in a routine",
		Aliases: []string{"ee"},
		Example: "  gymplan routine edit-exercise 3 41 --weight 82.5",
		PreRunE: argsPreRun(2),
		RunE:    newEditExerciseRun(ctx),
	}

	addTargetFlags(cmd.Flags())

	return cmd
}

func parseLinkArgs(args []string) (int, int, error) {
	routineID, err := utils.ParseID(args[0])
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid routine id")
	}
	linkID, err := utils.ParseID(args[1])
	if err != nil {
		return 0, 0, errors.Wrap(err, "invalid link id")
	}

	return routineID, linkID, nil
}

func newEditExerciseRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		routineID, linkID, err := parseLinkArgs(args)
		if err != nil {
			return err
		}

		c := client.New(ctx)
		d, err := loadDashboard(cmd.Context(), c, routineID)
		if err != nil {
			return err
		}
		r, ok := d.SelectedRoutine()
		if !ok {
			return errors.Errorf("routine %d not found", routineID)
		}
		re, ok := findLink(r, linkID)
		if !ok {
			return errors.Errorf("exercise %d is not in routine %d", linkID, routineID)
		}

		base := client.RoutineExerciseParams{Sets: re.Sets, Reps: re.Reps, Weight: re.Weight}
		params, err := targetParams(cmd.Flags(), base)
		if err != nil {
			return err
		}

		if _, err := c.UpdateRoutineExercise(cmd.Context(), linkID, params); err != nil {
			return err
		}

		log.Successf("edited %s in routine %s\n", re.Exercise.Name, r.Name)

		if err := d.RefreshRoutine(cmd.Context(), routineID); err != nil {
			return err
		}

		return printSelected(d)
	}
}

func newRemoveExerciseCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rm-exercise <routine id> <link id>",
		Short:   "Remove an exercise from a routine",
		Aliases: []string{"re"},
		PreRunE: argsPreRun(2),
		RunE:    newRemoveExerciseRun(ctx),
	}

	f := cmd.Flags()
	f.BoolVarP(&rmExerciseYesFlag, "yes", "y", false, "Assume yes to the prompts and run in non-interactive mode")

	return cmd
}

func newRemoveExerciseRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		routineID, linkID, err := parseLinkArgs(args)
		if err != nil {
			return err
		}

		c := client.New(ctx)
		d, err := loadDashboard(cmd.Context(), c, routineID)
		if err != nil {
			return err
		}
		r, ok := d.SelectedRoutine()
		if !ok {
			return errors.Errorf("routine %d not found", routineID)
		}
		re, ok := findLink(r, linkID)
		if !ok {
			return errors.Errorf("exercise %d is not in routine %d", linkID, routineID)
		}

		ok, err = confirm(fmt.Sprintf("remove %s from %s?", re.Exercise.Name, r.Name), rmExerciseYesFlag)
		if err != nil || !ok {
			return err
		}

		if err := c.DeleteRoutineExercise(cmd.Context(), linkID); err != nil {
			return err
		}

		log.Successf("removed %s from %s\n", re.Exercise.Name, r.Name)

		if err := d.RefreshRoutine(cmd.Context(), routineID); err != nil {
			return err
		}

		return printSelected(d)
	}
}
