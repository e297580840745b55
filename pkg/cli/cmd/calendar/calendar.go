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

// Package calendar implements the calendar command
package calendar

import (
	"github.com/fatih/color"
	"github.com/gymplan/gymplan/pkg/cli/calendar"
	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/output"
	"github.com/gymplan/gymplan/pkg/cli/plans"
	"github.com/gymplan/gymplan/pkg/cli/routines"
	"github.com/gymplan/gymplan/pkg/clock"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  * Show the current month
  gymplan calendar

  * Show next month with the first exercises of each routine
  gymplan calendar --offset 1 --preview

  * Show the detail of a day
  gymplan calendar --month 2026-10 --day 14`

var monthFlag string
var offsetFlag int
var dayFlag int
var previewFlag bool

// NewCmd returns a new calendar command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calendar",
		Short:   "Show the month calendar of the active plan",
		Aliases: []string{"cal", "c"},
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVarP(&monthFlag, "month", "m", "", "The month to show, as YYYY-MM. Defaults to the current month")
	f.IntVarP(&offsetFlag, "offset", "o", 0, "The number of months to move forward, or backward if negative")
	f.IntVarP(&dayFlag, "day", "d", 0, "A day of the month to show in detail")
	f.BoolVarP(&previewFlag, "preview", "p", false, "Preview the first exercises of each scheduled routine")

	return cmd
}

func getView(ctx context.GymCtx) (calendar.View, error) {
	v := calendar.NewView(clock.Today(ctx.Clock))
	if monthFlag != "" {
		var err error
		v, err = calendar.ParseMonth(monthFlag)
		if err != nil {
			return v, errors.Wrap(err, "invalid month")
		}
	}
	if offsetFlag != 0 {
		v.Shift(offsetFlag)
	}
	if dayFlag != 0 {
		if err := v.Select(dayFlag); err != nil {
			return v, err
		}
	}

	return v, nil
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		v, err := getView(ctx)
		if err != nil {
			return err
		}

		c := client.New(ctx)
		all, err := plans.NewService(c, ctx.Session.UserID).List(cmd.Context())
		if err != nil {
			return err
		}

		// exercises are needed only for previews and the day detail
		lib := calendar.Library{}
		if previewFlag || v.Selected != 0 {
			rs, err := routines.FetchAll(cmd.Context(), c)
			if err != nil {
				return err
			}
			lib = calendar.NewLibrary(rs)
		}

		today := clock.Today(ctx.Clock)
		output.TodayBanner(color.Output, calendar.Resolve(all, lib, today))
		output.Calendar(color.Output, v, v.Days(all, lib, today), previewFlag)

		if d, ok := v.SelectedDay(all, lib); ok {
			output.DayDetail(color.Output, d)
		}

		return nil
	}
}
