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
	"github.com/spf13/cobra"
)

func newLsCmd(ctx context.GymCtx) *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Short:   "List the exercise library",
		Aliases: []string{"l", "list"},
		RunE:    newLsRun(ctx),
	}
}

func newLsRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if err := infra.RequireLogin(ctx); err != nil {
			return err
		}

		return printLibrary(cmd.Context(), client.New(ctx))
	}
}
