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

package login

import (
	"net/url"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/session"
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/validate"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var example = `
  gymplan login

  * Skip the email prompt
  gymplan login --email alice@example.com`

var emailFlag string

// NewCmd returns a new login command
func NewCmd(ctx context.GymCtx) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "login",
		Short:   "Login to the gym server",
		Example: example,
		RunE:    newRun(ctx),
	}

	f := cmd.Flags()
	f.StringVar(&emailFlag, "email", "", "The email of the account")

	return cmd
}

// getServerDisplayURL returns the scheme and host of the API endpoint
func getServerDisplayURL(ctx context.GymCtx) string {
	u, err := url.Parse(ctx.APIEndpoint)
	if err != nil {
		return ""
	}

	if u.Scheme == "" || u.Host == "" {
		return ""
	}

	return u.Scheme + "://" + u.Host
}

func getCredentials() (string, string, error) {
	email := emailFlag
	if email == "" {
		if err := ui.PromptInput("email", &email); err != nil {
			return "", "", errors.Wrap(err, "getting email input")
		}
	}

	var password string
	if err := ui.PromptPassword("password", &password); err != nil {
		return "", "", errors.Wrap(err, "getting password input")
	}

	return email, password, nil
}

func newRun(ctx context.GymCtx) infra.RunEFunc {
	return func(cmd *cobra.Command, args []string) error {
		if u := getServerDisplayURL(ctx); u != "" {
			log.Infof("Logging in to %s\n", u)
		}

		email, password, err := getCredentials()
		if err != nil {
			return err
		}
		if err := validate.Credentials(email, password); err != nil {
			return err
		}

		resp, err := client.New(ctx).Login(cmd.Context(), email, password)
		if err != nil {
			return errors.Wrap(err, "logging in")
		}

		s, err := session.Login(ctx.DB, resp.Token, resp.UserID, ctx.Clock.Now())
		if err != nil {
			return errors.Wrap(err, "saving the session")
		}

		if s.HasIdentity() {
			log.Successf("logged in as user %d\n", s.UserID)
		} else {
			log.Success("logged in\n")
			log.Warnf("the token does not identify the user. Weekly plans will be unavailable\n")
		}

		return nil
	}
}
