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

package infra

import (
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/pkg/errors"
)

// ErrLoginRequired is an error for running a command that needs a session
// without one
var ErrLoginRequired = errors.New("not logged in. Please run 'gymplan login' first")

// RequireLogin returns ErrLoginRequired if the context has no session
func RequireLogin(ctx context.GymCtx) error {
	if !ctx.Session.LoggedIn() {
		return ErrLoginRequired
	}

	return nil
}
