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

// Package context defines the runtime context of the gymplan client
package context

import (
	"net/http"

	"github.com/gymplan/gymplan/pkg/cli/database"
	"github.com/gymplan/gymplan/pkg/cli/session"
	"github.com/gymplan/gymplan/pkg/clock"
)

// Paths contain directory definitions
type Paths struct {
	Home   string
	Config string
	Data   string
	Cache  string
}

// GymCtx is a context holding the information of the current runtime
type GymCtx struct {
	Paths       Paths
	APIEndpoint string
	Editor      string
	Version     string
	DB          *database.DB
	Session     session.Session
	Clock       clock.Clock
	HTTPClient  *http.Client
}

// Redact replaces private information from the context with a set of
// placeholder values.
func Redact(ctx GymCtx) GymCtx {
	var token string
	if ctx.Session.Token != "" {
		token = "1"
	} else {
		token = "0"
	}
	ctx.Session.Token = token

	return ctx
}
