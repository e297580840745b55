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

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gymplan/gymplan/pkg/cli/infra"
	"github.com/gymplan/gymplan/pkg/cli/log"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	// commands
	"github.com/gymplan/gymplan/pkg/cli/cmd/calendar"
	"github.com/gymplan/gymplan/pkg/cli/cmd/exercise"
	"github.com/gymplan/gymplan/pkg/cli/cmd/login"
	"github.com/gymplan/gymplan/pkg/cli/cmd/logout"
	"github.com/gymplan/gymplan/pkg/cli/cmd/plan"
	"github.com/gymplan/gymplan/pkg/cli/cmd/root"
	"github.com/gymplan/gymplan/pkg/cli/cmd/routine"
	"github.com/gymplan/gymplan/pkg/cli/cmd/version"
)

// apiEndpoint and versionTag are populated during link time
var apiEndpoint string
var versionTag = "master"

// parseFlag extracts the value of a persistent flag from the command line
// arguments regardless of where it appears. Returns an empty string if the
// flag is not given.
func parseFlag(args []string, name string) string {
	flag := "--" + name
	for i, arg := range args {
		if strings.HasPrefix(arg, flag+"=") {
			return strings.TrimPrefix(arg, flag+"=")
		}
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}

	return ""
}

func main() {
	// The context is built before cobra parses the flags, and persistent
	// flags may follow the subcommand.
	dbPath := parseFlag(os.Args[1:], "dbPath")
	endpoint := parseFlag(os.Args[1:], "apiEndpoint")
	if endpoint == "" {
		endpoint = apiEndpoint
	}

	ctx, err := infra.Init(versionTag, endpoint, dbPath)
	if err != nil {
		log.Errorf("%s\n", errors.Wrap(err, "initializing context").Error())
		os.Exit(1)
	}

	root.Register(login.NewCmd(*ctx))
	root.Register(logout.NewCmd(*ctx))
	root.Register(version.NewCmd(*ctx))
	root.Register(exercise.NewCmd(*ctx))
	root.Register(routine.NewCmd(*ctx))
	root.Register(plan.NewCmd(*ctx))
	root.Register(calendar.NewCmd(*ctx))

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = root.Execute(sigCtx)
	stop()
	ctx.DB.Close()

	if err != nil {
		log.Errorf("%s\n", err.Error())
		os.Exit(1)
	}
}
