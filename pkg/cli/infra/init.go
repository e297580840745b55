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

// Package infra provides operations and definitions for the
// local infrastructure for gymplan
package infra

import (
	"path/filepath"

	"github.com/gymplan/gymplan/pkg/cli/client"
	"github.com/gymplan/gymplan/pkg/cli/config"
	"github.com/gymplan/gymplan/pkg/cli/consts"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/database"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/gymplan/gymplan/pkg/cli/session"
	"github.com/gymplan/gymplan/pkg/cli/ui"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/gymplan/gymplan/pkg/clock"
	"github.com/gymplan/gymplan/pkg/dirs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	// DefaultAPIEndpoint is the default API endpoint used when none is configured
	DefaultAPIEndpoint = "http://localhost:3000"
)

// EnvFile is the dotenv file loaded from the working directory at startup
var EnvFile = ".env"

// RunEFunc is a function type of gymplan commands
type RunEFunc func(*cobra.Command, []string) error

func getDBPath(paths context.Paths, customPath string) string {
	if customPath != "" {
		return customPath
	}

	return filepath.Join(paths.Data, consts.GymplanDirName, consts.GymplanDBFileName)
}

// newBaseCtx creates a minimal context with paths. It is enriched with the
// database, the config values and the session by Init.
func newBaseCtx(versionTag string) (context.GymCtx, error) {
	d, err := dirs.Current()
	if err != nil {
		return context.GymCtx{}, errors.Wrap(err, "resolving base directories")
	}

	paths := context.Paths{
		Home:   d.Home,
		Config: d.ConfigHome,
		Data:   d.DataHome,
		Cache:  d.CacheHome,
	}

	return context.GymCtx{
		Paths:   paths,
		Version: versionTag,
	}, nil
}

// Init initializes the gymplan environment and returns a new gymplan context.
// A non-empty apiEndpoint overrides the configured endpoint and is written
// to a newly created config file.
func Init(versionTag, apiEndpoint, dbPath string) (*context.GymCtx, error) {
	ctx, err := newBaseCtx(versionTag)
	if err != nil {
		return nil, errors.Wrap(err, "initializing a context")
	}

	if err := initFiles(ctx, apiEndpoint); err != nil {
		return nil, errors.Wrap(err, "initializing files")
	}

	db, err := InitDB(getDBPath(ctx.Paths, dbPath))
	if err != nil {
		return nil, errors.Wrap(err, "initializing database")
	}
	ctx.DB = db

	ctx, err = setupCtx(ctx, apiEndpoint)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "setting up the context")
	}

	log.Debug("context: %+v\n", context.Redact(ctx))

	return &ctx, nil
}

// setupCtx enriches the base context with values from the environment, the
// config file and the database
func setupCtx(ctx context.GymCtx, apiEndpoint string) (context.GymCtx, error) {
	if err := config.LoadEnv(EnvFile); err != nil {
		return ctx, errors.Wrap(err, "loading environment")
	}

	cf, err := config.Read(ctx)
	if err != nil {
		return ctx, errors.Wrap(err, "reading config")
	}

	s, err := session.Load(ctx.DB)
	if err != nil {
		return ctx, errors.Wrap(err, "loading session")
	}

	endpoint := config.ResolveAPIEndpoint(cf)
	if apiEndpoint != "" {
		endpoint = apiEndpoint
	}
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}

	ctx.APIEndpoint = endpoint
	ctx.Editor = cf.Editor
	ctx.Session = s
	ctx.Clock = clock.New()
	ctx.HTTPClient = client.NewRateLimitedHTTPClient()

	return ctx, nil
}

// InitDB opens the database at the given path and brings its schema up to date
func InitDB(dbPath string) (*database.DB, error) {
	log.Debug("initializing the database at %s\n", dbPath)

	db, err := database.Open(dbPath)
	if err != nil {
		return nil, errors.Wrap(err, "connecting to db")
	}

	n, err := database.Migrate(db)
	if err != nil {
		db.Close()
		return nil, errors.Wrap(err, "running migrations")
	}
	if n > 0 {
		log.Debug("applied %d migrations\n", n)
	}

	return db, nil
}

// initConfigFile populates a new config file if it does not exist yet
func initConfigFile(ctx context.GymCtx, apiEndpoint string) error {
	path := config.GetPath(ctx)
	ok, err := utils.FileExists(path)
	if err != nil {
		return errors.Wrap(err, "checking if config exists")
	}
	if ok {
		return nil
	}

	endpoint := apiEndpoint
	if endpoint == "" {
		endpoint = DefaultAPIEndpoint
	}

	cf := config.Config{
		Editor:      ui.GetEditorCommand(),
		APIEndpoint: endpoint,
	}

	if err := config.Write(ctx, cf); err != nil {
		return errors.Wrap(err, "writing config")
	}

	return nil
}

// initFiles creates, if necessary, the gymplan directories and files inside
func initFiles(ctx context.GymCtx, apiEndpoint string) error {
	if err := context.InitGymplanDirs(ctx.Paths); err != nil {
		return errors.Wrap(err, "creating the gymplan dir")
	}
	if err := initConfigFile(ctx, apiEndpoint); err != nil {
		return errors.Wrap(err, "generating the config file")
	}

	return nil
}
