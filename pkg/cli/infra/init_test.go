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
	"os"
	"path/filepath"
	"testing"

	"github.com/gymplan/gymplan/pkg/assert"
	"github.com/gymplan/gymplan/pkg/cli/config"
	"github.com/gymplan/gymplan/pkg/cli/consts"
	"github.com/gymplan/gymplan/pkg/cli/database"
	"github.com/gymplan/gymplan/pkg/cli/testutils"
	"github.com/gymplan/gymplan/pkg/cli/utils"
	"github.com/pkg/errors"
)

func setupTestDirs(t *testing.T) string {
	tmpDir := t.TempDir()

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(tmpDir, "data"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(tmpDir, "cache"))
	t.Setenv(config.EnvAPIEndpoint, "")
	os.Unsetenv(config.EnvAPIEndpoint)

	EnvFile = filepath.Join(tmpDir, ".env")
	t.Cleanup(func() { EnvFile = ".env" })

	return tmpDir
}

func TestInit(t *testing.T) {
	tmpDir := setupTestDirs(t)

	ctx, err := Init("test-version", "", "")
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()

	assert.Equal(t, ctx.APIEndpoint, DefaultAPIEndpoint, "endpoint mismatch")
	assert.Equal(t, ctx.Version, "test-version", "version mismatch")
	assert.Equal(t, ctx.Session.LoggedIn(), false, "session should be empty")

	ok, err := utils.FileExists(filepath.Join(tmpDir, "config", consts.GymplanDirName, consts.ConfigFilename))
	if err != nil {
		t.Fatal(errors.Wrap(err, "checking if config exists"))
	}
	assert.Equal(t, ok, true, "config file was not initialized")

	ok, err = utils.FileExists(filepath.Join(tmpDir, "data", consts.GymplanDirName, consts.GymplanDBFileName))
	if err != nil {
		t.Fatal(errors.Wrap(err, "checking if database exists"))
	}
	assert.Equal(t, ok, true, "database was not initialized")

	var systemTableCount int
	database.MustScan(t, "counting system",
		ctx.DB.QueryRow("SELECT count(*) FROM sqlite_master WHERE type = ? AND name = ?", "table", "system"), &systemTableCount)
	assert.Equal(t, systemTableCount, 1, "system table count mismatch")
}

func TestInit_APIEndpointChange(t *testing.T) {
	setupTestDirs(t)

	// First init.
	endpoint1 := "http://127.0.0.1:3001"
	ctx, err := Init("test-version", endpoint1, "")
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()
	assert.Equal(t, ctx.APIEndpoint, endpoint1, "should use endpoint1 API endpoint")

	cf, err := config.Read(*ctx)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading config"))
	}
	assert.Equal(t, cf.APIEndpoint, endpoint1, "config should be written with endpoint1")

	// Second init with different endpoint.
	endpoint2 := "http://127.0.0.1:3002"
	ctx2, err := Init("test-version", endpoint2, "")
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing with override"))
	}
	defer ctx2.DB.Close()
	assert.Equal(t, ctx2.APIEndpoint, endpoint2, "should use endpoint2 API endpoint")

	// The config file shouldn't have been modified.
	cf2, err := config.Read(*ctx2)
	if err != nil {
		t.Fatal(errors.Wrap(err, "reading config after override"))
	}
	assert.Equal(t, cf2.APIEndpoint, cf.APIEndpoint, "config should still have original endpoint, not endpoint2")
}

func TestInit_EnvFile(t *testing.T) {
	tmpDir := setupTestDirs(t)

	if err := os.WriteFile(filepath.Join(tmpDir, ".env"), []byte(config.EnvAPIEndpoint+"=http://from-dotenv:4000\n"), 0644); err != nil {
		t.Fatal(errors.Wrap(err, "writing env file"))
	}
	t.Cleanup(func() { os.Unsetenv(config.EnvAPIEndpoint) })

	ctx, err := Init("test-version", "", "")
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()

	assert.Equal(t, ctx.APIEndpoint, "http://from-dotenv:4000", "env file should override the config file")
}

func TestInit_Session(t *testing.T) {
	setupTestDirs(t)

	db, dbPath := database.InitTestFileDB(t)
	token := testutils.MakeToken(t, 42)
	database.MustExec(t, "inserting token", db, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemSessionToken, token)
	database.MustExec(t, "inserting stale user id", db, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemUserID, "3")

	ctx, err := Init("test-version", "", dbPath)
	if err != nil {
		t.Fatal(errors.Wrap(err, "initializing"))
	}
	defer ctx.DB.Close()

	assert.Equal(t, ctx.Session.Token, token, "token mismatch")
	assert.Equal(t, ctx.Session.UserID, 42, "user id should be derived from the token")

	var stored string
	database.MustScan(t, "getting user id", db.QueryRow("SELECT value FROM system WHERE key = ?", consts.SystemUserID), &stored)
	assert.Equal(t, stored, "42", "derived user id should be persisted")
}
