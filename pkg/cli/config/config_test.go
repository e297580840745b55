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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gymplan/gymplan/pkg/assert"
	"github.com/gymplan/gymplan/pkg/cli/context"
)

func TestReadWrite(t *testing.T) {
	ctx := context.InitTestCtx(t)

	cf := Config{APIEndpoint: "https://gym.example.com/api"}
	assert.NoError(t, Write(ctx, cf), "writing config")

	got, err := Read(ctx)
	assert.NoError(t, err, "reading config")
	assert.Equal(t, got, cf, "config mismatch")
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte(EnvAPIEndpoint+"=http://from-dotenv:4000\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv(EnvAPIEndpoint, "")
	os.Unsetenv(EnvAPIEndpoint)

	assert.NoError(t, LoadEnv(filepath.Join(dir, "missing.env"), envPath), "loading env")
	assert.Equal(t, ResolveAPIEndpoint(Config{APIEndpoint: "http://from-rc"}), "http://from-dotenv:4000", "env should override the rc file")
}

func TestResolveAPIEndpoint(t *testing.T) {
	t.Setenv(EnvAPIEndpoint, "")

	assert.Equal(t, ResolveAPIEndpoint(Config{APIEndpoint: "http://from-rc"}), "http://from-rc", "rc value should be used without env")

	t.Setenv(EnvAPIEndpoint, "http://from-env")
	assert.Equal(t, ResolveAPIEndpoint(Config{APIEndpoint: "http://from-rc"}), "http://from-env", "env should override the rc file")
}
