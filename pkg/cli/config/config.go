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

// Package config reads and writes the gymplan configuration
package config

import (
	"os"
	"path/filepath"

	"github.com/gymplan/gymplan/pkg/cli/consts"
	"github.com/gymplan/gymplan/pkg/cli/context"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// EnvAPIEndpoint is the environment variable that overrides the configured API endpoint
const EnvAPIEndpoint = "GYMPLAN_API_ENDPOINT"

// Config holds gymplan configuration
type Config struct {
	Editor      string `yaml:"editor"`
	APIEndpoint string `yaml:"apiEndpoint"`
}

// GetPath returns the path to the gymplan config file
func GetPath(ctx context.GymCtx) string {
	return filepath.Join(ctx.Paths.Config, consts.GymplanDirName, consts.ConfigFilename)
}

// Read reads the config file
func Read(ctx context.GymCtx) (Config, error) {
	var ret Config

	configPath := GetPath(ctx)
	b, err := os.ReadFile(configPath)
	if err != nil {
		return ret, errors.Wrap(err, "reading config file")
	}

	err = yaml.Unmarshal(b, &ret)
	if err != nil {
		return ret, errors.Wrap(err, "unmarshalling config")
	}

	return ret, nil
}

// Write writes the config to the config file
func Write(ctx context.GymCtx, cf Config) error {
	path := GetPath(ctx)

	b, err := yaml.Marshal(cf)
	if err != nil {
		return errors.Wrap(err, "marshalling config into YAML")
	}

	err = os.WriteFile(path, b, 0644)
	if err != nil {
		return errors.Wrap(err, "writing the config file")
	}

	return nil
}

// LoadEnv loads the given env files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadEnv(filenames ...string) error {
	for _, f := range filenames {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			log.Debug("no env file at %s\n", f)
			continue
		}

		if err := godotenv.Load(f); err != nil {
			return errors.Wrapf(err, "loading env file %s", f)
		}
	}

	return nil
}

// ResolveAPIEndpoint applies the environment override to the configured endpoint
func ResolveAPIEndpoint(cf Config) string {
	if v := os.Getenv(EnvAPIEndpoint); v != "" {
		return v
	}

	return cf.APIEndpoint
}
