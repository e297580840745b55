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

// Package dirs provides base directory definitions for the system following
// the XDG base directory specification
package dirs

import (
	"os"
	"os/user"
	"path/filepath"

	"github.com/pkg/errors"
)

// The environment variable names for the XDG base directory specification
const (
	envConfigHome = "XDG_CONFIG_HOME"
	envDataHome   = "XDG_DATA_HOME"
	envCacheHome  = "XDG_CACHE_HOME"
)

// Dirs holds the base directories of the current user
type Dirs struct {
	// Home is the home directory of the user
	Home string
	// ConfigHome is the directory in which user-specific configurations
	// should be written
	ConfigHome string
	// DataHome is the directory in which user-specific data files should
	// be written
	DataHome string
	// CacheHome is the directory in which user-specific non-essential
	// cached data should be written
	CacheHome string
}

// Resolve computes the base directories for the given home directory,
// letting the XDG variables returned by getenv take precedence.
func Resolve(home string, getenv func(string) string) Dirs {
	readPath := func(envName, defaultPath string) string {
		if dir := getenv(envName); dir != "" {
			return dir
		}

		return defaultPath
	}

	return Dirs{
		Home:       home,
		ConfigHome: readPath(envConfigHome, filepath.Join(home, ".config")),
		DataHome:   readPath(envDataHome, filepath.Join(home, ".local", "share")),
		CacheHome:  readPath(envCacheHome, filepath.Join(home, ".cache")),
	}
}

// Current resolves the base directories of the current user from the
// process environment
func Current() (Dirs, error) {
	usr, err := user.Current()
	if err != nil {
		return Dirs{}, errors.Wrap(err, "getting home dir")
	}

	return Resolve(usr.HomeDir, os.Getenv), nil
}
