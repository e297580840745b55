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

// Package consts provides definitions of constants
package consts

var (
	// GymplanDirName is the name of the directory containing gymplan files
	GymplanDirName = "gymplan"
	// GymplanDBFileName is a filename for the gymplan SQLite database
	GymplanDBFileName = "gymplan.db"
	// ConfigFilename is the name of the config file
	ConfigFilename = "gymplanrc"
	// TmpContentFileBase is the base for the filename for editing descriptions
	TmpContentFileBase = "GYMPLAN_DESCRIPTION"
	// TmpContentFileExt is the extension for the temporary content file
	TmpContentFileExt = "txt"

	// SystemSessionToken is the key for the bearer token in the system table
	SystemSessionToken = "session_token"
	// SystemUserID is the key for the user id derived from the bearer token
	SystemUserID = "user_id"
	// SystemLastLoginAt is the unix timestamp of the most recent login
	SystemLastLoginAt = "last_login_at"
)
