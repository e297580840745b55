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

package database

import (
	migrate "github.com/rubenv/sql-migrate"
	"github.com/pkg/errors"
)

// migrationTable is the table in which sql-migrate records applied migrations
const migrationTable = "migrations"

var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "001-create-system",
			Up: []string{
				`CREATE TABLE IF NOT EXISTS system
				(
					key text NOT NULL,
					value text NOT NULL
				)`,
				`CREATE UNIQUE INDEX IF NOT EXISTS idx_system_key ON system(key)`,
			},
			Down: []string{
				`DROP INDEX IF EXISTS idx_system_key`,
				`DROP TABLE IF EXISTS system`,
			},
		},
	},
}

// Migrate brings the local schema up to date and returns the number of
// migrations applied
func Migrate(db *DB) (int, error) {
	migrate.SetTable(migrationTable)

	n, err := migrate.Exec(db.Conn, "sqlite3", migrations, migrate.Up)
	if err != nil {
		return n, errors.Wrap(err, "running migrations")
	}

	return n, nil
}
