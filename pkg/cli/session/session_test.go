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

package session

import (
	"database/sql"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymplan/gymplan/pkg/assert"
	"github.com/gymplan/gymplan/pkg/cli/consts"
	"github.com/gymplan/gymplan/pkg/cli/database"
	"github.com/pkg/errors"
)

func mustSignToken(t *testing.T, claims jwt.MapClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatal(errors.Wrap(err, "signing token"))
	}

	return token
}

func TestDecodeUserID(t *testing.T) {
	testCases := []struct {
		name     string
		token    string
		expected int
		ok       bool
	}{
		{
			name:     "userId claim",
			token:    mustSignToken(t, jwt.MapClaims{"userId": 42}),
			expected: 42,
			ok:       true,
		},
		{
			name:     "user_id claim",
			token:    mustSignToken(t, jwt.MapClaims{"user_id": 7}),
			expected: 7,
			ok:       true,
		},
		{
			name:     "string claim",
			token:    mustSignToken(t, jwt.MapClaims{"userId": "13"}),
			expected: 13,
			ok:       true,
		},
		{
			name:  "missing claim",
			token: mustSignToken(t, jwt.MapClaims{"email": "a@b.c"}),
			ok:    false,
		},
		{
			name:  "negative claim",
			token: mustSignToken(t, jwt.MapClaims{"userId": -1}),
			ok:    false,
		},
		{
			name:  "not a jwt",
			token: "opaque-token",
			ok:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeUserID(tc.token)
			assert.Equal(t, err == nil, tc.ok, "error mismatch")
			assert.Equal(t, got, tc.expected, "user id mismatch")
		})
	}
}

func TestLoad(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		db := database.InitTestMemoryDB(t)

		s, err := Load(db)
		assert.NoError(t, err, "loading")
		assert.Equal(t, s.LoggedIn(), false, "should not be logged in")
	})

	t.Run("derives user id from token over stale storage", func(t *testing.T) {
		db := database.InitTestMemoryDB(t)
		token := mustSignToken(t, jwt.MapClaims{"userId": 5})
		database.MustExec(t, "inserting token", db, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemSessionToken, token)
		database.MustExec(t, "inserting stale user id", db, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemUserID, "99")

		s, err := Load(db)
		assert.NoError(t, err, "loading")
		assert.Equal(t, s.Token, token, "token mismatch")
		assert.Equal(t, s.UserID, 5, "user id should come from the token")

		var stored string
		database.MustScan(t, "getting user id", db.QueryRow("SELECT value FROM system WHERE key = ?", consts.SystemUserID), &stored)
		assert.Equal(t, stored, "5", "derived user id should be persisted")
	})

	t.Run("undecodable token is still present", func(t *testing.T) {
		db := database.InitTestMemoryDB(t)
		database.MustExec(t, "inserting token", db, "INSERT INTO system (key, value) VALUES (?, ?)", consts.SystemSessionToken, "opaque")

		s, err := Load(db)
		assert.NoError(t, err, "loading")
		assert.Equal(t, s.LoggedIn(), true, "token should be considered present")
		assert.Equal(t, s.HasIdentity(), false, "identity should be unknown")
	})
}

func TestLogin(t *testing.T) {
	now := time.Date(2026, time.October, 14, 9, 0, 0, 0, time.UTC)

	t.Run("user id from payload", func(t *testing.T) {
		db := database.InitTestMemoryDB(t)
		token := mustSignToken(t, jwt.MapClaims{"userId": 3})

		s, err := Login(db, token, 8, now)
		assert.NoError(t, err, "logging in")
		assert.Equal(t, s.UserID, 3, "payload should win over the response user id")

		loaded, err := Load(db)
		assert.NoError(t, err, "loading")
		assert.Equal(t, loaded, s, "loaded session mismatch")
	})

	t.Run("fallback user id", func(t *testing.T) {
		db := database.InitTestMemoryDB(t)

		s, err := Login(db, "opaque", 8, now)
		assert.NoError(t, err, "logging in")
		assert.Equal(t, s.UserID, 8, "response user id should be used")

		loaded, err := Load(db)
		assert.NoError(t, err, "loading")
		assert.Equal(t, loaded.UserID, 8, "user id stored with the token should be kept")
	})

	t.Run("replacing a session clears the previous identity", func(t *testing.T) {
		db := database.InitTestMemoryDB(t)

		_, err := Login(db, mustSignToken(t, jwt.MapClaims{"userId": 3}), 0, now)
		assert.NoError(t, err, "first login")
		s, err := Login(db, "opaque", 0, now)
		assert.NoError(t, err, "second login")
		assert.Equal(t, s.HasIdentity(), false, "identity should be unknown")

		var val string
		err = database.GetSystem(db, consts.SystemUserID, &val)
		assert.Equal(t, errors.Cause(err), sql.ErrNoRows, "previous user id should be removed")
	})
}

func TestLogout(t *testing.T) {
	db := database.InitTestMemoryDB(t)

	err := Logout(db)
	assert.Equal(t, err, ErrNotLoggedIn, "logging out without a session")

	_, err = Login(db, mustSignToken(t, jwt.MapClaims{"userId": 3}), 0, time.Now())
	assert.NoError(t, err, "logging in")

	assert.NoError(t, Logout(db), "logging out")

	var count int
	database.MustScan(t, "counting system rows", db.QueryRow("SELECT count(*) FROM system"), &count)
	assert.Equal(t, count, 0, "all session data should be cleared")

	s, err := Load(db)
	assert.NoError(t, err, "loading")
	assert.Equal(t, s, Session{}, "session should be empty")
}
