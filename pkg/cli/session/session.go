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

// Package session manages the bearer token of the signed in user and the
// user identity derived from it
package session

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gymplan/gymplan/pkg/cli/consts"
	"github.com/gymplan/gymplan/pkg/cli/database"
	"github.com/gymplan/gymplan/pkg/cli/log"
	"github.com/pkg/errors"
)

// ErrNotLoggedIn is an error for operations that need a session when none exists
var ErrNotLoggedIn = errors.New("not logged in")

// ErrNoIdentity is an error for a token whose payload carries no user id
var ErrNoIdentity = errors.New("token payload has no user id")

// Session is the explicit session of the current user. It is created at
// login, loaded once at startup, and destroyed at logout.
type Session struct {
	Token  string
	UserID int
}

// LoggedIn returns true if a bearer token is present
func (s Session) LoggedIn() bool {
	return s.Token != ""
}

// HasIdentity returns true if the user id of the session is known
func (s Session) HasIdentity() bool {
	return s.UserID > 0
}

func claimToInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return i, true
	}

	return 0, false
}

// DecodeUserID extracts the numeric user id from the payload of the given
// token. The signature is not verified; the server remains the authority.
func DecodeUserID(token string) (int, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, errors.Wrap(err, "parsing token payload")
	}

	for _, key := range []string{"userId", "user_id"} {
		v, ok := claims[key]
		if !ok {
			continue
		}

		id, ok := claimToInt(v)
		if !ok || id <= 0 {
			return 0, errors.Errorf("invalid %s claim %v", key, v)
		}

		return id, nil
	}

	return 0, ErrNoIdentity
}

func getUserID(db *database.DB) (int, error) {
	var val string
	err := database.GetSystem(db, consts.SystemUserID, &val)
	if errors.Cause(err) == sql.ErrNoRows {
		return 0, nil
	} else if err != nil {
		return 0, err
	}

	id, err := strconv.Atoi(val)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing stored user id '%s'", val)
	}

	return id, nil
}

// Load reads the persisted session. The user id is re-derived from the
// token payload and persisted. When the payload cannot be decoded, the
// token is still considered present and the user id written together with
// that token at login is kept.
func Load(db *database.DB) (Session, error) {
	var token string
	err := database.GetSystem(db, consts.SystemSessionToken, &token)
	if errors.Cause(err) == sql.ErrNoRows {
		return Session{}, nil
	} else if err != nil {
		return Session{}, errors.Wrap(err, "finding session token")
	}

	stored, err := getUserID(db)
	if err != nil {
		return Session{}, errors.Wrap(err, "finding user id")
	}

	userID, err := DecodeUserID(token)
	if err != nil {
		log.Debug("decoding session token: %s\n", err.Error())
		return Session{Token: token, UserID: stored}, nil
	}

	if userID != stored {
		if err := database.UpsertSystem(db, consts.SystemUserID, strconv.Itoa(userID)); err != nil {
			return Session{}, errors.Wrap(err, "persisting user id")
		}
	}

	return Session{Token: token, UserID: userID}, nil
}

// Login persists a new session for the given token and returns it. The
// user id comes from the token payload; fallbackUserID, as reported by the
// login response, is used only when the payload has none.
func Login(db *database.DB, token string, fallbackUserID int, now time.Time) (Session, error) {
	if token == "" {
		return Session{}, errors.New("empty token")
	}

	userID, err := DecodeUserID(token)
	if err != nil {
		log.Debug("decoding new token: %s\n", err.Error())
		userID = fallbackUserID
	}

	tx, err := db.Begin()
	if err != nil {
		return Session{}, errors.Wrap(err, "beginning a transaction")
	}

	if err := database.UpsertSystem(tx, consts.SystemSessionToken, token); err != nil {
		tx.Rollback()
		return Session{}, errors.Wrap(err, "saving session token")
	}

	if userID > 0 {
		err = database.UpsertSystem(tx, consts.SystemUserID, strconv.Itoa(userID))
	} else {
		err = database.DeleteSystem(tx, consts.SystemUserID)
	}
	if err != nil {
		tx.Rollback()
		return Session{}, errors.Wrap(err, "saving user id")
	}

	if err := database.UpsertSystem(tx, consts.SystemLastLoginAt, strconv.FormatInt(now.Unix(), 10)); err != nil {
		tx.Rollback()
		return Session{}, errors.Wrap(err, "saving login time")
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return Session{}, errors.Wrap(err, "committing a transaction")
	}

	return Session{Token: token, UserID: userID}, nil
}

// Logout clears all persisted session data
func Logout(db *database.DB) error {
	var token string
	err := database.GetSystem(db, consts.SystemSessionToken, &token)
	if errors.Cause(err) == sql.ErrNoRows {
		return ErrNotLoggedIn
	} else if err != nil {
		return errors.Wrap(err, "finding session token")
	}

	tx, err := db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning a transaction")
	}

	for _, key := range []string{consts.SystemSessionToken, consts.SystemUserID, consts.SystemLastLoginAt} {
		if err := database.DeleteSystem(tx, key); err != nil {
			tx.Rollback()
			return errors.Wrapf(err, "deleting %s", key)
		}
	}

	if err := tx.Commit(); err != nil {
		tx.Rollback()
		return errors.Wrap(err, "committing a transaction")
	}

	return nil
}
