// reconcile.go
//
// Relational replacement for the Monastery360 browser localStorage data layer
// Copyright (c) 2026 Monastery360 Project
//
// This file is part of monastery360-datastore.
// monastery360-datastore is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// monastery360-datastore is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with
// monastery360-datastore. If not, see <https://www.gnu.org/licenses/>.

package services

import (
	"strings"

	"github.com/monastery360/datastore/internal/identity"
	"github.com/monastery360/datastore/internal/models"
)

// ProfileMatch names one reconciliation lookup step.
type ProfileMatch int

const (
	MatchUID ProfileMatch = iota
	MatchEmail
)

// ProfileLookupOrder fixes the reconciliation tie-break: a uid match always
// wins over an email match.
var ProfileLookupOrder = []ProfileMatch{MatchUID, MatchEmail}

// EnsureProfileOptions tunes profile creation. Name fields, when set, beat
// the parsed display name (used by registration, which knows the real names).
type EnsureProfileOptions struct {
	DefaultRole string
	FirstName   string
	LastName    string
}

// EnsureProfile maps an external identity onto exactly one local user record
// and points the session at it. The operation is idempotent: a second call
// with the same identity finds the same record and writes nothing.
//
// Lookup follows ProfileLookupOrder. A record found by email without a uid is
// upgraded in place (uid backfilled, missing name fields filled), never
// duplicated.
func EnsureProfile(ctx *Context, id identity.Identity, opts EnsureProfileOptions) (*models.User, error) {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	users := []models.User{}
	ctx.Store().Get(models.KeyUsers, &users)

	var user *models.User
	for _, match := range ProfileLookupOrder {
		switch match {
		case MatchUID:
			user = findByUID(users, id.ID)
		case MatchEmail:
			user = findByEmail(users, id.Email)
		}
		if user != nil {
			break
		}
	}

	if user == nil {
		created := newProfileFromIdentity(id, opts)
		users = append(users, created)
		if !ctx.Store().Set(models.KeyUsers, users) {
			return nil, ErrStoreWrite
		}
		ctx.SetCurrentUser(created)
		recordActivity(ctx, models.ActivityUserRegistered, "New user registered", created.FullName())
		return &created, nil
	}

	// Upgrade path: backfill the uid and any missing name fields, once.
	updated := false
	if user.UID == "" && id.ID != "" {
		user.UID = id.ID
		updated = true
	}
	if first, last := splitDisplayName(id.DisplayName); first != "" {
		if user.FirstName == "" {
			user.FirstName = first
			updated = true
		}
		if user.LastName == "" && last != "" {
			user.LastName = last
			updated = true
		}
	}
	if updated {
		t := now()
		user.UpdatedAt = &t
		if !ctx.Store().Set(models.KeyUsers, users) {
			return nil, ErrStoreWrite
		}
	}

	ctx.SetCurrentUser(*user)
	u := *user
	return &u, nil
}

// SignOut clears the session pointer. The user record is untouched.
func SignOut(ctx *Context) {
	ctx.ClearCurrentUser()
}

// newProfileFromIdentity builds a fresh local record for an external
// identity. The external id doubles as the record id.
func newProfileFromIdentity(id identity.Identity, opts EnsureProfileOptions) models.User {
	firstName := opts.FirstName
	lastName := opts.LastName
	if firstName == "" || lastName == "" {
		first, last := splitDisplayName(id.DisplayName)
		if firstName == "" {
			firstName = first
		}
		if lastName == "" {
			lastName = last
		}
	}
	if firstName == "" && id.Email != "" {
		// Fall back to the local part of the email.
		firstName = strings.SplitN(id.Email, "@", 2)[0]
	}
	if firstName == "" {
		firstName = "User"
	}

	role := opts.DefaultRole
	if role == "" {
		role = models.RoleTourist
	}
	provider := id.Provider
	if provider == "" {
		provider = "password"
	}

	return models.User{
		ID:        id.ID,
		UID:       id.ID,
		FirstName: firstName,
		LastName:  lastName,
		Email:     id.Email,
		Role:      role,
		Active:    true,
		Provider:  provider,
		CreatedAt: now(),
	}
}

// splitDisplayName takes "First Middle Last" apart: first token and the rest.
func splitDisplayName(displayName string) (first, last string) {
	parts := strings.Fields(displayName)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
