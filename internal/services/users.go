// users.go
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
	"fmt"
	"regexp"
	"strings"

	"github.com/monastery360/datastore/internal/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RegistrationInput is the payload for local-credential sign-up.
type RegistrationInput struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Role            string `json:"role"`
	Newsletter      bool   `json:"newsletter"`
}

func (in RegistrationInput) validate() error {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" || in.Password == "" {
		return fmt.Errorf("Please fill in all required fields")
	}
	if !emailPattern.MatchString(in.Email) {
		return fmt.Errorf("Please enter a valid email address")
	}
	if len(in.Password) < 6 {
		return fmt.Errorf("Password must be at least 6 characters long")
	}
	if in.ConfirmPassword != "" && in.Password != in.ConfirmPassword {
		return fmt.Errorf("Passwords do not match")
	}
	if in.Role != "" && !models.ValidRole(in.Role) {
		return fmt.Errorf("Please select your role")
	}
	return nil
}

// ListUsers returns all user records.
func ListUsers(ctx *Context) []models.User {
	users := []models.User{}
	ctx.Store().Get(models.KeyUsers, &users)
	return users
}

// RegisterUser creates a local-credential user. Duplicate emails (compared
// case-insensitively) are rejected with ErrEmailTaken and nothing is written.
// The new user becomes the session user.
func RegisterUser(ctx *Context, in RegistrationInput) (*models.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	users := []models.User{}
	ctx.Store().Get(models.KeyUsers, &users)
	if findByEmail(users, in.Email) != nil {
		return nil, ErrEmailTaken
	}

	role := in.Role
	if role == "" {
		role = models.RoleTourist
	}
	user := models.User{
		ID:          newID("user"),
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		Password:    in.Password, // compared verbatim by Authenticate
		Role:        role,
		Active:      true,
		Preferences: &models.UserPreferences{Newsletter: in.Newsletter},
		CreatedAt:   now(),
	}

	users = append(users, user)
	if !ctx.Store().Set(models.KeyUsers, users) {
		return nil, ErrStoreWrite
	}
	ctx.SetCurrentUser(user)
	recordActivity(ctx, models.ActivityUserRegistered, "New user registered", user.FullName())

	return &user, nil
}

// Authenticate performs local-credential sign-in: an exact match on email and
// stored password. On success the session points at a copy of the record. The
// failure is uniform either way, so callers cannot probe which emails exist.
func Authenticate(ctx *Context, email, password string) (*models.User, error) {
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	users := []models.User{}
	ctx.Store().Get(models.KeyUsers, &users)
	for i := range users {
		if users[i].Email == email && users[i].Password == password {
			ctx.SetCurrentUser(users[i])
			u := users[i]
			return &u, nil
		}
	}
	return nil, ErrInvalidCredentials
}

// UpdateUserRole changes a user's role. A missing id yields nil with no write.
func UpdateUserRole(ctx *Context, userID, newRole string) *models.User {
	if !models.ValidRole(newRole) {
		return nil
	}

	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	users := []models.User{}
	ctx.Store().Get(models.KeyUsers, &users)
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		oldRole := users[i].Role
		t := now()
		users[i].Role = newRole
		users[i].UpdatedAt = &t
		if !ctx.Store().Set(models.KeyUsers, users) {
			return nil
		}
		recordActivity(ctx, models.ActivityUserRoleUpdated,
			fmt.Sprintf("Changed %s role from %s to %s", users[i].FullName(),
				models.RoleDisplayName(oldRole), models.RoleDisplayName(newRole)), "")
		u := users[i]
		return &u
	}
	return nil
}

// DeactivateUser soft-deletes a user: the record stays but is flagged
// inactive with a deactivation timestamp and actor. A missing id yields nil.
func DeactivateUser(ctx *Context, userID string) *models.User {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()

	users := []models.User{}
	ctx.Store().Get(models.KeyUsers, &users)
	for i := range users {
		if users[i].ID != userID {
			continue
		}
		t := now()
		users[i].Active = false
		users[i].DeactivatedAt = &t
		users[i].DeactivatedBy = ctx.actor().ID
		if !ctx.Store().Set(models.KeyUsers, users) {
			return nil
		}
		recordActivity(ctx, models.ActivityUserDeactivated,
			"Deactivated user: "+users[i].FullName(), "")
		u := users[i]
		return &u
	}
	return nil
}

// findByEmail matches case-insensitively; the email uniqueness invariant is
// defined over folded emails.
func findByEmail(users []models.User, email string) *models.User {
	for i := range users {
		if users[i].Email != "" && strings.EqualFold(users[i].Email, email) {
			return &users[i]
		}
	}
	return nil
}

// findByUID matches on the external identity id.
func findByUID(users []models.User, uid string) *models.User {
	if uid == "" {
		return nil
	}
	for i := range users {
		if users[i].UID == uid {
			return &users[i]
		}
	}
	return nil
}
