// user.go
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

package models

import "time"

// User roles. Everything except tourist counts as an admin role.
const (
	RoleTourist         = "tourist"
	RoleMonk            = "monk"
	RoleArchivist       = "archivist"
	RoleTourismOfficial = "tourism_official"
	RoleSuperAdmin      = "super_admin"
)

var roleDisplayNames = map[string]string{
	RoleSuperAdmin:      "Super Admin",
	RoleMonk:            "Monk",
	RoleArchivist:       "Archivist",
	RoleTourismOfficial: "Tourism Official",
}

// ValidRole reports whether role is one of the known role tags.
func ValidRole(role string) bool {
	switch role {
	case RoleTourist, RoleMonk, RoleArchivist, RoleTourismOfficial, RoleSuperAdmin:
		return true
	}
	return false
}

// IsAdminRole reports whether role grants access to the admin surface.
func IsAdminRole(role string) bool {
	switch role {
	case RoleMonk, RoleArchivist, RoleTourismOfficial, RoleSuperAdmin:
		return true
	}
	return false
}

// RoleDisplayName returns the human-readable name for a role tag.
func RoleDisplayName(role string) string {
	if name, ok := roleDisplayNames[role]; ok {
		return name
	}
	return "Admin"
}

// UserPreferences holds optional per-user settings collected at registration.
type UserPreferences struct {
	Newsletter bool `json:"newsletter"`
}

// User is a local profile record. At most one user may exist per email
// (compared case-insensitively) and at most one per external identity uid.
// The password field is plaintext and only meaningful on the local-credential
// fallback path; external-identity users carry an empty password.
type User struct {
	ID            string           `json:"id"`
	UID           string           `json:"uid,omitempty"`
	FirstName     string           `json:"firstName"`
	LastName      string           `json:"lastName"`
	Email         string           `json:"email"`
	Password      string           `json:"password,omitempty"`
	Role          string           `json:"role"`
	Active        bool             `json:"active"`
	Provider      string           `json:"provider,omitempty"`
	Preferences   *UserPreferences `json:"preferences,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
	UpdatedAt     *time.Time       `json:"updatedAt,omitempty"`
	DeactivatedAt *time.Time       `json:"deactivatedAt,omitempty"`
	DeactivatedBy string           `json:"deactivatedBy,omitempty"`
}

// FullName joins the name fields for display.
func (u User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
