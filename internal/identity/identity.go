// identity.go
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

// Package identity adapts external authentication backends to a single
// verified-identity shape. The backends authenticate; profile storage and
// roles stay in this service.
package identity

import "context"

// Identity is the externally verified account a token resolves to.
type Identity struct {
	ID          string
	Email       string
	DisplayName string
	Provider    string
}

// Verifier validates a provider credential and resolves it to an Identity.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}
