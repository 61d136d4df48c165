// context.go
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
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/monastery360/datastore/internal/models"
	"github.com/monastery360/datastore/internal/store"
)

// systemActor is the activity snapshot used when no session user is set.
var systemActor = models.User{ID: "system", FirstName: "System"}

// Context carries the store handle and the session pointer for one deployment
// of the data layer. Every service operation takes a Context explicitly; there
// is no process-wide state, so tests run against isolated in-memory stores.
//
// The mutex serializes read-modify-write sequences. The browser original got
// this for free from the single-threaded event loop; HTTP handlers do not.
// Writers from other processes sharing the same database still race with this
// one (last writer wins), same as two browser tabs sharing localStorage.
type Context struct {
	store store.Store
	mu    sync.Mutex
}

// NewContext wraps a store in a fresh Context with no session user.
func NewContext(s store.Store) *Context {
	return &Context{store: s}
}

// Store exposes the underlying store adapter.
func (c *Context) Store() store.Store {
	return c.store
}

// CurrentUser returns a copy of the session user, or nil when signed out.
// It is a value copy: later edits to the user record do not propagate into
// an already-fetched session pointer.
func (c *Context) CurrentUser() *models.User {
	var u models.User
	if !c.store.Get(models.KeyCurrentUser, &u) {
		return nil
	}
	return &u
}

// SetCurrentUser points the session at a copy of u.
func (c *Context) SetCurrentUser(u models.User) bool {
	return c.store.Set(models.KeyCurrentUser, u)
}

// ClearCurrentUser signs the session out. The underlying user record stays.
func (c *Context) ClearCurrentUser() bool {
	return c.store.Delete(models.KeyCurrentUser)
}

// actor returns the session user snapshot for audit entries, or the system
// placeholder when nobody is signed in.
func (c *Context) actor() models.User {
	if u := c.CurrentUser(); u != nil {
		return *u
	}
	return systemActor
}

// newID mints a collision-resistant entity id. The prefix keeps ids
// self-describing ("monastery_...", "activity_...") like the original's
// timestamp-based ids, without their collision window.
func newID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}

// now is replaceable in tests that pin wall-clock-dependent output.
var now = time.Now
