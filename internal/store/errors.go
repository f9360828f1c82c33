// Package store owns every entity collection of the property.  All
// mutation flows through Store.Update, which applies a change to a copy
// of the state and swaps it in only when the change succeeds, so a
// failed operation is never partially visible.  Sentinel errors defined
// here let handlers translate outcomes into HTTP statuses.
package store

import "errors"

// ErrNotFound is returned when an operation references an id that is
// not in the store.  Referencing a stale id is a tolerated condition
// for the dashboard (the UI may race a deletion or a reseed), so
// callers treat it as "nothing needed to happen".  The sentinel makes
// that outcome observable instead of silent; handlers translate it
// into an HTTP 404 response.
var ErrNotFound = errors.New("not found")
