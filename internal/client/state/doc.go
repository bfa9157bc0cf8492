// Package state holds the client-side view of the session and of everything
// fetched from the API, organised into slices.
//
// All writes go through Store.Dispatch, which applies them one at a time and
// drops writes made on behalf of an older generation (a generation ends on
// logout). Readers take a Snapshot.
package state
