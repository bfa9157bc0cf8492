// Package storage holds the client's local state that outlives a single
// request: the persisted access/refresh token pair and the process-scoped
// session storage.
//
// Tokens are kept in a small SQLite database (modernc.org/sqlite, migrated
// with embedded goose migrations) so a login survives between CLI runs, the
// same way browser cookies survive page reloads. MemoryTokenStore serves
// ephemeral runs and tests.
//
// SessionStorage lives only as long as the process and holds transient values
// such as the email awaiting signup verification.
package storage
