// Package services implements the client operations behind the CLI. Each
// operation calls the API, normalises failures into a user-facing message
// stored in the relevant state slice, and returns the original error.
package services
