// Package cli is the terminal front end of payscope: an interactive REPL and
// a set of one-shot cobra commands sharing the same App.
package cli
