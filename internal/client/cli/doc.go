// Package cli provides the interactive staffkeeper command-line client.
//
// It wires configuration, local storage, the store, the session, the router
// and the services behind a REPL. The terminal plays the part of the
// browser: fragments such as "#/accounts" are typed with "go", pages are
// printed when activated, and forms are answered line by line.
//
// Typical flow: start on "#/", log in, open an admin page with
// "go #/employees" and run "employees add" or "employees edit <id>".
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See NewApp and runREPL for details.
package cli
