// Package cli provides the interactive user account command-line client.
//
// It wires configuration, the session database, the REST API client and the
// notification layer, then runs an interactive REPL. One page is open at a
// time; each page offers its own form actions on top of the global
// navigation commands.
//
// Key features:
//   - Login / Register with client-side validation
//   - Profile: view, change password, change email
//   - User area: list registered users
//   - Logout, which always clears the local session
//
// Failed requests are handed to the dispatch package, whose decision is
// shown as a toast or a modal. The REPL is started via App.Run(ctx), which
// blocks until the user exits. See App and runREPL for details.
package cli
