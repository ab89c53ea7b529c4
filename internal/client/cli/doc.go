// Package cli provides huddlectl, an interactive admin console for the
// Huddle functions server.
//
// It wires configuration, the typed API client and a small REPL:
//   - token: enter an access token (input is hidden)
//   - status: show the cached platform status
//   - report [lat lng]: report an app open, optionally with coordinates
//   - delete-user: delete another user (admin only, asks for confirmation)
//   - delete-account: delete the account behind the current token
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
