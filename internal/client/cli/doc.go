// Package cli provides the interactive community portal terminal client.
//
// It wires configuration, the local credential store, the API client and the
// application services into a REPL. Commands:
//
//   - count      - registered members and community strength
//   - register   - the four-step directory registration wizard
//   - contact    - send a message through the contact form
//   - chat       - talk to the AI assistant (en / ur)
//   - login / logout / status - admin session
//   - dashboard  - admin dashboard: members, messages, stats, CSV export
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
