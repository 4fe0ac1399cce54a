// Package cli provides the interactive terminal front-end of the ERP client.
//
// It is a consumer of the session manager: it hydrates the saved session on
// start-up, then runs a REPL whose commands depend on whether the user is
// signed in.
//
// Key features:
//   - Login with userid and password (password read without echo)
//   - OTP confirmation with a resend countdown
//   - Dashboard rendering with the server-provided theme color
//   - Logout with confirmation
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
