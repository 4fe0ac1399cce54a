package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	awaitingOTP() bool
	Login(ctx context.Context) error
	OTP(ctx context.Context, code string) error
	Resend(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the ERP client.
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - login          - submit userid and password
//	  - otp [code]     - confirm the pending login
//	  - resend         - request a new code once the countdown ends
//
//	Signed in:
//	  - dashboard      - fetch and show the dashboard (alias: refresh)
//	  - logout         - sign out after confirmation
//
//	Always:
//	  - status, help, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		if ctx.Err() != nil {
			return
		}

		fmt.Fprintf(w, "erp (%s)> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isLoggedIn():
				fmt.Fprintln(w, "Available commands: dashboard, refresh, logout, status, exit")
			case a.awaitingOTP():
				fmt.Fprintln(w, "Available commands: otp [code], resend, login, status, exit")
			default:
				fmt.Fprintln(w, "Available commands: login, status, exit")
			}

		case "login":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Already logged in, use logout first")
				continue
			}
			_ = a.Login(ctx)

		case "otp":
			_ = a.OTP(ctx, strings.Join(args, ""))

		case "resend":
			_ = a.Resend(ctx)

		case "dashboard", "refresh":
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Not logged in")
				continue
			}
			_ = a.Dashboard(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
