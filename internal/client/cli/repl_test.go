package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	pending  bool

	calls   []string
	otpArgs []string
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) awaitingOTP() bool { return f.pending }
func (f *fakeExec) Login(context.Context) error {
	f.calls = append(f.calls, "login")
	f.pending = true
	return nil
}
func (f *fakeExec) OTP(_ context.Context, code string) error {
	f.calls = append(f.calls, "otp")
	f.otpArgs = append(f.otpArgs, code)
	f.pending = false
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Resend(context.Context) error {
	f.calls = append(f.calls, "resend")
	return nil
}
func (f *fakeExec) Dashboard(context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) Logout(context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Status(context.Context) error {
	f.calls = append(f.calls, "status")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"dashboard",
		"login",
		"help",
		"resend",
		"otp 123 456",
		"login",
		"refresh",
		"status",
		"foobar",
		"logout",
		"exit",
		"status",
	}, "\n")

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "status" }, rdr(input), &out)

	assert.Equal(t, []string{"login", "resend", "otp", "dashboard", "status", "logout"}, exec.calls)
	assert.Equal(t, []string{"123456"}, exec.otpArgs)

	s := out.String()
	assert.Contains(t, s, "erp (status)> ")
	assert.Contains(t, s, "Available commands: login, status, exit")
	assert.Contains(t, s, "Available commands: otp [code], resend, login, status, exit")
	assert.Contains(t, s, "Not logged in")
	assert.Contains(t, s, "Already logged in")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("status"), &out)

	assert.Equal(t, []string{"status"}, exec.calls)
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(ctx, exec, func() string { return "" }, rdr("status\n"), &out)

	assert.Empty(t, exec.calls)
	assert.Empty(t, out.String())
}
