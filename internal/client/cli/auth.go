package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/erpclient/internal/common"
)

// Login prompts for userid and password and submits them.
//
// Blank input is rejected before any request is made. On acceptance the
// returned ticket is kept, the resend countdown starts and the user is asked
// for the OTP straight away. A server rejection prints the server message.
func (a *App) Login(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter userid", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if userID == "" || strings.TrimSpace(string(password)) == "" {
		a.println("Please enter userid and password")
		return nil
	}

	res, err := a.session.Login(ctx, userID, string(password))
	if err != nil {
		a.log.Error(ctx, "login request failed", "error", err)
		a.println("Login failed, please try again")
		return err
	}
	if !res.Status {
		msg := res.Msg
		if msg == "" {
			msg = "Login failed"
		}
		a.println(msg)
		return nil
	}

	a.ticket = res.Ticket
	a.otpUser = res.UserID
	a.countdown.Start()
	a.println("A verification code was sent for user", res.UserID)

	return a.OTP(ctx, "")
}

// OTP submits a one-time code for the pending login. With an empty code the
// user is prompted for one. Codes must be exactly six digits.
func (a *App) OTP(ctx context.Context, code string) error {
	if !a.awaitingOTP() {
		a.println("No login in progress, use login first")
		return nil
	}

	if code == "" {
		var err error
		code, err = getSimpleText(a.reader, "Enter the 6-digit OTP", a.out)
		if err != nil {
			return err
		}
	}

	otp, ok := NormalizeOTP(code)
	if !ok {
		a.println("Please enter a 6-digit OTP")
		return nil
	}

	verified, err := a.session.VerifyOTP(ctx, a.ticket, otp)
	if err != nil {
		a.log.Error(ctx, "otp verification failed", "error", err)
		a.println("Verification failed, please try again")
		return err
	}
	if !verified {
		a.println("Invalid OTP")
		return nil
	}

	a.ticket = ""
	a.otpUser = ""
	a.countdown.Stop()
	a.println("Login successful")

	return a.Dashboard(ctx)
}

// Resend restarts the countdown once it has run out. No request is made.
func (a *App) Resend(_ context.Context) error {
	if !a.awaitingOTP() {
		a.println("No login in progress, use login first")
		return nil
	}
	if left := a.countdown.Remaining(); left > 0 {
		a.println("You can resend the OTP in", left, "s")
		return nil
	}

	a.countdown.Start()
	a.println("OTP resent for user", a.otpUser)
	return nil
}

// Logout asks for confirmation and signs out. Storage errors are logged only;
// the local session is cleared regardless.
func (a *App) Logout(ctx context.Context) error {
	ok, err := Confirm(a.reader, "Are you sure you want to logout?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if err := a.session.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout did not clear saved session", "error", err)
	}
	a.ticket = ""
	a.otpUser = ""
	a.countdown.Stop()
	a.println("Logged out")
	return nil
}
