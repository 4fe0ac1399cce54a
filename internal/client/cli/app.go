package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmitrijs2005/erpclient/internal/client/models"
	"github.com/dmitrijs2005/erpclient/internal/logging"
)

// SessionManager is the part of services.SessionManager the front-end uses.
type SessionManager interface {
	Hydrate(ctx context.Context)
	Login(ctx context.Context, userID, password string) (models.LoginResult, error)
	VerifyOTP(ctx context.Context, ticket, otp string) (bool, error)
	FetchDashboard(ctx context.Context) error
	Logout(ctx context.Context) error

	Phase() models.Phase
	IsLoggedIn() bool
	UserID() string
	Dashboard() *models.Dashboard
	DynamicColor() string
	IsLoading() bool
	SavedKeys(ctx context.Context) ([]string, error)
}

type App struct {
	session SessionManager
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer

	// ticket of the login awaiting OTP; empty when none.
	ticket    string
	otpUser   string
	countdown *countdown
}

// NewApp builds the front-end. resendInterval is how long the OTP step waits
// before "resend" is accepted.
func NewApp(session SessionManager, log logging.Logger, resendInterval time.Duration, in io.Reader, out io.Writer) *App {
	return &App{
		session:   session,
		log:       log.With("component", "cli"),
		reader:    bufio.NewReader(in),
		out:       out,
		countdown: newCountdown(resendInterval, time.Second),
	}
}

// Run hydrates the saved session and runs the REPL until the user exits or
// input ends.
func (a *App) Run(ctx context.Context) {
	defer a.countdown.Stop()

	a.session.Hydrate(ctx)

	a.println("Welcome to the ERP client (type 'help' for commands)")
	if a.isLoggedIn() {
		a.println("Signed in as user", a.session.UserID())
		_ = a.Dashboard(ctx)
	} else {
		a.println("Please log in")
	}

	runREPL(ctx, a, a.getStatus, a.reader, a.out)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) awaitingOTP() bool {
	return a.ticket != ""
}

func (a *App) getStatus() string {
	switch {
	case a.isLoggedIn():
		return "user " + a.session.UserID()
	case a.awaitingOTP():
		return "otp"
	default:
		return "signed out"
	}
}

// Status prints the session phase, the entries saved on disk and whether a
// request is in flight.
func (a *App) Status(ctx context.Context) error {
	a.println("Phase:", string(a.session.Phase()))
	if a.isLoggedIn() {
		a.println("User:", a.session.UserID())
	}
	if a.awaitingOTP() {
		a.println("Waiting for OTP, resend available in", a.countdown.Remaining(), "s")
	}
	a.println("Theme color:", a.session.DynamicColor())
	if keys, err := a.session.SavedKeys(ctx); err != nil {
		a.log.Warn(ctx, "cannot list saved session entries", "error", err)
		a.println("Saved entries: unavailable")
	} else if len(keys) == 0 {
		a.println("Saved entries: none")
	} else {
		a.println("Saved entries:", strings.Join(keys, ", "))
	}
	if a.session.IsLoading() {
		a.println("A request is in progress")
	}
	return nil
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
