package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dmitrijs2005/erpclient/internal/client/api"
	"github.com/dmitrijs2005/erpclient/internal/client/models"
)

// Dashboard fetches a fresh snapshot and prints it. When the fetch signed the
// user out (expired or missing token) the user is told to log in again.
func (a *App) Dashboard(ctx context.Context) error {
	err := a.session.FetchDashboard(ctx)
	if err != nil {
		var rej *api.RejectedError
		if errors.As(err, &rej) && rej.Message != "" {
			a.println(rej.Message)
		} else {
			a.log.Error(ctx, "dashboard fetch failed", "error", err)
			a.println("Could not load the dashboard, try 'refresh'")
		}
		return err
	}

	if !a.isLoggedIn() {
		a.println("Your session has expired, please log in again")
		return nil
	}

	renderDashboard(a.out, a.session.Dashboard(), a.session.UserID(), a.session.DynamicColor())
	return nil
}

func renderDashboard(w io.Writer, d *models.Dashboard, userID, color string) {
	var snapshot models.Dashboard
	if d != nil {
		snapshot = *d
	}

	name := snapshot.User.Name
	if name == "" {
		name = "User"
	}
	if userID == "" {
		userID = "N/A"
	}
	data := snapshot.Dashboard

	fmt.Fprintf(w, "Welcome, %s (user id %s)\n", name, userID)
	fmt.Fprintln(w, "Fees")
	fmt.Fprintf(w, "  Paid: %s\n", formatAmount(data.Amount.Paid))
	fmt.Fprintf(w, "  Due:  %s\n", formatAmount(data.Amount.Due))
	fmt.Fprintln(w, "Students")
	fmt.Fprintf(w, "  Boys:  %d\n", data.Student.Boy)
	fmt.Fprintf(w, "  Girls: %d\n", data.Student.Girl)
	fmt.Fprintf(w, "Theme color: %s\n", color)
}

func formatAmount(v models.Number) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 64)
}
