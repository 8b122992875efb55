// Package cli is the terminal frontend for the dashboard API. It
// drives the same session and expense stores a graphical frontend
// would, one subcommand per screen.
package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/boltdash/driver-dashboard/internal/client"
	"github.com/boltdash/driver-dashboard/internal/core/domain"
)

const usage = `usage: dashctl [-server URL] <command>

commands:
  signup     register a new driver account
  login      sign in and keep the session cookie for this run
  logout     sign out
  profile    show the signed-in driver's profile
  expenses   list recorded expenses
  add        record an expense (-category, -amount, -date, -description)
  summary    show expense totals and net profit
  dashboard  show earnings and trip statistics
`

// App wires the client stores to a terminal.
type App struct {
	api      *client.API
	session  *client.SessionStore
	expenses *client.ExpenseStore
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(baseURL string, log zerolog.Logger) (*App, error) {
	api, err := client.NewAPI(baseURL)
	if err != nil {
		return nil, err
	}
	return &App{
		api:      api,
		session:  client.NewSessionStore(api, log),
		expenses: client.NewExpenseStore(api, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run executes a single subcommand. The session cookie only lives for
// the process, so authenticated commands prompt for credentials first
// unless a login already happened in the same run.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("no command given")
	}

	switch args[0] {
	case "signup":
		return a.signup(ctx)
	case "login":
		return a.login(ctx)
	case "logout":
		a.session.Logout(ctx)
		fmt.Fprintln(a.out, "Signed out.")
		return nil
	case "profile":
		return a.profile(ctx)
	case "expenses":
		return a.listExpenses(ctx)
	case "add":
		return a.addExpense(ctx, args[1:])
	case "summary":
		return a.summary(ctx)
	case "dashboard":
		return a.dashboard(ctx)
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func (a *App) signup(ctx context.Context) error {
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}
	fullname, err := promptText(a.reader, "Full name", a.out)
	if err != nil {
		return err
	}
	phone, err := promptText(a.reader, "Phone (optional)", a.out)
	if err != nil {
		return err
	}

	input := client.SignupInput{Email: email, Password: password, Fullname: fullname, Phone: phone}
	if err := a.session.Signup(ctx, input); err != nil {
		fmt.Fprintf(a.out, "Signup failed: %s\n", a.session.LastError())
		return err
	}
	fmt.Fprintf(a.out, "Welcome, %s.\n", a.session.User().Fullname)
	return nil
}

func (a *App) login(ctx context.Context) error {
	email, err := promptText(a.reader, "Email", a.out)
	if err != nil {
		return err
	}
	password, err := promptPassword(a.out)
	if err != nil {
		return err
	}

	if err := a.session.Login(ctx, email, password); err != nil {
		fmt.Fprintf(a.out, "Login failed: %s\n", a.session.LastError())
		return err
	}
	fmt.Fprintf(a.out, "Welcome back, %s.\n", a.session.User().Fullname)
	return nil
}

func (a *App) profile(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		return err
	}
	user := a.session.User()

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Name:\t%s\n", user.Fullname)
	fmt.Fprintf(w, "Email:\t%s\n", user.Email)
	if user.Phone != "" {
		fmt.Fprintf(w, "Phone:\t%s\n", user.Phone)
	}
	if user.Vehicle.Make != "" {
		fmt.Fprintf(w, "Vehicle:\t%s %s (%d) %s\n",
			user.Vehicle.Make, user.Vehicle.Model, user.Vehicle.Year, user.Vehicle.LicensePlate)
	}
	return w.Flush()
}

func (a *App) listExpenses(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	a.expenses.Fetch(ctx)
	list, reason := a.expenses.Expenses()
	if reason != nil {
		fmt.Fprintf(a.out, "No expenses to show: %s\n", reason)
		return nil
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No expenses recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tCATEGORY\tAMOUNT\tDESCRIPTION")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", e.Date.Format("2006-01-02"), e.Category, e.Amount, e.Description)
	}
	return w.Flush()
}

func (a *App) addExpense(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(a.out)
	category := fs.String("category", "", "expense category (fuel, maintenance, insurance, airtime, other)")
	amount := fs.Float64("amount", 0, "amount spent")
	date := fs.String("date", "", "date as YYYY-MM-DD (defaults to today)")
	description := fs.String("description", "", "free-form note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	input := client.ExpenseInput{
		Date:        *date,
		Category:    *category,
		Amount:      *amount,
		Description: *description,
	}
	if err := a.expenses.Add(ctx, input); err != nil {
		fmt.Fprintf(a.out, "Could not save expense: %s\n", err)
		return err
	}

	s := a.expenses.Summary()
	fmt.Fprintf(a.out, "Expense saved. Total spent: %.2f\n", s.Total)
	return nil
}

func (a *App) summary(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	a.expenses.Fetch(ctx)
	if _, reason := a.expenses.Expenses(); reason != nil {
		fmt.Fprintf(a.out, "No expenses to summarise: %s\n", reason)
		return nil
	}
	s := a.expenses.Summary()

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Total spent:\t%.2f\n", s.Total)
	fmt.Fprintf(w, "Last 7 days:\t%.2f\n", s.Weekly)
	fmt.Fprintf(w, "Last month:\t%.2f\n", s.Monthly)
	fmt.Fprintf(w, "Net profit:\t%.2f\n", s.NetProfit)

	if len(s.ByCategory) > 0 {
		categories := make([]string, 0, len(s.ByCategory))
		for cat := range s.ByCategory {
			categories = append(categories, string(cat))
		}
		sort.Strings(categories)
		fmt.Fprintln(w, "\nBY CATEGORY")
		for _, cat := range categories {
			fmt.Fprintf(w, "%s:\t%.2f\n", cat, s.ByCategory[domain.ExpenseCategory(cat)])
		}
	}
	return w.Flush()
}

func (a *App) dashboard(ctx context.Context) error {
	if err := a.ensureSession(ctx); err != nil {
		return err
	}

	d, err := a.api.Dashboard(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Today:\t%.2f\n", d.Earnings.Daily)
	fmt.Fprintf(w, "This week:\t%.2f\n", d.Earnings.Weekly)
	fmt.Fprintf(w, "This month:\t%.2f\n", d.Earnings.Monthly)
	fmt.Fprintf(w, "All time:\t%.2f\n", d.Earnings.Total)
	fmt.Fprintf(w, "Rating:\t%.2f\n", d.AverageRating)
	fmt.Fprintf(w, "Active hours today:\t%.1f\n", d.ActiveHoursToday)
	if err := w.Flush(); err != nil {
		return err
	}

	if len(d.Trips) > 0 {
		fmt.Fprintln(a.out, "\nRECENT TRIPS")
		tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tFROM\tTO\tEARNINGS\tSTATUS")
		for _, trip := range d.Trips {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\n",
				trip.Date.Format("2006-01-02"), trip.Pickup, trip.Dropoff, trip.Earnings, trip.Status)
		}
		return tw.Flush()
	}
	return nil
}

// ensureSession restores the session from the cookie jar or, failing
// that, runs an interactive login.
func (a *App) ensureSession(ctx context.Context) error {
	if a.session.State() == client.StateAuthenticated {
		return nil
	}
	a.session.Restore(ctx)
	if a.session.State() == client.StateAuthenticated {
		return nil
	}
	fmt.Fprintln(a.out, "Please log in first.")
	return a.login(ctx)
}
