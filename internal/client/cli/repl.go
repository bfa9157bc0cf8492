package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/payscope/internal/client/api"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real App
// type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Signup(ctx context.Context, args []string) error
	Verify(ctx context.Context, args []string) error
	Resend(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	WhoAmI(ctx context.Context, args []string) error
	Profile(ctx context.Context, args []string) error
	Passwd(ctx context.Context, args []string) error

	Companies(ctx context.Context, args []string) error
	Company(ctx context.Context, args []string) error
	Reviews(ctx context.Context, args []string) error
	Salaries(ctx context.Context, args []string) error
	Stats(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	ClearCache(ctx context.Context, args []string) error

	SubmitReview(ctx context.Context, args []string) error
	SubmitSalary(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	MyReviews(ctx context.Context, args []string) error
	MySalaries(ctx context.Context, args []string) error

	Pending(ctx context.Context, args []string) error
	Moderate(ctx context.Context, d api.Decision, args []string) error
}

const (
	helpGuest = "Available commands: signup, verify <code>, resend, login [email], " +
		"companies [k=v...], company <id>, reviews <id> [k=v...], salaries <id> [k=v...], " +
		"stats [k=v...], search <query>, clear, exit"
	helpUser = "Available commands: whoami, profile [set name=.. email=..], passwd, " +
		"companies [k=v...], company <id>, reviews <id> [k=v...], salaries <id> [k=v...], " +
		"stats [k=v...], search <query>, review <company-id>, salary <company-id>, " +
		"myreviews, mysalaries, delete review|salary <id>, clear, logout, exit"
	helpAdmin = "Admin commands: pending, approve review|salary <id>, reject review|salary <id>"
)

// runREPL reads commands from reader until EOF or "exit"/"quit" and
// dispatches them to a. The prompt shows statusFn(). Commands that prompt
// for more input read from the same reader.
//
// A failing command prints its user-facing error and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("payscope (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		err = nil
		switch cmd {
		case "help":
			if !a.isLoggedIn() {
				printlnFn(helpGuest)
				continue
			}
			printlnFn(helpUser)
			if a.isAdmin() {
				printlnFn(helpAdmin)
			}

		case "signup", "register":
			err = a.Signup(ctx, args)
		case "verify":
			err = a.Verify(ctx, args)
		case "resend":
			err = a.Resend(ctx, args)
		case "login":
			err = a.Login(ctx, args)
		case "logout":
			err = a.Logout(ctx, args)
		case "whoami":
			err = a.WhoAmI(ctx, args)
		case "profile":
			err = a.Profile(ctx, args)
		case "passwd":
			err = a.Passwd(ctx, args)

		case "companies", "ls":
			err = a.Companies(ctx, args)
		case "company":
			err = a.Company(ctx, args)
		case "reviews":
			err = a.Reviews(ctx, args)
		case "salaries":
			err = a.Salaries(ctx, args)
		case "stats":
			err = a.Stats(ctx, args)
		case "search":
			err = a.Search(ctx, args)
		case "clear":
			err = a.ClearCache(ctx, args)

		case "review":
			err = a.SubmitReview(ctx, args)
		case "salary":
			err = a.SubmitSalary(ctx, args)
		case "delete":
			err = a.Delete(ctx, args)
		case "myreviews":
			err = a.MyReviews(ctx, args)
		case "mysalaries":
			err = a.MySalaries(ctx, args)

		case "pending":
			err = a.Pending(ctx, args)
		case "approve":
			err = a.Moderate(ctx, api.Approve, args)
		case "reject":
			err = a.Moderate(ctx, api.Reject, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			reportError(err)
		}
	}
}

func reportError(err error) {
	if errors.Is(err, errUsage) {
		printlnFn(err.Error())
		return
	}
	printlnFn("Error:", api.ErrorMessage(err))
}

// Run restores any stored session and then serves the REPL until the input
// ends.
func (a *App) Run(ctx context.Context) {
	a.view.line("Welcome to payscope (type 'help' for commands)")
	a.restore(ctx)
	runREPL(ctx, a, a.status, a.reader)
}
