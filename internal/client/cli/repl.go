package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/client/validation"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL drives. *App satisfies it.
type execIface interface {
	isLoggedIn() bool
	Count(ctx context.Context) error
	Register(ctx context.Context) error
	Contact(ctx context.Context) error
	Chat(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Dashboard(ctx context.Context) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF or when the user types "exit" or "quit".
//
//	Everyone:
//	  - help           - show available commands
//	  - count          - community counters
//	  - register       - directory registration wizard
//	  - contact        - contact form
//	  - chat           - AI assistant
//	  - login          - admin sign-in
//	  - dashboard      - admin dashboard (asks for sign-in every time)
//	  - exit | quit    - leave the program
//
//	Signed in:
//	  - status         - show the stored session
//	  - logout         - forget the stored session
//
// Handler errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal (%s) > ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: count, register, contact, chat, dashboard, status, logout, exit")
			} else {
				printlnFn("Available commands: count, register, contact, chat, login, dashboard, exit")
			}

		case "count", "home":
			report(a.Count(ctx))

		case "register":
			report(a.Register(ctx))

		case "contact":
			report(a.Contact(ctx))

		case "chat":
			report(a.Chat(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "status":
			report(a.Status(ctx))

		case "dashboard", "admin":
			report(a.Dashboard(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err == nil || errors.Is(err, io.EOF) {
		return
	}
	printlnFn("Error:", describe(err))
}

// describe renders err for the terminal: per-field lines for validation
// failures, the backend's message for API failures.
func describe(err error) string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		lines := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			lines = append(lines, "  - "+fe.Message)
		}
		return "please fix the following:\n" + strings.Join(lines, "\n")
	}
	if e, ok := api.AsError(err); ok {
		return e.Display()
	}
	return err.Error()
}
