package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/aaywp/portal/internal/client/api"
	"github.com/aaywp/portal/internal/client/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturePrintln redirects printlnFn into a slice for the test's duration.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeExec struct {
	loggedIn bool
	calls    []string
	err      error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeExec) isLoggedIn() bool                    { return f.loggedIn }
func (f *fakeExec) Count(ctx context.Context) error     { return f.record("count") }
func (f *fakeExec) Register(ctx context.Context) error  { return f.record("register") }
func (f *fakeExec) Contact(ctx context.Context) error   { return f.record("contact") }
func (f *fakeExec) Chat(ctx context.Context) error      { return f.record("chat") }
func (f *fakeExec) Status(ctx context.Context) error    { return f.record("status") }
func (f *fakeExec) Dashboard(ctx context.Context) error { return f.record("dashboard") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	lines := capturePrintln(t)

	input := strings.Join([]string{
		"help",
		"count",
		"register",
		"contact",
		"chat",
		"login",
		"help",
		"STATUS",
		"dashboard",
		"logout",
		"",
		"foobar",
		"exit",
		"count",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "guest" }, rdr(input))

	assert.Equal(t, []string{"count", "register", "contact", "chat", "login", "status", "dashboard", "logout"}, exec.calls)

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "portal (guest) > ")
	assert.Contains(t, out, "Available commands: count, register, contact, chat, login, dashboard, exit")
	assert.Contains(t, out, "Available commands: count, register, contact, chat, dashboard, status, logout, exit")
	assert.Contains(t, out, "Unknown command: foobar")
	assert.Equal(t, "Bye!", (*lines)[len(*lines)-1])
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	capturePrintln(t)
	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("count"))
	assert.Equal(t, []string{"count"}, exec.calls)
}

func TestRunREPL_ReportsHandlerErrors(t *testing.T) {
	lines := capturePrintln(t)
	exec := &fakeExec{err: errors.New("boom")}
	runREPL(context.Background(), exec, func() string { return "s" }, rdr("count\nquit\n"))
	assert.Contains(t, *lines, "Error: boom")
}

func TestDescribe(t *testing.T) {
	verrs := validation.Errors{
		{Field: "name", Message: "Please enter your full name"},
		{Field: "cnic", Message: "Please enter your CNIC"},
	}
	got := describe(fmt.Errorf("step: %w", verrs))
	assert.Equal(t, "please fix the following:\n  - Please enter your full name\n  - Please enter your CNIC", got)

	apiErr := &api.Error{Op: "login", Status: 401, Message: "Invalid credentials"}
	assert.Equal(t, "Invalid credentials", describe(fmt.Errorf("login: %w", apiErr)))

	require.Equal(t, "plain", describe(errors.New("plain")))
}
