package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	err   error
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return f.err
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Demo(_ context.Context, a []string) error { return f.record("demo", a...) }
func (f *fakeExec) Submit(context.Context) error             { return f.record("submit") }
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) WhoAmI(context.Context) error                 { return f.record("whoami") }
func (f *fakeExec) Register(context.Context) error               { return f.record("register") }
func (f *fakeExec) Email(_ context.Context, a []string) error    { return f.record("email", a...) }
func (f *fakeExec) Search(_ context.Context, a []string) error   { return f.record("search", a...) }
func (f *fakeExec) Filter(_ context.Context, a []string) error   { return f.record("filter", a...) }
func (f *fakeExec) Filters(context.Context) error                { return f.record("filters") }
func (f *fakeExec) Clear(context.Context) error                  { return f.record("clear") }
func (f *fakeExec) Next(context.Context) error                   { return f.record("next") }
func (f *fakeExec) Prev(context.Context) error                   { return f.record("prev") }
func (f *fakeExec) Case(_ context.Context, a []string) error     { return f.record("case", a...) }
func (f *fakeExec) Types(context.Context) error                  { return f.record("types") }
func (f *fakeExec) Statuses(context.Context) error               { return f.record("statuses") }
func (f *fakeExec) Forms(context.Context) error                  { return f.record("forms") }
func (f *fakeExec) Category(_ context.Context, a []string) error { return f.record("category", a...) }
func (f *fakeExec) Find(_ context.Context, a []string) error     { return f.record("find", a...) }
func (f *fakeExec) Form(_ context.Context, a []string) error     { return f.record("form", a...) }
func (f *fakeExec) Download(_ context.Context, a []string) error { return f.record("download", a...) }
func (f *fakeExec) Hearings(_ context.Context, a []string) error { return f.record("hearings", a...) }

// capturePrint redirects printlnFn into a string slice for the test.
func capturePrint(t *testing.T) *[]string {
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

func TestRunREPL_DispatchesCommands(t *testing.T) {
	capturePrint(t)

	input := strings.Join([]string{
		"demo 2",
		"submit",
		"",
		"search 3",
		"filter party_name Maria Silva",
		"filters",
		"clear",
		"next",
		"prev",
		"case 7",
		"types",
		"statuses",
		"forms",
		"category civil",
		"find petição",
		"form 3",
		"download 3",
		"hearings 2024-05-01 - Sala 1",
		"whoami",
		"email a@b.pt",
		"logout",
		"exit",
		"search",
	}, "\n")

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader(input)))

	want := []string{
		"demo 2", "submit", "search 3", "filter party_name Maria Silva", "filters", "clear",
		"next", "prev", "case 7", "types", "statuses", "forms", "category civil", "find petição",
		"form 3", "download 3", "hearings 2024-05-01 - Sala 1", "whoami", "email a@b.pt", "logout",
	}
	assert.Equal(t, want, exec.calls)
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "(online)" }, bufio.NewReader(strings.NewReader("help\nlogin\nhelp\n")))

	var helps []string
	for _, l := range *lines {
		if strings.HasPrefix(l, "Available commands:") {
			helps = append(helps, l)
		}
	}
	require.Len(t, helps, 2)
	assert.NotContains(t, helps[0], "logout")
	assert.Contains(t, helps[1], "logout")
	assert.Contains(t, *lines, "tribunal (online)> ")
}

func TestRunREPL_UnknownCommandAndUsage(t *testing.T) {
	lines := capturePrint(t)

	exec := &fakeExec{err: usageError("case <id>")}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("foobar\ncase\nquit\n")))

	assert.Contains(t, *lines, "Unknown command: foobar")
	assert.Contains(t, *lines, "usage: case <id>")
	assert.Contains(t, *lines, "Bye!")
}

func TestRunREPL_StopsOnCancelledContext(t *testing.T) {
	capturePrint(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	exec := &fakeExec{}
	runREPL(ctx, exec, func() string { return "" }, bufio.NewReader(strings.NewReader("search\n")))
	assert.Empty(t, exec.calls)
}
