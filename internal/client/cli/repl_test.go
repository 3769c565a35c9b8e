package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(context.Context) error {
	s.calls = append(s.calls, "login")
	s.loggedIn = true
	return nil
}

func (s *stubExec) Logout(context.Context) error {
	s.calls = append(s.calls, "logout")
	s.loggedIn = false
	return nil
}

func (s *stubExec) List(context.Context) error {
	s.calls = append(s.calls, "list")
	return nil
}

func (s *stubExec) Search(_ context.Context, term string) error {
	s.calls = append(s.calls, "search:"+term)
	return nil
}

func (s *stubExec) Page(_ context.Context, arg string) error {
	s.calls = append(s.calls, "page:"+arg)
	return nil
}

func (s *stubExec) NextPage(context.Context) error {
	s.calls = append(s.calls, "next")
	return nil
}

func (s *stubExec) PrevPage(context.Context) error {
	s.calls = append(s.calls, "prev")
	return nil
}

func (s *stubExec) Create(context.Context) error {
	s.calls = append(s.calls, "create")
	return nil
}

func (s *stubExec) Edit(_ context.Context, arg string) error {
	s.calls = append(s.calls, "edit:"+arg)
	return nil
}

func (s *stubExec) Delete(_ context.Context, arg string) error {
	s.calls = append(s.calls, "delete:"+arg)
	return nil
}

func (s *stubExec) ClearErrors(context.Context) error {
	s.calls = append(s.calls, "clear")
	return nil
}

// runScript feeds the lines to the REPL and collects printed output.
func runScript(t *testing.T, exec *stubExec, lines ...string) []string {
	t.Helper()

	var printed []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		printed = append(printed, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })

	scanner := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "(test)" }, scanner)
	return printed
}

func TestREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec,
		"login",
		"list",
		"l",
		"search eve holt",
		"page 2",
		"next",
		"prev",
		"create",
		"edit 7",
		"delete 7",
		"clear",
		"logout",
		"exit",
	)

	assert.Equal(t, []string{
		"login",
		"list",
		"list",
		"search:eve holt",
		"page:2",
		"next",
		"prev",
		"create",
		"edit:7",
		"delete:7",
		"clear",
		"logout",
	}, exec.calls)
}

func TestREPL_SearchWithoutArgumentClearsFilter(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "search", "quit")
	assert.Equal(t, []string{"search:"}, exec.calls)
}

func TestREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}
	printed := runScript(t, exec, "frobnicate", "exit")

	assert.Empty(t, exec.calls)
	joined := strings.Join(printed, "\n")
	assert.Contains(t, joined, "Unknown command")
}

func TestREPL_HelpDependsOnSession(t *testing.T) {
	printed := runScript(t, &stubExec{}, "help", "exit")
	assert.Contains(t, strings.Join(printed, "\n"), "login, exit")

	printed = runScript(t, &stubExec{loggedIn: true}, "help", "exit")
	assert.Contains(t, strings.Join(printed, "\n"), "logout")
}

func TestREPL_BlankLinesIgnoredAndEOFExits(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "", "   ", "")
	assert.Empty(t, exec.calls)
}
