package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Page(ctx context.Context, arg string) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	ClearErrors(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the userdir CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - list           — fetch the collection and show the current page
//	  - search <text>  — filter the view (empty to reset), back to page 1
//	  - page <n>       — jump to page n of the filtered view
//	  - next | prev    — move one page
//	  - create         — create a user (interactive prompts)
//	  - edit <id>      — update a user (empty input keeps a field)
//	  - delete <id>    — delete a user (asks for confirmation)
//	  - clear          — clear error statuses
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers render
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("userdir %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, search, page, next, prev, create, edit, delete, clear, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, arg)

		case "page":
			_ = a.Page(ctx, arg)

		case "next":
			_ = a.NextPage(ctx)

		case "prev":
			_ = a.PrevPage(ctx)

		case "create":
			_ = a.Create(ctx)

		case "edit":
			_ = a.Edit(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "clear":
			_ = a.ClearErrors(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
