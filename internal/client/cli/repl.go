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
	isAdmin() bool
	Go(ctx context.Context, fragment string) error
	Register(ctx context.Context) error
	Verify(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Accounts(ctx context.Context, args []string) error
	Departments(ctx context.Context, args []string) error
	Employees(ctx context.Context, args []string) error
	// settle handles navigation caused by the last command.
	settle(ctx context.Context)
}

const (
	helpSignedOut = "Available commands: go <#/page>, register, verify, login, exit"
	helpSignedIn  = "Available commands: go <#/page>, logout, exit"
	helpAdmin     = "Available commands: go <#/page>, accounts edit|delete <id>, departments add|edit|delete [<id>], employees add|edit|delete [<id>], logout, exit"
)

// runREPL starts a simple read-eval-print loop for the staffkeeper CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	  - help: show available commands
//	  - go <fragment> | #/<page>: navigate
//	  - register | verify | login: account flows
//	  - logout: sign out
//	  - accounts edit|delete <id>: on #/accounts
//	  - departments add|edit|delete: on #/departments
//	  - employees add|edit|delete: on #/employees
//	  - exit | quit: leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// them to the user themselves. After every command the REPL lets pending
// navigation settle.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("sk %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch {
		case cmd == "help":
			switch {
			case a.isAdmin():
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpSignedIn)
			default:
				printlnFn(helpSignedOut)
			}

		case cmd == "go":
			if len(args) == 0 {
				printlnFn("Usage: go <#/page>")
				continue
			}
			_ = a.Go(ctx, args[0])

		case strings.HasPrefix(cmd, "#"):
			_ = a.Go(ctx, cmd)

		case cmd == "register":
			_ = a.Register(ctx)

		case cmd == "verify":
			_ = a.Verify(ctx)

		case cmd == "login":
			_ = a.Login(ctx)

		case cmd == "logout":
			_ = a.Logout(ctx)

		case cmd == "accounts":
			_ = a.Accounts(ctx, args)

		case cmd == "departments":
			_ = a.Departments(ctx, args)

		case cmd == "employees":
			_ = a.Employees(ctx, args)

		case cmd == "exit", cmd == "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.settle(ctx)
	}
}
