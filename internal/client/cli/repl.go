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
	hasRemote() bool
	List(ctx context.Context) error
	Day(ctx context.Context) error
	Meal(ctx context.Context) error
	Add(ctx context.Context) error
	Show(ctx context.Context) error
	Edit(ctx context.Context) error
	Delete(ctx context.Context) error
	Sync(ctx context.Context) error
	Seed(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the planner CLI.
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
//	- help           — show available commands
//	- list | l       — list the whole week
//	- day            — list one day (interactive day prompt)
//	- meal           — list one meal type (interactive prompt)
//	- add            — add an entry
//	- show           — show a single entry (interactive ID prompt)
//	- edit           — edit an entry
//	- delete         — delete an entry
//	- sync           — synchronize with the remote endpoint
//	- seed           — fill an empty planner with a demo week
//	- exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gohan> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.hasRemote() {
				printlnFn("Available commands: (l)ist, day, meal, add, show, edit, delete, sync, seed, exit")
			} else {
				printlnFn("Available commands: (l)ist, day, meal, add, show, edit, delete, seed, exit")
			}

		case "l", "list":
			_ = a.List(ctx)

		case "day":
			_ = a.Day(ctx)

		case "meal":
			_ = a.Meal(ctx)

		case "add":
			_ = a.Add(ctx)

		case "show":
			_ = a.Show(ctx)

		case "edit":
			_ = a.Edit(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "sync":
			if !a.hasRemote() {
				printlnFn("No remote endpoint configured")
				continue
			}
			_ = a.Sync(ctx)

		case "seed":
			_ = a.Seed(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
