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
	hasToken() bool
	SetToken(ctx context.Context) error
	Status(ctx context.Context) error
	Report(ctx context.Context, args []string) error
	DeleteUser(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits on EOF or when the user types "exit" or "quit". Command
// errors are reported by the handlers themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("huddle %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.hasToken() {
				printlnFn("Available commands: status, report [lat lng], delete-user, delete-account, token, exit")
			} else {
				printlnFn("Available commands: token, status, exit")
			}

		case "token":
			_ = a.SetToken(ctx)

		case "status":
			_ = a.Status(ctx)

		case "report":
			_ = a.Report(ctx, args)

		case "delete-user":
			_ = a.DeleteUser(ctx)

		case "delete-account":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
