package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

const helpText = `Available commands:
  users | adduser | edituser <n> | deluser <n> | user <n>
  batches | addbatch | editbatch <n> | delbatch <n> | batch <n>
  scan | scans | remove <code> | export
  logout | help | exit`

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	ListUsers(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, ref string) error
	DeleteUser(ctx context.Context, ref string) error
	SelectUser(ctx context.Context, ref string) error

	ListBatches(ctx context.Context) error
	AddBatch(ctx context.Context) error
	EditBatch(ctx context.Context, ref string) error
	DeleteBatch(ctx context.Context, ref string) error
	SelectBatch(ctx context.Context, ref string) error

	Scan(ctx context.Context) error
	ListScans(ctx context.Context) error
	RemoveScan(ctx context.Context, code string) error
	Export(ctx context.Context) error

	Logout(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, exit or quit. The prompt,
// built from statusFn, goes to prompt. Errors returned by commands are
// printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, prompt io.Writer) {
	withArg := func(usage string, args []string, fn func(context.Context, string) error) error {
		if len(args) == 0 {
			printlnFn("Usage:", usage)
			return nil
		}
		return fn(ctx, strings.Join(args, " "))
	}

	for {
		if ctx.Err() != nil {
			return
		}
		fmt.Fprintf(prompt, "scanbatch %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "users":
			err = a.ListUsers(ctx)
		case "adduser":
			err = a.AddUser(ctx)
		case "edituser":
			err = withArg("edituser <n>", args, a.EditUser)
		case "deluser":
			err = withArg("deluser <n>", args, a.DeleteUser)
		case "user":
			err = withArg("user <n>", args, a.SelectUser)

		case "batches":
			err = a.ListBatches(ctx)
		case "addbatch":
			err = a.AddBatch(ctx)
		case "editbatch":
			err = withArg("editbatch <n>", args, a.EditBatch)
		case "delbatch":
			err = withArg("delbatch <n>", args, a.DeleteBatch)
		case "batch":
			err = withArg("batch <n>", args, a.SelectBatch)

		case "scan":
			err = a.Scan(ctx)
		case "scans":
			err = a.ListScans(ctx)
		case "remove":
			err = withArg("remove <code>", args, a.RemoveScan)
		case "export":
			err = a.Export(ctx)

		case "logout":
			err = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
			continue
		}

		if err != nil {
			printlnFn(describe(err))
		}
	}
}
