package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Demo(ctx context.Context, args []string) error
	Submit(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Register(ctx context.Context) error
	Email(ctx context.Context, args []string) error

	Search(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Filters(ctx context.Context) error
	Clear(ctx context.Context) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Case(ctx context.Context, args []string) error
	Types(ctx context.Context) error
	Statuses(ctx context.Context) error

	Forms(ctx context.Context) error
	Category(ctx context.Context, args []string) error
	Find(ctx context.Context, args []string) error
	Form(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error

	Hearings(ctx context.Context, args []string) error
}

const helpLoggedOut = `Available commands:
  login                         sign in (prompts for credentials)
  demo <n>                      fill the login form with demo account n
  submit                        submit the login form
  register                      create an account
  search [page]                 search cases with the current filters
  filter <field> <value>        set a filter (case_number, party_name, case_type, status, date_from, date_to)
  filters | clear               show or reset the filters
  next | prev                   move between result pages
  case <id>                     show a case
  types | statuses              list case types or statuses
  forms                         list the forms catalog
  category <value|->            filter forms by category
  find <text|->                 search forms
  form <id> | download <id>     show or download a form
  hearings [from] [to] [room]   list scheduled hearings
  exit | quit                   leave the program`

const helpLoggedIn = helpLoggedOut + `
  whoami                        show the signed-in user
  email <address>               change your e-mail address
  logout                        sign out`

// usageError is returned by commands called with the wrong arguments.
type usageError string

func (u usageError) Error() string { return "usage: " + string(u) }

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on EOF, on "exit"/"quit" or when ctx is cancelled.
//
// Command handlers log their own failures; usage errors are printed here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("tribunal %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			cmdErr = a.Login(ctx)
		case "demo":
			cmdErr = a.Demo(ctx, args)
		case "submit":
			cmdErr = a.Submit(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.WhoAmI(ctx)
		case "register":
			cmdErr = a.Register(ctx)
		case "email":
			cmdErr = a.Email(ctx, args)

		case "search":
			cmdErr = a.Search(ctx, args)
		case "filter":
			cmdErr = a.Filter(ctx, args)
		case "filters":
			cmdErr = a.Filters(ctx)
		case "clear":
			cmdErr = a.Clear(ctx)
		case "next":
			cmdErr = a.Next(ctx)
		case "prev":
			cmdErr = a.Prev(ctx)
		case "case":
			cmdErr = a.Case(ctx, args)
		case "types":
			cmdErr = a.Types(ctx)
		case "statuses":
			cmdErr = a.Statuses(ctx)

		case "forms":
			cmdErr = a.Forms(ctx)
		case "category":
			cmdErr = a.Category(ctx, args)
		case "find":
			cmdErr = a.Find(ctx, args)
		case "form":
			cmdErr = a.Form(ctx, args)
		case "download":
			cmdErr = a.Download(ctx, args)

		case "hearings":
			cmdErr = a.Hearings(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		var usage usageError
		if errors.As(cmdErr, &usage) {
			printlnFn(usage.Error())
		}
	}
}
