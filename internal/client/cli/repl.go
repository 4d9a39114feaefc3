package cli

import (
	"bufio"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/dmitrijs2005/useraccount/internal/client/routes"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	Page() routes.Page
	LoggedIn(ctx context.Context) bool
	Open(ctx context.Context, path string) error
	Logout(ctx context.Context) error

	SubmitLogin(ctx context.Context) error
	SubmitRegister(ctx context.Context) error
	ListUsers(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	ChangeEmail(ctx context.Context) error
}

type command func(execIface, context.Context) error

// pageCommands are the actions a page offers on top of the global ones.
var pageCommands = map[routes.Page]map[string]command{
	routes.Login:    {"login": execIface.SubmitLogin},
	routes.Register: {"register": execIface.SubmitRegister},
	routes.UserArea: {"users": execIface.ListUsers},
	routes.Profile: {
		"show":   execIface.ShowProfile,
		"passwd": execIface.ChangePassword,
		"email":  execIface.ChangeEmail,
	},
}

func pageList() string {
	names := make([]string, 0, len(routes.All))
	for _, p := range routes.All {
		names = append(names, strings.TrimSuffix(string(p), ".html"))
	}
	return strings.Join(names, ", ")
}

func helpText(p routes.Page, loggedIn bool) string {
	var cmds []string
	for name := range pageCommands[p] {
		cmds = append(cmds, name)
	}
	sort.Strings(cmds)

	cmds = append(cmds, "open <page>", "pages")
	if loggedIn {
		cmds = append(cmds, "logout")
	}
	cmds = append(cmds, "help", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}

// runREPL starts a simple read-eval-print loop for the user account CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Global commands work on every page; the
// rest depend on the page currently open:
//
//	All pages:
//	  - help           show available commands
//	  - open <page>    open a page (login, register, user-area, profile, index)
//	  - pages          list pages
//	  - logout         log out (only with an active session)
//	  - exit | quit    leave the program
//
//	login:     login
//	register:  register
//	user-area: users
//	profile:   show, passwd, email
//
// Errors returned by command handlers are ignored here; handlers report
// them through toasts, modals and the logger. The loop exits on EOF, on
// "exit"/"quit", or when ctx is done.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}

		printlnFn(fmt.Sprintf("ua %s> ", statusFn()))
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
			printlnFn(helpText(a.Page(), a.LoggedIn(ctx)))

		case "open", "go":
			if len(args) == 0 {
				printlnFn("Usage: open <page>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "pages":
			printlnFn("Pages:", pageList())

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if fn, ok := pageCommands[a.Page()][cmd]; ok {
				_ = fn(a, ctx)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}
