package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fakestore/storefront/internal/client/nav"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with
// a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	screen() nav.Screen
	Login(ctx context.Context) error
	Reload(ctx context.Context) error
	List(ctx context.Context) error
	Filter(ctx context.Context, category string) error
	Refresh(ctx context.Context) error
	Retry(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Info(ctx context.Context) error
	Back(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and the rest as its argument, and dispatches to methods on 'a'.
// The loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Commands on the login screen: login, reload, help, exit.
// Commands on the listing: list, filter <categoria>, refresh, retry,
// open <id>, info, logout, help, exit.
// Commands on detail/group-info: back, retry (detail only), help, exit.
//
// A command issued on the wrong screen reports nav.ErrNoTransition and is
// answered with a short notice; other handler errors are logged by the
// handlers themselves. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("loja> %s > ", statusFn()))
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

		var err error
		switch cmd {
		case "help":
			switch a.screen() {
			case nav.ScreenLogin:
				printlnFn("Comandos: login, reload, exit")
			case nav.ScreenListing:
				printlnFn("Comandos: list, filter <categoria>, refresh, retry, open <id>, info, logout, exit")
			default:
				printlnFn("Comandos: back, retry, exit")
			}

		case "login":
			err = a.Login(ctx)

		case "reload":
			err = a.Reload(ctx)

		case "l", "list":
			err = a.List(ctx)

		case "filter":
			err = a.Filter(ctx, arg)

		case "refresh":
			err = a.Refresh(ctx)

		case "retry":
			err = a.Retry(ctx)

		case "open":
			err = a.Open(ctx, arg)

		case "info":
			err = a.Info(ctx)

		case "back":
			err = a.Back(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Até logo!")
			return

		default:
			printlnFn("Comando desconhecido:", cmd)
		}

		if errors.Is(err, nav.ErrNoTransition) {
			printlnFn("Comando indisponível nesta tela.")
		}
	}
}
