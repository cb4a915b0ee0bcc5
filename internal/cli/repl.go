package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/cebip/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool
	isMember(ctx context.Context) bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Stats(ctx context.Context) error
	Members(ctx context.Context, args []string) error
	AddMember(ctx context.Context) error
	EditMember(ctx context.Context, args []string) error
	DeleteMember(ctx context.Context, args []string) error
	Benefits(ctx context.Context, args []string) error
	Promotions(ctx context.Context, args []string) error
	AddBenefit(ctx context.Context) error
	EditBenefit(ctx context.Context, args []string) error
	DeleteBenefit(ctx context.Context, args []string) error
	ToggleBenefit(ctx context.Context, args []string) error
	AddPromotion(ctx context.Context) error
	EditPromotion(ctx context.Context, args []string) error
	DeletePromotion(ctx context.Context, args []string) error
	TogglePromotion(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Import(ctx context.Context, args []string) error
	Reset(ctx context.Context) error

	Active(ctx context.Context) error
}

const (
	helpGuest  = "Available commands: login, help, exit"
	helpAdmin  = "Available commands: stats, members [search] [status=..] [type=..], addmember, editmember [id], deletemember [id], " +
		"benefits [search], addbenefit, editbenefit [id], deletebenefit [id], togglebenefit [id], " +
		"promotions [search], addpromotion, editpromotion [id], deletepromotion [id], togglepromotion [id], " +
		"export [file], import <file>, reset, whoami, logout, exit"
	helpMember = "Available commands: active, whoami, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// Commands fall into three groups:
//
//	Anyone:
//	  - help, login, exit | quit
//
//	Administrators:
//	  - stats                        dashboard figures and recent activity
//	  - members [search] [filters]   list members (status=, type=)
//	  - addmember, editmember, deletemember
//	  - benefits [search], addbenefit, editbenefit, deletebenefit, togglebenefit
//	  - promotions [search], addpromotion, editpromotion, deletepromotion, togglepromotion
//	  - export [file], import <file>, reset
//
//	Members:
//	  - active                       current promotions and benefits
//
// whoami and logout need a session of either role. Gated commands report
// why they were refused; other handler errors are printed and the loop
// keeps going. The loop ends on EOF or exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("cebip %s> ", statusFn()))

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
			switch {
			case a.isAdmin(ctx):
				printlnFn(helpAdmin)
			case a.isMember(ctx):
				printlnFn(helpMember)
			default:
				printlnFn(helpGuest)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = requireSession(ctx, a, a.Logout)

		case "whoami":
			cmdErr = requireSession(ctx, a, a.WhoAmI)

		case "stats":
			cmdErr = requireAdmin(ctx, a, a.Stats)

		case "members":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.Members(ctx, args) })

		case "addmember":
			cmdErr = requireAdmin(ctx, a, a.AddMember)

		case "editmember":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.EditMember(ctx, args) })

		case "deletemember":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.DeleteMember(ctx, args) })

		case "benefits":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.Benefits(ctx, args) })

		case "promotions":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.Promotions(ctx, args) })

		case "addbenefit":
			cmdErr = requireAdmin(ctx, a, a.AddBenefit)

		case "editbenefit":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.EditBenefit(ctx, args) })

		case "deletebenefit":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.DeleteBenefit(ctx, args) })

		case "togglebenefit":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.ToggleBenefit(ctx, args) })

		case "addpromotion":
			cmdErr = requireAdmin(ctx, a, a.AddPromotion)

		case "editpromotion":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.EditPromotion(ctx, args) })

		case "deletepromotion":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.DeletePromotion(ctx, args) })

		case "togglepromotion":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.TogglePromotion(ctx, args) })

		case "export":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.Export(ctx, args) })

		case "import":
			cmdErr = requireAdmin(ctx, a, func(ctx context.Context) error { return a.Import(ctx, args) })

		case "reset":
			cmdErr = requireAdmin(ctx, a, a.Reset)

		case "active":
			cmdErr = requireMember(ctx, a, a.Active)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", describe(cmdErr))
		}

		if err != nil {
			return
		}
	}
}

func requireSession(ctx context.Context, a execIface, fn func(context.Context) error) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrorUnauthorized
	}
	return fn(ctx)
}

func requireAdmin(ctx context.Context, a execIface, fn func(context.Context) error) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrorUnauthorized
	}
	if !a.isAdmin(ctx) {
		return common.ErrorForbidden
	}
	return fn(ctx)
}

func requireMember(ctx context.Context, a execIface, fn func(context.Context) error) error {
	if !a.isLoggedIn(ctx) {
		return common.ErrorUnauthorized
	}
	if !a.isMember(ctx) {
		return common.ErrorForbidden
	}
	return fn(ctx)
}

// describe turns sentinel errors into something a user can act on.
func describe(err error) string {
	switch {
	case errors.Is(err, common.ErrorUnauthorized):
		return "please log in first"
	case errors.Is(err, common.ErrorForbidden):
		return "this command is not available for your role"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	default:
		return err.Error()
	}
}
