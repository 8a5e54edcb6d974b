// Package script drives an App from line commands, without any window.
//
// Commands, one per line (blank lines and lines starting with # are ignored):
//
//	navigate <route>     go to a route by name
//	back                 go back
//	set <id> <value...>  set an input; the value is the rest of the line, verbatim
//	press <id>           press a button or link
//	focus <id>           move focus to an element
//	key <button>         send a virtual button (up, down, a, b, start, ...)
//	type <text...>       append text to the focused input
//	erase                delete the last character of the focused input
//	show                 print the current screen
//	route                print the current route
//	history              print the navigation history
//	quit                 stop reading
//
// Notifications are printed as "notify: <message>".
package script

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BrandonKowalski/doorstep/pkg/doorstep"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/constants"
	"github.com/BrandonKowalski/doorstep/pkg/doorstep/screens"
)

// ErrUnknownCommand is returned for a line whose first word is not a command.
var ErrUnknownCommand = errors.New("unknown command")

// Host runs command scripts against an App.
type Host struct {
	app *doorstep.App
	out io.Writer

	// Strict stops at the first failing command instead of reporting and continuing.
	Strict bool
}

// New builds an App whose notifications are written to out, and a Host for it.
// opts.Notifier is replaced.
func New(out io.Writer, opts doorstep.AppOptions) (*Host, error) {
	h := &Host{out: out}
	opts.Notifier = screens.NotifierFunc(func(message string) {
		fmt.Fprintf(h.out, "notify: %s\n", message)
	})

	app, err := doorstep.NewApp(opts)
	if err != nil {
		return nil, err
	}
	h.app = app
	return h, nil
}

// App returns the driven application.
func (h *Host) App() *doorstep.App {
	return h.app
}

// Run executes commands from r until EOF, quit, context cancellation or App.Quit.
func (h *Host) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++

		if err := ctx.Err(); err != nil {
			return err
		}
		if !h.app.Running() {
			return nil
		}

		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}

		err := h.Exec(line)
		if err == nil {
			continue
		}
		doorstep.GetInternalLogger().Debug("Script command failed", "line", lineNo, "error", err)
		if h.Strict {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		fmt.Fprintf(h.out, "error: line %d: %v\n", lineNo, err)
	}

	return scanner.Err()
}

// Exec runs a single command line.
func (h *Host) Exec(line string) error {
	cmd, rest := splitWord(strings.TrimLeft(line, " \t"))

	switch strings.ToLower(cmd) {
	case "navigate", "nav", "go":
		return h.app.Navigate(strings.TrimSpace(rest))
	case "back":
		if !h.app.GoBack() {
			fmt.Fprintln(h.out, "back: already at the first screen")
		}
		return nil
	case "set":
		id, value := splitWord(rest)
		return h.app.SetField(id, value)
	case "press":
		return h.app.Activate(strings.TrimSpace(rest))
	case "focus":
		return h.app.Focus(strings.TrimSpace(rest))
	case "key":
		button, ok := constants.ParseVirtualButton(strings.TrimSpace(rest))
		if !ok {
			return fmt.Errorf("key %q: unknown button", strings.TrimSpace(rest))
		}
		h.app.Press(button)
		return nil
	case "type":
		return h.app.Type(rest)
	case "erase":
		return h.app.Erase()
	case "show":
		h.Show()
		return nil
	case "route":
		fmt.Fprintln(h.out, h.app.CurrentName())
		return nil
	case "history":
		fmt.Fprintln(h.out, strings.Join(h.app.History(), " > "))
		return nil
	case "quit", "exit":
		h.app.Quit()
		return nil
	default:
		return fmt.Errorf("%q: %w", cmd, ErrUnknownCommand)
	}
}

// Show prints the current screen as indented text.
func (h *Host) Show() {
	v := h.app.View()
	focused, hasFocus := h.app.Focused()

	header := h.app.CurrentName()
	if v.HeaderShown {
		header = v.Title
		if h.app.CanGoBack() {
			header = "< " + header
		}
	}
	fmt.Fprintf(h.out, "[%s]\n", header)

	for _, n := range v.Nodes {
		marker := "  "
		if hasFocus && n.ID != "" && n.ID == focused.ID {
			marker = "> "
		}

		switch n.Kind {
		case screens.NodeHeading:
			fmt.Fprintf(h.out, "%s# %s\n", marker, n.Text)
		case screens.NodeSubheading:
			fmt.Fprintf(h.out, "%s%s\n", marker, n.Text)
		case screens.NodeInput:
			value := n.Field.Display()
			if value == "" {
				value = "(" + n.Field.Placeholder + ")"
			}
			fmt.Fprintf(h.out, "%s%s: %s\n", marker, n.ID, value)
		case screens.NodeButton:
			fmt.Fprintf(h.out, "%s[%s] %s\n", marker, n.Text, n.ID)
		case screens.NodeLink:
			fmt.Fprintf(h.out, "%s<%s> %s\n", marker, n.Text, n.ID)
		}
	}
}

func splitWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
