package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	getopt "github.com/pborman/getopt/v2"

	"github.com/rushsh/rush/core"
)

// Help lists the commands registered in m, or the names of a single one.
func Help(m *core.Manager) core.Internal {
	return func(ctx *core.Context, args []string) core.StatusCode {
		opts := getopt.New()
		opts.SetProgram("help")
		opts.SetParameters("[command]")
		namesOnly := opts.BoolLong("names", 'n', "print true names only")

		if err := opts.Getopt(append([]string{"help"}, args...), nil); err != nil {
			fmt.Fprintln(ctx.Stderr(), err)
			return usage(ctx, "help", "[-n] [command]")
		}

		var commands []*core.Command
		switch rest := opts.Args(); len(rest) {
		case 0:
			commands = m.Commands()
		case 1:
			cmd, ok := m.Resolve(rest[0])
			if !ok {
				fmt.Fprintf(ctx.Stderr(), "Unknown command: '%s'\n", rest[0])
				return core.StatusInvalidResource
			}
			commands = []*core.Command{cmd}
		default:
			return usage(ctx, "help", "[-n] [command]")
		}

		if *namesOnly {
			for _, cmd := range commands {
				fmt.Fprintln(ctx.Stdout(), cmd.TrueName)
			}
			return core.StatusSuccess
		}

		tw := tabwriter.NewWriter(ctx.Stdout(), 0, 8, 2, ' ', 0)
		for _, cmd := range commands {
			fmt.Fprintf(tw, "%s\t%s\n", cmd.TrueName, strings.Join(cmd.Aliases, ", "))
		}
		if err := tw.Flush(); err != nil {
			return core.StatusIOFailure
		}
		return core.StatusSuccess
	}
}
