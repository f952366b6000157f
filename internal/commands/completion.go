package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// AgentIDCompleter returns a ShellCompleteFunc that suggests stored agent IDs
// as positional completions. Set this as the ShellComplete field on any
// cli.Command that accepts an agent ID as its argument.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func AgentIDCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Store == nil {
			return
		}

		agents, err := flags.Store.List(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, a := range agents {
			_, _ = fmt.Fprintf(w, "%s:%s\n", a.ID, a.Name)
		}
	}
}
