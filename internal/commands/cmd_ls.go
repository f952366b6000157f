package commands

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	match      string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List all agents",
		UsageText: "starters ls [--match GLOB] [--json]",
		Description: `Displays a table of agents with their ID, name, and starter count.

Use --match to filter by a glob pattern applied to the agent ID or name
(for example --match 'support-*'). Use --json for one JSON object per line.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "match",
				Aliases:     []string{"m"},
				Usage:       "glob pattern matched against agent ID or name",
				Destination: &cmd.match,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	if cmd.match != "" && !doublestar.ValidatePattern(cmd.match) {
		return fmt.Errorf("invalid --match pattern %q", cmd.match)
	}

	agents, err := cmd.flags.Store.List(ctx)
	if err != nil {
		return fmt.Errorf("list agents: %w", err)
	}

	agents = filterAgents(agents, cmd.match)

	w := c.Root().Writer

	if cmd.jsonOutput {
		for _, a := range agents {
			if err := iojson.WriteLine(w, a); err != nil {
				return err
			}
		}
		return nil
	}

	if len(agents) == 0 {
		fmt.Fprintf(os.Stderr, "No agents found\n")
		return nil
	}

	slices.SortFunc(agents, func(a, b agent.Agent) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTARTERS")
	for _, a := range agents {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\n", a.ID, a.Name, len(a.ConversationStarters))
	}

	return tw.Flush()
}

// filterAgents keeps agents whose ID or name matches pattern. An empty
// pattern keeps everything.
func filterAgents(agents []agent.Agent, pattern string) []agent.Agent {
	if pattern == "" {
		return agents
	}

	out := make([]agent.Agent, 0, len(agents))
	for _, a := range agents {
		if matchGlob(pattern, a.ID) || matchGlob(pattern, a.Name) {
			out = append(out, a)
		}
	}
	return out
}

func matchGlob(pattern, s string) bool {
	ok, err := doublestar.Match(pattern, s)
	return err == nil && ok
}
