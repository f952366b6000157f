package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/internal/core/styles"
)

const defaultWrapWidth = 80

type ShowCmd struct {
	flags *Flags

	// flags
	raw bool
}

// NewShowCmd creates a new show command
func NewShowCmd(flags *Flags) *ShowCmd {
	return &ShowCmd{flags: flags}
}

// Register adds the show command to the application
func (cmd *ShowCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "show",
		Usage:       "Show an agent's conversation starters",
		UsageText:   "starters show [--raw] <agent-id>",
		Description: "Renders the agent and its starters as markdown. Use --raw to print the markdown source.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "raw",
				Usage:       "print markdown without rendering",
				Destination: &cmd.raw,
			},
		},
		ShellComplete: AgentIDCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *ShowCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := requireAgentArg(c)
	if err != nil {
		return err
	}

	a, err := loadAgent(ctx, cmd.flags, id)
	if err != nil {
		return err
	}

	md := agentMarkdown(a, cmd.flags.Localizer.T("com_agents_conversation_starters"))
	w := c.Root().Writer

	if cmd.raw {
		_, err := fmt.Fprint(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(wrapWidth()),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("render markdown: %w", err)
	}

	_, err = fmt.Fprint(w, out)
	return err
}

// agentMarkdown renders a as a heading followed by a numbered starter list.
func agentMarkdown(a agent.Agent, title string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", a.Name)
	fmt.Fprintf(&b, "`%s`\n\n", a.ID)
	fmt.Fprintf(&b, "## %s\n\n", title)

	starters := agent.CleanStarters(a.ConversationStarters)
	if len(starters) == 0 {
		b.WriteString("_none_\n")
		return b.String()
	}

	for i, s := range starters {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}
	return b.String()
}

func wrapWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return min(w, 120)
	}
	return defaultWrapWidth
}
