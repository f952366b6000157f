package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/internal/core/styles"
	"github.com/colonyops/starters/internal/core/validate"
	"github.com/colonyops/starters/pkg/randid"
)

const agentIDLength = 8

type NewCmd struct {
	flags *Flags

	// Command-specific flags
	name string
}

// NewNewCmd creates a new new command
func NewNewCmd(flags *Flags) *NewCmd {
	return &NewCmd{flags: flags}
}

// Register adds the new command to the application
func (cmd *NewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "new",
		Usage:     "Create a new agent",
		UsageText: "starters new [--name NAME]",
		Description: `Creates an agent with no conversation starters and prints its ID.

When --name is omitted, an interactive form prompts for input.
Use 'starters edit <id>' afterwards to add starters.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Aliases:     []string{"n"},
				Usage:       "agent display name",
				Destination: &cmd.name,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *NewCmd) run(ctx context.Context, c *cli.Command) error {
	// Show interactive form if name not provided via flag
	if cmd.name == "" {
		if err := cmd.runForm(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := validate.AgentName(cmd.name); err != nil {
		return err
	}

	a := agent.Agent{
		ID:   randid.Generate(agentIDLength),
		Name: strings.TrimSpace(cmd.name),
	}

	if err := a.Validate(cmd.flags.Config.Limits()); err != nil {
		return fmt.Errorf("invalid agent: %w", err)
	}

	if err := cmd.flags.Store.Save(ctx, a); err != nil {
		return fmt.Errorf("save agent: %w", err)
	}

	log.Info().Str("agent", a.ID).Msg("agent created")
	_, _ = fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render("Agent created")+" "+a.ID)

	return nil
}

func (cmd *NewCmd) runForm() error {
	loc := cmd.flags.Localizer

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(loc.T("com_agents_name")).
				Placeholder(loc.T("com_agents_name_placeholder")).
				Validate(validate.AgentName).
				Value(&cmd.name),
		),
	).WithTheme(styles.FormTheme()).Run()
}
