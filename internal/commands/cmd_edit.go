package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/starters/internal/core/config"
	"github.com/colonyops/starters/internal/core/logging"
	"github.com/colonyops/starters/internal/core/styles"
	"github.com/colonyops/starters/internal/store/jsonfile"
	"github.com/colonyops/starters/internal/tui/agentform"
)

type EditCmd struct {
	flags *Flags

	// flags
	watch bool
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "edit",
		Usage:     "Edit an agent's name and conversation starters",
		UsageText: "starters edit [--watch] <agent-id>",
		Description: `Opens an interactive form for the agent.

Type into the last row to add a starter; a new empty row appears until the
configured maximum is reached. Leaving an empty row removes it. Use ctrl+d to
delete a row and ctrl+g to grab a row, then move it with the arrow keys and
drop it with enter.

Use --watch to reload the agent when the agents file changes on disk
(json store backend only).`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "watch",
				Aliases:     []string{"w"},
				Usage:       "reload the agent when it changes on disk",
				Destination: &cmd.watch,
			},
		},
		ShellComplete: AgentIDCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := requireAgentArg(c)
	if err != nil {
		return err
	}
	ctx = logging.WithAgentID(logging.WithCommand(ctx, "edit"), id)

	a, err := loadAgent(ctx, cmd.flags, id)
	if err != nil {
		return err
	}

	opts := agentform.Options{
		Agent:     a,
		Store:     cmd.flags.Store,
		Limits:    cmd.flags.Config.Limits(),
		Localizer: cmd.flags.Localizer,
		Logger:    log.Logger,
	}

	if cmd.watch {
		if cmd.flags.Config.Store.Backend != config.BackendJSON {
			return fmt.Errorf("--watch requires the %q store backend", config.BackendJSON)
		}

		watcher, err := jsonfile.NewFileWatcher(cmd.flags.Config.AgentsFile(), log.Logger)
		if err != nil {
			return fmt.Errorf("watch agents file: %w", err)
		}
		defer func() { _ = watcher.Close() }()

		opts.Changes = watcher.Watch(ctx)
	}

	p := tea.NewProgram(agentform.New(ctx, opts), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run editor: %w", err)
	}

	result := final.(agentform.Model).Result()
	if result.Saved {
		_, _ = fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render(cmd.flags.Localizer.T("com_ui_saved"))+" "+result.Agent.ID)
	}

	return nil
}
