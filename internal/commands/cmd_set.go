package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/internal/core/logging"
	"github.com/colonyops/starters/internal/core/starters"
	"github.com/colonyops/starters/internal/core/styles"
	"github.com/colonyops/starters/pkg/iojson"
)

// SetInput is the JSON document accepted by the set command.
type SetInput struct {
	ConversationStarters []string `json:"conversation_starters"`
}

// Validate checks the starters against limits after blank entries are removed.
func (in SetInput) Validate(limits starters.Limits) error {
	return agent.ValidateStarters("conversation_starters", agent.CleanStarters(in.ConversationStarters), limits)
}

type SetCmd struct {
	flags  *Flags
	reader iojson.FileReader[SetInput]
}

// NewSetCmd creates a new set command
func NewSetCmd(flags *Flags) *SetCmd {
	return &SetCmd{flags: flags}
}

// Register adds the set command to the application
func (cmd *SetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "set",
		Usage:     "Replace an agent's conversation starters from JSON",
		UsageText: "starters set <agent-id> [-f file.json]",
		Description: `Reads {"conversation_starters": ["...", "..."]} from a file or stdin
and replaces the agent's starter list. Blank entries are dropped; the
remaining list is checked against the configured count and length limits.

Example:
  echo '{"conversation_starters": ["Summarize this", "Explain like I am five"]}' | starters set abc123`,
		Flags:         []cli.Flag{cmd.reader.Flag()},
		ShellComplete: AgentIDCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

func (cmd *SetCmd) run(ctx context.Context, c *cli.Command) error {
	id, err := requireAgentArg(c)
	if err != nil {
		return err
	}
	ctx = logging.WithAgentID(logging.WithCommand(ctx, "set"), id)

	input, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	if err := input.Validate(cmd.flags.Config.Limits()); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}

	a, err := loadAgent(ctx, cmd.flags, id)
	if err != nil {
		return err
	}

	a.ConversationStarters = agent.CleanStarters(input.ConversationStarters)
	if err := cmd.flags.Store.Save(ctx, a); err != nil {
		return fmt.Errorf("save agent: %w", err)
	}

	log.Info().Ctx(ctx).Int("starters", len(a.ConversationStarters)).Msg("starters replaced")
	_, _ = fmt.Fprintln(c.Root().Writer, styles.SuccessStyle.Render(cmd.flags.Localizer.T("com_ui_saved"))+" "+a.ID)

	return nil
}
