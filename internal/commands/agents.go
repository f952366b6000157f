package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/starters/internal/core/agent"
)

// requireAgentArg returns the agent ID passed as the first positional argument.
func requireAgentArg(c *cli.Command) (string, error) {
	id := strings.TrimSpace(c.Args().First())
	if id == "" {
		return "", fmt.Errorf("agent id is required. Run '%s --help' for usage", c.FullName())
	}
	return id, nil
}

// loadAgent fetches id from the store, turning a missing agent into a
// readable error.
func loadAgent(ctx context.Context, flags *Flags, id string) (agent.Agent, error) {
	a, err := flags.Store.Get(ctx, id)
	if errors.Is(err, agent.ErrNotFound) {
		return agent.Agent{}, fmt.Errorf("agent %q not found", id)
	}
	if err != nil {
		return agent.Agent{}, fmt.Errorf("get agent: %w", err)
	}
	return a, nil
}
