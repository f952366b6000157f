package logging

import (
	"context"
	"testing"
)

func TestWithAgentID(t *testing.T) {
	ctx := context.Background()
	agentID := "test-agent-456"

	ctx = WithAgentID(ctx, agentID)
	got := GetAgentID(ctx)

	if got != agentID {
		t.Errorf("GetAgentID() = %q, want %q", got, agentID)
	}
}

func TestWithCommand(t *testing.T) {
	ctx := WithCommand(context.Background(), "edit")

	if got := GetCommand(ctx); got != "edit" {
		t.Errorf("GetCommand() = %q, want %q", got, "edit")
	}
}

func TestGetAgentID_NotPresent(t *testing.T) {
	ctx := context.Background()
	got := GetAgentID(ctx)

	if got != "" {
		t.Errorf("GetAgentID() = %q, want empty string", got)
	}
}

func TestGetCommand_NotPresent(t *testing.T) {
	if got := GetCommand(context.Background()); got != "" {
		t.Errorf("GetCommand() = %q, want empty string", got)
	}
}
