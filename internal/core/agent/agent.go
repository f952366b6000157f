// Package agent defines agent records and the store interface used to persist
// them. Agents own the conversation starter lists edited in the TUI.
package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/starters/internal/core/starters"
	"github.com/colonyops/starters/internal/core/validate"
)

// ErrNotFound is returned when an agent does not exist.
var ErrNotFound = errors.New("agent not found")

// Agent is a named agent definition.
type Agent struct {
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	ConversationStarters []string  `json:"conversation_starters"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Store persists agents.
type Store interface {
	List(ctx context.Context) ([]Agent, error)
	Get(ctx context.Context, id string) (Agent, error)
	Save(ctx context.Context, a Agent) error
	Delete(ctx context.Context, id string) error
}

// CleanStarters drops blank starters and trims surrounding whitespace. The
// editor keeps placeholder slots around; stored agents never do.
func CleanStarters(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if starters.IsBlank(s) {
			continue
		}
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// Validate checks the agent against the given limits.
func (a Agent) Validate(limits starters.Limits) error {
	return criterio.ValidateStruct(
		validate.AgentIDField("id", a.ID),
		validate.AgentNameField("name", a.Name),
		ValidateStarters("conversation_starters", a.ConversationStarters, limits),
	)
}

// ValidateStarters checks the count and length limits for a stored list.
func ValidateStarters(field string, list []string, limits starters.Limits) error {
	var errs criterio.FieldErrorsBuilder

	if limits.MaxStarters > 0 && len(list) > limits.MaxStarters {
		errs = errs.Append(field, fmt.Errorf("at most %d starters allowed, got %d", limits.MaxStarters, len(list)))
	}

	for i, s := range list {
		if limits.MaxLength > 0 && len([]rune(s)) > limits.MaxLength {
			errs = errs.Append(fmt.Sprintf("%s[%d]", field, i), fmt.Errorf("maximum %d characters", limits.MaxLength))
		}
	}

	return errs.ToError()
}
