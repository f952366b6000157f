// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
)

// AgentName validates an agent name is non-empty after trimming whitespace.
func AgentName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// AgentNameField returns a criterio validator for agent names.
func AgentNameField(field, name string) error {
	return criterio.Run(field, name, AgentName)
}

// AgentID validates an agent ID is non-empty and contains no whitespace.
func AgentID(id string) error {
	if id == "" {
		return fmt.Errorf("id is required")
	}
	if strings.ContainsFunc(id, func(r rune) bool { return r == ' ' || r == '\t' || r == '\n' }) {
		return fmt.Errorf("id must not contain whitespace")
	}
	return nil
}

// AgentIDField returns a criterio validator for agent IDs.
func AgentIDField(field, id string) error {
	return criterio.Run(field, id, AgentID)
}
