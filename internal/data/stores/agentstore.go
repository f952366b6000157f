package stores

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/internal/data/db"
)

// AgentStore implements agent.Store using SQLite. Starters are stored one row
// per entry, keyed by their position in the list.
type AgentStore struct {
	db  *db.DB
	now func() time.Time
}

var _ agent.Store = (*AgentStore)(nil)

// NewAgentStore creates a new SQLite-backed agent store.
func NewAgentStore(db *db.DB) *AgentStore {
	return &AgentStore{db: db, now: time.Now}
}

// List returns all agents in the order they were first saved.
func (s *AgentStore) List(ctx context.Context) ([]agent.Agent, error) {
	rows, err := s.db.Conn().QueryContext(ctx,
		"SELECT id, name, updated_at FROM agents ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var agents []agent.Agent
	for rows.Next() {
		a, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		agents = append(agents, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	for i := range agents {
		starters, err := s.loadStarters(ctx, s.db.Conn(), agents[i].ID)
		if err != nil {
			return nil, err
		}
		agents[i].ConversationStarters = starters
	}

	return agents, nil
}

// Get returns an agent by ID. Returns agent.ErrNotFound if not found.
func (s *AgentStore) Get(ctx context.Context, id string) (agent.Agent, error) {
	row := s.db.Conn().QueryRowContext(ctx,
		"SELECT id, name, updated_at FROM agents WHERE id = ?", id)

	a, err := scanAgent(row)
	if IsNotFoundError(err) {
		return agent.Agent{}, agent.ErrNotFound
	}
	if err != nil {
		return agent.Agent{}, err
	}

	a.ConversationStarters, err = s.loadStarters(ctx, s.db.Conn(), id)
	if err != nil {
		return agent.Agent{}, err
	}

	return a, nil
}

// Save creates or updates an agent and replaces its starters. Blank starters
// are dropped and UpdatedAt is refreshed.
func (s *AgentStore) Save(ctx context.Context, a agent.Agent) error {
	starters := agent.CleanStarters(a.ConversationStarters)
	updatedAt := s.now().UTC().UnixNano()

	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO agents (id, name, position, updated_at)
			VALUES (?, ?, (SELECT COALESCE(MAX(position), -1) + 1 FROM agents), ?)
			ON CONFLICT (id) DO UPDATE SET name = excluded.name, updated_at = excluded.updated_at
		`, a.ID, a.Name, updatedAt)
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, "DELETE FROM agent_starters WHERE agent_id = ?", a.ID); err != nil {
			return err
		}

		for i, text := range starters {
			_, err := tx.ExecContext(ctx,
				"INSERT INTO agent_starters (agent_id, position, text) VALUES (?, ?, ?)",
				a.ID, i, text)
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save agent: %w", err)
	}

	return nil
}

// Delete removes an agent by ID. Returns agent.ErrNotFound if not found.
func (s *AgentStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.Conn().ExecContext(ctx, "DELETE FROM agents WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	if n == 0 {
		return agent.ErrNotFound
	}

	return nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAgent(row scanner) (agent.Agent, error) {
	var (
		a         agent.Agent
		updatedAt int64
	)
	if err := row.Scan(&a.ID, &a.Name, &updatedAt); err != nil {
		if IsNotFoundError(err) {
			return agent.Agent{}, err
		}
		return agent.Agent{}, fmt.Errorf("failed to scan agent: %w", err)
	}
	a.UpdatedAt = time.Unix(0, updatedAt).UTC()
	return a, nil
}

func (s *AgentStore) loadStarters(ctx context.Context, q queryer, id string) ([]string, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT text FROM agent_starters WHERE agent_id = ? ORDER BY position", id)
	if err != nil {
		return nil, fmt.Errorf("failed to load starters for %q: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	starters := []string{}
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan starter: %w", err)
		}
		starters = append(starters, text)
	}

	return starters, rows.Err()
}
