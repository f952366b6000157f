package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/colonyops/starters/internal/core/agent"
)

// AgentsFile is the root JSON structure stored on disk.
type AgentsFile struct {
	Agents []agent.Agent `json:"agents"`
}

// AgentStore implements agent.Store using a JSON file for persistence.
type AgentStore struct {
	path string
	mu   sync.RWMutex
	now  func() time.Time
}

// NewAgentStore creates a new JSON file agent store at the given path.
func NewAgentStore(path string) *AgentStore {
	return &AgentStore{path: path, now: time.Now}
}

// Path returns the file backing the store.
func (s *AgentStore) Path() string { return s.path }

// List returns all agents in the order they were first saved.
func (s *AgentStore) List(ctx context.Context) ([]agent.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return nil, err
	}

	return file.Agents, nil
}

// Get returns an agent by ID. Returns agent.ErrNotFound if not found.
func (s *AgentStore) Get(ctx context.Context, id string) (agent.Agent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	file, err := s.load()
	if err != nil {
		return agent.Agent{}, err
	}

	for _, a := range file.Agents {
		if a.ID == id {
			return a, nil
		}
	}

	return agent.Agent{}, agent.ErrNotFound
}

// Save inserts or replaces an agent. Blank starters are dropped and UpdatedAt
// is refreshed.
func (s *AgentStore) Save(ctx context.Context, a agent.Agent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	a.ConversationStarters = agent.CleanStarters(a.ConversationStarters)
	a.UpdatedAt = s.now().UTC()

	idx := slices.IndexFunc(file.Agents, func(existing agent.Agent) bool { return existing.ID == a.ID })
	if idx >= 0 {
		file.Agents[idx] = a
	} else {
		file.Agents = append(file.Agents, a)
	}

	return s.save(file)
}

// Delete removes an agent. Returns agent.ErrNotFound if not found.
func (s *AgentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, err := s.load()
	if err != nil {
		return err
	}

	idx := slices.IndexFunc(file.Agents, func(existing agent.Agent) bool { return existing.ID == id })
	if idx < 0 {
		return agent.ErrNotFound
	}

	file.Agents = slices.Delete(file.Agents, idx, idx+1)
	return s.save(file)
}

// load reads the agents file from disk.
// Returns empty AgentsFile if file doesn't exist.
func (s *AgentStore) load() (AgentsFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return AgentsFile{}, nil
		}
		return AgentsFile{}, err
	}

	if len(data) == 0 {
		return AgentsFile{}, nil
	}

	var file AgentsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return AgentsFile{}, err
	}

	return file, nil
}

// save writes the agents file to disk atomically.
func (s *AgentStore) save(file AgentsFile) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}

	if file.Agents == nil {
		file.Agents = []agent.Agent{}
	}

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmp, s.path)
}
