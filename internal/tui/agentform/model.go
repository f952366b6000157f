// Package agentform provides the Bubble Tea program that edits a single agent:
// its name and its conversation starter list.
package agentform

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/starters/internal/core/agent"
	"github.com/colonyops/starters/internal/core/i18n"
	"github.com/colonyops/starters/internal/core/logging"
	"github.com/colonyops/starters/internal/core/starters"
	"github.com/colonyops/starters/internal/core/styles"
	"github.com/colonyops/starters/internal/store/jsonfile"
	"github.com/colonyops/starters/internal/tui/components"
	"github.com/colonyops/starters/internal/tui/components/form"
)

const (
	varName     = "name"
	varStarters = "conversation_starters"

	nameMaxLength = 80
)

type (
	// agentChangedMsg is sent when the agent file changes on disk.
	agentChangedMsg struct{}

	agentLoadedMsg struct {
		agent agent.Agent
		err   error
	}

	agentSavedMsg struct {
		agent agent.Agent
		err   error
	}
)

// Options configures the agent form.
type Options struct {
	Agent     agent.Agent
	Store     agent.Store
	Limits    starters.Limits
	Localizer *i18n.Localizer
	Logger    zerolog.Logger

	// Changes, when set, triggers a reload of the agent from Store after
	// every event. The starter list is replaced as an external reset.
	Changes <-chan jsonfile.FileEvent
}

// Result is the outcome of a finished form.
type Result struct {
	Agent agent.Agent
	Saved bool
}

// Model hosts a form dialog bound to one agent and persists it on submit.
type Model struct {
	ctx      context.Context
	opts     Options
	log      zerolog.Logger
	dialog   *form.Dialog
	name     *form.TextField
	starters *form.StarterListField
	confirm  *components.ConfirmModal
	baseline agent.Agent
	status   string
	err      error
	result   Result
	saving   bool
	quitting bool
}

// New creates the form for opts.Agent.
func New(ctx context.Context, opts Options) Model {
	loc := opts.Localizer
	if loc == nil {
		loc = i18n.Default().Localizer(i18n.BaseLocale)
		opts.Localizer = loc
	}

	log := logging.ComponentOf(opts.Logger, "agentform").With().Str("agent", opts.Agent.ID).Logger()

	name := form.NewTextField(loc.T("com_agents_name"), loc.T("com_agents_name_placeholder"), opts.Agent.Name).
		WithValidation(form.FieldValidation{Required: true, MaxLength: nameMaxLength})

	list := form.NewStarterListField(form.StarterListLabels{
		Title:       loc.T("com_agents_conversation_starters"),
		Placeholder: loc.T("com_agents_starter_placeholder"),
		Delete:      loc.T("com_ui_delete"),
		HelpEdit:    loc.T("com_ui_help_edit"),
		HelpDrag:    loc.T("com_ui_help_drag"),
	}, opts.Agent.ConversationStarters, opts.Limits, log)

	dialog := form.NewDialog(loc.T("com_agents_edit"), []form.Field{name, list}, []string{varName, varStarters})
	dialog.Help = loc.T("com_ui_help_form")

	return Model{
		ctx:      ctx,
		opts:     opts,
		log:      log,
		dialog:   dialog,
		name:     name,
		starters: list,
		baseline: opts.Agent,
		result:   Result{Agent: opts.Agent},
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case agentChangedMsg:
		return m, m.loadAgent()

	case agentLoadedMsg:
		return m.handleAgentLoaded(msg)

	case agentSavedMsg:
		return m.handleAgentSaved(msg)
	}

	if m.saving {
		return m, nil
	}

	if m.confirm != nil {
		return m.updateConfirm(msg)
	}

	var cmd tea.Cmd
	m.dialog, cmd = m.dialog.Update(msg)

	switch {
	case m.dialog.Cancelled() && m.Dirty():
		m.dialog.Reset()
		confirm := components.NewConfirmModal(m.opts.Localizer.T("com_ui_discard_changes"), m.opts.Localizer.T("com_ui_confirm_prompt"))
		m.confirm = &confirm
		return m, nil
	case m.dialog.Cancelled():
		m.log.Debug().Msg("form cancelled")
		m.quitting = true
		return m, tea.Quit
	case m.dialog.Submitted():
		m.saving = true
		return m, m.save()
	}

	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)

	switch {
	case confirm.Confirmed():
		m.log.Debug().Msg("changes discarded")
		m.confirm = nil
		m.quitting = true
		return m, tea.Quit
	case confirm.Cancelled():
		m.confirm = nil
		return m, nil
	}

	m.confirm = &confirm
	return m, cmd
}

func (m Model) handleAgentLoaded(msg agentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, agent.ErrNotFound) {
			m.log.Warn().Msg("agent removed on disk, keeping form contents")
		} else {
			m.log.Error().Err(msg.err).Msg("reload agent")
		}
		return m, m.waitForChange()
	}

	m.log.Debug().Int("starters", len(msg.agent.ConversationStarters)).Msg("agent reloaded")
	m.name.SetValue(msg.agent.Name)
	m.starters.SetValue(msg.agent.ConversationStarters)
	m.baseline = msg.agent
	m.status = m.opts.Localizer.T("com_ui_reloaded")
	return m, m.waitForChange()
}

func (m Model) handleAgentSaved(msg agentSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Error().Err(msg.err).Msg("save agent")
		m.err = msg.err
		m.saving = false
		m.dialog.Reset()
		return m, nil
	}

	m.log.Info().Int("starters", len(msg.agent.ConversationStarters)).Msg("agent saved")
	m.result = Result{Agent: msg.agent, Saved: true}
	m.quitting = true
	return m, tea.Quit
}

// Agent returns the agent described by the current form contents. Blank
// starters are removed.
func (m Model) Agent() agent.Agent {
	a := m.opts.Agent
	values := m.dialog.FormValues()
	if name, ok := values[varName].(string); ok {
		a.Name = strings.TrimSpace(name)
	}
	if list, ok := values[varStarters].([]string); ok {
		a.ConversationStarters = agent.CleanStarters(list)
	}
	return a
}

// Dirty reports whether the form differs from the last loaded agent.
func (m Model) Dirty() bool {
	a := m.Agent()
	return a.Name != strings.TrimSpace(m.baseline.Name) ||
		!slices.Equal(a.ConversationStarters, agent.CleanStarters(m.baseline.ConversationStarters))
}

// Result returns the outcome once the program has exited.
func (m Model) Result() Result { return m.result }

func (m Model) save() tea.Cmd {
	a := m.Agent()
	store := m.opts.Store
	limits := m.opts.Limits
	ctx := m.ctx

	return func() tea.Msg {
		if err := a.Validate(limits); err != nil {
			return agentSavedMsg{err: err}
		}
		if err := store.Save(ctx, a); err != nil {
			return agentSavedMsg{err: err}
		}
		saved, err := store.Get(ctx, a.ID)
		if err != nil {
			return agentSavedMsg{err: fmt.Errorf("reload saved agent: %w", err)}
		}
		return agentSavedMsg{agent: saved}
	}
}

func (m Model) loadAgent() tea.Cmd {
	store := m.opts.Store
	id := m.opts.Agent.ID
	ctx := m.ctx

	return func() tea.Msg {
		a, err := store.Get(ctx, id)
		return agentLoadedMsg{agent: a, err: err}
	}
}

// waitForChange blocks until the next file event. It returns nil when no
// change feed is configured.
func (m Model) waitForChange() tea.Cmd {
	if m.opts.Changes == nil {
		return nil
	}
	changes := m.opts.Changes

	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return agentChangedMsg{}
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}
	return tea.NewView(m.Render())
}

// Render returns the form content as a string.
func (m Model) Render() string {
	parts := []string{m.dialog.View()}
	if m.confirm != nil {
		parts = append(parts, "", m.confirm.View())
	}
	if m.err != nil {
		parts = append(parts, "", styles.FormErrorStyle.Render(m.opts.Localizer.T("com_ui_save_failed", m.err)))
	} else if m.status != "" {
		parts = append(parts, "", styles.TextMutedStyle.Render(m.status))
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
