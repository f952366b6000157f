package form

import "charm.land/bubbles/v2/key"

// StarterListKeyMap holds the key bindings of a StarterListField.
type StarterListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Delete key.Binding
	Grab   key.Binding
	Drop   key.Binding
	Cancel key.Binding
}

// DefaultStarterListKeyMap returns the bindings used when none are configured.
func DefaultStarterListKeyMap() StarterListKeyMap {
	return StarterListKeyMap{
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Delete: key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
		Grab:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "grab")),
		Drop:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
