package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	ID          int                `toml:"id"`
	OnEnter     []ActionConfig     `toml:"on_enter,omitempty"`
	OnUpdate    []ActionConfig     `toml:"on_update,omitempty"`
	OnExit      []ActionConfig     `toml:"on_exit,omitempty"`
	Transitions []TransitionConfig `toml:"transitions,omitempty"`
}

// TransitionConfig represents a transition definition
type TransitionConfig struct {
	Trigger   string         `toml:"trigger"`              // Event name or "Done"
	Target    string         `toml:"target"`               // Target state name
	Guard     string         `toml:"guard,omitempty"`      // Guard function name
	GuardArgs map[string]any `toml:"guard_args,omitempty"` // Parameters for factory guards
	Reenter   bool           `toml:"reenter,omitempty"`
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action string         `toml:"action"`         // Registered action name
	Args   map[string]any `toml:"args,omitempty"` // Passed to the action as-is
}

// TriggerDone names completion transitions in config
const TriggerDone = "Done"
