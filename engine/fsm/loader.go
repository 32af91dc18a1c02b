package fsm

import (
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// LoadConfig parses a TOML byte slice and populates the Machine
// Validates all references (states, guards, actions, events)
// Clears existing graph data before loading
func (m *Machine[T]) LoadConfig(data []byte) error {
	var config RootConfig
	if _, err := toml.Decode(string(data), &config); err != nil {
		return errors.Wrap(err, "failed to unmarshal FSM config")
	}
	if len(config.States) == 0 {
		return errors.New("FSM config defines no states")
	}

	m.nodes = make(map[StateID]*Node[T])
	m.activeStateID = StateNone
	m.timeInState = 0

	// Sort names for deterministic error reporting
	names := make([]string, 0, len(config.States))
	for name := range config.States {
		names = append(names, name)
	}
	sort.Strings(names)

	nameToID := make(map[string]StateID, len(names))
	for _, name := range names {
		cfg := config.States[name]
		if cfg == nil || cfg.ID <= 0 {
			return errors.Errorf("state '%s' needs a positive id", name)
		}
		id := StateID(cfg.ID)
		if _, dup := m.nodes[id]; dup {
			return errors.Errorf("state '%s' reuses id %d", name, cfg.ID)
		}
		nameToID[name] = id
		m.AddState(id, name)
	}

	for _, name := range names {
		cfg := config.States[name]
		node := m.nodes[nameToID[name]]

		var err error
		if node.OnEnter, err = m.compileActions(cfg.OnEnter); err != nil {
			return errors.Wrapf(err, "state '%s' OnEnter", name)
		}
		if node.OnUpdate, err = m.compileActions(cfg.OnUpdate); err != nil {
			return errors.Wrapf(err, "state '%s' OnUpdate", name)
		}
		if node.OnExit, err = m.compileActions(cfg.OnExit); err != nil {
			return errors.Wrapf(err, "state '%s' OnExit", name)
		}
		if err := m.compileTransitions(node, cfg.Transitions, nameToID); err != nil {
			return errors.Wrapf(err, "state '%s' transitions", name)
		}
	}

	initialID, ok := nameToID[config.InitialState]
	if !ok {
		return errors.Errorf("initial state '%s' not found", config.InitialState)
	}
	m.InitialStateID = initialID

	return m.Validate()
}

func (m *Machine[T]) compileActions(configs []ActionConfig) ([]Action[T], error) {
	actions := make([]Action[T], 0, len(configs))
	for _, cfg := range configs {
		fn, ok := m.actionReg[cfg.Action]
		if !ok {
			return nil, errors.Errorf("unknown action function '%s'", cfg.Action)
		}
		var args any
		if cfg.Args != nil {
			args = cfg.Args
		}
		actions = append(actions, Action[T]{Func: fn, Args: args})
	}
	return actions, nil
}

func (m *Machine[T]) compileTransitions(node *Node[T], configs []TransitionConfig, nameToID map[string]StateID) error {
	for _, cfg := range configs {
		targetID, ok := nameToID[cfg.Target]
		if !ok {
			return errors.Errorf("transition references unknown target '%s'", cfg.Target)
		}

		eventType := EventNone
		if cfg.Trigger != TriggerDone {
			et, ok := m.events[cfg.Trigger]
			if !ok {
				return errors.Errorf("unknown event type '%s'", cfg.Trigger)
			}
			eventType = et
		}

		var guard GuardFunc[T]
		if cfg.Guard != "" {
			// Check factory first
			if factory, ok := m.guardFactoryReg[cfg.Guard]; ok {
				guard = factory(m, cfg.GuardArgs)
			} else if g, ok := m.guardReg[cfg.Guard]; ok {
				guard = g
			} else {
				return errors.Errorf("unknown guard '%s'", cfg.Guard)
			}
		}

		node.Transitions = append(node.Transitions, Transition[T]{
			TargetID: targetID,
			Event:    eventType,
			Guard:    guard,
			Reenter:  cfg.Reenter,
		})
	}
	return nil
}
