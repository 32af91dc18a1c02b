package fsm

import (
	"github.com/pkg/errors"
)

// AddState adds a node to the machine manually
// Useful for constructing the graph programmatically or during TOML load
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
		OnEnter:     make([]Action[T], 0),
		OnUpdate:    make([]Action[T], 0),
		OnExit:      make([]Action[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition adds a transition to a specific node
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return errors.Errorf("transition from unknown state %d", sourceID)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// OnEnter appends an enter action to a state
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, Action[T]{Func: fn})
	}
}

// OnExit appends an exit action to a state
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, Action[T]{Func: fn})
	}
}

// Validate checks that every transition targets a known state
func (m *Machine[T]) Validate() error {
	for id, node := range m.nodes {
		for _, t := range node.Transitions {
			if _, ok := m.nodes[t.TargetID]; !ok {
				return errors.Errorf("state %q (%d) transitions to unknown state %d", node.Name, id, t.TargetID)
			}
			if t.TargetID == id && !t.Reenter {
				return errors.Errorf("state %q has a self transition without reenter", node.Name)
			}
		}
	}
	return nil
}
