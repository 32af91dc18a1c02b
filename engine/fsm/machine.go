package fsm

import (
	"time"

	"github.com/pkg/errors"
)

// maxCompletionChain bounds back-to-back completion transitions
const maxCompletionChain = 32

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	m := &Machine[T]{
		nodes:           make(map[StateID]*Node[T]),
		events:          make(map[string]EventType),
		guardReg:        make(map[string]GuardFunc[T]),
		guardFactoryReg: make(map[string]GuardFactoryFunc[T]),
		actionReg:       make(map[string]ActionFunc[T]),
	}
	m.RegisterGuardFactory("StateTimeExceeds", stateTimeExceeds[T])
	return m
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterGuardFactory adds a parameterized guard factory to the registry
func (m *Machine[T]) RegisterGuardFactory(name string, factory GuardFactoryFunc[T]) {
	m.guardFactoryReg[name] = factory
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// RegisterEvent names an event type for config triggers
func (m *Machine[T]) RegisterEvent(name string, et EventType) {
	m.events[name] = et
}

// Init enters the initial state
func (m *Machine[T]) Init(ctx T) error {
	if err := m.Validate(); err != nil {
		return err
	}
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return errors.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = node.ID
	m.timeInState = 0
	m.epoch++
	runActions(ctx, node.OnEnter)
	m.runCompletions(ctx)
	return nil
}

// Update advances time in state, runs per-tick actions and completion transitions
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}
	m.timeInState += dt
	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.runCompletions(ctx)
}

// HandleEvent fires the first matching transition of the active state
// Returns true if the event triggered a transition
func (m *Machine[T]) HandleEvent(ctx T, et EventType) bool {
	if m.activeStateID == StateNone || et == EventNone {
		return false
	}
	if t, ok := m.match(ctx, et); ok {
		m.transition(ctx, t.TargetID)
		m.runCompletions(ctx)
		return true
	}
	return false
}

// HandleEventAt is HandleEvent for a delayed trigger that captured Epoch earlier
// Stale epochs are ignored, so timers armed in a previous state cannot fire
func (m *Machine[T]) HandleEventAt(ctx T, et EventType, epoch uint64) bool {
	if epoch != m.epoch {
		return false
	}
	return m.HandleEvent(ctx, et)
}

// match returns the first enabled transition for et
func (m *Machine[T]) match(ctx T, et EventType) (Transition[T], bool) {
	node := m.nodes[m.activeStateID]
	for _, t := range node.Transitions {
		if t.Event == et && (t.Guard == nil || t.Guard(ctx)) {
			return t, true
		}
	}
	return Transition[T]{}, false
}

// runCompletions follows enabled completion transitions
func (m *Machine[T]) runCompletions(ctx T) {
	for i := 0; i < maxCompletionChain; i++ {
		t, ok := m.match(ctx, EventNone)
		if !ok {
			return
		}
		m.transition(ctx, t.TargetID)
	}
}

// transition exits the active state and enters target, bumping the epoch
func (m *Machine[T]) transition(ctx T, targetID StateID) {
	targetNode, ok := m.nodes[targetID]
	if !ok {
		return
	}
	if current, ok := m.nodes[m.activeStateID]; ok {
		runActions(ctx, current.OnExit)
	}
	m.activeStateID = targetID
	m.timeInState = 0
	m.epoch++
	runActions(ctx, targetNode.OnEnter)
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Reset exits the active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if node, ok := m.nodes[m.activeStateID]; ok {
		runActions(ctx, node.OnExit)
	}
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// Epoch returns a counter incremented on every state entry
func (m *Machine[T]) Epoch() uint64 {
	return m.epoch
}

// Current returns the active StateID
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// StateName returns the active state name
func (m *Machine[T]) StateName() string {
	if node, ok := m.nodes[m.activeStateID]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

// GetStateID resolves a state name to ID
func (m *Machine[T]) GetStateID(name string) (StateID, bool) {
	for id, node := range m.nodes {
		if node.Name == name {
			return id, true
		}
	}
	return StateNone, false
}

// stateTimeExceeds builds a guard passing once TimeInState reaches args["ms"]
func stateTimeExceeds[T any](m *Machine[T], args map[string]any) GuardFunc[T] {
	var d time.Duration
	switch v := args["ms"].(type) {
	case int64:
		d = time.Duration(v) * time.Millisecond
	case int:
		d = time.Duration(v) * time.Millisecond
	case float64:
		d = time.Duration(v * float64(time.Millisecond))
	}
	return func(T) bool {
		return m.timeInState >= d
	}
}
