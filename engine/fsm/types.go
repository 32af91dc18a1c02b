package fsm

import (
	"time"
)

// StateID is a unique identifier for a node
type StateID int

// StateNone marks an uninitialized machine
const StateNone StateID = 0

// EventType identifies an external trigger
// EventNone marks completion transitions, evaluated after entering a state and on every Update
type EventType int

const EventNone EventType = 0

// Machine is a flat finite state machine with an epoch counter
// T is the context type passed to actions and guards (e.g., *critter.Mover)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes  map[StateID]*Node[T]
	events map[string]EventType

	// Configuration
	InitialStateID StateID

	// Runtime State
	activeStateID StateID
	timeInState   time.Duration
	epoch         uint64

	// Dependency Injection
	guardReg        map[string]GuardFunc[T]
	guardFactoryReg map[string]GuardFactoryFunc[T]
	actionReg       map[string]ActionFunc[T]
}

// Node represents a state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines a link between states
type Transition[T any] struct {
	TargetID StateID
	Event    EventType    // EventNone = completion
	Guard    GuardFunc[T] // nil = Always true
	Reenter  bool         // Allow TargetID == source, running exit and enter again
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any // Pre-compiled payload from config
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)

// GuardFactoryFunc creates a parameterized guard from config args
// Used for configurable guards like StateTimeExceeds with duration parameter
type GuardFactoryFunc[T any] func(m *Machine[T], args map[string]any) GuardFunc[T]
