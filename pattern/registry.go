package pattern

import (
	"strings"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/critter/motion"
)

// ID identifies a movement pattern
type ID int

const (
	Random ID = iota
	Straight
	Peek
	Wander
	Pounce
	Leap
	Circle
	Edges
	Billiards
)

// Cycle multipliers, one cycle lasts speed * multiplier
const (
	randomMultiplier    = 8.0
	straightMultiplier  = 3.0
	peekMultiplier      = 1.0
	wanderMultiplier    = 4.0
	pounceMultiplier    = 9.0
	leapMultiplier      = 2.8
	circleMultiplier    = 3.6
	edgesMultiplier     = 5.2
	billiardsMultiplier = 5.0
)

// minCycle bounds the restart interval for tiny speeds
const minCycle = 16 * time.Millisecond

// Definition describes a registered pattern
type Definition struct {
	ID              ID
	Key             string // Stable identifier used in settings files
	Name            string
	NameKey         string // Translation key
	Icon            string
	CycleMultiplier float64
	Func            Func
}

// registry holds definitions in display order
var registry = buildRegistry()

func buildRegistry() *orderedmap.OrderedMap[ID, Definition] {
	m := orderedmap.NewOrderedMap[ID, Definition]()
	for _, d := range []Definition{
		{ID: Random, Key: "random", Name: "Random", Icon: "🎲", CycleMultiplier: randomMultiplier, Func: planRandom},
		{ID: Straight, Key: "straight", Name: "Straight", Icon: "➡️", CycleMultiplier: straightMultiplier, Func: planStraight},
		{ID: Peek, Key: "peek", Name: "Peek", Icon: "👀", CycleMultiplier: peekMultiplier, Func: planPeek},
		{ID: Wander, Key: "wander", Name: "Wander", Icon: "🐾", CycleMultiplier: wanderMultiplier, Func: planWander},
		{ID: Pounce, Key: "pounce", Name: "Pounce", Icon: "⚡️", CycleMultiplier: pounceMultiplier, Func: planPounce},
		{ID: Leap, Key: "leap", Name: "Leap", Icon: "🐸", CycleMultiplier: leapMultiplier, Func: planLeap},
		{ID: Circle, Key: "circle", Name: "Center Circle", Icon: "⭕️", CycleMultiplier: circleMultiplier, Func: planCircle},
		{ID: Edges, Key: "edges", Name: "Rounded Edges", Icon: "⬛️", CycleMultiplier: edgesMultiplier, Func: planEdges},
		{ID: Billiards, Key: "billiards", Name: "Billiards", Icon: "🎱", CycleMultiplier: billiardsMultiplier, Func: planBilliards},
	} {
		d.NameKey = "movement." + d.Key
		m.Set(d.ID, d)
	}
	return m
}

// Lookup returns the definition for id
func Lookup(id ID) (Definition, bool) {
	return registry.Get(id)
}

// Definitions returns all patterns in display order
func Definitions() []Definition {
	out := make([]Definition, 0, registry.Len())
	for el := registry.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value)
	}
	return out
}

// ParseID resolves a settings key, case-insensitive
func ParseID(s string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for el := registry.Front(); el != nil; el = el.Next() {
		if el.Value.Key == key {
			return el.Key, nil
		}
	}
	return Random, errors.Errorf("unknown movement pattern %q", s)
}

// String returns the settings key
func (id ID) String() string {
	if d, ok := registry.Get(id); ok {
		return d.Key
	}
	return "unknown"
}

// Valid reports whether id is registered
func (id ID) Valid() bool {
	_, ok := registry.Get(id)
	return ok
}

// CycleMultiplier returns the cycle length in units of speed, 0 for unknown ids
func CycleMultiplier(id ID) float64 {
	d, ok := registry.Get(id)
	if !ok {
		return 0
	}
	return d.CycleMultiplier
}

// CycleDuration returns the restart interval for a pattern at speedMs
func CycleDuration(id ID, speedMs float64) time.Duration {
	d := motion.Ms(speedMs * CycleMultiplier(id))
	if d < minCycle {
		return minCycle
	}
	return d
}

// PlanFor computes the plan for id without applying it
// Unknown ids produce an empty plan.
func PlanFor(id ID, cfg Config) Plan {
	d, ok := registry.Get(id)
	if !ok || d.Func == nil {
		return Plan{}
	}
	return d.Func(cfg)
}

// Move computes and schedules the pattern on h
// Reports false when nothing was scheduled.
func Move(id ID, cfg Config, h motion.Handles) bool {
	p := PlanFor(id, cfg)
	if p.Empty() {
		return false
	}
	p.Apply(h)
	return true
}
