package audio

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/critter/vmath"
)

// Cue identifies a sound effect by its catalogue name
type Cue string

const (
	CueNone    Cue = ""
	CueMouse   Cue = "mouse"
	CueSqueak2 Cue = "squeak2"
	CueSqueak3 Cue = "squeak3"
	CueSqueak4 Cue = "squeak4"
	CueBell    Cue = "bell"
	CueSplat1  Cue = "splat1"
	CueSplat2  Cue = "splat2"
	CueSplat3  Cue = "splat3"
	CueSplat4  Cue = "splat4"
	CueFrog    Cue = "frog"
	CueBee     Cue = "bee"
	CueFish    Cue = "fish"
	CueBird    Cue = "bird"
	CueBugs    Cue = "bugs"
)

// Family groups cues sharing one synthesized voice
type Family int

const (
	FamilyNone Family = iota
	FamilySqueak
	FamilySplat
	FamilyBell
	FamilyCroak
	FamilyBuzz
	FamilyChirp
	FamilyRustle
	familyCount
)

// squeakVariants are interchangeable squeaks, the mouse cue picks among them
var squeakVariants = []Cue{CueMouse, CueSqueak2, CueSqueak3, CueSqueak4}

// splatVariants are interchangeable kill effects
var splatVariants = []Cue{CueSplat1, CueSplat2, CueSplat3, CueSplat4}

var cueFamilies = map[Cue]Family{
	CueMouse:   FamilySqueak,
	CueSqueak2: FamilySqueak,
	CueSqueak3: FamilySqueak,
	CueSqueak4: FamilySqueak,
	CueBell:    FamilyBell,
	CueSplat1:  FamilySplat,
	CueSplat2:  FamilySplat,
	CueSplat3:  FamilySplat,
	CueSplat4:  FamilySplat,
	CueFrog:    FamilyCroak,
	CueBee:     FamilyBuzz,
	CueFish:    FamilyRustle,
	CueBird:    FamilyChirp,
	CueBugs:    FamilyRustle,
}

// ParseCue resolves a catalogue name, "none" and "" map to CueNone
func ParseCue(s string) (Cue, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "" || name == "none" {
		return CueNone, nil
	}
	c := Cue(name)
	if _, ok := cueFamilies[c]; !ok {
		return CueNone, errors.Errorf("unknown sound cue '%s'", s)
	}
	return c, nil
}

// Family returns the voice used to synthesize the cue
func (c Cue) Family() Family {
	return cueFamilies[c]
}

// Variant returns the 0-based index of the cue within its family's variants
func (c Cue) Variant() int {
	for i, v := range squeakVariants {
		if v == c {
			return i
		}
	}
	for i, v := range splatVariants {
		if v == c {
			return i
		}
	}
	return 0
}

// ResolveSpawn picks the concrete cue to play when a critter appears
// The mouse cue stands for any squeak variant
func ResolveSpawn(c Cue, r vmath.Rand) Cue {
	if c == CueMouse {
		return pick(squeakVariants, r)
	}
	return c
}

// ResolveDeath picks the concrete cue to play when a critter is caught
// Mouse becomes a random squeak, any splat becomes a random splat
func ResolveDeath(c Cue, r vmath.Rand) Cue {
	switch {
	case c == CueMouse:
		return pick(squeakVariants, r)
	case strings.HasPrefix(string(c), "splat"):
		return pick(splatVariants, r)
	default:
		return c
	}
}

// PickTap chooses the feedback cue for tapping a spawner
// The bell rings with probability bellChance, otherwise a squeak variant
func PickTap(r vmath.Rand, bellChance float64) Cue {
	if r.Float64() < bellChance {
		return CueBell
	}
	return pick(squeakVariants, r)
}

func pick(set []Cue, r vmath.Rand) Cue {
	return set[r.IntN(len(set))]
}
