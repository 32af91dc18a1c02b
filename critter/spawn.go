package critter

import (
	"fmt"
	"math"

	"github.com/lixenwraith/critter/audio"
	"github.com/lixenwraith/critter/constants"
	"github.com/lixenwraith/critter/facing"
	"github.com/lixenwraith/critter/vmath"
)

// BoxStyles is the number of box artworks a dash picks from
const BoxStyles = 3

// Box is the launch box geometry of a box dash
type Box struct {
	X, Y     float64
	Size     float64
	Vertical bool // Dash upward when the screen is portrait
}

// BoxDash launches bursts of escapes out of a box at the screen edge
type BoxDash struct {
	env    *Env
	Assets []facing.AssetCode
	Size   float64
	Speed  float64
	Roster *Roster[*Escape]
	Style  int // Current box artwork, redrawn on every burst
	seq    int
}

// NewBoxDash creates a box dash spawner
func NewBoxDash(env *Env, assets []facing.AssetCode, size, speed float64) *BoxDash {
	return &BoxDash{
		env:    env,
		Assets: assets,
		Size:   size,
		Speed:  speed,
		Roster: NewRoster[*Escape](constants.BoxDashCap),
	}
}

// Box returns the launch box for the current screen
func (b *BoxDash) Box() Box {
	scr := b.env.Screen
	vertical := scr.Height >= scr.Width
	size := vmath.Clamp(scr.Width*constants.BoxDashSizeFactor, constants.BoxDashSizeMin, constants.BoxDashSizeMax)
	inset := constants.BoxDashInset
	if vertical {
		return Box{X: (scr.Width - size) / 2, Y: scr.Height - size - inset, Size: size, Vertical: true}
	}
	return Box{X: inset, Y: (scr.Height - size) / 2, Size: size}
}

// Spawn plays the tap cue and launches one to three escapes
func (b *BoxDash) Spawn() []*Escape {
	r := b.env.Rand
	b.env.play(audio.PickTap(r, constants.BoxDashBellChance))

	count := 1 + r.IntN(constants.BoxDashMaxPerBurst)
	b.Style = r.IntN(BoxStyles)

	box := b.Box()
	scr := b.env.Screen
	size := b.Size
	targetInset := size * constants.BoxDashTargetInset

	out := make([]*Escape, 0, count)
	for i := 0; i < count; i++ {
		asset := pickAsset(b.Assets, r)
		start := vmath.Pt(
			box.X+box.Size/2-size/2+vmath.Signed(r)*size*0.25,
			box.Y+box.Size*0.6-size/2+vmath.Signed(r)*size*0.2,
		)
		var target vmath.Point
		if box.Vertical {
			target = vmath.Pt(vmath.Clamp(r.Float64()*(scr.Width-size), -targetInset, scr.Width+targetInset), -targetInset)
		} else {
			target = vmath.Pt(scr.Width+targetInset, vmath.Clamp(r.Float64()*(scr.Height-size), -targetInset, scr.Height+targetInset))
		}
		dur := math.Round(math.Max(constants.BoxDashDurationMin, b.Speed*(constants.BoxDashDurationBase+r.Float64()*constants.BoxDashDurationRand)))

		b.seq++
		spec := EscapeSpec{
			ID:         fmt.Sprintf("dash-%d", b.seq),
			Asset:      asset,
			Size:       size,
			Start:      start,
			Target:     target,
			DurationMs: dur,
		}
		out = append(out, NewEscape(b.env, spec, func(id string) { b.Roster.Remove(id) }))
	}
	b.Roster.Add(out...)
	b.env.logger().WithField("count", count).Debug("Box dash burst")
	return out
}

// TopJump drops bursts of jumpers from above the screen
type TopJump struct {
	env    *Env
	Assets []facing.AssetCode
	Size   float64
	Speed  float64
	Count  float64 // Configured object count, rounded and clamped per burst
	Roster *Roster[*Jumper]
	seq    int
}

// NewTopJump creates a top jump spawner
func NewTopJump(env *Env, assets []facing.AssetCode, size, speed, count float64) *TopJump {
	return &TopJump{
		env:    env,
		Assets: assets,
		Size:   size,
		Speed:  speed,
		Count:  count,
		Roster: NewRoster[*Jumper](constants.TopJumpCap),
	}
}

// BurstSize returns the number of jumpers one spawn creates
func (t *TopJump) BurstSize() int {
	n := t.Count
	if n == 0 || math.IsNaN(n) {
		n = 1
	}
	return vmath.ClampInt(int(math.Round(n)), 1, constants.TopJumpMaxCount)
}

// Spawn plays the tap cue and drops a burst of vertical jumpers
func (t *TopJump) Spawn() []*Jumper {
	r := t.env.Rand
	t.env.play(audio.PickTap(r, constants.TopJumpBellChance))

	scr := t.env.Screen
	size := t.Size
	maxX := vmath.Span(scr.Width, size)
	count := t.BurstSize()

	out := make([]*Jumper, 0, count)
	for i := 0; i < count; i++ {
		asset := pickAsset(t.Assets, r)
		x := vmath.Clamp(r.Float64()*maxX, 0, maxX)
		peakY := vmath.Clamp(size*0.2+r.Float64()*scr.Height*0.28, size*0.15, scr.Height*0.4)
		dur := math.Round(math.Max(constants.TopJumpDurationMin, t.Speed*(constants.TopJumpDurationBase+r.Float64()*constants.TopJumpDurationRand)))

		t.seq++
		spec := JumpSpec{
			ID:         fmt.Sprintf("jump-%d", t.seq),
			Asset:      asset,
			Size:       size,
			X:          x,
			PeakY:      peakY,
			DurationMs: dur,
		}
		out = append(out, NewJumper(t.env, spec, func(id string) { t.Roster.Remove(id) }))
	}
	t.Roster.Add(out...)
	t.env.logger().WithField("count", count).Debug("Top jump burst")
	return out
}

func pickAsset(assets []facing.AssetCode, r vmath.Rand) facing.AssetCode {
	if len(assets) == 0 {
		return ""
	}
	return assets[r.IntN(len(assets))]
}
