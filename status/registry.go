package status

import (
	"math"
	"strconv"
	"strings"
	"sync/atomic"
)

// Metric keys written by the sandbox
const (
	KeyCatches     = "catches"
	KeyCycles      = "cycles"
	KeyEscapes     = "escapes"
	KeyJumpers     = "jumpers"
	KeyCuesPlayed  = "cues.played"
	KeyCuesDropped = "cues.dropped"
	KeyFrames      = "frames"
	KeyFPS         = "fps"
)

// AtomicFloat is a float64 stored as bits, the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

// Set stores v
func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

// Get loads the value
func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Blend moves the value toward v by weight w, the first sample is taken as is
func (f *AtomicFloat) Blend(v, w float64) float64 {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := v
		if old != 0 {
			next = cur + (v-cur)*w
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}

// Registry groups integer and float metrics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Int returns the current value of an integer metric, 0 when unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Line renders the given keys as "key value" pairs, unregistered keys are skipped
func (r *Registry) Line(keys ...string) string {
	var b strings.Builder
	for _, k := range keys {
		var v string
		switch {
		case r.Ints.Has(k):
			v = strconv.FormatInt(r.Ints.Get(k).Load(), 10)
		case r.Floats.Has(k):
			v = strconv.FormatFloat(r.Floats.Get(k).Get(), 'f', 1, 64)
		default:
			continue
		}
		if b.Len() > 0 {
			b.WriteString("  ")
		}
		b.WriteString(k)
		b.WriteByte(' ')
		b.WriteString(v)
	}
	return b.String()
}

// Fields returns every metric keyed by name for structured logging
func (r *Registry) Fields() map[string]any {
	out := make(map[string]any, r.TotalCount())
	r.Ints.Range(func(k string, p *atomic.Int64) { out[k] = p.Load() })
	r.Floats.Range(func(k string, p *AtomicFloat) { out[k] = p.Get() })
	return out
}
