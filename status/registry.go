// Package status holds the lock-free metric registry the simulation writes and the boundary reads
package status

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/elliotchance/orderedmap/v2"
)

// Registry is the central metrics facade
// Owners cache pointers during construction and write atomics directly each tick
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Dump renders every metric as text, grouped by kind then sorted by key
func (r *Registry) Dump() *orderedmap.OrderedMap[string, string] {
	out := orderedmap.NewOrderedMap[string, string]()
	r.Bools.Range(func(k string, v *atomic.Bool) {
		out.Set(k, strconv.FormatBool(v.Load()))
	})
	r.Ints.Range(func(k string, v *atomic.Int64) {
		out.Set(k, strconv.FormatInt(v.Load(), 10))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		out.Set(k, strconv.FormatFloat(v.Get(), 'f', 2, 64))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		out.Set(k, v.Load())
	})
	return out
}

// String formats Dump as space separated key=value pairs
func (r *Registry) String() string {
	d := r.Dump()
	parts := make([]string, 0, d.Len())
	for _, k := range d.Keys() {
		v, _ := d.Get(k)
		parts = append(parts, fmt.Sprintf("%s=%s", k, v))
	}
	return strings.Join(parts, " ")
}
