package marginal

import (
	"math"
	"reflect"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/rng"
)

// bin holds one marginal entry: its accumulated unnormalized weight and
// a representative value (the first value that hashed to this key).
type bin struct {
	weight float64
	value  any
}

// Builder accumulates weighted return values into a normalized discrete
// distribution. Its lifetime is a single inference run: a strategy
// constructs one, calls Add once per completed execution, and calls
// Build exactly once when the run finishes.
type Builder struct {
	order []string
	bins  map[string]*bin
}

// NewBuilder returns an empty accumulator.
func NewBuilder() *Builder {
	return &Builder{bins: make(map[string]*bin)}
}

// Add records one completed execution's contribution: weight (an
// unnormalized probability, e.g. exp(cumulative log-score)) for value.
// Bins are created on first sight of a key and keep the first value seen
// as their representative; insertion order is the order keys are first
// added, matching "the order in which complete paths finish."
func (b *Builder) Add(value any, weight float64) {
	key := CanonicalKey(value)
	if existing, ok := b.bins[key]; ok {
		existing.weight += weight
		return
	}
	b.bins[key] = &bin{weight: weight, value: value}
	b.order = append(b.order, key)
}

// Build normalizes the accumulated weights and returns the resulting
// discrete ERP. It fails ErrEmptyPosterior if every path scored zero
// unnormalized weight (equivalently, every execution's log-score was
// -Inf).
func (b *Builder) Build() (core.ERP, error) {
	var z float64
	for _, k := range b.order {
		z += b.bins[k].weight
	}
	if z <= 0 {
		return nil, ErrEmptyPosterior
	}

	order := make([]string, len(b.order))
	copy(order, b.order)
	probs := make([]float64, len(order))
	values := make([]any, len(order))
	for i, k := range order {
		probs[i] = b.bins[k].weight / z
		values[i] = b.bins[k].value
	}

	return discreteMarginal{probs: probs, values: values}, nil
}

// discreteMarginal is the core.ERP produced by Build: a finite-support
// distribution whose Sample draws an entry by linear inverse-CDF scan,
// whose Score finds the entry matching value by deep structural
// equality, and whose Support returns every accumulated value.
type discreteMarginal struct {
	probs  []float64
	values []any
}

func (d discreteMarginal) Sample([]float64) any {
	draw := rng.Float64()
	var cum float64
	for i, p := range d.probs {
		cum += p
		if draw < cum {
			return d.values[i]
		}
	}
	return d.values[len(d.values)-1]
}

func (d discreteMarginal) Score(_ []float64, value any) float64 {
	for i, v := range d.values {
		if reflect.DeepEqual(v, value) {
			return math.Log(d.probs[i])
		}
	}
	return math.Inf(-1)
}

func (d discreteMarginal) Support([]float64) ([]any, bool) {
	return d.values, true
}

// Delta returns a point-mass ERP scoring 0 at value and -Inf everywhere
// else, with no finite Support — the marginal Forward sampling produces.
func Delta(value any) core.ERP {
	return deltaERP{value: value}
}

type deltaERP struct{ value any }

func (d deltaERP) Sample([]float64) any { return d.value }

func (d deltaERP) Score(_ []float64, value any) float64 {
	if reflect.DeepEqual(value, d.value) {
		return 0
	}
	return math.Inf(-1)
}

func (d deltaERP) Support([]float64) ([]any, bool) { return nil, false }
