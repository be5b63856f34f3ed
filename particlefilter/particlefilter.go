package particlefilter

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/marginal"
	"github.com/NATHANIELCROSBY1/webppl/obslog"
)

// particle is one in-flight copy of the user computation: pending
// resumes the program from its last suspension (or starts it fresh, for
// a particle that has never suspended); logWeight accumulates factor
// contributions since the last resampling; value is set only at exit.
type particle struct {
	pending   func() core.Step
	logWeight float64
	value     any
	done      bool
}

// strategy is the particle filter's core.Strategy. active indexes the
// particle currently being driven; done is set once the last particle
// (round-robin index N-1) reaches exit.
type strategy struct {
	particles []*particle
	active    int
	done      bool
}

// Sample draws from the prior and resumes inline — no weight update.
// Between factor barriers the active particle runs uninterrupted.
func (s *strategy) Sample(k core.Cont, dist core.ERP, params []float64) core.Step {
	return k(dist.Sample(params))
}

// Factor adds logWeight to the active particle's running weight, stores
// k as its resumption, then advances the round-robin index. Reaching
// the last particle triggers residual resampling before wrapping back
// to particle 0.
func (s *strategy) Factor(k func() core.Step, logWeight float64) core.Step {
	n := len(s.particles)
	p := s.particles[s.active]
	p.logWeight += logWeight
	p.pending = k

	if s.active == n-1 {
		resample(s.particles)
		s.active = 0
	} else {
		s.active++
	}
	return s.particles[s.active].pending()
}

// Exit records the active particle's return value. If it is not the
// last particle, the round-robin advances to the next; if it is, the
// run is done and the caller's marginal can be built from every
// particle's final value.
func (s *strategy) Exit(value any) core.Step {
	n := len(s.particles)
	p := s.particles[s.active]
	p.value = value
	p.done = true

	if s.active == n-1 {
		s.done = true
		return core.Exit(value)
	}
	s.active++
	return s.particles[s.active].pending()
}

// Run executes userFn as N particles synchronized at every factor,
// returning the unweighted marginal over their final return values.
func Run(userFn core.Program, n int) (erp core.ERP, err error) {
	if n <= 0 {
		return nil, core.ErrDegenerateParameters
	}

	runID := uuid.New().String()
	obslog.Debug("particlefilter: run start", map[string]any{"run_id": runID, "n": n})

	particles := make([]*particle, n)
	for i := range particles {
		particles[i] = &particle{pending: userFn}
	}
	s := &strategy{particles: particles}
	core.Push(s)
	defer core.Pop()

	defer func() {
		if r := recover(); r != nil {
			asErr, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = asErr
		}
		if err != nil {
			obslog.Warn("particlefilter: run failed", map[string]any{"run_id": runID, "error": err.Error()})
		} else {
			obslog.Debug("particlefilter: run complete", map[string]any{"run_id": runID})
		}
	}()

	core.Run(func() core.Step { return particles[0].pending() }, func(step core.Step) (core.Step, bool) {
		var next core.Step
		if dist, params, k, ok := step.IsSample(); ok {
			next = s.Sample(k, dist, params)
		} else if logW, k, ok := step.IsFactor(); ok {
			next = s.Factor(k, logW)
		} else if dist, params, scoreFn, k, ok := step.IsSampleWithFactor(); ok {
			v := dist.Sample(params)
			next = s.Factor(func() core.Step { return k(v) }, scoreFn(v))
		} else {
			value, _ := step.IsExit()
			next = s.Exit(value)
		}
		return next, s.done
	})

	if err != nil {
		return nil, err
	}

	builder := marginal.NewBuilder()
	for _, p := range particles {
		builder.Add(p.value, 1)
	}
	return builder.Build()
}

// resample applies residual resampling (Liu & West 2001, §3.4.4) to
// particles in place: each particle is deterministically retained
// floor(exp(log N + w_j − W)) times, the remaining K = N − Σretained
// slots are filled by multinomial draws weighted by the residual mass,
// and every resulting particle's log-weight is reset to W − log N so
// total mass is preserved uniformly across the ensemble.
func resample(particles []*particle) {
	n := len(particles)
	logWeights := make([]float64, n)
	for i, p := range particles {
		logWeights[i] = p.logWeight
	}
	w := floats.LogSumExp(logWeights)
	logN := math.Log(float64(n))

	expected := make([]float64, n)
	retained := make([]int, n)
	residual := make([]float64, n)
	for i := range particles {
		expected[i] = math.Exp(logN + logWeights[i] - w)
		retained[i] = int(math.Floor(expected[i]))
		residual[i] = expected[i] - float64(retained[i])
	}

	next := make([]*particle, 0, n)
	for i, count := range retained {
		for j := 0; j < count; j++ {
			next = append(next, clone(particles[i]))
		}
	}
	for len(next) < n {
		idx := core.MultinomialSample(residual)
		next = append(next, clone(particles[idx]))
	}

	newLogWeight := w - logN
	for _, p := range next {
		p.logWeight = newLogWeight
	}
	copy(particles, next)
}

func clone(p *particle) *particle {
	cp := *p
	return &cp
}
