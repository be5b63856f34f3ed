package enumerate

import (
	"math"

	"github.com/google/uuid"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/marginal"
	"github.com/NATHANIELCROSBY1/webppl/obslog"
)

// strategy is enumeration's core.Strategy and core.FactorSampler. score
// is the cumulative log-weight of whichever branch is currently
// resumed; frontier holds every branch discovered but not yet explored;
// builder accumulates the weight of every completed execution; done is
// set once the frontier is exhausted or the execution cap is reached.
type strategy struct {
	frontier core.Frontier
	builder  *marginal.Builder
	score    float64
	executed int
	maxExec  int
	done     bool
}

// Sample enumerates dist's support with no extra weighting.
func (s *strategy) Sample(k core.Cont, dist core.ERP, params []float64) core.Step {
	return s.branch(k, dist, params, func(any) float64 { return 0 })
}

// SampleWithFactor enumerates dist's support, folding scoreFn(v) into
// each branch's weight before it is queued — equivalent to, but cheaper
// than, the generic Sample-then-Factor composition.
func (s *strategy) SampleWithFactor(k core.Cont, dist core.ERP, params []float64, scoreFn func(any) float64) core.Step {
	return s.branch(k, dist, params, scoreFn)
}

// branch pushes one frontier state per support value of dist, each
// weighted by the score accumulated so far plus dist's log-probability
// of that value plus extra(value), then dequeues the highest-priority
// pending branch (by whichever discipline is installed) and resumes it.
// The branch resumed need not be one just pushed: the frontier may
// prefer an older, unrelated one, which is exactly how enumeration
// interleaves unrelated paths through the search tree.
func (s *strategy) branch(k core.Cont, dist core.ERP, params []float64, extra func(any) float64) core.Step {
	values, ok := dist.Support(params)
	if !ok {
		panic(ErrUnsupportedDistribution)
	}
	for _, v := range values {
		s.frontier.Push(core.FrontierState{
			Cont:  k,
			Value: v,
			Score: s.score + dist.Score(params, v) + extra(v),
		})
	}
	return s.advance()
}

// advance dequeues the next pending branch, restores its score as the
// active cumulative weight, and resumes its continuation.
func (s *strategy) advance() core.Step {
	popped, ok := s.frontier.Pop()
	if !ok {
		panic("enumerate: frontier unexpectedly empty")
	}
	s.score = popped.Score
	return popped.Cont(popped.Value)
}

// Factor adjusts the active branch's cumulative score in place and
// resumes directly: factor never touches the frontier.
func (s *strategy) Factor(k func() core.Step, logWeight float64) core.Step {
	s.score += logWeight
	return k()
}

// Exit bins the completed execution's unnormalized weight into the
// marginal accumulator. If the frontier still holds pending branches and
// the execution cap has not been reached, it dequeues the next one and
// returns its resulting Step; otherwise it marks the run done.
func (s *strategy) Exit(value any) core.Step {
	s.builder.Add(value, math.Exp(s.score))
	s.executed++
	if s.frontier.Len() > 0 && s.executed < s.maxExec {
		return s.advance()
	}
	s.done = true
	return core.Exit(value)
}

// Run explores userFn's search tree exactly (or, past MaxExecutions,
// truncated), returning the resulting marginal distribution over return
// values.
func Run(userFn core.Program, opts ...Option) (erp core.ERP, err error) {
	cfg := DefaultOptions()
	for _, o := range opts {
		o(&cfg)
	}

	runID := uuid.New().String()
	obslog.Debug("enumerate: run start", map[string]any{
		"run_id":         runID,
		"max_executions": cfg.MaxExecutions,
		"discipline":     cfg.Discipline,
	})

	s := &strategy{
		frontier: newFrontier(cfg.Discipline),
		builder:  marginal.NewBuilder(),
		maxExec:  cfg.MaxExecutions,
	}
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
			obslog.Warn("enumerate: run failed", map[string]any{"run_id": runID, "error": err.Error()})
		} else {
			obslog.Debug("enumerate: run complete", map[string]any{"run_id": runID, "executed": s.executed})
		}
	}()

	core.Run(userFn, func(step core.Step) (core.Step, bool) {
		var next core.Step
		if dist, params, k, ok := step.IsSample(); ok {
			next = s.Sample(k, dist, params)
		} else if logW, k, ok := step.IsFactor(); ok {
			next = s.Factor(k, logW)
		} else if dist, params, scoreFn, k, ok := step.IsSampleWithFactor(); ok {
			next = s.SampleWithFactor(k, dist, params, scoreFn)
		} else {
			value, _ := step.IsExit()
			next = s.Exit(value)
		}
		return next, s.done
	})

	if err != nil {
		return nil, err
	}
	return s.builder.Build()
}

// Enumerate runs best-first enumeration, the default and recommended
// discipline.
func Enumerate(userFn core.Program, opts ...Option) (core.ERP, error) {
	return Run(userFn, append([]Option{WithDiscipline(BestFirst)}, opts...)...)
}

// EnumerateLikelyFirst is an alias for Enumerate: both name the
// best-first discipline.
func EnumerateLikelyFirst(userFn core.Program, opts ...Option) (core.ERP, error) {
	return Enumerate(userFn, opts...)
}

// EnumerateDepthFirst runs enumeration with the depth-first discipline.
func EnumerateDepthFirst(userFn core.Program, opts ...Option) (core.ERP, error) {
	return Run(userFn, append([]Option{WithDiscipline(DepthFirst)}, opts...)...)
}

// EnumerateBreadthFirst runs enumeration with the breadth-first
// discipline.
func EnumerateBreadthFirst(userFn core.Program, opts ...Option) (core.ERP, error) {
	return Run(userFn, append([]Option{WithDiscipline(BreadthFirst)}, opts...)...)
}
