package forward

import (
	"github.com/google/uuid"

	"github.com/NATHANIELCROSBY1/webppl/core"
	"github.com/NATHANIELCROSBY1/webppl/marginal"
	"github.com/NATHANIELCROSBY1/webppl/obslog"
)

// strategy is Forward's core.Strategy. Sample passes straight through to
// the distribution; Factor always panics with the shared sentinel error
// (caught by Run's recover); Exit records the program's return value so
// Run can wrap it as a delta ERP once the trampoline loop finishes.
type strategy struct {
	result any
}

func (s *strategy) Sample(k core.Cont, dist core.ERP, params []float64) core.Step {
	return k(dist.Sample(params))
}

func (*strategy) Factor(func() core.Step, float64) core.Step {
	panic(core.ErrFactorOutsideInference)
}

func (s *strategy) Exit(value any) core.Step {
	s.result = value
	return core.Exit(value)
}

// Run executes userFn exactly once. Every Sample is answered from the
// distribution's own Sample method with no weight recorded; the first
// Factor aborts the run with core.ErrFactorOutsideInference; Exit
// delivers a delta ERP (scores 0 at the returned value, -Inf elsewhere)
// to the caller. The coroutine stack is restored before Run returns,
// whether it returns a marginal or an error.
func Run(userFn core.Program) (erp core.ERP, err error) {
	runID := uuid.New().String()
	obslog.Debug("forward: run start", map[string]any{"run_id": runID})

	s := &strategy{}
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
			obslog.Warn("forward: run failed", map[string]any{"run_id": runID, "error": err.Error()})
		} else {
			obslog.Debug("forward: run complete", map[string]any{"run_id": runID})
		}
	}()

	core.Run(userFn, func(step core.Step) (core.Step, bool) {
		if dist, params, k, ok := step.IsSample(); ok {
			return s.Sample(k, dist, params), false
		}
		if _, _, ok := step.IsFactor(); ok {
			return s.Factor(nil, 0), false
		}
		if dist, params, scoreFn, k, ok := step.IsSampleWithFactor(); ok {
			v := dist.Sample(params)
			return s.Factor(func() core.Step { return k(v) }, scoreFn(v)), false
		}
		value, _ := step.IsExit()
		s.Exit(value)
		return core.Step{}, true
	})

	return marginal.Delta(s.result), nil
}
