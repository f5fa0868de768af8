package workload

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

// Runner evaluates jobs and logs one event per job.
type Runner struct {
	log      zerolog.Logger
	failFast bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithFailFast stops Run at the first failing job.
func WithFailFast(on bool) Option {
	return func(r *Runner) { r.failFast = on }
}

// NewRunner returns a Runner logging to log.
func NewRunner(log zerolog.Logger, opts ...Option) *Runner {
	r := &Runner{log: log}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Report summarises a Run.
type Report struct {
	Results []Result // one per evaluated job, in order; zero Result for failed evaluations
	Passed  int
	Failed  int
}

// Run evaluates every job of f in order. The returned error joins the
// failures of all jobs (each prefixed with the job name); the report is
// always populated for the jobs that ran.
func (r *Runner) Run(f *File) (Report, error) {
	var (
		rep  Report
		errs []error
	)
	for _, job := range f.Jobs {
		res, err := r.RunJob(job)
		rep.Results = append(rep.Results, res)
		if err != nil {
			rep.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", job.Name, err))
			if r.failFast {
				break
			}
			continue
		}
		rep.Passed++
	}

	r.log.Info().
		Int("passed", rep.Passed).
		Int("failed", rep.Failed).
		Msg("workload finished")

	return rep, errors.Join(errs...)
}

// RunJob evaluates job and checks its expectation, if any.
func (r *Runner) RunJob(job Job) (Result, error) {
	res, err := Eval(job)
	if err != nil {
		r.log.Error().Err(err).Str("job", job.Name).Str("op", string(job.Op)).Msg("job failed")
		return Result{}, err
	}

	if job.Expect != nil && !matches(*job.Expect, res, job.Tolerance) {
		err = fmt.Errorf("got %s: %w", res, ErrExpectation)
		r.log.Error().Err(err).Str("job", job.Name).Str("op", string(job.Op)).Msg("job failed")
		return res, err
	}

	r.log.Debug().
		Str("job", job.Name).
		Str("op", string(job.Op)).
		Stringer("result", res).
		Bool("checked", job.Expect != nil).
		Msg("job ok")

	return res, nil
}

// Eval computes job.Op on its operands without checking the expectation.
func Eval(job Job) (Result, error) {
	if err := job.Validate(); err != nil {
		return Result{}, err
	}

	if job.Left.Kind() == KindMatrix {
		return evalMatrix(job.Op, matrix.New(job.Left.Matrix), matrix.New(job.Right.Matrix))
	}

	return evalVector(job.Op, vector.New(job.Left.Vector...), vector.New(job.Right.Vector...))
}

func evalVector(op Op, u, v vector.Vector[float64]) (Result, error) {
	switch op {
	case OpAdd:
		return Result{Kind: KindVector, Vector: u.Add(v)}, nil
	case OpSub:
		return Result{Kind: KindVector, Vector: u.Sub(v)}, nil
	case OpDot:
		return Result{Kind: KindScalar, Scalar: u.Dot(v)}, nil
	case OpCross:
		w, err := u.Cross(v)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindVector, Vector: w}, nil
	case OpEqual:
		return Result{Kind: KindBool, Bool: u.Equal(v)}, nil
	}

	return Result{}, fmt.Errorf("%q on vectors: %w", op, ErrUnknownOp)
}

func evalMatrix(op Op, a, b matrix.Matrix[float64]) (Result, error) {
	switch op {
	case OpAdd:
		return Result{Kind: KindMatrix, Matrix: a.Add(b)}, nil
	case OpSub:
		return Result{Kind: KindMatrix, Matrix: a.Sub(b)}, nil
	case OpMul:
		c, err := a.Mul(b)
		if err != nil {
			return Result{}, err
		}
		return Result{Kind: KindMatrix, Matrix: c}, nil
	case OpEqual:
		return Result{Kind: KindBool, Bool: a.Equal(b)}, nil
	}

	return Result{}, fmt.Errorf("%q on matrices: %w", op, ErrUnknownOp)
}

// matches compares res to want exactly, or within tol when tol > 0.
func matches(want Operand, res Result, tol float64) bool {
	if want.Kind() != res.Kind {
		return false
	}

	switch res.Kind {
	case KindVector:
		exp := vector.New(want.Vector...)
		if tol > 0 {
			return vector.EqualApprox(exp, res.Vector, tol)
		}
		return exp.Equal(res.Vector)
	case KindMatrix:
		exp := matrix.New(want.Matrix)
		if tol > 0 {
			return matrix.AllClose(exp, res.Matrix, tol)
		}
		return exp.Equal(res.Matrix)
	case KindScalar:
		if tol > 0 {
			return scalar.EqualWithinAbsOrRel(*want.Scalar, res.Scalar, tol, tol)
		}
		return *want.Scalar == res.Scalar
	case KindBool:
		return *want.Bool == res.Bool
	}

	return false
}
