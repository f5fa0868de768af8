// Package workload loads YAML files describing vector and matrix jobs and
// runs them against the vector and matrix packages.
//
// A file holds a list of jobs. Each job names an operation, two operands and
// an optional expectation; Run evaluates the operation and, when an
// expectation is present, compares the result exactly or within Tolerance.
package workload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/vecmat/matrix"
	"github.com/katalvlaran/vecmat/vector"
)

var (
	// ErrUnknownOp is returned for an op name outside the supported set.
	ErrUnknownOp = errors.New("workload: unknown op")

	// ErrBadOperand is returned when an operand does not carry exactly one value
	// of a kind the op accepts.
	ErrBadOperand = errors.New("workload: bad operand")

	// ErrExpectation is returned when a job's result differs from its expectation.
	ErrExpectation = errors.New("workload: result does not match expectation")
)

// Op names an operation.
type Op string

// Supported operations.
const (
	OpAdd   Op = "add"
	OpSub   Op = "sub"
	OpDot   Op = "dot"
	OpCross Op = "cross"
	OpMul   Op = "mul"
	OpEqual Op = "equal"
)

// Kind tags which field of an Operand or Result is populated.
type Kind int

const (
	KindNone Kind = iota
	KindVector
	KindMatrix
	KindScalar
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindVector:
		return "vector"
	case KindMatrix:
		return "matrix"
	case KindScalar:
		return "scalar"
	case KindBool:
		return "bool"
	default:
		return "none"
	}
}

// File is the top-level document of a workload file.
type File struct {
	Jobs []Job `yaml:"jobs"`
}

// Job is one operation to evaluate.
type Job struct {
	Name      string   `yaml:"name"`
	Op        Op       `yaml:"op"`
	Left      Operand  `yaml:"left"`
	Right     Operand  `yaml:"right"`
	Expect    *Operand `yaml:"expect,omitempty"`
	Tolerance float64  `yaml:"tolerance,omitempty"` // > 0 switches to approximate comparison
}

// Operand carries exactly one of its fields. Scalar and Bool are only
// meaningful as expectations.
type Operand struct {
	Vector []float64   `yaml:"vector,omitempty"`
	Matrix [][]float64 `yaml:"matrix,omitempty"`
	Scalar *float64    `yaml:"scalar,omitempty"`
	Bool   *bool       `yaml:"bool,omitempty"`
}

// Kind reports which field is set, or KindNone when zero or several are.
// An explicitly empty list (vector: []) counts as set.
func (o Operand) Kind() Kind {
	var (
		kind  = KindNone
		count int
	)
	if o.Vector != nil {
		kind, count = KindVector, count+1
	}
	if o.Matrix != nil {
		kind, count = KindMatrix, count+1
	}
	if o.Scalar != nil {
		kind, count = KindScalar, count+1
	}
	if o.Bool != nil {
		kind, count = KindBool, count+1
	}
	if count != 1 {
		return KindNone
	}

	return kind
}

// Result is the outcome of one job. Kind selects the populated field.
type Result struct {
	Kind   Kind
	Vector vector.Vector[float64]
	Matrix matrix.Matrix[float64]
	Scalar float64
	Bool   bool
}

// String renders the populated value on a single line.
func (r Result) String() string {
	switch r.Kind {
	case KindVector:
		return r.Vector.String()
	case KindMatrix:
		return strings.ReplaceAll(strings.TrimSuffix(r.Matrix.String(), "\n"), "\n", " ")
	case KindScalar:
		return fmt.Sprint(r.Scalar)
	case KindBool:
		return fmt.Sprint(r.Bool)
	default:
		return "<none>"
	}
}
