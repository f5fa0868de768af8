package workload

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed selftest.yaml
var selfTestYAML []byte

// Load reads and validates a workload file from disk.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a workload document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse workload: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload: %w", err)
	}

	return &f, nil
}

// SelfTest returns the embedded demonstration workload.
func SelfTest() (*File, error) {
	return Parse(selfTestYAML)
}

// Validate checks every job and fills in default names ("job-<index>").
func (f *File) Validate() error {
	if len(f.Jobs) == 0 {
		return fmt.Errorf("no jobs defined")
	}
	for i := range f.Jobs {
		j := &f.Jobs[i]
		if j.Name == "" {
			j.Name = fmt.Sprintf("job-%d", i)
		}
		if err := j.Validate(); err != nil {
			return fmt.Errorf("job %q: %w", j.Name, err)
		}
	}

	return nil
}

// Validate checks the op, operand kinds, expectation kind and tolerance.
func (j Job) Validate() error {
	if j.Tolerance < 0 {
		return fmt.Errorf("tolerance must be >= 0, got %g", j.Tolerance)
	}

	want, err := resultKind(j.Op, j.Left.Kind(), j.Right.Kind())
	if err != nil {
		return err
	}
	if j.Expect != nil && j.Expect.Kind() != want {
		return fmt.Errorf("expect %s, op %s yields %s: %w", j.Expect.Kind(), j.Op, want, ErrBadOperand)
	}

	return nil
}

// resultKind reports the kind an op yields for the given operand kinds.
func resultKind(op Op, left, right Kind) (Kind, error) {
	if left != right {
		return KindNone, fmt.Errorf("%s operands are %s and %s: %w", op, left, right, ErrBadOperand)
	}

	switch op {
	case OpAdd, OpSub:
		if left == KindVector || left == KindMatrix {
			return left, nil
		}
	case OpDot:
		if left == KindVector {
			return KindScalar, nil
		}
	case OpCross:
		if left == KindVector {
			return KindVector, nil
		}
	case OpMul:
		if left == KindMatrix {
			return KindMatrix, nil
		}
	case OpEqual:
		if left == KindVector || left == KindMatrix {
			return KindBool, nil
		}
	default:
		return KindNone, fmt.Errorf("%q: %w", op, ErrUnknownOp)
	}

	return KindNone, fmt.Errorf("%s does not accept %s operands: %w", op, left, ErrBadOperand)
}
