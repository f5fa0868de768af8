package workload_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vecmat/internal/workload"
)

func TestSelfTest_Parses(t *testing.T) {
	f, err := workload.SelfTest()
	require.NoError(t, err)
	require.Len(t, f.Jobs, 5)

	ops := make([]workload.Op, 0, len(f.Jobs))
	for _, j := range f.Jobs {
		ops = append(ops, j.Op)
		require.NotNil(t, j.Expect, "every self-test job carries an expectation")
	}
	assert.Equal(t, []workload.Op{workload.OpAdd, workload.OpSub, workload.OpDot, workload.OpCross, workload.OpMul}, ops)
}

func TestLoad_FromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "w.yaml")
	doc := `
jobs:
  - op: equal
    left:  {matrix: [[1, 2], [3, 4]]}
    right: {matrix: [[1, 2], [3, 4]]}
    expect: {bool: true}
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	f, err := workload.Load(path)
	require.NoError(t, err)
	require.Len(t, f.Jobs, 1)
	assert.Equal(t, "job-0", f.Jobs[0].Name) // default name
	assert.Equal(t, workload.KindMatrix, f.Jobs[0].Left.Kind())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := workload.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]struct {
		doc  string
		want error
	}{
		"unknown op": {
			doc:  `jobs: [{op: pow, left: {vector: [1]}, right: {vector: [1]}}]`,
			want: workload.ErrUnknownOp,
		},
		"mixed kinds": {
			doc:  `jobs: [{op: add, left: {vector: [1]}, right: {matrix: [[1]]}}]`,
			want: workload.ErrBadOperand,
		},
		"two fields": {
			doc:  `jobs: [{op: add, left: {vector: [1], matrix: [[1]]}, right: {vector: [1]}}]`,
			want: workload.ErrBadOperand,
		},
		"cross on matrices": {
			doc:  `jobs: [{op: cross, left: {matrix: [[1]]}, right: {matrix: [[1]]}}]`,
			want: workload.ErrBadOperand,
		},
		"scalar operand": {
			doc:  `jobs: [{op: dot, left: {scalar: 1}, right: {scalar: 2}}]`,
			want: workload.ErrBadOperand,
		},
		"wrong expectation kind": {
			doc:  `jobs: [{op: dot, left: {vector: [1]}, right: {vector: [1]}, expect: {vector: [1]}}]`,
			want: workload.ErrBadOperand,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := workload.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_Rejects(t *testing.T) {
	_, err := workload.Parse([]byte(`jobs: []`))
	require.Error(t, err)

	_, err = workload.Parse([]byte(`jobs: [{op: add, left: {vector: [1]}, right: {vector: [1]}, tolerance: -1}]`))
	require.Error(t, err)

	_, err = workload.Parse([]byte(`jobs: {`))
	require.Error(t, err)
}

func TestOperand_EmptyListIsSet(t *testing.T) {
	f, err := workload.Parse([]byte(`jobs: [{op: dot, left: {vector: []}, right: {vector: []}, expect: {scalar: 0}}]`))
	require.NoError(t, err)
	assert.Equal(t, workload.KindVector, f.Jobs[0].Left.Kind())
}
