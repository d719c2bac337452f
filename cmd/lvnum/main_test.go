// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/matrixio"
)

// runCLI executes the command tree with args and returns stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))

	return p
}

func TestDemo(t *testing.T) {
	out, err := runCLI(t, "", "demo")
	require.NoError(t, err)
	for _, want := range []string{
		"v1 + v2 = [5 7 9]\n",
		"v1 · v2 = 32\n",
		"||v1|| = 3.742\n",
		"Matrix sum:\n   6    8 \n  10   12 \n",
		"normalize([3 4]) = [0.6 0.8]\n",
		"distance([1 2 3], [4 6 3]) = 5\n",
		"vector length mismatch: expected 2, got 3",
	} {
		assert.Contains(t, out, want)
	}
}

func TestAdd(t *testing.T) {
	a := writeTemp(t, "a.yaml", "matrix:\n  - [1, 2]\n  - [3, 4]\n")
	b := writeTemp(t, "b.json", `[[5, 6], [7, 8]]`)

	out, err := runCLI(t, "", "add", a, b)
	require.NoError(t, err)
	assert.Equal(t, "[6, 8]\n[10, 12]\n", out)

	out, err = runCLI(t, "", "add", a, b, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"matrix":[[6,8],[10,12]]}`, out)
}

func TestAdd_ShapeMismatch(t *testing.T) {
	a := writeTemp(t, "a.yaml", "[[1, 2]]")
	b := writeTemp(t, "b.yaml", "[[1], [2]]")
	_, err := runCLI(t, "", "add", a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestAdd_Ragged(t *testing.T) {
	a := writeTemp(t, "a.yaml", "[[1, 2], [3]]")
	_, err := runCLI(t, "", "add", a, a)
	assert.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestScale_Many(t *testing.T) {
	a := writeTemp(t, "a.yaml", "[[1, 2]]")
	b := writeTemp(t, "b.yaml", "[[3], [4]]")
	out, err := runCLI(t, "", "scale", a, b, "--by", "2")
	require.NoError(t, err)
	assert.Equal(t, "[2, 4]\n[6]\n[8]\n", out)
}

func TestVectorCommands(t *testing.T) {
	v := writeTemp(t, "v.yaml", "[1, 2, 3]")

	out, err := runCLI(t, "[4, 5, 6]", "dot", v, "-")
	require.NoError(t, err)
	assert.Equal(t, "32\n", out)

	out, err = runCLI(t, "[3, 4]", "norm", "-", "-o", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "norm: 5\n", out)

	w := writeTemp(t, "w.yaml", "vector: [4, 6, 3]")
	out, err = runCLI(t, "", "distance", v, w)
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	short := writeTemp(t, "s.yaml", "[1, 2]")
	_, err = runCLI(t, "", "distance", v, short)
	var lm *matrix.LengthMismatchError
	assert.ErrorAs(t, err, &lm)
}

func TestNormalize(t *testing.T) {
	a := writeTemp(t, "a.yaml", "[3, 4]")
	z := writeTemp(t, "z.yaml", "[0, 0]")
	out, err := runCLI(t, "", "normalize", a, z)
	require.NoError(t, err)
	assert.Equal(t, "[0.6, 0.8]\n[0, 0]\n", out)
}

func TestEigenAndInverse(t *testing.T) {
	cfg := writeTemp(t, "lvnum.yaml", "output:\n  precision: 6\n")

	out, err := runCLI(t, "[[2, 1], [1, 2]]", "eigen", "-", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[3, 1]\n", out)

	out, err = runCLI(t, "[[3, 0], [0, 5]]", "eigen", "-", "--vectors")
	require.NoError(t, err)
	assert.Equal(t, "[5, 3]\n[0, 1]\n[1, 0]\n", out)

	_, err = runCLI(t, "[[1, 2], [3, 4]]", "eigen", "-")
	assert.ErrorIs(t, err, matrix.ErrAsymmetry)

	out, err = runCLI(t, "[[4, 7], [2, 6]]", "inverse", "-", "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "[0.6, -0.7]\n[-0.2, 0.4]\n", out)

	_, err = runCLI(t, "[[1, 2], [2, 4]]", "inverse", "-")
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestInspect(t *testing.T) {
	out, err := runCLI(t, "[[1, 2, 3], [4, 5, 6]]", "inspect", "-")
	require.NoError(t, err)
	assert.Equal(t, "<Matrix 2x3>\n[1, 2, 3]\n[4, 5, 6]\n", out)
}

func TestConfigPrecedence(t *testing.T) {
	cfg := writeTemp(t, "lvnum.yaml", "output:\n  format: json\n  precision: 2\n")
	v := writeTemp(t, "v.yaml", "[1, 1]")

	out, err := runCLI(t, "", "norm", v, "--config", cfg)
	require.NoError(t, err)
	assert.JSONEq(t, `{"norm":1.4142135623730951}`, out)

	t.Setenv("LVNUM_OUTPUT_FORMAT", "text")
	out, err = runCLI(t, "", "norm", v, "--config", cfg)
	require.NoError(t, err)
	assert.Equal(t, "1.4\n", out)

	out, err = runCLI(t, "", "norm", v, "--config", cfg, "--format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "norm: 1.4142135623730951\n", out)
}

// TestConfigPrecedence_FlagRepairsEnv checks that an invalid environment
// value is overridden by the flag before anything is validated.
func TestConfigPrecedence_FlagRepairsEnv(t *testing.T) {
	v := writeTemp(t, "v.yaml", "[3, 4]")
	t.Setenv("LVNUM_OUTPUT_FORMAT", "xml")

	out, err := runCLI(t, "", "norm", v, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"norm":5}`, out)

	_, err = runCLI(t, "", "norm", v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestErrors(t *testing.T) {
	_, err := runCLI(t, "", "norm", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = runCLI(t, "not a vector", "norm", "-")
	assert.ErrorIs(t, err, matrixio.ErrFormat)

	_, err = runCLI(t, "", "demo", "--format", "xml")
	assert.Error(t, err)

	_, err = runCLI(t, "", "add", "only-one")
	assert.Error(t, err)
}
