package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robotsim/internal/config"
	"robotsim/internal/robot"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, "")
	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestEvalDefaults(t *testing.T) {
	out, err := execute(t, "eval", "RMMLML")
	require.NoError(t, err)
	assert.Equal(t, "(2,1) W\n", out)
}

func TestEvalFlags(t *testing.T) {
	out, err := execute(t, "eval", "--x", "7", "--y", "3", "--dir", "N", "RMMLML")
	require.NoError(t, err)
	assert.Equal(t, "(9,4) W\n", out)
}

func TestEvalConfigPlacement(t *testing.T) {
	cfg := writeFile(t, "robotsim.toml", "[robot]\nx = 8\ny = 4\ndirection = \"S\"\n")
	out, err := execute(t, "--config", cfg, "eval", "LMMMRRRMLLLL")
	require.NoError(t, err)
	assert.Equal(t, "(11,5) N\n", out)
}

func TestEvalInvalid(t *testing.T) {
	_, err := execute(t, "eval", "MXM")
	assert.ErrorIs(t, err, robot.ErrInvalidInput)

	_, err = execute(t, "eval", "--dir", "crood", "M")
	assert.ErrorIs(t, err, robot.ErrInvalidInput)
}

func TestRun(t *testing.T) {
	script := writeFile(t, "demo.rbt", `
place r2 2 -7 E;
place r1 0 0 N;
eval r1 "LMMMRMLM";
eval r2 "RRMMMMMLM";
report r1;
`)
	out, err := execute(t, "-v", "run", script)
	require.NoError(t, err)
	assert.Equal(t, "r1 (-4,1) W\nfinal positions (2 robots):\nr1 (-4,1) W\nr2 (-3,-8) S\n", out)
}

func TestRunErrors(t *testing.T) {
	_, err := execute(t, "run", filepath.Join(t.TempDir(), "missing.rbt"))
	assert.Error(t, err)

	_, err = execute(t, "run", writeFile(t, "bad.rbt", "place r1 0 0 N"))
	assert.Error(t, err)

	_, err = execute(t, "run", writeFile(t, "bad.rbt", "place r1 0 0 Q;"))
	assert.ErrorIs(t, err, robot.ErrInvalidInput)
}

func TestBadConfig(t *testing.T) {
	_, err := execute(t, "--config", writeFile(t, "c.toml", "[general]\nlog_level = \"loud\"\n"), "eval", "M")
	assert.ErrorContains(t, err, "general.log_level")
}
