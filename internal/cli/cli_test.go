package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/oliverbestmann/angle"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	root := NewRootCommand()

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err = root.Execute()
	return out.String(), errOut.String(), err
}

func TestConvert(t *testing.T) {
	out, _, err := run(t, "convert", "--style", "deg", "--decimals", "2", "12.5deg")
	require.NoError(t, err)
	require.Equal(t, "12.50deg\n", out)

	out, _, err = run(t, "convert", "--style", "dms", "--decimals", "0", `12°34'56"`, "0.5turn")
	require.NoError(t, err)
	require.Equal(t, "12° 34′ 56″\n180° 0′ 0″\n", out)

	out, _, err = run(t, "c", "--style", "rad", "--decimals", "3", "180deg")
	require.NoError(t, err)
	require.Equal(t, "3.142rad\n", out)
}

func TestConvert_AllStyles(t *testing.T) {
	out, _, err := run(t, "convert", "--all", "--decimals", "1", "0.5turn")
	require.NoError(t, err)

	var styles map[string]string
	require.NoError(t, yaml.Unmarshal([]byte(out), &styles))

	require.Len(t, styles, len(angle.Styles()))
	require.Equal(t, "180.0deg", styles["deg"])
	require.Equal(t, "200.0grad", styles["grad"])
	require.Equal(t, "180° 0′ 0.0″", styles["dms"])
}

func TestConvert_Invalid(t *testing.T) {
	_, _, err := run(t, "convert", "not an angle")
	require.ErrorIs(t, err, angle.ErrParse)

	_, _, err = run(t, "convert", "--style", "hours", "1deg")
	require.ErrorIs(t, err, angle.ErrInvalidArgument)

	_, _, err = run(t, "convert", "--decimals", "-1", "1deg")
	require.ErrorIs(t, err, angle.ErrInvalidArgument)

	_, _, err = run(t, "convert")
	require.Error(t, err)
}

func TestWrap(t *testing.T) {
	out, _, err := run(t, "wrap", "--decimals", "1", "--", "-90deg", "720deg")
	require.NoError(t, err)
	require.Equal(t, "270.0deg\n0.0deg\n", out)

	out, _, err = run(t, "wrap", "--signed", "--decimals", "0", "270deg", "180deg")
	require.NoError(t, err)
	require.Equal(t, "-90deg\n-180deg\n", out)
}

func TestCompare(t *testing.T) {
	out, _, err := run(t, "compare", "10deg", "370deg")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)

	out, _, err = run(t, "compare", "10deg", "20deg")
	require.NoError(t, err)
	require.Equal(t, "-1\n", out)

	out, _, err = run(t, "compare", "--epsilon", "2deg", "10deg", "11deg")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)

	_, _, err = run(t, "compare", "--epsilon=-1deg", "10deg", "11deg")
	require.ErrorIs(t, err, angle.ErrInvalidArgument)

	_, _, err = run(t, "compare", "--epsilon", "tiny", "10deg", "11deg")
	require.ErrorIs(t, err, angle.ErrParse)
}

func TestTrig(t *testing.T) {
	out, _, err := run(t, "trig", "90deg")
	require.NoError(t, err)

	var values map[string]float64
	require.NoError(t, yaml.Unmarshal([]byte(out), &values))

	require.InDelta(t, 1.0, values["sin"], 1e-12)
	require.Equal(t, 0.0, values["cot"])
	require.Greater(t, values["sec"], 1e300)
	require.Greater(t, values["tan"], 1e300)
	require.Equal(t, 1/angle.Right.Sinh(), values["csch"])
}

func TestDMS(t *testing.T) {
	out, _, err := run(t, "dms", "--decimals", "3", "29.999999999deg")
	require.NoError(t, err)
	require.Equal(t, "30 0 0\n", out)

	out, _, err = run(t, "dms", "--unit", "1", "--decimals", "1", "12.5deg")
	require.NoError(t, err)
	require.Equal(t, "12 30\n", out)

	_, _, err = run(t, "dms", "--unit", "3", "12deg")
	require.ErrorIs(t, err, angle.ErrInvalidArgument)
}

func TestSettings_Environment(t *testing.T) {
	t.Setenv("ANGLECALC_STYLE", "turn")
	t.Setenv("ANGLECALC_DECIMALS", "2")

	out, _, err := run(t, "convert", "90deg")
	require.NoError(t, err)
	require.Equal(t, "0.25turn\n", out)

	// flags take precedence
	out, _, err = run(t, "convert", "--style", "grad", "90deg")
	require.NoError(t, err)
	require.Equal(t, "100.00grad\n", out)
}

func TestSettings_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anglecalc.yaml")
	config := "style: grad\ndecimals: 1\nepsilon: 1deg\n"
	require.NoError(t, os.WriteFile(path, []byte(config), 0o644))

	out, _, err := run(t, "convert", "--config", path, "90deg")
	require.NoError(t, err)
	require.Equal(t, "100.0grad\n", out)

	out, _, err = run(t, "compare", "--config", path, "10deg", "10.5deg")
	require.NoError(t, err)
	require.Equal(t, "0\n", out)

	_, _, err = run(t, "convert", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "90deg")
	require.Error(t, err)
}

func TestLogging(t *testing.T) {
	_, stderr, err := run(t, "convert", "--log-level", "debug", "12deg")
	require.NoError(t, err)
	require.Contains(t, stderr, "Parsed angle")
	require.Contains(t, stderr, "angle=12")

	_, stderr, err = run(t, "convert", "12deg")
	require.NoError(t, err)
	require.Empty(t, stderr)

	_, _, err = run(t, "convert", "--log-level", "loud", "12deg")
	require.Error(t, err)
}

func TestProfile(t *testing.T) {
	dir := t.TempDir()

	_, _, err := run(t, "convert", "--profile", "cpu", "--profile-path", dir, "12deg")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "cpu.pprof"))

	_, _, err = run(t, "convert", "--profile", "gpu", "12deg")
	require.Error(t, err)
}

func TestProfile_StoppedOnError(t *testing.T) {
	failed := t.TempDir()

	_, _, err := run(t, "convert", "--profile", "cpu", "--profile-path", failed, "not an angle")
	require.ErrorIs(t, err, angle.ErrParse)
	require.FileExists(t, filepath.Join(failed, "cpu.pprof"))

	// starting a second profile only works if the first one was stopped
	next := t.TempDir()

	_, _, err = run(t, "convert", "--profile", "cpu", "--profile-path", next, "12deg")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(next, "cpu.pprof"))
}
