package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akmonengine/spatial/vector"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func assertGolden(t *testing.T, name string, got string) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestQuatCommand(t *testing.T) {
	out, err := execute(t, "quat", "--units", "deg", "--axis", "0,1,0", "--angle", "180", "--rotate", "0,0,1")
	require.NoError(t, err)
	assertGolden(t, "quat_half_turn_y", out)
}

func TestQuatCommand_WithoutRotate(t *testing.T) {
	out, err := execute(t, "quat", "--axis", "1,0,0", "--angle", "0")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "quaternion: [1, 0, 0, 0]\n"))
	assert.NotContains(t, out, "rotated")
}

func TestQuatCommand_ZeroAxis(t *testing.T) {
	_, err := execute(t, "quat", "--axis", "0,0,0", "--angle", "1")
	require.Error(t, err)
	assert.ErrorIs(t, err, vector.ErrZeroLength)
}

func TestQuatCommand_BadAxis(t *testing.T) {
	_, err := execute(t, "quat", "--axis", "1,2")
	assert.ErrorContains(t, err, "expected x,y,z")
}

func TestEulerCommand_JSON(t *testing.T) {
	out, err := execute(t, "euler", "--units", "deg", "--yaw", "90", "--format", "json")
	require.NoError(t, err)
	assertGolden(t, "euler_yaw_90_json", out)
}

func TestEulerCommand_OrdersDisagree(t *testing.T) {
	out, err := execute(t, "euler", "--pitch", "0.3", "--yaw", "0.2", "--roll", "0.1")
	require.NoError(t, err)
	assert.Contains(t, out, "orders_agree: false\n")
}

func TestEulerCommand_ConfigFile(t *testing.T) {
	out, err := execute(t, "--config", "testdata/deg.yaml", "euler", "--yaw", "90")
	require.NoError(t, err)
	assert.Contains(t, out, `"quaternion": [0.707,0,0.707,0],`)
}

func TestEulerCommand_FlagOverridesConfig(t *testing.T) {
	out, err := execute(t, "--config", "testdata/deg.yaml", "--format", "text", "euler", "--yaw", "90")
	require.NoError(t, err)
	assert.Contains(t, out, "quaternion: [0.707, 0, 0.707, 0]\n")
}

func TestTransformCommand_ToWorld(t *testing.T) {
	out, err := execute(t, "transform", "--units", "deg",
		"--frame", "0,90,0@1,2,3",
		"--frame", "0,0,0@0,0,1",
		"0,0,0", "1,0,0")
	require.NoError(t, err)
	assertGolden(t, "transform_chain_world", out)
}

func TestTransformCommand_ToLocal(t *testing.T) {
	out, err := execute(t, "transform", "--units", "deg", "--to", "local",
		"--frame", "0,90,0@1,2,3",
		"--frame", "0,0,0@0,0,1",
		"2,2,3", "2,2,2")
	require.NoError(t, err)
	assert.Equal(t, "local: [[0, 0, 0], [1, 0, 0]]\n", out)
}

func TestTransformCommand_Workers(t *testing.T) {
	points := []string{"0,0,0", "1,0,0", "0,1,0", "0,0,1", "1,1,1", "2,3,4", "5,6,7"}
	base := []string{"transform", "--frame", "0.1,0.2,0.3@1,2,3", "--frame", "0.5,0,0@0,1,0"}

	single, err := execute(t, append(append(base, "--workers", "1"), points...)...)
	require.NoError(t, err)
	multi, err := execute(t, append(append(base, "--workers", "3"), points...)...)
	require.NoError(t, err)

	assert.Equal(t, single, multi)
}

func TestTransformCommand_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no frames", []string{"transform", "0,0,0"}, errNoFrames.Error()},
		{"bad target", []string{"transform", "--frame", "0,0,0", "--to", "sideways", "0,0,0"}, "--to must be"},
		{"bad frame", []string{"transform", "--frame", "0,0@1,2,3", "0,0,0"}, "angles"},
		{"bad position", []string{"transform", "--frame", "0,0,0@1,2", "0,0,0"}, "position"},
		{"bad point", []string{"transform", "--frame", "0,0,0", "a,b,c"}, "point 0"},
		{"no points", []string{"transform", "--frame", "0,0,0"}, "requires at least 1 arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestRootCommand_InvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "version")
	assert.ErrorContains(t, err, "format must be")
}

func TestRootCommand_MissingConfig(t *testing.T) {
	_, err := execute(t, "--config", "testdata/missing.yaml", "version")
	assert.ErrorContains(t, err, "open config")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "spatial dev\n", out)
}

func TestParseVec3(t *testing.T) {
	v, err := parseVec3(" 1, -2.5 ,3")
	require.NoError(t, err)
	assert.Equal(t, vector.V3(1, -2.5, 3), v)

	_, err = parseVec3("1,x,3")
	assert.ErrorContains(t, err, "component 1")
}

func TestParseFrame(t *testing.T) {
	double := func(f float64) float64 { return 2 * f }

	f, err := parseFrame("1,2,3@4,5,6", double)
	require.NoError(t, err)
	assert.Equal(t, 2.0, f.angles.Pitch)
	assert.Equal(t, 4.0, f.angles.Yaw)
	assert.Equal(t, 6.0, f.angles.Roll)
	assert.Equal(t, vector.V3(4, 5, 6), f.position)

	f, err = parseFrame("0,0,0", double)
	require.NoError(t, err)
	assert.Equal(t, vector.Zero3, f.position)
}

func TestPrinter_NegativeZero(t *testing.T) {
	var out bytes.Buffer
	p := printer{format: "text", precision: 3, w: &out}

	require.NoError(t, p.print(report{}.add("v", vector.V3(-1e-9, 0.0004, -0.0006))))
	assert.Equal(t, "v: [0, 0, -0.001]\n", out.String())
}
