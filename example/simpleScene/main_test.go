package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/akmonengine/lens/camera"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const testScene = `
log_level: warn
workers: 2
passes: 2
grid:
  cell_size: 4
  cells: 1024
camera:
  eye: [0, 0, 10]
  look: [0, 0, 0]
  up: [0, 1, 0]
  fov: 90
  aspect: 1
  near: 1
  far: 100
  yaw: 90
actors:
  - id: origin
    shape: sphere
    radius: 1
  - id: right
    shape: box
    half_extents: [1, 1, 1]
    position: [50, 0, 10]
  - id: behind
    shape: sphere
    radius: 1
    position: [0, 0, 20]
`

func writeScene(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, camera.DEFAULT_FOV, config.Camera.FOV)
	assert.Equal(t, camera.DEFAULT_FAR, config.Camera.Far)
	assert.Equal(t, [3]float64{1, 1, 1}, config.Camera.Eye)
	assert.Equal(t, 1, config.Passes)
	assert.Empty(t, config.Actors)
}

func TestLoadConfig_File(t *testing.T) {
	config, err := loadConfig(viper.New(), writeScene(t, testScene))
	require.NoError(t, err)

	assert.Equal(t, "warn", config.LogLevel)
	assert.Equal(t, [3]float64{0, 0, 10}, config.Camera.Eye)
	assert.Equal(t, 90.0, config.Camera.Yaw)
	require.Len(t, config.Actors, 3)
	assert.Equal(t, "box", config.Actors[1].Shape)
	assert.Equal(t, [3]float64{1, 1, 1}, config.Actors[1].HalfExtents)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("LENS_CAMERA_FOV", "30")
	t.Setenv("LENS_WORKERS", "8")

	config, err := loadConfig(viper.New(), writeScene(t, testScene))
	require.NoError(t, err)

	assert.Equal(t, 30.0, config.Camera.FOV)
	assert.Equal(t, 8, config.Workers)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected error
	}{
		{
			name:     "far before near",
			content:  "camera:\n  near: 10\n  far: 5\n",
			expected: camera.ErrInvalidShape,
		},
		{
			name:     "unknown shape",
			content:  "actors:\n  - id: a\n    shape: cone\n",
			expected: errInvalidConfig,
		},
		{
			name:     "sphere without radius",
			content:  "actors:\n  - id: a\n    shape: sphere\n",
			expected: errInvalidConfig,
		},
		{
			name:     "eye on the look point",
			content:  "camera:\n  eye: [1, 2, 3]\n  look: [1, 2, 3]\n",
			expected: errInvalidConfig,
		},
		{
			name:     "up along the view direction",
			content:  "camera:\n  eye: [0, 5, 0]\n  look: [0, 0, 0]\n  up: [0, 1, 0]\n",
			expected: errInvalidConfig,
		},
		{
			name:     "zero up",
			content:  "camera:\n  up: [0, 0, 0]\n",
			expected: errInvalidConfig,
		},
		{
			name:     "bad log level",
			content:  "log_level: loud\n",
			expected: errInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(viper.New(), writeScene(t, tt.content))
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := loadConfig(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCullCommand(t *testing.T) {
	out, err := execute(t, "cull", "--config", writeScene(t, testScene))
	require.NoError(t, err)

	var report CullReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	assert.Equal(t, 3, report.Actors)
	require.Len(t, report.Passes, 2)

	// looking down -Z
	first := report.Passes[0]
	require.Len(t, first.Visible, 1)
	assert.Equal(t, "origin", first.Visible[0].Id)
	assert.Equal(t, "inside", first.Visible[0].Intercept)
	assert.Equal(t, []string{"origin"}, first.Entered)
	assert.Empty(t, first.Exited)

	// after a 90 degree yaw, looking down +X
	second := report.Passes[1]
	require.Len(t, second.Visible, 1)
	assert.Equal(t, "right", second.Visible[0].Id)
	assert.Equal(t, []string{"right"}, second.Entered)
	assert.Equal(t, []string{"origin"}, second.Exited)
	assert.InDelta(t, 1.0, second.Forward[0], 1e-9)
}

func TestCullCommand_PassesFlag(t *testing.T) {
	out, err := execute(t, "cull", "--config", writeScene(t, testScene), "--passes", "1")
	require.NoError(t, err)

	var report CullReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Len(t, report.Passes, 1)
}

func TestCullCommand_InvalidConfig(t *testing.T) {
	_, err := execute(t, "cull", "--config", writeScene(t, "camera:\n  fov: -1\n"))

	assert.ErrorIs(t, err, camera.ErrInvalidShape)
}

func TestFrustumCommand(t *testing.T) {
	out, err := execute(t, "frustum", "--config", writeScene(t, testScene))
	require.NoError(t, err)

	var report FrustumReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))

	require.Len(t, report.Planes, 6)
	near := report.Planes[4]
	assert.Equal(t, "near", near.Name)
	assert.InDelta(t, -1.0, near.Normal[2], 1e-9)
	assert.InDelta(t, 9.0, near.D, 1e-9)

	assert.Equal(t, [3]float64{0, 0, 1}, report.Basis.N)
	assert.Equal(t, -1.0, report.Project[3][2])
	assert.InDelta(t, -90.0, report.Box[0][2], 1e-9)
}
