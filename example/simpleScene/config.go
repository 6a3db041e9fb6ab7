package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/akmonengine/lens"
	"github.com/akmonengine/lens/actor"
	"github.com/akmonengine/lens/camera"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/viper"
)

// Config describes a scene file
type Config struct {
	LogLevel string        `yaml:"log_level" mapstructure:"log_level"`
	Workers  int           `yaml:"workers" mapstructure:"workers"`
	Passes   int           `yaml:"passes" mapstructure:"passes"`
	Grid     GridConfig    `yaml:"grid" mapstructure:"grid"`
	Camera   CameraConfig  `yaml:"camera" mapstructure:"camera"`
	Actors   []ActorConfig `yaml:"actors" mapstructure:"actors"`
}

type GridConfig struct {
	CellSize float64 `yaml:"cell_size" mapstructure:"cell_size"`
	Cells    int     `yaml:"cells" mapstructure:"cells"`
}

// CameraConfig places the camera, then turns it by Yaw/Pitch/Roll degrees
// between two passes
type CameraConfig struct {
	Eye    [3]float64 `yaml:"eye" mapstructure:"eye"`
	Look   [3]float64 `yaml:"look" mapstructure:"look"`
	Up     [3]float64 `yaml:"up" mapstructure:"up"`
	FOV    float64    `yaml:"fov" mapstructure:"fov"`
	Aspect float64    `yaml:"aspect" mapstructure:"aspect"`
	Near   float64    `yaml:"near" mapstructure:"near"`
	Far    float64    `yaml:"far" mapstructure:"far"`
	Yaw    float64    `yaml:"yaw" mapstructure:"yaw"`
	Pitch  float64    `yaml:"pitch" mapstructure:"pitch"`
	Roll   float64    `yaml:"roll" mapstructure:"roll"`
}

type ActorConfig struct {
	Id          string     `yaml:"id" mapstructure:"id"`
	Shape       string     `yaml:"shape" mapstructure:"shape"`
	Radius      float64    `yaml:"radius" mapstructure:"radius"`
	HalfExtents [3]float64 `yaml:"half_extents" mapstructure:"half_extents"`
	Position    [3]float64 `yaml:"position" mapstructure:"position"`
	Rotation    [3]float64 `yaml:"rotation" mapstructure:"rotation"`
	Scale       [3]float64 `yaml:"scale" mapstructure:"scale"`
	Static      bool       `yaml:"static" mapstructure:"static"`
	Hidden      bool       `yaml:"hidden" mapstructure:"hidden"`
}

var errInvalidConfig = errors.New("invalid scene config")

func setDefaults(v *viper.Viper) {
	v.SetDefault("log_level", "info")
	v.SetDefault("workers", lens.DEFAULT_WORKERS)
	v.SetDefault("passes", 1)
	v.SetDefault("grid.cell_size", lens.DEFAULT_CELL_SIZE)
	v.SetDefault("grid.cells", lens.DEFAULT_CELLS)
	v.SetDefault("camera.eye", []float64{1, 1, 1})
	v.SetDefault("camera.look", []float64{0, 0, 0})
	v.SetDefault("camera.up", []float64{0, 1, 0})
	v.SetDefault("camera.fov", camera.DEFAULT_FOV)
	v.SetDefault("camera.aspect", camera.DEFAULT_ASPECT)
	v.SetDefault("camera.near", camera.DEFAULT_NEAR)
	v.SetDefault("camera.far", camera.DEFAULT_FAR)
}

// loadConfig reads the scene file, if any, with LENS_* environment overrides
// (LENS_CAMERA_FOV overrides camera.fov)
func loadConfig(v *viper.Viper, path string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("LENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	c := config.Camera
	if err := camera.ValidateShape(c.FOV, c.Aspect, c.Near, c.Far); err != nil {
		return err
	}
	if err := validatePlacement(c); err != nil {
		return err
	}

	if _, err := parseLevel(config.LogLevel); err != nil {
		return err
	}
	if config.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: grid cell size %v must be positive", errInvalidConfig, config.Grid.CellSize)
	}
	if config.Passes < 1 {
		return fmt.Errorf("%w: passes %d must be at least 1", errInvalidConfig, config.Passes)
	}

	for i, a := range config.Actors {
		switch a.Shape {
		case "sphere":
			if a.Radius <= 0 {
				return fmt.Errorf("%w: actor %d (%s): radius must be positive", errInvalidConfig, i, a.Id)
			}
		case "box":
			if a.HalfExtents[0] <= 0 || a.HalfExtents[1] <= 0 || a.HalfExtents[2] <= 0 {
				return fmt.Errorf("%w: actor %d (%s): half extents must be positive", errInvalidConfig, i, a.Id)
			}
		default:
			return fmt.Errorf("%w: actor %d (%s): unknown shape %q", errInvalidConfig, i, a.Id, a.Shape)
		}
	}

	return nil
}

// validatePlacement rejects the placements the camera cannot build a basis
// from: eye on the look point, or up parallel to the view direction
func validatePlacement(c CameraConfig) error {
	back := mgl64.Vec3(c.Eye).Sub(mgl64.Vec3(c.Look))
	up := mgl64.Vec3(c.Up)

	if back.Len() == 0 {
		return fmt.Errorf("%w: camera eye and look are both %v", errInvalidConfig, c.Eye)
	}
	if up.Cross(back).Len() <= 1e-9*up.Len()*back.Len() {
		return fmt.Errorf("%w: camera up %v is parallel to the view direction", errInvalidConfig, c.Up)
	}

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%w: log level: %w", errInvalidConfig, err)
	}

	return level, nil
}

func (c CameraConfig) build() *camera.Camera {
	cam := camera.New()
	cam.SetShape(c.FOV, c.Aspect, c.Near, c.Far)
	cam.Set(mgl64.Vec3(c.Eye), mgl64.Vec3(c.Look), mgl64.Vec3(c.Up))

	return cam
}

// turn applies one step of the configured rotation
func (c CameraConfig) turn(cam *camera.Camera) {
	if c.Yaw != 0 {
		cam.Yaw(c.Yaw)
	}
	if c.Pitch != 0 {
		cam.Pitch(c.Pitch)
	}
	if c.Roll != 0 {
		cam.Roll(c.Roll)
	}
}

func (a ActorConfig) build() *actor.Actor {
	transform := actor.NewTransformation()
	transform.SetPosition(mgl64.Vec3(a.Position))
	transform.SetRotation(mgl64.Vec3(a.Rotation))
	if a.Scale != [3]float64{} {
		transform.SetScale(mgl64.Vec3(a.Scale))
	}

	var shape actor.ShapeInterface
	if a.Shape == "sphere" {
		shape = &actor.Sphere{Radius: a.Radius}
	} else {
		shape = &actor.Box{HalfExtents: mgl64.Vec3(a.HalfExtents)}
	}

	result := actor.NewActor(transform, shape, a.Static)
	result.Id = a.Id
	if a.Hidden {
		result.Hide()
	}

	return result
}

func (config *Config) buildScene(logger *slog.Logger) *lens.Scene {
	scene := lens.NewScene(config.Grid.CellSize, config.Grid.Cells, config.Workers)
	scene.Logger = logger

	for _, a := range config.Actors {
		scene.AddActor(a.build())
	}

	return scene
}
