package main

import (
	"fmt"
	"io"

	"github.com/akmonengine/lens/actor"
	"github.com/akmonengine/lens/camera"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

type CullReport struct {
	Actors int          `yaml:"actors"`
	Passes []PassReport `yaml:"passes"`
}

type PassReport struct {
	Pass    int           `yaml:"pass"`
	Eye     [3]float64    `yaml:"eye"`
	Forward [3]float64    `yaml:"forward"`
	Visible []ActorReport `yaml:"visible"`
	Entered []string      `yaml:"entered,omitempty"`
	Exited  []string      `yaml:"exited,omitempty"`
}

type ActorReport struct {
	Id        string     `yaml:"id"`
	Intercept string     `yaml:"intercept"`
	Center    [3]float64 `yaml:"center"`
	Radius    float64    `yaml:"radius"`
}

type FrustumReport struct {
	FOV     float64       `yaml:"fov"`
	Aspect  float64       `yaml:"aspect"`
	Near    float64       `yaml:"near"`
	Far     float64       `yaml:"far"`
	Basis   BasisReport   `yaml:"basis"`
	Planes  []PlaneReport `yaml:"planes"`
	Corners [8][3]float64 `yaml:"corners"`
	Box     [2][3]float64 `yaml:"box"`
	View    [4][4]float64 `yaml:"view"`
	Project [4][4]float64 `yaml:"projection"`
}

type BasisReport struct {
	U [3]float64 `yaml:"u"`
	V [3]float64 `yaml:"v"`
	N [3]float64 `yaml:"n"`
}

type PlaneReport struct {
	Name   string     `yaml:"name"`
	Normal [3]float64 `yaml:"normal"`
	D      float64    `yaml:"d"`
}

var planeNames = [6]string{"top", "bottom", "left", "right", "near", "far"}

func newActorReport(a *actor.Actor) ActorReport {
	center, radius := a.BoundingSphere()

	return ActorReport{
		Id:        fmt.Sprint(a.Id),
		Intercept: a.Intercept.String(),
		Center:    center,
		Radius:    radius,
	}
}

func newPassReport(pass int, cam *camera.Camera, visible []*actor.Actor) PassReport {
	report := PassReport{
		Pass:    pass,
		Eye:     cam.Eye(),
		Forward: cam.N().Mul(-1),
		Visible: make([]ActorReport, 0, len(visible)),
	}
	for _, a := range visible {
		report.Visible = append(report.Visible, newActorReport(a))
	}

	return report
}

// rows returns m in row-major order, as it is usually written down
func rows(m mgl64.Mat4) [4][4]float64 {
	var result [4][4]float64
	for r := 0; r < 4; r++ {
		result[r] = m.Row(r)
	}

	return result
}

func newFrustumReport(cam *camera.Camera) FrustumReport {
	report := FrustumReport{
		FOV:    cam.FOV(),
		Aspect: cam.Aspect(),
		Near:   cam.Near(),
		Far:    cam.Far(),
		Basis: BasisReport{
			U: cam.U(),
			V: cam.V(),
			N: cam.N(),
		},
		View:    rows(cam.ViewMatrix()),
		Project: rows(cam.ProjectionMatrix()),
	}

	for i, plane := range cam.Planes() {
		report.Planes = append(report.Planes, PlaneReport{
			Name:   planeNames[i],
			Normal: plane.Normal(),
			D:      plane.D(),
		})
	}
	for i, corner := range cam.Corners() {
		report.Corners[i] = corner
	}
	box := cam.FrustumAABB()
	report.Box = [2][3]float64{box.Min, box.Max}

	return report
}

func writeYAML(w io.Writer, report any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	return encoder.Close()
}
