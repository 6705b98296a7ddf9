// Package physics is a worked example of generated component managers: a
// transform, a velocity and a label, joined by a simple integration step.
package physics

//go:generate go run github.com/TheBitDrifter/ecs/cmd/ecsgen components.go

//ecs:component
type Transform struct {
	X, Y     float64
	Rotation float64
}

//ecs:component
type Velocity struct {
	X, Y float64
}

//ecs:component
type Label struct {
	Name string
	Tags []string
}
