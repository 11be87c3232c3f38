// Package demo runs the fixed vehicle factory demonstration
package demo

import (
	"github.com/vehiclefactory/vehiclefactory/pkg/factory"
	"github.com/vehiclefactory/vehiclefactory/pkg/logger"
	"github.com/vehiclefactory/vehiclefactory/pkg/types"
	"github.com/vehiclefactory/vehiclefactory/pkg/vehicle"
)

// Step is one vehicle to build and start
type Step struct {
	Region string
	Kind   types.VehicleKind
	Make   string
	Model  string
}

// DefaultSteps returns the demonstration sequence. The last step uses an
// unmapped region and is built by the fallback factory.
func DefaultSteps() []Step {
	return []Step{
		{Region: "EU", Kind: types.VehicleKindCar, Make: "Ford", Model: "Puma"},
		{Region: "US", Kind: types.VehicleKindCar, Make: "Tesla", Model: "Model 3"},
		{Region: "US", Kind: types.VehicleKindMotorcycle, Make: "Harley-Davidson", Model: "Sportster"},
		{Region: "JP", Kind: types.VehicleKindCar, Make: "Toyota", Model: "Corolla"},
		{Region: "AU", Kind: types.VehicleKindCar, Make: "Hyundai", Model: "Elantra"},
	}
}

// Run executes the default steps, logging one line per vehicle
func Run(log logger.Logger) []vehicle.Vehicle {
	return RunSteps(DefaultSteps(), log)
}

// RunSteps builds each step's vehicle in order and starts its engine
func RunSteps(steps []Step, log logger.Logger) []vehicle.Vehicle {
	vehicles := make([]vehicle.Vehicle, 0, len(steps))
	for _, step := range steps {
		f := factory.GetFactory(step.Region)
		v := factory.Build(f, step.Kind, step.Make, step.Model)
		v.StartEngine(log)
		vehicles = append(vehicles, v)
	}
	return vehicles
}
