// Package vehicle provides the vehicles built by region factories
package vehicle

import (
	"fmt"

	"github.com/vehiclefactory/vehiclefactory/pkg/logger"
	"github.com/vehiclefactory/vehiclefactory/pkg/types"
)

// Vehicle is anything that can start its engine
type Vehicle interface {
	Make() string
	Model() string
	Kind() types.VehicleKind
	EngineMessage() string
	StartEngine(log logger.Logger)
}

// base holds the fields shared by all vehicles
type base struct {
	make  string
	model string
}

// Make returns the manufacturer
func (b base) Make() string { return b.make }

// Model returns the model name, including any region suffix
func (b base) Model() string { return b.model }

func (b base) message(started string) string {
	return fmt.Sprintf("%s %s: %s", b.make, b.model, started)
}

// Car is a four-wheeled vehicle
type Car struct {
	base
}

// NewCar creates a car. Any strings are accepted, including empty ones.
func NewCar(vehicleMake, model string) *Car {
	return &Car{base: base{make: vehicleMake, model: model}}
}

// Kind implements Vehicle
func (c *Car) Kind() types.VehicleKind { return types.VehicleKindCar }

// EngineMessage returns the line logged by StartEngine
func (c *Car) EngineMessage() string { return c.message("Engine started") }

// StartEngine logs the engine start message
func (c *Car) StartEngine(log logger.Logger) {
	if log == nil {
		return
	}
	log.Info(c.EngineMessage())
}

// Motorcycle is a two-wheeled vehicle
type Motorcycle struct {
	base
}

// NewMotorcycle creates a motorcycle. Any strings are accepted, including empty ones.
func NewMotorcycle(vehicleMake, model string) *Motorcycle {
	return &Motorcycle{base: base{make: vehicleMake, model: model}}
}

// Kind implements Vehicle
func (m *Motorcycle) Kind() types.VehicleKind { return types.VehicleKindMotorcycle }

// EngineMessage returns the line logged by StartEngine
func (m *Motorcycle) EngineMessage() string { return m.message("Motor started") }

// StartEngine logs the motor start message
func (m *Motorcycle) StartEngine(log logger.Logger) {
	if log == nil {
		return
	}
	log.Info(m.EngineMessage())
}
