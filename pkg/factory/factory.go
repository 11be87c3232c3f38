// Package factory provides region-specific vehicle factories
package factory

import (
	"fmt"

	"github.com/vehiclefactory/vehiclefactory/pkg/types"
	"github.com/vehiclefactory/vehiclefactory/pkg/vehicle"
)

// VehicleFactory builds vehicles for a single market region
type VehicleFactory interface {
	Region() types.Region
	RegionSpec() string
	CreateCar(vehicleMake, model string) vehicle.Vehicle
	CreateMotorcycle(vehicleMake, model string) vehicle.Vehicle
}

// BaseFactory implements the creation operations shared by every region.
// Concrete factories embed it and only differ in region and spec.
type BaseFactory struct {
	region types.Region
	spec   string
}

// NewBaseFactory creates a base factory for a region and its specification string
func NewBaseFactory(region types.Region, spec string) *BaseFactory {
	return &BaseFactory{
		region: region,
		spec:   spec,
	}
}

// Region returns the region code this factory builds for
func (f *BaseFactory) Region() types.Region {
	return f.region
}

// RegionSpec returns the region specification string
func (f *BaseFactory) RegionSpec() string {
	return f.spec
}

// CreateCar builds a car whose model carries the region spec
func (f *BaseFactory) CreateCar(vehicleMake, model string) vehicle.Vehicle {
	return vehicle.NewCar(vehicleMake, f.qualify(model))
}

// CreateMotorcycle builds a motorcycle whose model carries the region spec
func (f *BaseFactory) CreateMotorcycle(vehicleMake, model string) vehicle.Vehicle {
	return vehicle.NewMotorcycle(vehicleMake, f.qualify(model))
}

// qualify appends the region spec to a model name
func (f *BaseFactory) qualify(model string) string {
	return fmt.Sprintf("%s (%s)", model, f.spec)
}

// USVehicleFactory builds US-spec vehicles
type USVehicleFactory struct {
	*BaseFactory
}

// NewUSVehicleFactory creates a US factory
func NewUSVehicleFactory() *USVehicleFactory {
	return &USVehicleFactory{BaseFactory: NewBaseFactory(types.RegionUS, types.SpecUS)}
}

// EUVehicleFactory builds EU-spec vehicles
type EUVehicleFactory struct {
	*BaseFactory
}

// NewEUVehicleFactory creates an EU factory
func NewEUVehicleFactory() *EUVehicleFactory {
	return &EUVehicleFactory{BaseFactory: NewBaseFactory(types.RegionEU, types.SpecEU)}
}

// JPVehicleFactory builds JP-spec vehicles
type JPVehicleFactory struct {
	*BaseFactory
}

// NewJPVehicleFactory creates a JP factory
func NewJPVehicleFactory() *JPVehicleFactory {
	return &JPVehicleFactory{BaseFactory: NewBaseFactory(types.RegionJP, types.SpecJP)}
}

// Build dispatches to the factory operation for kind. Unknown kinds build a car.
func Build(f VehicleFactory, kind types.VehicleKind, vehicleMake, model string) vehicle.Vehicle {
	switch kind {
	case types.VehicleKindMotorcycle:
		return f.CreateMotorcycle(vehicleMake, model)
	default:
		return f.CreateCar(vehicleMake, model)
	}
}

var (
	_ VehicleFactory = (*USVehicleFactory)(nil)
	_ VehicleFactory = (*EUVehicleFactory)(nil)
	_ VehicleFactory = (*JPVehicleFactory)(nil)
)
