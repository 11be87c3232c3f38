package factory

import (
	"sort"

	"github.com/vehiclefactory/vehiclefactory/pkg/types"
)

// Constructor creates a fresh factory
type Constructor func() VehicleFactory

// Registry maps region codes to factory constructors.
// Lookups that miss return the default factory without any signal.
type Registry struct {
	constructors map[types.Region]Constructor
	fallback     Constructor
}

// NewRegistry creates the fixed US/EU/JP registry with EU as the default
func NewRegistry() *Registry {
	return &Registry{
		constructors: map[types.Region]Constructor{
			types.RegionUS: func() VehicleFactory { return NewUSVehicleFactory() },
			types.RegionEU: func() VehicleFactory { return NewEUVehicleFactory() },
			types.RegionJP: func() VehicleFactory { return NewJPVehicleFactory() },
		},
		fallback: func() VehicleFactory { return NewEUVehicleFactory() },
	}
}

// Get returns the factory for a region, matched case-insensitively.
// Unknown, empty or malformed regions get the default factory.
func (r *Registry) Get(region string) VehicleFactory {
	if ctor, ok := r.constructors[types.NormalizeRegion(region)]; ok {
		return ctor()
	}
	return r.fallback()
}

// Regions returns the registered region codes in sorted order
func (r *Registry) Regions() []types.Region {
	regions := make([]types.Region, 0, len(r.constructors))
	for region := range r.constructors {
		regions = append(regions, region)
	}
	sort.Slice(regions, func(i, j int) bool { return regions[i] < regions[j] })
	return regions
}

// Default returns the region of the fallback factory
func (r *Registry) Default() types.Region {
	return r.fallback().Region()
}

var defaultRegistry = NewRegistry()

// GetFactory returns the factory for a region using the built-in registry
func GetFactory(region string) VehicleFactory {
	return defaultRegistry.Get(region)
}

// Regions returns the region codes known to the built-in registry
func Regions() []types.Region {
	return defaultRegistry.Regions()
}

// DefaultRegion returns the fallback region of the built-in registry
func DefaultRegion() types.Region {
	return defaultRegistry.Default()
}
