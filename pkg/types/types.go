// Package types provides the core region and vehicle kind types for vehiclefactory
package types

import (
	"errors"
	"fmt"
	"strings"
)

// Region represents a market region code
type Region string

const (
	RegionUS Region = "US"
	RegionEU Region = "EU"
	RegionJP Region = "JP"
)

// DefaultRegion is used when a region code is not recognized
const DefaultRegion = RegionEU

// Region specification literals appended to built model names
const (
	SpecUS = "US Spec"
	SpecEU = "EU Spec"
	SpecJP = "JP Spec"
)

// NormalizeRegion upper-cases a region code. The input is not trimmed or validated.
func NormalizeRegion(s string) Region {
	return Region(strings.ToUpper(s))
}

// IsKnown reports whether the region has a dedicated factory
func (r Region) IsKnown() bool {
	switch r {
	case RegionUS, RegionEU, RegionJP:
		return true
	}
	return false
}

// VehicleKind represents the kinds of vehicle a factory can build
type VehicleKind string

const (
	VehicleKindCar        VehicleKind = "car"
	VehicleKindMotorcycle VehicleKind = "motorcycle"
)

// ErrUnknownVehicleKind is returned when a vehicle kind cannot be parsed
var ErrUnknownVehicleKind = errors.New("unknown vehicle kind")

// ParseVehicleKind parses a vehicle kind case-insensitively
func ParseVehicleKind(s string) (VehicleKind, error) {
	switch kind := VehicleKind(strings.ToLower(strings.TrimSpace(s))); kind {
	case VehicleKindCar, VehicleKindMotorcycle:
		return kind, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVehicleKind, s)
}
