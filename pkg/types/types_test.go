package types_test

import (
	"errors"
	"testing"

	"github.com/vehiclefactory/vehiclefactory/pkg/types"
)

func TestNormalizeRegion(t *testing.T) {
	tests := []struct {
		input string
		want  types.Region
		known bool
	}{
		{"US", types.RegionUS, true},
		{"us", types.RegionUS, true},
		{"eU", types.RegionEU, true},
		{"jp", types.RegionJP, true},
		{"au", "AU", false},
		{"", "", false},
		{" us", " US", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := types.NormalizeRegion(tt.input)
			if got != tt.want {
				t.Errorf("NormalizeRegion(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if got.IsKnown() != tt.known {
				t.Errorf("%q.IsKnown() = %v, want %v", got, got.IsKnown(), tt.known)
			}
		})
	}
}

func TestParseVehicleKind(t *testing.T) {
	tests := []struct {
		input   string
		want    types.VehicleKind
		wantErr bool
	}{
		{"car", types.VehicleKindCar, false},
		{"Car", types.VehicleKindCar, false},
		{" MOTORCYCLE ", types.VehicleKindMotorcycle, false},
		{"truck", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseVehicleKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseVehicleKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, types.ErrUnknownVehicleKind) {
				t.Errorf("expected ErrUnknownVehicleKind, got %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVehicleKind(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultRegion(t *testing.T) {
	if types.DefaultRegion != types.RegionEU {
		t.Errorf("DefaultRegion = %q, want EU", types.DefaultRegion)
	}
}
