package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Ownership horizon bounds, inclusive.
const (
	MinOwnershipYears = 1
	MaxOwnershipYears = 20
)

// Powertrain identifies which vehicle a series belongs to
type Powertrain string

const (
	Diesel   Powertrain = "diesel"
	Electric Powertrain = "electric"
)

// Label returns a human readable name for reports
func (p Powertrain) Label() string {
	switch p {
	case Diesel:
		return "Diesel"
	case Electric:
		return "Electric"
	default:
		return string(p)
	}
}

// ParsePowertrain converts a string into a Powertrain
func ParsePowertrain(s string) (Powertrain, error) {
	switch Powertrain(strings.ToLower(strings.TrimSpace(s))) {
	case Diesel:
		return Diesel, nil
	case Electric:
		return Electric, nil
	}
	return "", fmt.Errorf("unknown powertrain %q", s)
}

// VehicleParameters holds the cost inputs for a single powertrain.
// EnergyCost is priced per unit of energy (litre, kWh) and Efficiency is
// distance per unit of energy, so distance/Efficiency*EnergyCost is the
// yearly energy bill.
type VehicleParameters struct {
	PurchasePrice     decimal.Decimal `yaml:"purchase_price" json:"purchase_price"`
	EnergyCost        decimal.Decimal `yaml:"energy_cost" json:"energy_cost"`
	AnnualMaintenance decimal.Decimal `yaml:"annual_maintenance" json:"annual_maintenance"`
	Efficiency        decimal.Decimal `yaml:"efficiency" json:"efficiency"`
}

// ScenarioInput is a complete snapshot of the parameters for one comparison
type ScenarioInput struct {
	Name           string            `yaml:"name,omitempty" json:"name,omitempty"`
	Diesel         VehicleParameters `yaml:"diesel" json:"diesel"`
	Electric       VehicleParameters `yaml:"electric" json:"electric"`
	AnnualDistance decimal.Decimal   `yaml:"annual_distance" json:"annual_distance"`
	OwnershipYears int               `yaml:"ownership_years" json:"ownership_years"`
}

// Vehicle returns the parameters for the given powertrain
func (s ScenarioInput) Vehicle(p Powertrain) VehicleParameters {
	if p == Electric {
		return s.Electric
	}
	return s.Diesel
}

// DefaultDieselParameters returns the stock diesel inputs (prices in CAD, fuel per litre)
func DefaultDieselParameters() VehicleParameters {
	return VehicleParameters{
		PurchasePrice:     decimal.NewFromInt(30000),
		EnergyCost:        decimal.NewFromFloat(1.5),
		AnnualMaintenance: decimal.NewFromInt(1000),
		Efficiency:        decimal.NewFromInt(15),
	}
}

// DefaultElectricParameters returns the stock electric inputs (prices in CAD, electricity per kWh)
func DefaultElectricParameters() VehicleParameters {
	return VehicleParameters{
		PurchasePrice:     decimal.NewFromInt(40000),
		EnergyCost:        decimal.NewFromFloat(0.13),
		AnnualMaintenance: decimal.NewFromInt(500),
		Efficiency:        decimal.NewFromInt(6),
	}
}

// DefaultScenario returns the scenario used when no input is supplied
func DefaultScenario() ScenarioInput {
	return ScenarioInput{
		Name:           "Default",
		Diesel:         DefaultDieselParameters(),
		Electric:       DefaultElectricParameters(),
		AnnualDistance: decimal.NewFromInt(15000),
		OwnershipYears: 10,
	}
}
