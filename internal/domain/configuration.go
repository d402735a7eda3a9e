package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Configuration is the contents of a scenario file
type Configuration struct {
	Units     Units          `yaml:"units" json:"units"`
	Defaults  ScenarioSpec   `yaml:"defaults,omitempty" json:"defaults,omitempty"`
	Scenarios []ScenarioSpec `yaml:"scenarios" json:"scenarios"`
}

// Units labels the currency and physical units used by a scenario file.
// They are display labels only; no conversion takes place.
type Units struct {
	Currency       string `yaml:"currency" json:"currency"`
	Distance       string `yaml:"distance" json:"distance"`
	DieselEnergy   string `yaml:"diesel_energy" json:"diesel_energy"`
	ElectricEnergy string `yaml:"electric_energy" json:"electric_energy"`
}

// DefaultUnits returns CAD, km, L and kWh
func DefaultUnits() Units {
	return Units{Currency: "CAD", Distance: "km", DieselEnergy: "L", ElectricEnergy: "kWh"}
}

// WithDefaults fills empty labels from DefaultUnits
func (u Units) WithDefaults() Units {
	d := DefaultUnits()
	if u.Currency == "" {
		u.Currency = d.Currency
	}
	if u.Distance == "" {
		u.Distance = d.Distance
	}
	if u.DieselEnergy == "" {
		u.DieselEnergy = d.DieselEnergy
	}
	if u.ElectricEnergy == "" {
		u.ElectricEnergy = d.ElectricEnergy
	}
	return u
}

// VehicleSpec is a partially specified VehicleParameters; nil fields are inherited
type VehicleSpec struct {
	PurchasePrice     *decimal.Decimal `yaml:"purchase_price,omitempty" json:"purchase_price,omitempty"`
	EnergyCost        *decimal.Decimal `yaml:"energy_cost,omitempty" json:"energy_cost,omitempty"`
	AnnualMaintenance *decimal.Decimal `yaml:"annual_maintenance,omitempty" json:"annual_maintenance,omitempty"`
	Efficiency        *decimal.Decimal `yaml:"efficiency,omitempty" json:"efficiency,omitempty"`
}

// ScenarioSpec is a partially specified ScenarioInput as written in a scenario file
type ScenarioSpec struct {
	Name           string           `yaml:"name,omitempty" json:"name,omitempty"`
	Diesel         VehicleSpec      `yaml:"diesel,omitempty" json:"diesel,omitempty"`
	Electric       VehicleSpec      `yaml:"electric,omitempty" json:"electric,omitempty"`
	AnnualDistance *decimal.Decimal `yaml:"annual_distance,omitempty" json:"annual_distance,omitempty"`
	OwnershipYears *int             `yaml:"ownership_years,omitempty" json:"ownership_years,omitempty"`
}

// MarshalYAML writes only the fields that are set. Explicit zeros are kept,
// which omitempty on a decimal would drop.
func (v VehicleSpec) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, d *decimal.Decimal) {
		if d == nil {
			return
		}
		tag := "!!float"
		if d.IsInteger() {
			tag = "!!int"
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: d.String()},
		)
	}
	add("purchase_price", v.PurchasePrice)
	add("energy_cost", v.EnergyCost)
	add("annual_maintenance", v.AnnualMaintenance)
	add("efficiency", v.Efficiency)
	return node, nil
}

// Resolve overlays the fields that are set onto base
func (v VehicleSpec) Resolve(base VehicleParameters) VehicleParameters {
	if v.PurchasePrice != nil {
		base.PurchasePrice = *v.PurchasePrice
	}
	if v.EnergyCost != nil {
		base.EnergyCost = *v.EnergyCost
	}
	if v.AnnualMaintenance != nil {
		base.AnnualMaintenance = *v.AnnualMaintenance
	}
	if v.Efficiency != nil {
		base.Efficiency = *v.Efficiency
	}
	return base
}

// Resolve overlays the fields that are set onto base. The name is never inherited.
func (s ScenarioSpec) Resolve(base ScenarioInput) ScenarioInput {
	out := ScenarioInput{
		Name:           s.Name,
		Diesel:         s.Diesel.Resolve(base.Diesel),
		Electric:       s.Electric.Resolve(base.Electric),
		AnnualDistance: base.AnnualDistance,
		OwnershipYears: base.OwnershipYears,
	}
	if s.AnnualDistance != nil {
		out.AnnualDistance = *s.AnnualDistance
	}
	if s.OwnershipYears != nil {
		out.OwnershipYears = *s.OwnershipYears
	}
	return out
}

// SpecFromInput converts a fully specified input back into a ScenarioSpec
func SpecFromInput(in ScenarioInput) ScenarioSpec {
	vs := func(v VehicleParameters) VehicleSpec {
		return VehicleSpec{
			PurchasePrice:     &v.PurchasePrice,
			EnergyCost:        &v.EnergyCost,
			AnnualMaintenance: &v.AnnualMaintenance,
			Efficiency:        &v.Efficiency,
		}
	}
	years := in.OwnershipYears
	distance := in.AnnualDistance
	return ScenarioSpec{
		Name:           in.Name,
		Diesel:         vs(in.Diesel),
		Electric:       vs(in.Electric),
		AnnualDistance: &distance,
		OwnershipYears: &years,
	}
}

// ResolveScenarios returns the concrete inputs of every scenario, applying
// file-level defaults over DefaultScenario. Unnamed scenarios are numbered.
func (c *Configuration) ResolveScenarios() []ScenarioInput {
	base := c.Defaults.Resolve(DefaultScenario())
	out := make([]ScenarioInput, len(c.Scenarios))
	for i, s := range c.Scenarios {
		in := s.Resolve(base)
		if in.Name == "" {
			in.Name = fmt.Sprintf("Scenario %d", i+1)
		}
		out[i] = in
	}
	return out
}

// GenerateAssumptions lists the modelling assumptions shown alongside results
func (u Units) GenerateAssumptions() []string {
	u = u.WithDefaults()
	return []string{
		fmt.Sprintf("All amounts in %s; no inflation or discounting applied", u.Currency),
		"Energy prices, efficiency and maintenance held constant over the horizon",
		fmt.Sprintf("Diesel energy cost per %s, electric energy cost per %s", u.DieselEnergy, u.ElectricEnergy),
		fmt.Sprintf("Annual distance in %s, efficiency in %s per energy unit", u.Distance, u.Distance),
		"Purchase price paid in full at acquisition, no resale value",
	}
}
