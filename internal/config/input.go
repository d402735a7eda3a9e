package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/domain"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads scenarios from a YAML (or JSON, which is valid YAML) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates scenario file contents
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration resolves every scenario against the defaults and validates it
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, input := range config.ResolveScenarios() {
		if prev, dup := seen[input.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i+1, input.Name, prev+1)
		}
		seen[input.Name] = i
		if err := calculation.ValidateScenario(input); err != nil {
			return fmt.Errorf("scenario %q: %w", input.Name, err)
		}
	}
	return nil
}

// CreateExampleConfiguration creates an example scenario set: the stock
// defaults, a high-mileage fleet vehicle and a cheap-electricity case.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	base := domain.DefaultScenario()

	highMileage := base
	highMileage.Name = "High Mileage Fleet"
	highMileage.AnnualDistance = base.AnnualDistance.Mul(decimalFromInt(3))
	highMileage.OwnershipYears = 8

	cheapPower := base
	cheapPower.Name = "Off-Peak Charging"
	cheapPower.Electric.EnergyCost = mustDecimal("0.08")
	cheapPower.OwnershipYears = 15

	return &domain.Configuration{
		Units:    domain.DefaultUnits(),
		Defaults: domain.SpecFromInput(base),
		Scenarios: []domain.ScenarioSpec{
			{Name: base.Name},
			domain.SpecFromInput(highMileage),
			domain.SpecFromInput(cheapPower),
		},
	}
}

// SaveConfiguration writes a scenario file as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
