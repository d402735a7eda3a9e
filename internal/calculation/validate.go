package calculation

import (
	"fmt"
	"strconv"

	"github.com/rpgo/tco-parity/internal/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
)

// ValidateScenario checks every field of the input and returns all violations
// combined with multierr. Each violation is a *ParameterError; use
// multierr.Errors to list them.
func ValidateScenario(input domain.ScenarioInput) error {
	var err error
	err = multierr.Append(err, validateVehicle("diesel", input.Diesel))
	err = multierr.Append(err, validateVehicle("electric", input.Electric))
	if !input.AnnualDistance.IsPositive() {
		err = multierr.Append(err, invalidParameter("annual_distance", "> 0", input.AnnualDistance))
	}
	if input.OwnershipYears < domain.MinOwnershipYears || input.OwnershipYears > domain.MaxOwnershipYears {
		err = multierr.Append(err, &ParameterError{
			Kind:       ErrOutOfRange,
			Field:      "ownership_years",
			Constraint: fmt.Sprintf("between %d and %d", domain.MinOwnershipYears, domain.MaxOwnershipYears),
			Value:      strconv.Itoa(input.OwnershipYears),
		})
	}
	return err
}

func validateVehicle(prefix string, v domain.VehicleParameters) error {
	var err error
	nonNegative := func(field string, d decimal.Decimal) {
		if d.IsNegative() {
			err = multierr.Append(err, invalidParameter(prefix+"."+field, ">= 0", d))
		}
	}
	positive := func(field string, d decimal.Decimal) {
		if !d.IsPositive() {
			err = multierr.Append(err, invalidParameter(prefix+"."+field, "> 0", d))
		}
	}
	nonNegative("purchase_price", v.PurchasePrice)
	positive("energy_cost", v.EnergyCost)
	nonNegative("annual_maintenance", v.AnnualMaintenance)
	positive("efficiency", v.Efficiency)
	return err
}
