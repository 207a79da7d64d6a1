package pricing

import (
	"fmt"

	"github.com/you-humble/mobile-mechanic/internal/catalog"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

const (
	liveLowerBand = 0.85
	liveUpperBand = 1.15
)

// LiveEstimate gives a quick price band while the customer is still filling in a request.
// It uses table hours only and always includes the base travel fee.
func (e *Engine) LiveEstimate(params model.LiveEstimateParams) (*model.LiveEstimate, error) {
	const op string = "pricing.Engine.LiveEstimate"

	if !params.Urgency.Valid() {
		return nil, fmt.Errorf("%s: %w: urgency %q is not supported", op, model.ErrValidation, params.Urgency)
	}
	if params.Location != nil && !params.Location.InRange() {
		return nil, fmt.Errorf("%s: %w: location coordinates are out of range", op, model.ErrValidation)
	}
	if params.Vehicle != nil && params.Vehicle.Year <= 0 {
		return nil, fmt.Errorf("%s: %w: vehicle year is required", op, model.ErrValidation)
	}

	table, ok := catalog.Pricing(params.ServiceType)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", op, model.ErrUnknownServiceType, params.ServiceType)
	}

	multiplier := urgencyRateFactor(params.Urgency)
	labor := table.EstimatedHours * table.LaborRate * multiplier

	parts, err := e.selectedPartsTotal(params.ServiceType, params.SelectedParts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if parts == 0 && len(table.CommonParts) > 0 {
		parts = table.CommonParts[0].Price
	}

	if v := params.Vehicle; v != nil {
		age := e.now().Year() - v.Year
		labor *= ageLaborFactor(age)
		parts *= agePartsFactor(age)
	}

	travel := travelBaseFee
	if params.Location != nil {
		travel = e.travelFee(*params.Location)
	}

	total := labor + parts + travel

	return &model.LiveEstimate{
		Min: round(total * liveLowerBand),
		Max: round(total * liveUpperBand),
		Breakdown: model.LiveBreakdown{
			Labor:             round(labor),
			Parts:             round(parts),
			Travel:            round(travel),
			UrgencyMultiplier: multiplier,
		},
	}, nil
}
