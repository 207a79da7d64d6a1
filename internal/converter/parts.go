package converter

import (
	"github.com/samber/lo"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

func PartEstimateToAPI(e *model.PartEstimate) *quotev1.PartEstimate {
	return &quotev1.PartEstimate{
		PartName:       e.PartName,
		EstimatedPrice: e.EstimatedPrice,
		Confidence:     string(e.Confidence),
		Source:         e.Source,
		Availability:   string(e.Availability),
	}
}

func PartEstimatesToAPI(estimates []model.PartEstimate, total float64) *quotev1.PartEstimates {
	return &quotev1.PartEstimates{
		Estimates: lo.Map(estimates, func(e model.PartEstimate, _ int) quotev1.PartEstimate {
			return *PartEstimateToAPI(&e)
		}),
		Total: total,
	}
}

func VehicleTypeToModel(s string) model.VehicleType {
	switch vt := model.VehicleType(s); vt {
	case model.VehicleMotorcycle, model.VehicleScooter:
		return vt
	default:
		return model.VehicleCar
	}
}
