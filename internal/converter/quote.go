package converter

import (
	"github.com/samber/lo"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

func CreateQuoteRequestToParams(req *quotev1.CreateQuoteRequest) model.CreateQuoteParams {
	return model.CreateQuoteParams{
		ServiceRequestID: req.ServiceRequestID,
		Options: model.QuoteOptions{
			ServiceType:      model.ServiceType(req.ServiceType),
			Urgency:          model.Urgency(req.Urgency),
			Description:      req.Description,
			SelectedParts:    append([]string(nil), req.SelectedParts...),
			CustomLaborHours: req.CustomLaborHours,
			DiscountPercent:  req.DiscountPercent,
			AIDiagnosis:      diagnosisToModel(req.AIDiagnosis),
			Vehicle:          VehicleToModel(req.Vehicle),
			Location:         LocationToModel(req.Location),
		},
	}
}

func QuoteToAPI(q *model.Quote) *quotev1.Quote {
	if q == nil {
		return nil
	}

	return &quotev1.Quote{
		ID:                q.ID.String(),
		ServiceRequestID:  q.ServiceRequestID,
		ServiceType:       string(q.ServiceType),
		Urgency:           string(q.Urgency),
		Description:       q.Description,
		LaborCost:         q.LaborCost,
		PartsCost:         q.PartsCost,
		TravelFee:         q.TravelFee,
		TotalCost:         q.TotalCost,
		EstimatedDuration: q.EstimatedDuration,
		ValidUntil:        q.ValidUntil,
		Status:            string(q.Status),
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
}

func QuotesToAPI(quotes []model.Quote) *quotev1.QuoteList {
	return &quotev1.QuoteList{
		Quotes: lo.Map(quotes, func(q model.Quote, _ int) quotev1.Quote {
			return *QuoteToAPI(&q)
		}),
	}
}

func LiveEstimateRequestToParams(req *quotev1.LiveEstimateRequest) model.LiveEstimateParams {
	return model.LiveEstimateParams{
		ServiceType:   model.ServiceType(req.ServiceType),
		Urgency:       model.Urgency(req.Urgency),
		Vehicle:       VehicleToModel(req.Vehicle),
		Location:      LocationToModel(req.Location),
		SelectedParts: append([]string(nil), req.SelectedParts...),
	}
}

func LiveEstimateToAPI(e *model.LiveEstimate) *quotev1.LiveEstimate {
	return &quotev1.LiveEstimate{
		Min: e.Min,
		Max: e.Max,
		Breakdown: quotev1.LiveBreakdown{
			Labor:             e.Breakdown.Labor,
			Parts:             e.Breakdown.Parts,
			Travel:            e.Breakdown.Travel,
			UrgencyMultiplier: e.Breakdown.UrgencyMultiplier,
		},
	}
}

func VehicleToModel(v *quotev1.Vehicle) *model.Vehicle {
	if v == nil {
		return nil
	}

	vt := model.VehicleType(v.Type)
	if vt == "" {
		vt = model.VehicleCar
	}

	return &model.Vehicle{
		Make:    v.Make,
		Model:   v.Model,
		Year:    v.Year,
		Mileage: v.Mileage,
		Type:    vt,
	}
}

func LocationToModel(l *quotev1.Location) *model.Location {
	if l == nil {
		return nil
	}

	return &model.Location{
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Address:   l.Address,
	}
}

func diagnosisToModel(d *quotev1.Diagnosis) *model.AIDiagnosis {
	if d == nil {
		return nil
	}

	out := &model.AIDiagnosis{
		Confidence:      model.Confidence(d.Confidence),
		DiagnosticSteps: append([]string(nil), d.DiagnosticSteps...),
		UrgencyLevel:    model.Urgency(d.UrgencyLevel),
		LikelyCauses:    append([]string(nil), d.LikelyCauses...),
	}
	if d.EstimatedCost != nil {
		out.EstimatedCost = &model.CostRange{Min: d.EstimatedCost.Min, Max: d.EstimatedCost.Max}
	}

	return out
}
